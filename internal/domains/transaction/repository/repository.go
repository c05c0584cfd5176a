package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"ehotel/infras/otel"
	"ehotel/infras/postgres"
	"ehotel/internal/domains/transaction/model"
	gDto "ehotel/shared/dto"
	gRepo "ehotel/shared/repository"
)

type Transaction interface {
	InsertReturningIDTx(ctx context.Context, sqltx *sqlx.Tx, model model.Transaction) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Transaction, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Transaction]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Transaction {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Transaction](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
