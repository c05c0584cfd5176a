package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"ehotel/infras/otel"
	"ehotel/infras/postgres"
	"ehotel/internal/domains/hotel/model"
	gDto "ehotel/shared/dto"
	gRepo "ehotel/shared/repository"
)

type Hotel interface {
	InsertReturningID(ctx context.Context, model model.Hotel) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Hotel, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Hotel, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Hotel]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Hotel {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Hotel](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Chain interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Chain, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Chain, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type chainRepositoryImpl struct {
	gRepo.Repository[model.Chain]
	db   *postgres.Connection
	otel otel.Otel
}

func NewChain(db *postgres.Connection, otel otel.Otel) Chain {
	return &chainRepositoryImpl{
		Repository: gRepo.NewRepository[model.Chain](model.ChainEntityName, model.ChainTableName, model.ChainFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
