package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"ehotel/infras/otel"
	"ehotel/infras/postgres"
	"ehotel/internal/domains/renting/model"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/logger"
	gRepo "ehotel/shared/repository"
	"ehotel/shared/timezone"
)

// detailSelectQuery feeds the enriched read model. total_paid comes from a
// correlated subquery over the transaction ledger.
const detailSelectQuery = `
SELECT rentings.renting_id, rentings.customer_id, customers.full_name AS customer_name,
	rentings.hotel_id, hotels.name AS hotel_name, rentings.room_id, rooms.price AS room_price,
	rentings.rent_date, rentings.duration, rentings.handled_by, rentings.is_archived,
	COALESCE((
		SELECT SUM(t.amount) FROM transactions t WHERE t.renting_id = rentings.renting_id
	), 0) AS total_paid
FROM rentings
JOIN customers ON customers.customer_id = rentings.customer_id
JOIN hotels ON hotels.hotel_id = rentings.hotel_id
JOIN rooms ON rooms.hotel_id = rentings.hotel_id AND rooms.room_id = rentings.room_id`

type Renting interface {
	InsertReturningIDTx(ctx context.Context, sqltx *sqlx.Tx, model model.Renting) (int64, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)

	GetDetail(ctx context.Context, id int64) (model.Detail, error)
	GetAllDetail(ctx context.Context, params gDto.QueryParams) ([]model.Detail, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, id int64) (model.Detail, error)
	ArchiveTx(ctx context.Context, sqltx *sqlx.Tx, id int64) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Renting]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Renting {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Renting](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetDetail(ctx context.Context, id int64) (model.Detail, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".renting.GetDetail")
	defer scope.End()

	query := detailSelectQuery + "\nWHERE rentings.renting_id = :renting_id"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var detail model.Detail

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return detail, fmt.Errorf("failed to prepare statement (renting): %w", err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &detail, map[string]any{"renting_id": id})
	if errors.Is(err, sql.ErrNoRows) {
		return detail, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return detail, fmt.Errorf("failed to get renting: %w", err)
	}

	return detail, nil
}

func (repo *repositoryImpl) GetAllDetail(ctx context.Context, params gDto.QueryParams) ([]model.Detail, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".renting.GetAllDetail")
	defer scope.End()

	query := detailSelectQuery + "\nORDER BY rentings.renting_id"
	args := map[string]any{}

	if params.Page > 0 && params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit

		query += "\nLIMIT :limit OFFSET :offset"
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var details []model.Detail

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return details, fmt.Errorf("failed to prepare statement (renting): %w", err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &details, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return details, fmt.Errorf("failed to get rentings: %w", err)
	}

	return details, nil
}

// GetForUpdateTx locks the renting row and returns it with its payment
// aggregate. Payments and check-out serialize on this lock. A zero ID
// means the renting does not exist.
func (repo *repositoryImpl) GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, id int64) (model.Detail, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".renting.GetForUpdateTx")
	defer scope.End()

	query := detailSelectQuery + "\nWHERE rentings.renting_id = :renting_id FOR UPDATE OF rentings"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var detail model.Detail

	prepare, err := sqltx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return detail, fmt.Errorf("failed to prepare statement (renting): %w", err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &detail, map[string]any{"renting_id": id})
	if errors.Is(err, sql.ErrNoRows) {
		return detail, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return detail, fmt.Errorf("failed to lock renting: %w", err)
	}

	return detail, nil
}

// ArchiveTx marks the renting checked out and reports how many rows changed.
func (repo *repositoryImpl) ArchiveTx(ctx context.Context, sqltx *sqlx.Tx, id int64) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".renting.ArchiveTx")
	defer scope.End()

	query := "UPDATE rentings SET is_archived = TRUE, modified_at = :modified_at WHERE renting_id = :renting_id AND is_archived = FALSE"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := sqltx.NamedExecContext(ctx, query, map[string]any{
		"renting_id":  id,
		"modified_at": timezone.Now(),
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to archive renting: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read archive result: %w", err)
	}

	return affected, nil
}
