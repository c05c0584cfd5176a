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
	"ehotel/internal/domains/booking/model"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/logger"
	gRepo "ehotel/shared/repository"
	"ehotel/shared/timezone"
)

type Booking interface {
	InsertReturningIDTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)

	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, id int64) (model.Booking, error)
	ArchiveTx(ctx context.Context, sqltx *sqlx.Tx, id int64) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetForUpdateTx locks the booking row until the transaction ends. A zero
// ID on the returned model means the booking does not exist.
func (repo *repositoryImpl) GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, id int64) (model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetForUpdateTx")
	defer scope.End()

	query := `SELECT booking_id, customer_id, hotel_id, room_id, booking_date, start_date, end_date, is_archived
		FROM bookings WHERE booking_id = :booking_id FOR UPDATE`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var booking model.Booking

	prepare, err := sqltx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return booking, fmt.Errorf("failed to prepare statement (booking): %w", err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &booking, map[string]any{"booking_id": id})
	if errors.Is(err, sql.ErrNoRows) {
		return booking, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return booking, fmt.Errorf("failed to lock booking: %w", err)
	}

	return booking, nil
}

// ArchiveTx marks the booking consumed and reports how many rows changed.
// Archiving is one way; the predicate refuses rows already archived.
func (repo *repositoryImpl) ArchiveTx(ctx context.Context, sqltx *sqlx.Tx, id int64) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ArchiveTx")
	defer scope.End()

	query := "UPDATE bookings SET is_archived = TRUE, modified_at = :modified_at WHERE booking_id = :booking_id AND is_archived = FALSE"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := sqltx.NamedExecContext(ctx, query, map[string]any{
		"booking_id":  id,
		"modified_at": timezone.Now(),
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to archive booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read archive result: %w", err)
	}

	return affected, nil
}
