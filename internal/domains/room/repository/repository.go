package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"ehotel/infras/otel"
	"ehotel/infras/postgres"
	"ehotel/internal/domains/room/model"
	"ehotel/shared/constant"
	"ehotel/shared/dates"
	gDto "ehotel/shared/dto"
	"ehotel/shared/logger"
	gRepo "ehotel/shared/repository"
)

type Room interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error

	NextRoomIDTx(ctx context.Context, sqltx *sqlx.Tx, hotelID int64) (int64, error)
	AdjustHotelRoomCountTx(ctx context.Context, sqltx *sqlx.Tx, hotelID int64, delta int) error
	IsAvailableTx(ctx context.Context, sqltx *sqlx.Tx, hotelID, roomID int64, start, end time.Time) (bool, error)
	Search(ctx context.Context, criteria model.SearchCriteria) ([]model.SearchRow, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldRoomID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// NextRoomIDTx assigns the next room number within a hotel. Room numbers
// are scoped per hotel; the composite primary key rejects the loser of a
// concurrent assignment.
func (repo *repositoryImpl) NextRoomIDTx(ctx context.Context, sqltx *sqlx.Tx, hotelID int64) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.NextRoomIDTx")
	defer scope.End()

	query := "SELECT COALESCE(MAX(room_id), 0) + 1 FROM rooms WHERE hotel_id = :hotel_id"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := sqltx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (room): %w", err)
	}
	defer prepare.Close()

	var next int64

	err = prepare.GetContext(ctx, &next, map[string]any{"hotel_id": hotelID})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to get next room id: %w", err)
	}

	return next, nil
}

// AdjustHotelRoomCountTx bumps the denormalized room counter on the hotel
// row within the same transaction as the room write.
func (repo *repositoryImpl) AdjustHotelRoomCountTx(ctx context.Context, sqltx *sqlx.Tx, hotelID int64, delta int) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.AdjustHotelRoomCountTx")
	defer scope.End()

	query := "UPDATE hotels SET number_of_rooms = number_of_rooms + :delta WHERE hotel_id = :hotel_id"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := sqltx.NamedExecContext(ctx, query, map[string]any{"delta": delta, "hotel_id": hotelID})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to adjust hotel room count: %w", err)
	}

	return nil
}

// availabilityQuery holds the occupancy predicate. A room is free for the
// closed interval [start, end] when no non-archived booking overlaps it
// and no renting, archived or not, overlaps it. Rentings occupy
// [rent_date, rent_date + duration days].
const availabilityQuery = `
SELECT NOT EXISTS (
	SELECT 1 FROM bookings b
	WHERE b.hotel_id = :hotel_id AND b.room_id = :room_id
		AND b.is_archived = FALSE
		AND b.start_date <= :end_date AND b.end_date >= :start_date
) AND NOT EXISTS (
	SELECT 1 FROM rentings r
	WHERE r.hotel_id = :hotel_id AND r.room_id = :room_id
		AND r.rent_date <= :end_date
		AND r.rent_date + r.duration * INTERVAL '1 day' >= :start_date
)`

// IsAvailableTx runs the availability predicate inside the caller's
// transaction so the answer holds until commit.
func (repo *repositoryImpl) IsAvailableTx(ctx context.Context, sqltx *sqlx.Tx, hotelID, roomID int64, start, end time.Time) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.IsAvailableTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, availabilityQuery)

	prepare, err := sqltx.PrepareNamedContext(ctx, availabilityQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to prepare statement (room): %w", err)
	}
	defer prepare.Close()

	args := map[string]any{
		"hotel_id":   hotelID,
		"room_id":    roomID,
		"start_date": dates.Truncate(start),
		"end_date":   dates.Truncate(end),
	}

	var available bool

	err = prepare.GetContext(ctx, &available, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check room availability: %w", err)
	}

	return available, nil
}

const searchSelectQuery = `
SELECT rooms.hotel_id, rooms.room_id, rooms.price, rooms.capacity, rooms.amenities,
	rooms.view_type, rooms.is_extendable, rooms.damage_description,
	hotels.name AS hotel_name, hotels.address AS hotel_address, hotels.chain_id,
	hotels.star_rating, hotels.email AS hotel_email, hotels.phone AS hotel_phone,
	hotels.number_of_rooms
FROM rooms
JOIN hotels ON hotels.hotel_id = rooms.hotel_id`

// Search applies the conjunctive criteria as a parameterized named query.
// Criteria values only ever travel as named arguments.
func (repo *repositoryImpl) Search(ctx context.Context, criteria model.SearchCriteria) ([]model.SearchRow, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Search")
	defer scope.End()

	conditions := []string{}
	args := map[string]any{}

	if criteria.Capacity != nil {
		conditions = append(conditions, "rooms.capacity = :capacity")
		args["capacity"] = *criteria.Capacity
	}

	if criteria.MinPrice != nil {
		conditions = append(conditions, "rooms.price >= :min_price")
		args["min_price"] = *criteria.MinPrice
	}

	if criteria.MaxPrice != nil {
		conditions = append(conditions, "rooms.price <= :max_price")
		args["max_price"] = *criteria.MaxPrice
	}

	if criteria.Area != nil {
		conditions = append(conditions, "LOWER(hotels.address) LIKE LOWER(:area)")
		args["area"] = fmt.Sprintf("%%%s%%", *criteria.Area)
	}

	if criteria.ChainID != nil {
		conditions = append(conditions, "hotels.chain_id = :chain_id")
		args["chain_id"] = *criteria.ChainID
	}

	if criteria.StarRating != nil {
		conditions = append(conditions, "hotels.star_rating = :star_rating")
		args["star_rating"] = *criteria.StarRating
	}

	if criteria.MinRoomCount != nil {
		conditions = append(conditions, "hotels.number_of_rooms >= :min_room_count")
		args["min_room_count"] = *criteria.MinRoomCount
	}

	if criteria.Start != nil && criteria.End != nil {
		conditions = append(conditions, `NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.hotel_id = rooms.hotel_id AND b.room_id = rooms.room_id
				AND b.is_archived = FALSE
				AND b.start_date <= :end_date AND b.end_date >= :start_date
		)`, `NOT EXISTS (
			SELECT 1 FROM rentings r
			WHERE r.hotel_id = rooms.hotel_id AND r.room_id = rooms.room_id
				AND r.rent_date <= :end_date
				AND r.rent_date + r.duration * INTERVAL '1 day' >= :start_date
		)`)
		args["start_date"] = dates.Truncate(*criteria.Start)
		args["end_date"] = dates.Truncate(*criteria.End)
	} else {
		// Without a date window a room occupied by any open booking or by
		// any renting row is out.
		conditions = append(conditions, `NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.hotel_id = rooms.hotel_id AND b.room_id = rooms.room_id
				AND b.is_archived = FALSE
		)`, `NOT EXISTS (
			SELECT 1 FROM rentings r
			WHERE r.hotel_id = rooms.hotel_id AND r.room_id = rooms.room_id
		)`)
	}

	query := searchSelectQuery
	if len(conditions) > 0 {
		query = fmt.Sprintf("%s\nWHERE %s", query, strings.Join(conditions, "\n\tAND "))
	}

	query += "\nORDER BY rooms.hotel_id, rooms.room_id"

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (room): %w", err)
	}
	defer prepare.Close()

	var rows []model.SearchRow

	err = prepare.SelectContext(ctx, &rows, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to search rooms: %w", err)
	}

	return rows, nil
}
