package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "ehotel/infras/otel/mocks"
	"ehotel/infras/postgres"
	"ehotel/internal/domains/room/model"
	"ehotel/internal/domains/room/repository"
)

// newTestDB wires sqlmock with a matcher that records the SQL actually
// sent, so tests can assert on predicates that must (or must not) appear
// in the generated query.
func newTestDB(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock, *string) {
	t.Helper()

	var captured string

	matcher := sqlmock.QueryMatcherFunc(func(_, actual string) error {
		captured = actual

		return nil
	})

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(matcher))
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	conn := sqlx.NewDb(db, "sqlmock")

	return &postgres.Connection{Read: conn, Write: conn}, mock, &captured
}

func date(value string) time.Time {
	parsed, _ := time.ParseInLocation("2006-01-02", value, time.UTC)

	return parsed
}

var searchColumns = []string{
	"hotel_id", "room_id", "price", "capacity", "amenities",
	"view_type", "is_extendable", "damage_description",
	"hotel_name", "hotel_address", "chain_id",
	"star_rating", "hotel_email", "hotel_phone", "number_of_rooms",
}

func searchRows() *sqlmock.Rows {
	return sqlmock.NewRows(searchColumns).
		AddRow(int64(1), int64(101), int64(150), "double", "wifi,tv", "sea", true, nil,
			"Grand Hotel", "12 Harbor St, Halifax", int64(2), 4, "contact@grand.example", "+1-902-555-0101", 40)
}

func TestRoomRepository_Search_DateWindow(t *testing.T) {
	db, mock, captured := newTestDB(t)
	repo := repository.New(db, otelMocks.NewOtel())

	mock.ExpectPrepare("").ExpectQuery().WillReturnRows(searchRows())

	start := date("2024-05-01")
	end := date("2024-05-03")

	rows, err := repo.Search(context.Background(), model.SearchCriteria{Start: &start, End: &end})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(101), rows[0].RoomID)

	// Archived bookings must not block the window; rentings block it
	// whether archived or not.
	assert.Contains(t, *captured, "b.is_archived = FALSE")
	assert.NotContains(t, *captured, "r.is_archived")
	assert.Contains(t, *captured, "r.rent_date")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_Search_NoDates(t *testing.T) {
	db, mock, captured := newTestDB(t)
	repo := repository.New(db, otelMocks.NewOtel())

	mock.ExpectPrepare("").ExpectQuery().WillReturnRows(searchRows())

	rows, err := repo.Search(context.Background(), model.SearchCriteria{})

	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Without a window any renting row excludes the room, so the renting
	// subquery carries no date predicate at all.
	assert.Contains(t, *captured, "b.is_archived = FALSE")
	assert.Contains(t, *captured, "FROM rentings r")
	assert.NotContains(t, *captured, "rent_date")
	assert.NotContains(t, *captured, "r.is_archived")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_IsAvailableTx(t *testing.T) {
	db, mock, captured := newTestDB(t)
	repo := repository.New(db, otelMocks.NewOtel())

	mock.ExpectBegin()
	mock.ExpectPrepare("").ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"available"}).AddRow(true))

	tx, err := db.Write.Beginx()
	require.NoError(t, err)

	available, err := repo.IsAvailableTx(context.Background(), tx, 1, 101, date("2024-05-01"), date("2024-05-03"))

	require.NoError(t, err)
	assert.True(t, available)

	assert.Contains(t, *captured, "b.is_archived = FALSE")
	assert.NotContains(t, *captured, "r.is_archived")

	assert.NoError(t, mock.ExpectationsWereMet())
}
