package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ehotel/shared"
	"ehotel/shared/constant"
	"ehotel/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "remainder rounds up",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "total below limit",
			total:    3,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name     string `db:"hotel_name"`
		Category int    `db:"category"`
		Ignored  string
	}

	t.Run("non-zero tagged fields are mapped", func(t *testing.T) {
		fields := shared.TransformFields(update{Name: "Grand Lorem", Category: 4, Ignored: "x"})

		assert.Equal(t, "Grand Lorem", fields["hotel_name"])
		assert.Equal(t, 4, fields["category"])
		assert.Contains(t, fields, constant.FieldModifiedAt)
		assert.Len(t, fields, 3)
	})

	t.Run("zero fields are skipped", func(t *testing.T) {
		fields := shared.TransformFields(update{Name: "Grand Lorem"})

		assert.Equal(t, "Grand Lorem", fields["hotel_name"])
		assert.NotContains(t, fields, "category")
	})
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(int64(42), "hotel_id", "hotels")

	where, args := group.GetWhereClause()

	assert.Contains(t, where, "hotels.hotel_id = :hotel_id")
	assert.Equal(t, int64(42), args["hotel_id"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "hotel:7", shared.BuildCacheKey("hotel", int64(7)))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "price", SortDir: "asc"}

	key := shared.BuildCacheKeyWithQuery("room", params, "hotel=3")

	assert.Equal(t, "room:list:p2:l10:sprice_asc:hotel=3", key)
}

func TestParseID(t *testing.T) {
	t.Run("numeric id", func(t *testing.T) {
		id, err := shared.ParseID("42")

		assert.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("non numeric id", func(t *testing.T) {
		_, err := shared.ParseID("abc")

		assert.Error(t, err)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := shared.ParseID("")

		assert.Error(t, err)
	})
}
