package shared

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"ehotel/shared/constant"
	"ehotel/shared/dto"
	"ehotel/shared/failure"
	"ehotel/shared/timezone"
)

// ParseID converts a path parameter into a numeric identifier.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("id must be a positive integer") // nolint:wrapcheck
	}

	return id, nil
}

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the non-zero fields of a struct into a map of
// updated columns keyed by db tag, stamping modified_at.
func TransformFields(data interface{}) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()

	return updatedFields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey composes a cache key as entity:id, used for single records.
func BuildCacheKey(entity string, id any) string {
	return fmt.Sprintf("%s:%v", entity, id)
}

// BuildCacheKeyWithQuery composes a cache key for list lookups, embedding
// pagination and any extra filter parts so distinct queries never collide.
func BuildCacheKeyWithQuery(entity string, params dto.QueryParams, parts ...string) string {
	key := fmt.Sprintf("%s:list:p%d:l%d", entity, params.Page, params.Limit)

	if params.SortBy != "" {
		key = fmt.Sprintf("%s:s%s_%s", key, params.SortBy, params.SortDir)
	}

	if len(parts) > 0 {
		key = key + ":" + strings.Join(parts, ":")
	}

	return key
}

type cacheInvalidator interface {
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, prefix string) error
}

// InvalidateCaches removes the given keys and clears every list entry of
// the entity. Invoked after writes, typically on a detached context.
func InvalidateCaches(ctx context.Context, redis cacheInvalidator, entity string, keys ...string) {
	for _, key := range keys {
		if err := redis.Delete(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to invalidate cache")
		}
	}

	if err := redis.Clear(ctx, entity+":list:*"); err != nil {
		log.Warn().Err(err).Str("entity", entity).Msg("failed to clear list caches")
	}
}
