package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"ehotel/config"
	"ehotel/infras/otel"
	"ehotel/infras/postgres"
	hotelModel "ehotel/internal/domains/hotel/model"
	hotelRepo "ehotel/internal/domains/hotel/repository"
	"ehotel/internal/domains/room/model"
	"ehotel/internal/domains/room/model/dto"
	"ehotel/internal/domains/room/repository"
	"ehotel/shared"
	"ehotel/shared/cache"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/failure"
)

const cacheGetRoomsByHotel = "room:gets"

type Room interface {
	Create(ctx context.Context, hotelID int64, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	Update(ctx context.Context, hotelID, roomID int64, req dto.UpdateRoomRequest) error
	Delete(ctx context.Context, hotelID, roomID int64) error
	GetByHotel(ctx context.Context, hotelID int64) (dto.GetRoomsResponse, error)
	Search(ctx context.Context, req dto.SearchRoomsRequest) (dto.SearchRoomsResponse, error)
}

type serviceImpl struct {
	repo      repository.Room
	hotelRepo hotelRepo.Hotel
	db        *postgres.Connection
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Room, hotelRepo hotelRepo.Hotel, db *postgres.Connection, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:      repo,
		hotelRepo: hotelRepo,
		db:        db,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func filterByRoom(hotelID, roomID int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHotelID,
				Value:    hotelID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) Create(ctx context.Context, hotelID int64, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotelExists, err := s.hotelRepo.Exist(ctx, shared.FilterByID(hotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return res, fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !hotelExists {
		return res, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return res, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback room creation")
			}
		}
	}()

	roomID, err := s.repo.NextRoomIDTx(ctx, tx, hotelID)
	if err != nil {
		log.Error().Err(err).Msg("failed to assign room number")

		return res, fmt.Errorf("failed to assign room number: %w", err)
	}

	room := req.ToModel(hotelID)
	room.RoomID = roomID

	if err = s.repo.InsertTx(ctx, tx, room); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("room number was assigned concurrently, retry the request") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	if err = s.repo.AdjustHotelRoomCountTx(ctx, tx, hotelID, 1); err != nil {
		return res, err
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit room creation")

		return res, fmt.Errorf("failed to commit room creation: %w", err)
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetRoomsByHotel, shared.BuildCacheKey(cacheGetRoomsByHotel, hotelID))
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, hotelID, roomID int64, req dto.UpdateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateRoomRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := filterByRoom(hotelID, roomID)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetRoomsByHotel, shared.BuildCacheKey(cacheGetRoomsByHotel, hotelID))
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, hotelID, roomID int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := filterByRoom(hotelID, roomID)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback room deletion")
			}
		}
	}()

	if err = s.repo.DeleteTx(ctx, tx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	if err = s.repo.AdjustHotelRoomCountTx(ctx, tx, hotelID, -1); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit room deletion")

		return fmt.Errorf("failed to commit room deletion: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetRoomsByHotel, shared.BuildCacheKey(cacheGetRoomsByHotel, hotelID))
	}()

	return nil
}

func (s *serviceImpl) GetByHotel(ctx context.Context, hotelID int64) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoomsByHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoomsByHotel, hotelID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	hotelExists, err := s.hotelRepo.Exist(ctx, shared.FilterByID(hotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return res, fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !hotelExists {
		return res, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	params := gDto.QueryParams{SortBy: model.FieldRoomID, SortDir: "asc"}

	models, err := s.repo.GetAll(ctx, params, shared.FilterByID(hotelID, model.FieldHotelID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, req dto.SearchRoomsRequest) (res dto.SearchRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	criteria, err := req.ToCriteria()
	if err != nil {
		return res, err
	}

	rows, err := s.repo.Search(ctx, criteria)
	if err != nil {
		log.Error().Err(err).Msg("failed to search rooms")

		return res, fmt.Errorf("failed to search rooms: %w", err)
	}

	res.FromModels(rows)

	return res, nil
}
