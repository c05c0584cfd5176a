package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"ehotel/config"
	"ehotel/infras/otel"
	"ehotel/infras/postgres"
	"ehotel/internal/domains/booking/model"
	"ehotel/internal/domains/booking/model/dto"
	"ehotel/internal/domains/booking/repository"
	customerModel "ehotel/internal/domains/customer/model"
	customerRepo "ehotel/internal/domains/customer/repository"
	rentingModel "ehotel/internal/domains/renting/model"
	rentingRepo "ehotel/internal/domains/renting/repository"
	roomModel "ehotel/internal/domains/room/model"
	roomRepo "ehotel/internal/domains/room/repository"
	"ehotel/internal/events"
	"ehotel/shared"
	"ehotel/shared/cache"
	"ehotel/shared/constant"
	"ehotel/shared/dates"
	gDto "ehotel/shared/dto"
	"ehotel/shared/failure"
	gModel "ehotel/shared/model"
	"ehotel/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, customerID int64, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	CheckIn(ctx context.Context, bookingID, employeeID int64) (dto.CheckInResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	customerRepo customerRepo.Customer
	roomRepo     roomRepo.Room
	rentingRepo  rentingRepo.Renting
	db           *postgres.Connection
	cfg          *config.Config
	cache        cache.RedisCache
	publisher    events.Publisher
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	customerRepo customerRepo.Customer,
	roomRepo roomRepo.Room,
	rentingRepo rentingRepo.Renting,
	db *postgres.Connection,
	cfg *config.Config,
	cache cache.RedisCache,
	publisher events.Publisher,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		customerRepo: customerRepo,
		roomRepo:     roomRepo,
		rentingRepo:  rentingRepo,
		db:           db,
		cfg:          cfg,
		cache:        cache,
		publisher:    publisher,
		otel:         otel,
	}
}

func filterByRoom(hotelID, roomID int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldHotelID,
				Value:    hotelID,
				Operator: gDto.FilterOperatorEq,
				Table:    roomModel.TableName,
			},
			gDto.Filter{
				Field:    roomModel.FieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    roomModel.TableName,
			},
		},
	}
}

func (s *serviceImpl) Create(ctx context.Context, customerID int64, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := req.ToModel(customerID)
	if err != nil {
		return res, err
	}

	customerExists, err := s.customerRepo.Exist(ctx, shared.FilterByID(customerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if customer exists")

		return res, fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if !customerExists {
		return res, failure.NotFound("customer not found") // nolint:wrapcheck
	}

	roomExists, err := s.roomRepo.Exist(ctx, filterByRoom(req.HotelID, req.RoomID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return res, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback booking creation")
			}
		}
	}()

	available, err := s.roomRepo.IsAvailableTx(ctx, tx, req.HotelID, req.RoomID, booking.StartDate, booking.EndDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room availability")

		return res, fmt.Errorf("failed to check room availability: %w", err)
	}

	if !available {
		return res, failure.Conflict("room is not available for the requested dates") // nolint:wrapcheck
	}

	id, err := s.repo.InsertReturningIDTx(ctx, tx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit booking creation")

		return res, fmt.Errorf("failed to commit booking creation: %w", err)
	}

	booking.ID = id
	res.FromModel(booking)

	s.publisher.Publish(ctx, events.TypeBookingCreated, res)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filterCachePart(filter))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filterCachePart(filter))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// CheckIn converts a booking into a renting. The booking row is locked,
// the renting is written and the booking archived in one transaction so
// the booking can never be consumed twice.
func (s *serviceImpl) CheckIn(ctx context.Context, bookingID, employeeID int64) (res dto.CheckInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckInBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return res, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback check-in")
			}
		}
	}()

	booking, err := s.repo.GetForUpdateTx(ctx, tx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to lock booking")

		return res, fmt.Errorf("failed to lock booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.IsArchived {
		return res, failure.Conflict("booking has already been checked in") // nolint:wrapcheck
	}

	duration := dates.StayDuration(booking.StartDate, booking.EndDate)

	renting := rentingModel.Renting{
		CustomerID: booking.CustomerID,
		HotelID:    booking.HotelID,
		RoomID:     booking.RoomID,
		RentDate:   booking.StartDate,
		Duration:   duration,
		HandledBy:  employeeID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	rentingID, err := s.rentingRepo.InsertReturningIDTx(ctx, tx, renting)
	if err != nil {
		log.Error().Err(err).Msg("failed to create renting from booking")

		return res, fmt.Errorf("failed to create renting from booking: %w", err)
	}

	affected, err := s.repo.ArchiveTx(ctx, tx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to archive booking")

		return res, fmt.Errorf("failed to archive booking: %w", err)
	}

	if affected == 0 {
		return res, failure.Consistency("booking could not be archived") // nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit check-in")

		return res, fmt.Errorf("failed to commit check-in: %w", err)
	}

	res = dto.CheckInResponse{
		RentingID: rentingID,
		BookingID: bookingID,
		HotelID:   booking.HotelID,
		RoomID:    booking.RoomID,
		RentDate:  dates.Format(booking.StartDate),
		Duration:  duration,
		HandledBy: employeeID,
	}

	s.publisher.Publish(ctx, events.TypeBookingCheckedIn, res)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, bookingID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

// filterCachePart flattens a filter into a stable cache key fragment.
func filterCachePart(filter gDto.FilterGroup) string {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "all"
	}

	return fmt.Sprintf("%s%v", where, args)
}
