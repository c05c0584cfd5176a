package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"ehotel/config"
	"ehotel/infras/otel"
	"ehotel/infras/postgres"
	customerModel "ehotel/internal/domains/customer/model"
	customerRepo "ehotel/internal/domains/customer/repository"
	"ehotel/internal/domains/renting/model/dto"
	"ehotel/internal/domains/renting/repository"
	roomModel "ehotel/internal/domains/room/model"
	roomRepo "ehotel/internal/domains/room/repository"
	"ehotel/internal/events"
	"ehotel/shared"
	"ehotel/shared/cache"
	"ehotel/shared/constant"
	"ehotel/shared/dates"
	gDto "ehotel/shared/dto"
	"ehotel/shared/failure"
)

const (
	cacheGetRenting    = "renting:get"
	cacheGetAllRenting = "renting:gets"
)

type Renting interface {
	Create(ctx context.Context, employeeID int64, req dto.CreateRentingRequest) (dto.CreateRentingResponse, error)
	Get(ctx context.Context, id int64) (dto.RentingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams) (dto.GetRentingsResponse, error)
	CheckOut(ctx context.Context, rentingID int64) (dto.RentingResponse, error)
}

type serviceImpl struct {
	repo         repository.Renting
	customerRepo customerRepo.Customer
	roomRepo     roomRepo.Room
	db           *postgres.Connection
	cfg          *config.Config
	cache        cache.RedisCache
	publisher    events.Publisher
	otel         otel.Otel
}

func New(
	repo repository.Renting,
	customerRepo customerRepo.Customer,
	roomRepo roomRepo.Room,
	db *postgres.Connection,
	cfg *config.Config,
	cache cache.RedisCache,
	publisher events.Publisher,
	otel otel.Otel,
) Renting {
	return &serviceImpl{
		repo:         repo,
		customerRepo: customerRepo,
		roomRepo:     roomRepo,
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

// Create opens a renting without a prior booking, for walk-in customers.
func (s *serviceImpl) Create(ctx context.Context, employeeID int64, req dto.CreateRentingRequest) (res dto.CreateRentingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRenting")
	defer scope.End()
	defer scope.TraceIfError(err)

	renting, err := req.ToModel(employeeID)
	if err != nil {
		return res, err
	}

	customerExists, err := s.customerRepo.Exist(ctx, shared.FilterByID(req.CustomerID, customerModel.FieldID, customerModel.TableName))
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
				log.Error().Err(rbErr).Msg("failed to rollback renting creation")
			}
		}
	}()

	// The renting occupies [rent_date, rent_date + duration days].
	occupancyEnd := dates.AddDays(renting.RentDate, renting.Duration)

	available, err := s.roomRepo.IsAvailableTx(ctx, tx, req.HotelID, req.RoomID, renting.RentDate, occupancyEnd)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room availability")

		return res, fmt.Errorf("failed to check room availability: %w", err)
	}

	if !available {
		return res, failure.Conflict("room is not available for the requested dates") // nolint:wrapcheck
	}

	id, err := s.repo.InsertReturningIDTx(ctx, tx, renting)
	if err != nil {
		log.Error().Err(err).Msg("failed to create renting")

		return res, fmt.Errorf("failed to create renting: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit renting creation")

		return res, fmt.Errorf("failed to commit renting creation: %w", err)
	}

	renting.ID = id
	res.FromModel(renting)

	s.publisher.Publish(ctx, events.TypeRentingCreated, res)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRenting)
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RentingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRenting")
	defer scope.End()
	defer scope.TraceIfError(err)

	detail, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get renting")

		return res, fmt.Errorf("failed to get renting: %w", err)
	}

	if detail.ID == 0 {
		return res, failure.NotFound("renting not found") // nolint:wrapcheck
	}

	res.FromModel(detail)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams) (res dto.GetRentingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllRentings")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRenting, req)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rentings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count rentings")

		return res, fmt.Errorf("failed to count rentings: %w", err)
	}

	details, err := s.repo.GetAllDetail(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rentings")

		return res, fmt.Errorf("failed to get rentings: %w", err)
	}

	res.FromModels(details, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rentings to cache")
		}
	}()

	return res, nil
}

// CheckOut closes a renting. The row is locked so the paid-in-full check
// and the archive are atomic with respect to concurrent payments.
func (s *serviceImpl) CheckOut(ctx context.Context, rentingID int64) (res dto.RentingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOutRenting")
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
				log.Error().Err(rbErr).Msg("failed to rollback check-out")
			}
		}
	}()

	detail, err := s.repo.GetForUpdateTx(ctx, tx, rentingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to lock renting")

		return res, fmt.Errorf("failed to lock renting: %w", err)
	}

	if detail.ID == 0 {
		return res, failure.NotFound("renting not found") // nolint:wrapcheck
	}

	if detail.IsArchived {
		return res, failure.Conflict("renting has already been checked out") // nolint:wrapcheck
	}

	if !detail.IsPaidInFull() {
		return res, failure.PaymentIncomplete(detail.RemainingAmount()) // nolint:wrapcheck
	}

	affected, err := s.repo.ArchiveTx(ctx, tx, rentingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to archive renting")

		return res, fmt.Errorf("failed to archive renting: %w", err)
	}

	if affected == 0 {
		return res, failure.Consistency("renting could not be archived") // nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit check-out")

		return res, fmt.Errorf("failed to commit check-out: %w", err)
	}

	detail.IsArchived = true
	res.FromModel(detail)

	s.publisher.Publish(ctx, events.TypeRentingCheckedOut, res)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRenting)
	}()

	return res, nil
}
