package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ehotel/config"
	otelMocks "ehotel/infras/otel/mocks"
	"ehotel/infras/postgres"
	bookingMocks "ehotel/internal/domains/booking/mocks"
	"ehotel/internal/domains/booking/model"
	"ehotel/internal/domains/booking/model/dto"
	"ehotel/internal/domains/booking/service"
	customerMocks "ehotel/internal/domains/customer/mocks"
	rentingMocks "ehotel/internal/domains/renting/mocks"
	rentingModel "ehotel/internal/domains/renting/model"
	roomMocks "ehotel/internal/domains/room/mocks"
	eventMocks "ehotel/internal/events/mocks"
	cacheMocks "ehotel/shared/cache/mocks"
	gDto "ehotel/shared/dto"
	"ehotel/shared/failure"
)

func newTestDB(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	conn := sqlx.NewDb(db, "sqlmock")

	return &postgres.Connection{Read: conn, Write: conn}, mock
}

func date(value string) time.Time {
	parsed, _ := time.ParseInLocation("2006-01-02", value, time.UTC)

	return parsed
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockRentingRepo := rentingMocks.NewMockRenting(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	req := dto.CreateBookingRequest{
		HotelID:   1,
		RoomID:    101,
		StartDate: "2024-01-10",
		EndDate:   "2024-01-15",
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  req,
			setupMock: func(mock sqlmock.Sqlmock) {
				mockCustomerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mock.ExpectBegin()

				mockRoomRepo.EXPECT().
					IsAvailableTx(gomock.Any(), gomock.Any(), int64(1), int64(101), date("2024-01-10"), date("2024-01-15")).
					Return(true, nil)

				mockRepo.EXPECT().
					InsertReturningIDTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(7), nil)

				mock.ExpectCommit()

				mockPublisher.EXPECT().
					Publish(gomock.Any(), gomock.Any(), gomock.Any())

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "end date before start date",
			req: dto.CreateBookingRequest{
				HotelID:   1,
				RoomID:    101,
				StartDate: "2024-01-15",
				EndDate:   "2024-01-10",
			},
			setupMock: func(mock sqlmock.Sqlmock) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "customer not found",
			req:  req,
			setupMock: func(mock sqlmock.Sqlmock) {
				mockCustomerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "room not found",
			req:  req,
			setupMock: func(mock sqlmock.Sqlmock) {
				mockCustomerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "room occupied by an overlapping stay",
			req:  req,
			setupMock: func(mock sqlmock.Sqlmock) {
				mockCustomerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mock.ExpectBegin()

				mockRoomRepo.EXPECT().
					IsAvailableTx(gomock.Any(), gomock.Any(), int64(1), int64(101), date("2024-01-10"), date("2024-01-15")).
					Return(false, nil)

				mock.ExpectRollback()
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "insert error rolls back",
			req:  req,
			setupMock: func(mock sqlmock.Sqlmock) {
				mockCustomerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mock.ExpectBegin()

				mockRoomRepo.EXPECT().
					IsAvailableTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					InsertReturningIDTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))

				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setupMock(mock)

			svc := service.New(mockRepo, mockCustomerRepo, mockRoomRepo, mockRentingRepo, db, cfg, mockCache, mockPublisher, mockOtel)

			res, err := svc.Create(context.Background(), 42, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(7), res.ID)
				assert.Equal(t, int64(42), res.CustomerID)
				assert.Equal(t, "2024-01-10", res.StartDate)
				assert.Equal(t, "2024-01-15", res.EndDate)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockRentingRepo := rentingMocks.NewMockRenting(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	db, _ := newTestDB(t)
	svc := service.New(mockRepo, mockCustomerRepo, mockRoomRepo, mockRentingRepo, db, cfg, mockCache, mockPublisher, mockOtel)

	booking := model.Booking{
		ID:          7,
		CustomerID:  42,
		HotelID:     1,
		RoomID:      101,
		BookingDate: date("2024-01-02"),
		StartDate:   date("2024-01-10"),
		EndDate:     date("2024-01-15"),
	}

	tests := []struct {
		name      string
		id        int64
		setupMock func()
		wantErr   bool
		wantCode  int
		wantID    int64
	}{
		{
			name: "cache hit",
			id:   7,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   7,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  7,
		},
		{
			name: "booking not found",
			id:   99,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			id:   7,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				if tt.wantID != 0 {
					assert.Equal(t, tt.wantID, res.ID)
				}
			}
		})
	}
}

func TestBookingService_CheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockRentingRepo := rentingMocks.NewMockRenting(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	booking := model.Booking{
		ID:         7,
		CustomerID: 42,
		HotelID:    1,
		RoomID:     101,
		StartDate:  date("2024-01-10"),
		EndDate:    date("2024-01-15"),
	}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful check-in",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), int64(7)).
					Return(booking, nil)

				mockRentingRepo.EXPECT().
					InsertReturningIDTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, renting rentingModel.Renting) (int64, error) {
						assert.Equal(t, int64(42), renting.CustomerID)
						assert.Equal(t, date("2024-01-10"), renting.RentDate)
						assert.Equal(t, 5, renting.Duration)
						assert.Equal(t, int64(9), renting.HandledBy)

						return int64(3), nil
					})

				mockRepo.EXPECT().
					ArchiveTx(gomock.Any(), gomock.Any(), int64(7)).
					Return(int64(1), nil)

				mock.ExpectCommit()

				mockPublisher.EXPECT().
					Publish(gomock.Any(), gomock.Any(), gomock.Any())

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), int64(7)).
					Return(model.Booking{}, nil)

				mock.ExpectRollback()
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "already checked in",
			setupMock: func(mock sqlmock.Sqlmock) {
				archived := booking
				archived.IsArchived = true

				mock.ExpectBegin()

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), int64(7)).
					Return(archived, nil)

				mock.ExpectRollback()
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "archive raced, nothing committed",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), int64(7)).
					Return(booking, nil)

				mockRentingRepo.EXPECT().
					InsertReturningIDTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(3), nil)

				mockRepo.EXPECT().
					ArchiveTx(gomock.Any(), gomock.Any(), int64(7)).
					Return(int64(0), nil)

				mock.ExpectRollback()
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setupMock(mock)

			svc := service.New(mockRepo, mockCustomerRepo, mockRoomRepo, mockRentingRepo, db, cfg, mockCache, mockPublisher, mockOtel)

			res, err := svc.CheckIn(context.Background(), 7, 9)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(3), res.RentingID)
				assert.Equal(t, int64(7), res.BookingID)
				assert.Equal(t, "2024-01-10", res.RentDate)
				assert.Equal(t, 5, res.Duration)
				assert.Equal(t, int64(9), res.HandledBy)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingService_CheckIn_SameDayStay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockRentingRepo := rentingMocks.NewMockRenting(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// A booking whose stay starts and ends on the same date still occupies
	// the room for one day; the renting it opens must never carry a zero
	// duration.
	booking := model.Booking{
		ID:         7,
		CustomerID: 42,
		HotelID:    1,
		RoomID:     101,
		StartDate:  date("2024-03-01"),
		EndDate:    date("2024-03-01"),
	}

	db, mock := newTestDB(t)
	mock.ExpectBegin()

	mockRepo.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), int64(7)).
		Return(booking, nil)

	mockRentingRepo.EXPECT().
		InsertReturningIDTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, renting rentingModel.Renting) (int64, error) {
			assert.Equal(t, 1, renting.Duration)
			assert.Equal(t, date("2024-03-01"), renting.RentDate)

			return int64(3), nil
		})

	mockRepo.EXPECT().
		ArchiveTx(gomock.Any(), gomock.Any(), int64(7)).
		Return(int64(1), nil)

	mock.ExpectCommit()

	mockPublisher.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any())

	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, mockCustomerRepo, mockRoomRepo, mockRentingRepo, db, cfg, mockCache, mockPublisher, mockOtel)

	res, err := svc.CheckIn(context.Background(), 7, 9)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Duration)
	assert.Equal(t, "2024-03-01", res.RentDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockRentingRepo := rentingMocks.NewMockRenting(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	db, _ := newTestDB(t)
	svc := service.New(mockRepo, mockCustomerRepo, mockRoomRepo, mockRentingRepo, db, cfg, mockCache, mockPublisher, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "successful get all",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{{ID: 7}}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name: "count error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name: "get all error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, res.TotalData)
			}
		})
	}
}
