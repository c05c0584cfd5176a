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
	customerMocks "ehotel/internal/domains/customer/mocks"
	rentingMocks "ehotel/internal/domains/renting/mocks"
	"ehotel/internal/domains/renting/model"
	"ehotel/internal/domains/renting/model/dto"
	"ehotel/internal/domains/renting/service"
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

func TestRentingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := rentingMocks.NewMockRenting(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	req := dto.CreateRentingRequest{
		CustomerID: 42,
		HotelID:    1,
		RoomID:     101,
		RentDate:   "2024-01-10",
		Duration:   5,
	}

	tests := []struct {
		name      string
		req       dto.CreateRentingRequest
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful walk-in renting",
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
					Return(int64(3), nil)

				mock.ExpectCommit()

				mockPublisher.EXPECT().
					Publish(gomock.Any(), gomock.Any(), gomock.Any())

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "malformed rent date",
			req: dto.CreateRentingRequest{
				CustomerID: 42,
				HotelID:    1,
				RoomID:     101,
				RentDate:   "10-01-2024",
				Duration:   5,
			},
			setupMock: func(mock sqlmock.Sqlmock) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "customer not found, nothing written",
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
			name: "room occupied for the requested window",
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
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setupMock(mock)

			svc := service.New(mockRepo, mockCustomerRepo, mockRoomRepo, db, cfg, mockCache, mockPublisher, mockOtel)

			res, err := svc.Create(context.Background(), 9, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(3), res.RentingID)
				assert.Equal(t, "2024-01-10", res.RentDate)
				assert.Equal(t, 5, res.Duration)
				assert.Equal(t, int64(9), res.HandledBy)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRentingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := rentingMocks.NewMockRenting(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	db, _ := newTestDB(t)
	svc := service.New(mockRepo, mockCustomerRepo, mockRoomRepo, db, cfg, mockCache, mockPublisher, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
		check     func(t *testing.T, res dto.RentingResponse)
	}{
		{
			name: "partially paid renting",
			setupMock: func() {
				mockRepo.EXPECT().
					GetDetail(gomock.Any(), int64(3)).
					Return(model.Detail{
						ID:        3,
						RoomPrice: 10000,
						TotalPaid: 4000,
						RentDate:  date("2024-01-10"),
						Duration:  5,
					}, nil)
			},
			check: func(t *testing.T, res dto.RentingResponse) {
				assert.Equal(t, int64(4000), res.TotalPaid)
				assert.Equal(t, int64(6000), res.RemainingAmount)
				assert.False(t, res.IsPaidInFull)
			},
		},
		{
			name: "renting not found",
			setupMock: func() {
				mockRepo.EXPECT().
					GetDetail(gomock.Any(), int64(3)).
					Return(model.Detail{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					GetDetail(gomock.Any(), int64(3)).
					Return(model.Detail{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), 3)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				tt.check(t, res)
			}
		})
	}
}

func TestRentingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := rentingMocks.NewMockRenting(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	db, _ := newTestDB(t)
	svc := service.New(mockRepo, mockCustomerRepo, mockRoomRepo, db, cfg, mockCache, mockPublisher, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAllDetail(gomock.Any(), gomock.Any()).
					Return([]model.Detail{{ID: 3}}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantTotal: 1,
		},
		{
			name: "count error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, res.TotalData)
			}
		})
	}
}

func TestRentingService_CheckOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := rentingMocks.NewMockRenting(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	paid := model.Detail{
		ID:        3,
		RoomPrice: 10000,
		TotalPaid: 10000,
		RentDate:  date("2024-01-10"),
		Duration:  5,
	}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful check-out",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), int64(3)).
					Return(paid, nil)

				mockRepo.EXPECT().
					ArchiveTx(gomock.Any(), gomock.Any(), int64(3)).
					Return(int64(1), nil)

				mock.ExpectCommit()

				mockPublisher.EXPECT().
					Publish(gomock.Any(), gomock.Any(), gomock.Any())

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "renting not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), int64(3)).
					Return(model.Detail{}, nil)

				mock.ExpectRollback()
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "already checked out",
			setupMock: func(mock sqlmock.Sqlmock) {
				archived := paid
				archived.IsArchived = true

				mock.ExpectBegin()

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), int64(3)).
					Return(archived, nil)

				mock.ExpectRollback()
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "outstanding balance blocks check-out",
			setupMock: func(mock sqlmock.Sqlmock) {
				unpaid := paid
				unpaid.TotalPaid = 4000

				mock.ExpectBegin()

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), int64(3)).
					Return(unpaid, nil)

				mock.ExpectRollback()
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "archive raced, nothing committed",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()

				mockRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), int64(3)).
					Return(paid, nil)

				mockRepo.EXPECT().
					ArchiveTx(gomock.Any(), gomock.Any(), int64(3)).
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

			svc := service.New(mockRepo, mockCustomerRepo, mockRoomRepo, db, cfg, mockCache, mockPublisher, mockOtel)

			res, err := svc.CheckOut(context.Background(), 3)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.True(t, res.IsArchived)
				assert.True(t, res.IsPaidInFull)
				assert.Zero(t, res.RemainingAmount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
