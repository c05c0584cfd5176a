package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ehotel/config"
	"ehotel/infras/jwt"
	otelMocks "ehotel/infras/otel/mocks"
	"ehotel/internal/domains/auth/model/dto"
	"ehotel/internal/domains/auth/service"
	customerMocks "ehotel/internal/domains/customer/mocks"
	customerModel "ehotel/internal/domains/customer/model"
	employeeMocks "ehotel/internal/domains/employee/mocks"
	employeeModel "ehotel/internal/domains/employee/model"
	hotelMocks "ehotel/internal/domains/hotel/mocks"
	"ehotel/shared/constant"
	"ehotel/shared/failure"
	"ehotel/shared/password"
)

func newTestJWT() jwt.JWT {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireMin = 60

	return jwt.New(cfg)
}

func TestAuthService_RegisterCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockEmployeeRepo := employeeMocks.NewMockEmployee(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockOtel := otelMocks.NewOtel()

	svc := service.New(mockCustomerRepo, mockEmployeeRepo, mockHotelRepo, newTestJWT(), mockOtel)

	req := dto.RegisterCustomerRequest{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "password123",
		Address:  "12 Analytical St",
		IDType:   "passport",
		IDNumber: "X123456",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful registration issues a token",
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockCustomerRepo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					Return(int64(42), nil)
			},
			wantErr: false,
		},
		{
			name: "email already registered",
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.RegisterCustomer(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(42), res.User.ID)
				assert.Equal(t, constant.RoleCustomer, res.User.Role)
				require.NotNil(t, res.Token)
				assert.NotEmpty(t, res.Token.AccessToken)
			}
		})
	}
}

func TestAuthService_RegisterEmployee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockEmployeeRepo := employeeMocks.NewMockEmployee(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockOtel := otelMocks.NewOtel()

	svc := service.New(mockCustomerRepo, mockEmployeeRepo, mockHotelRepo, newTestJWT(), mockOtel)

	req := dto.RegisterEmployeeRequest{
		HotelID:  1,
		FullName: "Grace Hopper",
		Email:    "grace@example.com",
		Password: "password123",
		Address:  "1 Navy Way",
		SSN:      "123-45-6789",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful registration",
			setupMock: func() {
				mockHotelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockEmployeeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockEmployeeRepo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					Return(int64(9), nil)
			},
			wantErr: false,
		},
		{
			name: "hotel not found",
			setupMock: func() {
				mockHotelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "email already registered",
			setupMock: func() {
				mockHotelRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockEmployeeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.RegisterEmployee(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(9), res.User.ID)
				assert.Equal(t, constant.RoleEmployee, res.User.Role)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockEmployeeRepo := employeeMocks.NewMockEmployee(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockOtel := otelMocks.NewOtel()

	svc := service.New(mockCustomerRepo, mockEmployeeRepo, mockHotelRepo, newTestJWT(), mockOtel)

	hashed, err := password.Hash("password123")
	require.NoError(t, err)

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		wantRole  string
	}{
		{
			name: "customer login",
			req:  dto.LoginRequest{Email: "ada@example.com", Password: "password123"},
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{ID: 42, Email: "ada@example.com", Password: hashed}, nil)
			},
			wantRole: constant.RoleCustomer,
		},
		{
			name: "employee login falls through the customer lookup",
			req:  dto.LoginRequest{Email: "grace@example.com", Password: "password123"},
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{}, nil)

				mockEmployeeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(employeeModel.Employee{ID: 9, Email: "grace@example.com", Password: hashed}, nil)
			},
			wantRole: constant.RoleEmployee,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "ada@example.com", Password: "wrong-password"},
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{ID: 42, Email: "ada@example.com", Password: hashed}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@example.com", Password: "password123"},
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{}, nil)

				mockEmployeeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(employeeModel.Employee{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantRole, res.User.Role)
				require.NotNil(t, res.Token)
				assert.NotEmpty(t, res.Token.AccessToken)
			}
		})
	}
}

func TestAuthService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockEmployeeRepo := employeeMocks.NewMockEmployee(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockOtel := otelMocks.NewOtel()

	svc := service.New(mockCustomerRepo, mockEmployeeRepo, mockHotelRepo, newTestJWT(), mockOtel)

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func()
		wantErr   bool
		wantCode  int
		wantID    int64
	}{
		{
			name: "customer profile",
			ctx: context.WithValue(
				context.WithValue(context.Background(), constant.ContextKeyUserID, int64(42)),
				constant.ContextKeyUserRole, constant.RoleCustomer,
			),
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{ID: 42, FullName: "Ada Lovelace"}, nil)
			},
			wantID: 42,
		},
		{
			name:      "not authenticated",
			ctx:       context.Background(),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Me(tt.ctx)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, res.ID)
			}
		})
	}
}
