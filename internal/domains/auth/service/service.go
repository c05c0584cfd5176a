package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"ehotel/infras/jwt"
	"ehotel/infras/otel"
	"ehotel/internal/domains/auth/model/dto"
	customerModel "ehotel/internal/domains/customer/model"
	customerRepo "ehotel/internal/domains/customer/repository"
	employeeModel "ehotel/internal/domains/employee/model"
	employeeRepo "ehotel/internal/domains/employee/repository"
	hotelModel "ehotel/internal/domains/hotel/model"
	hotelRepo "ehotel/internal/domains/hotel/repository"
	"ehotel/shared"
	"ehotel/shared/constant"
	"ehotel/shared/failure"
	"ehotel/shared/password"
)

type Auth interface {
	RegisterCustomer(ctx context.Context, req dto.RegisterCustomerRequest) (dto.AuthResponse, error)
	RegisterEmployee(ctx context.Context, req dto.RegisterEmployeeRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	Me(ctx context.Context) (dto.UserResponse, error)
}

type serviceImpl struct {
	customerRepo customerRepo.Customer
	employeeRepo employeeRepo.Employee
	hotelRepo    hotelRepo.Hotel
	jwt          jwt.JWT
	otel         otel.Otel
}

func New(customerRepo customerRepo.Customer, employeeRepo employeeRepo.Employee, hotelRepo hotelRepo.Hotel, jwtService jwt.JWT, otel otel.Otel) Auth {
	return &serviceImpl{
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		hotelRepo:    hotelRepo,
		jwt:          jwtService,
		otel:         otel,
	}
}

func (s *serviceImpl) RegisterCustomer(ctx context.Context, req dto.RegisterCustomerRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RegisterCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	taken, err := s.customerRepo.Exist(ctx, shared.FilterByID(req.Email, customerModel.FieldEmail, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if email is taken")

		return res, fmt.Errorf("failed to check if email is taken: %w", err)
	}

	if taken {
		return res, failure.Conflict("email is already registered") // nolint:wrapcheck
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	customer := req.ToModel(hashed)

	id, err := s.customerRepo.InsertReturningID(ctx, customer)
	if err != nil {
		log.Error().Err(err).Msg("failed to register customer")

		return res, fmt.Errorf("failed to register customer: %w", err)
	}

	token, err := s.jwt.GenerateToken(id, customer.Email, constant.RoleCustomer)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	res = dto.AuthResponse{
		Token: token,
		User: dto.UserResponse{
			ID:       id,
			FullName: customer.FullName,
			Email:    customer.Email,
			Role:     constant.RoleCustomer,
		},
	}

	return res, nil
}

func (s *serviceImpl) RegisterEmployee(ctx context.Context, req dto.RegisterEmployeeRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RegisterEmployee")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotelExists, err := s.hotelRepo.Exist(ctx, shared.FilterByID(req.HotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return res, fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	if !hotelExists {
		return res, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	taken, err := s.employeeRepo.Exist(ctx, shared.FilterByID(req.Email, employeeModel.FieldEmail, employeeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if email is taken")

		return res, fmt.Errorf("failed to check if email is taken: %w", err)
	}

	if taken {
		return res, failure.Conflict("email is already registered") // nolint:wrapcheck
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	employee := req.ToModel(hashed)

	id, err := s.employeeRepo.InsertReturningID(ctx, employee)
	if err != nil {
		log.Error().Err(err).Msg("failed to register employee")

		return res, fmt.Errorf("failed to register employee: %w", err)
	}

	token, err := s.jwt.GenerateToken(id, employee.Email, constant.RoleEmployee)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	res = dto.AuthResponse{
		Token: token,
		User: dto.UserResponse{
			ID:       id,
			FullName: employee.FullName,
			Email:    employee.Email,
			Role:     constant.RoleEmployee,
		},
	}

	return res, nil
}

// Login resolves the account by email over customers first, then
// employees, mirroring the registration split.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	customer, err := s.customerRepo.Get(ctx, shared.FilterByID(req.Email, customerModel.FieldEmail, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer by email")

		return res, fmt.Errorf("failed to get customer by email: %w", err)
	}

	if customer.ID != 0 {
		if password.Verify(req.Password, customer.Password) != nil {
			return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
		}

		return s.issueToken(customer.ID, customer.FullName, customer.Email, constant.RoleCustomer)
	}

	employee, err := s.employeeRepo.Get(ctx, shared.FilterByID(req.Email, employeeModel.FieldEmail, employeeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee by email")

		return res, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if employee.ID == 0 || password.Verify(req.Password, employee.Password) != nil {
		return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
	}

	return s.issueToken(employee.ID, employee.FullName, employee.Email, constant.RoleEmployee)
}

func (s *serviceImpl) issueToken(id int64, fullName, email, role string) (res dto.AuthResponse, err error) {
	token, err := s.jwt.GenerateToken(id, email, role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	return dto.AuthResponse{
		Token: token,
		User: dto.UserResponse{
			ID:       id,
			FullName: fullName,
			Email:    email,
			Role:     role,
		},
	}, nil
}

// Me returns the profile of the authenticated identity from the context.
func (s *serviceImpl) Me(ctx context.Context) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(int64)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if userID == 0 {
		return res, failure.Unauthorized("not authenticated") // nolint:wrapcheck
	}

	switch role {
	case constant.RoleCustomer:
		customer, getErr := s.customerRepo.Get(ctx, shared.FilterByID(userID, customerModel.FieldID, customerModel.TableName))
		if getErr != nil {
			log.Error().Err(getErr).Msg("failed to get customer")

			return res, fmt.Errorf("failed to get customer: %w", getErr)
		}

		if customer.ID == 0 {
			return res, failure.NotFound("customer not found") // nolint:wrapcheck
		}

		return dto.UserResponse{ID: customer.ID, FullName: customer.FullName, Email: customer.Email, Role: role}, nil
	case constant.RoleEmployee:
		employee, getErr := s.employeeRepo.Get(ctx, shared.FilterByID(userID, employeeModel.FieldID, employeeModel.TableName))
		if getErr != nil {
			log.Error().Err(getErr).Msg("failed to get employee")

			return res, fmt.Errorf("failed to get employee: %w", getErr)
		}

		if employee.ID == 0 {
			return res, failure.NotFound("employee not found") // nolint:wrapcheck
		}

		return dto.UserResponse{ID: employee.ID, FullName: employee.FullName, Email: employee.Email, Role: role}, nil
	default:
		return res, failure.Unauthorized("unknown role") // nolint:wrapcheck
	}
}
