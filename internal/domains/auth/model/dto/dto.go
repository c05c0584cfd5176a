package dto

import (
	"ehotel/infras/jwt"
	customerModel "ehotel/internal/domains/customer/model"
	employeeModel "ehotel/internal/domains/employee/model"
	gModel "ehotel/shared/model"
	"ehotel/shared/timezone"
)

type RegisterCustomerRequest struct {
	FullName string `json:"full_name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Address  string `json:"address" validate:"required,max=255"`
	IDType   string `json:"id_type" validate:"required,max=64"`
	IDNumber string `json:"id_number" validate:"required,max=64"`
}

func (c *RegisterCustomerRequest) ToModel(hashedPassword string) customerModel.Customer {
	return customerModel.Customer{
		FullName:         c.FullName,
		Email:            c.Email,
		Password:         hashedPassword,
		Address:          c.Address,
		IDType:           c.IDType,
		IDNumber:         c.IDNumber,
		RegistrationDate: timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type RegisterEmployeeRequest struct {
	HotelID  int64  `json:"hotel_id" validate:"required"`
	FullName string `json:"full_name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Address  string `json:"address" validate:"required,max=255"`
	SSN      string `json:"ssn" validate:"required,max=32"`
	Role     string `json:"role" validate:"omitempty,max=64"`
}

func (c *RegisterEmployeeRequest) ToModel(hashedPassword string) employeeModel.Employee {
	role := c.Role
	if role == "" {
		role = "staff"
	}

	return employeeModel.Employee{
		HotelID:  c.HotelID,
		FullName: c.FullName,
		Email:    c.Email,
		Password: hashedPassword,
		Address:  c.Address,
		SSN:      c.SSN,
		Role:     role,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type AuthResponse struct {
	Token *jwt.Token   `json:"token"`
	User  UserResponse `json:"user"`
}
