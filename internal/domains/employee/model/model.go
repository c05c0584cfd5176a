package model

import (
	"ehotel/shared/model"
)

const (
	TableName  = "employees"
	EntityName = "employee"

	FieldID       = "employee_id"
	FieldHotelID  = "hotel_id"
	FieldFullName = "full_name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldAddress  = "address"
	FieldSSN      = "ssn"
	FieldRole     = "role"
)

type Employee struct {
	ID       int64  `db:"employee_id" generated:"true"`
	HotelID  int64  `db:"hotel_id"`
	FullName string `db:"full_name"`
	Email    string `db:"email"`
	Password string `db:"password"`
	Address  string `db:"address"`
	SSN      string `db:"ssn"`
	Role     string `db:"role"`
	model.Metadata
}
