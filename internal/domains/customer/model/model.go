package model

import (
	"time"

	"ehotel/shared/model"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID               = "customer_id"
	FieldFullName         = "full_name"
	FieldEmail            = "email"
	FieldPassword         = "password"
	FieldAddress          = "address"
	FieldIDType           = "id_type"
	FieldIDNumber         = "id_number"
	FieldRegistrationDate = "registration_date"
)

type Customer struct {
	ID               int64     `db:"customer_id" generated:"true"`
	FullName         string    `db:"full_name"`
	Email            string    `db:"email"`
	Password         string    `db:"password"`
	Address          string    `db:"address"`
	IDType           string    `db:"id_type"`
	IDNumber         string    `db:"id_number"`
	RegistrationDate time.Time `db:"registration_date"`
	model.Metadata
}
