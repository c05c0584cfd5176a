package model

import (
	"time"

	"ehotel/shared/model"
)

const (
	TableName  = "rentings"
	EntityName = "renting"

	FieldID         = "renting_id"
	FieldCustomerID = "customer_id"
	FieldHotelID    = "hotel_id"
	FieldRoomID     = "room_id"
	FieldRentDate   = "rent_date"
	FieldDuration   = "duration"
	FieldHandledBy  = "handled_by"
	FieldIsArchived = "is_archived"
)

type Renting struct {
	ID         int64     `db:"renting_id" generated:"true"`
	CustomerID int64     `db:"customer_id"`
	HotelID    int64     `db:"hotel_id"`
	RoomID     int64     `db:"room_id"`
	RentDate   time.Time `db:"rent_date"`
	Duration   int       `db:"duration"`
	HandledBy  int64     `db:"handled_by"`
	IsArchived bool      `db:"is_archived"`
	model.Metadata
}

// Detail is a renting joined with its customer, hotel, room price and the
// payment aggregate.
type Detail struct {
	ID           int64     `db:"renting_id"`
	CustomerID   int64     `db:"customer_id"`
	CustomerName string    `db:"customer_name"`
	HotelID      int64     `db:"hotel_id"`
	HotelName    string    `db:"hotel_name"`
	RoomID       int64     `db:"room_id"`
	RoomPrice    int64     `db:"room_price"`
	RentDate     time.Time `db:"rent_date"`
	Duration     int       `db:"duration"`
	HandledBy    int64     `db:"handled_by"`
	IsArchived   bool      `db:"is_archived"`
	TotalPaid    int64     `db:"total_paid"`
}

// RemainingAmount is the unpaid part of the room price, never negative.
func (d *Detail) RemainingAmount() int64 {
	remaining := d.RoomPrice - d.TotalPaid
	if remaining < 0 {
		return 0
	}

	return remaining
}

func (d *Detail) IsPaidInFull() bool {
	return d.TotalPaid >= d.RoomPrice
}
