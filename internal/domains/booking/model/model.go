package model

import (
	"time"

	"ehotel/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "booking_id"
	FieldCustomerID  = "customer_id"
	FieldHotelID     = "hotel_id"
	FieldRoomID      = "room_id"
	FieldBookingDate = "booking_date"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
	FieldIsArchived  = "is_archived"
)

type Booking struct {
	ID          int64     `db:"booking_id" generated:"true"`
	CustomerID  int64     `db:"customer_id"`
	HotelID     int64     `db:"hotel_id"`
	RoomID      int64     `db:"room_id"`
	BookingDate time.Time `db:"booking_date"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	IsArchived  bool      `db:"is_archived"`

	CustomerName string `db:"customer_name" column:"full_name" table:"customers"`
	HotelName    string `db:"hotel_name" column:"name" table:"hotels"`
	RoomPrice    int64  `db:"room_price" column:"price" table:"rooms"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return `JOIN customers ON customers.customer_id = bookings.customer_id
		JOIN hotels ON hotels.hotel_id = bookings.hotel_id
		JOIN rooms ON rooms.hotel_id = bookings.hotel_id AND rooms.room_id = bookings.room_id`
}
