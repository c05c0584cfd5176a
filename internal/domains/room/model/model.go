package model

import (
	"time"

	"ehotel/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldHotelID           = "hotel_id"
	FieldRoomID            = "room_id"
	FieldPrice             = "price"
	FieldCapacity          = "capacity"
	FieldAmenities         = "amenities"
	FieldViewType          = "view_type"
	FieldIsExtendable      = "is_extendable"
	FieldDamageDescription = "damage_description"
)

const (
	CapacitySingle = "single"
	CapacityDouble = "double"
	CapacitySuite  = "suite"
)

type Room struct {
	HotelID           int64   `db:"hotel_id"`
	RoomID            int64   `db:"room_id"`
	Price             int64   `db:"price"`
	Capacity          string  `db:"capacity"`
	Amenities         string  `db:"amenities"`
	ViewType          string  `db:"view_type"`
	IsExtendable      bool    `db:"is_extendable"`
	DamageDescription *string `db:"damage_description"`
	model.Metadata
}

// SearchRow is a room joined with its hotel for availability search results.
type SearchRow struct {
	HotelID           int64   `db:"hotel_id"`
	RoomID            int64   `db:"room_id"`
	Price             int64   `db:"price"`
	Capacity          string  `db:"capacity"`
	Amenities         string  `db:"amenities"`
	ViewType          string  `db:"view_type"`
	IsExtendable      bool    `db:"is_extendable"`
	DamageDescription *string `db:"damage_description"`
	HotelName         string  `db:"hotel_name"`
	HotelAddress      string  `db:"hotel_address"`
	ChainID           int64   `db:"chain_id"`
	StarRating        int     `db:"star_rating"`
	HotelEmail        string  `db:"hotel_email"`
	HotelPhone        string  `db:"hotel_phone"`
	NumberOfRooms     int     `db:"number_of_rooms"`
}

// SearchCriteria is the conjunctive filter set for the search engine.
// Nil fields are not applied. Start and End are UTC midnight dates; both
// are set or both are nil.
type SearchCriteria struct {
	Capacity     *string
	MinPrice     *int64
	MaxPrice     *int64
	Area         *string
	ChainID      *int64
	StarRating   *int
	MinRoomCount *int
	Start        *time.Time
	End          *time.Time
}
