package dto

import (
	"strconv"

	"ehotel/internal/domains/room/model"
	"ehotel/shared/dates"
	"ehotel/shared/failure"
	gModel "ehotel/shared/model"
	"ehotel/shared/timezone"
)

type CreateRoomRequest struct {
	Price             int64   `json:"price" validate:"required,gt=0"`
	Capacity          string  `json:"capacity" validate:"required,oneof=single double suite"`
	Amenities         string  `json:"amenities" validate:"omitempty,max=512"`
	ViewType          string  `json:"view_type" validate:"omitempty,max=64"`
	IsExtendable      bool    `json:"is_extendable"`
	DamageDescription *string `json:"damage_description" validate:"omitempty,max=512"`
}

func (c *CreateRoomRequest) ToModel(hotelID int64) model.Room {
	return model.Room{
		HotelID:           hotelID,
		Price:             c.Price,
		Capacity:          c.Capacity,
		Amenities:         c.Amenities,
		ViewType:          c.ViewType,
		IsExtendable:      c.IsExtendable,
		DamageDescription: c.DamageDescription,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type UpdateRoomRequest struct {
	Price             int64   `db:"price" json:"price" validate:"omitempty,gt=0"`
	Capacity          string  `db:"capacity" json:"capacity" validate:"omitempty,oneof=single double suite"`
	Amenities         string  `db:"amenities" json:"amenities" validate:"omitempty,max=512"`
	ViewType          string  `db:"view_type" json:"view_type" validate:"omitempty,max=64"`
	IsExtendable      *bool   `db:"is_extendable" json:"is_extendable" validate:"omitempty"`
	DamageDescription *string `db:"damage_description" json:"damage_description" validate:"omitempty,max=512"`
}

type RoomResponse struct {
	HotelID           int64   `json:"hotel_id"`
	RoomID            int64   `json:"room_id"`
	Price             int64   `json:"price"`
	Capacity          string  `json:"capacity"`
	Amenities         string  `json:"amenities"`
	ViewType          string  `json:"view_type"`
	IsExtendable      bool    `json:"is_extendable"`
	DamageDescription *string `json:"damage_description"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.HotelID = model.HotelID
	r.RoomID = model.RoomID
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Amenities = model.Amenities
	r.ViewType = model.ViewType
	r.IsExtendable = model.IsExtendable
	r.DamageDescription = model.DamageDescription
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// SearchRoomsRequest carries the query string filters of the search
// endpoint. All fields are optional; dates come as YYYY-MM-DD and must be
// given as a pair.
type SearchRoomsRequest struct {
	Capacity     string
	MinPrice     string
	MaxPrice     string
	Area         string
	ChainID      string
	StarRating   string
	MinRoomCount string
	StartDate    string
	EndDate      string
}

//nolint:cyclop
func (c *SearchRoomsRequest) ToCriteria() (criteria model.SearchCriteria, err error) {
	if c.Capacity != "" {
		if c.Capacity != model.CapacitySingle && c.Capacity != model.CapacityDouble && c.Capacity != model.CapacitySuite {
			return criteria, failure.BadRequestFromString("capacity must be one of single, double, suite") // nolint:wrapcheck
		}

		criteria.Capacity = &c.Capacity
	}

	if c.MinPrice != "" {
		minPrice, convErr := strconv.ParseInt(c.MinPrice, 10, 64)
		if convErr != nil {
			return criteria, failure.BadRequestFromString("min_price must be an integer amount") // nolint:wrapcheck
		}

		criteria.MinPrice = &minPrice
	}

	if c.MaxPrice != "" {
		maxPrice, convErr := strconv.ParseInt(c.MaxPrice, 10, 64)
		if convErr != nil {
			return criteria, failure.BadRequestFromString("max_price must be an integer amount") // nolint:wrapcheck
		}

		criteria.MaxPrice = &maxPrice
	}

	if c.Area != "" {
		criteria.Area = &c.Area
	}

	if c.ChainID != "" {
		chainID, convErr := strconv.ParseInt(c.ChainID, 10, 64)
		if convErr != nil {
			return criteria, failure.BadRequestFromString("chain_id must be an integer") // nolint:wrapcheck
		}

		criteria.ChainID = &chainID
	}

	if c.StarRating != "" {
		rating, convErr := strconv.Atoi(c.StarRating)
		if convErr != nil || rating < 1 || rating > 5 {
			return criteria, failure.BadRequestFromString("star_rating must be between 1 and 5") // nolint:wrapcheck
		}

		criteria.StarRating = &rating
	}

	if c.MinRoomCount != "" {
		count, convErr := strconv.Atoi(c.MinRoomCount)
		if convErr != nil {
			return criteria, failure.BadRequestFromString("min_room_count must be an integer") // nolint:wrapcheck
		}

		criteria.MinRoomCount = &count
	}

	if (c.StartDate == "") != (c.EndDate == "") {
		return criteria, failure.BadRequestFromString("start_date and end_date must be provided together") // nolint:wrapcheck
	}

	if c.StartDate != "" {
		start, parseErr := dates.Parse(c.StartDate)
		if parseErr != nil {
			return criteria, failure.BadRequestFromString("start_date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
		}

		end, parseErr := dates.Parse(c.EndDate)
		if parseErr != nil {
			return criteria, failure.BadRequestFromString("end_date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
		}

		if end.Before(start) {
			return criteria, failure.BadRequestFromString("end_date must not be before start_date") // nolint:wrapcheck
		}

		criteria.Start = &start
		criteria.End = &end
	}

	return criteria, nil
}

type SearchRoomResponse struct {
	HotelID           int64   `json:"hotel_id"`
	RoomID            int64   `json:"room_id"`
	Price             int64   `json:"price"`
	Capacity          string  `json:"capacity"`
	Amenities         string  `json:"amenities"`
	ViewType          string  `json:"view_type"`
	IsExtendable      bool    `json:"is_extendable"`
	DamageDescription *string `json:"damage_description"`
	HotelName         string  `json:"hotel_name"`
	HotelAddress      string  `json:"hotel_address"`
	ChainID           int64   `json:"chain_id"`
	StarRating        int     `json:"star_rating"`
	HotelEmail        string  `json:"hotel_email"`
	HotelPhone        string  `json:"hotel_phone"`
	NumberOfRooms     int     `json:"number_of_rooms"`
}

func (r *SearchRoomResponse) FromModel(row model.SearchRow) {
	r.HotelID = row.HotelID
	r.RoomID = row.RoomID
	r.Price = row.Price
	r.Capacity = row.Capacity
	r.Amenities = row.Amenities
	r.ViewType = row.ViewType
	r.IsExtendable = row.IsExtendable
	r.DamageDescription = row.DamageDescription
	r.HotelName = row.HotelName
	r.HotelAddress = row.HotelAddress
	r.ChainID = row.ChainID
	r.StarRating = row.StarRating
	r.HotelEmail = row.HotelEmail
	r.HotelPhone = row.HotelPhone
	r.NumberOfRooms = row.NumberOfRooms
}

type SearchRoomsResponse struct {
	Rooms []SearchRoomResponse `json:"rooms"`
}

func (r *SearchRoomsResponse) FromModels(rows []model.SearchRow) {
	r.Rooms = make([]SearchRoomResponse, len(rows))
	for i, row := range rows {
		r.Rooms[i].FromModel(row)
	}
}
