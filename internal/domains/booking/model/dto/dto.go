package dto

import (
	"ehotel/internal/domains/booking/model"
	"ehotel/shared"
	"ehotel/shared/constant"
	"ehotel/shared/dates"
	"ehotel/shared/failure"
	gModel "ehotel/shared/model"
	"ehotel/shared/timezone"
)

type CreateBookingRequest struct {
	HotelID   int64  `json:"hotel_id" validate:"required"`
	RoomID    int64  `json:"room_id" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

func (c *CreateBookingRequest) ToModel(customerID int64) (model.Booking, error) {
	start, err := dates.Parse(c.StartDate)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("start_date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	end, err := dates.Parse(c.EndDate)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("end_date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	if end.Before(start) {
		return model.Booking{}, failure.BadRequestFromString("end_date must not be before start_date") // nolint:wrapcheck
	}

	return model.Booking{
		CustomerID:  customerID,
		HotelID:     c.HotelID,
		RoomID:      c.RoomID,
		BookingDate: timezone.Now(),
		StartDate:   start,
		EndDate:     end,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}, nil
}

type BookingResponse struct {
	ID           int64  `json:"booking_id"`
	CustomerID   int64  `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	HotelID      int64  `json:"hotel_id"`
	HotelName    string `json:"hotel_name"`
	RoomID       int64  `json:"room_id"`
	RoomPrice    int64  `json:"room_price"`
	BookingDate  string `json:"booking_date"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	IsArchived   bool   `json:"is_archived"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.CustomerName = model.CustomerName
	r.HotelID = model.HotelID
	r.HotelName = model.HotelName
	r.RoomID = model.RoomID
	r.RoomPrice = model.RoomPrice
	r.BookingDate = timezone.Format(model.BookingDate, constant.DateFormat)
	r.StartDate = dates.Format(model.StartDate)
	r.EndDate = dates.Format(model.EndDate)
	r.IsArchived = model.IsArchived
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type CheckInResponse struct {
	RentingID int64  `json:"renting_id"`
	BookingID int64  `json:"booking_id"`
	HotelID   int64  `json:"hotel_id"`
	RoomID    int64  `json:"room_id"`
	RentDate  string `json:"rent_date"`
	Duration  int    `json:"duration"`
	HandledBy int64  `json:"handled_by"`
}
