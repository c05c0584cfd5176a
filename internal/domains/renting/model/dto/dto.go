package dto

import (
	"ehotel/internal/domains/renting/model"
	"ehotel/shared"
	"ehotel/shared/dates"
	"ehotel/shared/failure"
	gModel "ehotel/shared/model"
	"ehotel/shared/timezone"
)

type CreateRentingRequest struct {
	CustomerID int64  `json:"customer_id" validate:"required"`
	HotelID    int64  `json:"hotel_id" validate:"required"`
	RoomID     int64  `json:"room_id" validate:"required"`
	RentDate   string `json:"rent_date" validate:"required"`
	Duration   int    `json:"duration" validate:"required,gt=0"`
}

func (c *CreateRentingRequest) ToModel(employeeID int64) (model.Renting, error) {
	rentDate, err := dates.Parse(c.RentDate)
	if err != nil {
		return model.Renting{}, failure.BadRequestFromString("rent_date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	return model.Renting{
		CustomerID: c.CustomerID,
		HotelID:    c.HotelID,
		RoomID:     c.RoomID,
		RentDate:   rentDate,
		Duration:   c.Duration,
		HandledBy:  employeeID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}, nil
}

type RentingResponse struct {
	ID              int64  `json:"renting_id"`
	CustomerID      int64  `json:"customer_id"`
	CustomerName    string `json:"customer_name"`
	HotelID         int64  `json:"hotel_id"`
	HotelName       string `json:"hotel_name"`
	RoomID          int64  `json:"room_id"`
	RoomPrice       int64  `json:"room_price"`
	RentDate        string `json:"rent_date"`
	Duration        int    `json:"duration"`
	HandledBy       int64  `json:"handled_by"`
	IsArchived      bool   `json:"is_archived"`
	TotalPaid       int64  `json:"total_paid"`
	RemainingAmount int64  `json:"remaining_amount"`
	IsPaidInFull    bool   `json:"is_paid_in_full"`
}

func (r *RentingResponse) FromModel(detail model.Detail) {
	r.ID = detail.ID
	r.CustomerID = detail.CustomerID
	r.CustomerName = detail.CustomerName
	r.HotelID = detail.HotelID
	r.HotelName = detail.HotelName
	r.RoomID = detail.RoomID
	r.RoomPrice = detail.RoomPrice
	r.RentDate = dates.Format(detail.RentDate)
	r.Duration = detail.Duration
	r.HandledBy = detail.HandledBy
	r.IsArchived = detail.IsArchived
	r.TotalPaid = detail.TotalPaid
	r.RemainingAmount = detail.RemainingAmount()
	r.IsPaidInFull = detail.IsPaidInFull()
}

type GetRentingsResponse struct {
	Rentings  []RentingResponse `json:"rentings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetRentingsResponse) FromModels(details []model.Detail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rentings = make([]RentingResponse, len(details))
	for i, detail := range details {
		r.Rentings[i].FromModel(detail)
	}
}

type CreateRentingResponse struct {
	RentingID  int64  `json:"renting_id"`
	CustomerID int64  `json:"customer_id"`
	HotelID    int64  `json:"hotel_id"`
	RoomID     int64  `json:"room_id"`
	RentDate   string `json:"rent_date"`
	Duration   int    `json:"duration"`
	HandledBy  int64  `json:"handled_by"`
}

func (r *CreateRentingResponse) FromModel(renting model.Renting) {
	r.RentingID = renting.ID
	r.CustomerID = renting.CustomerID
	r.HotelID = renting.HotelID
	r.RoomID = renting.RoomID
	r.RentDate = dates.Format(renting.RentDate)
	r.Duration = renting.Duration
	r.HandledBy = renting.HandledBy
}
