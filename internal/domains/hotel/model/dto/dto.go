package dto

import (
	"ehotel/internal/domains/hotel/model"
	"ehotel/shared"
	gDto "ehotel/shared/dto"
	gModel "ehotel/shared/model"
	"ehotel/shared/timezone"
)

type CreateHotelRequest struct {
	ChainID    int64  `json:"chain_id" validate:"required"`
	Name       string `json:"name" validate:"required,max=255"`
	Address    string `json:"address" validate:"required,max=255"`
	StarRating int    `json:"star_rating" validate:"required,min=1,max=5"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,max=32"`
}

func (c *CreateHotelRequest) ToModel() model.Hotel {
	return model.Hotel{
		ChainID:    c.ChainID,
		Name:       c.Name,
		Address:    c.Address,
		StarRating: c.StarRating,
		Email:      c.Email,
		Phone:      c.Phone,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type HotelResponse struct {
	ID            int64  `json:"hotel_id"`
	ChainID       int64  `json:"chain_id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	StarRating    int    `json:"star_rating"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	NumberOfRooms int    `json:"number_of_rooms"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.ChainID = model.ChainID
	r.Name = model.Name
	r.Address = model.Address
	r.StarRating = model.StarRating
	r.Email = model.Email
	r.Phone = model.Phone
	r.NumberOfRooms = model.NumberOfRooms
	r.Metadata.FromModel(model.Metadata)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}

type ChainResponse struct {
	ID                   int64  `json:"chain_id"`
	Name                 string `json:"name"`
	CentralOfficeAddress string `json:"central_office_address"`
	NumberOfHotels       int    `json:"number_of_hotels"`
}

func (r *ChainResponse) FromModel(model model.Chain) {
	r.ID = model.ID
	r.Name = model.Name
	r.CentralOfficeAddress = model.CentralOfficeAddress
	r.NumberOfHotels = model.NumberOfHotels
}

type GetChainsResponse struct {
	Chains []ChainResponse `json:"chains"`
}

func (r *GetChainsResponse) FromModels(models []model.Chain) {
	r.Chains = make([]ChainResponse, len(models))
	for i, mod := range models {
		r.Chains[i].FromModel(mod)
	}
}
