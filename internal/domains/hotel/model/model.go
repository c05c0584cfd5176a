package model

import (
	"ehotel/shared/model"
)

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID            = "hotel_id"
	FieldChainID       = "chain_id"
	FieldName          = "name"
	FieldAddress       = "address"
	FieldStarRating    = "star_rating"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldNumberOfRooms = "number_of_rooms"
)

const (
	ChainTableName  = "hotel_chains"
	ChainEntityName = "hotel_chain"

	ChainFieldID = "chain_id"
)

type Hotel struct {
	ID            int64  `db:"hotel_id" generated:"true"`
	ChainID       int64  `db:"chain_id"`
	Name          string `db:"name"`
	Address       string `db:"address"`
	StarRating    int    `db:"star_rating"`
	Email         string `db:"email"`
	Phone         string `db:"phone"`
	NumberOfRooms int    `db:"number_of_rooms"`
	model.Metadata
}

type Chain struct {
	ID                   int64  `db:"chain_id" generated:"true"`
	Name                 string `db:"name"`
	CentralOfficeAddress string `db:"central_office_address"`
	NumberOfHotels       int    `db:"number_of_hotels"`
	model.Metadata
}
