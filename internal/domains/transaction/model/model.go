package model

import (
	"time"

	"ehotel/shared/model"
)

const (
	TableName  = "transactions"
	EntityName = "transaction"

	FieldID            = "transaction_id"
	FieldCustomerID    = "customer_id"
	FieldRentingID     = "renting_id"
	FieldAmount        = "amount"
	FieldPaymentMethod = "payment_method"
	FieldPaymentDate   = "payment_date"
)

const (
	MethodCreditCard   = "credit_card"
	MethodDebitCard    = "debit_card"
	MethodCash         = "cash"
	MethodBankTransfer = "bank_transfer"
	MethodPaypal       = "paypal"
)

type Transaction struct {
	ID            int64     `db:"transaction_id" generated:"true"`
	CustomerID    int64     `db:"customer_id"`
	RentingID     int64     `db:"renting_id"`
	Amount        int64     `db:"amount"`
	PaymentMethod string    `db:"payment_method"`
	PaymentDate   time.Time `db:"payment_date"`
	model.Metadata
}
