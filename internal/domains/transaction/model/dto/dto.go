package dto

import (
	"ehotel/internal/domains/transaction/model"
	"ehotel/shared/constant"
	gModel "ehotel/shared/model"
	"ehotel/shared/timezone"
)

type PayRequest struct {
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=credit_card debit_card cash bank_transfer paypal"`
}

func (c *PayRequest) ToModel(customerID, rentingID int64) model.Transaction {
	return model.Transaction{
		CustomerID:    customerID,
		RentingID:     rentingID,
		Amount:        c.Amount,
		PaymentMethod: c.PaymentMethod,
		PaymentDate:   timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type TransactionResponse struct {
	ID              int64  `json:"transaction_id"`
	CustomerID      int64  `json:"customer_id"`
	RentingID       int64  `json:"renting_id"`
	Amount          int64  `json:"amount"`
	PaymentMethod   string `json:"payment_method"`
	PaymentDate     string `json:"payment_date"`
	RemainingAmount int64  `json:"remaining_amount"`
}

func (r *TransactionResponse) FromModel(model model.Transaction, remaining int64) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.RentingID = model.RentingID
	r.Amount = model.Amount
	r.PaymentMethod = model.PaymentMethod
	r.PaymentDate = timezone.Format(model.PaymentDate, constant.DateFormat)
	r.RemainingAmount = remaining
}

type LedgerEntryResponse struct {
	ID            int64  `json:"transaction_id"`
	CustomerID    int64  `json:"customer_id"`
	RentingID     int64  `json:"renting_id"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"payment_method"`
	PaymentDate   string `json:"payment_date"`
}

type GetLedgerResponse struct {
	Transactions []LedgerEntryResponse `json:"transactions"`
	TotalPaid    int64                 `json:"total_paid"`
}

func (r *GetLedgerResponse) FromModels(models []model.Transaction) {
	r.Transactions = make([]LedgerEntryResponse, len(models))

	var total int64

	for i, mod := range models {
		r.Transactions[i] = LedgerEntryResponse{
			ID:            mod.ID,
			CustomerID:    mod.CustomerID,
			RentingID:     mod.RentingID,
			Amount:        mod.Amount,
			PaymentMethod: mod.PaymentMethod,
			PaymentDate:   timezone.Format(mod.PaymentDate, constant.DateFormat),
		}

		total += mod.Amount
	}

	r.TotalPaid = total
}
