package dto

import "time"

type RecordPaymentRequestDTO struct {
	UserID   int    `json:"user_id" example:"1"`
	Amount   string `json:"amount" example:"12.50"`
	Category string `json:"category" example:"purchase"`
	Memo     string `json:"memo" example:"coffee beans"`
}

type PaymentDTO struct {
	ID        int       `json:"id" example:"17"`
	Amount    string    `json:"amount" example:"12.50"`
	Category  string    `json:"category" example:"purchase"`
	Memo      string    `json:"memo,omitempty" example:"coffee beans"`
	InvoiceID *int      `json:"invoice_id,omitempty" example:"3"`
	CreatedAt time.Time `json:"created_at" example:"2025-08-12T09:15:00+02:00"`
}

type BalanceResponseDTO struct {
	Balance string `json:"balance" example:"4.75"`
}

type RentStatusEntryDTO struct {
	UserID int    `json:"user_id" example:"1"`
	Name   string `json:"name" example:"Smith"`
	Paid   bool   `json:"paid" example:"true"`
}
