package dto

import "time"

type InvoiceDTO struct {
	ID           int        `json:"id,omitempty" example:"3"`
	UserID       int        `json:"user_id" example:"1"`
	UserName     string     `json:"user_name,omitempty" example:"Smith"`
	Month        string     `json:"month" example:"2025-08"`
	CupCount     int        `json:"cup_count" example:"40"`
	CupCost      string     `json:"cup_cost" example:"10.00"`
	PaymentTotal string     `json:"payment_total" example:"12.50"`
	AmountDue    string     `json:"amount_due" example:"10.00"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`
	EmailSentAt  *time.Time `json:"email_sent_at,omitempty"`
}

type MonthInvoicesResponseDTO struct {
	Month    string       `json:"month" example:"2025-08"`
	Booked   bool         `json:"booked" example:"false"`
	Invoices []InvoiceDTO `json:"invoices"`
}

type BookMonthResponseDTO struct {
	Month    string       `json:"month" example:"2025-08"`
	Invoices []InvoiceDTO `json:"invoices"`
}

type MonthSummaryResponseDTO struct {
	Month            string `json:"month" example:"2025-08"`
	MemberCups       int    `json:"member_cups" example:"120"`
	GuestCups        int    `json:"guest_cups" example:"14"`
	TotalCups        int    `json:"total_cups" example:"134"`
	ConsumptionTotal string `json:"consumption_total" example:"45.80"`
	Rent             string `json:"rent" example:"20.00"`
	TotalCost        string `json:"total_cost" example:"65.80"`
	RentShare        string `json:"rent_share" example:"4.00"`
	ActiveMembers    int    `json:"active_members" example:"5"`
}

type SendMonthResponseDTO struct {
	Month string `json:"month" example:"2025-08"`
	Sent  int    `json:"sent" example:"7"`
}
