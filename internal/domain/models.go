package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// NewUserStatus account created, activation mail sent, no password yet;
	NewUserStatus string = "new"
	// ActiveUserStatus account activated, takes part in monthly billing;
	ActiveUserStatus string = "active"
	// DisabledUserStatus account deactivated by an admin;
	DisabledUserStatus string = "disabled"
)

const (
	// PurchasePayment supplies bought for the kitchen, offsets next month;
	PurchasePayment string = "purchase"
	// CorrectionPayment manual balance correction by an admin;
	CorrectionPayment string = "correction"
	// PayoutPayment credit paid back to the user;
	PayoutPayment string = "payout"
	// DepositPayment money received from the user, including invoice settlements;
	DepositPayment string = "deposit"
	// RentPaymentCategory share of the machine rent, settled separately;
	RentPaymentCategory string = "rent"
	// ReservePayment transfer into the shared reserve;
	ReservePayment string = "reserve"
)

type User struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	FirstName    string    `db:"first_name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Admin        bool      `db:"admin"`
	Member       bool      `db:"member"`
	Token        string    `db:"token"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}

// CoffeeLogEntry is immutable once written.
type CoffeeLogEntry struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Count     int       `db:"count"`
	CreatedAt time.Time `db:"created_at"`
}

type Payment struct {
	ID        int             `db:"id"`
	UserID    int             `db:"user_id"`
	Amount    decimal.Decimal `db:"amount"`
	Category  string          `db:"category"`
	Memo      string          `db:"memo"`
	InvoiceID *int            `db:"invoice_id"`
	CreatedAt time.Time       `db:"created_at"`
}

// Invoice is written once per user and month by the booking run. Only
// PaidAt and EmailSentAt change afterwards.
type Invoice struct {
	ID           int             `db:"id"`
	UserID       int             `db:"user_id"`
	Month        time.Time       `db:"month"`
	CupCount     int             `db:"cup_count"`
	CupCost      decimal.Decimal `db:"cup_cost"`
	PaymentTotal decimal.Decimal `db:"payment_total"`
	AmountDue    decimal.Decimal `db:"amount_due"`
	PaidAt       *time.Time      `db:"paid_at"`
	EmailSentAt  *time.Time      `db:"email_sent_at"`
	CreatedAt    time.Time       `db:"created_at"`

	User     *User     `db:"-"`
	Payments []Payment `db:"-"`
}

// RentPayment records that a member settled their rent share for a month.
type RentPayment struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Month     time.Time `db:"month"`
	CreatedAt time.Time `db:"created_at"`
}
