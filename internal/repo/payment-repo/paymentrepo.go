package paymentrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/kaffeekasse/coffeebilling/internal/domain"
	"github.com/kaffeekasse/coffeebilling/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const paymentColumns = `id, user_id, amount, category, memo, invoice_id, created_at`

func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
        INSERT INTO payments (user_id, amount, category, memo, invoice_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + paymentColumns + `
    `
	var created domain.Payment
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			payment.UserID, payment.Amount, payment.Category, payment.Memo,
			payment.InvoiceID, payment.CreatedAt,
		)
		err := row.Scan(
			&created.ID, &created.UserID, &created.Amount, &created.Category,
			&created.Memo, &created.InvoiceID, &created.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't create payment", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *Repository) ListForUser(ctx context.Context, userID int) ([]domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM payments
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

// ListForUserMonth returns the user's payments of the given categories
// created within the month.
func (r *Repository) ListForUserMonth(ctx context.Context, userID int, month time.Time, categories []string) ([]domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM payments
        WHERE user_id = $1
          AND created_at >= $2 AND created_at < $2 + INTERVAL '1 month'
          AND category = ANY($3)
        ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query, userID, month, categories)
	if err != nil {
		zap.L().Error("can't list payments for month", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *Repository) SumForMonth(ctx context.Context, month time.Time, categories []string) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM payments
        WHERE created_at >= $1 AND created_at < $1 + INTERVAL '1 month'
          AND category = ANY($2)
    `
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, month, categories).Scan(&sum); err != nil {
		zap.L().Error("can't sum payments for month", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

// AttachInvoice links the given payments to a booked invoice.
func (r *Repository) AttachInvoice(ctx context.Context, paymentIDs []int, invoiceID int) error {
	if len(paymentIDs) == 0 {
		return nil
	}
	query := `
        UPDATE payments
        SET invoice_id = $1
        WHERE id = ANY($2)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, invoiceID, paymentIDs)
		if err != nil {
			zap.L().Error("can't attach payments to invoice", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

func (r *Repository) CreateRentPayment(ctx context.Context, rent *domain.RentPayment) (*domain.RentPayment, error) {
	query := `
        INSERT INTO rent_payments (user_id, month, created_at)
        VALUES ($1, $2, $3)
        RETURNING id, user_id, month, created_at
    `
	var created domain.RentPayment
	row := r.db.QueryRow(ctx, query, rent.UserID, rent.Month, rent.CreatedAt)
	if err := row.Scan(&created.ID, &created.UserID, &created.Month, &created.CreatedAt); err != nil {
		zap.L().Error("can't create rent payment", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) FindRentPayment(ctx context.Context, userID int, month time.Time) (*domain.RentPayment, error) {
	query := `
        SELECT id, user_id, month, created_at
        FROM rent_payments
        WHERE user_id = $1 AND month = $2
    `
	var rent domain.RentPayment
	row := r.db.QueryRow(ctx, query, userID, month)
	err := row.Scan(&rent.ID, &rent.UserID, &rent.Month, &rent.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find rent payment", zap.Error(err))
		return nil, err
	}
	return &rent, nil
}

func (r *Repository) ListRentPaymentsForMonth(ctx context.Context, month time.Time) ([]domain.RentPayment, error) {
	query := `
        SELECT id, user_id, month, created_at
        FROM rent_payments
        WHERE month = $1
    `
	rows, err := r.db.Query(ctx, query, month)
	if err != nil {
		zap.L().Error("can't list rent payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rents []domain.RentPayment
	for rows.Next() {
		var rent domain.RentPayment
		if err := rows.Scan(&rent.ID, &rent.UserID, &rent.Month, &rent.CreatedAt); err != nil {
			zap.L().Error("can't scan rent payment row", zap.Error(err))
			return nil, err
		}
		rents = append(rents, rent)
	}
	return rents, nil
}

func scanPayments(rows pgx.Rows) ([]domain.Payment, error) {
	var payments []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		err := rows.Scan(
			&payment.ID, &payment.UserID, &payment.Amount, &payment.Category,
			&payment.Memo, &payment.InvoiceID, &payment.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, nil
}
