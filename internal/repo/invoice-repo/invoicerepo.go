package invoicerepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

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

const invoiceColumns = `id, user_id, month, cup_count, cup_cost, payment_total, amount_due, paid_at, email_sent_at, created_at`

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := row.Scan(
		&invoice.ID, &invoice.UserID, &invoice.Month, &invoice.CupCount,
		&invoice.CupCost, &invoice.PaymentTotal, &invoice.AmountDue,
		&invoice.PaidAt, &invoice.EmailSentAt, &invoice.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Save inserts a booked invoice. The (user_id, month) unique constraint is
// the last guard against double booking.
func (r *Repository) Save(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	query := `
        INSERT INTO invoices (user_id, month, cup_count, cup_cost, payment_total, amount_due, paid_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + invoiceColumns + `
    `
	var saved *domain.Invoice
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			invoice.UserID, invoice.Month, invoice.CupCount, invoice.CupCost,
			invoice.PaymentTotal, invoice.AmountDue, invoice.PaidAt, invoice.CreatedAt,
		)
		var err error
		saved, err = scanInvoice(row)
		if err != nil {
			zap.L().Error("can't save invoice", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Invoice, error) {
	query := `
        SELECT ` + invoiceColumns + `
        FROM invoices
        WHERE id = $1
    `
	invoice, err := scanInvoice(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find invoice", zap.Error(err))
		return nil, err
	}
	return invoice, nil
}

func (r *Repository) FindForUserMonth(ctx context.Context, userID int, month time.Time) (*domain.Invoice, error) {
	query := `
        SELECT ` + invoiceColumns + `
        FROM invoices
        WHERE user_id = $1 AND month = $2
    `
	invoice, err := scanInvoice(r.db.QueryRow(ctx, query, userID, month))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find invoice for user and month", zap.Error(err))
		return nil, err
	}
	return invoice, nil
}

func (r *Repository) ListForMonth(ctx context.Context, month time.Time) ([]domain.Invoice, error) {
	query := `
        SELECT ` + invoiceColumns + `
        FROM invoices
        WHERE month = $1
        ORDER BY user_id
    `
	rows, err := r.db.Query(ctx, query, month)
	if err != nil {
		zap.L().Error("can't list invoices for month", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			zap.L().Error("can't scan invoice row", zap.Error(err))
			return nil, err
		}
		invoices = append(invoices, *invoice)
	}
	return invoices, nil
}

func (r *Repository) CountForMonth(ctx context.Context, month time.Time) (int, error) {
	query := `
        SELECT COUNT(id)
        FROM invoices
        WHERE month = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, month).Scan(&count); err != nil {
		zap.L().Error("can't count invoices for month", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) SetPaid(ctx context.Context, id int, paidAt time.Time) error {
	query := `
        UPDATE invoices
        SET paid_at = $1
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, paidAt, id)
		if err != nil {
			zap.L().Error("can't mark invoice paid", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

func (r *Repository) SetEmailSent(ctx context.Context, id int, sentAt time.Time) error {
	query := `
        UPDATE invoices
        SET email_sent_at = $1
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, sentAt, id)
		if err != nil {
			zap.L().Error("can't mark invoice mail sent", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}
