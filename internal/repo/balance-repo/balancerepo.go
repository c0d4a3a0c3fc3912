package balancerepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kaffeekasse/coffeebilling/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// GetBalance computes the user's all-time credit: payments received minus
// invoiced coffee cost. Positive means the user has prepaid. The query runs
// in the caller's transaction when one is in the context, so a booking run
// reads a consistent snapshot.
func (r *Repository) GetBalance(ctx context.Context, userID int) (decimal.Decimal, error) {
	query := `
        SELECT
            COALESCE((SELECT SUM(amount) FROM payments WHERE user_id = $1), 0)
          - COALESCE((SELECT SUM(cup_cost) FROM invoices WHERE user_id = $1), 0)
    `
	var balance decimal.Decimal
	if err := r.db.QueryRow(ctx, query, userID).Scan(&balance); err != nil {
		zap.L().Error("can't compute user balance", zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}
