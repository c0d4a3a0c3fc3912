package coffeelogrepo

import (
	"context"
	"time"

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

func (r *Repository) Save(ctx context.Context, entry *domain.CoffeeLogEntry) error {
	query := `
        INSERT INTO coffee_log (user_id, count, created_at)
        VALUES ($1, $2, $3)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, entry.UserID, entry.Count, entry.CreatedAt)
		if err != nil {
			zap.L().Error("can't save coffee log entry", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) ListForUserMonth(ctx context.Context, userID int, month time.Time) ([]domain.CoffeeLogEntry, error) {
	query := `
        SELECT id, user_id, count, created_at
        FROM coffee_log
        WHERE user_id = $1
          AND created_at >= $2 AND created_at < $2 + INTERVAL '1 month'
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID, month)
	if err != nil {
		zap.L().Error("can't list coffee log entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.CoffeeLogEntry
	for rows.Next() {
		var entry domain.CoffeeLogEntry
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.Count, &entry.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan coffee log row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *Repository) SumForUserMonth(ctx context.Context, userID int, month time.Time) (int, error) {
	query := `
        SELECT COALESCE(SUM(count), 0)
        FROM coffee_log
        WHERE user_id = $1
          AND created_at >= $2 AND created_at < $2 + INTERVAL '1 month'
    `
	var sum int
	if err := r.db.QueryRow(ctx, query, userID, month).Scan(&sum); err != nil {
		zap.L().Error("can't sum coffee log entries", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

// SumForMonth sums cups of all users for a month. member narrows the sum
// to members (true) or guests (false) when set.
func (r *Repository) SumForMonth(ctx context.Context, month time.Time, member *bool) (int, error) {
	query := `
        SELECT COALESCE(SUM(l.count), 0)
        FROM coffee_log l
        JOIN users u ON u.id = l.user_id
        WHERE l.created_at >= $1 AND l.created_at < $1 + INTERVAL '1 month'
          AND ($2::boolean IS NULL OR u.member = $2)
    `
	var sum int
	if err := r.db.QueryRow(ctx, query, month, member).Scan(&sum); err != nil {
		zap.L().Error("can't sum coffee log entries for month", zap.Error(err))
		return 0, err
	}
	return sum, nil
}
