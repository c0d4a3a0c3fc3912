package coffeeservice

import (
	"context"
	"errors"
	"time"

	"github.com/kaffeekasse/coffeebilling/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=coffeeservice.go -destination=mock.go -package=coffeeservice

type Repo interface {
	Save(ctx context.Context, entry *domain.CoffeeLogEntry) error
	ListForUserMonth(ctx context.Context, userID int, month time.Time) ([]domain.CoffeeLogEntry, error)
	SumForUserMonth(ctx context.Context, userID int, month time.Time) (int, error)
}

var ErrInvalidCupCount = errors.New("cup count must be at least 1")

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

// LogCups appends an immutable log entry for cups just consumed.
func (s *Service) LogCups(ctx context.Context, userID, count int) (*domain.CoffeeLogEntry, error) {
	if count < 1 {
		return nil, ErrInvalidCupCount
	}

	entry := &domain.CoffeeLogEntry{
		UserID:    userID,
		Count:     count,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Save(ctx, entry); err != nil {
		zap.L().Error("can't save coffee log entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (s *Service) MonthLog(ctx context.Context, userID int, month time.Time) ([]domain.CoffeeLogEntry, error) {
	entries, err := s.repo.ListForUserMonth(ctx, userID, month)
	if err != nil {
		zap.L().Error("failed to get coffee log", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (s *Service) MonthCups(ctx context.Context, userID int, month time.Time) (int, error) {
	sum, err := s.repo.SumForUserMonth(ctx, userID, month)
	if err != nil {
		zap.L().Error("failed to sum coffee log", zap.Error(err))
		return 0, err
	}
	return sum, nil
}
