package paymentservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kaffeekasse/coffeebilling/internal/domain"
)

//go:generate mockgen -source=paymentservice.go -destination=mock.go -package=paymentservice

type Repo interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	ListForUser(ctx context.Context, userID int) ([]domain.Payment, error)
	CreateRentPayment(ctx context.Context, rent *domain.RentPayment) (*domain.RentPayment, error)
	FindRentPayment(ctx context.Context, userID int, month time.Time) (*domain.RentPayment, error)
	ListRentPaymentsForMonth(ctx context.Context, month time.Time) ([]domain.RentPayment, error)
}

type UserRepo interface {
	ListActive(ctx context.Context) ([]domain.User, error)
}

var (
	ErrInvalidCategory = errors.New("invalid payment category")
	ErrRentAlreadyPaid = errors.New("rent already recorded for this month")
)

var validCategories = map[string]struct{}{
	domain.PurchasePayment:     {},
	domain.CorrectionPayment:   {},
	domain.PayoutPayment:       {},
	domain.DepositPayment:      {},
	domain.RentPaymentCategory: {},
	domain.ReservePayment:      {},
}

type Service struct {
	repo     Repo
	userRepo UserRepo
}

func New(repo Repo, userRepo UserRepo) *Service {
	return &Service{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *Service) Record(ctx context.Context, userID int, amount decimal.Decimal, category, memo string) (*domain.Payment, error) {
	if _, ok := validCategories[category]; !ok {
		return nil, ErrInvalidCategory
	}

	payment, err := s.repo.Create(ctx, &domain.Payment{
		UserID:    userID,
		Amount:    amount.Round(2),
		Category:  category,
		Memo:      memo,
		CreatedAt: time.Now(),
	})
	if err != nil {
		zap.L().Error("can't record payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (s *Service) List(ctx context.Context, userID int) ([]domain.Payment, error) {
	payments, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}

// RecordRent notes that a member settled their rent share for a month.
// Once per user and month.
func (s *Service) RecordRent(ctx context.Context, userID int, month time.Time) (*domain.RentPayment, error) {
	month = time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)

	existing, err := s.repo.FindRentPayment(ctx, userID, month)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrRentAlreadyPaid
	}

	rent, err := s.repo.CreateRentPayment(ctx, &domain.RentPayment{
		UserID:    userID,
		Month:     month,
		CreatedAt: time.Now(),
	})
	if err != nil {
		zap.L().Error("can't record rent payment", zap.Error(err))
		return nil, err
	}
	return rent, nil
}

type RentStatus struct {
	User domain.User
	Paid bool
}

// RentMonthStatus lists every active member with a flag whether their rent
// share for the month is recorded.
func (s *Service) RentMonthStatus(ctx context.Context, month time.Time) ([]RentStatus, error) {
	month = time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)

	rents, err := s.repo.ListRentPaymentsForMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	paid := make(map[int]struct{}, len(rents))
	for _, rent := range rents {
		paid[rent.UserID] = struct{}{}
	}

	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]RentStatus, 0, len(users))
	for _, user := range users {
		if !user.Member {
			continue
		}
		_, ok := paid[user.ID]
		statuses = append(statuses, RentStatus{User: user, Paid: ok})
	}
	return statuses, nil
}
