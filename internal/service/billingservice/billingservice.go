package billingservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kaffeekasse/coffeebilling/internal/domain"
	"github.com/kaffeekasse/coffeebilling/internal/mailer"
	"github.com/kaffeekasse/coffeebilling/internal/pg"
)

//go:generate mockgen -source=billingservice.go -destination=mock.go -package=billingservice

type UserRepo interface {
	ListActive(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	CountActiveMembers(ctx context.Context) (int, error)
}

type CoffeeLogRepo interface {
	SumForUserMonth(ctx context.Context, userID int, month time.Time) (int, error)
	SumForMonth(ctx context.Context, month time.Time, member *bool) (int, error)
}

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	ListForUserMonth(ctx context.Context, userID int, month time.Time, categories []string) ([]domain.Payment, error)
	SumForMonth(ctx context.Context, month time.Time, categories []string) (decimal.Decimal, error)
	AttachInvoice(ctx context.Context, paymentIDs []int, invoiceID int) error
}

type BalanceRepo interface {
	GetBalance(ctx context.Context, userID int) (decimal.Decimal, error)
}

type InvoiceRepo interface {
	Save(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)
	FindByID(ctx context.Context, id int) (*domain.Invoice, error)
	FindForUserMonth(ctx context.Context, userID int, month time.Time) (*domain.Invoice, error)
	ListForMonth(ctx context.Context, month time.Time) ([]domain.Invoice, error)
	CountForMonth(ctx context.Context, month time.Time) (int, error)
	SetPaid(ctx context.Context, id int, paidAt time.Time) error
	SetEmailSent(ctx context.Context, id int, sentAt time.Time) error
}

var (
	ErrInvalidMonth       = errors.New("invalid billing month")
	ErrMonthAlreadyBooked = errors.New("month already booked")
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrInvoiceAlreadyPaid = errors.New("invoice already paid")
	ErrMailAlreadySent    = errors.New("invoice mail already sent")
)

// offsetCategories are the payments shown on an invoice as this month's
// purchases. Deposits and rent settle separately and never appear here.
var offsetCategories = []string{
	domain.PurchasePayment,
	domain.CorrectionPayment,
	domain.PayoutPayment,
}

type Service struct {
	pricing        *Pricing
	userRepo       UserRepo
	coffeeLogRepo  CoffeeLogRepo
	paymentRepo    PaymentRepo
	balanceRepo    BalanceRepo
	invoiceRepo    InvoiceRepo
	txManager      pg.TXManager
	mailer         mailer.Sender
	pool           mailer.WorkerPoolI
	paymentDetails string
	now            func() time.Time
}

func New(
	pricing *Pricing,
	userRepo UserRepo,
	coffeeLogRepo CoffeeLogRepo,
	paymentRepo PaymentRepo,
	balanceRepo BalanceRepo,
	invoiceRepo InvoiceRepo,
	txManager pg.TXManager,
	sender mailer.Sender,
	paymentDetails string,
) *Service {
	return &Service{
		pricing:        pricing,
		userRepo:       userRepo,
		coffeeLogRepo:  coffeeLogRepo,
		paymentRepo:    paymentRepo,
		balanceRepo:    balanceRepo,
		invoiceRepo:    invoiceRepo,
		txManager:      txManager,
		mailer:         sender,
		pool:           mailer.NewWorkerPool(5),
		paymentDetails: paymentDetails,
		now:            time.Now,
	}
}

// NormalizeMonth truncates a date to the first of its month in UTC.
// Invoices are keyed by that date.
func NormalizeMonth(month time.Time) time.Time {
	return time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// LastMonths returns the first days of the last n months, newest first.
func LastMonths(now time.Time, n int) []time.Time {
	months := make([]time.Time, 0, n)
	current := NormalizeMonth(now)
	for i := 0; i < n; i++ {
		months = append(months, current.AddDate(0, -i, 0))
	}
	return months
}

// Generate builds the candidate invoice list for a month without touching
// storage. It can be called any number of times before booking; the result
// only changes when the underlying data does.
func (s *Service) Generate(ctx context.Context, month time.Time) ([]domain.Invoice, error) {
	if month.IsZero() {
		return nil, ErrInvalidMonth
	}
	return s.generate(ctx, NormalizeMonth(month))
}

func (s *Service) generate(ctx context.Context, month time.Time) ([]domain.Invoice, error) {
	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		zap.L().Error("failed to list active users", zap.Error(err))
		return nil, err
	}

	invoices := make([]domain.Invoice, 0, len(users))
	for i := range users {
		invoice, err := s.buildInvoice(ctx, &users[i], month)
		if err != nil {
			return nil, err
		}
		if invoice == nil {
			continue
		}
		invoices = append(invoices, *invoice)
	}
	return invoices, nil
}

// buildInvoice computes one user's invoice for a month. Users without any
// logged cups get no invoice at all.
func (s *Service) buildInvoice(ctx context.Context, user *domain.User, month time.Time) (*domain.Invoice, error) {
	cupCount, err := s.coffeeLogRepo.SumForUserMonth(ctx, user.ID, month)
	if err != nil {
		return nil, err
	}
	if cupCount == 0 {
		return nil, nil
	}

	payments, err := s.paymentRepo.ListForUserMonth(ctx, user.ID, month, offsetCategories)
	if err != nil {
		return nil, err
	}
	paymentTotal := decimal.Zero
	for _, payment := range payments {
		paymentTotal = quantize(paymentTotal.Add(payment.Amount))
	}

	cupCost := s.pricing.CupCost(user.Member, cupCount)

	// Prior credit, before this month's invoice exists. This month's
	// purchase payments are listed on the invoice but only reach the
	// credit once the invoice is booked and the next run recomputes the
	// balance.
	balance, err := s.balanceRepo.GetBalance(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	balance = quantize(balance)

	var amountDue decimal.Decimal
	var paidAt *time.Time
	switch {
	case balance.IsPositive() && balance.LessThan(cupCost):
		// partial credit, remainder due
		amountDue = quantize(cupCost.Sub(balance))
	case balance.IsPositive():
		// fully covered by credit
		amountDue = quantize(decimal.Zero)
		now := s.now()
		paidAt = &now
	default:
		amountDue = quantize(cupCost)
	}

	return &domain.Invoice{
		UserID:       user.ID,
		Month:        month,
		CupCount:     cupCount,
		CupCost:      cupCost,
		PaymentTotal: paymentTotal,
		AmountDue:    amountDue,
		PaidAt:       paidAt,
		CreatedAt:    s.now(),
		User:         user,
		Payments:     payments,
	}, nil
}

// Month returns the month's invoices: the persisted ones when the month is
// booked, fresh candidates otherwise.
func (s *Service) Month(ctx context.Context, month time.Time) ([]domain.Invoice, bool, error) {
	if month.IsZero() {
		return nil, false, ErrInvalidMonth
	}
	month = NormalizeMonth(month)

	booked, err := s.invoiceRepo.ListForMonth(ctx, month)
	if err != nil {
		return nil, false, err
	}
	if len(booked) > 0 {
		for i := range booked {
			user, err := s.userRepo.FindByID(ctx, booked[i].UserID)
			if err != nil {
				return nil, false, err
			}
			booked[i].User = user
		}
		return booked, true, nil
	}

	candidates, err := s.generate(ctx, month)
	if err != nil {
		return nil, false, err
	}
	return candidates, false, nil
}

// Book persists the month's invoices in one transaction. The candidates
// are regenerated inside the transaction so the booked amounts come from
// the same snapshot as the duplicate check. Any failure rolls back the
// whole batch.
func (s *Service) Book(ctx context.Context, month time.Time) ([]domain.Invoice, error) {
	if month.IsZero() {
		return nil, ErrInvalidMonth
	}
	month = NormalizeMonth(month)

	var booked []domain.Invoice
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		count, err := s.invoiceRepo.CountForMonth(ctx, month)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrMonthAlreadyBooked
		}

		candidates, err := s.generate(ctx, month)
		if err != nil {
			return err
		}

		for i := range candidates {
			saved, err := s.invoiceRepo.Save(ctx, &candidates[i])
			if err != nil {
				return err
			}
			paymentIDs := make([]int, 0, len(candidates[i].Payments))
			for _, payment := range candidates[i].Payments {
				paymentIDs = append(paymentIDs, payment.ID)
			}
			if err := s.paymentRepo.AttachInvoice(ctx, paymentIDs, saved.ID); err != nil {
				return err
			}
			saved.User = candidates[i].User
			saved.Payments = candidates[i].Payments
			booked = append(booked, *saved)
		}
		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// a concurrent booking won the unique (user, month) race
			return nil, ErrMonthAlreadyBooked
		}
		zap.L().Error("monthly booking failed", zap.Time("month", month), zap.Error(err))
		return nil, err
	}

	zap.L().Info("month booked", zap.Time("month", month), zap.Int("invoices", len(booked)))
	return booked, nil
}

// Balance is the user's current credit: all payments minus all invoiced
// coffee cost.
func (s *Service) Balance(ctx context.Context, userID int) (decimal.Decimal, error) {
	balance, err := s.balanceRepo.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return decimal.Zero, err
	}
	return quantize(balance), nil
}

// MarkPaid settles an invoice: sets the paid timestamp and records a
// deposit payment over the amount due, linked to the invoice.
func (s *Service) MarkPaid(ctx context.Context, invoiceID int) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
		if err != nil {
			return err
		}
		if invoice == nil {
			return ErrInvoiceNotFound
		}
		if invoice.PaidAt != nil {
			return ErrInvoiceAlreadyPaid
		}

		now := s.now()
		if err := s.invoiceRepo.SetPaid(ctx, invoice.ID, now); err != nil {
			return err
		}

		_, err = s.paymentRepo.Create(ctx, &domain.Payment{
			UserID:    invoice.UserID,
			Amount:    invoice.AmountDue,
			Category:  domain.DepositPayment,
			Memo:      fmt.Sprintf("invoice %s paid", invoice.Month.Format("01-2006")),
			InvoiceID: &invoice.ID,
			CreatedAt: now,
		})
		return err
	})
}

// SendInvoice mails one invoice and records the send. A failed send leaves
// the invoice untouched so the operation can be retried.
func (s *Service) SendInvoice(ctx context.Context, invoiceID int) error {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if invoice == nil {
		return ErrInvoiceNotFound
	}
	if invoice.EmailSentAt != nil {
		return ErrMailAlreadySent
	}

	user, err := s.userRepo.FindByID(ctx, invoice.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvoiceNotFound
	}

	balance, err := s.balanceRepo.GetBalance(ctx, user.ID)
	if err != nil {
		return err
	}

	subject, body := s.invoiceMail(invoice, user, quantize(balance))
	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		zap.L().Error("invoice mail failed",
			zap.Int("invoiceID", invoice.ID),
			zap.String("email", user.Email),
			zap.Error(err),
		)
		return err
	}

	if err := s.invoiceRepo.SetEmailSent(ctx, invoice.ID, s.now()); err != nil {
		return err
	}
	zap.L().Info("invoice mail sent", zap.Int("invoiceID", invoice.ID), zap.String("email", user.Email))
	return nil
}

// SendMonthInvoices mails every booked invoice of the month that has not
// been sent yet. Failures are collected per invoice and do not stop the
// rest of the batch.
func (s *Service) SendMonthInvoices(ctx context.Context, month time.Time) (int, error) {
	if month.IsZero() {
		return 0, ErrInvalidMonth
	}
	invoices, err := s.invoiceRepo.ListForMonth(ctx, NormalizeMonth(month))
	if err != nil {
		return 0, err
	}

	var (
		mu   sync.Mutex
		sent int
		errs []error
		wg   sync.WaitGroup
		g    errgroup.Group
	)
	for _, invoice := range invoices {
		if invoice.EmailSentAt != nil {
			continue
		}
		invoice := invoice

		wg.Add(1)
		g.Go(func() error {
			err := s.pool.AddTask(ctx, func() error {
				defer wg.Done()
				if err := s.SendInvoice(ctx, invoice.ID); err != nil {
					mu.Lock()
					errs = append(errs, fmt.Errorf("invoice %d: %w", invoice.ID, err))
					mu.Unlock()
					return err
				}
				mu.Lock()
				sent++
				mu.Unlock()
				return nil
			})
			if err != nil {
				wg.Done()
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sent, err
	}
	wg.Wait()

	return sent, errors.Join(errs...)
}

// MonthSummary aggregates the whole month: cups per group, consumption
// cost, rent and the per-member rent share.
type MonthSummary struct {
	Month            time.Time
	MemberCups       int
	GuestCups        int
	TotalCups        int
	ConsumptionTotal decimal.Decimal
	Rent             decimal.Decimal
	TotalCost        decimal.Decimal
	RentShare        decimal.Decimal
	ActiveMembers    int
}

func (s *Service) Summary(ctx context.Context, month time.Time) (*MonthSummary, error) {
	if month.IsZero() {
		return nil, ErrInvalidMonth
	}
	month = NormalizeMonth(month)

	member := true
	guest := false
	memberCups, err := s.coffeeLogRepo.SumForMonth(ctx, month, &member)
	if err != nil {
		return nil, err
	}
	guestCups, err := s.coffeeLogRepo.SumForMonth(ctx, month, &guest)
	if err != nil {
		return nil, err
	}
	totalCups, err := s.coffeeLogRepo.SumForMonth(ctx, month, nil)
	if err != nil {
		return nil, err
	}

	consumption, err := s.paymentRepo.SumForMonth(ctx, month, []string{domain.PurchasePayment})
	if err != nil {
		return nil, err
	}
	consumption = quantize(consumption)

	activeMembers, err := s.userRepo.CountActiveMembers(ctx)
	if err != nil {
		return nil, err
	}

	rent := s.pricing.Rent()
	return &MonthSummary{
		Month:            month,
		MemberCups:       memberCups,
		GuestCups:        guestCups,
		TotalCups:        totalCups,
		ConsumptionTotal: consumption,
		Rent:             rent,
		TotalCost:        quantize(consumption.Add(rent)),
		RentShare:        s.pricing.RentShare(activeMembers),
		ActiveMembers:    activeMembers,
	}, nil
}
