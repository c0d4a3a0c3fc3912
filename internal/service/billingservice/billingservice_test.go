package billingservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/kaffeekasse/coffeebilling/internal/domain"
	"github.com/kaffeekasse/coffeebilling/internal/mailer"
	"github.com/kaffeekasse/coffeebilling/internal/pg"
)

var fixedNow = time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)

type serviceMocks struct {
	userRepo      *MockUserRepo
	coffeeLogRepo *MockCoffeeLogRepo
	paymentRepo   *MockPaymentRepo
	balanceRepo   *MockBalanceRepo
	invoiceRepo   *MockInvoiceRepo
	txManager     *pg.MockTXManager
	sender        *mailer.MockSender
}

func NewMock(t *testing.T) (*Service, *serviceMocks) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		userRepo:      NewMockUserRepo(ctrl),
		coffeeLogRepo: NewMockCoffeeLogRepo(ctrl),
		paymentRepo:   NewMockPaymentRepo(ctrl),
		balanceRepo:   NewMockBalanceRepo(ctrl),
		invoiceRepo:   NewMockInvoiceRepo(ctrl),
		txManager:     pg.NewMockTXManager(ctrl),
		sender:        mailer.NewMockSender(ctrl),
	}
	pricing, err := NewPricing("0.25", "1.00", "20.00")
	assert.NoError(t, err)
	service := New(pricing, m.userRepo, m.coffeeLogRepo, m.paymentRepo, m.balanceRepo, m.invoiceRepo, m.txManager, m.sender, "Kaffeekasse, IBAN DE00 0000")
	service.now = func() time.Time { return fixedNow }
	defer ctrl.Finish()
	return service, m
}

func passThroughTx(m *pg.MockTXManager) {
	m.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestNormalizeMonth(t *testing.T) {
	in := time.Date(2025, 8, 20, 17, 45, 3, 0, time.FixedZone("CEST", 2*3600))
	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), NormalizeMonth(in))
}

func TestLastMonths(t *testing.T) {
	months := LastMonths(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), 3)
	assert.Equal(t, []time.Time{
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
	}, months)
}

func TestGenerate(t *testing.T) {
	month := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	member := domain.User{ID: 1, Name: "Smith", Email: "smith@example.com", Member: true, Status: domain.ActiveUserStatus}
	guest := domain.User{ID: 2, Name: "Jones", Email: "jones@example.com", Member: false, Status: domain.ActiveUserStatus}

	tests := []struct {
		name          string
		month         time.Time
		prepareMock   func(m *serviceMocks)
		check         func(t *testing.T, invoices []domain.Invoice)
		expectedError error
	}{
		{
			name:          "Zero month is rejected",
			month:         time.Time{},
			expectedError: ErrInvalidMonth,
		},
		{
			name:  "User without cups gets no invoice",
			month: month,
			prepareMock: func(m *serviceMocks) {
				m.userRepo.EXPECT().ListActive(gomock.Any()).Return([]domain.User{member}, nil)
				m.coffeeLogRepo.EXPECT().SumForUserMonth(gomock.Any(), 1, month).Return(0, nil)
			},
			check: func(t *testing.T, invoices []domain.Invoice) {
				assert.Empty(t, invoices)
			},
		},
		{
			name:  "Member pays the member rate",
			month: month,
			prepareMock: func(m *serviceMocks) {
				m.userRepo.EXPECT().ListActive(gomock.Any()).Return([]domain.User{member}, nil)
				m.coffeeLogRepo.EXPECT().SumForUserMonth(gomock.Any(), 1, month).Return(40, nil)
				m.paymentRepo.EXPECT().ListForUserMonth(gomock.Any(), 1, month, offsetCategories).Return(nil, nil)
				m.balanceRepo.EXPECT().GetBalance(gomock.Any(), 1).Return(decimal.Zero, nil)
			},
			check: func(t *testing.T, invoices []domain.Invoice) {
				assert.Len(t, invoices, 1)
				assert.Equal(t, 40, invoices[0].CupCount)
				assert.Equal(t, "10.00", invoices[0].CupCost.StringFixed(2))
				assert.Equal(t, "10.00", invoices[0].AmountDue.StringFixed(2))
				assert.Nil(t, invoices[0].PaidAt)
			},
		},
		{
			name:  "Guest credit covers the whole invoice",
			month: month,
			prepareMock: func(m *serviceMocks) {
				m.userRepo.EXPECT().ListActive(gomock.Any()).Return([]domain.User{guest}, nil)
				m.coffeeLogRepo.EXPECT().SumForUserMonth(gomock.Any(), 2, month).Return(3, nil)
				m.paymentRepo.EXPECT().ListForUserMonth(gomock.Any(), 2, month, offsetCategories).Return(nil, nil)
				m.balanceRepo.EXPECT().GetBalance(gomock.Any(), 2).Return(decimal.RequireFromString("5.00"), nil)
			},
			check: func(t *testing.T, invoices []domain.Invoice) {
				assert.Len(t, invoices, 1)
				assert.Equal(t, "3.00", invoices[0].CupCost.StringFixed(2))
				assert.Equal(t, "0.00", invoices[0].AmountDue.StringFixed(2))
				assert.NotNil(t, invoices[0].PaidAt)
				assert.Equal(t, fixedNow, *invoices[0].PaidAt)
			},
		},
		{
			name:  "Partial credit reduces the amount due",
			month: month,
			prepareMock: func(m *serviceMocks) {
				m.userRepo.EXPECT().ListActive(gomock.Any()).Return([]domain.User{member}, nil)
				m.coffeeLogRepo.EXPECT().SumForUserMonth(gomock.Any(), 1, month).Return(10, nil)
				m.paymentRepo.EXPECT().ListForUserMonth(gomock.Any(), 1, month, offsetCategories).Return(nil, nil)
				m.balanceRepo.EXPECT().GetBalance(gomock.Any(), 1).Return(decimal.RequireFromString("1.00"), nil)
			},
			check: func(t *testing.T, invoices []domain.Invoice) {
				assert.Len(t, invoices, 1)
				assert.Equal(t, "2.50", invoices[0].CupCost.StringFixed(2))
				assert.Equal(t, "1.50", invoices[0].AmountDue.StringFixed(2))
				assert.Nil(t, invoices[0].PaidAt)
			},
		},
		{
			name:  "Credit equal to the cup cost settles the invoice",
			month: month,
			prepareMock: func(m *serviceMocks) {
				m.userRepo.EXPECT().ListActive(gomock.Any()).Return([]domain.User{member}, nil)
				m.coffeeLogRepo.EXPECT().SumForUserMonth(gomock.Any(), 1, month).Return(10, nil)
				m.paymentRepo.EXPECT().ListForUserMonth(gomock.Any(), 1, month, offsetCategories).Return(nil, nil)
				m.balanceRepo.EXPECT().GetBalance(gomock.Any(), 1).Return(decimal.RequireFromString("2.50"), nil)
			},
			check: func(t *testing.T, invoices []domain.Invoice) {
				assert.Len(t, invoices, 1)
				assert.Equal(t, "0.00", invoices[0].AmountDue.StringFixed(2))
				assert.NotNil(t, invoices[0].PaidAt)
			},
		},
		{
			name:  "Negative balance leaves the full amount due",
			month: month,
			prepareMock: func(m *serviceMocks) {
				m.userRepo.EXPECT().ListActive(gomock.Any()).Return([]domain.User{member}, nil)
				m.coffeeLogRepo.EXPECT().SumForUserMonth(gomock.Any(), 1, month).Return(4, nil)
				m.paymentRepo.EXPECT().ListForUserMonth(gomock.Any(), 1, month, offsetCategories).Return(nil, nil)
				m.balanceRepo.EXPECT().GetBalance(gomock.Any(), 1).Return(decimal.RequireFromString("-3.25"), nil)
			},
			check: func(t *testing.T, invoices []domain.Invoice) {
				assert.Len(t, invoices, 1)
				assert.Equal(t, "1.00", invoices[0].AmountDue.StringFixed(2))
				assert.Nil(t, invoices[0].PaidAt)
			},
		},
		{
			name:  "Payment total lists this month's purchases without changing the amount due",
			month: month,
			prepareMock: func(m *serviceMocks) {
				m.userRepo.EXPECT().ListActive(gomock.Any()).Return([]domain.User{member}, nil)
				m.coffeeLogRepo.EXPECT().SumForUserMonth(gomock.Any(), 1, month).Return(40, nil)
				m.paymentRepo.EXPECT().ListForUserMonth(gomock.Any(), 1, month, offsetCategories).Return([]domain.Payment{
					{ID: 7, UserID: 1, Amount: decimal.RequireFromString("12.50"), Category: domain.PurchasePayment},
				}, nil)
				m.balanceRepo.EXPECT().GetBalance(gomock.Any(), 1).Return(decimal.Zero, nil)
			},
			check: func(t *testing.T, invoices []domain.Invoice) {
				assert.Len(t, invoices, 1)
				assert.Equal(t, "12.50", invoices[0].PaymentTotal.StringFixed(2))
				assert.Equal(t, "10.00", invoices[0].AmountDue.StringFixed(2))
			},
		},
		{
			name:  "Repo error is passed through",
			month: month,
			prepareMock: func(m *serviceMocks) {
				m.userRepo.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(m)
			}

			invoices, err := service.Generate(context.Background(), tt.month)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			if tt.check != nil {
				tt.check(t, invoices)
			}
		})
	}
}

func TestGenerateIsRepeatable(t *testing.T) {
	month := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	member := domain.User{ID: 1, Name: "Smith", Member: true}

	service, m := NewMock(t)
	m.userRepo.EXPECT().ListActive(gomock.Any()).Return([]domain.User{member}, nil).Times(2)
	m.coffeeLogRepo.EXPECT().SumForUserMonth(gomock.Any(), 1, month).Return(8, nil).Times(2)
	m.paymentRepo.EXPECT().ListForUserMonth(gomock.Any(), 1, month, offsetCategories).Return(nil, nil).Times(2)
	m.balanceRepo.EXPECT().GetBalance(gomock.Any(), 1).Return(decimal.Zero, nil).Times(2)

	first, err := service.Generate(context.Background(), month)
	assert.NoError(t, err)
	second, err := service.Generate(context.Background(), month)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMonth(t *testing.T) {
	month := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	user := domain.User{ID: 1, Name: "Smith", Member: true}

	tests := []struct {
		name           string
		prepareMock    func(m *serviceMocks)
		expectedBooked bool
		expectedLen    int
		expectedError  error
	}{
		{
			name: "Booked month returns persisted invoices",
			prepareMock: func(m *serviceMocks) {
				m.invoiceRepo.EXPECT().ListForMonth(gomock.Any(), month).Return([]domain.Invoice{
					{ID: 3, UserID: 1, Month: month, CupCount: 40},
				}, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&user, nil)
			},
			expectedBooked: true,
			expectedLen:    1,
		},
		{
			name: "Unbooked month returns fresh candidates",
			prepareMock: func(m *serviceMocks) {
				m.invoiceRepo.EXPECT().ListForMonth(gomock.Any(), month).Return(nil, nil)
				m.userRepo.EXPECT().ListActive(gomock.Any()).Return([]domain.User{user}, nil)
				m.coffeeLogRepo.EXPECT().SumForUserMonth(gomock.Any(), 1, month).Return(12, nil)
				m.paymentRepo.EXPECT().ListForUserMonth(gomock.Any(), 1, month, offsetCategories).Return(nil, nil)
				m.balanceRepo.EXPECT().GetBalance(gomock.Any(), 1).Return(decimal.Zero, nil)
			},
			expectedBooked: false,
			expectedLen:    1,
		},
		{
			name: "List error is passed through",
			prepareMock: func(m *serviceMocks) {
				m.invoiceRepo.EXPECT().ListForMonth(gomock.Any(), month).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(m)
			}

			invoices, booked, err := service.Month(context.Background(), month)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBooked, booked)
			assert.Len(t, invoices, tt.expectedLen)
		})
	}
}

func TestBook(t *testing.T) {
	month := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	user := domain.User{ID: 1, Name: "Smith", Member: true}

	tests := []struct {
		name          string
		month         time.Time
		prepareMock   func(m *serviceMocks)
		expectedLen   int
		expectedError error
	}{
		{
			name:          "Zero month is rejected",
			month:         time.Time{},
			expectedError: ErrInvalidMonth,
		},
		{
			name:  "Already booked month is rejected",
			month: month,
			prepareMock: func(m *serviceMocks) {
				passThroughTx(m.txManager)
				m.invoiceRepo.EXPECT().CountForMonth(gomock.Any(), month).Return(2, nil)
			},
			expectedError: ErrMonthAlreadyBooked,
		},
		{
			name:  "Concurrent booking maps the unique violation",
			month: month,
			prepareMock: func(m *serviceMocks) {
				m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23505"})
			},
			expectedError: ErrMonthAlreadyBooked,
		},
		{
			name:  "Booking persists invoices and links payments",
			month: month,
			prepareMock: func(m *serviceMocks) {
				passThroughTx(m.txManager)
				m.invoiceRepo.EXPECT().CountForMonth(gomock.Any(), month).Return(0, nil)
				m.userRepo.EXPECT().ListActive(gomock.Any()).Return([]domain.User{user}, nil)
				m.coffeeLogRepo.EXPECT().SumForUserMonth(gomock.Any(), 1, month).Return(20, nil)
				m.paymentRepo.EXPECT().ListForUserMonth(gomock.Any(), 1, month, offsetCategories).Return([]domain.Payment{
					{ID: 9, UserID: 1, Amount: decimal.RequireFromString("4.00"), Category: domain.PurchasePayment},
				}, nil)
				m.balanceRepo.EXPECT().GetBalance(gomock.Any(), 1).Return(decimal.Zero, nil)
				m.invoiceRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
						saved := *invoice
						saved.ID = 11
						return &saved, nil
					},
				)
				m.paymentRepo.EXPECT().AttachInvoice(gomock.Any(), []int{9}, 11).Return(nil)
			},
			expectedLen: 1,
		},
		{
			name:  "Save failure rolls the batch back",
			month: month,
			prepareMock: func(m *serviceMocks) {
				passThroughTx(m.txManager)
				m.invoiceRepo.EXPECT().CountForMonth(gomock.Any(), month).Return(0, nil)
				m.userRepo.EXPECT().ListActive(gomock.Any()).Return([]domain.User{user}, nil)
				m.coffeeLogRepo.EXPECT().SumForUserMonth(gomock.Any(), 1, month).Return(20, nil)
				m.paymentRepo.EXPECT().ListForUserMonth(gomock.Any(), 1, month, offsetCategories).Return(nil, nil)
				m.balanceRepo.EXPECT().GetBalance(gomock.Any(), 1).Return(decimal.Zero, nil)
				m.invoiceRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(m)
			}

			booked, err := service.Book(context.Background(), tt.month)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Len(t, booked, tt.expectedLen)
			assert.Equal(t, 11, booked[0].ID)
		})
	}
}

func TestBalance(t *testing.T) {
	service, m := NewMock(t)
	m.balanceRepo.EXPECT().GetBalance(gomock.Any(), 1).Return(decimal.RequireFromString("4.756"), nil)

	balance, err := service.Balance(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "4.76", balance.StringFixed(2))
}

func TestMarkPaid(t *testing.T) {
	month := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	paid := fixedNow

	tests := []struct {
		name          string
		prepareMock   func(m *serviceMocks)
		expectedError error
	}{
		{
			name: "Unknown invoice",
			prepareMock: func(m *serviceMocks) {
				passThroughTx(m.txManager)
				m.invoiceRepo.EXPECT().FindByID(gomock.Any(), 5).Return(nil, nil)
			},
			expectedError: ErrInvoiceNotFound,
		},
		{
			name: "Already paid invoice",
			prepareMock: func(m *serviceMocks) {
				passThroughTx(m.txManager)
				m.invoiceRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Invoice{ID: 5, PaidAt: &paid}, nil)
			},
			expectedError: ErrInvoiceAlreadyPaid,
		},
		{
			name: "Settling records the deposit",
			prepareMock: func(m *serviceMocks) {
				passThroughTx(m.txManager)
				m.invoiceRepo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Invoice{
					ID: 5, UserID: 1, Month: month, AmountDue: decimal.RequireFromString("7.25"),
				}, nil)
				m.invoiceRepo.EXPECT().SetPaid(gomock.Any(), 5, fixedNow).Return(nil)
				m.paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
						assert.Equal(t, 1, payment.UserID)
						assert.Equal(t, "7.25", payment.Amount.StringFixed(2))
						assert.Equal(t, domain.DepositPayment, payment.Category)
						assert.Equal(t, "invoice 07-2025 paid", payment.Memo)
						assert.NotNil(t, payment.InvoiceID)
						assert.Equal(t, 5, *payment.InvoiceID)
						return payment, nil
					},
				)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(m)
			}

			err := service.MarkPaid(context.Background(), 5)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSendInvoice(t *testing.T) {
	month := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	sentAt := fixedNow
	user := domain.User{ID: 1, Name: "Smith", FirstName: "Anna", Email: "smith@example.com", Member: true}

	tests := []struct {
		name          string
		prepareMock   func(m *serviceMocks)
		expectedError error
	}{
		{
			name: "Unknown invoice",
			prepareMock: func(m *serviceMocks) {
				m.invoiceRepo.EXPECT().FindByID(gomock.Any(), 3).Return(nil, nil)
			},
			expectedError: ErrInvoiceNotFound,
		},
		{
			name: "Already sent invoice",
			prepareMock: func(m *serviceMocks) {
				m.invoiceRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Invoice{ID: 3, EmailSentAt: &sentAt}, nil)
			},
			expectedError: ErrMailAlreadySent,
		},
		{
			name: "Successful send records the timestamp",
			prepareMock: func(m *serviceMocks) {
				m.invoiceRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Invoice{
					ID: 3, UserID: 1, Month: month, CupCount: 40,
					CupCost:   decimal.RequireFromString("10.00"),
					AmountDue: decimal.RequireFromString("10.00"),
				}, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&user, nil)
				m.balanceRepo.EXPECT().GetBalance(gomock.Any(), 1).Return(decimal.Zero, nil)
				m.sender.EXPECT().Send(gomock.Any(), "smith@example.com", gomock.Any(), gomock.Any()).Return(nil)
				m.invoiceRepo.EXPECT().SetEmailSent(gomock.Any(), 3, fixedNow).Return(nil)
			},
		},
		{
			name: "Failed send leaves the invoice untouched",
			prepareMock: func(m *serviceMocks) {
				m.invoiceRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Invoice{
					ID: 3, UserID: 1, Month: month, CupCount: 40,
					CupCost:   decimal.RequireFromString("10.00"),
					AmountDue: decimal.RequireFromString("10.00"),
				}, nil)
				m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&user, nil)
				m.balanceRepo.EXPECT().GetBalance(gomock.Any(), 1).Return(decimal.Zero, nil)
				m.sender.EXPECT().Send(gomock.Any(), "smith@example.com", gomock.Any(), gomock.Any()).Return(errors.New("smtp error"))
			},
			expectedError: errors.New("smtp error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(m)
			}

			err := service.SendInvoice(context.Background(), 3)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSendMonthInvoices(t *testing.T) {
	month := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	sentAt := fixedNow
	user := domain.User{ID: 1, Name: "Smith", Email: "smith@example.com", Member: true}

	service, m := NewMock(t)
	m.invoiceRepo.EXPECT().ListForMonth(gomock.Any(), month).Return([]domain.Invoice{
		{ID: 1, UserID: 1, Month: month, EmailSentAt: &sentAt},
		{ID: 2, UserID: 1, Month: month, CupCount: 4,
			CupCost:   decimal.RequireFromString("1.00"),
			AmountDue: decimal.RequireFromString("1.00")},
	}, nil)
	m.invoiceRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.Invoice{
		ID: 2, UserID: 1, Month: month, CupCount: 4,
		CupCost:   decimal.RequireFromString("1.00"),
		AmountDue: decimal.RequireFromString("1.00"),
	}, nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&user, nil)
	m.balanceRepo.EXPECT().GetBalance(gomock.Any(), 1).Return(decimal.Zero, nil)
	m.sender.EXPECT().Send(gomock.Any(), "smith@example.com", gomock.Any(), gomock.Any()).Return(nil)
	m.invoiceRepo.EXPECT().SetEmailSent(gomock.Any(), 2, fixedNow).Return(nil)

	sent, err := service.SendMonthInvoices(context.Background(), month)
	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestSummary(t *testing.T) {
	month := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	service, m := NewMock(t)
	memberFlag := true
	guestFlag := false
	m.coffeeLogRepo.EXPECT().SumForMonth(gomock.Any(), month, &memberFlag).Return(120, nil)
	m.coffeeLogRepo.EXPECT().SumForMonth(gomock.Any(), month, &guestFlag).Return(14, nil)
	m.coffeeLogRepo.EXPECT().SumForMonth(gomock.Any(), month, nil).Return(134, nil)
	m.paymentRepo.EXPECT().SumForMonth(gomock.Any(), month, []string{domain.PurchasePayment}).Return(decimal.RequireFromString("45.80"), nil)
	m.userRepo.EXPECT().CountActiveMembers(gomock.Any()).Return(5, nil)

	summary, err := service.Summary(context.Background(), month)
	assert.NoError(t, err)
	assert.Equal(t, 120, summary.MemberCups)
	assert.Equal(t, 14, summary.GuestCups)
	assert.Equal(t, 134, summary.TotalCups)
	assert.Equal(t, "45.80", summary.ConsumptionTotal.StringFixed(2))
	assert.Equal(t, "20.00", summary.Rent.StringFixed(2))
	assert.Equal(t, "65.80", summary.TotalCost.StringFixed(2))
	assert.Equal(t, "4.00", summary.RentShare.StringFixed(2))
	assert.Equal(t, 5, summary.ActiveMembers)
}
