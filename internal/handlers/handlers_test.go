package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/kaffeekasse/coffeebilling/docs"
	"github.com/kaffeekasse/coffeebilling/internal/config"
	"github.com/kaffeekasse/coffeebilling/internal/mailer"
	"github.com/kaffeekasse/coffeebilling/internal/pg"
	"github.com/kaffeekasse/coffeebilling/internal/repo"
	"github.com/kaffeekasse/coffeebilling/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()
	mockTxManager := pg.NewMockTXManager(ctrl)

	cfg := &config.Config{
		MemberCupRate: "0.25",
		GuestCupRate:  "1.00",
		MonthlyRent:   "20.00",
		BaseURL:       "http://localhost:8080",
	}
	services, err := service.New(cfg, repo.New(mockDB, mockTxManager), mailer.NewMockSender(ctrl), mockTxManager)
	assert.NoError(t, err)

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.CoffeeHandler)
	assert.NotNil(t, h.PaymentsHandler)
	assert.NotNil(t, h.BillingHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockCoffeeHandler := NewMockCoffeeHandler(ctrl)
	mockPaymentsHandler := NewMockPaymentsHandler(ctrl)
	mockBillingHandler := NewMockBillingHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Activate(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().RequestReset(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Reset(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:     mockAuthHandler,
		CoffeeHandler:   mockCoffeeHandler,
		PaymentsHandler: mockPaymentsHandler,
		BillingHandler:  mockBillingHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/activate", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"POST", "/api/user/reset-request", http.StatusOK},
		{"POST", "/api/user/reset", http.StatusOK},
		{"POST", "/api/coffee/", http.StatusUnauthorized},
		{"GET", "/api/coffee/", http.StatusUnauthorized},
		{"GET", "/api/balance", http.StatusUnauthorized},
		{"GET", "/api/payments", http.StatusUnauthorized},
		{"GET", "/api/billing/2025-07", http.StatusUnauthorized},
		{"POST", "/api/payments", http.StatusUnauthorized},
		{"GET", "/api/rent/2025-07/", http.StatusUnauthorized},
		{"POST", "/api/rent/2025-07/", http.StatusUnauthorized},
		{"POST", "/api/billing/2025-07/book", http.StatusUnauthorized},
		{"GET", "/api/billing/2025-07/summary", http.StatusUnauthorized},
		{"POST", "/api/billing/2025-07/send", http.StatusUnauthorized},
		{"POST", "/api/invoices/5/paid", http.StatusUnauthorized},
		{"POST", "/api/invoices/5/send", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
