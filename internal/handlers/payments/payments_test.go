package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/kaffeekasse/coffeebilling/internal/domain"
	"github.com/kaffeekasse/coffeebilling/internal/dto"
	"github.com/kaffeekasse/coffeebilling/internal/service/paymentservice"
	"github.com/kaffeekasse/coffeebilling/pkg/auth"
)

func NewMock(t *testing.T) (*PaymentsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestRecordHandler(t *testing.T) {
	handler, service := NewMock(t)
	createdAt := time.Date(2025, 7, 14, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.PaymentDTO
	}{
		{
			name: "Successful recording",
			body: `{"user_id":2,"amount":"10.00","category":"purchase","memo":"July deposit"}`,
			prepareMock: func() {
				service.EXPECT().
					Record(gomock.Any(), 2, decimal.RequireFromString("10.00"), "purchase", "July deposit").
					Return(&domain.Payment{
						ID:        4,
						UserID:    2,
						Amount:    decimal.RequireFromString("10.00"),
						Category:  "purchase",
						Memo:      "July deposit",
						CreatedAt: createdAt,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.PaymentDTO{
				ID:        4,
				Amount:    "10.00",
				Category:  "purchase",
				Memo:      "July deposit",
				CreatedAt: createdAt,
			},
		},
		{
			name:          "Invalid request body",
			body:          `{"user_id":2,"amount":10}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Invalid amount",
			body:          `{"user_id":2,"amount":"ten","category":"purchase"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid amount",
		},
		{
			name: "Invalid category",
			body: `{"user_id":2,"amount":"10.00","category":"lottery"}`,
			prepareMock: func() {
				service.EXPECT().
					Record(gomock.Any(), 2, decimal.RequireFromString("10.00"), "lottery", "").
					Return(nil, paymentservice.ErrInvalidCategory)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "invalid payment category",
		},
		{
			name: "Internal server error",
			body: `{"user_id":2,"amount":"10.00","category":"purchase"}`,
			prepareMock: func() {
				service.EXPECT().
					Record(gomock.Any(), 2, decimal.RequireFromString("10.00"), "purchase", "").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/payments", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()
			handler.Record(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.PaymentDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)
	createdAt := time.Date(2025, 7, 14, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.PaymentDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					List(context.WithValue(context.Background(), auth.UserIDKey, 1), 1).
					Return([]domain.Payment{
						{
							ID:        4,
							UserID:    1,
							Amount:    decimal.RequireFromString("10.00"),
							Category:  "purchase",
							CreatedAt: createdAt,
						},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.PaymentDTO{
				{ID: 4, Amount: "10.00", Category: "purchase", CreatedAt: createdAt},
			},
		},
		{
			name: "No payments",
			prepareMock: func() {
				service.EXPECT().
					List(context.WithValue(context.Background(), auth.UserIDKey, 1), 1).
					Return([]domain.Payment{}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					List(context.WithValue(context.Background(), auth.UserIDKey, 1), 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/payments", nil)
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()
			handler.List(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.PaymentDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestRecordRentHandler(t *testing.T) {
	handler, service := NewMock(t)
	month := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		month         string
		query         string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:  "Successful recording",
			month: "2025-07",
			query: "?user_id=2",
			prepareMock: func() {
				service.EXPECT().
					RecordRent(gomock.Any(), 2, month).
					Return(&domain.RentPayment{ID: 1, UserID: 2, Month: month}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid month",
			month:         "soon",
			query:         "?user_id=2",
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid month",
		},
		{
			name:          "Invalid user id",
			month:         "2025-07",
			query:         "?user_id=two",
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid user id",
		},
		{
			name:  "Rent already recorded",
			month: "2025-07",
			query: "?user_id=2",
			prepareMock: func() {
				service.EXPECT().
					RecordRent(gomock.Any(), 2, month).
					Return(nil, paymentservice.ErrRentAlreadyPaid)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "rent already recorded for this month",
		},
		{
			name:  "Internal server error",
			month: "2025-07",
			query: "?user_id=2",
			prepareMock: func() {
				service.EXPECT().
					RecordRent(gomock.Any(), 2, month).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/rent/"+tt.month+tt.query, nil)
			r = withURLParams(r, map[string]string{"month": tt.month})
			w := httptest.NewRecorder()
			handler.RecordRent(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestRentStatusHandler(t *testing.T) {
	handler, service := NewMock(t)
	month := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		month         string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  []dto.RentStatusEntryDTO
	}{
		{
			name:  "Successful retrieval",
			month: "2025-07",
			prepareMock: func() {
				service.EXPECT().
					RentMonthStatus(gomock.Any(), month).
					Return([]paymentservice.RentStatus{
						{User: domain.User{ID: 1, Name: "Anna Smith"}, Paid: true},
						{User: domain.User{ID: 2, Name: "Ben Clark"}, Paid: false},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.RentStatusEntryDTO{
				{UserID: 1, Name: "Anna Smith", Paid: true},
				{UserID: 2, Name: "Ben Clark", Paid: false},
			},
		},
		{
			name:          "Invalid month",
			month:         "2025-00",
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid month",
		},
		{
			name:  "Internal server error",
			month: "2025-07",
			prepareMock: func() {
				service.EXPECT().
					RentMonthStatus(gomock.Any(), month).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/rent/"+tt.month, nil)
			r = withURLParams(r, map[string]string{"month": tt.month})
			w := httptest.NewRecorder()
			handler.RentStatus(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body []dto.RentStatusEntryDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
