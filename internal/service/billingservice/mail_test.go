package billingservice

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kaffeekasse/coffeebilling/internal/domain"
)

func TestInvoiceMail(t *testing.T) {
	month := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	user := &domain.User{ID: 1, Name: "Smith", FirstName: "Anna", Email: "smith@example.com"}

	tests := []struct {
		name         string
		invoice      *domain.Invoice
		balance      string
		wantContains []string
		wantExcludes []string
	}{
		{
			name: "Full amount due",
			invoice: &domain.Invoice{
				Month: month, CupCount: 40,
				CupCost:   decimal.RequireFromString("10.00"),
				AmountDue: decimal.RequireFromString("10.00"),
			},
			balance:      "0.00",
			wantContains: []string{"Total amount: 10.00 EUR", "Kaffeekasse, IBAN DE00 0000"},
			wantExcludes: []string{"nothing to pay", "remaining"},
		},
		{
			name: "Partial credit",
			invoice: &domain.Invoice{
				Month: month, CupCount: 10,
				CupCost:   decimal.RequireFromString("2.50"),
				AmountDue: decimal.RequireFromString("1.50"),
			},
			balance:      "0.00",
			wantContains: []string{"remaining 1.50 EUR", "Kaffeekasse, IBAN DE00 0000"},
			wantExcludes: []string{"nothing to pay", "Total amount"},
		},
		{
			name: "Covered by credit",
			invoice: &domain.Invoice{
				Month: month, CupCount: 3,
				CupCost:   decimal.RequireFromString("3.00"),
				AmountDue: decimal.Zero,
			},
			balance:      "2.00",
			wantContains: []string{"nothing to pay", "Your current credit: 2.00 EUR"},
			wantExcludes: []string{"Total amount", "IBAN"},
		},
		{
			name: "Purchases are listed",
			invoice: &domain.Invoice{
				Month: month, CupCount: 40,
				CupCost:      decimal.RequireFromString("10.00"),
				PaymentTotal: decimal.RequireFromString("12.50"),
				AmountDue:    decimal.RequireFromString("10.00"),
			},
			balance:      "0.00",
			wantContains: []string{"Purchases this month: 12.50 EUR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := NewMock(t)

			subject, body := service.invoiceMail(tt.invoice, user, decimal.RequireFromString(tt.balance))
			assert.Equal(t, "Coffee invoice August 2025", subject)
			assert.Contains(t, body, "Hello Anna Smith")
			for _, want := range tt.wantContains {
				assert.Contains(t, body, want)
			}
			for _, unwanted := range tt.wantExcludes {
				assert.NotContains(t, body, unwanted)
			}
		})
	}
}
