package billingservice

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kaffeekasse/coffeebilling/internal/domain"
)

// invoiceMail composes the invoice mail. The wording follows the amount
// due: nothing to pay when credit covered everything, only the remainder
// when credit was applied partially, the full amount otherwise.
func (s *Service) invoiceMail(invoice *domain.Invoice, user *domain.User, balance decimal.Decimal) (subject, body string) {
	month := monthName(invoice.Month)
	subject = fmt.Sprintf("Coffee invoice %s", month)

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s %s,\n\n", user.FirstName, user.Name)
	fmt.Fprintf(&b, "your coffee invoice for %s:\n\n", month)
	fmt.Fprintf(&b, "Cups of coffee: %d\n", invoice.CupCount)
	fmt.Fprintf(&b, "Coffee cost: %s EUR\n", invoice.CupCost.StringFixed(2))
	if invoice.PaymentTotal.IsPositive() {
		fmt.Fprintf(&b, "Purchases this month: %s EUR\n", invoice.PaymentTotal.StringFixed(2))
	}

	switch {
	case invoice.AmountDue.IsZero():
		b.WriteString("\nYour existing credit covered this month's cost.\n")
		b.WriteString("There is nothing to pay.\n\n")
		fmt.Fprintf(&b, "Your current credit: %s EUR\n", balance.StringFixed(2))
	case invoice.AmountDue.LessThan(invoice.CupCost):
		b.WriteString("\nYour existing credit was applied to this month's cost.\n")
		fmt.Fprintf(&b, "Please transfer only the remaining %s EUR.\n\n", invoice.AmountDue.StringFixed(2))
		b.WriteString(s.paymentDetails)
		b.WriteString("\n")
	default:
		b.WriteString("\n=========================================================\n")
		fmt.Fprintf(&b, "Total amount: %s EUR\n\n", invoice.AmountDue.StringFixed(2))
		b.WriteString(s.paymentDetails)
		b.WriteString("\n")
	}

	return subject, b.String()
}

func monthName(month time.Time) string {
	return month.Format("January 2006")
}
