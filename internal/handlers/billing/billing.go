package billing

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/kaffeekasse/coffeebilling/internal/domain"
	"github.com/kaffeekasse/coffeebilling/internal/dto"
	"github.com/kaffeekasse/coffeebilling/internal/service/billingservice"
	"github.com/kaffeekasse/coffeebilling/pkg/auth"
	"github.com/kaffeekasse/coffeebilling/pkg/utils"
)

type Service interface {
	Month(ctx context.Context, month time.Time) ([]domain.Invoice, bool, error)
	Book(ctx context.Context, month time.Time) ([]domain.Invoice, error)
	Balance(ctx context.Context, userID int) (decimal.Decimal, error)
	MarkPaid(ctx context.Context, invoiceID int) error
	SendInvoice(ctx context.Context, invoiceID int) error
	SendMonthInvoices(ctx context.Context, month time.Time) (int, error)
	Summary(ctx context.Context, month time.Time) (*billingservice.MonthSummary, error)
}

type BillingHandler struct {
	billingService Service
}

func New(billingService Service) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Current credit of the authenticated user: payments minus invoiced coffee cost
//	@Tags			Billing
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/balance [get]
func (h *BillingHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.billingService.Balance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance: balance.StringFixed(2),
	})
}

// Month godoc
//
//	@Summary		Month invoices
//	@Description	Booked invoices of a month, or a fresh candidate preview when the month is not booked yet
//	@Tags			Billing
//	@Security		BearerAuth
//	@Produce		json
//	@Param			month	path		string	true	"Month as YYYY-MM"
//	@Success		200		{object}	dto.MonthInvoicesResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid month"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/billing/{month} [get]
func (h *BillingHandler) Month(w http.ResponseWriter, r *http.Request) {
	month, err := utils.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid month")
		return
	}

	invoices, booked, err := h.billingService.Month(r.Context(), month)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.MonthInvoicesResponseDTO{
		Month:    month.Format("2006-01"),
		Booked:   booked,
		Invoices: invoiceDTOs(invoices),
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Book godoc
//
//	@Summary		Book the month
//	@Description	Persist the month's invoices in one transaction (admin only). Fails when the month is already booked.
//	@Tags			Billing
//	@Security		BearerAuth
//	@Produce		json
//	@Param			month	path		string	true	"Month as YYYY-MM"
//	@Success		200		{object}	dto.BookMonthResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		409		{object}	utils.Response	"Month already booked"
//	@Failure		422		{object}	utils.Response	"Invalid month"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/billing/{month}/book [post]
func (h *BillingHandler) Book(w http.ResponseWriter, r *http.Request) {
	month, err := utils.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid month")
		return
	}

	invoices, err := h.billingService.Book(r.Context(), month)
	if err != nil {
		if errors.Is(err, billingservice.ErrMonthAlreadyBooked) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Booking failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BookMonthResponseDTO{
		Month:    month.Format("2006-01"),
		Invoices: invoiceDTOs(invoices),
	})
}

// Summary godoc
//
//	@Summary		Month summary
//	@Description	Cups per group, consumption cost, rent and per-member rent share (admin only)
//	@Tags			Billing
//	@Security		BearerAuth
//	@Produce		json
//	@Param			month	path		string	true	"Month as YYYY-MM"
//	@Success		200		{object}	dto.MonthSummaryResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		422		{object}	utils.Response	"Invalid month"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/billing/{month}/summary [get]
func (h *BillingHandler) Summary(w http.ResponseWriter, r *http.Request) {
	month, err := utils.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid month")
		return
	}

	summary, err := h.billingService.Summary(r.Context(), month)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MonthSummaryResponseDTO{
		Month:            summary.Month.Format("2006-01"),
		MemberCups:       summary.MemberCups,
		GuestCups:        summary.GuestCups,
		TotalCups:        summary.TotalCups,
		ConsumptionTotal: summary.ConsumptionTotal.StringFixed(2),
		Rent:             summary.Rent.StringFixed(2),
		TotalCost:        summary.TotalCost.StringFixed(2),
		RentShare:        summary.RentShare.StringFixed(2),
		ActiveMembers:    summary.ActiveMembers,
	})
}

// MarkPaid godoc
//
//	@Summary		Mark an invoice paid
//	@Description	Set the paid timestamp and record the matching deposit payment (admin only)
//	@Tags			Billing
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Invoice id"
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Invoice not found"
//	@Failure		409	{object}	utils.Response	"Invoice already paid"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/invoices/{id}/paid [post]
func (h *BillingHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	invoiceID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid invoice id")
		return
	}

	if err := h.billingService.MarkPaid(r.Context(), invoiceID); err != nil {
		switch {
		case errors.Is(err, billingservice.ErrInvoiceNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, billingservice.ErrInvoiceAlreadyPaid):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "invoice marked as paid"})
}

// SendInvoice godoc
//
//	@Summary		Mail one invoice
//	@Description	Send the invoice mail and record the send timestamp (admin only)
//	@Tags			Billing
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Invoice id"
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Invoice not found"
//	@Failure		409	{object}	utils.Response	"Mail already sent"
//	@Failure		502	{object}	utils.Response	"Mail delivery failed"
//	@Router			/api/invoices/{id}/send [post]
func (h *BillingHandler) SendInvoice(w http.ResponseWriter, r *http.Request) {
	invoiceID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid invoice id")
		return
	}

	if err := h.billingService.SendInvoice(r.Context(), invoiceID); err != nil {
		switch {
		case errors.Is(err, billingservice.ErrInvoiceNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, billingservice.ErrMailAlreadySent):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusBadGateway, "Mail delivery failed")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "invoice mail sent"})
}

// SendMonth godoc
//
//	@Summary		Mail all unsent invoices of a month
//	@Description	Send every booked invoice of the month that has no send timestamp yet (admin only)
//	@Tags			Billing
//	@Security		BearerAuth
//	@Produce		json
//	@Param			month	path		string	true	"Month as YYYY-MM"
//	@Success		200		{object}	dto.SendMonthResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		422		{object}	utils.Response	"Invalid month"
//	@Failure		502		{object}	utils.Response	"Some mails failed"
//	@Router			/api/billing/{month}/send [post]
func (h *BillingHandler) SendMonth(w http.ResponseWriter, r *http.Request) {
	month, err := utils.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid month")
		return
	}

	sent, err := h.billingService.SendMonthInvoices(r.Context(), month)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Some invoice mails failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SendMonthResponseDTO{
		Month: month.Format("2006-01"),
		Sent:  sent,
	})
}

func invoiceDTOs(invoices []domain.Invoice) []dto.InvoiceDTO {
	response := make([]dto.InvoiceDTO, len(invoices))
	for i, invoice := range invoices {
		response[i] = dto.InvoiceDTO{
			ID:           invoice.ID,
			UserID:       invoice.UserID,
			Month:        invoice.Month.Format("2006-01"),
			CupCount:     invoice.CupCount,
			CupCost:      invoice.CupCost.StringFixed(2),
			PaymentTotal: invoice.PaymentTotal.StringFixed(2),
			AmountDue:    invoice.AmountDue.StringFixed(2),
			PaidAt:       invoice.PaidAt,
			EmailSentAt:  invoice.EmailSentAt,
		}
		if invoice.User != nil {
			response[i].UserName = invoice.User.Name
		}
	}
	return response
}
