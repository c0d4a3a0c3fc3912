package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/kaffeekasse/coffeebilling/internal/domain"
	"github.com/kaffeekasse/coffeebilling/internal/dto"
	"github.com/kaffeekasse/coffeebilling/internal/service/paymentservice"
	"github.com/kaffeekasse/coffeebilling/pkg/auth"
	"github.com/kaffeekasse/coffeebilling/pkg/utils"
)

type Service interface {
	Record(ctx context.Context, userID int, amount decimal.Decimal, category, memo string) (*domain.Payment, error)
	List(ctx context.Context, userID int) ([]domain.Payment, error)
	RecordRent(ctx context.Context, userID int, month time.Time) (*domain.RentPayment, error)
	RentMonthStatus(ctx context.Context, month time.Time) ([]paymentservice.RentStatus, error)
}

type PaymentsHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentsHandler {
	return &PaymentsHandler{
		paymentService: paymentService,
	}
}

// Record godoc
//
//	@Summary		Record a payment
//	@Description	Record a payment for a user (admin only)
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RecordPaymentRequestDTO	true	"Payment to record"
//	@Success		200		{object}	dto.PaymentDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		422		{object}	utils.Response	"Invalid amount or category"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payments [post]
func (h *PaymentsHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid amount")
		return
	}

	payment, err := h.paymentService.Record(r.Context(), req.UserID, amount, req.Category, req.Memo)
	if err != nil {
		if errors.Is(err, paymentservice.ErrInvalidCategory) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, paymentDTO(payment))
}

// List godoc
//
//	@Summary		List own payments
//	@Description	List the authenticated user's payments, newest first
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PaymentDTO
//	@Success		204	{object}	utils.Response	"No payments"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments [get]
func (h *PaymentsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	payments, err := h.paymentService.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch payments")
		return
	}
	if len(payments) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No payments")
		return
	}

	response := make([]dto.PaymentDTO, len(payments))
	for i := range payments {
		response[i] = paymentDTO(&payments[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// RecordRent godoc
//
//	@Summary		Record a rent payment
//	@Description	Note that a member settled their rent share for a month (admin only)
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			month	path		string	true	"Month as YYYY-MM"
//	@Param			user_id	query		int		true	"Member user id"
//	@Success		200		{object}	utils.Response
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		409		{object}	utils.Response	"Rent already recorded"
//	@Failure		422		{object}	utils.Response	"Invalid month or user id"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/rent/{month} [post]
func (h *PaymentsHandler) RecordRent(w http.ResponseWriter, r *http.Request) {
	month, err := utils.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid month")
		return
	}

	userID, err := strconv.Atoi(r.URL.Query().Get("user_id"))
	if err != nil || userID <= 0 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid user id")
		return
	}

	if _, err := h.paymentService.RecordRent(r.Context(), userID, month); err != nil {
		if errors.Is(err, paymentservice.ErrRentAlreadyPaid) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "rent payment recorded"})
}

// RentStatus godoc
//
//	@Summary		Rent status for a month
//	@Description	List every active member with their rent payment status (admin only)
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			month	path		string	true	"Month as YYYY-MM"
//	@Success		200		{array}		dto.RentStatusEntryDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		422		{object}	utils.Response	"Invalid month"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/rent/{month} [get]
func (h *PaymentsHandler) RentStatus(w http.ResponseWriter, r *http.Request) {
	month, err := utils.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid month")
		return
	}

	statuses, err := h.paymentService.RentMonthStatus(r.Context(), month)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.RentStatusEntryDTO, len(statuses))
	for i, status := range statuses {
		response[i] = dto.RentStatusEntryDTO{
			UserID: status.User.ID,
			Name:   status.User.Name,
			Paid:   status.Paid,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func paymentDTO(payment *domain.Payment) dto.PaymentDTO {
	return dto.PaymentDTO{
		ID:        payment.ID,
		Amount:    payment.Amount.StringFixed(2),
		Category:  payment.Category,
		Memo:      payment.Memo,
		InvoiceID: payment.InvoiceID,
		CreatedAt: payment.CreatedAt,
	}
}
