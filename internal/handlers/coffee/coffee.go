package coffee

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/kaffeekasse/coffeebilling/internal/domain"
	"github.com/kaffeekasse/coffeebilling/internal/dto"
	"github.com/kaffeekasse/coffeebilling/internal/service/coffeeservice"
	"github.com/kaffeekasse/coffeebilling/pkg/auth"
	"github.com/kaffeekasse/coffeebilling/pkg/utils"
)

type Service interface {
	LogCups(ctx context.Context, userID, count int) (*domain.CoffeeLogEntry, error)
	MonthLog(ctx context.Context, userID int, month time.Time) ([]domain.CoffeeLogEntry, error)
	MonthCups(ctx context.Context, userID int, month time.Time) (int, error)
}

type CoffeeHandler struct {
	coffeeService Service
}

func New(coffeeService Service) *CoffeeHandler {
	return &CoffeeHandler{
		coffeeService: coffeeService,
	}
}

// LogCups godoc
//
//	@Summary		Log consumed cups
//	@Description	Append cups of coffee to the authenticated user's log
//	@Tags			Coffee
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LogCupsRequestDTO	true	"Cups to log"
//	@Success		200		{object}	dto.CoffeeLogEntryDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid cup count"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/coffee [post]
func (h *CoffeeHandler) LogCups(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.LogCupsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.coffeeService.LogCups(r.Context(), userID, req.Count)
	if err != nil {
		if errors.Is(err, coffeeservice.ErrInvalidCupCount) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CoffeeLogEntryDTO{
		Count:     entry.Count,
		CreatedAt: entry.CreatedAt,
	})
}

// MonthLog godoc
//
//	@Summary		Get the month's coffee log
//	@Description	List the authenticated user's log entries for a month
//	@Tags			Coffee
//	@Security		BearerAuth
//	@Produce		json
//	@Param			month	query		string	false	"Month as YYYY-MM, defaults to the current month"
//	@Success		200		{object}	dto.MonthLogResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid month"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/coffee [get]
func (h *CoffeeHandler) MonthLog(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	month, err := utils.ParseMonth(r.URL.Query().Get("month"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid month")
		return
	}

	entries, err := h.coffeeService.MonthLog(r.Context(), userID, month)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	cups, err := h.coffeeService.MonthCups(r.Context(), userID, month)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.MonthLogResponseDTO{
		Month:   month.Format("2006-01"),
		Cups:    cups,
		Entries: make([]dto.CoffeeLogEntryDTO, 0, len(entries)),
	}
	for _, entry := range entries {
		response.Entries = append(response.Entries, dto.CoffeeLogEntryDTO{
			Count:     entry.Count,
			CreatedAt: entry.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
