package quote

import (
	"net/http"
	"strconv"

	"github.com/fin5/microloan/internal/domain"
	"github.com/fin5/microloan/internal/dto"
	"github.com/fin5/microloan/pkg/utils"
)

type Service interface {
	Quote(amount, days int) domain.Quote
	Clamp(amount, days int) (int, int)
}

type QuoteHandler struct {
	pricingService Service
}

func New(pricingService Service) *QuoteHandler {
	return &QuoteHandler{
		pricingService: pricingService,
	}
}

// GetQuote godoc
//
//	@Summary		Calculate a loan quote
//	@Description	Compute overpayment and total for the given terms; out-of-range terms are clamped to the offered bounds
//	@Tags			Quote
//	@Produce		json
//	@Param			amount	query		int	true	"Loan amount, ₽"
//	@Param			days	query		int	true	"Loan term, days"
//	@Success		200		{object}	dto.QuoteResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed amount or days"
//	@Router			/api/quote [get]
func (h *QuoteHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	amount, err := strconv.Atoi(r.URL.Query().Get("amount"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid days")
		return
	}

	amount, days = h.pricingService.Clamp(amount, days)
	quote := h.pricingService.Quote(amount, days)

	utils.RespondWithJSON(w, http.StatusOK, dto.QuoteResponseDTO{
		Amount:       quote.Amount,
		Days:         quote.Days,
		Overpayment:  quote.Overpayment,
		Total:        quote.Total,
		DailyPayment: quote.DailyPayment,
	})
}
