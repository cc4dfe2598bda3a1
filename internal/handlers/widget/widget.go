package widget

import (
	"net/http"
	"strconv"

	innerwidget "github.com/fin5/microloan/internal/widget"
	"github.com/fin5/microloan/pkg/utils"
)

type Service interface {
	Config() innerwidget.Config
	ApplyURL(amount, days int) (string, error)
}

type WidgetHandler struct {
	widgetService Service
}

func New(widgetService Service) *WidgetHandler {
	return &WidgetHandler{
		widgetService: widgetService,
	}
}

// GetConfig godoc
//
//	@Summary		Widget configuration
//	@Description	Constants for the embeddable calculator: rate, bounds, defaults, target URL
//	@Tags			Widget
//	@Produce		json
//	@Success		200	{object}	widget.Config
//	@Router			/widget/config [get]
func (h *WidgetHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.widgetService.Config())
}

// Apply godoc
//
//	@Summary		Widget apply redirect
//	@Description	Redirect to the landing page with the chosen terms and utm_source=widget
//	@Tags			Widget
//	@Param			amount	query	int	true	"Loan amount, ₽"
//	@Param			days	query	int	true	"Loan term, days"
//	@Success		302
//	@Failure		400	{object}	utils.Response	"Malformed amount or days"
//	@Router			/widget/apply [get]
func (h *WidgetHandler) Apply(w http.ResponseWriter, r *http.Request) {
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

	target, err := h.widgetService.ApplyURL(amount, days)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}
