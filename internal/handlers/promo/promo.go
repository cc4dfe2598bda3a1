package promo

import (
	"net/http"
	"time"

	"github.com/fin5/microloan/internal/domain"
	"github.com/fin5/microloan/internal/dto"
	"github.com/fin5/microloan/pkg/utils"
)

type Service interface {
	Current() domain.Promo
	Remaining() time.Duration
}

type PromoHandler struct {
	promoService Service
}

func New(promoService Service) *PromoHandler {
	return &PromoHandler{
		promoService: promoService,
	}
}

// GetPromo godoc
//
//	@Summary		Current promotion
//	@Description	Get the running promotion and the time left in its window
//	@Tags			Promo
//	@Produce		json
//	@Success		200	{object}	dto.PromoResponseDTO
//	@Router			/api/promo [get]
func (h *PromoHandler) GetPromo(w http.ResponseWriter, r *http.Request) {
	current := h.promoService.Current()

	utils.RespondWithJSON(w, http.StatusOK, dto.PromoResponseDTO{
		Title:            current.Title,
		EndsAt:           current.EndsAt.Format(time.RFC3339),
		RemainingSeconds: int64(h.promoService.Remaining().Seconds()),
	})
}
