package dto

type PromoResponseDTO struct {
	Title            string `json:"title" example:"Первый займ под 0% для новых клиентов"`
	EndsAt           string `json:"ends_at" example:"2024-02-01T00:00:00+03:00"`
	RemainingSeconds int64  `json:"remaining_seconds" example:"1382400"`
}
