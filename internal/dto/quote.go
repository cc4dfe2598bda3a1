package dto

type QuoteResponseDTO struct {
	Amount       int `json:"amount" example:"15000"`
	Days         int `json:"days" example:"14"`
	Overpayment  int `json:"overpayment" example:"168"`
	Total        int `json:"total" example:"15168"`
	DailyPayment int `json:"daily_payment" example:"1083"`
}
