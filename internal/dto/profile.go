package dto

type LoginRequestDTO struct {
	Phone string `json:"phone" validate:"required,notblank" example:"+79991234567"`
}

type LoanRecordDTO struct {
	ID         int    `json:"id" example:"1"`
	Amount     int    `json:"amount" example:"25000"`
	Status     string `json:"status" example:"approved"`
	StatusText string `json:"status_text" example:"Одобрен"`
	Date       string `json:"date" example:"15.01.2024"`
}

type ProfileResponseDTO struct {
	Phone        string          `json:"phone" example:"+79991234567"`
	Name         string          `json:"name" example:"Иван Иванов"`
	Applications []LoanRecordDTO `json:"applications"`
}
