package dto

type CreateApplicationRequestDTO struct {
	Amount int `json:"amount" example:"25000"`
	Days   int `json:"days" example:"15"`
}

type ApplicantPatchDTO struct {
	FullName  *string `json:"full_name,omitempty" example:"Иванов Иван Иванович"`
	Phone     *string `json:"phone,omitempty" example:"+7 (999) 123-45-67"`
	Email     *string `json:"email,omitempty" example:"example@mail.ru"`
	Passport  *string `json:"passport,omitempty" example:"1234 567890"`
	Income    *string `json:"income,omitempty" example:"40000-70000"`
	Workplace *string `json:"workplace,omitempty" example:"ООО Компания"`
	Purpose   *string `json:"purpose,omitempty" example:"personal"`
	Consent   *bool   `json:"consent,omitempty" example:"true"`
}

type ApplicantDTO struct {
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Passport  string `json:"passport"`
	Income    string `json:"income"`
	Workplace string `json:"workplace"`
	Purpose   string `json:"purpose"`
	Consent   bool   `json:"consent"`
}

type ApplicationResponseDTO struct {
	ID           string           `json:"id"`
	State        string           `json:"state" example:"step1"`
	Progress     int              `json:"progress" example:"43"`
	Applicant    ApplicantDTO     `json:"applicant"`
	Quote        QuoteResponseDTO `json:"quote"`
	RejectReason string           `json:"reject_reason,omitempty"`
	CreatedAt    string           `json:"created_at" example:"2024-01-15T16:09:57+03:00"`
}

type ProcessingStepDTO struct {
	ID          int    `json:"id" example:"1"`
	Title       string `json:"title" example:"Проверка данных"`
	Description string `json:"description" example:"Валидация введенной информации"`
	Status      string `json:"status" example:"processing"`
}

type ProcessingResponseDTO struct {
	Steps []ProcessingStepDTO `json:"steps"`
}
