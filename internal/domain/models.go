package domain

import "time"

type ApplicationState string

const (
	// StateStep1 сбор личных данных;
	StateStep1 ApplicationState = "step1"
	// StateStep2 документы и доходы;
	StateStep2 ApplicationState = "step2"
	// StateStep3 цель займа и согласие;
	StateStep3 ApplicationState = "step3"
	// StateProcessing заявка отправлена, идёт обработка;
	StateProcessing ApplicationState = "processing"
	// StateApproved заявка одобрена, терминальное состояние;
	StateApproved ApplicationState = "approved"
	// StateRejected заявка отклонена, терминальное состояние;
	StateRejected ApplicationState = "rejected"
)

type StepStatus string

const (
	StepPending    StepStatus = "pending"
	StepProcessing StepStatus = "processing"
	StepCompleted  StepStatus = "completed"
)

type Quote struct {
	Amount       int
	Days         int
	Overpayment  int
	Total        int
	DailyPayment int
}

type ApplicantData struct {
	FullName  string
	Phone     string
	Email     string
	Passport  string
	Income    string
	Workplace string
	Purpose   string
	Consent   bool
}

// FillProgress returns the share of filled text fields in percent,
// mirroring the progress bar on the application form.
func (a ApplicantData) FillProgress() int {
	fields := []string{a.FullName, a.Phone, a.Email, a.Passport, a.Income, a.Workplace, a.Purpose}
	filled := 0
	for _, f := range fields {
		if f != "" {
			filled++
		}
	}
	return filled * 100 / len(fields)
}

type Application struct {
	ID           string
	SessionID    string
	State        ApplicationState
	Applicant    ApplicantData
	Quote        Quote
	Steps        []ProcessingStep
	RejectReason string
	CreatedAt    time.Time
	SubmittedAt  time.Time
}

type ProcessingStep struct {
	ID          int
	Title       string
	Description string
	Status      StepStatus
	Duration    time.Duration
}

type ChatMessage struct {
	ID      string
	Text    string
	FromBot bool
	SentAt  time.Time
}

type LoanRecord struct {
	ID     int
	Amount int
	Status string
	Date   string
}

// DisplayStatus returns the user-facing badge text for a history record.
func (r LoanRecord) DisplayStatus() string {
	switch r.Status {
	case "approved":
		return "Одобрен"
	case "paid":
		return "Погашен"
	default:
		return "В обработке"
	}
}

type UserProfile struct {
	Phone        string
	Name         string
	Applications []LoanRecord
}

type Session struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time
}

type Promo struct {
	Title  string
	EndsAt time.Time
}
