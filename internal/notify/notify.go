package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fin5/microloan/internal/domain"
)

// Submission is the payload assembled when an application is sent for
// processing: applicant fields, loan terms, localized timestamp.
type Submission struct {
	Applicant   domain.ApplicantData
	Quote       domain.Quote
	SubmittedAt time.Time
}

// Notifier hands a submission to the back office. The production wiring uses
// LogNotifier; a CRM or email integration substitutes here.
type Notifier interface {
	Send(ctx context.Context, submission Submission) error
}

const recipient = "finanpro862@gmail.com"

// LogNotifier writes the would-be notification to the log and transmits
// nothing.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Send(ctx context.Context, submission Submission) error {
	zap.L().Info("application submitted",
		zap.String("to", recipient),
		zap.String("subject", Subject(submission)),
		zap.String("body", Body(submission)),
	)
	return nil
}

func Subject(s Submission) string {
	return fmt.Sprintf("Новая заявка на займ - %s", s.Applicant.FullName)
}

func Body(s Submission) string {
	return fmt.Sprintf(`Новая заявка на займ:

ФИО: %s
Телефон: %s
Email: %s
Паспорт: %s
Доход: %s
Место работы: %s
Цель займа: %s

Сумма займа: %d ₽
Срок: %d дней
К возврату: %d ₽

Дата подачи: %s`,
		s.Applicant.FullName,
		s.Applicant.Phone,
		s.Applicant.Email,
		s.Applicant.Passport,
		s.Applicant.Income,
		s.Applicant.Workplace,
		s.Applicant.Purpose,
		s.Quote.Amount,
		s.Quote.Days,
		s.Quote.Total,
		s.SubmittedAt.Format("02.01.2006 15:04:05"),
	)
}
