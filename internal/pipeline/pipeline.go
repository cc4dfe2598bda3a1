package pipeline

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/fin5/microloan/internal/domain"
)

// Outcome is the decision reported after the last step. The shipped plan
// always approves; a rejecting step exists so a real decision path can be
// modeled without changing the runner.
type Outcome struct {
	Approved bool
	Reason   string
}

// Step is one stage of the simulated scoring run.
type Step struct {
	ID           int
	Title        string
	Description  string
	Duration     time.Duration
	Rejecting    bool
	RejectReason string
}

// DefaultPlan returns the four scoring stages shown to the applicant.
func DefaultPlan() []Step {
	return []Step{
		{ID: 1, Title: "Проверка данных", Description: "Валидация введенной информации", Duration: 2000 * time.Millisecond},
		{ID: 2, Title: "Скоринг", Description: "Анализ кредитной истории", Duration: 3000 * time.Millisecond},
		{ID: 3, Title: "Верификация", Description: "Подтверждение личности", Duration: 2500 * time.Millisecond},
		{ID: 4, Title: "Одобрение", Description: "Принятие решения", Duration: 1500 * time.Millisecond},
	}
}

// DomainSteps converts a plan into its pending domain representation.
func DomainSteps(plan []Step) []domain.ProcessingStep {
	steps := make([]domain.ProcessingStep, len(plan))
	for i, s := range plan {
		steps[i] = domain.ProcessingStep{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Status:      domain.StepPending,
			Duration:    s.Duration,
		}
	}
	return steps
}

// Runner drives a plan strictly in order, one active step at a time. Time
// comes from an injected clock so tests advance it deterministically.
type Runner struct {
	clk clock.Clock
}

func NewRunner(clk clock.Clock) *Runner {
	return &Runner{clk: clk}
}

// Run walks the plan: step i goes processing, waits its duration, goes
// completed, then the next step starts. After the last step onDone receives
// the outcome. A cancelled context stops the run immediately: no further
// onStep calls, no onDone. A run is not restartable.
func (r *Runner) Run(ctx context.Context, plan []Step, onStep func(idx int, status domain.StepStatus), onDone func(Outcome)) {
	for i, step := range plan {
		if ctx.Err() != nil {
			zap.L().Info("processing run cancelled", zap.Int("step", step.ID))
			return
		}
		// The timer is armed before the status flips so that an observer who
		// has seen StepProcessing can rely on the countdown already running.
		timer := r.clk.Timer(step.Duration)
		onStep(i, domain.StepProcessing)

		select {
		case <-ctx.Done():
			timer.Stop()
			zap.L().Info("processing run cancelled", zap.Int("step", step.ID))
			return
		case <-timer.C:
		}
		onStep(i, domain.StepCompleted)

		if step.Rejecting {
			onDone(Outcome{Approved: false, Reason: step.RejectReason})
			return
		}
	}
	onDone(Outcome{Approved: true})
}
