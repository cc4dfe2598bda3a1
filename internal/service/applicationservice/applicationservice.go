package applicationservice

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fin5/microloan/internal/domain"
	"github.com/fin5/microloan/internal/notify"
	"github.com/fin5/microloan/internal/pipeline"
)

type Repo interface {
	Save(ctx context.Context, app *domain.Application) error
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	Update(ctx context.Context, app *domain.Application) error
	UpdateStepStatus(ctx context.Context, id string, stepIdx int, status domain.StepStatus) error
	SetState(ctx context.Context, id string, state domain.ApplicationState, reason string) error
	DeleteBySession(ctx context.Context, sessionID string) error
}

type Pricing interface {
	Quote(amount, days int) domain.Quote
	Clamp(amount, days int) (int, int)
}

type Runner interface {
	Run(ctx context.Context, plan []pipeline.Step, onStep func(idx int, status domain.StepStatus), onDone func(pipeline.Outcome))
}

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrStepIncomplete      = errors.New("step is incomplete")
	ErrConsentRequired     = errors.New("consent required")
	ErrInvalidTransition   = errors.New("invalid workflow transition")
	ErrAlreadySubmitted    = errors.New("application already submitted")
	ErrNotSubmitted        = errors.New("application not submitted yet")
)

// ApplicantPatch carries a partial applicant update; nil fields stay as they
// were.
type ApplicantPatch struct {
	FullName  *string
	Phone     *string
	Email     *string
	Passport  *string
	Income    *string
	Workplace *string
	Purpose   *string
	Consent   *bool
}

type step1Fields struct {
	FullName string `validate:"required,notblank"`
	Phone    string `validate:"required,notblank"`
	Email    string `validate:"required,email"`
}

type step2Fields struct {
	Passport  string `validate:"required,notblank"`
	Income    string `validate:"required,oneof=20000-40000 40000-70000 70000-100000 100000+"`
	Workplace string `validate:"required,notblank"`
}

type step3Fields struct {
	Purpose string `validate:"required,oneof=personal bills medical education travel other"`
	Consent bool   `validate:"eq=true"`
}

type run struct {
	sessionID string
	cancel    context.CancelFunc
}

type Service struct {
	repo     Repo
	pricing  Pricing
	notifier notify.Notifier
	runner   Runner
	clk      clock.Clock
	validate *validator.Validate

	mu   sync.Mutex
	runs map[string]run
}

func New(repo Repo, pricing Pricing, notifier notify.Notifier, runner Runner, clk clock.Clock) *Service {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return len(regexp.MustCompile(`\S`).FindString(s)) > 0
	})

	return &Service{
		repo:     repo,
		pricing:  pricing,
		notifier: notifier,
		runner:   runner,
		clk:      clk,
		validate: v,
		runs:     make(map[string]run),
	}
}

func (s *Service) Create(ctx context.Context, sessionID string, amount, days int) (*domain.Application, error) {
	amount, days = s.pricing.Clamp(amount, days)

	app := &domain.Application{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		State:     domain.StateStep1,
		Quote:     s.pricing.Quote(amount, days),
		CreatedAt: s.clk.Now(),
	}

	if err := s.repo.Save(ctx, app); err != nil {
		zap.L().Error("can't save application: ", zap.Error(err))
		return nil, err
	}

	return app, nil
}

func (s *Service) Get(ctx context.Context, sessionID, id string) (*domain.Application, error) {
	return s.find(ctx, sessionID, id)
}

func (s *Service) UpdateApplicant(ctx context.Context, sessionID, id string, patch ApplicantPatch) (*domain.Application, error) {
	app, err := s.find(ctx, sessionID, id)
	if err != nil {
		return nil, err
	}
	if app.State == domain.StateProcessing || app.State == domain.StateApproved || app.State == domain.StateRejected {
		return nil, ErrAlreadySubmitted
	}

	applyPatch(&app.Applicant, patch)
	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// Advance moves the workflow one collection step forward after validating the
// current step's fields. The state is untouched when validation fails, so a
// repeated invalid advance keeps returning the same answer.
func (s *Service) Advance(ctx context.Context, sessionID, id string) (*domain.Application, error) {
	app, err := s.find(ctx, sessionID, id)
	if err != nil {
		return nil, err
	}

	switch app.State {
	case domain.StateStep1:
		if err := s.validateStep(step1Fields{
			FullName: app.Applicant.FullName,
			Phone:    app.Applicant.Phone,
			Email:    app.Applicant.Email,
		}); err != nil {
			return nil, err
		}
		app.State = domain.StateStep2
	case domain.StateStep2:
		if err := s.validateStep(step2Fields{
			Passport:  app.Applicant.Passport,
			Income:    app.Applicant.Income,
			Workplace: app.Applicant.Workplace,
		}); err != nil {
			return nil, err
		}
		app.State = domain.StateStep3
	default:
		return nil, ErrInvalidTransition
	}

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// Back moves the workflow one collection step backward. Collected data is
// kept.
func (s *Service) Back(ctx context.Context, sessionID, id string) (*domain.Application, error) {
	app, err := s.find(ctx, sessionID, id)
	if err != nil {
		return nil, err
	}

	switch app.State {
	case domain.StateStep2:
		app.State = domain.StateStep1
	case domain.StateStep3:
		app.State = domain.StateStep2
	default:
		return nil, ErrInvalidTransition
	}

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// Submit validates the final step, hands the payload to the notifier and
// starts the scoring run. The workflow only reaches its terminal state
// through the run's outcome.
func (s *Service) Submit(ctx context.Context, sessionID, id string) (*domain.Application, error) {
	app, err := s.find(ctx, sessionID, id)
	if err != nil {
		return nil, err
	}
	if app.State != domain.StateStep3 {
		if app.State == domain.StateProcessing || app.State == domain.StateApproved || app.State == domain.StateRejected {
			return nil, ErrAlreadySubmitted
		}
		return nil, ErrInvalidTransition
	}

	if !app.Applicant.Consent {
		return nil, ErrConsentRequired
	}
	if err := s.validateStep(step3Fields{
		Purpose: app.Applicant.Purpose,
		Consent: app.Applicant.Consent,
	}); err != nil {
		return nil, err
	}

	submission := notify.Submission{
		Applicant:   app.Applicant,
		Quote:       app.Quote,
		SubmittedAt: s.clk.Now(),
	}
	if err := s.notifier.Send(ctx, submission); err != nil {
		return nil, fmt.Errorf("can't send application: %w", err)
	}

	plan := pipeline.DefaultPlan()
	app.State = domain.StateProcessing
	app.Steps = pipeline.DomainSteps(plan)
	app.SubmittedAt = submission.SubmittedAt
	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}

	s.startRun(app.ID, sessionID, plan)

	return app, nil
}

func (s *Service) Processing(ctx context.Context, sessionID, id string) ([]domain.ProcessingStep, error) {
	app, err := s.find(ctx, sessionID, id)
	if err != nil {
		return nil, err
	}
	if len(app.Steps) == 0 {
		return nil, ErrNotSubmitted
	}
	return app.Steps, nil
}

// DiscardSession cancels any running scoring and drops the session's
// applications. Called when the session is closed or expires.
func (s *Service) DiscardSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	for id, r := range s.runs {
		if r.sessionID == sessionID {
			r.cancel()
			delete(s.runs, id)
		}
	}
	s.mu.Unlock()

	return s.repo.DeleteBySession(ctx, sessionID)
}

func (s *Service) startRun(appID, sessionID string, plan []pipeline.Step) {
	runCtx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	s.runs[appID] = run{sessionID: sessionID, cancel: cancel}
	s.mu.Unlock()

	go func() {
		defer func() {
			s.mu.Lock()
			if r, ok := s.runs[appID]; ok {
				r.cancel()
				delete(s.runs, appID)
			}
			s.mu.Unlock()
		}()

		s.runner.Run(runCtx, plan,
			func(idx int, status domain.StepStatus) {
				if err := s.repo.UpdateStepStatus(runCtx, appID, idx, status); err != nil {
					zap.L().Error("can't update processing step", zap.String("application_id", appID), zap.Error(err))
				}
			},
			func(outcome pipeline.Outcome) {
				state := domain.StateApproved
				if !outcome.Approved {
					state = domain.StateRejected
				}
				if err := s.repo.SetState(runCtx, appID, state, outcome.Reason); err != nil {
					zap.L().Error("can't finish application", zap.String("application_id", appID), zap.Error(err))
					return
				}
				zap.L().Info("application processed",
					zap.String("application_id", appID),
					zap.String("state", string(state)),
				)
			},
		)
	}()
}

func (s *Service) find(ctx context.Context, sessionID, id string) (*domain.Application, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil || app.SessionID != sessionID {
		return nil, ErrApplicationNotFound
	}
	return app, nil
}

func (s *Service) validateStep(fields any) error {
	err := s.validate.Struct(fields)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		names := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			names = append(names, strings.ToLower(fe.Field()))
		}
		return fmt.Errorf("%w: %s", ErrStepIncomplete, strings.Join(names, ", "))
	}
	return err
}

func applyPatch(data *domain.ApplicantData, patch ApplicantPatch) {
	if patch.FullName != nil {
		data.FullName = *patch.FullName
	}
	if patch.Phone != nil {
		data.Phone = *patch.Phone
	}
	if patch.Email != nil {
		data.Email = *patch.Email
	}
	if patch.Passport != nil {
		data.Passport = *patch.Passport
	}
	if patch.Income != nil {
		data.Income = *patch.Income
	}
	if patch.Workplace != nil {
		data.Workplace = *patch.Workplace
	}
	if patch.Purpose != nil {
		data.Purpose = *patch.Purpose
	}
	if patch.Consent != nil {
		data.Consent = *patch.Consent
	}
}
