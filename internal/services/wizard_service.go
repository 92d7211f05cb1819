package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"optiqa/internal/catalog"
	"optiqa/internal/models/db_models"
	"optiqa/internal/models/request_models"
	"optiqa/internal/models/response_models"
	"optiqa/internal/repositories"
	"optiqa/pkg/memcache"
	"optiqa/pkg/utils"
)

const (
	// How long the section-complete interstitial stays up before the step
	// actually changes.
	defaultSectionPause = 2500 * time.Millisecond
	// Small settle before insight generation kicks off on the results step.
	defaultResultsSettle = 100 * time.Millisecond
)

type WizardServiceInterface interface {
	StartSession(ctx context.Context) (*response_models.StartWizardResponse, error)
	GetState(ctx context.Context, sessionID string) (*response_models.WizardStateResponse, error)
	SubmitAnswer(ctx context.Context, sessionID string, req request_models.AnswerRequest) (*response_models.WizardStateResponse, error)
	Advance(ctx context.Context, sessionID string) (*response_models.WizardStateResponse, error)
	Retreat(ctx context.Context, sessionID string) (*response_models.WizardStateResponse, error)
}

type WizardService struct {
	repo     repositories.SessionRepositoryInterface
	runtimes *memcache.SessionRuntimes
	insights InsightServiceInterface

	sectionPause  time.Duration
	resultsSettle time.Duration
}

func NewWizardService(
	repo repositories.SessionRepositoryInterface,
	runtimes *memcache.SessionRuntimes,
	insights InsightServiceInterface,
) WizardServiceInterface {
	return &WizardService{
		repo:          repo,
		runtimes:      runtimes,
		insights:      insights,
		sectionPause:  defaultSectionPause,
		resultsSettle: defaultResultsSettle,
	}
}

func (s *WizardService) StartSession(ctx context.Context) (*response_models.StartWizardResponse, error) {
	session := &db_models.WizardSession{ID: uuid.New()}
	if err := session.SetAnswerSet(make(db_models.AnswerSet)); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		log.Printf("Error creating wizard session: %v", err)
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateSessionToken(session.ID)
	if err != nil {
		log.Printf("Error signing session token: %v", err)
		return nil, utils.ErrDatabaseError
	}

	answers, _ := session.AnswerSet()
	return &response_models.StartWizardResponse{
		Token: token,
		State: *s.stateResponse(session, answers),
	}, nil
}

func (s *WizardService) GetState(ctx context.Context, sessionID string) (*response_models.WizardStateResponse, error) {
	rt := s.runtimes.Acquire(sessionID)
	rt.Lock()
	defer rt.Unlock()

	session, answers, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.stateResponse(session, answers), nil
}

// SubmitAnswer stores the value for the current step. No validation happens
// here beyond shape; whether the step counts as answered is decided on
// advance.
func (s *WizardService) SubmitAnswer(ctx context.Context, sessionID string, req request_models.AnswerRequest) (*response_models.WizardStateResponse, error) {
	rt := s.runtimes.Acquire(sessionID)
	rt.Lock()
	defer rt.Unlock()

	session, answers, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	step := session.CurrentStep
	question := catalog.QuestionAt(step)
	if question == nil || question.Type == catalog.TypeIntro {
		return nil, utils.ErrNoAnswerableStep
	}

	answer, err := answerFromRequest(question, req)
	if err != nil {
		return nil, err
	}
	answers.Set(step, answer)

	if err := session.SetAnswerSet(answers); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if err := s.repo.UpdateSession(ctx, session); err != nil {
		log.Printf("Error saving answer for session %s: %v", sessionID, err)
		return nil, utils.ErrDatabaseError
	}
	return s.stateResponse(session, answers), nil
}

// Advance moves the wizard forward by one step. Crossing a section boundary
// shows the interstitial first and defers the visible step change; reaching
// the terminal step schedules insight generation.
func (s *WizardService) Advance(ctx context.Context, sessionID string) (*response_models.WizardStateResponse, error) {
	rt := s.runtimes.Acquire(sessionID)
	rt.Lock()
	defer rt.Unlock()

	session, answers, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if rt.TransitionPending || session.ShowingSectionComplete {
		return nil, utils.ErrTransitionInFlight
	}
	if session.CurrentStep >= catalog.TerminalStep() {
		return nil, utils.ErrWizardComplete
	}
	if !stepAnswered(session.CurrentStep, answers) {
		return nil, utils.ErrStepUnanswered
	}

	next := session.CurrentStep + 1

	// The boundary check deliberately skips the first and last transitions:
	// no interstitial right after the intro or right before results.
	if next > 1 && next < catalog.TerminalStep() && catalog.SectionChangesAt(next) {
		completed := catalog.QuestionAt(session.CurrentStep).Section
		summary := catalog.SummaryForSection(completed, answers)

		session.ShowingSectionComplete = true
		session.CompletedSectionTitle = summary.Title
		session.CompletedSectionInsight = summary.Insight
		if err := s.repo.UpdateSession(ctx, session); err != nil {
			log.Printf("Error saving interstitial for session %s: %v", sessionID, err)
			return nil, utils.ErrDatabaseError
		}

		rt.TransitionPending = true
		time.AfterFunc(s.sectionPause, func() {
			s.completeSectionTransition(sessionID, next)
		})
		return s.stateResponse(session, answers), nil
	}

	session.CurrentStep = next
	if err := s.repo.UpdateSession(ctx, session); err != nil {
		log.Printf("Error advancing session %s: %v", sessionID, err)
		return nil, utils.ErrDatabaseError
	}

	if next == catalog.TerminalStep() {
		time.AfterFunc(s.resultsSettle, func() {
			s.insights.Generate(sessionID)
		})
	}
	return s.stateResponse(session, answers), nil
}

// Retreat moves back exactly one step, never past the intro, and never
// triggers section logic.
func (s *WizardService) Retreat(ctx context.Context, sessionID string) (*response_models.WizardStateResponse, error) {
	rt := s.runtimes.Acquire(sessionID)
	rt.Lock()
	defer rt.Unlock()

	session, answers, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if rt.TransitionPending || session.ShowingSectionComplete {
		return nil, utils.ErrTransitionInFlight
	}

	if session.CurrentStep > 0 {
		session.CurrentStep--
		if err := s.repo.UpdateSession(ctx, session); err != nil {
			log.Printf("Error retreating session %s: %v", sessionID, err)
			return nil, utils.ErrDatabaseError
		}
	}
	return s.stateResponse(session, answers), nil
}

// completeSectionTransition is the deferred half of a boundary advance. The
// pending flag is the one-shot guard: once cleared, a stale timer is a no-op.
func (s *WizardService) completeSectionTransition(sessionID string, next int) {
	rt := s.runtimes.Acquire(sessionID)
	rt.Lock()
	defer rt.Unlock()

	if !rt.TransitionPending {
		return
	}
	rt.TransitionPending = false

	ctx := context.Background()
	session, _, err := s.loadSession(ctx, sessionID)
	if err != nil {
		log.Printf("Error finishing section transition for session %s: %v", sessionID, err)
		return
	}

	session.ShowingSectionComplete = false
	session.CompletedSectionTitle = ""
	session.CompletedSectionInsight = ""
	session.CurrentStep = next
	if err := s.repo.UpdateSession(ctx, session); err != nil {
		log.Printf("Error finishing section transition for session %s: %v", sessionID, err)
	}
}

func (s *WizardService) loadSession(ctx context.Context, sessionID string) (*db_models.WizardSession, db_models.AnswerSet, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, nil, utils.ErrSessionNotFound
	}
	session, err := s.repo.GetSessionByID(ctx, id)
	if err != nil {
		log.Printf("Error loading session %s: %v", sessionID, err)
		return nil, nil, utils.ErrDatabaseError
	}
	if session == nil {
		return nil, nil, utils.ErrSessionNotFound
	}
	answers, err := session.AnswerSet()
	if err != nil {
		log.Printf("Error decoding answers for session %s: %v", sessionID, err)
		return nil, nil, utils.ErrDatabaseError
	}
	return session, answers, nil
}

// stepAnswered is the navigator's validity predicate. Intro and results are
// always passable; sliders and free text are always considered answered.
func stepAnswered(step int, answers db_models.AnswerSet) bool {
	if step == 0 || step >= catalog.TerminalStep() {
		return true
	}
	question := catalog.QuestionAt(step)
	switch question.Type {
	case catalog.TypeMultiple:
		answer, ok := answers.Get(step)
		return ok && len(answer.Selections) > 0
	case catalog.TypeSlider, catalog.TypeText:
		return true
	default:
		answer, ok := answers.Get(step)
		return ok && answer.Choice != ""
	}
}

func answerFromRequest(question *catalog.Question, req request_models.AnswerRequest) (db_models.Answer, error) {
	switch question.Type {
	case catalog.TypeMultiple:
		if req.Selections == nil {
			return db_models.Answer{}, utils.ErrInvalidAnswer
		}
		return db_models.Answer{Kind: db_models.AnswerSelections, Selections: dedupe(req.Selections)}, nil
	case catalog.TypeSlider:
		if req.Scale == nil {
			return db_models.Answer{}, utils.ErrInvalidAnswer
		}
		scale := *req.Scale
		if scale < 0 {
			scale = 0
		} else if scale > 100 {
			scale = 100
		}
		return db_models.Answer{Kind: db_models.AnswerScale, Scale: scale}, nil
	default:
		if req.Choice == nil {
			return db_models.Answer{}, utils.ErrInvalidAnswer
		}
		return db_models.Answer{Kind: db_models.AnswerChoice, Choice: *req.Choice}, nil
	}
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func (s *WizardService) stateResponse(session *db_models.WizardSession, answers db_models.AnswerSet) *response_models.WizardStateResponse {
	step := session.CurrentStep
	resp := &response_models.WizardStateResponse{
		SessionID:              session.ID.String(),
		CurrentStep:            step,
		TotalQuestions:         catalog.Count(),
		IsComplete:             step >= catalog.TerminalStep(),
		StepAnswered:           stepAnswered(step, answers),
		Progress:               overallProgress(step),
		Sections:               sectionProgress(step),
		ShowingSectionComplete: session.ShowingSectionComplete,
	}
	if session.ShowingSectionComplete {
		resp.SectionComplete = &catalog.SectionSummary{
			Title:   session.CompletedSectionTitle,
			Insight: session.CompletedSectionInsight,
		}
	}
	if resp.IsComplete {
		return resp
	}

	question := catalog.QuestionAt(step)
	resp.Question = question
	if answer, ok := answers.Get(step); ok {
		resp.Answer = &answer
	} else if question.Type == catalog.TypeSlider {
		// Sliders read back their default even before any interaction.
		resp.Answer = &db_models.Answer{Kind: db_models.AnswerScale, Scale: question.SliderDefault}
	}
	return resp
}

// overallProgress reserves one extra slot past the question count so 100% is
// only reached at the results step, not on the last question.
func overallProgress(step int) float64 {
	return float64(step) / float64(catalog.Count()+1) * 100
}

func sectionProgress(step int) []response_models.SectionProgress {
	ranges := catalog.SectionRanges()
	out := make([]response_models.SectionProgress, 0, len(ranges))
	for _, r := range ranges {
		sp := response_models.SectionProgress{
			Name:       r.Name,
			Start:      r.Start,
			End:        r.End,
			IsActive:   step >= r.Start && step <= r.End,
			IsComplete: step > r.End,
		}
		switch {
		case step < r.Start:
			sp.Progress = 0
		case step > r.End:
			sp.Progress = 100
		default:
			sp.Progress = float64(step-r.Start+1) / float64(r.End-r.Start+1) * 100
		}
		out = append(out, sp)
	}
	return out
}
