package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optiqa/internal/catalog"
	"optiqa/internal/models/db_models"
	"optiqa/internal/models/request_models"
	"optiqa/pkg/memcache"
	"optiqa/pkg/utils"
)

func newWizardHarness() (*fakeSessionRepo, *stubInsightService, *WizardService) {
	repo := newFakeSessionRepo()
	stub := newStubInsightService()
	svc := &WizardService{
		repo:          repo,
		runtimes:      memcache.NewSessionRuntimes(),
		insights:      stub,
		sectionPause:  10 * time.Millisecond,
		resultsSettle: time.Millisecond,
	}
	return repo, stub, svc
}

func seedSessionAt(t *testing.T, repo *fakeSessionRepo, step int, answers db_models.AnswerSet) string {
	t.Helper()
	if answers == nil {
		answers = make(db_models.AnswerSet)
	}
	session := db_models.WizardSession{ID: uuid.New(), CurrentStep: step}
	require.NoError(t, session.SetAnswerSet(answers))
	repo.seedSession(session)
	return session.ID.String()
}

func choice(v string) request_models.AnswerRequest {
	return request_models.AnswerRequest{Choice: &v}
}

func TestStartSessionReturnsTokenAndIntroState(t *testing.T) {
	_, _, svc := newWizardHarness()

	resp, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 0, resp.State.CurrentStep)
	assert.Equal(t, catalog.Count(), resp.State.TotalQuestions)
	assert.False(t, resp.State.IsComplete)
	assert.True(t, resp.State.StepAnswered)
	assert.Zero(t, resp.State.Progress)
	require.NotNil(t, resp.State.Question)
	assert.Equal(t, catalog.TypeIntro, resp.State.Question.Type)
}

func TestGetStateUnknownSession(t *testing.T) {
	_, _, svc := newWizardHarness()

	_, err := svc.GetState(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)

	_, err = svc.GetState(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestSubmitAnswerRejectsIntroStep(t *testing.T) {
	repo, _, svc := newWizardHarness()
	id := seedSessionAt(t, repo, 0, nil)

	_, err := svc.SubmitAnswer(context.Background(), id, choice("Yes"))
	assert.ErrorIs(t, err, utils.ErrNoAnswerableStep)
}

func TestSubmitAnswerWrongShape(t *testing.T) {
	repo, _, svc := newWizardHarness()
	id := seedSessionAt(t, repo, 1, nil)

	// Step 1 is single-select; selections and scales don't fit.
	_, err := svc.SubmitAnswer(context.Background(), id, request_models.AnswerRequest{Selections: []string{"Yes"}})
	assert.ErrorIs(t, err, utils.ErrInvalidAnswer)
}

func TestSubmitAnswerDedupesSelections(t *testing.T) {
	repo, _, svc := newWizardHarness()
	id := seedSessionAt(t, repo, 3, nil)

	state, err := svc.SubmitAnswer(context.Background(), id, request_models.AnswerRequest{
		Selections: []string{"Driving", "Reading", "Driving"},
	})
	require.NoError(t, err)
	require.NotNil(t, state.Answer)
	assert.Equal(t, []string{"Driving", "Reading"}, state.Answer.Selections)
}

func TestSubmitAnswerClampsScale(t *testing.T) {
	repo, _, svc := newWizardHarness()
	id := seedSessionAt(t, repo, 16, nil)

	over := 150
	state, err := svc.SubmitAnswer(context.Background(), id, request_models.AnswerRequest{Scale: &over})
	require.NoError(t, err)
	assert.Equal(t, 100, state.Answer.Scale)

	under := -5
	state, err = svc.SubmitAnswer(context.Background(), id, request_models.AnswerRequest{Scale: &under})
	require.NoError(t, err)
	assert.Equal(t, 0, state.Answer.Scale)
}

func TestAdvancePastIntroHasNoInterstitial(t *testing.T) {
	repo, _, svc := newWizardHarness()
	id := seedSessionAt(t, repo, 0, nil)

	// The section technically changes at step 1, but the intro transition
	// never pauses.
	state, err := svc.Advance(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentStep)
	assert.False(t, state.ShowingSectionComplete)
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	repo, _, svc := newWizardHarness()
	id := seedSessionAt(t, repo, 1, nil)

	_, err := svc.Advance(context.Background(), id)
	assert.ErrorIs(t, err, utils.ErrStepUnanswered)

	_, err = svc.SubmitAnswer(context.Background(), id, choice(catalog.OptionWearsGlasses))
	require.NoError(t, err)

	state, err := svc.Advance(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 2, state.CurrentStep)
	assert.False(t, state.ShowingSectionComplete)
}

func TestAdvanceEmptyMultiSelectNotAnswered(t *testing.T) {
	repo, _, svc := newWizardHarness()
	id := seedSessionAt(t, repo, 3, db_models.AnswerSet{
		3: {Kind: db_models.AnswerSelections, Selections: []string{}},
	})

	_, err := svc.Advance(context.Background(), id)
	assert.ErrorIs(t, err, utils.ErrStepUnanswered)
}

func TestAdvanceTextAndSliderAlwaysPass(t *testing.T) {
	repo, _, svc := newWizardHarness()

	// Step 14 is free text; advancing with nothing stored never complains
	// about a missing answer. The move crosses into the last section, so the
	// interstitial shows instead of an immediate step change.
	id := seedSessionAt(t, repo, 14, nil)
	state, err := svc.Advance(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, state.ShowingSectionComplete)

	// Step 16 is the slider; no boundary ahead, straight to results.
	id = seedSessionAt(t, repo, 16, nil)
	state, err = svc.Advance(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, catalog.TerminalStep(), state.CurrentStep)
	assert.True(t, state.IsComplete)
}

func TestSectionBoundaryDefersStepChange(t *testing.T) {
	repo, _, svc := newWizardHarness()
	id := seedSessionAt(t, repo, 5, db_models.AnswerSet{
		1: {Kind: db_models.AnswerChoice, Choice: catalog.OptionWearsGlasses},
		5: {Kind: db_models.AnswerSelections, Selections: []string{"Ray-Ban"}},
	})

	state, err := svc.Advance(context.Background(), id)
	require.NoError(t, err)

	// The interstitial shows on the old step; nothing has moved yet.
	assert.Equal(t, 5, state.CurrentStep)
	assert.True(t, state.ShowingSectionComplete)
	require.NotNil(t, state.SectionComplete)
	assert.Equal(t, "Current Setup Complete!", state.SectionComplete.Title)
	assert.Equal(t, "We learned about your current glasses and how you use them daily.", state.SectionComplete.Insight)

	// Navigation is locked out while the interstitial is up.
	_, err = svc.Advance(context.Background(), id)
	assert.ErrorIs(t, err, utils.ErrTransitionInFlight)
	_, err = svc.Retreat(context.Background(), id)
	assert.ErrorIs(t, err, utils.ErrTransitionInFlight)

	require.Eventually(t, func() bool {
		state, err := svc.GetState(context.Background(), id)
		return err == nil && state.CurrentStep == 6 && !state.ShowingSectionComplete
	}, time.Second, 2*time.Millisecond)

	// Once the pause has run its course, navigation works again.
	_, err = svc.Retreat(context.Background(), id)
	require.NoError(t, err)
}

func TestNoInterstitialBeforeResults(t *testing.T) {
	repo, stub, svc := newWizardHarness()
	id := seedSessionAt(t, repo, 16, nil)

	state, err := svc.Advance(context.Background(), id)
	require.NoError(t, err)

	// Last question into results: straight through, then the insight run is
	// scheduled after the settle delay.
	assert.Equal(t, catalog.TerminalStep(), state.CurrentStep)
	assert.True(t, state.IsComplete)
	assert.False(t, state.ShowingSectionComplete)
	assert.Nil(t, state.Question)

	select {
	case got := <-stub.generated:
		assert.Equal(t, id, got)
	case <-time.After(time.Second):
		t.Fatal("insight generation was never scheduled")
	}
}

func TestAdvanceAtTerminalStep(t *testing.T) {
	repo, _, svc := newWizardHarness()
	id := seedSessionAt(t, repo, catalog.TerminalStep(), nil)

	_, err := svc.Advance(context.Background(), id)
	assert.ErrorIs(t, err, utils.ErrWizardComplete)
}

func TestRetreatFloorsAtIntro(t *testing.T) {
	repo, _, svc := newWizardHarness()
	id := seedSessionAt(t, repo, 0, nil)

	state, err := svc.Retreat(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 0, state.CurrentStep)
}

func TestRetreatStepsBackOne(t *testing.T) {
	repo, _, svc := newWizardHarness()
	id := seedSessionAt(t, repo, 6, nil)

	state, err := svc.Retreat(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 5, state.CurrentStep)
	// Going back across a boundary never re-shows the interstitial.
	assert.False(t, state.ShowingSectionComplete)
}

func TestSliderEchoesDefaultBeforeInteraction(t *testing.T) {
	repo, _, svc := newWizardHarness()
	id := seedSessionAt(t, repo, 16, nil)

	state, err := svc.GetState(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, state.Answer)
	assert.Equal(t, db_models.AnswerScale, state.Answer.Kind)
	assert.Equal(t, 50, state.Answer.Scale)
	assert.True(t, state.StepAnswered)
}

func TestOverallProgress(t *testing.T) {
	assert.Zero(t, overallProgress(0))
	assert.InDelta(t, 50.0, overallProgress(9), 0.01)
	assert.InDelta(t, 94.44, overallProgress(catalog.TerminalStep()), 0.01)
}

func TestSectionProgress(t *testing.T) {
	sections := sectionProgress(8)
	require.Len(t, sections, 4)

	assert.True(t, sections[0].IsComplete)
	assert.InDelta(t, 100.0, sections[0].Progress, 0.01)

	assert.True(t, sections[1].IsActive)
	assert.False(t, sections[1].IsComplete)
	assert.InDelta(t, 60.0, sections[1].Progress, 0.01)

	assert.False(t, sections[2].IsActive)
	assert.Zero(t, sections[2].Progress)
	assert.Zero(t, sections[3].Progress)
}
