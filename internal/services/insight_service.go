package services

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"optiqa/internal/catalog"
	"optiqa/internal/models/db_models"
	"optiqa/internal/models/response_models"
	"optiqa/internal/repositories"
	"optiqa/pkg/memcache"
	"optiqa/pkg/utils"
)

const (
	// Upper bound on the remote call; past it the fallback wins the race.
	defaultInsightTimeout = 8 * time.Second
	// Cadence of the cosmetic progress counter while waiting.
	defaultProgressTick = 200 * time.Millisecond

	placeholderInsights = "Unable to generate insights"
)

type InsightServiceInterface interface {
	// Generate runs one insight attempt for the session. It blocks until the
	// race resolves; callers that need it asynchronous schedule it themselves.
	Generate(sessionID string)
	Status(ctx context.Context, sessionID string) (*response_models.InsightStatusResponse, error)
}

type InsightService struct {
	repo     repositories.SessionRepositoryInterface
	runtimes *memcache.SessionRuntimes
	client   utils.InsightClientInterface // nil when no provider is configured

	timeout time.Duration
	tick    time.Duration
}

func NewInsightService(
	repo repositories.SessionRepositoryInterface,
	runtimes *memcache.SessionRuntimes,
	client utils.InsightClientInterface,
) InsightServiceInterface {
	return &InsightService{
		repo:     repo,
		runtimes: runtimes,
		client:   client,
		timeout:  defaultInsightTimeout,
		tick:     defaultProgressTick,
	}
}

func (s *InsightService) Generate(sessionID string) {
	rt := s.runtimes.Acquire(sessionID)

	rt.Lock()
	if rt.InsightRunning || rt.InsightResolved {
		rt.Unlock()
		return
	}
	rt.InsightRunning = true
	rt.InsightProgress = 0
	rt.Unlock()

	ctx := context.Background()
	session, answers, ok := s.loadForGeneration(ctx, sessionID)
	if !ok {
		rt.Lock()
		rt.InsightRunning = false
		rt.Unlock()
		return
	}

	session.InsightStatus = db_models.InsightStatusGenerating
	if err := s.repo.UpdateSession(ctx, session); err != nil {
		log.Printf("Error marking insights generating for session %s: %v", sessionID, err)
	}

	go s.tickProgress(rt)

	text := s.resolve(answers)

	rt.Lock()
	rt.InsightProgress = 100
	rt.InsightRunning = false
	rt.InsightResolved = true

	// Re-read under the runtime lock so we don't clobber answers or booking
	// fields written while the race was running.
	session, _, ok = s.loadForGeneration(ctx, sessionID)
	if ok {
		session.InsightStatus = db_models.InsightStatusReady
		session.InsightText = text
		if err := s.repo.UpdateSession(ctx, session); err != nil {
			log.Printf("Error storing insights for session %s: %v", sessionID, err)
		}
	}
	rt.Unlock()
}

// resolve races the remote call against the timeout. Exactly one outcome
// produces the text: the buffered channel keeps a late remote result inert,
// and the context cancels the request once the fallback has won.
func (s *InsightService) resolve(answers db_models.AnswerSet) string {
	if s.client == nil {
		log.Println("No insight provider configured, using fallback recommendations")
		return BuildFallbackInsights(answers)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	type outcome struct {
		text string
		err  error
	}
	ch := make(chan outcome, 1)
	go func() {
		text, err := s.client.GenerateInsights(ctx, BuildInsightPrompt(answers))
		ch <- outcome{text: text, err: err}
	}()

	select {
	case out := <-ch:
		if out.err != nil {
			log.Printf("Insight provider call failed, using fallback recommendations: %v", out.err)
			return BuildFallbackInsights(answers)
		}
		if strings.TrimSpace(out.text) == "" {
			return placeholderInsights
		}
		return out.text
	case <-ctx.Done():
		log.Println("Insight provider call timed out, using fallback recommendations")
		return BuildFallbackInsights(answers)
	}
}

// tickProgress drifts the counter toward 95 while the race runs. Purely
// cosmetic; it stops as soon as the result is in.
func (s *InsightService) tickProgress(rt *memcache.SessionRuntime) {
	for {
		time.Sleep(s.tick)
		rt.Lock()
		if !rt.InsightRunning {
			rt.Unlock()
			return
		}
		if rt.InsightProgress < 95 {
			rt.InsightProgress += int(rand.Float64() * 15)
			if rt.InsightProgress > 95 {
				rt.InsightProgress = 95
			}
		}
		rt.Unlock()
	}
}

func (s *InsightService) Status(ctx context.Context, sessionID string) (*response_models.InsightStatusResponse, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, utils.ErrSessionNotFound
	}
	session, err := s.repo.GetSessionByID(ctx, id)
	if err != nil {
		log.Printf("Error loading session %s: %v", sessionID, err)
		return nil, utils.ErrDatabaseError
	}
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}

	resp := &response_models.InsightStatusResponse{Status: session.InsightStatus}
	switch session.InsightStatus {
	case db_models.InsightStatusReady:
		resp.Progress = 100
		resp.Insights = session.InsightText
		resp.Blocks = utils.ParseInsightDocument(session.InsightText)
	case db_models.InsightStatusGenerating:
		rt := s.runtimes.Acquire(sessionID)
		rt.Lock()
		resp.Progress = rt.InsightProgress
		rt.Unlock()
	}
	return resp, nil
}

func (s *InsightService) loadForGeneration(ctx context.Context, sessionID string) (*db_models.WizardSession, db_models.AnswerSet, bool) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, nil, false
	}
	session, err := s.repo.GetSessionByID(ctx, id)
	if err != nil || session == nil {
		log.Printf("Error loading session %s for insight generation: %v", sessionID, err)
		return nil, nil, false
	}
	answers, err := session.AnswerSet()
	if err != nil {
		log.Printf("Error decoding answers for session %s: %v", sessionID, err)
		return nil, nil, false
	}
	return session, answers, true
}

// BuildInsightPrompt embeds the serialized answers in the fixed optician
// prompt. The provider must return the four-section template with exactly
// three recommendations.
func BuildInsightPrompt(answers db_models.AnswerSet) string {
	serialized := serializeAnswers(answers)

	var b strings.Builder
	b.WriteString("You are an expert optician with 20+ years of experience. Analyze these questionnaire responses and provide highly specific, personalized eyewear recommendations. DO NOT give generic advice - tailor everything to their exact answers.\n\n")
	b.WriteString("User Responses: ")
	b.WriteString(serialized)
	b.WriteString("\n\nANALYSIS FRAMEWORK:\n")
	b.WriteString("1. Screen Time Analysis: Look at hours per day, eye strain symptoms, work type\n")
	b.WriteString("2. Activity Analysis: Parse their specific activities text and lifestyle needs\n")
	b.WriteString("3. Current Setup Analysis: What they have vs satisfaction level vs needs\n")
	b.WriteString("4. Vision Type Analysis: Progressive vs single vision impacts recommendations\n")
	b.WriteString("5. Lifestyle Gaps: What's missing from their current setup\n\n")
	b.WriteString("RECOMMENDATION RULES:\n")
	b.WriteString("- 5+ hours screen time + eye strain = dedicated computer glasses recommended\n")
	b.WriteString("- Sports activities mentioned = sports glasses (be specific to their sport)\n")
	b.WriteString("- Progressive lenses + lots of reading = separate reading glasses for comfort\n")
	b.WriteString("- Driving issues = specialized driving glasses with anti-glare\n")
	b.WriteString("- Outdoor activities = prescription sunglasses essential\n")
	b.WriteString("- \"Avoid wearing glasses\" = contact lens alternative or sports glasses\n")
	b.WriteString("- Unhappy with current setup = identify specific problems and solutions\n\n")
	b.WriteString("MANDATORY: You MUST recommend exactly 3 pairs of glasses. No more, no less. Always 3 pairs.\n\n")
	b.WriteString("Structure your response like this:\n\n")
	b.WriteString("**Your Vision Analysis:** [2 sentences: their main challenges and lifestyle demands based on actual answers]\n\n")
	b.WriteString("**Recommended Eyewear System:** (Exactly 3 glasses required)\n")
	b.WriteString("• [Primary glasses - be specific about lens type, coatings, frame style for their main need]\n")
	b.WriteString("• [Secondary glasses - match to their specific secondary activity/need]\n")
	b.WriteString("• [Third glasses - always provide a third recommendation, could be backup, specialized, or complementary pair]\n\n")
	b.WriteString("**Why This Setup:** [Explain how each recommendation solves specific problems they mentioned]\n\n")
	b.WriteString("**Activity-Specific Tips:** [Based on their activities text, give 2-3 specific tips for their hobbies/work]\n\n")
	b.WriteString("CRITICAL: You must provide exactly 3 glasses recommendations every time. Vary recommendations based on their actual answers. Make it personal and specific. ALWAYS EXACTLY 3 GLASSES.")
	return b.String()
}

// serializeAnswers pairs each answered question's prompt with its plain value.
func serializeAnswers(answers db_models.AnswerSet) string {
	pairs := make(map[string]interface{}, len(answers))
	for i, question := range catalog.Questions() {
		answer, ok := answers.Get(i)
		if !ok || question.Prompt == "" {
			continue
		}
		switch answer.Kind {
		case db_models.AnswerSelections:
			pairs[question.Prompt] = answer.Selections
		case db_models.AnswerScale:
			pairs[question.Prompt] = answer.Scale
		default:
			pairs[question.Prompt] = answer.Choice
		}
	}
	raw, err := json.Marshal(pairs)
	if err != nil {
		return "{}"
	}
	return string(raw)
}
