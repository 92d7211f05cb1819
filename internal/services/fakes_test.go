package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"optiqa/internal/models/db_models"
	"optiqa/internal/models/response_models"
)

func mustParse(t *testing.T, id string) uuid.UUID {
	t.Helper()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	return parsed
}

// fakeSessionRepo backs the service tests with a map instead of a database.
// Reads hand out copies, like row scans do, so mutations only land via the
// update calls.
type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]db_models.WizardSession
	bookings map[uuid.UUID]db_models.ExamBooking
	failAll  bool
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions: make(map[uuid.UUID]db_models.WizardSession),
		bookings: make(map[uuid.UUID]db_models.ExamBooking),
	}
}

func (f *fakeSessionRepo) CreateSession(ctx context.Context, session *db_models.WizardSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errors.New("fake repo failure")
	}
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	if session.InsightStatus == "" {
		session.InsightStatus = db_models.InsightStatusPending
	}
	f.sessions[session.ID] = *session
	return nil
}

func (f *fakeSessionRepo) GetSessionByID(ctx context.Context, id uuid.UUID) (*db_models.WizardSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, errors.New("fake repo failure")
	}
	session, ok := f.sessions[id]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (f *fakeSessionRepo) UpdateSession(ctx context.Context, session *db_models.WizardSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errors.New("fake repo failure")
	}
	f.sessions[session.ID] = *session
	return nil
}

func (f *fakeSessionRepo) ReplaceBooking(ctx context.Context, booking *db_models.ExamBooking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errors.New("fake repo failure")
	}
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	f.bookings[booking.SessionID] = *booking
	return nil
}

func (f *fakeSessionRepo) GetBookingBySession(ctx context.Context, sessionID uuid.UUID) (*db_models.ExamBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, errors.New("fake repo failure")
	}
	booking, ok := f.bookings[sessionID]
	if !ok {
		return nil, nil
	}
	return &booking, nil
}

func (f *fakeSessionRepo) seedSession(session db_models.WizardSession) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	if session.InsightStatus == "" {
		session.InsightStatus = db_models.InsightStatusPending
	}
	f.sessions[session.ID] = session
	return session.ID
}

func (f *fakeSessionRepo) session(id uuid.UUID) db_models.WizardSession {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sessions[id]
}

// stubInsightService records Generate calls so navigator tests can assert
// scheduling without running the real race.
type stubInsightService struct {
	generated chan string
}

func newStubInsightService() *stubInsightService {
	return &stubInsightService{generated: make(chan string, 1)}
}

func (s *stubInsightService) Generate(sessionID string) {
	select {
	case s.generated <- sessionID:
	default:
	}
}

func (s *stubInsightService) Status(ctx context.Context, sessionID string) (*response_models.InsightStatusResponse, error) {
	return &response_models.InsightStatusResponse{Status: db_models.InsightStatusPending}, nil
}

// fakeInsightClient scripts the remote provider. When block is set it only
// returns once the context is cancelled.
type fakeInsightClient struct {
	text  string
	err   error
	block bool

	mu     sync.Mutex
	calls  int
	prompt string
}

func (f *fakeInsightClient) GenerateInsights(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.prompt = prompt
	f.mu.Unlock()

	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.text, f.err
}

func (f *fakeInsightClient) Close() error { return nil }

func (f *fakeInsightClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeInsightClient) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prompt
}
