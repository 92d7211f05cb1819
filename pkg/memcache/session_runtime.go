package memcache

import "sync"

// SessionRuntime is the transient, per-session state that never belongs in
// the session row: the single in-flight transition guard and the cosmetic
// insight progress counter. Fields are only touched while holding the
// embedded mutex, which also serializes handler and timer access to the
// session itself.
type SessionRuntime struct {
	sync.Mutex

	TransitionPending bool

	InsightRunning  bool
	InsightResolved bool
	InsightProgress int
}

// SessionRuntimes hands out one runtime per session ID.
type SessionRuntimes struct {
	mu   sync.RWMutex
	data map[string]*SessionRuntime
}

func NewSessionRuntimes() *SessionRuntimes {
	return &SessionRuntimes{data: make(map[string]*SessionRuntime)}
}

// Acquire returns the runtime for a session, creating it on first use.
func (s *SessionRuntimes) Acquire(sessionID string) *SessionRuntime {
	s.mu.RLock()
	rt, ok := s.data[sessionID]
	s.mu.RUnlock()
	if ok {
		return rt
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if rt, ok := s.data[sessionID]; ok {
		return rt
	}
	rt = &SessionRuntime{}
	s.data[sessionID] = rt
	return rt
}

// Forget drops a session's runtime.
func (s *SessionRuntimes) Forget(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
}
