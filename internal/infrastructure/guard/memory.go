package guard

import (
	"context"
	"sync"
	"time"

	"signalsite/internal/ports/output"
)

var _ output.SubmissionGuard = (*Memory)(nil)

type entry struct {
	expiry time.Time
	done   bool
}

// Memory is a process-local SubmissionGuard. Tokens expire after ttl.
type Memory struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	tokens map[string]entry
}

// NewMemory creates a Memory guard.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:    ttl,
		now:    time.Now,
		tokens: make(map[string]entry),
	}
}

func (m *Memory) Acquire(_ context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)
	if _, held := m.tokens[token]; held {
		return false, nil
	}
	m.tokens[token] = entry{expiry: now.Add(m.ttl)}
	return true, nil
}

func (m *Memory) Complete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokens[token] = entry{expiry: m.now().Add(m.ttl), done: true}
	return nil
}

func (m *Memory) State(_ context.Context, token string) (output.SubmissionState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.tokens[token]
	switch {
	case !ok || !m.now().Before(e.expiry):
		return output.SubmissionUnknown, nil
	case e.done:
		return output.SubmissionDone, nil
	default:
		return output.SubmissionPending, nil
	}
}

func (m *Memory) Release(_ context.Context, token string) error {
	m.mu.Lock()
	delete(m.tokens, token)
	m.mu.Unlock()
	return nil
}

func (m *Memory) sweep(now time.Time) {
	for token, e := range m.tokens {
		if !now.Before(e.expiry) {
			delete(m.tokens, token)
		}
	}
}
