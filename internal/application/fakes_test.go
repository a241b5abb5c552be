package application

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"signalsite/internal/domain"
	"signalsite/internal/domain/entities"
	"signalsite/internal/ports/output"
)

// stubTranslator renders "locale:key" and appends a sorted "|name=value" per param.
type stubTranslator struct{}

func (stubTranslator) T(locale domain.Locale, key string, data map[string]any) string {
	out := string(locale) + ":" + key
	names := make([]string, 0, len(data))
	for name := range data {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		out += fmt.Sprintf("|%s=%v", name, data[name])
	}
	return out
}

type fakeSink struct {
	mu      sync.Mutex
	leads   []entities.Lead
	err     error
	block   chan struct{}
	started chan struct{}
}

func (f *fakeSink) Insert(ctx context.Context, lead *entities.Lead) error {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	lead.ID = int64(len(f.leads) + 1)
	f.leads = append(f.leads, *lead)
	return nil
}

func (f *fakeSink) stored() []entities.Lead {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entities.Lead(nil), f.leads...)
}

type fakeGuard struct {
	mu       sync.Mutex
	held     map[string]bool
	done     map[string]bool
	released []string
	err      error
}

func newFakeGuard() *fakeGuard {
	return &fakeGuard{held: map[string]bool{}, done: map[string]bool{}}
}

func (g *fakeGuard) Acquire(_ context.Context, token string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return false, g.err
	}
	if g.held[token] {
		return false, nil
	}
	g.held[token] = true
	return true, nil
}

func (g *fakeGuard) Complete(_ context.Context, token string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.done[token] = true
	return nil
}

func (g *fakeGuard) State(_ context.Context, token string) (output.SubmissionState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch {
	case g.err != nil:
		return output.SubmissionUnknown, g.err
	case g.done[token]:
		return output.SubmissionDone, nil
	case g.held[token]:
		return output.SubmissionPending, nil
	}
	return output.SubmissionUnknown, nil
}

func (g *fakeGuard) isDone(token string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.done[token]
}

func (g *fakeGuard) Release(_ context.Context, token string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.held, token)
	delete(g.done, token)
	g.released = append(g.released, token)
	return nil
}
