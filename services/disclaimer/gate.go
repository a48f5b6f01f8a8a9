// File: services/disclaimer/gate.go
package disclaimer

import (
	"context"
	"errors"
	"sync"

	"fitpulse/models"
	"fitpulse/utils"

	"go.uber.org/zap"
)

var errSaveUnavailable = errors.New("acceptance store unavailable")

// gateRequest is one outstanding EnsureAccepted call. Several calls for the
// same type share one prompt; each caller still gets its own result channel.
type gateRequest struct {
	dtype   models.DisclaimerType
	results []chan bool
}

func (r *gateRequest) resolve(accepted bool) {
	for _, ch := range r.results {
		ch <- accepted
	}
}

// Gate serializes disclaimer prompts for one user. At most one prompt is
// active at a time; requests arriving while a prompt is up wait in a FIFO
// queue. Acceptance is persisted through the store but the in-memory map stays
// authoritative for the session even when persistence fails.
type Gate struct {
	mu       sync.Mutex
	userID   string
	accepted models.Acceptance
	store    AcceptanceStore
	current  *gateRequest
	queue    []*gateRequest
}

// NewGate hydrates a gate from the store. Store failures surface as an empty
// acceptance map, so the worst case is re-prompting.
func NewGate(ctx context.Context, userID string, store AcceptanceStore) *Gate {
	return &Gate{
		userID:   userID,
		accepted: store.Load(ctx, userID),
		store:    store,
	}
}

// EnsureAccepted resolves with true immediately when the type is already
// accepted. Otherwise the returned channel resolves once the user answers the
// prompt for this type: true on accept, false on dismiss. Requests queue FIFO
// behind whatever prompt is currently showing; a request for a type that is
// already prompting or queued attaches to the existing prompt instead of
// adding a second one.
func (g *Gate) EnsureAccepted(dtype models.DisclaimerType) <-chan bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	ch := make(chan bool, 1)

	if g.accepted.Accepted(dtype) {
		ch <- true
		return ch
	}

	if g.current != nil && g.current.dtype == dtype {
		g.current.results = append(g.current.results, ch)
		return ch
	}
	for _, queued := range g.queue {
		if queued.dtype == dtype {
			queued.results = append(queued.results, ch)
			return ch
		}
	}

	req := &gateRequest{dtype: dtype, results: []chan bool{ch}}
	g.queue = append(g.queue, req)
	if g.current == nil {
		g.serveNext()
	}
	return ch
}

// Accept marks the currently prompting type as accepted, persists the full
// map, resolves every waiter with true and moves on to the next queued
// request. Persistence failures are logged and swallowed. Calling Accept with
// no active prompt is a no-op.
func (g *Gate) Accept(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.current == nil {
		return
	}

	req := g.current
	g.accepted[req.dtype] = true

	if err := g.store.Save(ctx, g.userID, g.accepted); err != nil {
		utils.GetLogger().Warn("disclaimer: failed to persist acceptance",
			zap.String("userID", g.userID),
			zap.String("type", string(req.dtype)),
			zap.Error(err))
	}

	g.current = nil
	req.resolve(true)
	g.serveNext()
}

// Dismiss resolves the current prompt with false without marking acceptance,
// then serves the next queued request. No-op when nothing is prompting.
func (g *Gate) Dismiss() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.current == nil {
		return
	}

	req := g.current
	g.current = nil
	req.resolve(false)
	g.serveNext()
}

// serveNext promotes the next queued request to the prompting slot. Requests
// whose type got accepted while they were waiting resolve immediately with
// true instead of prompting again. Caller must hold g.mu.
func (g *Gate) serveNext() {
	for len(g.queue) > 0 {
		next := g.queue[0]
		g.queue = g.queue[1:]

		if g.accepted.Accepted(next.dtype) {
			next.resolve(true)
			continue
		}
		g.current = next
		return
	}
}

// Current returns the type prompting right now, if any.
func (g *Gate) Current() (models.DisclaimerType, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.current == nil {
		return "", false
	}
	return g.current.dtype, true
}

// Acceptance returns a copy of the in-memory acceptance map.
func (g *Gate) Acceptance() models.Acceptance {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := models.Acceptance{}
	for t, v := range g.accepted {
		out[t] = v
	}
	return out
}

// Manager owns one gate per user. It is the application-root replacement for
// module-level singleton state: handlers reach gates only through here.
type Manager struct {
	mu    sync.Mutex
	store AcceptanceStore
	gates map[string]*Gate
}

func NewManager(store AcceptanceStore) *Manager {
	return &Manager{
		store: store,
		gates: make(map[string]*Gate),
	}
}

// ForUser returns the user's gate, hydrating it from the store on first use.
func (m *Manager) ForUser(ctx context.Context, userID string) *Gate {
	m.mu.Lock()
	defer m.mu.Unlock()

	gate, ok := m.gates[userID]
	if !ok {
		gate = NewGate(ctx, userID, m.store)
		m.gates[userID] = gate
	}
	return gate
}
