// Package session keeps one orchestrator per browser session.
package session

import (
	"context"
	"github.com/google/uuid"
	"github.com/langowen/fxdash/internal/dashboard/orchestrator"
	"github.com/langowen/fxdash/internal/entities"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"log/slog"
	"sync"
	"time"
)

// Factory builds the orchestrator for a new session.
type Factory func() *orchestrator.Orchestrator

type Session struct {
	ID           string
	Orchestrator *orchestrator.Orchestrator
	lastSeen     time.Time
}

type Registry struct {
	factory Factory
	idleTTL time.Duration
	now     func() time.Time
	logger  *slog.Logger
	active  prometheus.Gauge

	mu       sync.Mutex
	sessions map[string]*Session
}

type Option func(r *Registry)

func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithRegisterer exposes the number of live sessions as fxdash_sessions_active.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(r *Registry) {
		r.active = promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "fxdash_sessions_active",
			Help: "Number of dashboard sessions currently held in memory.",
		})
	}
}

func NewRegistry(factory Factory, idleTTL time.Duration, opts ...Option) *Registry {
	r := &Registry{
		factory:  factory,
		idleTTL:  idleTTL,
		now:      time.Now,
		logger:   slog.Default(),
		sessions: make(map[string]*Session),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Create registers a fresh session and loads its currency catalog. A failed
// catalog load is kept in the session state; the session is still usable.
func (r *Registry) Create(ctx context.Context) *Session {
	const op = "session.Create"

	s := &Session{
		ID:           uuid.NewString(),
		Orchestrator: r.factory(),
		lastSeen:     r.now(),
	}

	if err := s.Orchestrator.Initialize(ctx); err != nil {
		r.logger.Warn("session started without catalog", "op", op, "session", s.ID, "error", err)
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.updateGauge()
	r.mu.Unlock()

	r.logger.Debug("session created", "op", op, "session", s.ID)

	return s
}

// Get returns the session and marks it as recently used.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, entities.ErrSessionNotFound
	}

	s.lastSeen = r.now()

	return s, nil
}

// End drops the session together with its conversion log.
func (r *Registry) End(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return entities.ErrSessionNotFound
	}

	delete(r.sessions, id)
	r.updateGauge()

	return nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// Sweep evicts sessions idle for longer than the TTL and returns how many
// were removed.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) > r.idleTTL {
			delete(r.sessions, id)
			evicted++
		}
	}

	if evicted > 0 {
		r.updateGauge()
		r.logger.Debug("idle sessions evicted", "op", "session.Sweep", "count", evicted)
	}

	return evicted
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(r.now())
		}
	}
}

func (r *Registry) updateGauge() {
	if r.active != nil {
		r.active.Set(float64(len(r.sessions)))
	}
}
