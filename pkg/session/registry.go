package session

import (
	"cmp"
	"context"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/meetlayout/pkg/errors"
	"github.com/matzehuels/meetlayout/pkg/geom"
	"github.com/matzehuels/meetlayout/pkg/layout"
	"github.com/matzehuels/meetlayout/pkg/throttle"
)

// DefaultTTL is how long an unused session is kept.
const DefaultTTL = 24 * time.Hour

// Registry holds live sessions in memory.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	ttl    time.Duration
	clock  throttle.Clock
	logger *log.Logger
	opts   []Option
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithTTL sets the idle time after which Cleanup drops a session. Zero
// disables expiry.
func WithTTL(d time.Duration) RegistryOption { return func(r *Registry) { r.ttl = d } }

// WithSessionOptions sets the options every new session is created with.
func WithSessionOptions(opts ...Option) RegistryOption {
	return func(r *Registry) { r.opts = append(r.opts, opts...) }
}

// WithRegistryClock sets the clock used for expiry. Sessions get the same
// clock unless WithSessionOptions overrides it.
func WithRegistryClock(c throttle.Clock) RegistryOption { return func(r *Registry) { r.clock = c } }

// WithRegistryLogger sets the registry logger. Sessions log through it
// too unless WithSessionOptions overrides it.
func WithRegistryLogger(l *log.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		sessions: make(map[string]*Session),
		ttl:      DefaultTTL,
		clock:    throttle.SystemClock{},
		logger:   log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create starts a session and registers it.
func (r *Registry) Create(ctx context.Context, class layout.DeviceClass, window geom.Size) (*Session, error) {
	opts := append([]Option{WithClock(r.clock), WithLogger(r.logger)}, r.opts...)
	s, err := New(ctx, class, window, opts...)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	n := len(r.sessions)
	r.mu.Unlock()

	r.logger.Info("session created", "session", s.ID, "device", class, "sessions", n)
	return s, nil
}

// Get returns the session with the given id.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.New(errors.ErrCodeSessionNotFound, "session %q not found", id)
	}
	s.touch()
	return s, nil
}

// Delete closes and removes a session.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return errors.New(errors.ErrCodeSessionNotFound, "session %q not found", id)
	}
	s.Close()
	r.logger.Info("session deleted", "session", id)
	return nil
}

// List returns all sessions, oldest first.
func (r *Registry) List() []*Session {
	r.mu.RLock()
	out := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Session) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Cleanup closes and removes sessions idle for longer than the TTL. It
// returns how many were removed.
func (r *Registry) Cleanup() int {
	if r.ttl <= 0 {
		return 0
	}
	now := r.clock.Now()

	var expired []*Session
	r.mu.Lock()
	for id, s := range r.sessions {
		if now.Sub(s.LastUsed()) > r.ttl {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.Close()
		r.logger.Debug("session expired", "session", s.ID)
	}
	return len(expired)
}

// Run calls Cleanup every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Cleanup(); n > 0 {
				r.logger.Info("expired sessions", "count", n)
			}
		}
	}
}

// Close closes every session.
func (r *Registry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
