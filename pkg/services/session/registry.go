package session

import (
	"errors"
	"sync"

	"github.com/clarity-tools/clarity-plan/pkg/services/generator"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("session not found")

// Registry holds live sessions keyed by anonymous uuid handles. Sessions are
// memory-only and die with the process.
type Registry struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	generator generator.Service
	logger    zerolog.Logger
}

func NewRegistry(gen generator.Service, logger zerolog.Logger) *Registry {
	return &Registry{
		sessions:  make(map[string]*Session),
		generator: gen,
		logger:    logger,
	}
}

// Create registers and returns a fresh session starting on the dashboard.
func (r *Registry) Create() *Session {
	s := newSession(uuid.NewString(), r.generator, r.logger)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID()] = s
	return s
}

// Get looks up a session by id.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Remove drops a session from the registry.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len is the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
