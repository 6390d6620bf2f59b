package chat

import (
	"sync"

	"cafeteria/internal/models"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
)

// Registry owns the live conversation sessions, one per customer interaction,
// addressed by explicit handle. Sessions are discarded once the interaction
// ends; turn history is never persisted.
type Registry struct {
	mu       sync.RWMutex
	model    llms.Model
	sessions map[string]*Session
}

// NewRegistry creates a registry backed by the given model
func NewRegistry(model llms.Model) *Registry {
	return &Registry{
		model:    model,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session and returns its handle
func (r *Registry) Create(persona string, menu []models.MenuItem) (string, *Session) {
	id := uuid.NewString()
	session := NewSession(r.model, persona, menu)

	r.mu.Lock()
	r.sessions[id] = session
	r.mu.Unlock()
	return id, session
}

// Get looks up a session by handle
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	return session, ok
}

// Remove discards a session
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}
