package wall

import (
	"sync"

	"github.com/google/uuid"
)

// Registry holds independent sessions keyed by uuid, so a single process
// can serve several walls at once.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[uuid.UUID]*Session)}
}

// Create opens a new session and returns its key.
func (r *Registry) Create(subjects, objects, firms int) (uuid.UUID, *Session) {
	key := uuid.New()
	sess := New(subjects, objects, firms)
	r.mu.Lock()
	r.sessions[key] = sess
	r.mu.Unlock()
	return key, sess
}

// Retrieve returns the session under key, or NotFound.
func (r *Registry) Retrieve(key uuid.UUID) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[key]
	if !ok {
		return nil, NotFound
	}
	return sess, nil
}

// Delete removes the session under key. Deleting an unknown key is a no-op.
func (r *Registry) Delete(key uuid.UUID) {
	r.mu.Lock()
	delete(r.sessions, key)
	r.mu.Unlock()
}
