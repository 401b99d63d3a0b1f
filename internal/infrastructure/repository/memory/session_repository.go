package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/youth-league/internal/domain/draft"
)

// SessionRepository keeps draft sessions in process. States are cloned on the
// way in and out so callers never share board or roster slices.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[draft.SessionKey]draft.State
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[draft.SessionKey]draft.State)}
}

func (r *SessionRepository) Get(_ context.Context, key draft.SessionKey) (draft.State, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.sessions[key]
	if !ok {
		return draft.State{}, false, nil
	}
	return state.Clone(), true, nil
}

func (r *SessionRepository) Save(_ context.Context, key draft.SessionKey, state draft.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[key] = state.Clone()
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, key draft.SessionKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, key)
	return nil
}
