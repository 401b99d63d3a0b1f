package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/youth-league/internal/domain/draft"
)

type CheckpointRepository struct {
	mu    sync.RWMutex
	items map[draft.SessionKey]map[string]draft.Checkpoint
}

func NewCheckpointRepository() *CheckpointRepository {
	return &CheckpointRepository{items: make(map[draft.SessionKey]map[string]draft.Checkpoint)}
}

func (r *CheckpointRepository) List(_ context.Context, key draft.SessionKey) ([]draft.Checkpoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]draft.Checkpoint, 0, len(r.items[key]))
	for _, cp := range r.items[key] {
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CommittedAt.Equal(out[j].CommittedAt) {
			return out[i].CommittedAt.Before(out[j].CommittedAt)
		}
		return out[i].ManagerID < out[j].ManagerID
	})
	return out, nil
}

func (r *CheckpointRepository) Save(_ context.Context, cp draft.Checkpoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byManager, ok := r.items[cp.Key]
	if !ok {
		byManager = make(map[string]draft.Checkpoint)
		r.items[cp.Key] = byManager
	}
	byManager[cp.ManagerID] = cp
	return nil
}

func (r *CheckpointRepository) Clear(_ context.Context, key draft.SessionKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, key)
	return nil
}
