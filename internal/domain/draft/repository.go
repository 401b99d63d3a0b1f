package draft

import (
	"context"
	"time"
)

// SessionKey identifies a draft session by division and season.
type SessionKey struct {
	DivisionID string
	SeasonID   string
}

func (k SessionKey) String() string {
	return k.DivisionID + ":" + k.SeasonID
}

// Checkpoint records a manager whose commit writes all succeeded.
type Checkpoint struct {
	Key         SessionKey
	ManagerID   string
	TeamID      string
	CommittedAt time.Time
}

type SessionRepository interface {
	Get(ctx context.Context, key SessionKey) (State, bool, error)
	Save(ctx context.Context, key SessionKey, state State) error
	Delete(ctx context.Context, key SessionKey) error
}

type CheckpointRepository interface {
	List(ctx context.Context, key SessionKey) ([]Checkpoint, error)
	Save(ctx context.Context, checkpoint Checkpoint) error
	Clear(ctx context.Context, key SessionKey) error
}
