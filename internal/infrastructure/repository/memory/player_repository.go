package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/youth-league/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	index := make(map[string]player.Player, len(players))
	for _, p := range players {
		index[p.ID] = p.Clone()
	}

	return &PlayerRepository{players: index}
}

func (r *PlayerRepository) ListUndrafted(_ context.Context, divisionID, seasonID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, p := range r.players {
		if p.DivisionID != divisionID || p.SeasonID != seasonID || p.TeamID != "" {
			continue
		}
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DraftNumber != out[j].DraftNumber {
			return out[i].DraftNumber < out[j].DraftNumber
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *PlayerRepository) AssignTeam(_ context.Context, playerID, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[playerID]
	if !ok {
		return fmt.Errorf("player %s not found", playerID)
	}
	p.TeamID = teamID
	r.players[playerID] = p

	return nil
}

// Get returns a stored player; used to inspect commit results.
func (r *PlayerRepository) Get(playerID string) (player.Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[playerID]
	return p.Clone(), ok
}
