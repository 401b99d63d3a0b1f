package cache

import (
	"context"

	"github.com/riskibarqy/youth-league/internal/domain/player"
	"github.com/riskibarqy/youth-league/internal/domain/team"
	basecache "github.com/riskibarqy/youth-league/internal/platform/cache"
)

const (
	undraftedPrefix = "player:undrafted:"
	teamListPrefix  = "team:list:"
)

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) ListUndrafted(ctx context.Context, divisionID, seasonID string) ([]player.Player, error) {
	key := undraftedPrefix + divisionID + ":" + seasonID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListUndrafted(ctx, divisionID, seasonID)
		if err != nil {
			return nil, err
		}
		return clonePlayers(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return clonePlayers(items), nil
}

// AssignTeam writes through and drops every cached pool: the player id alone
// does not say which division it belonged to.
func (r *PlayerRepository) AssignTeam(ctx context.Context, playerID, teamID string) error {
	if err := r.next.AssignTeam(ctx, playerID, teamID); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, undraftedPrefix)
	return nil
}

func clonePlayers(items []player.Player) []player.Player {
	out := make([]player.Player, 0, len(items))
	for _, p := range items {
		out = append(out, p.Clone())
	}
	return out
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByDivision(ctx context.Context, divisionID, seasonID string) ([]team.Team, error) {
	key := teamListPrefix + divisionID + ":" + seasonID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByDivision(ctx, divisionID, seasonID)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) UpdateDisplay(ctx context.Context, update team.DisplayUpdate) error {
	if err := r.next.UpdateDisplay(ctx, update); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, teamListPrefix)
	return nil
}
