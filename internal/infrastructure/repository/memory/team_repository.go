package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/youth-league/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	out := make([]team.Team, 0, len(teams))
	out = append(out, teams...)

	return &TeamRepository{teams: out}
}

func (r *TeamRepository) ListByDivision(_ context.Context, divisionID, seasonID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, item := range r.teams {
		if item.DivisionID == divisionID && item.SeasonID == seasonID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *TeamRepository) UpdateDisplay(_ context.Context, update team.DisplayUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.teams {
		if r.teams[idx].ID != update.TeamID {
			continue
		}
		r.teams[idx].ManagerName = update.ManagerName
		r.teams[idx].ManagerVolunteerID = ""
		if update.ManagerVolunteerID != nil {
			r.teams[idx].ManagerVolunteerID = *update.ManagerVolunteerID
		}
		return nil
	}

	return fmt.Errorf("team %s not found", update.TeamID)
}

func (r *TeamRepository) Get(teamID string) (team.Team, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.teams {
		if item.ID == teamID {
			return item, true
		}
	}
	return team.Team{}, false
}
