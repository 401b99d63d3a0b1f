package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/youth-league/internal/domain/volunteer"
)

// TeamRole is one volunteer role binding written at commit.
type TeamRole struct {
	VolunteerID string
	TeamID      string
	Role        volunteer.Role
}

// VolunteerRepository keeps role bindings keyed by volunteer, team and role,
// so replaying a commit does not duplicate them.
type VolunteerRepository struct {
	mu    sync.RWMutex
	roles []TeamRole
}

func NewVolunteerRepository() *VolunteerRepository {
	return &VolunteerRepository{}
}

func (r *VolunteerRepository) AssignTeamRole(_ context.Context, volunteerID, teamID string, role volunteer.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	binding := TeamRole{VolunteerID: volunteerID, TeamID: teamID, Role: role}
	for _, item := range r.roles {
		if item == binding {
			return nil
		}
	}
	r.roles = append(r.roles, binding)

	return nil
}

func (r *VolunteerRepository) TeamRoles(teamID string) []TeamRole {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]TeamRole, 0)
	for _, item := range r.roles {
		if item.TeamID == teamID {
			out = append(out, item)
		}
	}
	return out
}
