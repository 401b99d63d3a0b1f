package draft

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/youth-league/internal/domain/volunteer"
)

// ManagerCommit is the set of writes for one manager at commit time.
type ManagerCommit struct {
	ManagerID          string
	ManagerName        string
	TeamID             string
	PlayerIDs          []string
	Volunteers         []VolunteerAssignment
	ManagerVolunteerID *string
}

// CommitReady checks that the session can be written to the roster store.
func (s State) CommitReady() error {
	if s.Committed() {
		return fmt.Errorf("%w: draft already committed", ErrConflict)
	}
	if s.Status != StatusComplete {
		return fmt.Errorf("%w: draft is %s, not complete", ErrConflict, s.Status)
	}
	if s.PendingMove != nil {
		return fmt.Errorf("%w: a staged move awaits a decision", ErrConflict)
	}
	if len(s.Queue) > 0 {
		return fmt.Errorf("%w: %d volunteer assignments are pending", ErrConflict, len(s.Queue))
	}

	var unbound []string
	for _, m := range s.Managers {
		if m.TeamID == "" {
			unbound = append(unbound, m.Name)
		}
	}
	if len(unbound) > 0 {
		return fmt.Errorf("%w: managers without a team: %s", ErrValidation, strings.Join(unbound, ", "))
	}
	return nil
}

// CommitPlan lists the writes per manager in setup order. Picks keep roster
// order; volunteers go manager, team parent, then assistant coaches.
func (s State) CommitPlan() ([]ManagerCommit, error) {
	if err := s.CommitReady(); err != nil {
		return nil, err
	}

	plan := make([]ManagerCommit, 0, len(s.Managers))
	for _, m := range s.Managers {
		mc := ManagerCommit{
			ManagerID:   m.ID,
			ManagerName: m.Name,
			TeamID:      m.TeamID,
			PlayerIDs:   make([]string, 0, len(m.Picks)),
		}
		for _, p := range m.Picks {
			mc.PlayerIDs = append(mc.PlayerIDs, p.PlayerID)
		}
		if m.Slots.Manager != nil {
			id := m.Slots.Manager.ID
			mc.ManagerVolunteerID = &id
			mc.Volunteers = append(mc.Volunteers, VolunteerAssignment{VolunteerID: id, Role: volunteer.RoleManager})
		}
		if m.Slots.TeamParent != nil {
			mc.Volunteers = append(mc.Volunteers, VolunteerAssignment{VolunteerID: m.Slots.TeamParent.ID, Role: volunteer.RoleTeamParent})
		}
		for _, c := range m.Slots.AssistantCoaches {
			mc.Volunteers = append(mc.Volunteers, VolunteerAssignment{VolunteerID: c.ID, Role: volunteer.RoleAssistantCoach})
		}
		plan = append(plan, mc)
	}
	return plan, nil
}
