package draft

import (
	"fmt"
	"slices"

	"github.com/riskibarqy/youth-league/internal/domain/player"
	"github.com/riskibarqy/youth-league/internal/domain/volunteer"
)

// offeredVolunteers keeps the volunteers that can be offered a slot.
func offeredVolunteers(p player.Player) []volunteer.Volunteer {
	var out []volunteer.Volunteer
	for _, v := range p.Volunteers {
		if _, ok := v.Offer(); ok {
			out = append(out, v)
		}
	}
	return out
}

func (s *State) enqueue(managerID string, players []player.Player) []Event {
	var events []Event
	for _, p := range players {
		pending := offeredVolunteers(p)
		if len(pending) == 0 {
			continue
		}
		s.Queue = append(s.Queue, Assignment{PlayerID: p.ID, ManagerID: managerID, Pending: pending})
		events = append(events, Event{Type: EvtAssignmentQueued, ManagerID: managerID, PlayerID: p.ID})
	}
	return events
}

func (s *State) dropQueued(playerID string) {
	s.Queue = slices.DeleteFunc(s.Queue, func(a Assignment) bool { return a.PlayerID == playerID })
}

func (s *State) retargetQueued(playerID, managerID string) {
	for i := range s.Queue {
		if s.Queue[i].PlayerID == playerID {
			s.Queue[i].ManagerID = managerID
		}
	}
}

// checkOffer verifies the requested role is the one offered to the volunteer.
func checkOffer(v volunteer.Volunteer, role volunteer.Role) error {
	offered, ok := v.Offer()
	if !ok {
		return fmt.Errorf("%w: volunteer %s has no eligible role", ErrValidation, v.ID)
	}
	if role != offered {
		return fmt.Errorf("%w: volunteer %s may only be assigned as %s", ErrValidation, v.ID, offered)
	}
	return nil
}

// assignSlot binds a volunteer on the manager at index mi. Manager and Team
// Parent overwrite the previous holder; assistant coaches are a set.
func (s *State) assignSlot(mi int, v volunteer.Volunteer, role volunteer.Role) []Event {
	m := &s.Managers[mi]
	events := make([]Event, 0, 2)

	switch role {
	case volunteer.RoleManager:
		if prev := m.Slots.Manager; prev != nil && prev.ID != v.ID {
			events = append(events, Event{Type: EvtSlotReplaced, ManagerID: m.ID, VolunteerID: prev.ID, Role: role})
		}
		bound := v
		m.Slots.Manager = &bound
		m.Name = v.Name
	case volunteer.RoleTeamParent:
		if prev := m.Slots.TeamParent; prev != nil && prev.ID != v.ID {
			events = append(events, Event{Type: EvtSlotReplaced, ManagerID: m.ID, VolunteerID: prev.ID, Role: role})
		}
		bound := v
		m.Slots.TeamParent = &bound
	case volunteer.RoleAssistantCoach:
		if !slices.ContainsFunc(m.Slots.AssistantCoaches, func(c volunteer.Volunteer) bool { return c.ID == v.ID }) {
			m.Slots.AssistantCoaches = append(m.Slots.AssistantCoaches, v)
		}
	}

	return append(events, Event{Type: EvtVolunteerAssigned, ManagerID: m.ID, VolunteerID: v.ID, Role: role})
}

// clearSlot unbinds a volunteer from the manager at index mi. Clearing the
// manager slot restores the display name entered at setup.
func (s *State) clearSlot(mi int, volunteerID string) (volunteer.Role, bool) {
	m := &s.Managers[mi]
	role, ok := m.Slots.Holds(volunteerID)
	if !ok {
		return "", false
	}

	switch role {
	case volunteer.RoleManager:
		m.Slots.Manager = nil
		m.Name = m.SetupName
	case volunteer.RoleTeamParent:
		m.Slots.TeamParent = nil
	case volunteer.RoleAssistantCoach:
		m.Slots.AssistantCoaches = slices.DeleteFunc(m.Slots.AssistantCoaches, func(c volunteer.Volunteer) bool {
			return c.ID == volunteerID
		})
	}
	return role, true
}

// occupied lists the player's volunteers holding a slot on the manager.
func (s State) occupied(mi int, p player.Player) []SlotHolding {
	var out []SlotHolding
	for _, v := range p.Volunteers {
		if role, ok := s.Managers[mi].Slots.Holds(v.ID); ok {
			out = append(out, SlotHolding{Volunteer: v, Role: role})
		}
	}
	return out
}

func (s *State) headPending(volunteerID string) (volunteer.Volunteer, error) {
	if len(s.Queue) == 0 {
		return volunteer.Volunteer{}, fmt.Errorf("%w: no pending volunteer assignment", ErrNotFound)
	}
	head := s.Queue[0]
	idx := slices.IndexFunc(head.Pending, func(v volunteer.Volunteer) bool { return v.ID == volunteerID })
	if idx < 0 {
		return volunteer.Volunteer{}, fmt.Errorf("%w: volunteer %s is not pending for player %s", ErrNotFound, volunteerID, head.PlayerID)
	}
	return head.Pending[idx], nil
}

// settle removes a decided volunteer from the head item and pops the head
// once nothing remains.
func (s *State) settle(volunteerID string) []Event {
	head := &s.Queue[0]
	head.Pending = slices.DeleteFunc(head.Pending, func(v volunteer.Volunteer) bool { return v.ID == volunteerID })
	if len(head.Pending) > 0 {
		return nil
	}
	done := Event{Type: EvtAssignmentDone, ManagerID: head.ManagerID, PlayerID: head.PlayerID}
	s.Queue = s.Queue[1:]
	return []Event{done}
}

func (s *State) assignVolunteer(cmd Command) ([]Event, error) {
	v, err := s.headPending(cmd.VolunteerID)
	if err != nil {
		return nil, err
	}
	if err := checkOffer(v, cmd.Role); err != nil {
		return nil, err
	}
	head := s.Queue[0]
	mi := s.managerIndex(head.ManagerID)
	if mi < 0 || !s.Managers[mi].HasPlayer(head.PlayerID) {
		return nil, fmt.Errorf("%w: player %s is no longer on manager %s", ErrConflict, head.PlayerID, head.ManagerID)
	}

	events := s.assignSlot(mi, v, cmd.Role)
	for i := range events {
		events[i].PlayerID = head.PlayerID
	}
	return append(events, s.settle(v.ID)...), nil
}

func (s *State) declineVolunteer(cmd Command) ([]Event, error) {
	v, err := s.headPending(cmd.VolunteerID)
	if err != nil {
		return nil, err
	}
	head := s.Queue[0]
	events := []Event{{Type: EvtVolunteerDeclined, ManagerID: head.ManagerID, PlayerID: head.PlayerID, VolunteerID: v.ID}}
	return append(events, s.settle(v.ID)...), nil
}

func (s *State) skipAssignment() ([]Event, error) {
	if len(s.Queue) == 0 {
		return nil, fmt.Errorf("%w: no pending volunteer assignment", ErrNotFound)
	}
	head := s.Queue[0]
	events := make([]Event, 0, len(head.Pending)+1)
	for _, v := range head.Pending {
		events = append(events, Event{Type: EvtVolunteerDeclined, ManagerID: head.ManagerID, PlayerID: head.PlayerID, VolunteerID: v.ID})
	}
	s.Queue = s.Queue[1:]
	return append(events, Event{Type: EvtAssignmentDone, ManagerID: head.ManagerID, PlayerID: head.PlayerID}), nil
}
