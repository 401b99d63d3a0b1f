package draft

import (
	"fmt"
	"slices"

	"github.com/riskibarqy/youth-league/internal/domain/player"
)

func (s *State) rosterPick(managerID, playerID string) (int, int, error) {
	mi := s.managerIndex(managerID)
	if mi < 0 {
		return -1, -1, fmt.Errorf("%w: manager %s", ErrNotFound, managerID)
	}
	pi := s.Managers[mi].pickIndex(playerID)
	if pi < 0 {
		return -1, -1, fmt.Errorf("%w: player %s is not on manager %s", ErrNotFound, playerID, managerID)
	}
	return mi, pi, nil
}

func (s *State) removePlayer(cmd Command) ([]Event, error) {
	mi, pi, err := s.rosterPick(cmd.ManagerID, cmd.PlayerID)
	if err != nil {
		return nil, err
	}

	m := &s.Managers[mi]
	pick := m.Picks[pi]
	m.Picks = slices.Delete(m.Picks, pi, pi+1)
	s.Board.detach(pick.PlayerID)

	events := []Event{{Type: EvtPlayerRemoved, ManagerID: m.ID, PlayerID: pick.PlayerID, Round: pick.Round}}
	for _, v := range pick.Player.Volunteers {
		if role, ok := s.clearSlot(mi, v.ID); ok {
			events = append(events, Event{Type: EvtSlotCleared, ManagerID: m.ID, PlayerID: pick.PlayerID, VolunteerID: v.ID, Role: role})
		}
	}
	s.dropQueued(pick.PlayerID)

	s.Pool = append(s.Pool, pick.Player.Clone())
	sortPool(s.Pool)

	if remaining := s.familyOnRoster(mi, pick.Player); len(remaining) > 0 {
		events = append(events, Event{Type: EvtSiblingsRemain, ManagerID: m.ID, PlayerID: pick.PlayerID, PlayerIDs: remaining})
	}
	return events, nil
}

func (s State) familyOnRoster(mi int, p player.Player) []string {
	if !p.HasFamily() {
		return nil
	}
	var out []string
	for _, pick := range s.Managers[mi].Picks {
		if pick.Player.FamilyID == p.FamilyID && pick.PlayerID != p.ID {
			out = append(out, pick.PlayerID)
		}
	}
	return out
}

func (s *State) stageMove(cmd Command) ([]Event, error) {
	if s.managerIndex(cmd.ToManagerID) < 0 {
		return nil, fmt.Errorf("%w: manager %s", ErrNotFound, cmd.ToManagerID)
	}
	mi, pi, err := s.rosterPick(cmd.ManagerID, cmd.PlayerID)
	if err != nil {
		return nil, err
	}
	if cmd.ManagerID == cmd.ToManagerID {
		return nil, fmt.Errorf("%w: player %s is already on manager %s", ErrValidation, cmd.PlayerID, cmd.ManagerID)
	}

	holdings := s.occupied(mi, s.Managers[mi].Picks[pi].Player)
	if len(holdings) == 0 {
		return s.relocate(cmd.ManagerID, cmd.ToManagerID, cmd.PlayerID), nil
	}

	s.PendingMove = &PendingMove{
		PlayerID:      cmd.PlayerID,
		FromManagerID: cmd.ManagerID,
		ToManagerID:   cmd.ToManagerID,
		Occupied:      holdings,
	}
	return []Event{{Type: EvtMoveStaged, ManagerID: cmd.ManagerID, ToManagerID: cmd.ToManagerID, PlayerID: cmd.PlayerID}}, nil
}

func (s *State) resolveMove(d MoveDecision) ([]Event, error) {
	pm := s.PendingMove
	if pm == nil {
		return nil, fmt.Errorf("%w: no staged move", ErrNotFound)
	}
	if d.Cancel {
		s.PendingMove = nil
		return []Event{{Type: EvtMoveCancelled, ManagerID: pm.FromManagerID, PlayerID: pm.PlayerID}}, nil
	}
	if d.UnassignAll && len(d.Assignments) > 0 {
		return nil, fmt.Errorf("%w: unassign all cannot be combined with assignments", ErrValidation)
	}
	if !d.UnassignAll && len(d.Assignments) == 0 {
		return nil, fmt.Errorf("%w: a reassignment decision is required", ErrValidation)
	}

	fromIdx, pi, err := s.rosterPick(pm.FromManagerID, pm.PlayerID)
	if err != nil {
		return nil, err
	}
	p := s.Managers[fromIdx].Picks[pi].Player

	seen := make(map[string]struct{}, len(d.Assignments))
	for _, a := range d.Assignments {
		v, ok := p.Volunteer(a.VolunteerID)
		if !ok {
			return nil, fmt.Errorf("%w: volunteer %s is not attached to player %s", ErrNotFound, a.VolunteerID, p.ID)
		}
		if _, dup := seen[a.VolunteerID]; dup {
			return nil, fmt.Errorf("%w: volunteer %s listed twice", ErrValidation, a.VolunteerID)
		}
		seen[a.VolunteerID] = struct{}{}
		if err := checkOffer(v, a.Role); err != nil {
			return nil, err
		}
	}

	var events []Event
	for _, v := range p.Volunteers {
		if role, ok := s.clearSlot(fromIdx, v.ID); ok {
			events = append(events, Event{Type: EvtSlotCleared, ManagerID: pm.FromManagerID, PlayerID: p.ID, VolunteerID: v.ID, Role: role})
		}
	}
	events = append(events, s.relocate(pm.FromManagerID, pm.ToManagerID, pm.PlayerID)...)

	toIdx := s.managerIndex(pm.ToManagerID)
	for _, a := range d.Assignments {
		v, _ := p.Volunteer(a.VolunteerID)
		assigned := s.assignSlot(toIdx, v, a.Role)
		for i := range assigned {
			assigned[i].PlayerID = p.ID
		}
		events = append(events, assigned...)
	}
	s.PendingMove = nil
	return events, nil
}

// relocate moves a pick between rosters and retargets its queued items.
func (s *State) relocate(fromID, toID, playerID string) []Event {
	fromIdx := s.managerIndex(fromID)
	toIdx := s.managerIndex(toID)
	pi := s.Managers[fromIdx].pickIndex(playerID)

	pick := s.Managers[fromIdx].Picks[pi]
	s.Managers[fromIdx].Picks = slices.Delete(s.Managers[fromIdx].Picks, pi, pi+1)
	pick.ManagerID = toID
	s.Managers[toIdx].Picks = append(s.Managers[toIdx].Picks, pick)

	for i := range s.Log {
		if s.Log[i].Number == pick.Number {
			s.Log[i].ManagerID = toID
		}
	}
	s.Board.retarget(playerID, toID)
	s.retargetQueued(playerID, toID)

	return []Event{{Type: EvtPlayerMoved, ManagerID: fromID, ToManagerID: toID, PlayerID: playerID, Round: pick.Round}}
}
