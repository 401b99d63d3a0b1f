package draft

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/riskibarqy/youth-league/internal/domain/player"
)

var allowedStatus = map[CommandType][]Status{
	CmdStart:            {StatusSetup},
	CmdCancel:           {StatusInProgress},
	CmdPick:             {StatusInProgress},
	CmdAssignVolunteer:  {StatusInProgress, StatusComplete},
	CmdDeclineVolunteer: {StatusInProgress, StatusComplete},
	CmdSkipAssignment:   {StatusInProgress, StatusComplete},
	CmdRemovePlayer:     {StatusInProgress},
	CmdStageMove:        {StatusInProgress, StatusComplete},
	CmdResolveMove:      {StatusInProgress, StatusComplete},
	CmdBindTeam:         {StatusSetup, StatusInProgress, StatusComplete},
	CmdMarkCommitted:    {StatusComplete},
}

// Apply runs one command against the session. On error the input state is
// returned untouched; on success the returned state is an independent copy.
func Apply(s State, cmd Command) (State, []Event, error) {
	if err := guard(s, cmd); err != nil {
		return s, nil, err
	}

	next := s.Clone()
	var (
		events []Event
		err    error
	)
	switch cmd.Type {
	case CmdStart:
		events, err = next.start(cmd)
	case CmdCancel:
		events = next.cancel()
	case CmdPick:
		events, err = next.pick(cmd)
	case CmdAssignVolunteer:
		events, err = next.assignVolunteer(cmd)
	case CmdDeclineVolunteer:
		events, err = next.declineVolunteer(cmd)
	case CmdSkipAssignment:
		events, err = next.skipAssignment()
	case CmdRemovePlayer:
		events, err = next.removePlayer(cmd)
	case CmdStageMove:
		events, err = next.stageMove(cmd)
	case CmdResolveMove:
		events, err = next.resolveMove(cmd.Decision)
	case CmdBindTeam:
		events, err = next.bindTeam(cmd)
	case CmdMarkCommitted:
		events, err = next.markCommitted(cmd)
	}
	if err != nil {
		return s, nil, err
	}
	return next, events, nil
}

func guard(s State, cmd Command) error {
	statuses, ok := allowedStatus[cmd.Type]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrValidation, cmd.Type)
	}
	if s.Committed() {
		return fmt.Errorf("%w: draft already committed", ErrConflict)
	}
	if s.PendingMove != nil && cmd.Type != CmdResolveMove && cmd.Type != CmdCancel {
		return fmt.Errorf("%w: a staged move for player %s awaits a decision", ErrConflict, s.PendingMove.PlayerID)
	}
	if !slices.Contains(statuses, s.Status) {
		return fmt.Errorf("%w: %s is not allowed while draft is %s", ErrConflict, cmd.Type, s.Status)
	}
	return nil
}

func (s *State) start(cmd Command) ([]Event, error) {
	if len(cmd.Managers) == 0 {
		return nil, fmt.Errorf("%w: at least one manager is required", ErrValidation)
	}

	ids := make(map[string]struct{}, len(cmd.Managers))
	teams := make(map[string]struct{}, len(cmd.Managers))
	managers := make([]Manager, 0, len(cmd.Managers))
	for i, setup := range cmd.Managers {
		name := strings.TrimSpace(setup.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: manager %d name is required", ErrValidation, i+1)
		}
		if setup.ID == "" {
			return nil, fmt.Errorf("%w: manager %d id is required", ErrValidation, i+1)
		}
		if _, dup := ids[setup.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate manager id %s", ErrValidation, setup.ID)
		}
		ids[setup.ID] = struct{}{}

		teamID := strings.TrimSpace(setup.TeamID)
		if teamID != "" {
			if _, dup := teams[teamID]; dup {
				return nil, fmt.Errorf("%w: team %s is bound to more than one manager", ErrValidation, teamID)
			}
			if !s.hasTeam(teamID) {
				return nil, fmt.Errorf("%w: team %s", ErrNotFound, teamID)
			}
			teams[teamID] = struct{}{}
		}

		managers = append(managers, Manager{ID: setup.ID, Name: name, SetupName: name, TeamID: teamID})
	}

	s.Managers = managers
	s.Status = StatusInProgress
	s.Round = 1
	s.NextPick = 1
	s.Board = NewBoard(RoundsFor(len(s.Pool), len(managers), s.BufferRounds))

	events := []Event{{Type: EvtDraftStarted, Round: 1}}
	if len(s.Pool) == 0 {
		s.Status = StatusComplete
		events = append(events, Event{Type: EvtDraftCompleted, Round: 1})
	}
	return events, nil
}

func (s *State) cancel() []Event {
	for i := range s.Managers {
		m := &s.Managers[i]
		m.Picks = nil
		m.Slots = RoleSlots{}
		m.Name = m.SetupName
	}
	s.Pool = clonePlayers(s.Players)
	s.Board = Board{}
	s.Round = 0
	s.NextPick = 1
	s.Log = nil
	s.Queue = nil
	s.PendingMove = nil
	s.Status = StatusSetup

	return []Event{{Type: EvtDraftCancelled}}
}

func (s *State) pick(cmd Command) ([]Event, error) {
	mi := s.managerIndex(cmd.ManagerID)
	if mi < 0 {
		return nil, fmt.Errorf("%w: manager %s", ErrNotFound, cmd.ManagerID)
	}
	if s.Board.Picked(s.Round, cmd.ManagerID) {
		return nil, fmt.Errorf("%w: manager %s already picked in round %d", ErrConflict, cmd.ManagerID, s.Round)
	}
	idx, err := resolveDesignator(s.Pool, cmd.Designator)
	if err != nil {
		return nil, err
	}

	primary := s.Pool[idx]
	bundle := append([]player.Player{primary}, Siblings(primary, s.Pool)...)
	picks := make([]Pick, 0, len(bundle))
	drafted := make(map[string]struct{}, len(bundle))
	for i, p := range bundle {
		picks = append(picks, Pick{
			PlayerID:  p.ID,
			Player:    p.Clone(),
			ManagerID: cmd.ManagerID,
			Number:    s.NextPick + i,
			Round:     s.Round,
			PickedAt:  cmd.At,
			Sibling:   i > 0,
		})
		drafted[p.ID] = struct{}{}
	}
	s.NextPick += len(picks)

	s.Managers[mi].Picks = append(s.Managers[mi].Picks, picks...)
	s.Log = append(s.Log, clonePicks(picks)...)
	s.Pool = slices.DeleteFunc(s.Pool, func(p player.Player) bool {
		_, ok := drafted[p.ID]
		return ok
	})
	s.Board.set(s.Round, cmd.ManagerID, Cell{Pick: picks[0], Siblings: clonePicks(picks[1:])})

	events := make([]Event, 0, len(picks)+2)
	for _, p := range picks {
		events = append(events, Event{Type: EvtPlayerPicked, ManagerID: cmd.ManagerID, PlayerID: p.PlayerID, Round: p.Round})
	}
	if len(picks) > 1 {
		ids := make([]string, 0, len(picks)-1)
		for _, p := range picks[1:] {
			ids = append(ids, p.PlayerID)
		}
		events = append(events, Event{Type: EvtSiblingsAutoDrafted, ManagerID: cmd.ManagerID, PlayerID: primary.ID, PlayerIDs: ids, Round: s.Round})
	}
	events = append(events, s.enqueue(cmd.ManagerID, bundle)...)
	return append(events, s.advance()...), nil
}

func (s *State) advance() []Event {
	if len(s.Pool) == 0 {
		s.Status = StatusComplete
		return []Event{{Type: EvtDraftCompleted, Round: s.Round}}
	}
	if !s.Board.Complete(s.Round, s.ManagerIDs()) {
		return nil
	}
	s.Round++
	s.Board.ensure(s.Round)
	return []Event{{Type: EvtRoundAdvanced, Round: s.Round}}
}

// resolveDesignator finds a pool player by id, then draft number, then
// case-insensitive full name.
func resolveDesignator(pool []player.Player, designator string) (int, error) {
	d := strings.TrimSpace(designator)
	if d == "" {
		return -1, fmt.Errorf("%w: player is required", ErrValidation)
	}
	if idx := slices.IndexFunc(pool, func(p player.Player) bool { return p.ID == d }); idx >= 0 {
		return idx, nil
	}

	var matches []int
	if n, err := strconv.Atoi(d); err == nil && n > 0 {
		for i, p := range pool {
			if p.DraftNumber == n {
				matches = append(matches, i)
			}
		}
	}
	if len(matches) == 0 {
		for i, p := range pool {
			if strings.EqualFold(p.Name(), d) {
				matches = append(matches, i)
			}
		}
	}

	switch len(matches) {
	case 0:
		return -1, fmt.Errorf("%w: no undrafted player matches %q", ErrNotFound, d)
	case 1:
		return matches[0], nil
	default:
		return -1, fmt.Errorf("%w: %q matches %d undrafted players", ErrValidation, d, len(matches))
	}
}

func (s *State) bindTeam(cmd Command) ([]Event, error) {
	teamID := strings.TrimSpace(cmd.TeamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrValidation)
	}
	mi := s.managerIndex(cmd.ManagerID)
	if mi < 0 {
		return nil, fmt.Errorf("%w: manager %s", ErrNotFound, cmd.ManagerID)
	}
	if !s.hasTeam(teamID) {
		return nil, fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}
	for _, m := range s.Managers {
		if m.ID != cmd.ManagerID && m.TeamID == teamID {
			return nil, fmt.Errorf("%w: team %s is already bound to manager %s", ErrConflict, teamID, m.Name)
		}
	}

	s.Managers[mi].TeamID = teamID
	return []Event{{Type: EvtTeamBound, ManagerID: cmd.ManagerID, TeamID: teamID}}, nil
}

func (s *State) markCommitted(cmd Command) ([]Event, error) {
	if err := s.CommitReady(); err != nil {
		return nil, err
	}
	at := cmd.At
	s.CommittedAt = &at
	return []Event{{Type: EvtDraftCommitted}}, nil
}
