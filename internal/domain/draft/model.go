package draft

import (
	"slices"
	"time"

	"github.com/riskibarqy/youth-league/internal/domain/player"
	"github.com/riskibarqy/youth-league/internal/domain/team"
	"github.com/riskibarqy/youth-league/internal/domain/volunteer"
)

// Status is the draft session lifecycle state.
type Status string

const (
	StatusSetup      Status = "setup"
	StatusInProgress Status = "in_progress"
	StatusComplete   Status = "complete"
)

// DefaultBufferRounds pads the board beyond ceil(players/managers).
const DefaultBufferRounds = 2

// Pick is an immutable record of one drafted player.
type Pick struct {
	PlayerID  string
	Player    player.Player
	ManagerID string
	Number    int
	Round     int
	PickedAt  time.Time
	Sibling   bool
}

// RoleSlots holds the volunteers bound to a manager's team.
type RoleSlots struct {
	Manager          *volunteer.Volunteer
	TeamParent       *volunteer.Volunteer
	AssistantCoaches []volunteer.Volunteer
}

// Holds reports the slot role the volunteer occupies, if any.
func (r RoleSlots) Holds(volunteerID string) (volunteer.Role, bool) {
	if r.Manager != nil && r.Manager.ID == volunteerID {
		return volunteer.RoleManager, true
	}
	if r.TeamParent != nil && r.TeamParent.ID == volunteerID {
		return volunteer.RoleTeamParent, true
	}
	for _, v := range r.AssistantCoaches {
		if v.ID == volunteerID {
			return volunteer.RoleAssistantCoach, true
		}
	}
	return "", false
}

func (r RoleSlots) clone() RoleSlots {
	out := RoleSlots{AssistantCoaches: slices.Clone(r.AssistantCoaches)}
	if r.Manager != nil {
		v := *r.Manager
		out.Manager = &v
	}
	if r.TeamParent != nil {
		v := *r.TeamParent
		out.TeamParent = &v
	}
	return out
}

// Manager is a drafting seat. Name is the display name, SetupName the name
// the operator entered before any manager volunteer was bound.
type Manager struct {
	ID        string
	Name      string
	SetupName string
	TeamID    string
	Picks     []Pick
	Slots     RoleSlots
}

// HasPlayer reports whether the player is on this manager's roster.
func (m Manager) HasPlayer(playerID string) bool {
	return m.pickIndex(playerID) >= 0
}

func (m Manager) pickIndex(playerID string) int {
	return slices.IndexFunc(m.Picks, func(p Pick) bool { return p.PlayerID == playerID })
}

func (m Manager) clone() Manager {
	out := m
	out.Picks = clonePicks(m.Picks)
	out.Slots = m.Slots.clone()
	return out
}

// ManagerSetup is the operator input for one seat at draft start.
type ManagerSetup struct {
	ID     string
	Name   string
	TeamID string
}

// Assignment is a pending volunteer role decision for one drafted player.
type Assignment struct {
	PlayerID  string
	ManagerID string
	Pending   []volunteer.Volunteer
}

// SlotHolding is a volunteer currently bound to a role slot.
type SlotHolding struct {
	Volunteer volunteer.Volunteer
	Role      volunteer.Role
}

// PendingMove is a staged move waiting on a volunteer reassignment decision.
type PendingMove struct {
	PlayerID      string
	FromManagerID string
	ToManagerID   string
	Occupied      []SlotHolding
}

// VolunteerAssignment binds a volunteer to a slot role.
type VolunteerAssignment struct {
	VolunteerID string
	Role        volunteer.Role
}

// MoveDecision resolves a staged move. Exactly one of Cancel, UnassignAll or
// a non-empty Assignments list must be supplied.
type MoveDecision struct {
	Cancel      bool
	UnassignAll bool
	Assignments []VolunteerAssignment
}

// State is the whole draft session. Apply never mutates its input.
type State struct {
	DivisionID   string
	SeasonID     string
	Status       Status
	BufferRounds int
	Players      []player.Player
	Teams        []team.Team
	Pool         []player.Player
	Managers     []Manager
	Board        Board
	Round        int
	NextPick     int
	Log          []Pick
	Queue        []Assignment
	PendingMove  *PendingMove
	CommittedAt  *time.Time
}

// NewState builds a setup session from a roster snapshot.
func NewState(divisionID, seasonID string, players []player.Player, teams []team.Team, bufferRounds int) State {
	if bufferRounds < 0 {
		bufferRounds = DefaultBufferRounds
	}
	all := clonePlayers(players)
	sortPool(all)

	return State{
		DivisionID:   divisionID,
		SeasonID:     seasonID,
		Status:       StatusSetup,
		BufferRounds: bufferRounds,
		Players:      all,
		Teams:        slices.Clone(teams),
		Pool:         clonePlayers(all),
		NextPick:     1,
	}
}

// Manager returns a copy of the manager with the given id.
func (s State) Manager(id string) (Manager, bool) {
	idx := s.managerIndex(id)
	if idx < 0 {
		return Manager{}, false
	}
	return s.Managers[idx], true
}

// ManagerIDs returns seat ids in setup order.
func (s State) ManagerIDs() []string {
	out := make([]string, 0, len(s.Managers))
	for _, m := range s.Managers {
		out = append(out, m.ID)
	}
	return out
}

// Committed reports whether the draft was already written to the roster store.
func (s State) Committed() bool {
	return s.CommittedAt != nil
}

// HeadAssignment returns the volunteer assignment currently being decided.
func (s State) HeadAssignment() (Assignment, bool) {
	if len(s.Queue) == 0 {
		return Assignment{}, false
	}
	return s.Queue[0], true
}

func (s State) managerIndex(id string) int {
	return slices.IndexFunc(s.Managers, func(m Manager) bool { return m.ID == id })
}

func (s State) hasTeam(teamID string) bool {
	return slices.ContainsFunc(s.Teams, func(t team.Team) bool { return t.ID == teamID })
}

// Clone deep-copies every slice and pointer the reducer may touch.
func (s State) Clone() State {
	out := s
	out.Players = clonePlayers(s.Players)
	out.Teams = slices.Clone(s.Teams)
	out.Pool = clonePlayers(s.Pool)
	out.Managers = make([]Manager, 0, len(s.Managers))
	for _, m := range s.Managers {
		out.Managers = append(out.Managers, m.clone())
	}
	out.Board = s.Board.clone()
	out.Log = clonePicks(s.Log)
	out.Queue = make([]Assignment, 0, len(s.Queue))
	for _, a := range s.Queue {
		a.Pending = slices.Clone(a.Pending)
		out.Queue = append(out.Queue, a)
	}
	if s.PendingMove != nil {
		pm := *s.PendingMove
		pm.Occupied = slices.Clone(s.PendingMove.Occupied)
		out.PendingMove = &pm
	}
	if s.CommittedAt != nil {
		at := *s.CommittedAt
		out.CommittedAt = &at
	}
	return out
}

func clonePlayers(in []player.Player) []player.Player {
	if in == nil {
		return nil
	}
	out := make([]player.Player, 0, len(in))
	for _, p := range in {
		out = append(out, p.Clone())
	}
	return out
}

func clonePicks(in []Pick) []Pick {
	if in == nil {
		return nil
	}
	out := make([]Pick, 0, len(in))
	for _, p := range in {
		p.Player = p.Player.Clone()
		out = append(out, p)
	}
	return out
}

func sortPool(pool []player.Player) {
	slices.SortStableFunc(pool, func(a, b player.Player) int {
		if a.DraftNumber != b.DraftNumber {
			return a.DraftNumber - b.DraftNumber
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})
}
