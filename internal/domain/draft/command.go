package draft

import (
	"time"

	"github.com/riskibarqy/youth-league/internal/domain/volunteer"
)

// CommandType names a draft operation.
type CommandType string

const (
	CmdStart            CommandType = "start"
	CmdCancel           CommandType = "cancel"
	CmdPick             CommandType = "pick"
	CmdAssignVolunteer  CommandType = "assign_volunteer"
	CmdDeclineVolunteer CommandType = "decline_volunteer"
	CmdSkipAssignment   CommandType = "skip_assignment"
	CmdRemovePlayer     CommandType = "remove_player"
	CmdStageMove        CommandType = "stage_move"
	CmdResolveMove      CommandType = "resolve_move"
	CmdBindTeam         CommandType = "bind_team"
	CmdMarkCommitted    CommandType = "mark_committed"
)

// Command is the input to Apply. Ids and timestamps are supplied by the
// caller so Apply stays deterministic.
type Command struct {
	Type        CommandType
	At          time.Time
	Managers    []ManagerSetup
	ManagerID   string
	ToManagerID string
	Designator  string
	PlayerID    string
	VolunteerID string
	Role        volunteer.Role
	TeamID      string
	Decision    MoveDecision
}

// EventType names a state change reported by Apply.
type EventType string

const (
	EvtDraftStarted        EventType = "draft_started"
	EvtDraftCancelled      EventType = "draft_cancelled"
	EvtPlayerPicked        EventType = "player_picked"
	EvtSiblingsAutoDrafted EventType = "siblings_auto_drafted"
	EvtAssignmentQueued    EventType = "assignment_queued"
	EvtVolunteerAssigned   EventType = "volunteer_assigned"
	EvtSlotReplaced        EventType = "slot_replaced"
	EvtVolunteerDeclined   EventType = "volunteer_declined"
	EvtAssignmentDone      EventType = "assignment_done"
	EvtRoundAdvanced       EventType = "round_advanced"
	EvtDraftCompleted      EventType = "draft_completed"
	EvtPlayerRemoved       EventType = "player_removed"
	EvtSlotCleared         EventType = "slot_cleared"
	EvtSiblingsRemain      EventType = "siblings_remain"
	EvtMoveStaged          EventType = "move_staged"
	EvtMoveCancelled       EventType = "move_cancelled"
	EvtPlayerMoved         EventType = "player_moved"
	EvtTeamBound           EventType = "team_bound"
	EvtDraftCommitted      EventType = "draft_committed"
)

// Event describes one effect of an accepted command.
type Event struct {
	Type        EventType
	ManagerID   string
	ToManagerID string
	PlayerID    string
	PlayerIDs   []string
	VolunteerID string
	Role        volunteer.Role
	Round       int
	TeamID      string
}
