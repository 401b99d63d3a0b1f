package draft

import (
	"errors"
	"slices"
	"testing"

	"github.com/riskibarqy/youth-league/internal/domain/player"
	"github.com/riskibarqy/youth-league/internal/domain/volunteer"
)

func TestApply_RemoveCascadesOnlyOwnVolunteers(t *testing.T) {
	s := startDraft(t, roster(), "Ann", "Ben")
	s, _ = mustApply(t, s, pickCmd("m1", "p-carol"))
	s, _ = mustApply(t, s, Command{Type: CmdAssignVolunteer, VolunteerID: "v-ruiz", Role: volunteer.RoleTeamParent})
	s, _ = mustApply(t, s, pickCmd("m2", "p-dan"))
	s, _ = mustApply(t, s, pickCmd("m1", "p-frank"))
	s, _ = mustApply(t, s, Command{Type: CmdAssignVolunteer, VolunteerID: "v-lee", Role: volunteer.RoleManager})

	s, events := mustApply(t, s, Command{Type: CmdRemovePlayer, ManagerID: "m1", PlayerID: "p-carol"})

	m1 := manager(t, s, "m1")
	if m1.Slots.TeamParent != nil {
		t.Fatalf("expected carol's team parent cleared")
	}
	if m1.Slots.Manager == nil || m1.Slots.Manager.ID != "v-lee" || m1.Name != "Jo Lee" {
		t.Fatalf("frank's manager volunteer must be untouched, got %+v", m1.Slots.Manager)
	}
	if got := pickIDs(m1.Picks); !slices.Equal(got, []string{"p-frank"}) {
		t.Fatalf("expected only frank on m1, got %v", got)
	}
	if got := poolIDs(s.Pool); !slices.Equal(got, []string{"p-alice", "p-bob", "p-carol", "p-eve"}) {
		t.Fatalf("expected carol back in draft-number order, got %v", got)
	}
	idx := slices.IndexFunc(s.Pool, func(p player.Player) bool { return p.ID == "p-carol" })
	if len(s.Pool[idx].Volunteers) != 1 || s.Pool[idx].Volunteers[0].ID != "v-ruiz" {
		t.Fatalf("expected carol's volunteers intact, got %+v", s.Pool[idx].Volunteers)
	}
	if s.Board.Picked(1, "m1") {
		t.Fatalf("expected round 1 cell for m1 cleared")
	}
	if !hasEvent(events, EvtSlotCleared) || !hasEvent(events, EvtPlayerRemoved) {
		t.Fatalf("expected removal and slot cleared events, got %+v", events)
	}
}

func TestApply_RemoveSiblingDoesNotCascade(t *testing.T) {
	s := startDraft(t, roster(), "Ann", "Ben")
	s, _ = mustApply(t, s, pickCmd("m1", "p-alice"))

	s, events := mustApply(t, s, Command{Type: CmdRemovePlayer, ManagerID: "m1", PlayerID: "p-bob"})
	if got := pickIDs(manager(t, s, "m1").Picks); !slices.Equal(got, []string{"p-alice"}) {
		t.Fatalf("expected alice to stay, got %v", got)
	}

	var notice Event
	for _, e := range events {
		if e.Type == EvtSiblingsRemain {
			notice = e
		}
	}
	if !slices.Equal(notice.PlayerIDs, []string{"p-alice"}) {
		t.Fatalf("expected advisory naming alice, got %+v", notice)
	}

	cell, ok := s.Board.Cell(1, "m1")
	if !ok || cell.Pick.PlayerID != "p-alice" || len(cell.Siblings) != 0 {
		t.Fatalf("expected sibling pruned from cell, got %+v", cell)
	}
	if got := queuePlayers(s.Queue); !slices.Equal(got, []string{"p-alice"}) {
		t.Fatalf("expected bob's queued assignment dropped, got %v", got)
	}

	s, _ = mustApply(t, s, Command{Type: CmdRemovePlayer, ManagerID: "m1", PlayerID: "p-alice"})
	if s.Board.Picked(1, "m1") {
		t.Fatalf("expected cell cleared once its last pick is removed")
	}
	if len(s.Queue) != 0 {
		t.Fatalf("expected empty queue, got %v", queuePlayers(s.Queue))
	}
}

func TestApply_RemoveErrors(t *testing.T) {
	s := startDraft(t, roster(), "Ann", "Ben")
	s, _ = mustApply(t, s, pickCmd("m1", "p-carol"))

	cases := []struct {
		name string
		cmd  Command
		want error
	}{
		{name: "not on roster", cmd: Command{Type: CmdRemovePlayer, ManagerID: "m2", PlayerID: "p-carol"}, want: ErrNotFound},
		{name: "unknown manager", cmd: Command{Type: CmdRemovePlayer, ManagerID: "m7", PlayerID: "p-carol"}, want: ErrNotFound},
		{name: "in pool", cmd: Command{Type: CmdRemovePlayer, ManagerID: "m1", PlayerID: "p-eve"}, want: ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := Apply(s, tc.cmd); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	done := startDraft(t, roster()[2:3], "Ann")
	done, _ = mustApply(t, done, pickCmd("m1", "p-carol"))
	if _, _, err := Apply(done, Command{Type: CmdRemovePlayer, ManagerID: "m1", PlayerID: "p-carol"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict removing after completion, got %v", err)
	}
}

func TestApply_MoveWithoutSlotsIsImmediate(t *testing.T) {
	s := startDraft(t, roster(), "Ann", "Ben")
	s, _ = mustApply(t, s, pickCmd("m1", "p-dan"))

	s, events := mustApply(t, s, Command{Type: CmdStageMove, ManagerID: "m1", ToManagerID: "m2", PlayerID: "p-dan"})
	if !hasEvent(events, EvtPlayerMoved) || s.PendingMove != nil {
		t.Fatalf("expected an unconditional move, got %+v", events)
	}
	if manager(t, s, "m1").HasPlayer("p-dan") {
		t.Fatalf("dan should have left m1")
	}
	m2 := manager(t, s, "m2")
	if len(m2.Picks) != 1 || m2.Picks[0].ManagerID != "m2" {
		t.Fatalf("expected dan on m2 with updated manager reference, got %+v", m2.Picks)
	}
	cell, _ := s.Board.Cell(1, "m1")
	if cell.Pick.ManagerID != "m2" {
		t.Fatalf("expected board cell to reference m2, got %s", cell.Pick.ManagerID)
	}
	if !s.Board.Picked(1, "m1") || s.Board.Picked(1, "m2") {
		t.Fatalf("a move must not change who has picked this round")
	}
}

func TestApply_MoveWithSlotVolunteerIsTwoPhase(t *testing.T) {
	s := startDraft(t, roster(), "Ann", "Ben")
	s, _ = mustApply(t, s, pickCmd("m1", "p-frank"))
	s, _ = mustApply(t, s, Command{Type: CmdAssignVolunteer, VolunteerID: "v-lee", Role: volunteer.RoleManager})

	staged, events := mustApply(t, s, Command{Type: CmdStageMove, ManagerID: "m1", ToManagerID: "m2", PlayerID: "p-frank"})
	if !hasEvent(events, EvtMoveStaged) || staged.PendingMove == nil {
		t.Fatalf("expected staged move, got %+v", events)
	}
	if !manager(t, staged, "m1").HasPlayer("p-frank") {
		t.Fatalf("staging must not relocate the player")
	}
	if len(staged.PendingMove.Occupied) != 1 || staged.PendingMove.Occupied[0].Role != volunteer.RoleManager {
		t.Fatalf("expected v-lee listed as occupying manager slot, got %+v", staged.PendingMove.Occupied)
	}

	if _, _, err := Apply(staged, pickCmd("m2", "p-eve")); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected staged move to block picks, got %v", err)
	}
	if _, _, err := Apply(staged, Command{Type: CmdResolveMove}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected a decision to be required, got %v", err)
	}

	cancelled, events := mustApply(t, staged, Command{Type: CmdResolveMove, Decision: MoveDecision{Cancel: true}})
	if !hasEvent(events, EvtMoveCancelled) || cancelled.PendingMove != nil {
		t.Fatalf("expected cancelled move")
	}
	m1 := manager(t, cancelled, "m1")
	if !m1.HasPlayer("p-frank") || m1.Slots.Manager == nil || m1.Slots.Manager.ID != "v-lee" {
		t.Fatalf("cancel must leave m1 unchanged, got %+v", m1)
	}

	unassigned, _ := mustApply(t, staged, Command{Type: CmdResolveMove, Decision: MoveDecision{UnassignAll: true}})
	m1 = manager(t, unassigned, "m1")
	m2 := manager(t, unassigned, "m2")
	if m1.HasPlayer("p-frank") || !m2.HasPlayer("p-frank") {
		t.Fatalf("expected frank on m2")
	}
	if m1.Slots.Manager != nil || m1.Name != "Ann" {
		t.Fatalf("expected m1 manager slot cleared and setup name restored, got %+v", m1)
	}
	if m2.Slots.Manager != nil {
		t.Fatalf("unassign all must not bind anything on m2")
	}

	reassigned, _ := mustApply(t, staged, Command{Type: CmdResolveMove, Decision: MoveDecision{
		Assignments: []VolunteerAssignment{{VolunteerID: "v-lee", Role: volunteer.RoleManager}},
	}})
	m2 = manager(t, reassigned, "m2")
	if m2.Slots.Manager == nil || m2.Slots.Manager.ID != "v-lee" || m2.Name != "Jo Lee" {
		t.Fatalf("expected v-lee bound on m2, got %+v", m2)
	}
	if manager(t, reassigned, "m1").Slots.Manager != nil {
		t.Fatalf("expected v-lee released from m1")
	}
}

func TestApply_ResolveMoveErrors(t *testing.T) {
	s := startDraft(t, roster(), "Ann", "Ben")
	if _, _, err := Apply(s, Command{Type: CmdResolveMove, Decision: MoveDecision{Cancel: true}}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found without a staged move, got %v", err)
	}

	s, _ = mustApply(t, s, pickCmd("m1", "p-frank"))
	s, _ = mustApply(t, s, Command{Type: CmdAssignVolunteer, VolunteerID: "v-lee", Role: volunteer.RoleManager})
	s, _ = mustApply(t, s, Command{Type: CmdStageMove, ManagerID: "m1", ToManagerID: "m2", PlayerID: "p-frank"})

	cases := []struct {
		name     string
		decision MoveDecision
		want     error
	}{
		{
			name:     "wrong role",
			decision: MoveDecision{Assignments: []VolunteerAssignment{{VolunteerID: "v-lee", Role: volunteer.RoleTeamParent}}},
			want:     ErrValidation,
		},
		{
			name:     "foreign volunteer",
			decision: MoveDecision{Assignments: []VolunteerAssignment{{VolunteerID: "v-ruiz", Role: volunteer.RoleTeamParent}}},
			want:     ErrNotFound,
		},
		{
			name: "unassign with assignments",
			decision: MoveDecision{UnassignAll: true, Assignments: []VolunteerAssignment{
				{VolunteerID: "v-lee", Role: volunteer.RoleManager},
			}},
			want: ErrValidation,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, _, err := Apply(s, Command{Type: CmdResolveMove, Decision: tc.decision})
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if next.PendingMove == nil {
				t.Fatalf("failed decision must keep the move staged")
			}
		})
	}
}

func TestApply_MoveRetargetsQueuedAssignments(t *testing.T) {
	s := startDraft(t, roster(), "Ann", "Ben")
	s, _ = mustApply(t, s, pickCmd("m1", "p-frank"))

	s, _ = mustApply(t, s, Command{Type: CmdStageMove, ManagerID: "m1", ToManagerID: "m2", PlayerID: "p-frank"})
	head, _ := s.HeadAssignment()
	if head.ManagerID != "m2" {
		t.Fatalf("expected queued assignment to follow the player, got %s", head.ManagerID)
	}

	s, _ = mustApply(t, s, Command{Type: CmdAssignVolunteer, VolunteerID: "v-lee", Role: volunteer.RoleManager})
	if manager(t, s, "m2").Slots.Manager == nil || manager(t, s, "m1").Slots.Manager != nil {
		t.Fatalf("expected assignment on m2 only")
	}
}

func TestApply_StageMoveErrors(t *testing.T) {
	s := startDraft(t, roster(), "Ann", "Ben")
	s, _ = mustApply(t, s, pickCmd("m1", "p-carol"))

	cases := []struct {
		name string
		cmd  Command
		want error
	}{
		{name: "unknown target", cmd: Command{Type: CmdStageMove, ManagerID: "m1", ToManagerID: "m9", PlayerID: "p-carol"}, want: ErrNotFound},
		{name: "unknown source", cmd: Command{Type: CmdStageMove, ManagerID: "m9", ToManagerID: "m2", PlayerID: "p-carol"}, want: ErrNotFound},
		{name: "not on roster", cmd: Command{Type: CmdStageMove, ManagerID: "m2", ToManagerID: "m1", PlayerID: "p-carol"}, want: ErrNotFound},
		{name: "same manager", cmd: Command{Type: CmdStageMove, ManagerID: "m1", ToManagerID: "m1", PlayerID: "p-carol"}, want: ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := Apply(s, tc.cmd); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func boardOccurrences(b Board, playerID string) int {
	n := 0
	for _, r := range b.Rounds {
		for _, c := range r.Cells {
			if c.Pick.PlayerID == playerID {
				n++
			}
			for _, sib := range c.Siblings {
				if sib.PlayerID == playerID {
					n++
				}
			}
		}
	}
	return n
}

func TestApply_RemovePrimaryKeepsSiblingOnBoard(t *testing.T) {
	s := startDraft(t, roster(), "Ann", "Ben")
	s, _ = mustApply(t, s, pickCmd("m1", "p-alice"))

	s, _ = mustApply(t, s, Command{Type: CmdRemovePlayer, ManagerID: "m1", PlayerID: "p-alice"})
	if got := pickIDs(manager(t, s, "m1").Picks); !slices.Equal(got, []string{"p-bob"}) {
		t.Fatalf("expected bob to stay on m1, got %v", got)
	}
	cell, ok := s.Board.Cell(1, "m1")
	if !ok || cell.Pick.PlayerID != "p-bob" || len(cell.Siblings) != 0 {
		t.Fatalf("expected bob promoted into the cell, got present=%v %+v", ok, cell)
	}
	if boardOccurrences(s.Board, "p-alice") != 0 {
		t.Fatalf("expected alice gone from the board")
	}
	if _, _, err := Apply(s, pickCmd("m1", "p-carol")); !errors.Is(err, ErrConflict) {
		t.Fatalf("m1 still holds its round 1 turn, got %v", err)
	}
}

func TestApply_RemoveAfterMoveClearsOriginalCell(t *testing.T) {
	s := startDraft(t, roster(), "Ann", "Ben", "Cy")
	s, _ = mustApply(t, s, pickCmd("m1", "p-dan"))
	s, _ = mustApply(t, s, Command{Type: CmdStageMove, ManagerID: "m1", ToManagerID: "m2", PlayerID: "p-dan"})

	s, _ = mustApply(t, s, Command{Type: CmdRemovePlayer, ManagerID: "m2", PlayerID: "p-dan"})
	if !slices.Contains(poolIDs(s.Pool), "p-dan") {
		t.Fatalf("expected dan back in the pool")
	}
	if s.Board.Picked(1, "m1") || boardOccurrences(s.Board, "p-dan") != 0 {
		t.Fatalf("expected dan's cell cleared, got %+v", s.Board.Rounds[0].Cells)
	}

	s, _ = mustApply(t, s, pickCmd("m3", "p-dan"))
	if n := boardOccurrences(s.Board, "p-dan"); n != 1 {
		t.Fatalf("expected dan on the board once, got %d", n)
	}
	if cell, ok := s.Board.Cell(1, "m3"); !ok || cell.Pick.PlayerID != "p-dan" {
		t.Fatalf("expected dan in m3's round 1 cell, got %+v", cell)
	}
}

func TestApply_ChainedMoveRetargetsBoardCell(t *testing.T) {
	s := startDraft(t, roster(), "Ann", "Ben", "Cy")
	s, _ = mustApply(t, s, pickCmd("m1", "p-dan"))
	s, _ = mustApply(t, s, Command{Type: CmdStageMove, ManagerID: "m1", ToManagerID: "m2", PlayerID: "p-dan"})
	s, _ = mustApply(t, s, Command{Type: CmdStageMove, ManagerID: "m2", ToManagerID: "m3", PlayerID: "p-dan"})

	if !manager(t, s, "m3").HasPlayer("p-dan") || manager(t, s, "m2").HasPlayer("p-dan") {
		t.Fatalf("expected dan on m3 only")
	}
	cell, ok := s.Board.Cell(1, "m1")
	if !ok || cell.Pick.ManagerID != "m3" {
		t.Fatalf("expected round 1 cell to reference m3, got %+v", cell)
	}
	if s.Board.Picked(1, "m2") || s.Board.Picked(1, "m3") {
		t.Fatalf("moves must not spend turns for m2 or m3")
	}
}

func TestApply_CancelDiscardsStagedMove(t *testing.T) {
	s := startDraft(t, roster(), "Ann", "Ben")
	s, _ = mustApply(t, s, pickCmd("m1", "p-frank"))
	s, _ = mustApply(t, s, Command{Type: CmdAssignVolunteer, VolunteerID: "v-lee", Role: volunteer.RoleManager})
	s, _ = mustApply(t, s, Command{Type: CmdStageMove, ManagerID: "m1", ToManagerID: "m2", PlayerID: "p-frank"})

	s, events := mustApply(t, s, Command{Type: CmdCancel})
	if !hasEvent(events, EvtDraftCancelled) || s.Status != StatusSetup {
		t.Fatalf("expected cancel to go through a staged move, got %+v", events)
	}
	if s.PendingMove != nil || len(manager(t, s, "m1").Picks) != 0 {
		t.Fatalf("expected staged move and picks discarded")
	}
}
