package draft

import (
	"slices"
	"testing"
	"time"

	"github.com/riskibarqy/youth-league/internal/domain/player"
	"github.com/riskibarqy/youth-league/internal/domain/team"
	"github.com/riskibarqy/youth-league/internal/domain/volunteer"
)

var pickedAt = time.Date(2026, 3, 7, 9, 30, 0, 0, time.UTC)

var (
	volMom   = volunteer.Volunteer{ID: "v-mom", Name: "Mia Ng", FamilyID: "fam-ng", DeclaredRole: volunteer.RoleManager}
	volDad   = volunteer.Volunteer{ID: "v-dad", Name: "Sam Ng", FamilyID: "fam-ng", DeclaredRole: volunteer.RoleCoach}
	volRuiz  = volunteer.Volunteer{ID: "v-ruiz", Name: "Lee Ruiz", DeclaredRole: volunteer.RoleTeamParent}
	volOrtiz = volunteer.Volunteer{ID: "v-ortiz", Name: "Ana Ortiz", DeclaredRole: volunteer.Role("Umpire")}
	volLee   = volunteer.Volunteer{ID: "v-lee", Name: "Jo Lee", DeclaredRole: volunteer.RoleManager}
	volPark  = volunteer.Volunteer{ID: "v-park", Name: "Kim Park", DeclaredRole: volunteer.RoleAssistantCoach}
)

func kid(id, first, last string, number int, family string, vols ...volunteer.Volunteer) player.Player {
	return player.Player{
		ID:          id,
		DivisionID:  "div-u10",
		SeasonID:    "2026-spring",
		FirstName:   first,
		LastName:    last,
		FamilyID:    family,
		DraftNumber: number,
		Volunteers:  vols,
	}
}

func roster() []player.Player {
	return []player.Player{
		kid("p-alice", "Alice", "Ng", 1, "fam-ng", volMom),
		kid("p-bob", "Bob", "Ng", 2, "fam-ng", volMom, volDad),
		kid("p-carol", "Carol", "Ruiz", 3, "", volRuiz),
		kid("p-dan", "Dan", "Ortiz", 4, "", volOrtiz),
		kid("p-eve", "Eve", "Park", 5, "", volPark),
		kid("p-frank", "Frank", "Lee", 6, "", volLee),
	}
}

func teams() []team.Team {
	return []team.Team{
		{ID: "team-red", DivisionID: "div-u10", SeasonID: "2026-spring", Name: "Red"},
		{ID: "team-blue", DivisionID: "div-u10", SeasonID: "2026-spring", Name: "Blue"},
		{ID: "team-green", DivisionID: "div-u10", SeasonID: "2026-spring", Name: "Green"},
	}
}

func setups(names ...string) []ManagerSetup {
	out := make([]ManagerSetup, 0, len(names))
	for i, name := range names {
		out = append(out, ManagerSetup{ID: "m" + string(rune('1'+i)), Name: name})
	}
	return out
}

func startDraft(t *testing.T, players []player.Player, managers ...string) State {
	t.Helper()
	s := NewState("div-u10", "2026-spring", players, teams(), DefaultBufferRounds)
	s, _ = mustApply(t, s, Command{Type: CmdStart, Managers: setups(managers...)})
	return s
}

func mustApply(t *testing.T, s State, cmd Command) (State, []Event) {
	t.Helper()
	next, events, err := Apply(s, cmd)
	if err != nil {
		t.Fatalf("apply %s: unexpected error: %v", cmd.Type, err)
	}
	return next, events
}

func pickCmd(managerID, designator string) Command {
	return Command{Type: CmdPick, ManagerID: managerID, Designator: designator, At: pickedAt}
}

func pickIDs(picks []Pick) []string {
	out := make([]string, 0, len(picks))
	for _, p := range picks {
		out = append(out, p.PlayerID)
	}
	return out
}

func poolIDs(pool []player.Player) []string {
	out := make([]string, 0, len(pool))
	for _, p := range pool {
		out = append(out, p.ID)
	}
	return out
}

func hasEvent(events []Event, typ EventType) bool {
	return slices.ContainsFunc(events, func(e Event) bool { return e.Type == typ })
}

func manager(t *testing.T, s State, id string) Manager {
	t.Helper()
	m, ok := s.Manager(id)
	if !ok {
		t.Fatalf("manager %s not found", id)
	}
	return m
}
