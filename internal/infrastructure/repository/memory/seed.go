package memory

import (
	"time"

	"github.com/riskibarqy/youth-league/internal/domain/player"
	"github.com/riskibarqy/youth-league/internal/domain/team"
	"github.com/riskibarqy/youth-league/internal/domain/volunteer"
)

const (
	DivisionIDU10 = "u10"
	SeasonID2026  = "2026-spring"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "u10-hawks", DivisionID: DivisionIDU10, SeasonID: SeasonID2026, Name: "Hawks"},
		{ID: "u10-otters", DivisionID: DivisionIDU10, SeasonID: SeasonID2026, Name: "Otters"},
		{ID: "u10-comets", DivisionID: DivisionIDU10, SeasonID: SeasonID2026, Name: "Comets"},
	}
}

func SeedPlayers() []player.Player {
	birth := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}
	garcia := []volunteer.Volunteer{
		{ID: "vol-garcia-maria", Name: "Maria Garcia", Email: "maria.garcia@example.org", FamilyID: "fam-garcia", DeclaredRole: volunteer.RoleManager, DerivedRole: volunteer.RoleManager},
		{ID: "vol-garcia-luis", Name: "Luis Garcia", FamilyID: "fam-garcia", DeclaredRole: volunteer.RoleCoach, DerivedRole: volunteer.RoleAssistantCoach},
	}
	okafor := []volunteer.Volunteer{
		{ID: "vol-okafor-ada", Name: "Ada Okafor", Phone: "555-0142", FamilyID: "fam-okafor", DeclaredRole: volunteer.RoleTeamParent, DerivedRole: volunteer.RoleTeamParent},
	}

	players := []player.Player{
		{ID: "p-01", FirstName: "Sofia", LastName: "Garcia", BirthDate: birth(2016, time.March, 4), Gender: player.GenderFemale, FamilyID: "fam-garcia", DraftNumber: 1, Volunteers: garcia},
		{ID: "p-02", FirstName: "Mateo", LastName: "Garcia", BirthDate: birth(2017, time.June, 19), Gender: player.GenderMale, FamilyID: "fam-garcia", DraftNumber: 7, Volunteers: garcia},
		{ID: "p-03", FirstName: "Chidi", LastName: "Okafor", BirthDate: birth(2016, time.October, 2), Gender: player.GenderMale, FamilyID: "fam-okafor", DraftNumber: 2, Returning: true, Volunteers: okafor},
		{ID: "p-04", FirstName: "Emma", LastName: "Lindqvist", BirthDate: birth(2016, time.January, 27), Gender: player.GenderFemale, DraftNumber: 3, TravelPlayer: true},
		{ID: "p-05", FirstName: "Noah", LastName: "Bennett", BirthDate: birth(2017, time.May, 8), Gender: player.GenderMale, DraftNumber: 4},
		{ID: "p-06", FirstName: "Aiko", LastName: "Tanaka", BirthDate: birth(2016, time.August, 15), Gender: player.GenderFemale, DraftNumber: 5, Returning: true},
		{ID: "p-07", FirstName: "Liam", LastName: "Murphy", BirthDate: birth(2017, time.February, 11), Gender: player.GenderMale, DraftNumber: 6},
		{ID: "p-08", FirstName: "Zara", LastName: "Khan", BirthDate: birth(2016, time.December, 30), Gender: player.GenderFemale, DraftNumber: 8},
		{ID: "p-09", FirstName: "Owen", LastName: "Price", BirthDate: birth(2017, time.July, 3), Gender: player.GenderMale, DraftNumber: 9},
	}
	for idx := range players {
		players[idx].DivisionID = DivisionIDU10
		players[idx].SeasonID = SeasonID2026
	}
	return players
}
