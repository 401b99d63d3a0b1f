package player

import (
	"fmt"
	"time"

	"github.com/riskibarqy/youth-league/internal/domain/volunteer"
)

// Gender as captured on the registration form.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// Player is a registered youth player in a division+season pool.
type Player struct {
	ID           string
	DivisionID   string
	SeasonID     string
	TeamID       string
	FirstName    string
	LastName     string
	BirthDate    time.Time
	Gender       Gender
	FamilyID     string
	DraftNumber  int
	TravelPlayer bool
	Returning    bool
	Volunteers   []volunteer.Volunteer
}

func (p Player) Name() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// HasFamily reports whether the player carries a family id.
func (p Player) HasFamily() bool {
	return p.FamilyID != ""
}

// Clone copies the player including its embedded volunteer list.
func (p Player) Clone() Player {
	out := p
	out.Volunteers = append([]volunteer.Volunteer(nil), p.Volunteers...)
	return out
}

// Volunteer looks up one of the player's eligible volunteers.
func (p Player) Volunteer(volunteerID string) (volunteer.Volunteer, bool) {
	for _, v := range p.Volunteers {
		if v.ID == volunteerID {
			return v, true
		}
	}
	return volunteer.Volunteer{}, false
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.DivisionID == "" {
		return fmt.Errorf("player division id is required")
	}
	if p.SeasonID == "" {
		return fmt.Errorf("player season id is required")
	}
	if p.Name() == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}
