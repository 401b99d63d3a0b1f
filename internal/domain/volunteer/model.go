package volunteer

import "fmt"

// Role is a volunteer role from the league's fixed vocabulary.
type Role string

const (
	RoleManager        Role = "Manager"
	RoleCoach          Role = "Coach"
	RoleAssistantCoach Role = "Assistant Coach"
	RoleTeamParent     Role = "Team Parent"
)

// SlotRoles are the roles a volunteer can be bound to on a drafted team.
var SlotRoles = map[Role]struct{}{
	RoleManager:        {},
	RoleAssistantCoach: {},
	RoleTeamParent:     {},
}

// Volunteer is a parent volunteer summary as embedded on an eligible player.
type Volunteer struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	FamilyID     string
	DeclaredRole Role
	DerivedRole  Role
}

// OfferedSlot returns the only team slot a volunteer may be offered, based on
// the declared role. Roles outside the draft vocabulary get no offer.
func OfferedSlot(declared Role) (Role, bool) {
	switch declared {
	case RoleManager:
		return RoleManager, true
	case RoleCoach, RoleAssistantCoach:
		return RoleAssistantCoach, true
	case RoleTeamParent:
		return RoleTeamParent, true
	default:
		return "", false
	}
}

// Offer is the slot this volunteer can fill on a manager, if any.
// DerivedRole is informational; only the declared role decides the offer.
func (v Volunteer) Offer() (Role, bool) {
	return OfferedSlot(v.DeclaredRole)
}

func (v Volunteer) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("volunteer id is required")
	}
	if v.Name == "" {
		return fmt.Errorf("volunteer name is required")
	}

	return nil
}
