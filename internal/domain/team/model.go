package team

import "fmt"

// Team is a division team slot a drafted manager is bound to.
type Team struct {
	ID                 string
	DivisionID         string
	SeasonID           string
	Name               string
	ManagerName        string
	ManagerVolunteerID string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.DivisionID == "" {
		return fmt.Errorf("team division id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
