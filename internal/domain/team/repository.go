package team

import "context"

// DisplayUpdate is the team metadata written back when a draft commits.
// ManagerVolunteerID is nil when no manager volunteer was bound.
type DisplayUpdate struct {
	TeamID             string
	ManagerName        string
	ManagerVolunteerID *string
}

// Repository describes team persistence needs from use cases.
type Repository interface {
	ListByDivision(ctx context.Context, divisionID, seasonID string) ([]Team, error)
	UpdateDisplay(ctx context.Context, update DisplayUpdate) error
}
