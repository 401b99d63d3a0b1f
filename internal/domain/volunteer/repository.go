package volunteer

import "context"

// Repository describes the volunteer writes the draft commit needs.
type Repository interface {
	AssignTeamRole(ctx context.Context, volunteerID, teamID string, role Role) error
}
