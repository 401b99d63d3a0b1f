package player

import "context"

// Repository describes the roster store the draft reads from and commits into.
type Repository interface {
	// ListUndrafted returns the division+season players without a team,
	// ordered by draft number, with their eligible volunteers embedded.
	ListUndrafted(ctx context.Context, divisionID, seasonID string) ([]Player, error)
	AssignTeam(ctx context.Context, playerID, teamID string) error
}
