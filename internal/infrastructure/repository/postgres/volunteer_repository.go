package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/youth-league/internal/domain/volunteer"
	qb "github.com/riskibarqy/youth-league/internal/platform/querybuilder"
)

type VolunteerRepository struct {
	db *sqlx.DB
}

func NewVolunteerRepository(db *sqlx.DB) *VolunteerRepository {
	return &VolunteerRepository{db: db}
}

// AssignTeamRole records a volunteer role on a team. Replays are no-ops.
func (r *VolunteerRepository) AssignTeamRole(ctx context.Context, volunteerID, teamID string, role volunteer.Role) error {
	query, args, err := qb.InsertInto("volunteer_team_roles").
		Columns("volunteer_public_id", "team_public_id", "role").
		Values(volunteerID, teamID, string(role)).
		Suffix("ON CONFLICT (volunteer_public_id, team_public_id, role) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert volunteer team role query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("assign volunteer %s as %s on team %s: %w", volunteerID, role, teamID, err)
	}
	return nil
}
