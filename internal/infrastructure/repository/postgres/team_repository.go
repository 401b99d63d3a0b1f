package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/youth-league/internal/domain/team"
	qb "github.com/riskibarqy/youth-league/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

var teamSelectColumns = []string{
	"public_id",
	"division_public_id",
	"season_public_id",
	"name",
	"manager_name",
	"manager_volunteer_public_id",
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListByDivision(ctx context.Context, divisionID, seasonID string) ([]team.Team, error) {
	query, args, err := qb.Select(teamSelectColumns...).From("teams").
		Where(
			qb.Eq("division_public_id", divisionID),
			qb.Eq("season_public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("name", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by division query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams by division: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{
			ID:                 row.PublicID,
			DivisionID:         row.DivisionID,
			SeasonID:           row.SeasonID,
			Name:               row.Name,
			ManagerName:        row.ManagerName.String,
			ManagerVolunteerID: row.ManagerVolunteerID.String,
		})
	}

	return out, nil
}

func (r *TeamRepository) UpdateDisplay(ctx context.Context, update team.DisplayUpdate) error {
	query, args, err := qb.Update("teams").
		Set("manager_name", nullString(update.ManagerName)).
		Set("manager_volunteer_public_id", nullStringPtr(update.ManagerVolunteerID)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", update.TeamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update team display query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update team %s display: %w", update.TeamID, err)
	}
	return requireRowsAffected(res, "update team "+update.TeamID)
}
