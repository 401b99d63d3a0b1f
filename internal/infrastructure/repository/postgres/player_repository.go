package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/youth-league/internal/domain/player"
	"github.com/riskibarqy/youth-league/internal/domain/volunteer"
	qb "github.com/riskibarqy/youth-league/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"p.public_id",
	"p.division_public_id",
	"p.season_public_id",
	"p.team_public_id",
	"p.first_name",
	"p.last_name",
	"p.birth_date",
	"p.gender",
	"p.family_id",
	"p.draft_number",
	"p.travel_player",
	"p.returning_player",
	`COALESCE(json_agg(json_build_object(
	'id', v.public_id,
	'name', v.name,
	'email', v.email,
	'phone', v.phone,
	'family_id', v.family_id,
	'declared_role', v.declared_role,
	'derived_role', v.derived_role
) ORDER BY v.public_id) FILTER (WHERE v.public_id IS NOT NULL), '[]') AS volunteers`,
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListUndrafted(ctx context.Context, divisionID, seasonID string) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players p").
		LeftJoin("player_volunteers pv ON pv.player_public_id = p.public_id").
		LeftJoin("volunteers v ON v.public_id = pv.volunteer_public_id AND v.deleted_at IS NULL").
		Where(
			qb.Eq("p.division_public_id", divisionID),
			qb.Eq("p.season_public_id", seasonID),
			qb.IsNull("p.team_public_id"),
			qb.IsNull("p.deleted_at"),
		).
		GroupBy("p.id").
		OrderBy("p.draft_number", "p.public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select undrafted players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select undrafted players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *PlayerRepository) AssignTeam(ctx context.Context, playerID, teamID string) error {
	query, args, err := qb.Update("players").
		Set("team_public_id", teamID).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build assign player team query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("assign player %s to team %s: %w", playerID, teamID, err)
	}
	return requireRowsAffected(res, "assign player "+playerID)
}

func (row playerTableModel) toDomain() (player.Player, error) {
	var vols []volunteerJSON
	if len(row.Volunteers) > 0 {
		if err := json.Unmarshal(row.Volunteers, &vols); err != nil {
			return player.Player{}, fmt.Errorf("decode volunteers for player %s: %w", row.PublicID, err)
		}
	}

	item := player.Player{
		ID:           row.PublicID,
		DivisionID:   row.DivisionID,
		SeasonID:     row.SeasonID,
		TeamID:       row.TeamID.String,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Gender:       player.Gender(row.Gender),
		FamilyID:     row.FamilyID.String,
		DraftNumber:  row.DraftNumber,
		TravelPlayer: row.TravelPlayer,
		Returning:    row.Returning,
		Volunteers:   make([]volunteer.Volunteer, 0, len(vols)),
	}
	if row.BirthDate.Valid {
		item.BirthDate = row.BirthDate.Time
	}
	for _, v := range vols {
		item.Volunteers = append(item.Volunteers, volunteer.Volunteer{
			ID:           v.ID,
			Name:         v.Name,
			Email:        v.Email,
			Phone:        v.Phone,
			FamilyID:     v.FamilyID,
			DeclaredRole: volunteer.Role(v.DeclaredRole),
			DerivedRole:  volunteer.Role(v.DerivedRole),
		})
	}
	return item, nil
}
