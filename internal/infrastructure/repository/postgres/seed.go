package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/youth-league/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo division into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	exec := func(what, query string, arg map[string]any) error {
		sqlQuery, args, err := sqlx.Named(query, arg)
		if err != nil {
			return fmt.Errorf("bind seed %s query: %w", what, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
			return fmt.Errorf("seed %s: %w", what, err)
		}
		return nil
	}

	for _, t := range memory.SeedTeams() {
		err := exec("team "+t.ID, `
INSERT INTO teams (public_id, division_public_id, season_public_id, name)
VALUES (:public_id, :division_public_id, :season_public_id, :name)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":          t.ID,
			"division_public_id": t.DivisionID,
			"season_public_id":   t.SeasonID,
			"name":               t.Name,
		})
		if err != nil {
			return err
		}
	}

	for _, p := range memory.SeedPlayers() {
		err := exec("player "+p.ID, `
INSERT INTO players (public_id, division_public_id, season_public_id, first_name, last_name, birth_date, gender, family_id, draft_number, travel_player, returning_player)
VALUES (:public_id, :division_public_id, :season_public_id, :first_name, :last_name, :birth_date, :gender, :family_id, :draft_number, :travel_player, :returning_player)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":          p.ID,
			"division_public_id": p.DivisionID,
			"season_public_id":   p.SeasonID,
			"first_name":         p.FirstName,
			"last_name":          p.LastName,
			"birth_date":         p.BirthDate.UTC(),
			"gender":             string(p.Gender),
			"family_id":          nullString(p.FamilyID),
			"draft_number":       p.DraftNumber,
			"travel_player":      p.TravelPlayer,
			"returning_player":   p.Returning,
		})
		if err != nil {
			return err
		}

		for _, v := range p.Volunteers {
			err := exec("volunteer "+v.ID, `
INSERT INTO volunteers (public_id, name, email, phone, family_id, declared_role, derived_role)
VALUES (:public_id, :name, :email, :phone, :family_id, :declared_role, :derived_role)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
				"public_id":     v.ID,
				"name":          v.Name,
				"email":         v.Email,
				"phone":         v.Phone,
				"family_id":     nullString(v.FamilyID),
				"declared_role": string(v.DeclaredRole),
				"derived_role":  string(v.DerivedRole),
			})
			if err != nil {
				return err
			}
			err = exec("player volunteer "+p.ID+"/"+v.ID, `
INSERT INTO player_volunteers (player_public_id, volunteer_public_id)
VALUES (:player_public_id, :volunteer_public_id)
ON CONFLICT DO NOTHING`, map[string]any{
				"player_public_id":    p.ID,
				"volunteer_public_id": v.ID,
			})
			if err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
