package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/youth-league/internal/domain/draft"
	qb "github.com/riskibarqy/youth-league/internal/platform/querybuilder"
)

// SessionRepository persists each draft session as one JSONB document so a
// restart resumes the board exactly where it stopped.
type SessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Get(ctx context.Context, key draft.SessionKey) (draft.State, bool, error) {
	query, args, err := qb.Select("division_public_id", "season_public_id", "status", "state", "updated_at").
		From("draft_sessions").
		Where(
			qb.Eq("division_public_id", key.DivisionID),
			qb.Eq("season_public_id", key.SeasonID),
		).
		ToSQL()
	if err != nil {
		return draft.State{}, false, fmt.Errorf("build select draft session query: %w", err)
	}

	var row draftSessionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return draft.State{}, false, nil
		}
		return draft.State{}, false, fmt.Errorf("select draft session %s: %w", key, err)
	}

	var state draft.State
	if err := json.Unmarshal(row.State, &state); err != nil {
		return draft.State{}, false, fmt.Errorf("decode draft session %s: %w", key, err)
	}
	return state, true, nil
}

func (r *SessionRepository) Save(ctx context.Context, key draft.SessionKey, state draft.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode draft session %s: %w", key, err)
	}

	query, args, err := qb.InsertInto("draft_sessions").
		Columns("division_public_id", "season_public_id", "status", "state").
		Values(key.DivisionID, key.SeasonID, string(state.Status), payload).
		Suffix(`ON CONFLICT (division_public_id, season_public_id) DO UPDATE
SET status = EXCLUDED.status, state = EXCLUDED.state, updated_at = NOW()`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert draft session query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert draft session %s: %w", key, err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, key draft.SessionKey) error {
	query, args, err := qb.DeleteFrom("draft_sessions").
		Where(
			qb.Eq("division_public_id", key.DivisionID),
			qb.Eq("season_public_id", key.SeasonID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete draft session query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete draft session %s: %w", key, err)
	}
	return nil
}
