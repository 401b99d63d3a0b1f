package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/youth-league/internal/domain/draft"
	qb "github.com/riskibarqy/youth-league/internal/platform/querybuilder"
)

type CheckpointRepository struct {
	db *sqlx.DB
}

func NewCheckpointRepository(db *sqlx.DB) *CheckpointRepository {
	return &CheckpointRepository{db: db}
}

func (r *CheckpointRepository) List(ctx context.Context, key draft.SessionKey) ([]draft.Checkpoint, error) {
	query, args, err := qb.Select("division_public_id", "season_public_id", "manager_id", "team_public_id", "committed_at").
		From("draft_commit_checkpoints").
		Where(
			qb.Eq("division_public_id", key.DivisionID),
			qb.Eq("season_public_id", key.SeasonID),
		).
		OrderBy("committed_at", "manager_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select commit checkpoints query: %w", err)
	}

	var rows []commitCheckpointTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select commit checkpoints %s: %w", key, err)
	}

	out := make([]draft.Checkpoint, 0, len(rows))
	for _, row := range rows {
		out = append(out, draft.Checkpoint{
			Key:         draft.SessionKey{DivisionID: row.DivisionID, SeasonID: row.SeasonID},
			ManagerID:   row.ManagerID,
			TeamID:      row.TeamID,
			CommittedAt: row.CommittedAt,
		})
	}
	return out, nil
}

func (r *CheckpointRepository) Save(ctx context.Context, cp draft.Checkpoint) error {
	query, args, err := qb.InsertInto("draft_commit_checkpoints").
		Columns("division_public_id", "season_public_id", "manager_id", "team_public_id", "committed_at").
		Values(cp.Key.DivisionID, cp.Key.SeasonID, cp.ManagerID, cp.TeamID, cp.CommittedAt).
		Suffix(`ON CONFLICT (division_public_id, season_public_id, manager_id) DO UPDATE
SET team_public_id = EXCLUDED.team_public_id, committed_at = EXCLUDED.committed_at`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert commit checkpoint query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert commit checkpoint %s/%s: %w", cp.Key, cp.ManagerID, err)
	}
	return nil
}

func (r *CheckpointRepository) Clear(ctx context.Context, key draft.SessionKey) error {
	query, args, err := qb.DeleteFrom("draft_commit_checkpoints").
		Where(
			qb.Eq("division_public_id", key.DivisionID),
			qb.Eq("season_public_id", key.SeasonID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete commit checkpoints query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete commit checkpoints %s: %w", key, err)
	}
	return nil
}
