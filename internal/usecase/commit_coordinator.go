package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/youth-league/internal/domain/draft"
	"github.com/riskibarqy/youth-league/internal/domain/player"
	"github.com/riskibarqy/youth-league/internal/domain/team"
	"github.com/riskibarqy/youth-league/internal/domain/volunteer"
	"github.com/riskibarqy/youth-league/internal/platform/logging"
	"github.com/riskibarqy/youth-league/internal/platform/resilience"
)

type CommitStep string

const (
	CommitStepPlayers    CommitStep = "players"
	CommitStepVolunteers CommitStep = "volunteers"
	CommitStepTeam       CommitStep = "team"
)

// CommitError names the manager a commit stopped on. Managers before it are
// fully written; a retry resumes here.
type CommitError struct {
	ManagerID   string
	ManagerName string
	TeamID      string
	Step        CommitStep
	Err         error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit stopped at manager %q (%s) during %s writes: %v", e.ManagerName, e.ManagerID, e.Step, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

// CommitReport lists managers written in this pass and managers skipped
// because an earlier pass already checkpointed them.
type CommitReport struct {
	Committed []string
	Skipped   []string
}

// CommitCoordinator writes a completed draft manager by manager, one external
// call at a time, in setup order.
type CommitCoordinator struct {
	players     player.Repository
	volunteers  volunteer.Repository
	teams       team.Repository
	checkpoints draft.CheckpointRepository
	breaker     *resilience.CircuitBreaker
	logger      *logging.Logger
	now         func() time.Time
}

// NewCommitCoordinator wires the writers. A nil checkpoint repository turns
// every retry into a full replay; a nil breaker calls the store directly.
func NewCommitCoordinator(
	players player.Repository,
	volunteers volunteer.Repository,
	teams team.Repository,
	checkpoints draft.CheckpointRepository,
	breaker *resilience.CircuitBreaker,
	logger *logging.Logger,
) *CommitCoordinator {
	if logger == nil {
		logger = logging.Default()
	}
	return &CommitCoordinator{
		players:     players,
		volunteers:  volunteers,
		teams:       teams,
		checkpoints: checkpoints,
		breaker:     breaker,
		logger:      logger.Named("commit"),
		now:         time.Now,
	}
}

func (c *CommitCoordinator) Run(ctx context.Context, key draft.SessionKey, state draft.State) (report CommitReport, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CommitCoordinator.Run", key)
	defer func() { endSpan(span, err) }()

	plan, err := state.CommitPlan()
	if err != nil {
		return CommitReport{}, draftError(err)
	}
	done, err := c.checkpointed(ctx, key)
	if err != nil {
		return CommitReport{}, err
	}

	for _, mc := range plan {
		if teamID, ok := done[mc.ManagerID]; ok && teamID == mc.TeamID {
			report.Skipped = append(report.Skipped, mc.ManagerID)
			c.logger.DebugContext(ctx, "manager already committed", "session", key, "manager_id", mc.ManagerID, "team_id", mc.TeamID)
			continue
		}

		if err := c.commitManager(ctx, mc); err != nil {
			c.logger.ErrorContext(ctx, "draft commit stopped",
				"session", key,
				"manager_id", mc.ManagerID,
				"team_id", mc.TeamID,
				"committed_so_far", len(report.Committed),
				"error", err,
			)
			return report, err
		}
		c.saveCheckpoint(ctx, key, mc)
		report.Committed = append(report.Committed, mc.ManagerID)
	}

	if c.checkpoints != nil {
		if err := c.checkpoints.Clear(ctx, key); err != nil {
			c.logger.WarnContext(ctx, "clear commit checkpoints failed", "session", key, "error", err)
		}
	}
	return report, nil
}

func (c *CommitCoordinator) commitManager(ctx context.Context, mc draft.ManagerCommit) error {
	fail := func(step CommitStep, err error) error {
		return &CommitError{
			ManagerID:   mc.ManagerID,
			ManagerName: mc.ManagerName,
			TeamID:      mc.TeamID,
			Step:        step,
			Err:         err,
		}
	}

	for _, playerID := range mc.PlayerIDs {
		err := c.write(ctx, func(ctx context.Context) error {
			return c.players.AssignTeam(ctx, playerID, mc.TeamID)
		})
		if err != nil {
			return fail(CommitStepPlayers, crerr.Wrapf(err, "assign player %s to team %s", playerID, mc.TeamID))
		}
	}

	for _, v := range mc.Volunteers {
		err := c.write(ctx, func(ctx context.Context) error {
			return c.volunteers.AssignTeamRole(ctx, v.VolunteerID, mc.TeamID, v.Role)
		})
		if err != nil {
			return fail(CommitStepVolunteers, crerr.Wrapf(err, "assign volunteer %s as %s on team %s", v.VolunteerID, v.Role, mc.TeamID))
		}
	}

	update := team.DisplayUpdate{
		TeamID:             mc.TeamID,
		ManagerName:        mc.ManagerName,
		ManagerVolunteerID: mc.ManagerVolunteerID,
	}
	if err := c.write(ctx, func(ctx context.Context) error { return c.teams.UpdateDisplay(ctx, update) }); err != nil {
		return fail(CommitStepTeam, crerr.Wrapf(err, "update team %s display", mc.TeamID))
	}
	return nil
}

func (c *CommitCoordinator) write(ctx context.Context, fn func(context.Context) error) error {
	err := c.breaker.Execute(ctx, fn)
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return fmt.Errorf("%w: roster store: %w", ErrDependencyUnavailable, err)
	}
	return err
}

func (c *CommitCoordinator) checkpointed(ctx context.Context, key draft.SessionKey) (map[string]string, error) {
	if c.checkpoints == nil {
		return nil, nil
	}
	items, err := c.checkpoints.List(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("list commit checkpoints: %w", err)
	}
	done := make(map[string]string, len(items))
	for _, cp := range items {
		done[cp.ManagerID] = cp.TeamID
	}
	return done, nil
}

// saveCheckpoint is best effort: a lost checkpoint only means the manager is
// written again on retry, and every write is keyed by id.
func (c *CommitCoordinator) saveCheckpoint(ctx context.Context, key draft.SessionKey, mc draft.ManagerCommit) {
	if c.checkpoints == nil {
		return
	}
	cp := draft.Checkpoint{
		Key:         key,
		ManagerID:   mc.ManagerID,
		TeamID:      mc.TeamID,
		CommittedAt: c.now().UTC(),
	}
	if err := c.checkpoints.Save(ctx, cp); err != nil {
		c.logger.WarnContext(ctx, "save commit checkpoint failed", "session", key, "manager_id", mc.ManagerID, "error", err)
	}
}
