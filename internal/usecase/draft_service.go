package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/youth-league/internal/domain/draft"
	"github.com/riskibarqy/youth-league/internal/domain/player"
	"github.com/riskibarqy/youth-league/internal/domain/team"
	"github.com/riskibarqy/youth-league/internal/domain/volunteer"
	idgen "github.com/riskibarqy/youth-league/internal/platform/id"
	"github.com/riskibarqy/youth-league/internal/platform/logging"
)

// ManagerInput is one seat entered by the operator at draft start.
type ManagerInput struct {
	Name   string
	TeamID string
}

// DraftResult is the session after an accepted command and what changed.
type DraftResult struct {
	State  draft.State
	Events []draft.Event
	Commit *CommitReport
}

// BoardPublisher pushes accepted changes to live board displays.
type BoardPublisher interface {
	Publish(key draft.SessionKey, state draft.State, events []draft.Event)
}

type DraftService struct {
	playerRepo   player.Repository
	teamRepo     team.Repository
	sessions     draft.SessionRepository
	committer    *CommitCoordinator
	publisher    BoardPublisher
	idGen        idgen.Generator
	logger       *logging.Logger
	bufferRounds int
	now          func() time.Time
	locks        keyedMutex
}

func NewDraftService(
	playerRepo player.Repository,
	teamRepo team.Repository,
	sessions draft.SessionRepository,
	committer *CommitCoordinator,
	publisher BoardPublisher,
	idGen idgen.Generator,
	bufferRounds int,
	logger *logging.Logger,
) *DraftService {
	if logger == nil {
		logger = logging.Default()
	}
	if bufferRounds < 0 {
		bufferRounds = draft.DefaultBufferRounds
	}

	return &DraftService{
		playerRepo:   playerRepo,
		teamRepo:     teamRepo,
		sessions:     sessions,
		committer:    committer,
		publisher:    publisher,
		idGen:        idGen,
		logger:       logger.Named("draft"),
		bufferRounds: bufferRounds,
		now:          time.Now,
	}
}

// OpenSession loads the roster snapshot into a new setup session. An existing
// session is returned unchanged.
func (s *DraftService) OpenSession(ctx context.Context, key draft.SessionKey) (result DraftResult, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.OpenSession", key)
	defer func() { endSpan(span, err) }()

	key, err = normalizeKey(key)
	if err != nil {
		return DraftResult{}, err
	}
	unlock := s.locks.lock(key.String())
	defer unlock()

	existing, exists, err := s.sessions.Get(ctx, key)
	if err != nil {
		return DraftResult{}, fmt.Errorf("get draft session: %w", err)
	}
	if exists {
		return DraftResult{State: existing}, nil
	}

	players, err := s.playerRepo.ListUndrafted(ctx, key.DivisionID, key.SeasonID)
	if err != nil {
		return DraftResult{}, fmt.Errorf("list undrafted players: %w", err)
	}
	teams, err := s.teamRepo.ListByDivision(ctx, key.DivisionID, key.SeasonID)
	if err != nil {
		return DraftResult{}, fmt.Errorf("list division teams: %w", err)
	}

	state := draft.NewState(key.DivisionID, key.SeasonID, players, teams, s.bufferRounds)
	if err := s.sessions.Save(ctx, key, state); err != nil {
		return DraftResult{}, fmt.Errorf("save draft session: %w", err)
	}

	s.logger.InfoContext(ctx, "draft session opened",
		"session", key,
		"player_count", len(players),
		"team_count", len(teams),
	)
	return DraftResult{State: state}, nil
}

func (s *DraftService) GetSession(ctx context.Context, key draft.SessionKey) (draft.State, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return draft.State{}, err
	}
	return s.load(ctx, key)
}

// DiscardSession drops a session that has not started or is already committed.
func (s *DraftService) DiscardSession(ctx context.Context, key draft.SessionKey) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}
	unlock := s.locks.lock(key.String())
	defer unlock()

	state, err := s.load(ctx, key)
	if err != nil {
		return err
	}
	if state.Status != draft.StatusSetup && !state.Committed() {
		return fmt.Errorf("%w: draft is %s; cancel it before discarding", ErrConflict, state.Status)
	}
	if err := s.sessions.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete draft session: %w", err)
	}

	s.logger.InfoContext(ctx, "draft session discarded", "session", key)
	return nil
}

// Start names the seats and opens round 1. Seats bound to a team use the team
// id; the rest get a temporary id.
func (s *DraftService) Start(ctx context.Context, key draft.SessionKey, managers []ManagerInput) (DraftResult, error) {
	setups := make([]draft.ManagerSetup, 0, len(managers))
	for _, m := range managers {
		teamID := strings.TrimSpace(m.TeamID)
		id := teamID
		if id == "" {
			var err error
			id, err = s.idGen.NewID()
			if err != nil {
				return DraftResult{}, fmt.Errorf("generate manager id: %w", err)
			}
		}
		setups = append(setups, draft.ManagerSetup{ID: id, Name: m.Name, TeamID: teamID})
	}
	return s.dispatch(ctx, key, draft.Command{Type: draft.CmdStart, Managers: setups})
}

func (s *DraftService) Cancel(ctx context.Context, key draft.SessionKey) (DraftResult, error) {
	return s.dispatch(ctx, key, draft.Command{Type: draft.CmdCancel})
}

func (s *DraftService) Pick(ctx context.Context, key draft.SessionKey, managerID, designator string) (DraftResult, error) {
	return s.dispatch(ctx, key, draft.Command{
		Type:       draft.CmdPick,
		ManagerID:  strings.TrimSpace(managerID),
		Designator: designator,
	})
}

func (s *DraftService) AssignVolunteer(ctx context.Context, key draft.SessionKey, volunteerID string, role volunteer.Role) (DraftResult, error) {
	return s.dispatch(ctx, key, draft.Command{
		Type:        draft.CmdAssignVolunteer,
		VolunteerID: strings.TrimSpace(volunteerID),
		Role:        role,
	})
}

func (s *DraftService) DeclineVolunteer(ctx context.Context, key draft.SessionKey, volunteerID string) (DraftResult, error) {
	return s.dispatch(ctx, key, draft.Command{
		Type:        draft.CmdDeclineVolunteer,
		VolunteerID: strings.TrimSpace(volunteerID),
	})
}

func (s *DraftService) SkipAssignment(ctx context.Context, key draft.SessionKey) (DraftResult, error) {
	return s.dispatch(ctx, key, draft.Command{Type: draft.CmdSkipAssignment})
}

func (s *DraftService) RemovePlayer(ctx context.Context, key draft.SessionKey, managerID, playerID string) (DraftResult, error) {
	return s.dispatch(ctx, key, draft.Command{
		Type:      draft.CmdRemovePlayer,
		ManagerID: strings.TrimSpace(managerID),
		PlayerID:  strings.TrimSpace(playerID),
	})
}

// MovePlayer relocates a player or, when the player's volunteers hold slots
// on the source manager, stages the move until ResolveMove.
func (s *DraftService) MovePlayer(ctx context.Context, key draft.SessionKey, fromManagerID, toManagerID, playerID string) (DraftResult, error) {
	return s.dispatch(ctx, key, draft.Command{
		Type:        draft.CmdStageMove,
		ManagerID:   strings.TrimSpace(fromManagerID),
		ToManagerID: strings.TrimSpace(toManagerID),
		PlayerID:    strings.TrimSpace(playerID),
	})
}

func (s *DraftService) ResolveMove(ctx context.Context, key draft.SessionKey, decision draft.MoveDecision) (DraftResult, error) {
	return s.dispatch(ctx, key, draft.Command{Type: draft.CmdResolveMove, Decision: decision})
}

func (s *DraftService) BindTeam(ctx context.Context, key draft.SessionKey, managerID, teamID string) (DraftResult, error) {
	return s.dispatch(ctx, key, draft.Command{
		Type:      draft.CmdBindTeam,
		ManagerID: strings.TrimSpace(managerID),
		TeamID:    teamID,
	})
}

// Order returns the managers in snake order for a round.
func (s *DraftService) Order(ctx context.Context, key draft.SessionKey, round int) ([]draft.Manager, error) {
	if round < 1 {
		return nil, fmt.Errorf("%w: round must be >= 1", ErrInvalidInput)
	}
	state, err := s.GetSession(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(state.Managers) == 0 {
		return nil, fmt.Errorf("%w: draft has no managers yet", ErrConflict)
	}

	out := make([]draft.Manager, 0, len(state.Managers))
	for _, id := range state.Order(round) {
		m, _ := state.Manager(id)
		out = append(out, m)
	}
	return out, nil
}

// Commit writes the completed draft to the roster store, then marks the
// session committed. A failed commit leaves the session as it was.
func (s *DraftService) Commit(ctx context.Context, key draft.SessionKey) (result DraftResult, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.Commit", key)
	defer func() { endSpan(span, err) }()

	key, err = normalizeKey(key)
	if err != nil {
		return DraftResult{}, err
	}
	unlock := s.locks.lock(key.String())
	defer unlock()

	state, err := s.load(ctx, key)
	if err != nil {
		return DraftResult{}, err
	}
	if err := draftError(state.CommitReady()); err != nil {
		return DraftResult{}, err
	}

	report, err := s.committer.Run(ctx, key, state)
	if err != nil {
		return DraftResult{}, err
	}

	next, events, err := draft.Apply(state, draft.Command{Type: draft.CmdMarkCommitted, At: s.now().UTC()})
	if err != nil {
		return DraftResult{}, draftError(err)
	}
	if err := s.sessions.Save(ctx, key, next); err != nil {
		return DraftResult{}, fmt.Errorf("save committed draft session: %w", err)
	}
	s.publish(key, next, events)

	s.logger.InfoContext(ctx, "draft committed",
		"session", key,
		"committed_managers", len(report.Committed),
		"skipped_managers", len(report.Skipped),
	)
	return DraftResult{State: next, Events: events, Commit: &report}, nil
}

func (s *DraftService) dispatch(ctx context.Context, key draft.SessionKey, cmd draft.Command) (result DraftResult, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService."+string(cmd.Type), key)
	defer func() { endSpan(span, err) }()

	key, err = normalizeKey(key)
	if err != nil {
		return DraftResult{}, err
	}
	unlock := s.locks.lock(key.String())
	defer unlock()

	state, err := s.load(ctx, key)
	if err != nil {
		return DraftResult{}, err
	}

	cmd.At = s.now().UTC()
	next, events, applyErr := draft.Apply(state, cmd)
	if applyErr != nil {
		s.logger.InfoContext(ctx, "draft command rejected", "session", key, "command", string(cmd.Type), "error", applyErr)
		return DraftResult{}, draftError(applyErr)
	}
	if err := s.sessions.Save(ctx, key, next); err != nil {
		return DraftResult{}, fmt.Errorf("save draft session: %w", err)
	}
	s.publish(key, next, events)

	s.logger.DebugContext(ctx, "draft command applied",
		"session", key,
		"command", string(cmd.Type),
		"status", string(next.Status),
		"round", next.Round,
		"event_count", len(events),
	)
	return DraftResult{State: next, Events: events}, nil
}

func (s *DraftService) load(ctx context.Context, key draft.SessionKey) (draft.State, error) {
	state, exists, err := s.sessions.Get(ctx, key)
	if err != nil {
		return draft.State{}, fmt.Errorf("get draft session: %w", err)
	}
	if !exists {
		return draft.State{}, fmt.Errorf("%w: draft session=%s", ErrNotFound, key)
	}
	return state, nil
}

func (s *DraftService) publish(key draft.SessionKey, state draft.State, events []draft.Event) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(key, state, events)
}

func normalizeKey(key draft.SessionKey) (draft.SessionKey, error) {
	key.DivisionID = strings.TrimSpace(key.DivisionID)
	key.SeasonID = strings.TrimSpace(key.SeasonID)
	if key.DivisionID == "" || key.SeasonID == "" {
		return draft.SessionKey{}, fmt.Errorf("%w: division id and season id are required", ErrInvalidInput)
	}
	return key, nil
}

// keyedMutex serializes commands per draft session.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
