package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/youth-league/internal/config"
	"github.com/riskibarqy/youth-league/internal/domain/draft"
	"github.com/riskibarqy/youth-league/internal/domain/player"
	"github.com/riskibarqy/youth-league/internal/domain/team"
	"github.com/riskibarqy/youth-league/internal/domain/volunteer"
	"github.com/riskibarqy/youth-league/internal/infrastructure/boardfeed"
	cacherepo "github.com/riskibarqy/youth-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/youth-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/youth-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/youth-league/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/youth-league/internal/platform/cache"
	"github.com/riskibarqy/youth-league/internal/platform/database"
	idgen "github.com/riskibarqy/youth-league/internal/platform/id"
	"github.com/riskibarqy/youth-league/internal/platform/logging"
	"github.com/riskibarqy/youth-league/internal/platform/resilience"
	"github.com/riskibarqy/youth-league/internal/usecase"
)

// App owns the HTTP server and the resources behind it.
type App struct {
	Server *http.Server

	hub    *boardfeed.Hub
	pool   *ants.Pool
	db     *sqlx.DB
	logger *logging.Logger
}

type stores struct {
	players     player.Repository
	teams       team.Repository
	volunteers  volunteer.Repository
	sessions    draft.SessionRepository
	checkpoints draft.CheckpointRepository
	db          *sqlx.DB
}

// New wires the draft engine for the configured store driver. The returned
// App must be closed after the server stops.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	st, err := openStores(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.CacheEnabled {
		st.players = cacherepo.NewPlayerRepository(st.players, basecache.NewStore(cfg.CacheTTL))
		st.teams = cacherepo.NewTeamRepository(st.teams, basecache.NewStore(cfg.CacheTTL))
	}
	if !cfg.DraftCheckpointsEnabled {
		st.checkpoints = nil
	}

	breaker := newStoreBreaker(cfg, logger)

	pool, err := ants.NewPool(cfg.FeedMaxClients,
		ants.WithNonblocking(true),
		ants.WithPanicHandler(func(rec any) {
			logger.Error("feed writer panicked", "panic", rec)
		}),
	)
	if err != nil {
		closeDB(st.db, logger)
		return nil, fmt.Errorf("create feed pool: %w", err)
	}

	hub := boardfeed.NewHub(ctx, cfg.FeedOutboxSize, logger)

	committer := usecase.NewCommitCoordinator(st.players, st.volunteers, st.teams, st.checkpoints, breaker, logger)
	draftService := usecase.NewDraftService(
		st.players,
		st.teams,
		st.sessions,
		committer,
		hub,
		idgen.NewUUIDGenerator("seat-"),
		cfg.DraftBufferRounds,
		logger,
	)

	handler := httpapi.NewHandler(draftService, logger)
	feed := httpapi.NewFeed(draftService, hub, pool, cfg.FeedOriginPatterns, logger)
	router := httpapi.NewRouter(handler, feed, logger, cfg.CORSAllowedOrigins)

	logger.Info("draft engine wired",
		"store", cfg.StoreDriver,
		"cache_enabled", cfg.CacheEnabled,
		"checkpoints_enabled", cfg.DraftCheckpointsEnabled,
		"buffer_rounds", cfg.DraftBufferRounds,
		"feed_max_clients", cfg.FeedMaxClients,
	)

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		hub:    hub,
		pool:   pool,
		db:     st.db,
		logger: logger,
	}, nil
}

// Close stops the board feed and releases the writer pool and database.
func (a *App) Close() error {
	a.hub.Close()
	a.pool.Release()
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("close roster store: %w", err)
		}
	}
	return nil
}

func openStores(ctx context.Context, cfg config.Config) (stores, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err := database.Open(ctx, database.Options{
			URL:                         cfg.DBURL,
			DisablePreparedBinaryResult: cfg.DBDisablePreparedBinary,
		})
		if err != nil {
			return stores{}, err
		}
		return stores{
			players:     postgres.NewPlayerRepository(db),
			teams:       postgres.NewTeamRepository(db),
			volunteers:  postgres.NewVolunteerRepository(db),
			sessions:    postgres.NewSessionRepository(db),
			checkpoints: postgres.NewCheckpointRepository(db),
			db:          db,
		}, nil
	case config.StoreMemory, "":
		return stores{
			players:     memory.NewPlayerRepository(memory.SeedPlayers()),
			teams:       memory.NewTeamRepository(memory.SeedTeams()),
			volunteers:  memory.NewVolunteerRepository(),
			sessions:    memory.NewSessionRepository(),
			checkpoints: memory.NewCheckpointRepository(),
		}, nil
	default:
		return stores{}, errors.New("unsupported store driver: " + cfg.StoreDriver)
	}
}

func newStoreBreaker(cfg config.Config, logger *logging.Logger) *resilience.CircuitBreaker {
	breaker := resilience.NewCircuitBreaker(resilience.NormalizeCircuitBreakerConfig(resilience.CircuitBreakerConfig{
		Enabled:          cfg.StoreCircuitEnabled,
		FailureThreshold: cfg.StoreCircuitFailureCount,
		OpenTimeout:      cfg.StoreCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.StoreCircuitHalfOpenMaxReq,
	}))
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("roster store circuit changed", "from", string(from), "to", string(to))
	})
	return breaker
}

func closeDB(db *sqlx.DB, logger *logging.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Warn("close roster store failed", "error", err)
	}
}
