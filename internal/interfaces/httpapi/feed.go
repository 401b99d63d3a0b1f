package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/youth-league/internal/infrastructure/boardfeed"
	"github.com/riskibarqy/youth-league/internal/platform/logging"
	"github.com/riskibarqy/youth-league/internal/usecase"
)

const defaultFeedWriteTimeout = 3 * time.Second

type frameDTO struct {
	Type       string     `json:"type"`
	DivisionID string     `json:"division_id"`
	SeasonID   string     `json:"season_id"`
	Version    uint64     `json:"version"`
	Session    sessionDTO `json:"session"`
	Events     []eventDTO `json:"events"`
}

// Feed streams board frames to read-only displays over a websocket. Each
// connection's writer runs on the shared pool; a full pool turns new
// connections away.
type Feed struct {
	draftService   *usecase.DraftService
	hub            *boardfeed.Hub
	pool           *ants.Pool
	originPatterns []string
	writeTimeout   time.Duration
	logger         *logging.Logger
}

func NewFeed(
	draftService *usecase.DraftService,
	hub *boardfeed.Hub,
	pool *ants.Pool,
	originPatterns []string,
	logger *logging.Logger,
) *Feed {
	if logger == nil {
		logger = logging.Default()
	}
	return &Feed{
		draftService:   draftService,
		hub:            hub,
		pool:           pool,
		originPatterns: originPatterns,
		writeTimeout:   defaultFeedWriteTimeout,
		logger:         logger.Named("feed"),
	}
}

func (f *Feed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Feed.ServeHTTP")
	defer span.End()

	key, ok := sessionKeyFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: draft session key is missing from request context", usecase.ErrInvalidInput))
		return
	}
	state, err := f.draftService.GetSession(ctx, key)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if f.pool.Free() == 0 {
		writeError(ctx, w, fmt.Errorf("%w: board feed is at capacity (%d clients)", usecase.ErrDependencyUnavailable, f.pool.Cap()))
		return
	}

	// Feed connections outlive the server's read/write timeouts.
	rc := http.NewResponseController(w)
	_ = rc.SetReadDeadline(time.Time{})
	_ = rc.SetWriteDeadline(time.Time{})

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: f.originPatterns})
	if err != nil {
		f.logger.WarnContext(ctx, "feed upgrade failed", "session", key, "error", err)
		return
	}
	defer conn.CloseNow()

	clientID := uuid.NewString()
	frames, leave := f.hub.SubscribeWithSnapshot(key, clientID, state)
	defer leave()

	// Displays never send; CloseRead handles control frames and cancels on disconnect.
	connCtx := conn.CloseRead(ctx)

	done := make(chan struct{})
	err = f.pool.Submit(func() {
		defer close(done)
		f.pump(connCtx, conn, frames)
	})
	if err != nil {
		f.logger.WarnContext(ctx, "feed writer rejected", "session", key, "client_id", clientID, "error", err)
		_ = conn.Close(websocket.StatusTryAgainLater, "board feed is at capacity")
		return
	}

	f.logger.InfoContext(ctx, "feed client attached", "session", key, "client_id", clientID)
	<-done
	f.logger.InfoContext(ctx, "feed client detached", "session", key, "client_id", clientID)
}

func (f *Feed) pump(ctx context.Context, conn *websocket.Conn, frames <-chan boardfeed.Frame) {
	for {
		select {
		case <-ctx.Done():
			return
		case frame, ok := <-frames:
			if !ok {
				// Dropped for falling behind, or the hub is shutting down.
				_ = conn.Close(websocket.StatusGoingAway, "board feed closed")
				return
			}
			if err := f.write(ctx, conn, frame); err != nil {
				if !errors.Is(err, context.Canceled) {
					f.logger.DebugContext(ctx, "feed write failed", "session", frame.Key, "error", err)
				}
				return
			}
		}
	}
}

func (f *Feed) write(ctx context.Context, conn *websocket.Conn, frame boardfeed.Frame) error {
	payload, err := sonic.Marshal(frameDTO{
		Type:       "board",
		DivisionID: frame.Key.DivisionID,
		SeasonID:   frame.Key.SeasonID,
		Version:    frame.Version,
		Session:    sessionToDTO(frame.State),
		Events:     eventsToDTO(frame.Events),
	})
	if err != nil {
		return fmt.Errorf("encode board frame: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, f.writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, payload)
}
