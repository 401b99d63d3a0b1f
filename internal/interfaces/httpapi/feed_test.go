package httpapi

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/coder/websocket"

	"github.com/riskibarqy/youth-league/internal/domain/draft"
)

func dialFeed(t *testing.T, h *apiHarness) (*websocket.Conn, *http.Response, error) {
	t.Helper()

	ctx, cancel := context.WithTimeout(t.Context(), 2*time.Second)
	defer cancel()
	url := "ws" + strings.TrimPrefix(h.server.URL, "http") + seedDraftPath + "/feed"
	return websocket.Dial(ctx, url, nil)
}

func readFrame(t *testing.T, conn *websocket.Conn) frameDTO {
	t.Helper()

	ctx, cancel := context.WithTimeout(t.Context(), 2*time.Second)
	defer cancel()
	_, payload, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("read frame: %v", err)
	}
	var frame frameDTO
	if err := sonic.Unmarshal(payload, &frame); err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	return frame
}

func TestFeed_StreamsSnapshotThenCommands(t *testing.T) {
	h := newAPIHarness(t, 2)
	h.mustDo(t, http.MethodPost, seedDraftPath, "")

	conn, _, err := dialFeed(t, h)
	if err != nil {
		t.Fatalf("dial feed: %v", err)
	}
	defer conn.CloseNow()

	snapshot := readFrame(t, conn)
	if snapshot.Version != 0 || snapshot.Session.Status != string(draft.StatusSetup) || len(snapshot.Session.Pool) != 9 {
		t.Fatalf("expected setup snapshot with the full pool, got version=%d status=%s pool=%d",
			snapshot.Version, snapshot.Session.Status, len(snapshot.Session.Pool))
	}

	h.mustDo(t, http.MethodPost, seedDraftPath+"/start", `{"managers":[{"name":"Coach Dana","team_id":"u10-hawks"},{"name":"Coach Eli","team_id":"u10-otters"}]}`)
	h.mustDo(t, http.MethodPost, seedDraftPath+"/picks", `{"manager_id":"u10-hawks","player":"p-04"}`)

	started := readFrame(t, conn)
	if started.Version != 1 || len(started.Events) == 0 || started.Events[0].Type != string(draft.EvtDraftStarted) {
		t.Fatalf("unexpected start frame: %+v", started)
	}
	picked := readFrame(t, conn)
	if picked.Version != 2 || picked.Session.Managers[0].Picks[0].PlayerID != "p-04" {
		t.Fatalf("unexpected pick frame: %+v", picked)
	}

	_ = conn.Close(websocket.StatusNormalClosure, "done")
}

func TestFeed_RejectsUnknownSessionAndFullPool(t *testing.T) {
	h := newAPIHarness(t, 1)

	_, resp, err := dialFeed(t, h)
	if err == nil || resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 before the session is opened, got resp=%v err=%v", resp, err)
	}

	h.mustDo(t, http.MethodPost, seedDraftPath, "")
	first, _, err := dialFeed(t, h)
	if err != nil {
		t.Fatalf("dial first feed: %v", err)
	}
	defer first.CloseNow()
	readFrame(t, first)

	_, resp, err = dialFeed(t, h)
	if err == nil || resp == nil || resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 once the feed pool is full, got resp=%v err=%v", resp, err)
	}
}
