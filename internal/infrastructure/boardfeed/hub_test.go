package boardfeed

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/youth-league/internal/domain/draft"
	"github.com/riskibarqy/youth-league/internal/platform/logging"
)

var feedKey = draft.SessionKey{DivisionID: "u10", SeasonID: "2026-spring"}

func recvFrame(t *testing.T, ch <-chan Frame, within time.Duration) Frame {
	t.Helper()
	select {
	case f, ok := <-ch:
		if !ok {
			t.Fatalf("feed outbox closed unexpectedly")
		}
		return f
	case <-time.After(within):
		t.Fatalf("timed out waiting for frame")
		return Frame{}
	}
}

func waitClosed(t *testing.T, ch <-chan Frame, within time.Duration) {
	t.Helper()
	deadline := time.After(within)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("expected outbox to be closed")
		}
	}
}

func TestHub_PublishReachesSubscribersInOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub(ctx, 4, logging.NewNop())

	out, leave := h.Subscribe(feedKey, "board-1")
	defer leave()
	if n := h.Clients(feedKey); n != 1 {
		t.Fatalf("expected 1 client, got %d", n)
	}

	h.Publish(feedKey, draft.State{Status: draft.StatusInProgress, Round: 1}, []draft.Event{{Type: draft.EvtDraftStarted, Round: 1}})
	h.Publish(feedKey, draft.State{Status: draft.StatusInProgress, Round: 2}, []draft.Event{{Type: draft.EvtRoundAdvanced, Round: 2}})

	first := recvFrame(t, out, time.Second)
	second := recvFrame(t, out, time.Second)
	if first.Version != 1 || second.Version != 2 {
		t.Fatalf("expected versions 1,2 got %d,%d", first.Version, second.Version)
	}
	if second.State.Round != 2 || second.Events[0].Type != draft.EvtRoundAdvanced {
		t.Fatalf("unexpected second frame: %+v", second)
	}
}

func TestHub_LateSubscriberGetsLatestFrame(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub(ctx, 4, logging.NewNop())

	h.Publish(feedKey, draft.State{Round: 1}, nil)
	h.Publish(feedKey, draft.State{Round: 3}, nil)

	out, leave := h.Subscribe(feedKey, "board-late")
	defer leave()
	got := recvFrame(t, out, time.Second)
	if got.Version != 2 || got.State.Round != 3 {
		t.Fatalf("expected latest frame v2 round 3, got v%d round %d", got.Version, got.State.Round)
	}

	other := draft.SessionKey{DivisionID: "u12", SeasonID: "2026-spring"}
	h.Publish(other, draft.State{Round: 1}, nil)
	select {
	case f := <-out:
		t.Fatalf("frame from another session leaked: %+v", f)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub(ctx, 1, logging.NewNop())

	out, leave := h.Subscribe(feedKey, "slow")
	defer leave()

	for round := 1; round <= 3; round++ {
		h.Publish(feedKey, draft.State{Round: round}, nil)
	}
	waitClosed(t, out, time.Second)
	if n := h.Clients(feedKey); n != 0 {
		t.Fatalf("expected slow client removed, got %d clients", n)
	}
}

func TestHub_LeaveAndShutdownCloseOutbox(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub(ctx, 4, logging.NewNop())

	out, leave := h.Subscribe(feedKey, "board-1")
	leave()
	waitClosed(t, out, time.Second)

	out2, _ := h.Subscribe(feedKey, "board-2")
	cancel()
	waitClosed(t, out2, time.Second)

	closed, _ := h.Subscribe(feedKey, "after-close")
	waitClosed(t, closed, time.Second)
}

func TestHub_SubscribeRacingCloseNeverHangs(t *testing.T) {
	h := NewHub(context.Background(), 1, logging.NewNop())

	const clients = 64
	outs := make(chan (<-chan Frame), clients)
	var wg sync.WaitGroup
	for i := range clients {
		wg.Go(func() {
			out, _ := h.Subscribe(feedKey, fmt.Sprintf("board-%d", i))
			outs <- out
		})
	}
	h.Close()
	wg.Wait()
	close(outs)

	for out := range outs {
		waitClosed(t, out, time.Second)
	}
}

func TestHub_SnapshotOnlyBeforeFirstPublish(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub(ctx, 4, logging.NewNop())

	stored := draft.State{Status: draft.StatusSetup, DivisionID: "u10"}
	out, leave := h.SubscribeWithSnapshot(feedKey, "board-1", stored)
	defer leave()

	first := recvFrame(t, out, time.Second)
	if first.Version != 0 || first.State.Status != draft.StatusSetup {
		t.Fatalf("expected version 0 snapshot, got %+v", first)
	}

	h.Publish(feedKey, draft.State{Status: draft.StatusInProgress, Round: 1}, nil)
	recvFrame(t, out, time.Second)

	late, leaveLate := h.SubscribeWithSnapshot(feedKey, "board-2", stored)
	defer leaveLate()
	got := recvFrame(t, late, time.Second)
	if got.Version != 1 || got.State.Status != draft.StatusInProgress {
		t.Fatalf("expected published frame instead of stale snapshot, got %+v", got)
	}
}
