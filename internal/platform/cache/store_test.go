package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_SharesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	release := make(chan struct{})

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "roster", nil
	}

	const workers = 16
	var wg sync.WaitGroup
	results := make(chan any, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := store.GetOrLoad(context.Background(), "draft:snapshot:div-u10:2026", loader)
			if err != nil {
				results <- err
				return
			}
			results <- v
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	for v := range results {
		if v != "roster" {
			t.Fatalf("unexpected result: %v", v)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_ExpiresEntries(t *testing.T) {
	store := NewStore(time.Minute)
	now := time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "k", 1)
	if _, ok := store.Get(context.Background(), "k"); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestStore_DoesNotCacheErrors(t *testing.T) {
	store := NewStore(time.Minute)
	var calls int
	loader := func(context.Context) (any, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("db down")
		}
		return "ok", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err == nil {
		t.Fatalf("expected first load to fail")
	}
	v, err := store.GetOrLoad(context.Background(), "k", loader)
	if err != nil || v != "ok" {
		t.Fatalf("expected retry to load, got %v %v", v, err)
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()
	store.Set(ctx, "players:div-u10:2026", 1)
	store.Set(ctx, "players:div-u12:2026", 2)
	store.Set(ctx, "teams:div-u10:2026", 3)

	store.DeletePrefix(ctx, "players:")

	if _, ok := store.Get(ctx, "players:div-u10:2026"); ok {
		t.Fatalf("expected players entries dropped")
	}
	if _, ok := store.Get(ctx, "teams:div-u10:2026"); !ok {
		t.Fatalf("expected teams entry kept")
	}
}
