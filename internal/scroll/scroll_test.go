package scroll

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
)

// fakeFeed grows by one item per LoadMore up to a ceiling.
type fakeFeed struct {
	count     int
	ceiling   int
	loadCalls int
	countErr  error
}

func (f *fakeFeed) Count() (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.count, nil
}

func (f *fakeFeed) LoadMore() error {
	f.loadCalls++
	if f.count < f.ceiling {
		f.count++
	}
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunReachesTarget(t *testing.T) {
	feed := &fakeFeed{ceiling: 100}
	got, err := Run(context.Background(), feed, Options{
		Target:        10,
		MaxIdleRounds: 2,
		Pause:         time.Millisecond,
	}, discard())
	if err != nil {
		t.Fatal(err)
	}
	if got < 10 {
		t.Errorf("expected count >= 10, got %d", got)
	}
}

func TestRunConvergesOnStalledFeed(t *testing.T) {
	// Feed tops out at 5; a target of 10 must stop via the idle cap, not hang.
	feed := &fakeFeed{ceiling: 5}

	done := make(chan struct{})
	var got int
	var err error
	go func() {
		got, err = Run(context.Background(), feed, Options{
			Target:        10,
			MaxIdleRounds: 2,
			Pause:         time.Millisecond,
		}, discard())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("scroller did not terminate on a stalled feed")
	}

	if err != nil {
		t.Fatal(err)
	}
	if got != 5 {
		t.Errorf("expected final count 5, got %d", got)
	}
}

func TestRunImmediateTarget(t *testing.T) {
	feed := &fakeFeed{count: 7, ceiling: 7}
	got, err := Run(context.Background(), feed, Options{
		Target:        5,
		MaxIdleRounds: 2,
		Pause:         time.Millisecond,
	}, discard())
	if err != nil {
		t.Fatal(err)
	}
	if got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
	if feed.loadCalls != 0 {
		t.Errorf("expected no LoadMore when target already met, got %d", feed.loadCalls)
	}
}

func TestRunCountError(t *testing.T) {
	wantErr := errors.New("stale container")
	feed := &fakeFeed{countErr: wantErr}
	if _, err := Run(context.Background(), feed, Options{
		Target:        5,
		MaxIdleRounds: 2,
		Pause:         time.Millisecond,
	}, discard()); !errors.Is(err, wantErr) {
		t.Errorf("expected count error to propagate, got %v", err)
	}
}

func TestRunContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	feed := &fakeFeed{ceiling: 100}
	if _, err := Run(ctx, feed, Options{
		Target:        10,
		MaxIdleRounds: 2,
		Pause:         time.Second,
	}, discard()); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
