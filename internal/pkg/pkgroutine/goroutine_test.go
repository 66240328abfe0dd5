package pkgroutine

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewManagerDefaultMax(t *testing.T) {
	mgr := NewManager(0)
	if got := cap(mgr.sema); got != DefaultMaxGoroutine {
		t.Fatalf("expected cap %d, got %d", DefaultMaxGoroutine, got)
	}
}

func TestManagerCollectsErrors(t *testing.T) {
	mgr := NewManager(2)
	errOne := errors.New("one")
	errTwo := errors.New("two")

	mgr.Go(context.Background(), func(ctx context.Context) error {
		return errOne
	})
	mgr.Go(context.Background(), func(ctx context.Context) error {
		return errTwo
	})

	joined := mgr.Wait()
	if joined == nil {
		t.Fatalf("expected errors")
	}
	if !errors.Is(joined, errOne) {
		t.Fatalf("expected errOne to be present")
	}
	if !errors.Is(joined, errTwo) {
		t.Fatalf("expected errTwo to be present")
	}
}

func TestManagerRecoversPanics(t *testing.T) {
	mgr := NewManager(1)
	mgr.Go(context.Background(), func(ctx context.Context) error {
		panic("boom")
	})

	err := mgr.Wait()
	if !errors.Is(err, ErrPanic) {
		t.Fatalf("expected ErrPanic, got %v", err)
	}
}

func TestManagerWaitContextTimesOut(t *testing.T) {
	mgr := NewManager(1)
	release := make(chan struct{})
	defer close(release)

	mgr.Go(context.Background(), func(ctx context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := mgr.WaitContext(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestManagerSkipsCanceledContext(t *testing.T) {
	mgr := NewManager(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	mgr.Go(ctx, func(ctx context.Context) error {
		ran = true
		return nil
	})

	if err := mgr.Wait(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if ran {
		t.Fatalf("expected task to be skipped")
	}
}
