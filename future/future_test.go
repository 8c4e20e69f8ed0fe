package future

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRun_Resolves(t *testing.T) {
	f := Run(context.Background(), func(_ context.Context) (int, error) {
		return 42, nil
	})

	v, err := f.Await(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Errorf("expected 42, got %d", v)
	}
}

func TestRun_Rejects(t *testing.T) {
	boom := errors.New("boom")
	f := Run(context.Background(), func(_ context.Context) (int, error) {
		return 0, boom
	})

	_, err := f.Await(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("expected original error, got %v", err)
	}
}

func TestCancel_PropagatesToComputation(t *testing.T) {
	started := make(chan struct{})
	f := Run(context.Background(), func(ctx context.Context) (int, error) {
		close(started)
		<-ctx.Done()
		return 0, ctx.Err()
	})

	<-started
	f.Cancel()
	f.Cancel() // idempotent

	_, err := f.Await(context.Background())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestAwait_CallerContext(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	f := Run(context.Background(), func(_ context.Context) (int, error) {
		<-block
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline error, got %v", err)
	}
}

func TestParentContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	f := Run(ctx, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})

	cancel()
	_, err := f.Await(context.Background())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestResolvedAndRejected(t *testing.T) {
	v, err := Resolved("ok").Await(context.Background())
	if err != nil || v != "ok" {
		t.Errorf("expected ok, got %q err %v", v, err)
	}

	boom := errors.New("boom")
	_, err = Rejected[string](boom).Await(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}

	select {
	case <-Resolved(1).Done():
	default:
		t.Error("resolved future should report Done immediately")
	}
}
