package asyncx_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/arzav18/interview-prep-go/pkg/asyncx"
)

// --- All / AllSettled / Race tests ---

func TestAll_PreservesOrder(t *testing.T) {
	ctx := context.Background()

	results, err := asyncx.All(ctx,
		func(ctx context.Context) (string, error) {
			time.Sleep(40 * time.Millisecond)
			return "slow", nil
		},
		func(ctx context.Context) (string, error) {
			return "fast", nil
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0] != "slow" || results[1] != "fast" {
		t.Fatalf("order not preserved: %v", results)
	}
}

func TestAll_ReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	var finished atomic.Int32

	_, err := asyncx.All(context.Background(),
		func(ctx context.Context) (int, error) {
			return 0, boom
		},
		func(ctx context.Context) (int, error) {
			time.Sleep(30 * time.Millisecond)
			finished.Add(1)
			return 2, nil
		},
	)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	// All waits for every goroutine even after an error.
	if finished.Load() != 1 {
		t.Fatal("All returned before all functions finished")
	}
}

func TestAllSettled_NeverShortCircuits(t *testing.T) {
	boom := errors.New("boom")

	results := asyncx.AllSettled(context.Background(),
		func(ctx context.Context) (int, error) { return 1, nil },
		func(ctx context.Context) (int, error) { return 0, boom },
		func(ctx context.Context) (int, error) { return 3, nil },
	)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results[0].OK() || results[0].Value != 1 {
		t.Fatalf("unexpected first result: %+v", results[0])
	}
	if results[1].OK() || !errors.Is(results[1].Err, boom) {
		t.Fatalf("unexpected second result: %+v", results[1])
	}
	if !results[2].OK() || results[2].Value != 3 {
		t.Fatalf("unexpected third result: %+v", results[2])
	}
}

func TestRace_FirstResultWins(t *testing.T) {
	v, err := asyncx.Race(context.Background(),
		func(ctx context.Context) (string, error) {
			time.Sleep(200 * time.Millisecond)
			return "tortoise", nil
		},
		func(ctx context.Context) (string, error) {
			return "hare", nil
		},
	)
	if err != nil || v != "hare" {
		t.Fatalf("unexpected winner: (%q, %v)", v, err)
	}
}

func TestRace_CancelsLosers(t *testing.T) {
	loserCanceled := make(chan struct{})

	_, _ = asyncx.Race(context.Background(),
		func(ctx context.Context) (int, error) {
			return 1, nil
		},
		func(ctx context.Context) (int, error) {
			<-ctx.Done()
			close(loserCanceled)
			return 0, ctx.Err()
		},
	)

	select {
	case <-loserCanceled:
	case <-time.After(time.Second):
		t.Fatal("losing function never saw cancellation")
	}
}

// --- Helper tests ---

func TestWithTimeout_ReturnsDeadlineError(t *testing.T) {
	_, err := asyncx.WithTimeout(context.Background(), 30*time.Millisecond,
		func(ctx context.Context) (int, error) {
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-time.After(time.Second):
				return 1, nil
			}
		})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}

func TestWithTimeout_FastFunctionSucceeds(t *testing.T) {
	v, err := asyncx.WithTimeout(context.Background(), time.Second,
		func(ctx context.Context) (int, error) {
			return 5, nil
		})
	if err != nil || v != 5 {
		t.Fatalf("unexpected result: (%d, %v)", v, err)
	}
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	var attempts atomic.Int32

	v, err := asyncx.Retry(context.Background(), 5, func(ctx context.Context) (string, error) {
		if attempts.Add(1) < 3 {
			return "", errors.New("flaky")
		}
		return "ok", nil
	})
	if err != nil || v != "ok" {
		t.Fatalf("unexpected result: (%q, %v)", v, err)
	}
	if attempts.Load() != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts.Load())
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	boom := errors.New("still broken")

	_, err := asyncx.Retry(context.Background(), 3, func(ctx context.Context) (int, error) {
		return 0, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected last error, got %v", err)
	}
}

func TestOnce_CollapsesConcurrentCallers(t *testing.T) {
	var executions atomic.Int32

	fn := asyncx.Once(func() (int, error) {
		executions.Add(1)
		return 11, nil
	})

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			if v, _ := fn(); v != 11 {
				t.Errorf("unexpected value: %d", v)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	if executions.Load() != 1 {
		t.Fatalf("expected single execution, got %d", executions.Load())
	}
}

func TestDoCtx_SkipsWhenAlreadyCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := make(chan struct{}, 1)
	asyncx.DoCtx(ctx, func(ctx context.Context) {
		ran <- struct{}{}
	})

	select {
	case <-ran:
		t.Fatal("function ran despite canceled context")
	case <-time.After(50 * time.Millisecond):
	}
}
