package funcx_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/arzav18/interview-prep-go/pkg/funcx"
)

// --- Debounce tests ---

func TestDebounce_OnlyLastCallInBurstExecutes(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)
	done := make(chan struct{}, 1)

	debounced := funcx.Debounce(100*time.Millisecond, func(arg string) {
		mu.Lock()
		calls = append(calls, arg)
		mu.Unlock()
		done <- struct{}{}
	})

	debounced("first")
	time.Sleep(20 * time.Millisecond)
	debounced("second")
	time.Sleep(20 * time.Millisecond)
	debounced("third")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced function never fired")
	}

	// Give any stray earlier timer a chance to fire.
	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 1 {
		t.Fatalf("expected exactly 1 execution, got %d: %v", len(calls), calls)
	}
	if calls[0] != "third" {
		t.Fatalf("expected last argument to win, got %q", calls[0])
	}
}

func TestDebounce_FiresNoEarlierThanWait(t *testing.T) {
	const wait = 150 * time.Millisecond

	fired := make(chan time.Time, 1)
	debounced := funcx.Debounce(wait, func(struct{}) {
		fired <- time.Now()
	})

	lastCall := time.Now()
	debounced(struct{}{})

	select {
	case at := <-fired:
		if elapsed := at.Sub(lastCall); elapsed < wait {
			t.Fatalf("fired after %v, before the %v window elapsed", elapsed, wait)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("debounced function never fired")
	}
}

func TestDebounce_SeparateBurstsEachExecute(t *testing.T) {
	var count atomic.Int32
	debounced := funcx.Debounced(50*time.Millisecond, func() {
		count.Add(1)
	})

	debounced()
	time.Sleep(150 * time.Millisecond)
	debounced()
	time.Sleep(150 * time.Millisecond)

	if got := count.Load(); got != 2 {
		t.Fatalf("expected 2 executions across quiet bursts, got %d", got)
	}
}

// --- Throttle tests ---

func TestThrottle_FirstCallExecutesImmediately(t *testing.T) {
	var got atomic.Int32
	throttled := funcx.Throttle(time.Hour, func(v int32) {
		got.Store(v)
	})

	throttled(42)

	// Synchronous on the calling goroutine, so the effect is already visible.
	if got.Load() != 42 {
		t.Fatal("first call did not execute immediately")
	}
}

func TestThrottle_DropsCallsInsideInterval(t *testing.T) {
	var count atomic.Int32
	throttled := funcx.Throttled(time.Hour, func() {
		count.Add(1)
	})

	for i := 0; i < 10; i++ {
		throttled()
	}

	if got := count.Load(); got != 1 {
		t.Fatalf("expected 1 execution, got %d", got)
	}
}

func TestThrottle_BoundsExecutionRate(t *testing.T) {
	const (
		interval = 300 * time.Millisecond
		spacing  = 30 * time.Millisecond
		total    = 900 * time.Millisecond
	)

	var count atomic.Int32
	throttled := funcx.Throttled(interval, func() {
		count.Add(1)
	})

	deadline := time.Now().Add(total)
	for time.Now().Before(deadline) {
		throttled()
		time.Sleep(spacing)
	}

	got := count.Load()
	if got < 1 {
		t.Fatal("expected at least the first call to execute")
	}
	// Boundary-inclusive upper bound: one initial token plus one refill per
	// interval over the run.
	if max := int32(total/interval) + 1; got > max {
		t.Fatalf("expected at most %d executions, got %d", max, got)
	}
}
