package funcx

import (
	"time"

	"golang.org/x/time/rate"
)

// Throttle wraps fn so that it executes at most once per interval. The first
// call always executes immediately and synchronously on the caller's
// goroutine; calls arriving before the interval has elapsed since the last
// executed call are dropped, not queued. A call at or after the boundary
// executes and resets the window.
//
// The window is a token bucket with burst 1, so sparse callers never pay a
// warm-up cost. Thread-safe.
func Throttle[T any](interval time.Duration, fn func(T)) func(T) {
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	return func(arg T) {
		if limiter.Allow() {
			fn(arg)
		}
	}
}

// Throttled is the niladic form of [Throttle] for callbacks that take no
// arguments.
func Throttled(interval time.Duration, fn func()) func() {
	inner := Throttle(interval, func(struct{}) { fn() })
	return func() { inner(struct{}{}) }
}
