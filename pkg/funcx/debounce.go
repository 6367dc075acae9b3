package funcx

import (
	"sync"
	"time"
)

// Debounce wraps fn so that it only runs after calls stop arriving for at
// least wait. Every call cancels the pending timer and re-arms it with its
// own argument, so within any burst only the last argument reaches fn, once,
// no earlier than wait after the final call.
//
// fn runs on a timer goroutine; its panics are not recovered and no return
// value is propagated. Thread-safe.
func Debounce[T any](wait time.Duration, fn func(T)) func(T) {
	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	return func(arg T) {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(wait, func() {
			fn(arg)
		})
	}
}

// Debounced is the niladic form of [Debounce] for callbacks that take no
// arguments.
func Debounced(wait time.Duration, fn func()) func() {
	inner := Debounce(wait, func(struct{}) { fn() })
	return func() { inner(struct{}{}) }
}
