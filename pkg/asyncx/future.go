package asyncx

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// State describes where a [Future] is in its lifecycle.
type State int32

const (
	// Pending means the future has not settled yet.
	Pending State = iota
	// Fulfilled means the future settled with a value.
	Fulfilled
	// Rejected means the future settled with an error.
	Rejected
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		return "pending"
	}
}

// Future represents a value that will be available asynchronously. It
// settles at most once; later Resolve/Reject calls are ignored. All methods
// are safe for concurrent use.
type Future[T any] struct {
	once  sync.Once
	done  chan struct{}
	state atomic.Int32

	value T
	err   error
}

// NewFuture returns an unsettled future. The producer settles it with
// [Future.Resolve] or [Future.Reject]; consumers block on [Future.Await].
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Run executes fn in a goroutine and returns a Future for its result.
// The goroutine starts immediately. A nil error fulfills the future, a
// non-nil error rejects it.
func Run[T any](fn func() (T, error)) *Future[T] {
	f := NewFuture[T]()
	go func() {
		v, err := fn()
		if err != nil {
			f.Reject(err)
			return
		}
		f.Resolve(v)
	}()
	return f
}

// After returns a future that fulfills with value once d has elapsed.
// It is the timer-backed deferred: pending before the deadline, fulfilled
// no sooner than d after creation.
func After[T any](d time.Duration, value T) *Future[T] {
	f := NewFuture[T]()
	time.AfterFunc(d, func() {
		f.Resolve(value)
	})
	return f
}

// Resolved returns a future already fulfilled with v.
func Resolved[T any](v T) *Future[T] {
	f := NewFuture[T]()
	f.Resolve(v)
	return f
}

// RejectedWith returns a future already rejected with err.
func RejectedWith[T any](err error) *Future[T] {
	f := NewFuture[T]()
	f.Reject(err)
	return f
}

// Resolve fulfills the future with v. It reports whether this call settled
// the future; a future that has already settled is left untouched.
func (f *Future[T]) Resolve(v T) bool {
	settled := false
	f.once.Do(func() {
		f.value = v
		f.state.Store(int32(Fulfilled))
		close(f.done)
		settled = true
	})
	return settled
}

// Reject settles the future with err. It reports whether this call settled
// the future.
func (f *Future[T]) Reject(err error) bool {
	settled := false
	f.once.Do(func() {
		f.err = err
		f.state.Store(int32(Rejected))
		close(f.done)
		settled = true
	})
	return settled
}

// State returns the current lifecycle state without blocking.
func (f *Future[T]) State() State {
	return State(f.state.Load())
}

// Await blocks until the future settles and returns its value and error.
// Safe to call multiple times — every call returns the same settled result.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.value, f.err
}

// AwaitCtx blocks until the future settles or ctx is done, whichever comes
// first. Cancellation abandons the wait but does not settle the future; the
// result can still be awaited later.
func (f *Future[T]) AwaitCtx(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel that is closed when the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Then derives a future that transforms f's fulfilled value with fn.
// If f rejects, the derived future rejects with the same error and fn never
// runs.
func Then[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	return Run(func() (U, error) {
		v, err := f.Await()
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v), nil
	})
}

// Catch derives a future that recovers from rejection: fn receives the
// error and may substitute a value (nil error) or re-reject. A fulfilled
// future passes through untouched and fn never runs.
func (f *Future[T]) Catch(fn func(error) (T, error)) *Future[T] {
	return Run(func() (T, error) {
		v, err := f.Await()
		if err == nil {
			return v, nil
		}
		return fn(err)
	})
}
