package asyncx

import (
	"context"
	"sync"
	"time"
)

// Do fires fn in a goroutine and forgets it (fire-and-forget).
func Do(fn func()) {
	go fn()
}

// DoCtx fires fn in a goroutine only if ctx is not already done.
func DoCtx(ctx context.Context, fn func(context.Context)) {
	go func() {
		select {
		case <-ctx.Done():
			return
		default:
			fn(ctx)
		}
	}()
}

// WithTimeout runs fn with a deadline of d.
// Returns context.DeadlineExceeded if fn does not finish in time. The
// abandoned fn keeps running with a canceled context until it returns.
func WithTimeout[T any](ctx context.Context, d time.Duration, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	f := Run(func() (T, error) {
		return fn(ctx)
	})
	return f.AwaitCtx(ctx)
}

// Retry calls fn up to attempts times, returning as soon as fn succeeds.
// Returns the last error if all attempts fail.
func Retry[T any](ctx context.Context, attempts int, fn func(context.Context) (T, error)) (T, error) {
	return RetryWithBackoff(ctx, attempts, 0, fn)
}

// RetryWithBackoff calls fn up to attempts times, sleeping delay between
// attempts and doubling it after each failure. Respects context cancellation
// between retries.
func RetryWithBackoff[T any](
	ctx context.Context,
	attempts int,
	delay time.Duration,
	fn func(context.Context) (T, error),
) (T, error) {
	var (
		zero T
		val  T
		err  error
	)
	for i := 0; i < attempts; i++ {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		val, err = fn(ctx)
		if err == nil {
			return val, nil
		}

		if delay > 0 && i < attempts-1 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return zero, err
}

// Once wraps fn so it executes at most once, regardless of how many
// goroutines call the returned function simultaneously.
func Once[T any](fn func() (T, error)) func() (T, error) {
	var (
		once sync.Once
		val  T
		err  error
	)
	return func() (T, error) {
		once.Do(func() {
			val, err = fn()
		})
		return val, err
	}
}
