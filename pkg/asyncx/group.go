package asyncx

import (
	"context"
)

// Result holds the outcome of a single settled async operation.
type Result[T any] struct {
	Value T
	Err   error
}

// OK reports whether the result carries no error.
func (r Result[T]) OK() bool { return r.Err == nil }

// All runs all fns concurrently and waits for every one to finish.
// Returns a slice of results in the same order as the input functions.
// If any function returns an error the first error is returned; other
// goroutines are still awaited so resources are not leaked.
func All[T any](ctx context.Context, fns ...func(context.Context) (T, error)) ([]T, error) {
	futures := spawn(ctx, fns)

	results := make([]T, len(futures))
	var firstErr error
	for i, f := range futures {
		v, err := f.Await()
		if err != nil && firstErr == nil {
			firstErr = err
		}
		results[i] = v
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// AllSettled runs all fns concurrently and waits for every one to finish.
// Unlike All it never short-circuits: it always returns one Result per fn.
func AllSettled[T any](ctx context.Context, fns ...func(context.Context) (T, error)) []Result[T] {
	futures := spawn(ctx, fns)

	results := make([]Result[T], len(futures))
	for i, f := range futures {
		v, err := f.Await()
		results[i] = Result[T]{Value: v, Err: err}
	}
	return results
}

// Race runs all fns concurrently and returns the first result that arrives,
// whether success or error. The remaining functions see their context
// canceled once a winner settles.
func Race[T any](ctx context.Context, fns ...func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	winner := NewFuture[T]()
	for _, fn := range fns {
		fn := fn
		go func() {
			v, err := fn(ctx)
			if err != nil {
				winner.Reject(err)
				return
			}
			winner.Resolve(v)
		}()
	}
	return winner.Await()
}

func spawn[T any](ctx context.Context, fns []func(context.Context) (T, error)) []*Future[T] {
	futures := make([]*Future[T], len(fns))
	for i, fn := range fns {
		fn := fn
		futures[i] = Run(func() (T, error) {
			return fn(ctx)
		})
	}
	return futures
}
