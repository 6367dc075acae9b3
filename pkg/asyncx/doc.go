// Package asyncx provides deferred values and async utilities: futures with
// an explicit pending/fulfilled/rejected lifecycle, continuation chaining,
// fan-out combinators, and small concurrency helpers — all with first-class
// context support.
//
// # Futures
//
// A [Future] is a value that materializes after asynchronous completion. It
// starts [Pending] and settles exactly once, to [Fulfilled] on success or
// [Rejected] on error; after that its result is immutable and every await
// observes the same outcome.
//
// Use [Run] to start work immediately in a goroutine and [Future.Await] to
// block until the result is ready:
//
//	fut := asyncx.Run(func() (*User, error) {
//	    return client.RandomUser(ctx)
//	})
//
//	// ... do other work ...
//
//	user, err := fut.Await()
//
// [After] settles a future with a fixed value once a timer fires, and
// [NewFuture] hands out an unsettled future whose Resolve/Reject methods the
// producer calls itself.
//
// # Chaining
//
// [Then] derives a new future by transforming a fulfilled result; rejection
// short-circuits past it untouched. [Future.Catch] is the complement: it
// only runs on rejection and may recover with a substitute value.
//
//	greeting := asyncx.Then(fut, func(u *User) string {
//	    return "hello " + u.Name
//	}).Catch(func(err error) (string, error) {
//	    return "hello stranger", nil
//	})
//
// # Fan-out
//
// [All] runs a set of functions concurrently and collects every result in
// the original order, returning the first error after all goroutines finish.
// [AllSettled] never short-circuits and returns one [Result] per function.
// [Race] returns whichever result arrives first and cancels the rest via
// context.
//
// # Helpers
//
// [Do] and [DoCtx] fire-and-forget goroutines, [WithTimeout] bounds a call
// with a deadline, [Retry] and [RetryWithBackoff] re-attempt failed calls,
// and [Once] collapses concurrent callers onto a single execution.
package asyncx
