// Package funcx provides higher-order function utilities: debouncing,
// throttling, currying and partial application, variadic folds, and
// closure-based accumulators.
//
// Every wrapper owns its captured state exclusively — a timer handle for
// [Debounce], a token bucket for [Throttle], an argument prefix for the
// curry family — so no reasoning about shared state is needed beyond the
// single returned function value.
//
// # Debounce
//
// [Debounce] delays invocation until calls stop arriving for a full wait
// window. Every call re-arms the timer with its own argument, so only the
// last call in a burst executes:
//
//	onQuery := funcx.Debounce(300*time.Millisecond, search.Run)
//	for _, q := range keystrokes {
//	    onQuery(q) // only the final keystroke triggers search.Run
//	}
//
// # Throttle
//
// [Throttle] caps invocation frequency. The first call always runs
// immediately; calls arriving inside the interval are dropped, not queued:
//
//	onScroll := funcx.Throttle(time.Second, render.Update)
//
// # Currying and partial application
//
// [Curry2], [Curry3] and [Curry4] turn a fixed-arity function into a chain
// of unary functions. [Apply2] and [Apply3] bind a prefix argument and
// return the remainder. [CurryN] is the dynamic variant: it accepts any
// function value and accumulates arguments across calls, in any grouping,
// until the target arity is reached.
//
// # Folds and closures
//
// [Sum] collects its variadic arguments into a total, [SumOf] folds a slice
// through a projection, and [Counter] / [Accumulator] demonstrate lexical
// capture of mutable state.
package funcx
