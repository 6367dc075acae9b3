package funcx

import (
	"fmt"
	"reflect"
)

// Curry2 turns a two-argument function into a chain of unary functions:
// Curry2(f)(a)(b) == f(a, b).
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Curry3 turns a three-argument function into a chain of unary functions:
// Curry3(f)(a)(b)(c) == f(a, b, c).
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return f(a, b, c)
			}
		}
	}
}

// Curry4 turns a four-argument function into a chain of unary functions.
func Curry4[A, B, C, D, R any](f func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return func(b B) func(C) func(D) R {
			return func(c C) func(D) R {
				return func(d D) R {
					return f(a, b, c, d)
				}
			}
		}
	}
}

// Apply2 binds the first argument of a two-argument function.
func Apply2[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return f(a, b)
	}
}

// Apply3 binds the first argument of a three-argument function, returning
// the two-argument remainder. Chain with [Apply2] to bind further.
func Apply3[A, B, C, R any](f func(A, B, C) R, a A) func(B, C) R {
	return func(b B, c C) R {
		return f(a, b, c)
	}
}

// CurriedFn accumulates arguments across calls until the wrapped function's
// arity is reached. While arguments are still missing it returns another
// CurriedFn; once the arity is met it invokes the wrapped function and
// returns its result. See [CurryN].
type CurriedFn func(args ...interface{}) interface{}

// CurryN wraps an arbitrary fixed-arity function value so that its arguments
// may be supplied across any number of calls, in any grouping:
//
//	add := func(a, b, c int) int { return a + b + c }
//	c := funcx.CurryN(add)
//	c(1, 2, 3)                                      // 6
//	c(1, 2).(funcx.CurriedFn)(3)                    // 6
//	c(1).(funcx.CurriedFn)(2).(funcx.CurriedFn)(3)  // 6
//
// Arguments beyond the arity are ignored. A function with no results yields
// nil; one result is returned as-is; multiple results come back as an
// []interface{}. Panics if fn is not a function or is variadic — use the
// typed [Curry2] family (or [Sum] for variadic folds) in those cases.
//
// Each partial application owns a copy of its argument prefix, so a
// CurriedFn may be reused: c1 := c(1); c1(2, 3) and c1(5, 6) are
// independent.
func CurryN(fn interface{}) CurriedFn {
	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		panic(fmt.Sprintf("funcx: CurryN expects a function, got %T", fn))
	}
	if fnType.IsVariadic() {
		panic("funcx: CurryN does not support variadic functions")
	}
	return curryN(fnVal, nil)
}

func curryN(fnVal reflect.Value, prefix []reflect.Value) CurriedFn {
	arity := fnVal.Type().NumIn()
	return func(args ...interface{}) interface{} {
		accumulated := make([]reflect.Value, len(prefix), arity)
		copy(accumulated, prefix)

		for _, arg := range args {
			if len(accumulated) == arity {
				break // excess arguments are dropped
			}
			accumulated = append(accumulated, reflect.ValueOf(arg))
		}

		if len(accumulated) < arity {
			return curryN(fnVal, accumulated)
		}

		out := fnVal.Call(accumulated)
		switch len(out) {
		case 0:
			return nil
		case 1:
			return out[0].Interface()
		default:
			results := make([]interface{}, len(out))
			for i, v := range out {
				results[i] = v.Interface()
			}
			return results
		}
	}
}
