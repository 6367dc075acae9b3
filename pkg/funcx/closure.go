package funcx

// Counter returns a function that yields 1, 2, 3, ... on successive calls.
// The count lives in the closure; each Counter() owns its own.
//
// Not safe for concurrent callers — wrap with your own lock if the counter
// is shared across goroutines.
func Counter() func() int {
	count := 0
	return func() int {
		count++
		return count
	}
}

// Accumulator returns a function that adds its argument to a running total
// seeded with start and returns the new total.
func Accumulator[T Number](start T) func(T) T {
	total := start
	return func(delta T) T {
		total += delta
		return total
	}
}
