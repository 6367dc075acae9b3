package funcx

// Number is the constraint for types [Sum] and friends can total.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum collects its variadic arguments into a total. With no arguments it
// returns the zero value of T.
func Sum[T Number](nums ...T) T {
	var total T
	for _, n := range nums {
		total += n
	}
	return total
}

// SumOf folds items through a projection and totals the results.
func SumOf[T any, N Number](items []T, f func(T) N) N {
	var total N
	for _, item := range items {
		total += f(item)
	}
	return total
}
