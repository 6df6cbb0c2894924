package hof

// Div truncates towards zero.
func Div(x, y int) int {
	return x / y
}

// Operation applies op to both numbers. Any func(int, int) int works,
// a literal as well as a named function such as Div.
func Operation(first, second int, op func(int, int) int) int {
	return op(first, second)
}
