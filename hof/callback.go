package hof

import (
	"fmt"
	"io"
)

// Invoke calls block once.
func Invoke(block func()) {
	block()
}

// Supply returns whatever block produces.
func Supply(block func() int) int {
	return block()
}

// ApplyPair calls block with 3 and 5 and prints the result.
func ApplyPair(w io.Writer, block func(int, int) int) int {
	result := block(3, 5)
	fmt.Fprintf(w, "Actual result %d\n", result)
	return result
}

// CalculateResult is ApplyPair with named parameters. The names only
// document the arguments, they change nothing about the call.
func CalculateResult(w io.Writer, block func(width, length int) int) int {
	result := block(3, 5)
	fmt.Fprintf(w, "Actual result is %d\n", result)
	return result
}

// Area is a function stored in a variable.
var Area = func(width, length int) int {
	return width * length
}

func AddResults(first func() int, second func(x, y int) int) int {
	return first() + second(2, 3)
}

// ApplyToFive calls block with 5.
func ApplyToFive(block func(int) int) int {
	return block(5)
}

// PrintThen prints block(2, 5) and then runs after. A nil after does nothing.
func PrintThen(w io.Writer, after func(), block func(x, y int) int) {
	if after == nil {
		after = func() {}
	}

	fmt.Fprintln(w, block(2, 5))
	after()
}
