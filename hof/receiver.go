package hof

import (
	"fmt"
	"io"
)

// With calls block on receiver. Go has no implicit receivers, so the
// receiver is handed over as the first argument instead.
func With[T, R any](receiver T, block func(T) R) R {
	return block(receiver)
}

// PrintOnFour runs block with 4 as its receiver and prints the result.
func PrintOnFour(w io.Writer, block func(this int) int) int {
	result := With(4, block)
	fmt.Fprintln(w, result)
	return result
}
