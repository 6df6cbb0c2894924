package hof

import "strconv"

// Parse hands value to parser.
func Parse(value string, parser func(string) int) int {
	return With(value, parser)
}

// ParseOrSentinel parses a base 10 integer. Malformed and out of range
// input both give Sentinel.
func ParseOrSentinel(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return Sentinel
	}

	return n
}
