package hof

import "unicode/utf8"

const (
	// Sentinel marks a special case or a failure without an error.
	Sentinel = -1

	// Alien is the name LengthOrSentinel refuses to measure.
	Alien = "alien"
)

// CheckNullOrDefault applies block to *value, or returns def when value is nil.
func CheckNullOrDefault[T, R any](value *T, def R, block func(T) R) R {
	if value == nil {
		return def
	}

	return block(*value)
}

// LengthOrSentinel returns the number of characters in name, or Sentinel
// if name is nil or equals Alien.
func LengthOrSentinel(name *string) int {
	return CheckNullOrDefault(name, Sentinel, func(this string) int {
		if this == Alien {
			return Sentinel
		}
		return utf8.RuneCountInString(this)
	})
}
