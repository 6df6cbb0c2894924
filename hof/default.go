package hof

// DefaultValue is what the default callbacks return.
const DefaultValue = 5

// DefaultFirst is used by WithDefaultFirst when block1 is nil.
func DefaultFirst() int {
	return DefaultValue
}

// DefaultSecond is used by WithDefaultSecond when block2 is nil.
func DefaultSecond(_, _ int) int {
	return DefaultValue
}

// WithDefaultFirst calls block2 with block1() and 5.
// A nil block1 falls back to DefaultFirst.
func WithDefaultFirst(block1 func() int, block2 func(int, int)) {
	if block1 == nil {
		block1 = DefaultFirst
	}

	block2(block1(), 5)
}

// WithDefaultSecond passes block2(1, 2) to block1.
// A nil block2 falls back to DefaultSecond.
func WithDefaultSecond(block1 func(int), block2 func(int, int) int) {
	if block2 == nil {
		block2 = DefaultSecond
	}

	block1(block2(1, 2))
}
