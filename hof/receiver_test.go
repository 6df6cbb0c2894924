package hof

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintOnFour(t *testing.T) {
	var buf bytes.Buffer

	result := PrintOnFour(&buf, func(this int) int { return this * 2 })

	assert.Equal(t, 8, result)
	assert.Equal(t, "8\n", buf.String())
}

func TestWithChangesType(t *testing.T) {
	assert.Equal(t, "DUMMY", With("dummy", strings.ToUpper))
	assert.Equal(t, 4, With("four", func(this string) int { return len(this) }))
}
