package order

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultNumberGenerator_Format(t *testing.T) {
	gen := NewDefaultNumberGenerator("ORD")
	gen.now = func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}

	number, err := gen.Generate(context.Background())

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ORD-20260830-[0-9A-F]{8}$`), number)
}

func TestDefaultNumberGenerator_EmptyPrefixDefaults(t *testing.T) {
	gen := NewDefaultNumberGenerator("")

	number, err := gen.Generate(context.Background())

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d{8}-[0-9A-F]{8}$`), number)
}

func TestDefaultNumberGenerator_Uniqueness(t *testing.T) {
	gen := NewDefaultNumberGenerator("ORD")

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number, err := gen.Generate(context.Background())
		require.NoError(t, err)
		assert.False(t, seen[number], "duplicate order number %s", number)
		seen[number] = true
	}
}
