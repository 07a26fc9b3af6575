package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrap(ErrGeneration, "no free positions")
	require.NotNil(t, err)
	assert.True(t, Is(err, ErrGeneration))
	assert.Contains(t, err.Error(), "no free positions")
}

func TestIsGenerationError(t *testing.T) {
	assert.True(t, IsGenerationError(ErrGeneration))
	assert.True(t, IsGenerationError(Wrap(ErrNoMatch, "probe")))
	assert.False(t, IsGenerationError(ErrInvariant))
	assert.False(t, IsGenerationError(nil))
}

func TestIsConfigError(t *testing.T) {
	assert.True(t, IsConfigError(NewConfigErrorf("proportions sum to %.2f", 1.2)))
	assert.True(t, IsConfigError(Wrap(ErrUnknownRule, "rule %q")))
	assert.False(t, IsConfigError(ErrGeneration))
}

func TestIsInvariantViolation(t *testing.T) {
	err := NewInvariantErrorf("control sample is ambiguous")
	assert.True(t, IsInvariantViolation(err))
	assert.Contains(t, err.Error(), "control sample is ambiguous")
	assert.False(t, IsInvariantViolation(ErrGeneration))
}

func TestTiersAreDistinct(t *testing.T) {
	tiers := []error{ErrGeneration, ErrNoMatch, ErrUnknownRule, ErrInvalidConfig, ErrInvariant}
	for i, a := range tiers {
		for j, b := range tiers {
			if i == j {
				continue
			}
			assert.False(t, Is(a, b), "%v should not match %v", a, b)
		}
	}
}
