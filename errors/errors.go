// Package errors provides error handling for the perspective-taking generator.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - PII-safe error formatting
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrGeneration) {
//	    // retry with a fresh question/placement
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the generator's three-tier failure taxonomy.
// Use these with errors.Is() for type-safe error checking and wrap them
// with errors.Wrap()/Wrapf() to add context while preserving the tier.
var (
	// ErrGeneration indicates a retryable generation failure: the sampled
	// question/placement combination was infeasible (no qualifying item
	// combination, no free position satisfying a directional constraint,
	// insufficient size variance, not enough positions). Callers retry with
	// freshly sampled inputs up to the per-assignment budget.
	ErrGeneration = New("grid generation failed")

	// ErrNoMatch indicates a question matched zero occupied cells. Outside
	// the retry loop this is fatal: a committed sample must never have an
	// empty answer set.
	ErrNoMatch = New("no matching items")

	// ErrUnknownRule indicates an unrecognized selection rule or spatial
	// relation. This is a configuration error, never retried.
	ErrUnknownRule = New("unknown selection rule")

	// ErrInvalidConfig indicates invalid generation parameters: proportions
	// summing above 1.0, an empty item pool, non-positive grid dimensions.
	// Raised immediately, never retried.
	ErrInvalidConfig = New("invalid configuration")

	// ErrInvariant indicates a committed grid+question pair failed its
	// expected control/test ambiguity outcome. This is a logic defect, not
	// unlucky sampling; callers must treat it as stop-the-world.
	ErrInvariant = New("generation invariant violated")
)

// IsGenerationError reports whether err is or wraps a retryable generation
// failure, including the no-match condition surfaced while probing candidate
// questions against a partially built grid.
func IsGenerationError(err error) bool {
	return err != nil && (Is(err, ErrGeneration) || Is(err, ErrNoMatch))
}

// IsConfigError reports whether err is or wraps a configuration error.
func IsConfigError(err error) bool {
	return err != nil && (Is(err, ErrInvalidConfig) || Is(err, ErrUnknownRule))
}

// IsInvariantViolation reports whether err is or wraps a fatal invariant
// violation.
func IsInvariantViolation(err error) bool {
	return err != nil && Is(err, ErrInvariant)
}

// NewGenerationErrorf creates a retryable generation error with a formatted
// message.
func NewGenerationErrorf(format string, args ...interface{}) error {
	return Wrap(ErrGeneration, Newf(format, args...).Error())
}

// NewInvariantErrorf creates a fatal invariant-violation error with a
// formatted message.
func NewInvariantErrorf(format string, args ...interface{}) error {
	return Wrap(ErrInvariant, Newf(format, args...).Error())
}

// NewConfigErrorf creates a configuration error with a formatted message.
func NewConfigErrorf(format string, args ...interface{}) error {
	return Wrap(ErrInvalidConfig, Newf(format, args...).Error())
}
