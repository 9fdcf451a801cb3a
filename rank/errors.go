// Package rank: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the rank
// package. All operations return these sentinels and tests check them via
// errors.Is. No operation panics on user-triggered error conditions.

package rank

import "errors"

// Every message is prefixed with "rank: ..." for consistency and to allow
// easy grepping across logs. If context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the call site — callers still match with
// errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// method -> axis -> shape. Configuration is validated before data.
var (
	// ErrShapeMismatch indicates that values and groups have different
	// lengths, or that the rows of a 2-D input have unequal lengths.
	// Raised eagerly, before any computation.
	ErrShapeMismatch = errors.New("rank: values and groups must be the same shape")

	// ErrUnsupportedMethod indicates a Method outside the enumerated set
	// (or an unknown method name passed to ParseMethod).
	ErrUnsupportedMethod = errors.New("rank: unsupported ranking method")

	// ErrBadAxis indicates an Axis other than AxisColumns or AxisRows.
	ErrBadAxis = errors.New("rank: axis must be AxisColumns or AxisRows")
)
