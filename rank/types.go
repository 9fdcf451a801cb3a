// Package rank: configuration types and functional options.
// This file defines the Method and Axis enumerations, the Options struct,
// documented defaults, and WithX constructors consumed by the public API.

package rank

// Method selects how tied (equal-valued) elements share ranks inside a
// tie run. A tie run is a maximal block of equal values within one group;
// group boundaries always break runs, even when the value repeats across
// groups.
//
//   - MethodAverage — tied elements receive the mean of the ordinal ranks
//     the run spans. Always produces a float64 result.
//   - MethodOrdinal — every element gets a distinct rank 1..m; ties keep
//     their original input order (the sort is stable).
//   - MethodMin     — tied elements receive the smallest ordinal rank of
//     the run (SQL RANK() semantics).
//   - MethodMax     — tied elements receive the largest ordinal rank of
//     the run.
//   - MethodDense   — tied elements receive the count of distinct values
//     seen so far in their group, so ranks are consecutive with no gaps
//     (SQL DENSE_RANK() semantics).
type Method int

const (
	// MethodAverage assigns each tie run the mean of its min and max ranks.
	// This is the default.
	MethodAverage Method = iota

	// MethodOrdinal assigns distinct ranks 1..m in stable sort order.
	MethodOrdinal

	// MethodMin assigns each tie run its smallest ordinal rank.
	MethodMin

	// MethodMax assigns each tie run its largest ordinal rank.
	MethodMax

	// MethodDense counts distinct values per group, collapsing runs to
	// consecutive integers.
	MethodDense
)

// methodNames maps Method values to their canonical string names.
var methodNames = [...]string{
	MethodAverage: "average",
	MethodOrdinal: "ordinal",
	MethodMin:     "min",
	MethodMax:     "max",
	MethodDense:   "dense",
}

// valid reports whether m is one of the enumerated methods.
func (m Method) valid() bool {
	return m >= MethodAverage && m <= MethodDense
}

// String returns the canonical name of the method ("average", "ordinal",
// "min", "max", "dense"), or "unknown" for an out-of-range value.
func (m Method) String() string {
	if !m.valid() {
		return "unknown"
	}

	return methodNames[m]
}

// ParseMethod converts a method name into its Method value.
// Returns ErrUnsupportedMethod for any name outside the enumerated set.
func ParseMethod(name string) (Method, error) {
	for m, s := range methodNames {
		if s == name {
			return Method(m), nil
		}
	}

	return 0, ErrUnsupportedMethod
}

// Axis selects which 1-D slices of a 2-D input RankAlongAxis ranks.
//
//   - AxisColumns — rank down each column: one slice per column, slice
//     length equals the number of rows.
//   - AxisRows    — rank across each row: one slice per row, slice length
//     equals the number of columns.
type Axis int

const (
	// AxisColumns ranks each column independently.
	AxisColumns Axis = iota

	// AxisRows ranks each row independently.
	AxisRows
)

// String returns "columns", "rows", or "unknown".
func (ax Axis) String() string {
	switch ax {
	case AxisColumns:
		return "columns"
	case AxisRows:
		return "rows"
	default:
		return "unknown"
	}
}

// Options configures a ranking operation.
//
// Method – tie-resolution policy (see Method). Must be one of the
// enumerated values; anything else fails with ErrUnsupportedMethod.
type Options struct {
	Method Method // How tied elements share ranks
}

// Option mutates Options. Public APIs consume ...Option.
type Option func(*Options)

// DefaultOptions returns the default configuration: MethodAverage.
func DefaultOptions() Options {
	return Options{Method: MethodAverage}
}

// WithMethod selects the tie-resolution method.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}
