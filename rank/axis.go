package rank

import "cmp"

// RankAlongAxis applies grouped ranking independently to every 1-D slice
// of a rectangular 2-D input: one slice per column for AxisColumns, one
// slice per row for AxisRows. The same groups and method apply to every
// slice, so groups, when non-nil, must have the slice length (the number
// of rows for AxisColumns, the number of columns for AxisRows).
//
// Returns (ints, floats, err) in the shape of values: exactly one of
// ints/floats is non-nil. The kind is decided once for the whole result:
// floats for MethodAverage or when any slice contains NaN, ints
// otherwise. A zero-size input short-circuits to an empty result of the
// appropriate kind without invoking the core.
//
// Preconditions and validation (in order):
//  1. Options.Method must be an enumerated Method (ErrUnsupportedMethod).
//  2. axis must be AxisColumns or AxisRows (ErrBadAxis).
//  3. All rows of values must have equal length (ErrShapeMismatch).
//  4. groups, when non-nil, must match the slice length (ErrShapeMismatch).
//
// Complexity: O(R·C·log(slice length)) time, O(R·C) space.
func RankAlongAxis[K cmp.Ordered](values [][]float64, groups []K, axis Axis, opts ...Option) ([][]int64, [][]float64, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if !cfg.Method.valid() {
		return nil, nil, ErrUnsupportedMethod
	}
	if axis != AxisColumns && axis != AxisRows {
		return nil, nil, ErrBadAxis
	}

	rows := len(values)
	cols := 0
	if rows > 0 {
		cols = len(values[0])
	}
	var row []float64
	for _, row = range values {
		if len(row) != cols {
			return nil, nil, ErrShapeMismatch
		}
	}

	if rows == 0 || cols == 0 {
		if cfg.Method == MethodAverage {
			return nil, emptyFloats(rows, cols), nil
		}

		return emptyInts(rows, cols), nil, nil
	}

	sliceLen, sliceCount := rows, cols
	if axis == AxisRows {
		sliceLen, sliceCount = cols, rows
	}
	if groups != nil && len(groups) != sliceLen {
		return nil, nil, ErrShapeMismatch
	}

	// Rank each slice, then unify the result kind: one float slice (NaN
	// present) makes the whole result float.
	perInts := make([][]int64, sliceCount)
	perFloats := make([][]float64, sliceCount)
	anyFloat := cfg.Method == MethodAverage

	buf := make([]float64, sliceLen)
	for s := 0; s < sliceCount; s++ {
		slice := buf
		if axis == AxisRows {
			slice = values[s]
		} else {
			for r := 0; r < rows; r++ {
				slice[r] = values[r][s]
			}
		}
		ints, floats, err := RankGrouped(slice, groups, WithMethod(cfg.Method))
		if err != nil {
			return nil, nil, err
		}
		if floats != nil {
			anyFloat = true
		}
		perInts[s], perFloats[s] = ints, floats
	}

	if anyFloat {
		out := make([][]float64, rows)
		for r := range out {
			out[r] = make([]float64, cols)
		}
		for s := 0; s < sliceCount; s++ {
			for i := 0; i < sliceLen; i++ {
				v := perFloats[s]
				r, c := i, s
				if axis == AxisRows {
					r, c = s, i
				}
				if v != nil {
					out[r][c] = v[i]
				} else {
					out[r][c] = float64(perInts[s][i])
				}
			}
		}

		return nil, out, nil
	}

	out := make([][]int64, rows)
	for r := range out {
		out[r] = make([]int64, cols)
	}
	for s := 0; s < sliceCount; s++ {
		for i := 0; i < sliceLen; i++ {
			if axis == AxisRows {
				out[s][i] = perInts[s][i]
			} else {
				out[i][s] = perInts[s][i]
			}
		}
	}

	return out, nil, nil
}

// emptyInts returns a rows×cols int64 matrix (rows of length cols).
func emptyInts(rows, cols int) [][]int64 {
	out := make([][]int64, rows)
	for r := range out {
		out[r] = make([]int64, cols)
	}

	return out
}

// emptyFloats returns a rows×cols float64 matrix (rows of length cols).
func emptyFloats(rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for r := range out {
		out[r] = make([]float64, cols)
	}

	return out
}
