package rank

import (
	"cmp"
	"math"
	"slices"
)

// Rank assigns ranks to values as one single group, i.e. classic rankdata
// semantics. It is shorthand for RankGrouped with a nil group sequence.
//
// Returns (ints, floats, err): exactly one of ints/floats is non-nil.
// floats is returned for MethodAverage or whenever values contains NaN;
// ints is returned otherwise. NaN inputs receive NaN ranks.
//
// Complexity: O(N log N) time, O(N) space.
func Rank(values []float64, opts ...Option) ([]int64, []float64, error) {
	return RankGrouped[int](values, nil, opts...)
}

// RankGrouped assigns ranks to values independently within groups:
// element i competes only against elements j with groups[j] == groups[i],
// and every group's ranks start at 1. A nil groups sequence means one
// implicit group spanning all elements.
//
// Ordering inside a group is by value, ascending; NaN sorts after every
// finite value. Equal values keep their original input order (the sort is
// stable), which fixes MethodOrdinal tie-breaking.
//
// Returns (ints, floats, err): exactly one of ints/floats is non-nil.
// floats is returned for MethodAverage or whenever values contains NaN,
// with NaN positions holding NaN; ints is returned otherwise.
//
// Preconditions and validation (in order):
//  1. Options.Method must be an enumerated Method (ErrUnsupportedMethod).
//  2. groups, when non-nil, must have the same length as values
//     (ErrShapeMismatch).
//
// Complexity:
//
//   - Time:  O(N log N) — one stable sort over an index permutation,
//     then constant number of linear passes
//   - Space: O(N)
func RankGrouped[K cmp.Ordered](values []float64, groups []K, opts ...Option) ([]int64, []float64, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts { // apply each functional option
		opt(&cfg)
	}
	if !cfg.Method.valid() {
		return nil, nil, ErrUnsupportedMethod
	}
	if groups != nil && len(groups) != len(values) {
		return nil, nil, ErrShapeMismatch
	}

	n := len(values)
	if n == 0 {
		if cfg.Method == MethodAverage {
			return nil, []float64{}, nil
		}

		return []int64{}, nil, nil
	}

	// 2) Partition: index permutation, stably sorted by (group, value).
	sorter := make([]int, n)
	for i := range sorter {
		sorter[i] = i
	}
	slices.SortStableFunc(sorter, func(i, j int) int {
		if groups != nil {
			if c := cmp.Compare(groups[i], groups[j]); c != 0 {
				return c
			}
		}

		return compareValues(values[i], values[j])
	})

	// groupStart[p] is the sorted position of the first element of p's
	// group. Subtracting it from global statistics makes every group's
	// numbering start at 1.
	groupStart := make([]int, n)
	start := 0
	for p := 1; p < n; p++ {
		if groups != nil && groups[sorter[p]] != groups[sorter[p-1]] {
			start = p
		}
		groupStart[p] = start
	}

	// 3) Tie boundaries over the sorted order. A group boundary forces a
	// tie boundary even when the value repeats across groups, so runs
	// never merge across groups. NaN != NaN, so each NaN is its own run.
	boundary := make([]bool, n)
	boundary[0] = true
	for p := 1; p < n; p++ {
		boundary[p] = groupStart[p] == p || values[sorter[p]] != values[sorter[p-1]]
	}

	// 4) Assign within-group ranks and scatter back to input positions.
	var ints []int64
	var floats []float64

	switch cfg.Method {
	case MethodOrdinal:
		ints = make([]int64, n)
		for p, orig := range sorter {
			ints[orig] = int64(p - groupStart[p] + 1)
		}

	case MethodDense:
		// dense[p] is the 1-based running count of tie boundaries; the
		// group's starting dense id is subtracted so counting restarts
		// per group.
		dense := make([]int64, n)
		var id int64
		for p := 0; p < n; p++ {
			if boundary[p] {
				id++
			}
			dense[p] = id
		}
		ints = make([]int64, n)
		for p, orig := range sorter {
			ints[orig] = dense[p] - dense[groupStart[p]] + 1
		}

	default: // MethodMin, MethodMax, MethodAverage
		if cfg.Method == MethodAverage {
			floats = make([]float64, n)
		} else {
			ints = make([]int64, n)
		}
		// Walk tie runs [s, e); a run never crosses a group boundary,
		// so groupStart is constant inside it.
		for s := 0; s < n; {
			e := s + 1
			for e < n && !boundary[e] {
				e++
			}
			minRank := int64(s - groupStart[s] + 1)
			maxRank := int64(e - groupStart[s])
			for p := s; p < e; p++ {
				switch cfg.Method {
				case MethodMin:
					ints[sorter[p]] = minRank
				case MethodMax:
					ints[sorter[p]] = maxRank
				case MethodAverage:
					floats[sorter[p]] = 0.5 * float64(minRank+maxRank)
				}
			}
			s = e
		}
	}

	// 5) Patch missing values: promote to float64 and overwrite NaN
	// positions, leaving every other rank unchanged.
	if !hasNaN(values) {
		if cfg.Method == MethodAverage {
			return nil, floats, nil
		}

		return ints, nil, nil
	}

	if floats == nil {
		floats = make([]float64, n)
		for i, r := range ints {
			floats[i] = float64(r)
		}
	}
	for i, v := range values {
		if math.IsNaN(v) {
			floats[i] = math.NaN()
		}
	}

	return nil, floats, nil
}

// compareValues orders float64 values ascending with NaN after every
// finite value; NaN compares equal to NaN so stability keeps input order.
func compareValues(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}

	return cmp.Compare(a, b)
}

// hasNaN reports whether values contains at least one NaN.
func hasNaN(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}
