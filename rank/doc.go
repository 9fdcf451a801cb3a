// Package rank assigns rank statistics to numeric sequences, independently
// within disjoint groups, with a configurable tie-resolution method.
//
// 🚀 What is grouped ranking?
//
//	Classic rankdata orders one sequence and numbers its elements 1..N.
//	Grouped ranking adds a key sequence: elements sharing a group key are
//	ranked only against each other, so every group's numbering restarts
//	at 1 and cross-group comparisons never influence any rank. It's
//	widely used in:
//	  • Per-query relevance ranking in IR evaluation
//	  • Per-category leaderboards & percentile features
//	  • Window-function style RANK() / DENSE_RANK() over partitions
//	  • Feature engineering on grouped observations
//
// ✨ Key features:
//   - five tie methods: ordinal, min, max, average, dense (see Method)
//   - stable ordering: equal values keep their original input order
//   - NaN-aware: missing inputs yield NaN ranks, neighbours unaffected
//   - axis wrapper: apply the core to every row or column of a matrix
//
// Algorithm Outline:
//  1. Build an index permutation, stably sorted by (group key, value);
//     NaN sorts after every finite value of its group.
//  2. Mark tie boundaries in sorted order: position 0, every group
//     boundary (forced even when the value repeats across groups), and
//     every change of value.
//  3. Convert sorted positions into within-group ranks for the requested
//     method, numbering each group from 1, then scatter the ranks back
//     to original input positions.
//  4. If any input was NaN, promote the result to float64 and overwrite
//     the NaN positions with NaN.
//
// ⚙️ Usage:
//
//	import "github.com/binshengliu/grank/rank"
//
//	values := []float64{10, 20, 10, 30}
//	groups := []string{"A", "A", "B", "B"}
//
//	_, ranks, err := rank.RankGrouped(values, groups)
//	// ranks = [1 2 1 2]
//
// Result kind: Rank and RankGrouped return (ints, floats, err) where
// exactly one of ints/floats is non-nil — floats for MethodAverage or
// whenever the input contains NaN, ints otherwise.
//
// Errors (sentinel):
//
//	– ErrShapeMismatch     if values and groups have different lengths,
//	                       or a 2-D input is ragged.
//	– ErrUnsupportedMethod if the method is outside the enumerated set.
//	– ErrBadAxis           if the axis is neither AxisColumns nor AxisRows.
//
// Complexity:
//
//   - Time:  O(N log N) — one stable sort, then linear passes
//   - Space: O(N) — permutation, boundary mask and output
//
// See examples in example_test.go.
package rank
