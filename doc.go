// Package grank is an in-memory toolkit for rank statistics over numeric
// data — classic rankdata semantics extended with independent ranking
// inside disjoint groups.
//
// 🚀 What is grank?
//
//	A small, zero-dependency library that brings together:
//		• Ungrouped ranking: ordinal, min, max, average and dense ranks
//		• Grouped ranking: elements compete only inside their own group
//		• Missing-value handling: NaN inputs stay NaN in the output
//		• Axis iteration: rank every row or column of a 2-D matrix
//
// ✨ Why choose grank?
//
//   - Minimal API – one core operation, configured by functional options
//   - Deterministic – stable sorting, ties keep original input order
//   - Pure Go – no cgo, no hidden deps
//   - Predictable errors – sentinel set, matched with errors.Is
//
// Everything lives in one subpackage:
//
//	rank/ — the grouped-ranking core and the row/column axis wrapper
//
// Quick example:
//
//	    values: [10, 20, 10, 30]
//	    groups: [ A,  A,  B,  B]
//	    ranks:  [ 1,  2,  1,  2]   (average method, per-group numbering)
//
// Dive into rank/doc.go for the algorithm outline and complexity notes.
//
//	go get github.com/binshengliu/grank/rank
package grank
