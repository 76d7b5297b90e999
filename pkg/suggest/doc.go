// Package suggest builds the recipient autocomplete directory.
//
// BuildIndex derives a deduplicated list of known addresses from customers
// and partners; Query answers case-insensitive substring searches over
// labels and addresses. Both are pure functions of their inputs and can be
// recomputed freely whenever the underlying lists change.
//
// Navigator holds the keyboard state for one open suggestion list
// (highlight cycling, accept, dismiss). It is UI-agnostic: arrow-key and
// click wiring lives in the presentation layer.
package suggest
