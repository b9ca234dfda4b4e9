// Package ordering provides small, allocation-conscious helpers over ordered
// sequences that are shared by the toolbar reconciler and the selection model.
//
// # Operations
//
//   - Relocate: stable remove-then-insert of a single element.
//   - Collapse: drop an element when it and its predecessor are both markers
//     (used for toolbar separators).
//   - FirstWins: de-duplicate by key, keeping the first occurrence.
//   - Index: build a key -> position lookup.
//
// All helpers are pure: they never modify their input slices.
package ordering
