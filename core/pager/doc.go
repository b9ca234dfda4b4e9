// Package pager implements a data scroller over an externally paginated
// result: the window [Start, Start+Fetch) of Total rows.
//
// Moving the window calls the update callback only when the start row
// actually changed or an update was forced, so callers can fetch the next
// page lazily.
package pager
