package pager

import (
	"errors"
	"fmt"
)

// ErrUnknownMove is returned by Move for names it does not know.
var ErrUnknownMove = errors.New("unknown move")

// UpdateFunc is called after the window moved.
type UpdateFunc func(s *Scroller)

// Scroller tracks the visible window of a paginated result.
type Scroller struct {
	Start int `json:"start"`
	Total int `json:"total"`
	Fetch int `json:"fetch"`

	// OnUpdate is called when Start changed or an update was forced.
	OnUpdate UpdateFunc `json:"-"`

	last int
}

// New returns a scroller at row start.
func New(start, total, fetch int, onUpdate UpdateFunc) *Scroller {
	s := &Scroller{OnUpdate: onUpdate}
	s.Reset(start, total, fetch)
	return s
}

// Reset replaces the window without calling OnUpdate. Fetch values below 1
// are treated as 1.
func (s *Scroller) Reset(start, total, fetch int) {
	s.Total = max(total, 0)
	s.Fetch = max(fetch, 1)
	s.Start = min(max(start, 0), s.lastStart())
	s.last = s.Start
}

// First moves to the first page.
func (s *Scroller) First() {
	s.Start = 0
	s.update()
}

// Previous moves one page back, stopping at the first row.
func (s *Scroller) Previous() {
	s.Start = max(0, s.Start-s.Fetch)
	s.update()
}

// Next moves one page forward if another page exists.
func (s *Scroller) Next() {
	if s.HasNext() {
		s.Start += s.Fetch
	}
	s.update()
}

// Last moves to the last page.
func (s *Scroller) Last() {
	s.Start = s.lastStart()
	s.update()
}

// Refresh forces an update and moves to the first page.
func (s *Scroller) Refresh() {
	s.ForceUpdate()
	s.First()
}

// ForceUpdate makes the next move call OnUpdate even if Start stays put.
func (s *Scroller) ForceUpdate() {
	s.last = -1
}

// Move applies a named move: first, previous, next, last or refresh.
func (s *Scroller) Move(name string) error {
	switch name {
	case "first":
		s.First()
	case "previous":
		s.Previous()
	case "next":
		s.Next()
	case "last":
		s.Last()
	case "refresh":
		s.Refresh()
	default:
		return fmt.Errorf("%w %q", ErrUnknownMove, name)
	}
	return nil
}

// Text returns the position text, e.g. "26 - 50 / 120".
func (s *Scroller) Text() string {
	return fmt.Sprintf("%d - %d / %d", s.Start+1, min(s.Total, s.Start+s.Fetch), s.Total)
}

// IsNecessary reports whether there is anything to scroll.
func (s *Scroller) IsNecessary() bool {
	return s.Total > 0
}

// HasPrevious reports whether a previous page exists.
func (s *Scroller) HasPrevious() bool {
	return s.IsNecessary() && s.Start > 0
}

// HasNext reports whether a next page exists.
func (s *Scroller) HasNext() bool {
	return s.IsNecessary() && s.Start+s.Fetch < s.Total
}

func (s *Scroller) lastStart() int {
	if s.Total <= 0 {
		return 0
	}
	return (s.Total - 1) / s.Fetch * s.Fetch
}

func (s *Scroller) update() {
	if s.last == s.Start {
		return
	}
	s.last = s.Start
	if s.OnUpdate != nil {
		s.OnUpdate(s)
	}
}
