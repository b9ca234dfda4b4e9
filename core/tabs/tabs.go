package tabs

import (
	"maps"
	"slices"

	"admin-console/core/toolbar"
)

// Tab is one entry of the tab bar.
type Tab struct {
	// ID is the id of the content element shown by the tab.
	ID string `json:"id"`

	// Title is the tab caption. Titles are unique within a Set.
	Title string `json:"title"`

	// Active marks the selected tab.
	Active bool `json:"active"`

	// Command is resolved by the render adapter when the tab is clicked.
	// Empty commands fall back to toggling the tab.
	Command toolbar.Command `json:"command"`
}

// Set is the ordered tab bar of one session.
type Set struct {
	ResponseID string `json:"response_id"`
	Tabs       []Tab  `json:"tabs"`
}

// Add declares tab for the response responseID. A tab whose title is already
// known replaces the existing entry in place.
func (s *Set) Add(responseID string, tab Tab) {
	if s.ResponseID != responseID {
		s.Clear()
		s.ResponseID = responseID
	}
	if tab.Command.IsZero() {
		tab.Command = toolbar.Command{Name: "toggleTab", Params: map[string]string{"id": tab.ID}}
	}

	i := slices.IndexFunc(s.Tabs, func(t Tab) bool { return t.Title == tab.Title })
	if i < 0 {
		s.Tabs = append(s.Tabs, tab)
		return
	}
	s.Tabs[i] = tab
}

// Toggle activates the tab at pos and deactivates every other tab.
// It reports false and changes nothing if pos is out of range.
func (s *Set) Toggle(pos int) bool {
	if pos < 0 || pos >= len(s.Tabs) {
		return false
	}
	for i := range s.Tabs {
		s.Tabs[i].Active = i == pos
	}
	return true
}

// Active returns the position of the first active tab, or -1.
func (s *Set) Active() int {
	return slices.IndexFunc(s.Tabs, func(t Tab) bool { return t.Active })
}

// Clear drops every tab. The response id is kept.
func (s *Set) Clear() {
	s.Tabs = nil
}

// Len returns the number of tabs.
func (s *Set) Len() int {
	return len(s.Tabs)
}

// Clone returns a copy of s that shares no tab storage with it.
func (s Set) Clone() Set {
	out := Set{ResponseID: s.ResponseID, Tabs: slices.Clone(s.Tabs)}
	for i, t := range out.Tabs {
		if t.Command.Params != nil {
			out.Tabs[i].Command.Params = maps.Clone(t.Command.Params)
		}
	}
	return out
}
