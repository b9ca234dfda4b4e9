package console

import (
	"slices"

	"admin-console/core/toolbar"
)

// Adapter is the UI collaborator of a session.
type Adapter interface {
	// ElementExists reports whether the element backing a button id exists
	// in the region reachable from the fragment that was just updated.
	ElementExists(id string) bool
	// ReadDeclaredButtons returns the buttons declared in a region,
	// RegionContent or RegionToolbar, in markup order.
	ReadDeclaredButtons(scope toolbar.Region) []toolbar.Button
	// ApplyToolbarState renders a new toolbar.
	ApplyToolbarState(state toolbar.State)
	// ReadRowKeyAt returns the key of the row at pageIndex.
	ReadRowKeyAt(pageIndex int) (string, bool)
	// HighlightRow renders the selection state of every row of key.
	HighlightRow(key string, selected bool)
}

// Fragment is an Adapter over a decoded response payload. It records what
// the session applied so the caller can forward it to the browser.
type Fragment struct {
	Content []toolbar.Button `json:"content"`
	Toolbar []toolbar.Button `json:"toolbar"`

	// Present lists element existence per button id. Ids not listed exist.
	Present map[string]bool `json:"present"`

	// Rows lists the row keys of the rendered page by page index.
	Rows []string `json:"rows"`

	// Applied is the last toolbar passed to ApplyToolbarState, nil if none.
	Applied toolbar.State `json:"applied,omitempty"`

	// Highlights is the last highlight state per row key.
	Highlights map[string]bool `json:"highlights,omitempty"`
}

func (f *Fragment) ElementExists(id string) bool {
	return toolbar.PresenceMap(f.Present).ElementExists(id)
}

func (f *Fragment) ReadDeclaredButtons(scope toolbar.Region) []toolbar.Button {
	switch scope {
	case toolbar.RegionContent:
		return slices.Clone(f.Content)
	case toolbar.RegionToolbar:
		return slices.Clone(f.Toolbar)
	default:
		return nil
	}
}

func (f *Fragment) ApplyToolbarState(state toolbar.State) {
	f.Applied = state.Clone()
	if f.Applied == nil {
		f.Applied = toolbar.State{}
	}
}

func (f *Fragment) ReadRowKeyAt(pageIndex int) (string, bool) {
	if pageIndex < 0 || pageIndex >= len(f.Rows) {
		return "", false
	}
	return f.Rows[pageIndex], true
}

func (f *Fragment) HighlightRow(key string, selected bool) {
	if f.Highlights == nil {
		f.Highlights = make(map[string]bool)
	}
	f.Highlights[key] = selected
}
