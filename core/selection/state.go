package selection

// State is the serializable form of a Model.
type State struct {
	Selected []string `json:"selected"`
	Active   string   `json:"active,omitempty"`
	Anchor   int      `json:"anchor"`
	Offset   int      `json:"offset"`
	Rows     []string `json:"rows"`
}

// Snapshot returns the current state of the model.
func (m *Model) Snapshot() State {
	return State{
		Selected: m.SelectedKeys(),
		Active:   m.active,
		Anchor:   m.anchor,
		Offset:   m.offset,
		Rows:     m.PageKeys(),
	}
}

// Restore replaces the state of the model with s. RangeFunc is left as is.
func (m *Model) Restore(s State) {
	m.Clear()
	m.SetPage(s.Offset, s.Rows)
	for _, key := range s.Selected {
		m.add(key)
	}
	m.active = s.Active
	m.anchor = s.Anchor
	if m.anchor < -1 {
		m.anchor = -1
	}
}
