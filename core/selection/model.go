package selection

import "slices"

// Modifiers holds the keyboard modifiers of a click.
type Modifiers struct {
	Shift bool `json:"shift"`
	Ctrl  bool `json:"ctrl"`
}

// RangeFunc resolves a shift range that cannot be computed from the current
// page. from and to are absolute row indices in click order; the returned keys
// are added to the selection.
type RangeFunc func(from, to int) []string

// ClickResult describes the outcome of a click.
type ClickResult struct {
	// Key is the clicked key.
	Key string `json:"key"`

	// Selected reports whether Key is selected after the click.
	Selected bool `json:"selected"`

	// Local is false if a shift range could not be computed from the
	// current page and the click degraded to a single selection.
	Local bool `json:"local"`

	// Delegated reports whether the RangeFunc was asked to resolve the range.
	Delegated bool `json:"delegated"`

	// Range holds the keys selected by a shift click, in page order.
	Range []string `json:"range,omitempty"`
}

// Model is the selection state of one result table. It is not safe for
// concurrent use.
type Model struct {
	// RangeFunc is called for shift clicks whose anchor lies off the page.
	RangeFunc RangeFunc

	selected map[string]struct{}
	order    []string
	active   string
	anchor   int

	offset int
	rows   []string
	groups map[string][]int
}

// New returns an empty model.
func New() *Model {
	return &Model{
		selected: make(map[string]struct{}),
		anchor:   -1,
		groups:   make(map[string][]int),
	}
}

// SetPage replaces the materialized rows. offset is the absolute index of the
// first row and keys lists the row keys by page index. The selection is kept.
func (m *Model) SetPage(offset int, keys []string) {
	m.offset = max(offset, 0)
	m.rows = slices.Clone(keys)
	m.groups = make(map[string][]int, len(keys))
	for i, key := range keys {
		m.groups[key] = append(m.groups[key], i)
	}
}

// Offset returns the absolute index of the first row on the page.
func (m *Model) Offset() int {
	return m.offset
}

// PageKeys returns the row keys of the current page by page index.
func (m *Model) PageKeys() []string {
	return slices.Clone(m.rows)
}

// Rows returns the page indices of every row rendering key.
func (m *Model) Rows(key string) []int {
	return slices.Clone(m.groups[key])
}

// KeyAt returns the key of the row at pageIndex.
func (m *Model) KeyAt(pageIndex int) (string, bool) {
	if pageIndex < 0 || pageIndex >= len(m.rows) {
		return "", false
	}
	return m.rows[pageIndex], true
}

// Click applies a click on key, rendered at pageIndex of the current page.
// The key is not validated against the page; pageIndex only matters for
// shift ranges and for the anchor of later ones.
func (m *Model) Click(key string, pageIndex int, mods Modifiers) ClickResult {
	res := ClickResult{Key: key, Local: true}

	switch {
	case mods.Shift:
		if !mods.Ctrl {
			m.reset()
		}
		m.shift(key, pageIndex, &res)
	case mods.Ctrl:
		if m.IsSelected(key) {
			m.remove(key)
		} else {
			m.add(key)
		}
		m.focus(key, pageIndex)
	default:
		m.reset()
		m.add(key)
		m.focus(key, pageIndex)
	}

	res.Selected = m.IsSelected(key)
	return res
}

func (m *Model) shift(key string, pageIndex int, res *ClickResult) {
	anchor := m.anchor
	if anchor < 0 {
		anchor = m.offset
	}

	_, onPage := m.KeyAt(pageIndex)
	if !onPage || !m.onPage(anchor) {
		res.Local = false
		m.add(key)
		if onPage && m.RangeFunc != nil {
			res.Delegated = true
			for _, k := range m.RangeFunc(anchor, m.offset+pageIndex) {
				m.add(k)
			}
		}
		m.focus(key, pageIndex)
		return
	}

	from, to := anchor-m.offset, pageIndex
	if from > to {
		from, to = to, from
	}
	for _, k := range m.rows[from : to+1] {
		m.add(k)
		if !slices.Contains(res.Range, k) {
			res.Range = append(res.Range, k)
		}
	}
	m.add(key)
	m.focus(key, pageIndex)
}

// SelectRow adds the row at pageIndex to the selection and makes it active.
// It reports false if pageIndex is not on the page.
func (m *Model) SelectRow(pageIndex int) bool {
	key, ok := m.KeyAt(pageIndex)
	if !ok {
		return false
	}
	m.add(key)
	m.focus(key, pageIndex)
	return true
}

// SelectAllOnPage adds every key of the current page.
func (m *Model) SelectAllOnPage() {
	for _, key := range m.rows {
		m.add(key)
	}
}

// SelectAllMatching adds every key of keys for which match returns true.
// A nil match selects all keys.
func (m *Model) SelectAllMatching(keys []string, match func(string) bool) int {
	added := 0
	for _, key := range keys {
		if match != nil && !match(key) {
			continue
		}
		if m.add(key) {
			added++
		}
	}
	return added
}

// Clear empties the selection and drops the active key.
func (m *Model) Clear() {
	m.reset()
	m.active = ""
	m.anchor = -1
}

// IsSelected reports whether key is selected.
func (m *Model) IsSelected(key string) bool {
	_, ok := m.selected[key]
	return ok
}

// SelectedKeys returns the selected keys in insertion order.
func (m *Model) SelectedKeys() []string {
	return slices.Clone(m.order)
}

// Len returns the number of selected keys.
func (m *Model) Len() int {
	return len(m.order)
}

// Active returns the most recently focused key.
func (m *Model) Active() (string, bool) {
	return m.active, m.active != ""
}

// Anchor returns the absolute row index of the active key, or -1.
func (m *Model) Anchor() int {
	return m.anchor
}

func (m *Model) onPage(abs int) bool {
	return abs >= m.offset && abs < m.offset+len(m.rows)
}

func (m *Model) focus(key string, pageIndex int) {
	m.active = key
	if _, ok := m.KeyAt(pageIndex); ok {
		m.anchor = m.offset + pageIndex
		return
	}
	m.anchor = -1
}

func (m *Model) add(key string) bool {
	if _, ok := m.selected[key]; ok {
		return false
	}
	m.selected[key] = struct{}{}
	m.order = append(m.order, key)
	return true
}

func (m *Model) remove(key string) {
	if _, ok := m.selected[key]; !ok {
		return
	}
	delete(m.selected, key)
	if i := slices.Index(m.order, key); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
}

func (m *Model) reset() {
	clear(m.selected)
	m.order = m.order[:0]
}
