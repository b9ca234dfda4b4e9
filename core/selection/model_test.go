package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(offset int, keys ...string) *Model {
	m := New()
	m.SetPage(offset, keys)
	return m
}

// TestClick_Plain tests that a plain click replaces the selection.
func TestClick_Plain(t *testing.T) {
	m := page(0, "1.1", "2.1", "3.1")
	m.SelectAllOnPage()

	res := m.Click("2.1", 1, Modifiers{})

	assert.Equal(t, []string{"2.1"}, m.SelectedKeys())
	assert.True(t, res.Selected)
	assert.True(t, res.Local)
	active, ok := m.Active()
	assert.True(t, ok)
	assert.Equal(t, "2.1", active)
	assert.Equal(t, 1, m.Anchor())
}

// TestClick_CtrlAfterSelectAll covers deselecting one row of a fully selected page.
func TestClick_CtrlAfterSelectAll(t *testing.T) {
	m := page(0, "1.1", "2.1", "3.1")
	m.SelectAllOnPage()

	res := m.Click("2.1", 1, Modifiers{Ctrl: true})

	assert.ElementsMatch(t, []string{"1.1", "3.1"}, m.SelectedKeys())
	assert.False(t, res.Selected)
	active, _ := m.Active()
	assert.Equal(t, "2.1", active)
}

// TestClick_CtrlUnknownKey tests that ctrl clicks accept keys outside the page.
func TestClick_CtrlUnknownKey(t *testing.T) {
	m := page(0, "1.1")

	res := m.Click("9.9", -1, Modifiers{Ctrl: true})

	assert.True(t, res.Selected)
	assert.True(t, m.IsSelected("9.9"))
	assert.Equal(t, -1, m.Anchor())
}

func TestClick_ShiftRange(t *testing.T) {
	tests := []struct {
		name   string
		anchor int
		target int
		ctrl   bool
		extra  []string
		want   []string
	}{
		{name: "Forward", anchor: 1, target: 3, want: []string{"b", "c", "d"}},
		{name: "Backward", anchor: 3, target: 0, want: []string{"d", "c", "b", "a"}},
		{name: "SameRow", anchor: 2, target: 2, want: []string{"c"}},
		{name: "CtrlKeepsSelection", anchor: 0, target: 1, ctrl: true, extra: []string{"x"}, want: []string{"x", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := page(10, "a", "b", "c", "d", "e")
			key, _ := m.KeyAt(tt.anchor)
			m.Click(key, tt.anchor, Modifiers{})
			for _, k := range tt.extra {
				m.Click(k, -1, Modifiers{Ctrl: true})
			}
			if tt.extra != nil {
				// ctrl clicks off the page drop the anchor; restore it.
				m.SelectRow(tt.anchor)
			}

			target, _ := m.KeyAt(tt.target)
			res := m.Click(target, tt.target, Modifiers{Shift: true, Ctrl: tt.ctrl})

			assert.True(t, res.Local)
			assert.False(t, res.Delegated)
			assert.ElementsMatch(t, tt.want, m.SelectedKeys())
			assert.Equal(t, 10+tt.target, m.Anchor())
		})
	}
}

// TestClick_ShiftWithoutAnchor tests that the first page row is the default anchor.
func TestClick_ShiftWithoutAnchor(t *testing.T) {
	m := page(5, "a", "b", "c")

	res := m.Click("c", 2, Modifiers{Shift: true})

	assert.True(t, res.Local)
	assert.Equal(t, []string{"a", "b", "c"}, res.Range)
	assert.Equal(t, []string{"a", "b", "c"}, m.SelectedKeys())
}

// TestClick_ShiftAnchorOffPage tests the degraded single selection and the range callback.
func TestClick_ShiftAnchorOffPage(t *testing.T) {
	m := page(0, "a", "b", "c")
	m.Click("b", 1, Modifiers{})
	m.SetPage(3, []string{"d", "e", "f"})

	res := m.Click("e", 1, Modifiers{Shift: true})
	assert.False(t, res.Local)
	assert.False(t, res.Delegated)
	assert.Equal(t, []string{"e"}, m.SelectedKeys())

	var from, to int
	m.RangeFunc = func(a, b int) []string {
		from, to = a, b
		return []string{"x", "y"}
	}
	m.SetPage(6, []string{"g", "h"})
	res = m.Click("h", 1, Modifiers{Shift: true})

	assert.False(t, res.Local)
	assert.True(t, res.Delegated)
	assert.Equal(t, 4, from)
	assert.Equal(t, 7, to)
	assert.ElementsMatch(t, []string{"h", "x", "y"}, m.SelectedKeys())
}

// TestClick_ShiftUnresolvableIndex tests the degraded selection for unknown page indices.
func TestClick_ShiftUnresolvableIndex(t *testing.T) {
	m := page(0, "a", "b")
	m.Click("a", 0, Modifiers{})
	m.RangeFunc = func(int, int) []string {
		t.Fatal("range func must not be called")
		return nil
	}

	res := m.Click("z", 7, Modifiers{Shift: true})

	assert.False(t, res.Local)
	assert.True(t, res.Selected)
	assert.Equal(t, []string{"z"}, m.SelectedKeys())
	assert.Equal(t, -1, m.Anchor())
}

// TestSelection_PersistsAcrossPages tests that page navigation keeps the selected keys.
func TestSelection_PersistsAcrossPages(t *testing.T) {
	m := page(0, "a", "b")
	m.SelectAllOnPage()

	m.SetPage(2, []string{"c", "d"})
	m.Click("d", 1, Modifiers{Ctrl: true})

	assert.Equal(t, []string{"a", "b", "d"}, m.SelectedKeys())
	assert.Equal(t, 2, m.Offset())
	assert.Equal(t, 3, m.Len())
}

func TestRowGroups(t *testing.T) {
	m := page(0, "a", "b", "a", "c")

	assert.Equal(t, []int{0, 2}, m.Rows("a"))
	assert.Empty(t, m.Rows("z"))

	m.SelectAllOnPage()
	assert.Equal(t, []string{"a", "b", "c"}, m.SelectedKeys())
}

func TestSelectRow(t *testing.T) {
	m := page(4, "a", "b")
	m.Click("a", 0, Modifiers{})

	assert.True(t, m.SelectRow(1))
	assert.False(t, m.SelectRow(2))
	assert.Equal(t, []string{"a", "b"}, m.SelectedKeys())
	assert.Equal(t, 5, m.Anchor())
}

func TestSelectAllMatching(t *testing.T) {
	m := page(0, "1.1")
	m.Click("1.1", 0, Modifiers{})

	added := m.SelectAllMatching([]string{"1.1", "1.2", "2.1", "1.3"}, func(k string) bool {
		return k[0] == '1'
	})

	assert.Equal(t, 2, added)
	assert.Equal(t, []string{"1.1", "1.2", "1.3"}, m.SelectedKeys())

	assert.Equal(t, 1, m.SelectAllMatching([]string{"2.1"}, nil))
}

func TestClear(t *testing.T) {
	m := page(0, "a", "b")
	m.SelectAllOnPage()
	m.Click("a", 0, Modifiers{Ctrl: true})

	m.Clear()

	assert.Zero(t, m.Len())
	assert.False(t, m.IsSelected("b"))
	_, ok := m.Active()
	assert.False(t, ok)
	assert.Equal(t, -1, m.Anchor())
}

func TestSnapshotRestore(t *testing.T) {
	m := page(3, "a", "b", "c")
	m.Click("a", 0, Modifiers{})
	m.Click("c", 2, Modifiers{Shift: true})

	restored := New()
	restored.Restore(m.Snapshot())

	require.Equal(t, m.SelectedKeys(), restored.SelectedKeys())
	assert.Equal(t, m.Anchor(), restored.Anchor())
	assert.Equal(t, m.PageKeys(), restored.PageKeys())
	assert.Equal(t, []int{1}, restored.Rows("b"))

	res := restored.Click("b", 1, Modifiers{Shift: true})
	assert.True(t, res.Local)
	assert.Equal(t, []string{"b", "c"}, restored.SelectedKeys())
}
