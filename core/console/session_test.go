package console

import (
	"testing"

	"admin-console/core/selection"
	"admin-console/core/tabs"
	"admin-console/core/toolbar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAdapter struct {
	mock.Mock
}

func (m *mockAdapter) ElementExists(id string) bool {
	return m.Called(id).Bool(0)
}

func (m *mockAdapter) ReadDeclaredButtons(scope toolbar.Region) []toolbar.Button {
	args := m.Called(scope)
	if b, ok := args.Get(0).([]toolbar.Button); ok {
		return b
	}
	return nil
}

func (m *mockAdapter) ApplyToolbarState(state toolbar.State) {
	m.Called(state)
}

func (m *mockAdapter) ReadRowKeyAt(pageIndex int) (string, bool) {
	args := m.Called(pageIndex)
	return args.String(0), args.Bool(1)
}

func (m *mockAdapter) HighlightRow(key string, selected bool) {
	m.Called(key, selected)
}

func button(id string) toolbar.Button {
	return toolbar.Button{ID: id, Label: id, Action: toolbar.Command{Name: "trigger", Params: map[string]string{"id": id}}}
}

func ids(s toolbar.State) []string {
	out := make([]string, len(s))
	for i, b := range s {
		out[i] = b.ID
		if b.IsSeparator() {
			out[i] = "|"
		}
	}
	return out
}

// TestSession_CompleteAppliesChangedToolbar tests the full render followed by a partial update.
func TestSession_CompleteAppliesChangedToolbar(t *testing.T) {
	s := NewSession("s1", 0, nil)
	s.BeginPage()
	s.Register(toolbar.Registration{ID: "B"})

	page := &Fragment{Toolbar: []toolbar.Button{button("A"), button("B"), toolbar.Separator(), button("C")}}
	res, err := s.Complete(page, Response{RequestID: 1, Full: true})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, []string{"A", "B", "|", "C"}, ids(page.Applied))
	assert.Equal(t, toolbar.RegionToolbar, s.Toolbar()[0].Origin)

	partial := &Fragment{Present: map[string]bool{"B": false}}
	res, err = s.Complete(partial, Response{RequestID: 2})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, []string{"A", "|", "C"}, ids(partial.Applied))
	assert.Equal(t, uint64(2), s.LastRequest())
}

// TestSession_CompleteUnchanged tests that an unchanged toolbar is not re-rendered.
func TestSession_CompleteUnchanged(t *testing.T) {
	s := NewSession("s1", 0, nil)
	_, err := s.Complete(&Fragment{Toolbar: []toolbar.Button{button("A")}}, Response{RequestID: 1, Full: true})
	require.NoError(t, err)

	ui := new(mockAdapter)
	ui.On("ReadDeclaredButtons", toolbar.RegionContent).Return(nil)
	ui.On("ReadDeclaredButtons", toolbar.RegionToolbar).Return([]toolbar.Button{button("A")})

	res, err := s.Complete(ui, Response{RequestID: 2})
	require.NoError(t, err)
	assert.False(t, res.Changed)
	ui.AssertNotCalled(t, "ApplyToolbarState", mock.Anything)
	ui.AssertExpectations(t)
}

// TestSession_CompleteRejectsStaleResponses tests the request order guard.
func TestSession_CompleteRejectsStaleResponses(t *testing.T) {
	s := NewSession("s1", 0, nil)
	_, err := s.Complete(&Fragment{}, Response{RequestID: 5})
	require.NoError(t, err)

	for _, id := range []uint64{5, 4, 0} {
		_, err := s.Complete(&Fragment{Toolbar: []toolbar.Button{button("X")}}, Response{RequestID: id})
		assert.ErrorIs(t, err, ErrStaleResponse)
	}
	assert.Empty(t, s.Toolbar())
	assert.Equal(t, uint64(5), s.LastRequest())
}

func TestSession_ToolbarItems(t *testing.T) {
	s := NewSession("s1", 0, nil)
	s.AddToolbarItem("r1", button("old"), false)
	s.AddToolbarItem("r2", button("save"), false)
	s.AddToolbarSeparator()
	s.AddToolbarItem("r2", button("delete"), true)

	pending := s.PendingItems()
	require.Len(t, pending, 3)
	assert.Equal(t, toolbar.RegionContent, pending[0].Origin)
	assert.True(t, pending[2].IsDisabled())

	res, err := s.Complete(nil, Response{RequestID: 1, Full: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"save", "|", "delete"}, ids(res.State))
	assert.Empty(t, s.PendingItems())
}

// TestSession_DisabledItemSurvivesPartialUpdate tests the disabled style across responses.
func TestSession_DisabledItemSurvivesPartialUpdate(t *testing.T) {
	s := NewSession("s1", 0, nil)
	s.AddToolbarItem("r1", button("delete"), true)
	_, err := s.Complete(nil, Response{RequestID: 1, Full: true})
	require.NoError(t, err)

	_, err = s.Complete(&Fragment{Content: []toolbar.Button{button("delete")}}, Response{RequestID: 2})
	require.NoError(t, err)
	require.Len(t, s.Toolbar(), 1)
	assert.True(t, s.Toolbar()[0].IsDisabled())
}

func TestSession_Register(t *testing.T) {
	s := NewSession("s1", 0, nil)
	s.Register(toolbar.Registration{ID: "A"})
	s.Register(toolbar.Registration{ID: ""})
	s.Register(toolbar.Registration{ID: "A", ToolbarOnly: true})

	regs := s.Registrations()
	require.Len(t, regs, 1)
	assert.True(t, regs[0].ToolbarOnly)
}

// TestSession_BeginPage tests which state a full page render drops.
func TestSession_BeginPage(t *testing.T) {
	s := NewSession("s1", 0, nil)
	s.Register(toolbar.Registration{ID: "A"})
	s.AddToolbarItem("r1", button("A"), false)
	_, err := s.Complete(nil, Response{RequestID: 1, Full: true})
	require.NoError(t, err)
	s.Tabs().Add("r1", tabs.Tab{Title: "General"})
	s.Errors().Add("frm:name", "required")
	s.Clipboard().Set([]string{"42.1"})
	s.Selection().SetPage(0, []string{"1.1"})
	s.Selection().SelectAllOnPage()

	s.BeginPage()

	assert.Empty(t, s.Toolbar())
	assert.Empty(t, s.Registrations())
	assert.Zero(t, s.Tabs().Len())
	assert.Empty(t, s.Errors().All())
	assert.Equal(t, []string{"42.1"}, s.Clipboard().Get())
	assert.True(t, s.Selection().IsSelected("1.1"))
	assert.Equal(t, uint64(1), s.LastRequest())
}

func TestSession_Click(t *testing.T) {
	s := NewSession("s1", 0, nil)
	ui := &Fragment{Rows: []string{"1.1", "2.1", "3.1"}}
	s.ShowPage(ui, 0, ui.Rows)
	s.SelectAllOnPage(ui)

	res, err := s.Click(ui, 1, selection.Modifiers{Ctrl: true})
	require.NoError(t, err)
	assert.False(t, res.Selected)
	assert.ElementsMatch(t, []string{"1.1", "3.1"}, s.Selection().SelectedKeys())
	assert.Equal(t, map[string]bool{"1.1": true, "2.1": false, "3.1": true}, ui.Highlights)
}

// TestSession_ClickUnknownRow tests that an unresolvable row is a no-op.
func TestSession_ClickUnknownRow(t *testing.T) {
	s := NewSession("s1", 0, nil)
	ui := new(mockAdapter)
	ui.On("ReadRowKeyAt", 4).Return("", false)

	_, err := s.Click(ui, 4, selection.Modifiers{})
	assert.ErrorIs(t, err, ErrRowNotFound)
	assert.Zero(t, s.Selection().Len())
	ui.AssertNotCalled(t, "HighlightRow", mock.Anything, mock.Anything)

	_, err = s.Click(nil, 0, selection.Modifiers{})
	assert.ErrorIs(t, err, ErrRowNotFound)
}

// TestSession_HighlightsRowGroupsOnce tests that a key rendered twice is highlighted once.
func TestSession_HighlightsRowGroupsOnce(t *testing.T) {
	s := NewSession("s1", 0, nil)
	ui := new(mockAdapter)
	ui.On("HighlightRow", "a", false).Once()
	ui.On("HighlightRow", "b", false).Once()

	s.ShowPage(ui, 0, []string{"a", "b", "a"})
	ui.AssertExpectations(t)
}

func TestSession_SelectRow(t *testing.T) {
	s := NewSession("s1", 0, nil)
	ui := &Fragment{}
	s.ShowPage(ui, 0, []string{"1.1", "2.1", "3.1"})

	require.NoError(t, s.SelectRow(ui, 0))
	require.NoError(t, s.SelectRow(ui, 2))
	assert.ElementsMatch(t, []string{"1.1", "3.1"}, s.Selection().SelectedKeys())
	assert.Equal(t, map[string]bool{"1.1": true, "2.1": false, "3.1": true}, ui.Highlights)

	assert.ErrorIs(t, s.SelectRow(ui, 3), ErrRowNotFound)
	assert.Equal(t, 2, s.Selection().Len())
}

func TestSession_SelectAllAndClear(t *testing.T) {
	s := NewSession("s1", 0, nil)
	ui := &Fragment{}
	s.ShowPage(ui, 0, []string{"1.1", "2.1"})

	n := s.SelectAll(ui, []string{"1.1", "1.2", "2.1"}, func(k string) bool { return k != "2.1" })
	assert.Equal(t, 2, n)
	assert.True(t, ui.Highlights["1.1"])
	assert.False(t, ui.Highlights["2.1"])

	s.ClearSelection(ui)
	assert.Zero(t, s.Selection().Len())
	assert.False(t, ui.Highlights["1.1"])
}

func TestSession_SnapshotRoundTrip(t *testing.T) {
	s := NewSession("s1", 10, nil)
	s.Register(toolbar.Registration{ID: "A"})
	s.AddToolbarItem("r1", button("A"), true)
	_, err := s.Complete(nil, Response{RequestID: 3, Full: true})
	require.NoError(t, err)
	s.AddToolbarItem("r2", button("B"), false)
	s.Tabs().Add("r1", tabs.Tab{ID: "t", Title: "General", Active: true})
	s.Errors().Add("frm:name", "required")
	s.Clipboard().Set([]string{"7.1"})
	s.ShowPage(nil, 20, []string{"a", "b"})
	s.Selection().Click("b", 1, selection.Modifiers{})
	s.Pager().Reset(20, 35, 10)

	data, err := s.Marshal()
	require.NoError(t, err)
	restored, err := Unmarshal(data, nil)
	require.NoError(t, err)

	assert.Equal(t, "s1", restored.ID())
	assert.Equal(t, s.Toolbar(), restored.Toolbar())
	assert.Equal(t, s.Registrations(), restored.Registrations())
	assert.Equal(t, s.PendingItems(), restored.PendingItems())
	assert.Equal(t, uint64(3), restored.LastRequest())
	assert.Equal(t, s.Tabs().Tabs, restored.Tabs().Tabs)
	assert.Equal(t, s.Errors().All(), restored.Errors().All())
	assert.Equal(t, []string{"7.1"}, restored.Clipboard().Get())
	assert.Equal(t, []string{"b"}, restored.Selection().SelectedKeys())
	assert.Equal(t, 21, restored.Selection().Anchor())
	assert.Equal(t, "21 - 30 / 35", restored.Pager().Text())

	_, err = restored.Complete(nil, Response{RequestID: 3})
	assert.ErrorIs(t, err, ErrStaleResponse)
}

func TestUnmarshal_Invalid(t *testing.T) {
	_, err := Unmarshal([]byte("{"), nil)
	assert.Error(t, err)

	_, err = Unmarshal([]byte(`{"toolbar":[]}`), nil)
	assert.EqualError(t, err, "failed to decode session: missing id")
}
