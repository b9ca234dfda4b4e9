package toolbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func btn(id string) Button {
	return Button{ID: id, Label: id, IconRef: "icons/" + id + ".png", Action: Command{Name: "trigger", Params: map[string]string{"id": id}}}
}

func pos(p int) *int {
	return &p
}

func ids(s State) []string {
	out := make([]string, len(s))
	for i, b := range s {
		if b.IsSeparator() {
			out[i] = "|"
			continue
		}
		out[i] = b.ID
	}
	return out
}

func TestReconcile_RemovesAbsentRegisteredButton(t *testing.T) {
	res := Reconcile(Input{
		Declared: []Button{btn("A"), btn("C")},
		Registrations: []Registration{
			{ID: "A"}, {ID: "B"}, {ID: "C"},
		},
		Prior:    State{btn("A"), btn("B"), Separator(), btn("C")},
		Presence: PresenceMap{"B": false},
	})

	assert.True(t, res.Changed)
	assert.Equal(t, []string{"A", "|", "C"}, ids(res.State))
	require.Len(t, res.Actions, 1)
	assert.Equal(t, Action{Type: ActionRemove, ID: "B", From: 1, To: -1, Reason: "element absent"}, res.Actions[0])
	assert.Equal(t, 1, res.Summary.Removed)
	assert.False(t, res.Summary.Full)
}

func TestReconcile_ExplicitPositions(t *testing.T) {
	res := Reconcile(Input{
		Declared: []Button{btn("A"), btn("B")},
		Registrations: []Registration{
			{ID: "B", Position: pos(0)},
			{ID: "A", Position: pos(1)},
		},
		Prior: State{btn("A"), btn("B")},
	})

	assert.True(t, res.Changed)
	assert.Equal(t, []string{"B", "A"}, ids(res.State))
	assert.Equal(t, 1, res.Summary.Moved)
}

func TestReconcile_PositionsSkipMissingButtons(t *testing.T) {
	res := Reconcile(Input{
		Declared: []Button{btn("C"), btn("A")},
		Registrations: []Registration{
			{ID: "A", Position: pos(0)},
			{ID: "B", Position: pos(1)},
			{ID: "C", Position: pos(2)},
		},
		Prior:    State{btn("C"), btn("A")},
		Presence: PresenceMap{"B": false},
	})

	assert.Equal(t, []string{"A", "C"}, ids(res.State))
	assert.Equal(t, 1, res.Summary.Moved)
}

func TestReconcile_IncompletePositionsAreIgnored(t *testing.T) {
	res := Reconcile(Input{
		Declared: []Button{btn("A"), btn("B")},
		Registrations: []Registration{
			{ID: "B", Position: pos(0)},
			{ID: "A"},
		},
		Prior: State{btn("A"), btn("B")},
	})

	assert.False(t, res.Changed)
	assert.Equal(t, []string{"A", "B"}, ids(res.State))
	assert.Contains(t, res.Ignored, "positions ignored: incomplete permutation")
}

func TestReconcile_Idempotent(t *testing.T) {
	in := Input{
		Declared: []Button{btn("A"), btn("X")},
		Registrations: []Registration{
			{ID: "B"}, {ID: "X"},
		},
		Prior:    State{btn("A"), btn("B"), Separator(), btn("C")},
		Presence: PresenceMap{"B": false},
	}

	first := Reconcile(in)
	assert.True(t, first.Changed)
	assert.Equal(t, []string{"A", "X", "|", "C"}, ids(first.State))

	in.Prior = first.State
	second := Reconcile(in)
	assert.False(t, second.Changed)
	assert.Equal(t, first.State, second.State)
	assert.Empty(t, second.Actions)
}

func TestReconcile_DisabledStyleIsPreserved(t *testing.T) {
	disabled := btn("A")
	disabled.Style = StyleDisabled

	for _, authoritative := range []bool{false, true} {
		res := Reconcile(Input{
			Declared:      []Button{btn("A"), btn("B")},
			Prior:         State{disabled, btn("B")},
			Authoritative: authoritative,
		})

		require.Len(t, res.State, 2)
		assert.True(t, res.State[0].IsDisabled(), "authoritative=%v", authoritative)
		assert.False(t, res.Changed, "authoritative=%v", authoritative)
	}
}

func TestReconcile_DeclaredStyleWins(t *testing.T) {
	disabled := btn("A")
	disabled.Style = StyleDisabled
	active := btn("A")
	active.Style = "active"

	res := Reconcile(Input{
		Declared: []Button{active},
		Prior:    State{disabled},
	})

	require.Len(t, res.State, 1)
	assert.Equal(t, "active", res.State[0].Style)
	assert.False(t, res.Changed)
	assert.Equal(t, 1, res.Summary.Refreshed)
}

func TestReconcile_DuplicateIDsFirstWins(t *testing.T) {
	second := btn("A")
	second.Label = "second"

	res := Reconcile(Input{
		Declared:      []Button{btn("A"), Separator(), second, btn("B")},
		Authoritative: true,
	})

	assert.Equal(t, []string{"A", "|", "B"}, ids(res.State))
	assert.Equal(t, "A", res.State[0].Label)
	assert.Equal(t, 1, res.Summary.Duplicates)
	assert.Contains(t, res.Ignored, "duplicate id: A")
	assert.True(t, res.Changed)
}

func TestReconcile_CollapsesSeparators(t *testing.T) {
	res := Reconcile(Input{
		Declared:      []Button{btn("A"), btn("C")},
		Registrations: []Registration{{ID: "B"}},
		Prior:         State{btn("A"), Separator(), btn("B"), Separator(), btn("C")},
		Presence:      PresenceMap{"B": false},
	})

	assert.Equal(t, []string{"A", "|", "C"}, ids(res.State))
	assert.Equal(t, 1, res.Summary.Collapsed)
	assert.True(t, res.Changed)
}

func TestReconcile_FullSeparatorsFromDeclaration(t *testing.T) {
	res := Reconcile(Input{
		Declared:      []Button{btn("A"), Separator(), Separator(), btn("B")},
		Authoritative: true,
	})

	assert.Equal(t, []string{"A", "|", "B"}, ids(res.State))
	assert.Equal(t, 2, res.Summary.Added)
	assert.True(t, res.Summary.Full)
}

func TestReconcile_RelocatedButtonsForceFullReconciliation(t *testing.T) {
	res := Reconcile(Input{
		Declared: []Button{btn("A"), btn("C")},
		Prior:    State{btn("A"), btn("B")},
	})

	assert.True(t, res.Summary.Full)
	assert.True(t, res.Changed)
	assert.Equal(t, []string{"A", "C"}, ids(res.State))
	assert.Equal(t, 1, res.Summary.Added)
	assert.Equal(t, 1, res.Summary.Removed)
}

func TestReconcile_PartialKeepsUntouchedButtons(t *testing.T) {
	res := Reconcile(Input{
		Declared: []Button{btn("X")},
		Prior:    State{btn("A"), btn("B")},
	})

	assert.True(t, res.Changed)
	assert.Equal(t, []string{"A", "B", "X"}, ids(res.State))
}

func TestReconcile_InsertsAfterDeclaredPredecessor(t *testing.T) {
	res := Reconcile(Input{
		Declared: []Button{btn("A"), btn("B"), btn("C")},
		Prior:    State{btn("A"), Separator(), btn("C")},
	})

	assert.Equal(t, []string{"A", "B", "|", "C"}, ids(res.State))
	require.Len(t, res.Actions, 1)
	assert.Equal(t, ActionAdd, res.Actions[0].Type)
	assert.Equal(t, 1, res.Actions[0].To)
}

func TestReconcile_InsertsBeforeDeclaredSuccessor(t *testing.T) {
	res := Reconcile(Input{
		Declared: []Button{btn("N"), btn("A")},
		Prior:    State{btn("Z"), btn("A"), btn("Y")},
	})

	assert.False(t, res.Summary.Full)
	assert.Equal(t, []string{"Z", "N", "A", "Y"}, ids(res.State))
}

func TestReconcile_AbsentDeclaredButtonIsNotAdded(t *testing.T) {
	res := Reconcile(Input{
		Declared:      []Button{btn("A"), btn("B")},
		Registrations: []Registration{{ID: "B"}},
		Prior:         State{btn("A")},
		Presence:      PresenceFunc(func(id string) bool { return id != "B" }),
	})

	assert.False(t, res.Changed)
	assert.Equal(t, []string{"A"}, ids(res.State))
	assert.Contains(t, res.Ignored, "absent element: B")
}

func TestReconcile_RegionCompatibility(t *testing.T) {
	tests := []struct {
		name    string
		button  Button
		regs    []Registration
		wantIDs []string
	}{
		{
			name:    "ContentButtonFromContent",
			button:  Button{ID: "X", Region: RegionContent, Origin: RegionContent},
			wantIDs: []string{"A", "X"},
		},
		{
			name:    "ToolbarButtonFromContent",
			button:  Button{ID: "X", Region: RegionToolbar, Origin: RegionContent},
			wantIDs: []string{"A"},
		},
		{
			name:    "BothFromToolbar",
			button:  Button{ID: "X", Region: RegionBoth, Origin: RegionToolbar},
			wantIDs: []string{"A", "X"},
		},
		{
			name:    "ToolbarOnlyRegistrationFromContent",
			button:  Button{ID: "X", Origin: RegionContent},
			regs:    []Registration{{ID: "X", ToolbarOnly: true}},
			wantIDs: []string{"A"},
		},
		{
			name:    "ToolbarOnlyRegistrationFromToolbar",
			button:  Button{ID: "X", Origin: RegionToolbar},
			regs:    []Registration{{ID: "X", ToolbarOnly: true}},
			wantIDs: []string{"A", "X"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Reconcile(Input{
				Declared:      []Button{btn("A"), tt.button},
				Registrations: tt.regs,
				Prior:         State{btn("A")},
			})
			assert.Equal(t, tt.wantIDs, ids(res.State))
		})
	}
}

func TestReconcile_InvalidRegistrations(t *testing.T) {
	res := Reconcile(Input{
		Declared:      []Button{btn("A")},
		Registrations: []Registration{{ID: ""}, {ID: "A"}, {ID: "A", ToolbarOnly: true}},
		Prior:         State{btn("A")},
	})

	assert.False(t, res.Changed)
	assert.Contains(t, res.Ignored, "registration without id")
	assert.Contains(t, res.Ignored, "duplicate registration: A")
}

func TestReconcile_DoesNotModifyPrior(t *testing.T) {
	prior := State{btn("A"), btn("B")}
	_ = Reconcile(Input{
		Declared:      []Button{btn("B"), btn("A")},
		Registrations: []Registration{{ID: "B", Position: pos(0)}, {ID: "A", Position: pos(1)}},
		Prior:         prior,
	})

	assert.Equal(t, []string{"A", "B"}, ids(prior))
}

func TestRegion_Accepts(t *testing.T) {
	assert.True(t, RegionUnset.Accepts(RegionContent))
	assert.True(t, RegionBoth.Accepts(RegionToolbar))
	assert.True(t, RegionToolbar.Accepts(RegionUnset))
	assert.True(t, RegionContent.Accepts(RegionContent))
	assert.False(t, RegionContent.Accepts(RegionToolbar))
	assert.False(t, Region("sidebar").IsValid())
	assert.True(t, RegionBoth.IsValid())
}

func TestState_Clone(t *testing.T) {
	b := btn("A")
	b.Position = pos(1)
	s := State{b, Separator()}

	c := s.Clone()
	c[0].Action.Params["id"] = "changed"
	*c[0].Position = 7
	c[0].Label = "changed"

	assert.Equal(t, "A", s[0].Action.Params["id"])
	assert.Equal(t, 1, *s[0].Position)
	assert.Equal(t, "A", s[0].Label)
	assert.True(t, c[1].IsSeparator())
	assert.Nil(t, State(nil).Clone())
}
