package toolbar

import (
	"fmt"
	"maps"
	"slices"
	"sort"

	"admin-console/core/ordering"
)

func buttonKey(b Button) (string, bool) {
	return b.ID, !b.IsSeparator()
}

func registrationKey(r Registration) (string, bool) {
	return r.ID, r.ID != ""
}

// Reconcile computes the toolbar state that results from applying the declared
// buttons of one render to the prior state. It never fails; see the package
// documentation for the policies applied to malformed input.
func Reconcile(in Input) Result {
	res := Result{
		Actions: []Action{},
		Ignored: []string{},
	}

	presence := in.Presence
	if presence == nil {
		presence = PresenceFunc(func(string) bool { return true })
	}

	declared, dups := ordering.FirstWins(in.Declared, buttonKey)
	for _, id := range dups {
		res.Ignored = append(res.Ignored, "duplicate id: "+id)
	}
	res.Summary.Duplicates = len(dups)

	regs := registrations(in.Registrations, &res)
	byID := make(map[string]Registration, len(regs))
	for _, r := range regs {
		byID[r.ID] = r
	}

	r := &reconciler{
		prior:    in.Prior.Clone(),
		declared: declared,
		regs:     byID,
		presence: presence,
		res:      &res,
	}

	var state State
	full := in.Authoritative || r.relocated()
	if full {
		state = r.replace()
	} else {
		state = r.patch()
	}

	state = r.reorder(state, regs)

	state, collapsed := ordering.Collapse(state, Button.IsSeparator)
	res.Summary.Collapsed = collapsed
	res.Summary.Full = full
	res.State = state

	if full {
		res.Changed = !equalStates(r.prior, state)
	} else {
		s := res.Summary
		res.Changed = s.Added+s.Removed+s.Moved+s.Collapsed > 0
	}

	return res
}

// registrations drops registrations without id and repeated ids, first wins.
func registrations(in []Registration, res *Result) []Registration {
	out := make([]Registration, 0, len(in))
	for _, r := range in {
		if r.ID == "" {
			res.Ignored = append(res.Ignored, "registration without id")
			continue
		}
		out = append(out, r)
	}
	out, dups := ordering.FirstWins(out, registrationKey)
	for _, id := range dups {
		res.Ignored = append(res.Ignored, "duplicate registration: "+id)
	}
	return out
}

type reconciler struct {
	prior    State
	declared []Button
	regs     map[string]Registration
	presence Presence
	res      *Result
}

func (r *reconciler) ignore(format string, args ...any) {
	r.res.Ignored = append(r.res.Ignored, fmt.Sprintf(format, args...))
}

// absent reports whether b is registered and its backing element is gone.
func (r *reconciler) absent(id string) bool {
	if _, ok := r.regs[id]; !ok {
		return false
	}
	return !r.presence.ElementExists(id)
}

// admissible reports whether a declared button may enter the state.
func (r *reconciler) admissible(b Button) bool {
	return !r.absent(b.ID) && r.allowed(b).Accepts(b.Origin)
}

// allowed returns the region a button may be harvested from.
func (r *reconciler) allowed(b Button) Region {
	if reg, ok := r.regs[b.ID]; ok && reg.ToolbarOnly {
		return RegionToolbar
	}
	return b.Region
}

// admit is admissible, recording the reason of a rejection.
func (r *reconciler) admit(b Button) bool {
	if r.absent(b.ID) {
		r.ignore("absent element: %s", b.ID)
		return false
	}
	if allowed := r.allowed(b); !allowed.Accepts(b.Origin) {
		r.ignore("region mismatch: %s (origin %s, allowed %s)", b.ID, b.Origin, allowed)
		return false
	}
	return true
}

// relocated reports whether the admissible declared buttons and the prior
// state hold the same number of buttons but different id sets, i.e. buttons
// moved between content and toolbar.
func (r *reconciler) relocated() bool {
	have := r.prior.IDs()
	set := make(map[string]struct{}, len(have))
	for _, id := range have {
		set[id] = struct{}{}
	}

	count, differs := 0, false
	for _, b := range r.declared {
		if b.IsSeparator() || !r.admissible(b) {
			continue
		}
		count++
		if _, ok := set[b.ID]; !ok {
			differs = true
		}
	}
	return count > 0 && count == len(have) && differs
}

// replace builds the state from the declared buttons alone.
func (r *reconciler) replace() State {
	priorIdx := ordering.Index(r.prior, buttonKey)

	out := make(State, 0, len(r.declared))
	for _, b := range r.declared {
		if b.IsSeparator() {
			out = append(out, b)
			continue
		}
		if !r.admit(b) {
			continue
		}
		if i, ok := priorIdx[b.ID]; ok {
			b = carry(r.prior[i], b)
		}
		out = append(out, b)
	}

	outIdx := ordering.Index(out, buttonKey)
	for i, b := range r.prior {
		if b.IsSeparator() {
			continue
		}
		if _, ok := outIdx[b.ID]; !ok {
			r.res.Actions = append(r.res.Actions, Action{Type: ActionRemove, ID: b.ID, From: i, To: -1, Reason: "not declared"})
			r.res.Summary.Removed++
		}
	}
	for i, b := range out {
		if b.IsSeparator() {
			continue
		}
		if _, ok := priorIdx[b.ID]; !ok {
			r.res.Actions = append(r.res.Actions, Action{Type: ActionAdd, ID: b.ID, From: -1, To: i, Reason: "declared"})
			r.res.Summary.Added++
		}
	}
	return out
}

// patch applies a partial update to the prior state.
func (r *reconciler) patch() State {
	declaredIdx := ordering.Index(r.declared, buttonKey)

	state := make(State, 0, len(r.prior)+len(r.declared))
	for _, b := range r.prior {
		if b.IsSeparator() {
			state = append(state, b)
			continue
		}
		if r.absent(b.ID) {
			r.res.Actions = append(r.res.Actions, Action{Type: ActionRemove, ID: b.ID, From: len(state), To: -1, Reason: "element absent"})
			r.res.Summary.Removed++
			continue
		}
		if i, ok := declaredIdx[b.ID]; ok {
			next := carry(b, r.declared[i])
			if !equalButtons(b, next) {
				r.res.Summary.Refreshed++
			}
			b = next
		}
		state = append(state, b)
	}

	for pos, b := range r.declared {
		if b.IsSeparator() || state.Find(b.ID) >= 0 {
			continue
		}
		if !r.admit(b) {
			continue
		}
		at := insertIndex(state, r.declared, pos)
		state = slices.Insert(state, at, b)
		r.res.Actions = append(r.res.Actions, Action{Type: ActionAdd, ID: b.ID, From: -1, To: at, Reason: "declared"})
		r.res.Summary.Added++
	}
	return state
}

// insertIndex places the declared button at pos right after its closest
// declared predecessor in state, or before its closest successor, or last.
func insertIndex(state State, declared []Button, pos int) int {
	for j := pos - 1; j >= 0; j-- {
		if i := state.Find(declared[j].ID); i >= 0 {
			return i + 1
		}
	}
	for j := pos + 1; j < len(declared); j++ {
		if i := state.Find(declared[j].ID); i >= 0 {
			return i
		}
	}
	return len(state)
}

// reorder relocates registered buttons to their explicit positions. It only
// runs if every registration has a position and the positions form a
// permutation of 0..n-1. Positions of registered buttons missing from the
// state are skipped and the following targets shift down accordingly.
func (r *reconciler) reorder(state State, regs []Registration) State {
	if len(regs) == 0 {
		return state
	}
	if !permutation(regs) {
		if slices.ContainsFunc(regs, func(reg Registration) bool { return reg.Position != nil }) {
			r.ignore("positions ignored: incomplete permutation")
		}
		return state
	}

	sorted := slices.Clone(regs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return *sorted[i].Position < *sorted[j].Position
	})

	missing := 0
	for _, reg := range sorted {
		from := state.Find(reg.ID)
		if from < 0 {
			missing++
			continue
		}
		to := min(*reg.Position-missing, len(state)-1)
		if from == to {
			continue
		}
		state = ordering.Relocate(state, from, to)
		r.res.Actions = append(r.res.Actions, Action{Type: ActionMove, ID: reg.ID, From: from, To: to, Reason: "explicit position"})
		r.res.Summary.Moved++
	}
	return state
}

func permutation(regs []Registration) bool {
	seen := make([]bool, len(regs))
	for _, reg := range regs {
		if reg.Position == nil {
			return false
		}
		p := *reg.Position
		if p < 0 || p >= len(regs) || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}

// carry merges a newly declared button over its previous rendition. Fields
// the declaration leaves empty keep their previous value, so a partial update
// never silently re-enables a button disabled by out-of-band page logic.
func carry(prev, next Button) Button {
	out := next
	if out.Style == "" {
		out.Style = prev.Style
	}
	if out.Label == "" {
		out.Label = prev.Label
	}
	if out.IconRef == "" {
		out.IconRef = prev.IconRef
	}
	if out.Action.IsZero() {
		out.Action = prev.Action
	}
	if out.Region == RegionUnset {
		out.Region = prev.Region
	}
	if out.Position == nil {
		out.Position = prev.Position
	}
	return out
}

func equalButtons(a, b Button) bool {
	if a.ID != b.ID || a.Label != b.Label || a.IconRef != b.IconRef || a.Style != b.Style ||
		a.Region != b.Region || a.Origin != b.Origin {
		return false
	}
	if a.Action.Name != b.Action.Name || !maps.Equal(a.Action.Params, b.Action.Params) {
		return false
	}
	if (a.Position == nil) != (b.Position == nil) {
		return false
	}
	return a.Position == nil || *a.Position == *b.Position
}

func equalStates(a, b State) bool {
	return slices.EqualFunc(a, b, equalButtons)
}
