// Package toolbar reconciles the toolbar that is currently displayed with the
// buttons declared by the most recent render, which is either a full page load
// or a partial (ajax) update of some page region.
//
// # Model
//
// A State is an ordered list of Buttons. A Button with an empty ID is a
// separator: it is only a position marker, it is never matched by identity
// and never moved explicitly. Registrations record buttons whose presence is
// driven by partial updates (ajax-registered buttons), together with an
// optional explicit position.
//
// # Reconciliation
//
// Reconcile takes the declared buttons, the registrations, the prior state and
// a flag telling whether the content is authoritative (full page load). It
// returns a Result containing the new state, a Changed flag and the list of
// Actions (add, remove, move) that turn the prior state into the new one.
//
// Partial updates only remove registered buttons whose backing element is
// reported absent by the Presence collaborator; every other prior button is
// assumed to be still valid. Declared buttons missing from the prior state are
// added when their region is compatible with the region they were harvested
// from. When the registrations carry a complete permutation of positions the
// registered buttons are then relocated to their positions.
//
// # Malformed input
//
// Reconcile never fails. Duplicate ids are resolved first-wins, incompatible
// or absent buttons are skipped, and every such decision is reported in
// Result.Ignored.
//
// # Usage
//
//	res := toolbar.Reconcile(toolbar.Input{
//	    Declared:      declared,
//	    Registrations: regs,
//	    Prior:         state,
//	    Presence:      dom,
//	})
//	if res.Changed {
//	    render(res.State)
//	}
//	state = res.State
package toolbar
