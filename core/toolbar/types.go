package toolbar

import "maps"

// Region tells where the backing UI element of a button lives.
type Region string

const (
	// RegionUnset means the region is not known. It is compatible with every region.
	RegionUnset Region = ""
	// RegionContent is the main content area (rendered by the page fragment).
	RegionContent Region = "content"
	// RegionToolbar is the persistent toolbar markup.
	RegionToolbar Region = "toolbar"
	// RegionBoth means the element may appear in either region.
	RegionBoth Region = "both"
)

// IsValid reports whether r is one of the known regions.
func (r Region) IsValid() bool {
	switch r {
	case RegionUnset, RegionContent, RegionToolbar, RegionBoth:
		return true
	default:
		return false
	}
}

// Accepts reports whether a button allowed in r may be harvested from origin.
func (r Region) Accepts(origin Region) bool {
	if r == RegionUnset || r == RegionBoth || origin == RegionUnset || origin == RegionBoth {
		return true
	}
	return r == origin
}

// StyleDisabled is the style tag of a disabled button.
const StyleDisabled = "disabled"

// Command is a tagged reference to a click behavior. The adapter layer
// resolves it; it is never interpreted as code.
type Command struct {
	// Name identifies the behavior, e.g. "trigger" or "toggleTab".
	Name string `json:"name"`

	// Params carries the behavior's arguments.
	Params map[string]string `json:"params,omitempty"`
}

// IsZero reports whether no command is set.
func (c Command) IsZero() bool {
	return c.Name == "" && len(c.Params) == 0
}

// Button is one entry in a toolbar or content region.
type Button struct {
	// ID is unique within a render pass. Empty denotes a separator.
	ID string `json:"id"`

	// Label is the display and help text.
	Label string `json:"label,omitempty"`

	// IconRef references the icon to render (URL or resource key).
	IconRef string `json:"icon,omitempty"`

	// Action is the click behavior.
	Action Command `json:"action,omitempty"`

	// Style is an optional visual state tag (e.g. StyleDisabled).
	Style string `json:"style,omitempty"`

	// Region is where the backing element may legitimately appear.
	Region Region `json:"region,omitempty"`

	// Origin is the region the button was harvested from. Set by the adapter.
	Origin Region `json:"origin,omitempty"`

	// Position is an optional explicit index; nil means no ordering is requested.
	Position *int `json:"position,omitempty"`
}

// IsSeparator reports whether b is a separator.
func (b Button) IsSeparator() bool {
	return b.ID == ""
}

// IsDisabled reports whether b carries the disabled style.
func (b Button) IsDisabled() bool {
	return b.Style == StyleDisabled
}

// Separator returns a new separator button.
func Separator() Button {
	return Button{}
}

// State is the ordered list of displayed buttons.
type State []Button

// IDs returns the ids of all non-separator buttons in order.
func (s State) IDs() []string {
	ids := make([]string, 0, len(s))
	for _, b := range s {
		if !b.IsSeparator() {
			ids = append(ids, b.ID)
		}
	}
	return ids
}

// Find returns the index of the button with the given id, or -1.
func (s State) Find(id string) int {
	if id == "" {
		return -1
	}
	for i, b := range s {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of s. Positions and action parameters are
// copied too, so the result shares no storage with s.
func (s State) Clone() State {
	if s == nil {
		return nil
	}
	out := make(State, len(s))
	for i, b := range s {
		if b.Position != nil {
			p := *b.Position
			b.Position = &p
		}
		if b.Action.Params != nil {
			b.Action.Params = maps.Clone(b.Action.Params)
		}
		out[i] = b
	}
	return out
}

// Registration associates an ajax-registered button id with its placement.
type Registration struct {
	// ID is the registered button id.
	ID string `json:"id"`

	// ToolbarOnly means the button's element only lives in the toolbar markup.
	ToolbarOnly bool `json:"toolbar_only,omitempty"`

	// Position is an optional explicit index in the toolbar.
	Position *int `json:"position,omitempty"`
}

// Presence reports whether the backing element of a button still exists in the
// DOM region reachable from the fragment that was just updated.
type Presence interface {
	ElementExists(id string) bool
}

// PresenceFunc adapts a function to the Presence interface.
type PresenceFunc func(id string) bool

// ElementExists calls f(id).
func (f PresenceFunc) ElementExists(id string) bool {
	return f(id)
}

// PresenceMap is a Presence backed by a map. Ids missing from the map are
// reported as present.
type PresenceMap map[string]bool

// ElementExists implements Presence.
func (m PresenceMap) ElementExists(id string) bool {
	exists, ok := m[id]
	return !ok || exists
}

// Input bundles the arguments of one reconciliation call.
type Input struct {
	// Declared are the buttons harvested from the freshly rendered fragment.
	Declared []Button

	// Registrations are all ajax registrations of the current page lifetime.
	Registrations []Registration

	// Prior is the state before this call.
	Prior State

	// Authoritative is true for a full page load.
	Authoritative bool

	// Presence answers the existence check. Nil reports every element present.
	Presence Presence
}

// ActionType is the kind of a toolbar operation.
type ActionType string

const (
	// ActionAdd inserts a button.
	ActionAdd ActionType = "add"
	// ActionRemove removes a button.
	ActionRemove ActionType = "remove"
	// ActionMove relocates a button.
	ActionMove ActionType = "move"
)

// Action is one operation applied to the prior state, in application order.
type Action struct {
	// Type specifies the operation.
	Type ActionType `json:"type"`

	// ID is the button id.
	ID string `json:"id"`

	// From is the index before a remove or move; -1 for adds.
	From int `json:"from"`

	// To is the index after an add or move; -1 for removes.
	To int `json:"to"`

	// Reason explains why the operation is needed.
	Reason string `json:"reason,omitempty"`
}

// Summary provides aggregate counts for one reconciliation.
type Summary struct {
	Added      int `json:"added"`
	Removed    int `json:"removed"`
	Moved      int `json:"moved"`
	Refreshed  int `json:"refreshed"`
	Duplicates int `json:"duplicates"`
	Collapsed  int `json:"collapsed"`

	// Full is true when the declared buttons replaced the prior state.
	Full bool `json:"full"`
}

// Result is the outcome of Reconcile.
type Result struct {
	// State is the new toolbar state.
	State State `json:"state"`

	// Changed tells the caller whether the toolbar has to be re-rendered.
	Changed bool `json:"changed"`

	// Actions lists the operations in application order.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`

	// Ignored describes skipped input, e.g. "duplicate id: save".
	Ignored []string `json:"ignored"`
}
