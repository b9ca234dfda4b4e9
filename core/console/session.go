package console

import (
	"fmt"
	"slices"

	"admin-console/core/pager"
	"admin-console/core/selection"
	"admin-console/core/tabs"
	"admin-console/core/toolbar"

	"go.uber.org/zap"
)

// DefaultFetchRows is the scroller page size used when none is configured.
const DefaultFetchRows = 25

// Response identifies a completed request. Request ids start at 1 and grow
// monotonically per session.
type Response struct {
	RequestID uint64 `json:"request_id"`

	// Full marks a full page load; every button of the page is declared.
	Full bool `json:"full"`
}

// Session is the state of one console page. It is not safe for concurrent
// use; Registry serializes access to hosted sessions.
type Session struct {
	id  string
	log *zap.Logger

	state         toolbar.State
	registrations []toolbar.Registration
	declared      []toolbar.Button
	itemResponse  string
	lastRequest   uint64

	tabs      tabs.Set
	errors    FieldErrors
	clipboard Clipboard
	selection *selection.Model
	pager     *pager.Scroller
}

// NewSession returns an empty session. fetchRows sizes the scroller window.
func NewSession(id string, fetchRows int, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	if fetchRows <= 0 {
		fetchRows = DefaultFetchRows
	}
	s := &Session{
		id:        id,
		log:       log.With(zap.String("session_id", id)),
		selection: selection.New(),
	}
	s.pager = pager.New(0, 0, fetchRows, s.onScroll)
	return s
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

func (s *Session) onScroll(p *pager.Scroller) {
	s.log.Debug("Result window moved", zap.Int("start", p.Start), zap.Int("total", p.Total))
}

// BeginPage starts a full page render. The toolbar, registrations, pending
// toolbar items, tabs and field errors are dropped; selection, clipboard and
// the request counter survive.
func (s *Session) BeginPage() {
	s.state = nil
	s.registrations = nil
	s.declared = nil
	s.itemResponse = ""
	s.tabs = tabs.Set{}
	s.errors.Clear()
}

// Register records an ajax registration. A repeated id replaces the earlier
// registration.
func (s *Session) Register(reg toolbar.Registration) {
	if reg.ID == "" {
		s.log.Debug("Ignoring registration without id")
		return
	}
	i := slices.IndexFunc(s.registrations, func(r toolbar.Registration) bool { return r.ID == reg.ID })
	if i < 0 {
		s.registrations = append(s.registrations, reg)
		return
	}
	s.registrations[i] = reg
}

// Registrations returns the accumulated ajax registrations.
func (s *Session) Registrations() []toolbar.Registration {
	return slices.Clone(s.registrations)
}

// AddToolbarItem declares a toolbar button for the response responseID.
// Items of an older response are dropped first.
func (s *Session) AddToolbarItem(responseID string, b toolbar.Button, disabled bool) {
	if s.itemResponse != responseID {
		s.declared = nil
		s.itemResponse = responseID
	}
	if disabled {
		b.Style = toolbar.StyleDisabled
	}
	if b.Origin == toolbar.RegionUnset {
		b.Origin = toolbar.RegionContent
	}
	s.declared = append(s.declared, b)
}

// AddToolbarSeparator appends a separator to the pending toolbar items.
func (s *Session) AddToolbarSeparator() {
	s.declared = append(s.declared, toolbar.Separator())
}

// PendingItems returns the toolbar items declared since the last response.
func (s *Session) PendingItems() []toolbar.Button {
	return slices.Clone(s.declared)
}

// Complete reconciles the toolbar after a response was rendered. The pending
// toolbar items come first, followed by the buttons ui reads from the content
// and the toolbar region. A changed toolbar is applied through ui.
func (s *Session) Complete(ui Adapter, resp Response) (toolbar.Result, error) {
	if resp.RequestID <= s.lastRequest {
		s.log.Warn("Discarding stale response",
			zap.Uint64("request_id", resp.RequestID),
			zap.Uint64("last_request_id", s.lastRequest))
		return toolbar.Result{}, fmt.Errorf("%w: request %d, last applied %d", ErrStaleResponse, resp.RequestID, s.lastRequest)
	}
	if ui == nil {
		ui = &Fragment{}
	}

	declared := slices.Clone(s.declared)
	declared = append(declared, harvest(ui, toolbar.RegionContent)...)
	declared = append(declared, harvest(ui, toolbar.RegionToolbar)...)

	res := toolbar.Reconcile(toolbar.Input{
		Declared:      declared,
		Registrations: s.registrations,
		Prior:         s.state,
		Authoritative: resp.Full,
		Presence:      ui,
	})

	s.state = res.State
	s.lastRequest = resp.RequestID
	s.declared = nil
	s.itemResponse = ""

	for _, note := range res.Ignored {
		s.log.Debug("Toolbar input ignored", zap.String("note", note))
	}
	if res.Changed {
		ui.ApplyToolbarState(res.State)
	}
	s.log.Debug("Toolbar reconciled",
		zap.Uint64("request_id", resp.RequestID),
		zap.Bool("full", res.Summary.Full),
		zap.Bool("changed", res.Changed),
		zap.Int("added", res.Summary.Added),
		zap.Int("removed", res.Summary.Removed),
		zap.Int("moved", res.Summary.Moved))
	return res, nil
}

func harvest(ui Adapter, scope toolbar.Region) []toolbar.Button {
	buttons := ui.ReadDeclaredButtons(scope)
	for i := range buttons {
		if buttons[i].Origin == toolbar.RegionUnset {
			buttons[i].Origin = scope
		}
	}
	return buttons
}

// Toolbar returns the displayed toolbar.
func (s *Session) Toolbar() toolbar.State {
	return s.state.Clone()
}

// LastRequest returns the id of the last applied response.
func (s *Session) LastRequest() uint64 {
	return s.lastRequest
}

// Tabs returns the tab bar.
func (s *Session) Tabs() *tabs.Set {
	return &s.tabs
}

// Errors returns the field errors of the page.
func (s *Session) Errors() *FieldErrors {
	return &s.errors
}

// Clipboard returns the content clipboard.
func (s *Session) Clipboard() *Clipboard {
	return &s.clipboard
}

// Selection returns the row selection of the result table.
func (s *Session) Selection() *selection.Model {
	return s.selection
}

// Pager returns the result scroller.
func (s *Session) Pager() *pager.Scroller {
	return s.pager
}

// ShowPage materializes a result page and renders its selection through ui.
func (s *Session) ShowPage(ui Adapter, offset int, keys []string) {
	s.selection.SetPage(offset, keys)
	s.highlight(ui)
}

// Click applies a click on the row at pageIndex, resolved through ui.
func (s *Session) Click(ui Adapter, pageIndex int, mods selection.Modifiers) (selection.ClickResult, error) {
	var (
		key string
		ok  bool
	)
	if ui != nil {
		key, ok = ui.ReadRowKeyAt(pageIndex)
	}
	if !ok {
		s.log.Debug("Clicked row not found", zap.Int("page_index", pageIndex))
		return selection.ClickResult{}, fmt.Errorf("%w: page index %d", ErrRowNotFound, pageIndex)
	}

	res := s.selection.Click(key, pageIndex, mods)
	if !res.Local {
		s.log.Debug("Range selection not resolvable on page",
			zap.String("key", key),
			zap.Bool("delegated", res.Delegated))
	}
	s.highlight(ui)
	return res, nil
}

// SelectRow adds the row at pageIndex to the selection without clearing it.
func (s *Session) SelectRow(ui Adapter, pageIndex int) error {
	if !s.selection.SelectRow(pageIndex) {
		return fmt.Errorf("%w: page index %d", ErrRowNotFound, pageIndex)
	}
	s.highlight(ui)
	return nil
}

// SelectAllOnPage selects every row of the current page.
func (s *Session) SelectAllOnPage(ui Adapter) {
	s.selection.SelectAllOnPage()
	s.highlight(ui)
}

// SelectAll adds the keys accepted by match and returns how many were new.
func (s *Session) SelectAll(ui Adapter, keys []string, match func(string) bool) int {
	n := s.selection.SelectAllMatching(keys, match)
	s.highlight(ui)
	return n
}

// ClearSelection empties the selection.
func (s *Session) ClearSelection(ui Adapter) {
	s.selection.Clear()
	s.highlight(ui)
}

func (s *Session) highlight(ui Adapter) {
	if ui == nil {
		return
	}
	seen := make(map[string]struct{})
	for _, key := range s.selection.PageKeys() {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		ui.HighlightRow(key, s.selection.IsSelected(key))
	}
}
