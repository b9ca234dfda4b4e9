package console

import (
	"encoding/json"
	"fmt"
	"time"

	"admin-console/core/selection"
	"admin-console/core/tabs"
	"admin-console/core/toolbar"

	"go.uber.org/zap"
)

// PagerState is the serialized result scroller.
type PagerState struct {
	Start int    `json:"start"`
	Total int    `json:"total"`
	Fetch int    `json:"fetch"`
	Text  string `json:"text"`
}

// Snapshot is the serialized form of a Session.
type Snapshot struct {
	ID            string                 `json:"id"`
	Toolbar       toolbar.State          `json:"toolbar"`
	Registrations []toolbar.Registration `json:"registrations"`
	Pending       []toolbar.Button       `json:"pending,omitempty"`
	ItemResponse  string                 `json:"item_response,omitempty"`
	LastRequest   uint64                 `json:"last_request_id"`
	Tabs          tabs.Set               `json:"tabs"`
	Errors        []FieldError           `json:"errors"`
	Clipboard     []string               `json:"clipboard"`
	Selection     selection.State        `json:"selection"`
	Pager         PagerState             `json:"pager"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// Snapshot returns the serializable state of s.
func (s *Session) Snapshot() Snapshot {
	toolbarState := s.Toolbar()
	if toolbarState == nil {
		toolbarState = toolbar.State{}
	}
	registrations := s.Registrations()
	if registrations == nil {
		registrations = []toolbar.Registration{}
	}
	return Snapshot{
		ID:            s.id,
		Toolbar:       toolbarState,
		Registrations: registrations,
		Pending:       s.PendingItems(),
		ItemResponse:  s.itemResponse,
		LastRequest:   s.lastRequest,
		Tabs:          s.tabs.Clone(),
		Errors:        s.errors.All(),
		Clipboard:     s.clipboard.Get(),
		Selection:     s.selection.Snapshot(),
		Pager:         s.PagerState(),
		UpdatedAt:     time.Now().UTC(),
	}
}

// PagerState returns the serializable scroller of s.
func (s *Session) PagerState() PagerState {
	return PagerState{
		Start: s.pager.Start,
		Total: s.pager.Total,
		Fetch: s.pager.Fetch,
		Text:  s.pager.Text(),
	}
}

// Restore rebuilds a session from a snapshot.
func Restore(snap Snapshot, log *zap.Logger) *Session {
	s := NewSession(snap.ID, snap.Pager.Fetch, log)
	s.state = snap.Toolbar.Clone()
	s.registrations = snap.Registrations
	s.declared = snap.Pending
	s.itemResponse = snap.ItemResponse
	s.lastRequest = snap.LastRequest
	s.tabs = snap.Tabs
	s.errors = FieldErrors(snap.Errors)
	s.clipboard.Set(snap.Clipboard)
	s.selection.Restore(snap.Selection)
	s.pager.Reset(snap.Pager.Start, snap.Pager.Total, snap.Pager.Fetch)
	return s
}

// Marshal encodes the snapshot of s.
func (s *Session) Marshal() ([]byte, error) {
	data, err := json.Marshal(s.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("failed to encode session %s: %w", s.id, err)
	}
	return data, nil
}

// Unmarshal decodes a session encoded by Marshal.
func Unmarshal(data []byte, log *zap.Logger) (*Session, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	if snap.ID == "" {
		return nil, fmt.Errorf("failed to decode session: missing id")
	}
	return Restore(snap, log), nil
}
