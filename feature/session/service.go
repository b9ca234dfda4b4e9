package session

import (
	"context"

	"admin-console/core/console"
	"admin-console/core/tabs"

	"go.uber.org/zap"
)

// Service exposes the page level state of hosted console sessions.
type Service struct {
	registry *console.Registry
	logger   *zap.Logger
}

// NewService creates a new session service.
func NewService(registry *console.Registry, logger *zap.Logger) *Service {
	return &Service{
		registry: registry,
		logger:   logger,
	}
}

// Create starts a new session and returns its id.
func (s *Service) Create(ctx context.Context) (string, error) {
	return s.registry.Create(ctx)
}

// Get returns the snapshot of a session.
func (s *Service) Get(ctx context.Context, id string) (console.Snapshot, error) {
	return s.registry.Get(ctx, id)
}

// Delete closes a session.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.registry.Delete(ctx, id)
}

// BeginPage starts a full page render and returns the resulting snapshot.
func (s *Service) BeginPage(ctx context.Context, id string) (console.Snapshot, error) {
	var snap console.Snapshot
	err := s.registry.With(ctx, id, func(sess *console.Session) error {
		sess.BeginPage()
		snap = sess.Snapshot()
		return nil
	})
	return snap, err
}

// AddTab declares a tab for the response responseID.
func (s *Service) AddTab(ctx context.Context, id, responseID string, tab tabs.Tab) (tabs.Set, error) {
	var set tabs.Set
	err := s.registry.With(ctx, id, func(sess *console.Session) error {
		sess.Tabs().Add(responseID, tab)
		set = sess.Tabs().Clone()
		return nil
	})
	return set, err
}

// ToggleTab activates the tab at pos. It reports whether pos was valid.
func (s *Service) ToggleTab(ctx context.Context, id string, pos int) (tabs.Set, bool, error) {
	var (
		set tabs.Set
		ok  bool
	)
	err := s.registry.With(ctx, id, func(sess *console.Session) error {
		ok = sess.Tabs().Toggle(pos)
		set = sess.Tabs().Clone()
		return nil
	})
	return set, ok, err
}

// Tabs returns the tab bar of a session.
func (s *Service) Tabs(ctx context.Context, id string) (tabs.Set, error) {
	var set tabs.Set
	err := s.registry.View(ctx, id, func(sess *console.Session) error {
		set = sess.Tabs().Clone()
		return nil
	})
	return set, err
}

// AddError records a field error and returns all errors of the page.
func (s *Service) AddError(ctx context.Context, id, clientID, detail string) ([]console.FieldError, error) {
	var all []console.FieldError
	err := s.registry.With(ctx, id, func(sess *console.Session) error {
		sess.Errors().Add(clientID, detail)
		all = sess.Errors().All()
		return nil
	})
	return all, err
}

// Errors returns the field errors of a session.
func (s *Service) Errors(ctx context.Context, id string) ([]console.FieldError, error) {
	var all []console.FieldError
	err := s.registry.View(ctx, id, func(sess *console.Session) error {
		all = sess.Errors().All()
		return nil
	})
	return all, err
}

// SetClipboard replaces the clipboard content.
func (s *Service) SetClipboard(ctx context.Context, id string, ids []string) ([]string, error) {
	var content []string
	err := s.registry.With(ctx, id, func(sess *console.Session) error {
		sess.Clipboard().Set(ids)
		content = sess.Clipboard().Get()
		return nil
	})
	return content, err
}

// Clipboard returns the clipboard content.
func (s *Service) Clipboard(ctx context.Context, id string) ([]string, error) {
	var content []string
	err := s.registry.View(ctx, id, func(sess *console.Session) error {
		content = sess.Clipboard().Get()
		return nil
	})
	return content, err
}

// ClearClipboard empties the clipboard.
func (s *Service) ClearClipboard(ctx context.Context, id string) error {
	return s.registry.With(ctx, id, func(sess *console.Session) error {
		sess.Clipboard().Clear()
		return nil
	})
}

// ResetPager sets the size of the result behind the scroller. It keeps the
// current start where possible.
func (s *Service) ResetPager(ctx context.Context, id string, total, fetch int) (console.PagerState, error) {
	var state console.PagerState
	err := s.registry.With(ctx, id, func(sess *console.Session) error {
		p := sess.Pager()
		if fetch <= 0 {
			fetch = p.Fetch
		}
		p.Reset(p.Start, total, fetch)
		state = sess.PagerState()
		return nil
	})
	return state, err
}

// MovePager applies a named scroller move. force makes the move notify even
// if the window stays put.
func (s *Service) MovePager(ctx context.Context, id, move string, force bool) (console.PagerState, error) {
	var state console.PagerState
	err := s.registry.With(ctx, id, func(sess *console.Session) error {
		p := sess.Pager()
		if force {
			p.ForceUpdate()
		}
		if err := p.Move(move); err != nil {
			return err
		}
		state = sess.PagerState()
		return nil
	})
	return state, err
}

// Pager returns the scroller of a session.
func (s *Service) Pager(ctx context.Context, id string) (console.PagerState, error) {
	var state console.PagerState
	err := s.registry.View(ctx, id, func(sess *console.Session) error {
		state = sess.PagerState()
		return nil
	})
	return state, err
}
