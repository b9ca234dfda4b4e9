package toolbar

import (
	"context"

	"admin-console/core/console"
	tb "admin-console/core/toolbar"

	"go.uber.org/zap"
)

// Service drives the toolbar of hosted console sessions.
type Service struct {
	registry *console.Registry
	logger   *zap.Logger
}

// NewService creates a new toolbar service.
func NewService(registry *console.Registry, logger *zap.Logger) *Service {
	return &Service{
		registry: registry,
		logger:   logger,
	}
}

// View is the toolbar of a session.
type View struct {
	State         tb.State          `json:"state"`
	Registrations []tb.Registration `json:"registrations"`
	Pending       []tb.Button       `json:"pending"`
	LastRequest   uint64            `json:"last_request_id"`
}

// Register records ajax registrations and returns all registrations of the page.
func (s *Service) Register(ctx context.Context, id string, regs []tb.Registration) ([]tb.Registration, error) {
	var all []tb.Registration
	err := s.registry.With(ctx, id, func(sess *console.Session) error {
		for _, reg := range regs {
			sess.Register(reg)
		}
		all = sess.Registrations()
		return nil
	})
	return all, err
}

// Item is one toolbar item declared for a response.
type Item struct {
	ResponseID string `json:"response_id"`
	Disabled   bool   `json:"disabled"`
	Separator  bool   `json:"separator"`
	tb.Button
}

// AddItems declares toolbar items and returns the pending items.
func (s *Service) AddItems(ctx context.Context, id string, items []Item) ([]tb.Button, error) {
	var pending []tb.Button
	err := s.registry.With(ctx, id, func(sess *console.Session) error {
		for _, item := range items {
			if item.Separator {
				sess.AddToolbarSeparator()
				continue
			}
			sess.AddToolbarItem(item.ResponseID, item.Button, item.Disabled)
		}
		pending = sess.PendingItems()
		return nil
	})
	return pending, err
}

// Complete reconciles the toolbar of a session after a response was rendered
// into ui.
func (s *Service) Complete(ctx context.Context, id string, ui *console.Fragment, resp console.Response) (tb.Result, error) {
	var res tb.Result
	err := s.registry.With(ctx, id, func(sess *console.Session) error {
		var err error
		res, err = sess.Complete(ui, resp)
		return err
	})
	return res, err
}

// Toolbar returns the toolbar of a session.
func (s *Service) Toolbar(ctx context.Context, id string) (View, error) {
	var v View
	err := s.registry.View(ctx, id, func(sess *console.Session) error {
		v = View{
			State:         sess.Toolbar(),
			Registrations: sess.Registrations(),
			Pending:       sess.PendingItems(),
			LastRequest:   sess.LastRequest(),
		}
		if v.State == nil {
			v.State = tb.State{}
		}
		return nil
	})
	return v, err
}
