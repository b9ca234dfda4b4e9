package selection

import (
	"context"
	"strings"

	"admin-console/core/console"
	sel "admin-console/core/selection"

	"go.uber.org/zap"
)

// Service drives the row selection of hosted console sessions.
type Service struct {
	registry *console.Registry
	logger   *zap.Logger
}

// NewService creates a new selection service.
func NewService(registry *console.Registry, logger *zap.Logger) *Service {
	return &Service{
		registry: registry,
		logger:   logger,
	}
}

// View is the selection of a session together with the highlight state of
// the rows on the current page.
type View struct {
	sel.State
	Highlights map[string]bool `json:"highlights"`
}

// ClickView is the outcome of a click.
type ClickView struct {
	Click sel.ClickResult `json:"click"`
	View
}

// Click describes a click on a row of the current page.
type Click struct {
	PageIndex int `json:"page_index"`
	sel.Modifiers

	// Result optionally lists the keys of the whole result in display order.
	// It resolves shift ranges reaching beyond the current page.
	Result []string `json:"result,omitempty"`
}

func view(sess *console.Session, ui *console.Fragment) View {
	v := View{State: sess.Selection().Snapshot(), Highlights: ui.Highlights}
	if v.Highlights == nil {
		v.Highlights = map[string]bool{}
	}
	return v
}

// page returns an adapter over the materialized page of sess.
func page(sess *console.Session) *console.Fragment {
	return &console.Fragment{Rows: sess.Selection().PageKeys()}
}

// ShowPage materializes a result page.
func (s *Service) ShowPage(ctx context.Context, id string, offset int, keys []string) (View, error) {
	var v View
	err := s.registry.With(ctx, id, func(sess *console.Session) error {
		ui := &console.Fragment{Rows: keys}
		sess.ShowPage(ui, offset, keys)
		v = view(sess, ui)
		return nil
	})
	return v, err
}

// Click applies a click on a row of the current page.
func (s *Service) Click(ctx context.Context, id string, click Click) (ClickView, error) {
	var cv ClickView
	err := s.registry.With(ctx, id, func(sess *console.Session) error {
		model := sess.Selection()
		if click.Result != nil {
			model.RangeFunc = resultRange(click.Result)
			defer func() { model.RangeFunc = nil }()
		}

		ui := page(sess)
		res, err := sess.Click(ui, click.PageIndex, click.Modifiers)
		if err != nil {
			return err
		}
		cv = ClickView{Click: res, View: view(sess, ui)}
		return nil
	})
	return cv, err
}

// resultRange resolves absolute row ranges against the keys of the whole result.
func resultRange(result []string) sel.RangeFunc {
	return func(from, to int) []string {
		if from > to {
			from, to = to, from
		}
		from = max(from, 0)
		to = min(to, len(result)-1)
		if from > to {
			return nil
		}
		return result[from : to+1]
	}
}

// SelectRow adds a row of the current page without clearing the selection.
func (s *Service) SelectRow(ctx context.Context, id string, pageIndex int) (View, error) {
	var v View
	err := s.registry.With(ctx, id, func(sess *console.Session) error {
		ui := page(sess)
		if err := sess.SelectRow(ui, pageIndex); err != nil {
			return err
		}
		v = view(sess, ui)
		return nil
	})
	return v, err
}

// SelectAllOnPage selects every row of the current page.
func (s *Service) SelectAllOnPage(ctx context.Context, id string) (View, error) {
	var v View
	err := s.registry.With(ctx, id, func(sess *console.Session) error {
		ui := page(sess)
		sess.SelectAllOnPage(ui)
		v = view(sess, ui)
		return nil
	})
	return v, err
}

// SelectAll adds the keys starting with prefix and returns how many were
// new. An empty prefix adds every key.
func (s *Service) SelectAll(ctx context.Context, id string, keys []string, prefix string) (int, View, error) {
	var (
		added int
		v     View
	)
	var match func(string) bool
	if prefix != "" {
		match = func(key string) bool { return strings.HasPrefix(key, prefix) }
	}
	err := s.registry.With(ctx, id, func(sess *console.Session) error {
		ui := page(sess)
		added = sess.SelectAll(ui, keys, match)
		v = view(sess, ui)
		return nil
	})
	return added, v, err
}

// Clear empties the selection.
func (s *Service) Clear(ctx context.Context, id string) (View, error) {
	var v View
	err := s.registry.With(ctx, id, func(sess *console.Session) error {
		ui := page(sess)
		sess.ClearSelection(ui)
		v = view(sess, ui)
		return nil
	})
	return v, err
}

// Selection returns the selection of a session.
func (s *Service) Selection(ctx context.Context, id string) (View, error) {
	var v View
	err := s.registry.View(ctx, id, func(sess *console.Session) error {
		model := sess.Selection()
		ui := page(sess)
		for _, key := range model.PageKeys() {
			ui.HighlightRow(key, model.IsSelected(key))
		}
		v = view(sess, ui)
		return nil
	})
	return v, err
}
