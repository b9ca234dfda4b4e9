// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which names the feature,
// reports whether it is enabled, and registers its routes.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager holds the registered features and loads the enabled ones in
// registration order via LoadAll. Features like 'session', 'toolbar' and
// 'selection' are developed and tested in isolation this way.
package loader
