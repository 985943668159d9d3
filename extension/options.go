package extension

import (
	invoicing "github.com/xraph/invoicing"
	"github.com/xraph/invoicing/plugin"
	"github.com/xraph/invoicing/store"
)

// Option configures the invoicing Forge extension.
type Option func(*Extension)

// WithStore sets the store for the tracker.
func WithStore(s store.Store) Option {
	return func(e *Extension) {
		e.store = s
	}
}

// WithTrackerOption passes an invoicing.Option through to the underlying tracker.
func WithTrackerOption(opt invoicing.Option) Option {
	return func(e *Extension) {
		e.trackerOpts = append(e.trackerOpts, opt)
	}
}

// WithPlugin registers a tracker plugin.
func WithPlugin(p plugin.Plugin) Option {
	return func(e *Extension) {
		e.trackerOpts = append(e.trackerOpts, invoicing.WithPlugin(p))
	}
}

// WithConfig sets the Forge extension configuration.
func WithConfig(cfg Config) Option {
	return func(e *Extension) { e.config = cfg }
}

// WithDisableRoutes prevents HTTP route registration.
func WithDisableRoutes() Option {
	return func(e *Extension) { e.config.DisableRoutes = true }
}

// WithDisableStart prevents the tracker lifecycle from starting with the app.
func WithDisableStart() Option {
	return func(e *Extension) { e.config.DisableStart = true }
}

// WithBasePath sets the URL prefix for invoicing routes.
func WithBasePath(path string) Option {
	return func(e *Extension) { e.config.BasePath = path }
}

// WithRequireConfig requires config to be present in YAML files.
// If true and no config is found, Register returns an error.
func WithRequireConfig(require bool) Option {
	return func(e *Extension) { e.config.RequireConfig = require }
}
