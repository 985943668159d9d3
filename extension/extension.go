// Package extension provides the Forge extension adapter for the invoice tracker.
//
// It implements the forge.Extension interface to integrate the tracker
// into a Forge application with automatic dependency discovery,
// DI registration, and lifecycle management.
//
// Configuration can be provided programmatically via Option functions
// or via YAML configuration files under "extensions.invoicing" or
// "invoicing" keys.
package extension

import (
	"context"
	"errors"

	"github.com/xraph/forge"
	"github.com/xraph/vessel"

	invoicing "github.com/xraph/invoicing"
	"github.com/xraph/invoicing/store"
	"github.com/xraph/invoicing/store/memory"
)

// ExtensionName is the name registered with Forge.
const ExtensionName = "invoicing"

// ExtensionDescription is the human-readable description.
const ExtensionDescription = "Invoice and payment tracking engine"

// ExtensionVersion is the semantic version.
const ExtensionVersion = "0.1.0"

// Ensure Extension implements forge.Extension at compile time.
var _ forge.Extension = (*Extension)(nil)

// Extension adapts the invoice tracker as a Forge extension.
type Extension struct {
	*forge.BaseExtension

	config      Config
	tracker     *invoicing.Tracker
	store       store.Store
	trackerOpts []invoicing.Option
}

// New creates a new invoicing Forge extension with the given options.
func New(opts ...Option) *Extension {
	e := &Extension{
		BaseExtension: forge.NewBaseExtension(ExtensionName, ExtensionVersion, ExtensionDescription),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tracker returns the underlying Tracker instance.
// This is nil until Register is called.
func (e *Extension) Tracker() *invoicing.Tracker { return e.tracker }

// Register implements [forge.Extension]. It loads configuration,
// initializes the tracker, and registers it in the DI container.
func (e *Extension) Register(fapp forge.App) error {
	if err := e.BaseExtension.Register(fapp); err != nil {
		return err
	}

	if err := e.loadConfiguration(); err != nil {
		return err
	}

	// Use memory store if no store was provided programmatically.
	if e.store == nil {
		e.store = memory.New()
	}

	e.tracker = invoicing.New(e.store, e.trackerOpts...)

	return vessel.Provide(fapp.Container(), func() (*invoicing.Tracker, error) {
		return e.tracker, nil
	})
}

// Start implements [forge.Extension].
func (e *Extension) Start(ctx context.Context) error {
	if e.tracker == nil {
		return errors.New("invoicing: extension not initialized")
	}

	if !e.config.DisableStart {
		if err := e.tracker.Start(ctx); err != nil {
			return err
		}
	}

	e.MarkStarted()
	return nil
}

// Stop implements [forge.Extension].
func (e *Extension) Stop(_ context.Context) error {
	if e.tracker != nil {
		if err := e.tracker.Stop(); err != nil {
			e.MarkStopped()
			return err
		}
	}
	e.MarkStopped()
	return nil
}

// Health implements [forge.Extension].
func (e *Extension) Health(ctx context.Context) error {
	if e.store == nil {
		return errors.New("invoicing: store not initialized")
	}
	return e.store.Ping(ctx)
}

// --- Config Loading ---

// loadConfiguration loads config from YAML files or programmatic sources.
func (e *Extension) loadConfiguration() error {
	programmaticConfig := e.config

	// Try loading from config file.
	fileConfig, configLoaded := e.tryLoadFromConfigFile()

	if !configLoaded {
		if programmaticConfig.RequireConfig {
			return errors.New("invoicing: configuration is required but not found in config files; " +
				"ensure 'extensions.invoicing' or 'invoicing' key exists in your config")
		}

		// Use programmatic config merged with defaults.
		e.config = e.mergeWithDefaults(programmaticConfig)
	} else {
		// Config loaded from YAML -- merge with programmatic options.
		e.config = e.mergeConfigurations(fileConfig, programmaticConfig)
	}

	e.Logger().Debug("invoicing: configuration loaded",
		forge.F("disable_routes", e.config.DisableRoutes),
		forge.F("disable_start", e.config.DisableStart),
		forge.F("base_path", e.config.BasePath),
	)

	return nil
}

// tryLoadFromConfigFile attempts to load config from YAML files.
func (e *Extension) tryLoadFromConfigFile() (Config, bool) {
	cm := e.App().Config()
	var cfg Config

	// Try "extensions.invoicing" first (namespaced pattern).
	if cm.IsSet("extensions.invoicing") {
		if err := cm.Bind("extensions.invoicing", &cfg); err == nil {
			e.Logger().Debug("invoicing: loaded config from file",
				forge.F("key", "extensions.invoicing"),
			)
			return cfg, true
		}
		e.Logger().Warn("invoicing: failed to bind extensions.invoicing config",
			forge.F("error", "bind failed"),
		)
	}

	// Try legacy "invoicing" key.
	if cm.IsSet("invoicing") {
		if err := cm.Bind("invoicing", &cfg); err == nil {
			e.Logger().Debug("invoicing: loaded config from file",
				forge.F("key", "invoicing"),
			)
			return cfg, true
		}
		e.Logger().Warn("invoicing: failed to bind invoicing config",
			forge.F("error", "bind failed"),
		)
	}

	return Config{}, false
}

// mergeWithDefaults fills zero-valued fields with defaults.
func (e *Extension) mergeWithDefaults(cfg Config) Config {
	defaults := DefaultConfig()
	if cfg.BasePath == "" {
		cfg.BasePath = defaults.BasePath
	}
	return cfg
}

// mergeConfigurations merges YAML config with programmatic options.
// YAML config takes precedence for most fields; programmatic bool flags fill gaps.
func (e *Extension) mergeConfigurations(yamlConfig, programmaticConfig Config) Config {
	// Programmatic bool flags override when true.
	if programmaticConfig.DisableRoutes {
		yamlConfig.DisableRoutes = true
	}
	if programmaticConfig.DisableStart {
		yamlConfig.DisableStart = true
	}

	// String fields: YAML takes precedence.
	if yamlConfig.BasePath == "" && programmaticConfig.BasePath != "" {
		yamlConfig.BasePath = programmaticConfig.BasePath
	}

	// Fill remaining zeros with defaults.
	return e.mergeWithDefaults(yamlConfig)
}
