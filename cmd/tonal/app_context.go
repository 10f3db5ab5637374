package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tonal/internal/config"
	"github.com/alexisbeaulieu97/tonal/internal/document"
	"github.com/alexisbeaulieu97/tonal/internal/logger"
	"github.com/alexisbeaulieu97/tonal/internal/logging"
	"github.com/alexisbeaulieu97/tonal/internal/theme"
)

// workingDir locates the project settings file; tests replace it.
var workingDir = os.Getwd

// AppContext bundles what a command needs once the theme is loaded.
type AppContext struct {
	Settings config.Settings
	Logger   *logger.Logger
	Document theme.Document
	Resolver *theme.Resolver
}

// loadSettings resolves settings and builds the operational logger without
// touching the theme document.
func loadSettings(cmd *cobra.Command, flags *rootFlags, operation string) (config.Settings, *logger.Logger, error) {
	dir, err := workingDir()
	if err != nil {
		return config.Settings{}, nil, newCommandError(operation, "determining working directory", err, "")
	}

	overrides := config.Settings{Theme: flags.theme, Overlays: flags.overlays, Mode: flags.mode}
	if flags.verbose {
		overrides.LogLevel = "debug"
	}

	settings, err := config.Resolve(dir, overrides)
	if err != nil {
		return config.Settings{}, nil, newCommandError(operation, "loading settings", err, "Check "+config.FileName+" and TONAL_* environment variables.")
	}

	log, err := logger.New(logger.Options{
		Level:         settings.LogLevel,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     "cli." + operation,
	})
	if err != nil {
		return config.Settings{}, nil, newCommandError(operation, "creating logger", err, "")
	}
	return settings, log, nil
}

// loadApp loads the theme and overlays named by the settings and constructs
// a Resolver over the merged document.
func loadApp(cmd *cobra.Command, flags *rootFlags, operation string) (*AppContext, error) {
	settings, log, err := loadSettings(cmd, flags, operation)
	if err != nil {
		return nil, err
	}

	doc, err := loadDocument(settings, log, operation)
	if err != nil {
		return nil, err
	}

	console, err := logging.New(logging.Options{
		Writer:    cmd.ErrOrStderr(),
		Level:     "debug",
		Prefix:    "tonal",
		Component: "theme",
	})
	if err != nil {
		return nil, newCommandError(operation, "creating diagnostic console", err, "")
	}

	resolver, err := theme.New(doc, theme.WithModeName(settings.Mode), theme.WithConsole(console))
	if err != nil {
		log.Error(err, "theme construction failed", "mode", settings.Mode)
		return nil, newCommandError(operation, "building theme", err, "Run 'tonal lint' to list problems in the theme.")
	}

	log.Debug("theme ready", "mode", resolver.Mode().String(), "colors", len(resolver.ColorSets()))
	return &AppContext{Settings: settings, Logger: log, Document: doc, Resolver: resolver}, nil
}

func loadDocument(settings config.Settings, log *logger.Logger, operation string) (theme.Document, error) {
	if settings.Theme == "" {
		return theme.Document{}, newCommandError(operation, "locating theme", errors.New("no theme configured"), "Pass --theme, set TONAL_THEME or add 'theme' to "+config.FileName+".")
	}

	doc, err := document.Load(settings.Theme)
	if err != nil {
		return theme.Document{}, newCommandError(operation, "loading theme "+settings.Theme, err, "Check the file exists and is valid JSON or YAML.")
	}
	log.Debug("theme loaded", "path", settings.Theme, "colors", len(doc.ColorOrder()))

	if len(settings.Overlays) == 0 {
		return doc, nil
	}

	overlays := make([]theme.Document, 0, len(settings.Overlays))
	for _, path := range settings.Overlays {
		overlay, err := document.Load(path)
		if err != nil {
			return theme.Document{}, newCommandError(operation, "loading overlay "+path, err, "Check the file exists and is valid JSON or YAML.")
		}
		overlays = append(overlays, overlay)
	}

	merged, err := document.Merge(doc, overlays...)
	if err != nil {
		return theme.Document{}, newCommandError(operation, "merging overlays", err, "")
	}
	log.Info("overlays merged", "count", len(overlays), "colors", len(merged.ColorOrder()))
	return merged, nil
}
