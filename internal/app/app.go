// Package app implements the application layer for jsproj.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/jsproj/internal/core/domain"
	"go.trai.ch/jsproj/internal/core/ports"
	"go.trai.ch/jsproj/internal/engine/project"
	"go.trai.ch/zerr"
)

// inspectedFiles are the project children listed in a report.
var inspectedFiles = []string{
	domain.TernProjectName,
	domain.ESLintRCJSName,
	domain.ESLintRCJSONName,
	domain.ESLintRCName,
	domain.ESLintRCYAMLName,
	domain.ESLintRCYMLName,
	domain.PackageJSONName,
	domain.JSConfigName,
	domain.ProjectJSONName,
}

// logConfigurer is implemented by loggers whose output can be switched at runtime.
type logConfigurer interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// App represents the main application logic.
type App struct {
	access   ports.FileAccess
	locator  ports.ProjectLocator
	settings ports.SettingsLoader
	watcher  ports.Watcher
	tracer   ports.Tracer
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	access ports.FileAccess,
	locator ports.ProjectLocator,
	settings ports.SettingsLoader,
	watcher ports.Watcher,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		access:   access,
		locator:  locator,
		settings: settings,
		watcher:  watcher,
		tracer:   tracer,
		logger:   log,
	}
}

// LogOptions controls log output.
type LogOptions struct {
	// JSON forces JSON logs regardless of the settings file.
	JSON    bool
	Verbose bool
}

// session is an opened project context for one input path.
type session struct {
	input    string
	settings *domain.Settings
	project  *project.Context
}

func (a *App) open(ctx context.Context, path string, logOpts LogOptions) (*session, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", path)
	}

	settings, err := a.settings.Load(settingsDir(abs))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load settings")
	}
	a.configureLogging(settings, logOpts)

	event, err := a.locator.Ancestry(abs, settings.ProjectMarkers)
	if err != nil {
		return nil, err
	}

	pctx := project.NewContext(a.access, a.logger, a.tracer)
	pctx.OnInputChanged(ctx, event)
	if location, ok := pctx.Location(); ok {
		a.logger.Debug(fmt.Sprintf("project root is %s", location))
	}

	return &session{input: abs, settings: settings, project: pctx}, nil
}

func (a *App) configureLogging(settings *domain.Settings, opts LogOptions) {
	lc, ok := a.logger.(logConfigurer)
	if !ok {
		return
	}
	lc.SetJSON(opts.JSON || settings.LogFormat == domain.LogFormatJSON)
	lc.SetVerbose(opts.Verbose)
}

// settingsDir returns the directory settings discovery starts from.
func settingsDir(abs string) string {
	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		return abs
	}
	return filepath.Dir(abs)
}

// requireProject returns the active project root of s or ErrProjectNotFound.
func (s *session) requireProject() (string, error) {
	location, ok := s.project.Location()
	if !ok {
		return "", zerr.With(domain.ErrProjectNotFound, "input", s.input)
	}
	return location, nil
}
