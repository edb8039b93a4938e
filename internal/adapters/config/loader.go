// Package config loads the jsproj settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/jsproj/internal/core/domain"
	"go.trai.ch/jsproj/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader for jsproj.yaml files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new settings loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds the nearest jsproj.yaml at or above cwd and overlays it on the defaults.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	path, ok := findSettings(cwd)
	if !ok {
		return settings, nil
	}

	var file settingsFile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, err
	}
	if err := l.apply(settings, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	settings.Path = path

	l.Logger.Debug(fmt.Sprintf("loaded settings from %s", path))
	return settings, nil
}

func (l *Loader) apply(settings *domain.Settings, file *settingsFile) error {
	if file.Debounce != "" {
		d, err := time.ParseDuration(file.Debounce)
		if err != nil || d < 0 {
			return zerr.With(domain.ErrSettingsParseFailed, "debounce", file.Debounce)
		}
		settings.Debounce = d
	}

	if file.Ignore != nil {
		for _, pattern := range file.Ignore {
			if !doublestar.ValidatePattern(pattern) {
				return zerr.With(domain.ErrInvalidIgnorePattern, "pattern", pattern)
			}
		}
		settings.Ignore = file.Ignore
	}

	if len(file.ProjectMarkers) > 0 {
		settings.ProjectMarkers = file.ProjectMarkers
	} else if file.ProjectMarkers != nil {
		l.Logger.Warn("'projectMarkers' is empty, keeping the default markers")
	}

	switch domain.LogFormat(file.LogFormat) {
	case "":
	case domain.LogFormatPretty, domain.LogFormatJSON:
		settings.LogFormat = domain.LogFormat(file.LogFormat)
	default:
		return zerr.With(domain.ErrSettingsParseFailed, "logFormat", file.LogFormat)
	}
	return nil
}

func findSettings(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.SettingsFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func readAndUnmarshalYAML(path string, v any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is discovered from the working directory
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "path", path)
	}
	return nil
}
