package domain

import "time"

// DefaultDebounce is the default window used to coalesce file system events.
const DefaultDebounce = 50 * time.Millisecond

// LogFormat selects the log output format.
type LogFormat string

const (
	// LogFormatPretty writes colored human-readable logs.
	LogFormatPretty LogFormat = "pretty"
	// LogFormatJSON writes one JSON object per log record.
	LogFormatJSON LogFormat = "json"
)

// Settings holds the jsproj runtime settings.
type Settings struct {
	// Path is the settings file the values were read from, empty for defaults.
	Path string
	// Debounce is the window used to coalesce file system events.
	Debounce time.Duration
	// Ignore lists doublestar globs, relative to the project root, excluded from watching.
	Ignore []string
	// ProjectMarkers are file names whose presence marks a project root.
	ProjectMarkers []string
	// LogFormat selects the log output format.
	LogFormat LogFormat
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Debounce:       DefaultDebounce,
		Ignore:         []string{"**/" + NodeModulesDirName + "/**", "**/.git/**"},
		ProjectMarkers: []string{TernProjectName, PackageJSONName, JSConfigName, ProjectJSONName, ".git"},
		LogFormat:      LogFormatPretty,
	}
}
