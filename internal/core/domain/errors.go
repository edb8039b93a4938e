package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when a configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when a configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotObject is returned when a configuration file does not hold a JSON object.
	ErrConfigNotObject = zerr.New("config file is not a JSON object")

	// ErrConfigWriteFailed is returned when a configuration file cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrConfigMarshalFailed is returned when merged values cannot be encoded.
	ErrConfigMarshalFailed = zerr.New("failed to marshal config values")

	// ErrFileCreateFailed is returned when a project file cannot be created.
	ErrFileCreateFailed = zerr.New("failed to create file")

	// ErrNoActiveProject is returned when an operation requires an open project.
	ErrNoActiveProject = zerr.New("no active project")

	// ErrInvalidFileName is returned when a project child name is not a plain file name.
	ErrInvalidFileName = zerr.New("invalid project file name")

	// ErrProjectNotFound is returned when no project root contains the given path.
	ErrProjectNotFound = zerr.New("could not find project root")

	// ErrObserverPanicked is reported when an observer callback panics during dispatch.
	ErrObserverPanicked = zerr.New("observer panicked")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrInvalidIgnorePattern is returned when an ignore glob is malformed.
	ErrInvalidIgnorePattern = zerr.New("invalid ignore pattern")

	// ErrWatcherStartFailed is returned when the file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")

	// ErrInvalidValues is returned when update values are not a JSON object.
	ErrInvalidValues = zerr.New("update values must be a JSON object")
)
