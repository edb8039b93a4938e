package ports

import "go.trai.ch/jsproj/internal/core/domain"

// SettingsLoader loads jsproj settings.
//
//go:generate mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsLoader interface {
	// Load discovers the settings file by walking up from cwd.
	// Defaults are returned when no file exists.
	Load(cwd string) (*domain.Settings, error)
}
