package app

import "go.trai.ch/jsproj/internal/core/ports"

// Components holds the application and the collaborators the entry point needs directly.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a new Components instance.
func NewComponents(a *App, log ports.Logger) *Components {
	return &Components{App: a, Logger: log}
}
