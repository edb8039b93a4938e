// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/jsproj/internal/adapters/config"
	_ "go.trai.ch/jsproj/internal/adapters/fs"
	_ "go.trai.ch/jsproj/internal/adapters/logger"
	_ "go.trai.ch/jsproj/internal/adapters/telemetry"
	_ "go.trai.ch/jsproj/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/jsproj/internal/app"
)
