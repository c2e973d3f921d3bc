// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/forge/internal/adapters/config"
	_ "go.trai.ch/forge/internal/adapters/fs"
	_ "go.trai.ch/forge/internal/adapters/logger"
	_ "go.trai.ch/forge/internal/adapters/proc"
	_ "go.trai.ch/forge/internal/adapters/store"
	_ "go.trai.ch/forge/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/forge/internal/app"
	_ "go.trai.ch/forge/internal/engine/scheduler"
)
