package app

import (
	"go.trai.ch/forge/internal/core/ports"
)

// Components contains the initialized application components the CLI layer
// is allowed to touch.
type Components struct {
	App    *App
	Logger ports.Logger
}
