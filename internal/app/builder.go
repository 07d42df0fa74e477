package app

import (
	"go.trai.ch/forge/internal/core/ports"
)

// Components contains all the initialized application components. This struct
// provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer ports.Tracer
}
