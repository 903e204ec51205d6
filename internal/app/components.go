package app

import "github.com/defaultdata/defaultdata/internal/core/ports"

// Components contains all the initialized application components. It
// provides controlled access to the pieces the CLI layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}
