// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/defaultdata/defaultdata/internal/adapters/datapackage"
	_ "github.com/defaultdata/defaultdata/internal/adapters/fs"
	_ "github.com/defaultdata/defaultdata/internal/adapters/logger"
	_ "github.com/defaultdata/defaultdata/internal/adapters/sidecar"
	_ "github.com/defaultdata/defaultdata/internal/adapters/state"
	// Register app nodes.
	_ "github.com/defaultdata/defaultdata/internal/app"
)
