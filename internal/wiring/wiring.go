// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/aptsrc/internal/adapters/config"
	_ "go.trai.ch/aptsrc/internal/adapters/facts"
	_ "go.trai.ch/aptsrc/internal/adapters/fs"
	_ "go.trai.ch/aptsrc/internal/adapters/keys"
	_ "go.trai.ch/aptsrc/internal/adapters/logger"
	_ "go.trai.ch/aptsrc/internal/adapters/s3"
	// Register app nodes.
	_ "go.trai.ch/aptsrc/internal/app"
)
