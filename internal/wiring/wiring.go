// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mend/internal/adapters/config"
	_ "go.trai.ch/mend/internal/adapters/export"
	_ "go.trai.ch/mend/internal/adapters/fs"
	_ "go.trai.ch/mend/internal/adapters/logger"
	_ "go.trai.ch/mend/internal/adapters/npm"
	_ "go.trai.ch/mend/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/mend/internal/app"
	_ "go.trai.ch/mend/internal/engine/repair"
)
