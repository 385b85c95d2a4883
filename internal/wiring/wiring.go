// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/syringe/internal/adapters/annotation"
	_ "go.trai.ch/syringe/internal/adapters/config"
	_ "go.trai.ch/syringe/internal/adapters/keys"
	_ "go.trai.ch/syringe/internal/adapters/logger"
	_ "go.trai.ch/syringe/internal/adapters/report"
	_ "go.trai.ch/syringe/internal/adapters/typemodel"
	// Register app nodes.
	_ "go.trai.ch/syringe/internal/app"
)
