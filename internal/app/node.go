package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/syringe/internal/adapters/annotation" //nolint:depguard // Wired in app layer
	"go.trai.ch/syringe/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/syringe/internal/adapters/keys"       //nolint:depguard // Wired in app layer
	"go.trai.ch/syringe/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/syringe/internal/adapters/report"     //nolint:depguard // Wired in app layer
	"go.trai.ch/syringe/internal/adapters/typemodel"  //nolint:depguard // Wired in app layer
	"go.trai.ch/syringe/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			typemodel.NodeID,
			annotation.NodeID,
			keys.NodeID,
			report.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	models, err := graft.Dep[typemodel.Factory](ctx)
	if err != nil {
		return nil, err
	}

	lookups, err := graft.Dep[annotation.Factory](ctx)
	if err != nil {
		return nil, err
	}

	keyFactory, err := graft.Dep[ports.KeyFactory](ctx)
	if err != nil {
		return nil, err
	}

	formats, err := graft.Dep[ports.Formats](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, NewFrontends(models, lookups), keyFactory, formats, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          app,
		Logger:       log,
		ConfigLoader: loader,
	}, nil
}
