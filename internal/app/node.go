package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/platform" //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/telemetry/progrock"
	"go.trai.ch/forge/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			platform.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			buildFiles, err := graft.Dep[ports.BuildFileLoader](ctx)
			if err != nil {
				return nil, err
			}

			platforms, err := graft.Dep[ports.PlatformLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(buildFiles, platforms, log, tracer), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
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

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
		Tracer: tracer,
	}, nil
}
