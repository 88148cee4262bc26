package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mend/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/mend/internal/adapters/export" //nolint:depguard // Wired in app layer
	"go.trai.ch/mend/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/mend/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/mend/internal/core/ports"
	"go.trai.ch/mend/internal/engine/repair"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the resolved application objects handed to the CLI.
type Components struct {
	App        *App
	Logger     ports.Logger
	LockedSets ports.LockedSetLoader
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			repair.NodeID,
			export.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			manifests, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}

			controller, err := graft.Dep[*repair.Controller](ctx)
			if err != nil {
				return nil, err
			}

			sink, err := graft.Dep[ports.AuditSink](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(manifests, controller, sink, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			lockedSets, err := graft.Dep[ports.LockedSetLoader](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:        application,
				Logger:     log,
				LockedSets: lockedSets,
			}, nil
		},
	})
}
