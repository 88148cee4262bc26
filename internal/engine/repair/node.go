package repair

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mend/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mend/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mend/internal/adapters/npm"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mend/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mend/internal/core/ports"
	"go.trai.ch/mend/internal/engine/diagnose"
)

// NodeID is the unique identifier for the retry controller Graft node.
const NodeID graft.ID = "engine.repair"

func init() {
	graft.Register(graft.Node[*Controller]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			npm.NodeID,
			fs.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Controller, error) {
			installer, err := graft.Dep[ports.Installer](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ManifestStore](ctx)
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

			return NewController(installer, store, diagnose.New(), tracer, log), nil
		},
	})
}
