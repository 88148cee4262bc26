package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mend/internal/core/ports"
)

const NodeID graft.ID = "adapter.locked_set_loader"

func init() {
	graft.Register(graft.Node[ports.LockedSetLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.LockedSetLoader, error) {
			return &FileLockedSetLoader{}, nil
		},
	})
}
