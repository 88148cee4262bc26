package export

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mend/internal/adapters/logger"
	"go.trai.ch/mend/internal/core/ports"
)

const NodeID graft.ID = "adapter.audit_sink"

func init() {
	graft.Register(graft.Node[ports.AuditSink]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.AuditSink, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExporter(log), nil
		},
	})
}
