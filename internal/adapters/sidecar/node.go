package sidecar

import (
	"context"

	"github.com/defaultdata/defaultdata/internal/adapters/logger"
	"github.com/defaultdata/defaultdata/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.sidecar_loader"

func init() {
	graft.Register(graft.Node[ports.SidecarLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SidecarLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
