package state

import (
	"context"

	"github.com/defaultdata/defaultdata/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.state_store"

func init() {
	graft.Register(graft.Node[ports.StateStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StateStore, error) {
			return NewStore(), nil
		},
	})
}
