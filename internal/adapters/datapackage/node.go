package datapackage

import (
	"context"

	"github.com/defaultdata/defaultdata/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.descriptor_writer"

func init() {
	graft.Register(graft.Node[ports.DescriptorWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DescriptorWriter, error) {
			return NewWriter(), nil
		},
	})
}
