package fs

import (
	"context"

	"github.com/defaultdata/defaultdata/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	ScannerNodeID graft.ID = "adapter.fs.scanner"
	HasherNodeID  graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.Scanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Scanner, error) {
			return NewScanner(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
