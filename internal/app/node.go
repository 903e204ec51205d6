package app

import (
	"context"

	"github.com/defaultdata/defaultdata/internal/adapters/datapackage" //nolint:depguard // Wired in app layer
	"github.com/defaultdata/defaultdata/internal/adapters/fs"          //nolint:depguard // Wired in app layer
	"github.com/defaultdata/defaultdata/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"github.com/defaultdata/defaultdata/internal/adapters/sidecar"     //nolint:depguard // Wired in app layer
	"github.com/defaultdata/defaultdata/internal/adapters/state"       //nolint:depguard // Wired in app layer
	"github.com/defaultdata/defaultdata/internal/core/ports"
	"github.com/grindlemire/graft"
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
			fs.ScannerNodeID,
			fs.HasherNodeID,
			sidecar.NodeID,
			datapackage.NodeID,
			state.NodeID,
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
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	scanner, err := graft.Dep[ports.Scanner](ctx)
	if err != nil {
		return nil, err
	}

	sidecars, err := graft.Dep[ports.SidecarLoader](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.DescriptorWriter](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.StateStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(scanner, sidecars, hasher, writer, store, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
