package ports

import "github.com/defaultdata/defaultdata/internal/core/domain"

// SidecarLoader defines the interface for parsing sidecar metadata files.
//
//go:generate mockgen -source=sidecar_loader.go -destination=mocks/mock_sidecar_loader.go -package=mocks
type SidecarLoader interface {
	// Load parses one sidecar metadata file into an ordered field list.
	// Returns domain.ErrMetadataParse when the file is not a YAML mapping.
	Load(path string) ([]domain.Field, error)
}
