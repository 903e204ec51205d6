package ports

import "github.com/defaultdata/defaultdata/internal/core/domain"

// DescriptorWriter defines the interface for serializing and writing the
// package descriptor.
//
//go:generate mockgen -source=descriptor_writer.go -destination=mocks/mock_descriptor_writer.go -package=mocks
type DescriptorWriter interface {
	// Write serializes the descriptor and writes it to path, replacing any
	// existing file. The write is all-or-nothing: on failure the previous
	// file content is left untouched.
	Write(path string, d *domain.Descriptor) error
}
