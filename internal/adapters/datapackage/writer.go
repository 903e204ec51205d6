// Package datapackage serializes the package descriptor to disk.
package datapackage

import (
	"bytes"
	"encoding/json"

	"github.com/defaultdata/defaultdata/internal/core/domain"
	"github.com/defaultdata/defaultdata/internal/core/ports"
	"github.com/natefinch/atomic"
	"go.trai.ch/zerr"
)

var _ ports.DescriptorWriter = (*Writer)(nil)

// Writer implements ports.DescriptorWriter with an atomic JSON file write.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write serializes the descriptor as indented JSON and replaces the file at
// path in one rename. A failed write leaves any previous descriptor intact,
// and identical descriptors serialize to identical bytes.
func (w *Writer) Write(path string, d *domain.Descriptor) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrDescriptorMarshalFailed.Error())
	}
	data = append(data, '\n')

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWrite.Error()), "path", path)
	}
	return nil
}
