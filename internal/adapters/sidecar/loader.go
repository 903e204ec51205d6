// Package sidecar parses sidecar metadata files into resource field lists.
package sidecar

import (
	"fmt"
	"os"

	"github.com/defaultdata/defaultdata/internal/core/domain"
	"github.com/defaultdata/defaultdata/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SidecarLoader = (*Loader)(nil)

// Loader implements ports.SidecarLoader using YAML files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load parses one sidecar metadata file. Each top-level key of the YAML
// mapping becomes a field named after the key, merged with the key's
// definition mapping. Field order follows the file, so authors control how
// the schema reads in the descriptor.
func (l *Loader) Load(path string) ([]domain.Field, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the scanned directory
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataParse.Error()), "path", path)
	}

	mapping, err := mappingOf(&root, path)
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		// Empty sidecar: a resource with no declared fields.
		return nil, nil
	}

	fields := make([]domain.Field, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode, valueNode := mapping.Content[i], mapping.Content[i+1]

		if valueNode.Kind != yaml.MappingNode {
			l.Logger.Warn(fmt.Sprintf("field %q in %s is not a mapping, skipping", keyNode.Value, path))
			continue
		}

		var attrs map[string]any
		if err := valueNode.Decode(&attrs); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataParse.Error()), "path", path)
		}

		fields = append(fields, domain.Field{Name: keyNode.Value, Attrs: attrs})
	}

	return fields, nil
}

func mappingOf(root *yaml.Node, path string) (*yaml.Node, error) {
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, nil
	}

	doc := root.Content[0]
	if doc.Kind == yaml.ScalarNode && doc.Tag == "!!null" {
		return nil, nil
	}
	if doc.Kind != yaml.MappingNode {
		err := zerr.With(domain.ErrMetadataParse, "path", path)
		return nil, zerr.With(err, "reason", "expected a YAML mapping at the root")
	}
	return doc, nil
}
