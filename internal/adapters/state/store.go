// Package state persists per-resource fingerprints between package runs.
package state

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/defaultdata/defaultdata/internal/core/domain"
	"github.com/defaultdata/defaultdata/internal/core/ports"
	"github.com/natefinch/atomic"
	"go.trai.ch/zerr"
)

var _ ports.StateStore = (*Store)(nil)

// Store implements ports.StateStore using a flat JSON file mapping resource
// name to fingerprint.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the fingerprint map from path. A missing or empty file yields
// an empty map.
func (s *Store) Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path sits next to the descriptor the user chose
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStateReadFailed.Error()), "path", path)
	}
	if len(data) == 0 {
		return map[string]string{}, nil
	}

	fingerprints := map[string]string{}
	if err := json.Unmarshal(data, &fingerprints); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStateReadFailed.Error()), "path", path)
	}
	return fingerprints, nil
}

// Save writes the fingerprint map to path atomically.
func (s *Store) Save(path string, fingerprints map[string]string) error {
	data, err := json.MarshalIndent(fingerprints, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStateWriteFailed.Error())
	}
	data = append(data, '\n')

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", path)
	}
	return nil
}
