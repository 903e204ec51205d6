package ports

// StateStore defines the interface for persisting per-resource fingerprints
// between package runs. The state is informational only and never affects
// what gets written to the descriptor.
//
//go:generate mockgen -source=state_store.go -destination=mocks/mock_state_store.go -package=mocks
type StateStore interface {
	// Load reads the fingerprint map from path. A missing file yields an
	// empty map, not an error.
	Load(path string) (map[string]string, error)

	// Save writes the fingerprint map to path.
	Save(path string, fingerprints map[string]string) error
}
