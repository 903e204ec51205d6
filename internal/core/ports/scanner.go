// Package ports defines the interfaces between the application core and
// its adapters.
package ports

import "github.com/defaultdata/defaultdata/internal/core/domain"

// Scanner defines the interface for enumerating and classifying the files
// of a data directory.
//
//go:generate mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type Scanner interface {
	// Scan lists the data directory and groups its files into an inventory.
	// Returns domain.ErrDirectoryNotFound when the directory does not exist.
	Scan(dir string) (*domain.Inventory, error)
}
