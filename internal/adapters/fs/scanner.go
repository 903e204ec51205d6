// Package fs provides file system adapters for scanning and hashing the
// files of a data directory.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"regexp"

	"github.com/defaultdata/defaultdata/internal/core/domain"
	"github.com/defaultdata/defaultdata/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Scanner = (*Scanner)(nil)

// Naming patterns of the default data convention, tried in order. The
// sidecar and companion patterns must come before the generic data pattern.
var (
	sidecarPattern = regexp.MustCompile(`^([A-Za-z0-9_]+)\.meta\.ya?ml$`)
	rawPattern     = regexp.MustCompile(`^([A-Za-z0-9_]+)-raw\..+$`)
	sourcePattern  = regexp.MustCompile(`^([A-Za-z0-9_]+)-source\..+$`)
	dataPattern    = regexp.MustCompile(`^([A-Za-z0-9_]+)\..+$`)
)

// ignoredFiles may be present in a data directory without taking part in
// the convention. The tool's own outputs are ignored so a descriptor
// written into the data directory does not fail the next check.
var ignoredFiles = map[string]bool{
	".gitignore":                 true,
	".DS_Store":                  true,
	domain.DefaultDescriptorFile: true,
	domain.StateFile:             true,
}

// Scanner classifies the files of a data directory into an inventory.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan lists the data directory and groups its files by investigation.
// The scan is shallow: subdirectories are recorded as structure problems,
// never descended into.
func (s *Scanner) Scan(dir string) (*domain.Inventory, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrDirectoryNotFound, "dir", dir)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to stat data directory"), "dir", dir)
	}
	if !info.IsDir() {
		return nil, zerr.With(domain.ErrNotADirectory, "dir", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDirectoryReadFailed.Error()), "dir", dir)
	}

	inv := domain.NewInventory(dir)
	for _, entry := range entries {
		name := entry.Name()

		if entry.IsDir() {
			inv.Subdirs = append(inv.Subdirs, name)
			continue
		}
		if ignoredFiles[name] {
			continue
		}

		kind, investigation, ok := classify(name)
		if !ok {
			inv.Unmatched = append(inv.Unmatched, name)
			continue
		}
		inv.Add(investigation, kind, name)
	}

	return inv, nil
}

func classify(file string) (domain.FileKind, string, bool) {
	for _, c := range []struct {
		kind    domain.FileKind
		pattern *regexp.Regexp
	}{
		{domain.FileSidecar, sidecarPattern},
		{domain.FileRaw, rawPattern},
		{domain.FileSource, sourcePattern},
		{domain.FileData, dataPattern},
	} {
		if m := c.pattern.FindStringSubmatch(file); m != nil {
			return c.kind, m[1], true
		}
	}
	return "", "", false
}
