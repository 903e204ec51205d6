// Package domain contains the pure types and rules of the default data
// convention: the file inventory, the structure report and the package
// descriptor.
package domain

import (
	"regexp"
	"sort"

	"go.trai.ch/zerr"
)

// FileKind classifies a file in the data directory.
type FileKind string

const (
	// FileData is a data file, the resource being published.
	FileData FileKind = "data"
	// FileSidecar is a sidecar metadata file describing one data file.
	FileSidecar FileKind = "sidecar"
	// FileRaw is an optional raw companion file of an investigation.
	FileRaw FileKind = "raw"
	// FileSource is an optional source companion file of an investigation.
	FileSource FileKind = "source"
)

var validInvestigationName = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ValidInvestigationName reports whether a name contains only alphanumeric
// characters and underscores.
func ValidInvestigationName(name string) bool {
	return validInvestigationName.MatchString(name)
}

// Investigation groups the files of the data directory that share one name.
// File slices hold names relative to the scanned directory and keep the
// order in which the scanner found them.
type Investigation struct {
	Name     string
	Data     []string
	Sidecars []string
	Raw      []string
	Source   []string
}

// DataFile returns the investigation's data file. It must only be called on
// a validated investigation, where exactly one data file exists.
func (i *Investigation) DataFile() string {
	return i.Data[0]
}

// SidecarFile returns the investigation's sidecar metadata file. It must
// only be called on a validated investigation.
func (i *Investigation) SidecarFile() string {
	return i.Sidecars[0]
}

// Inventory is the classified content of one data directory.
type Inventory struct {
	// Dir is the scanned directory.
	Dir string

	// Investigations maps investigation name to its file group.
	Investigations map[string]*Investigation

	// Subdirs lists subdirectories found in the data directory. The
	// convention allows none.
	Subdirs []string

	// Unmatched lists files that match no known naming pattern.
	Unmatched []string
}

// NewInventory creates an empty inventory for the given directory.
func NewInventory(dir string) *Inventory {
	return &Inventory{
		Dir:            dir,
		Investigations: make(map[string]*Investigation),
	}
}

// Add records a classified file under its investigation name.
func (inv *Inventory) Add(name string, kind FileKind, file string) {
	group, ok := inv.Investigations[name]
	if !ok {
		group = &Investigation{Name: name}
		inv.Investigations[name] = group
	}

	switch kind {
	case FileData:
		group.Data = append(group.Data, file)
	case FileSidecar:
		group.Sidecars = append(group.Sidecars, file)
	case FileRaw:
		group.Raw = append(group.Raw, file)
	case FileSource:
		group.Source = append(group.Source, file)
	}
}

// Names returns the investigation names in sorted order.
func (inv *Inventory) Names() []string {
	names := make([]string, 0, len(inv.Investigations))
	for name := range inv.Investigations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Filter narrows the inventory down to a single investigation. An empty
// target returns the inventory unchanged. Stray subdirectories and
// unmatched files are dropped from the filtered view, matching the
// behavior of checking one investigation in isolation.
func (inv *Inventory) Filter(target string) (*Inventory, error) {
	if target == "" {
		return inv, nil
	}

	group, ok := inv.Investigations[target]
	if !ok {
		return nil, zerr.With(ErrInvestigationNotFound, "investigation", target)
	}

	filtered := NewInventory(inv.Dir)
	filtered.Investigations[target] = group
	return filtered, nil
}
