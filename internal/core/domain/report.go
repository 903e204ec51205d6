package domain

import (
	"fmt"
	"sort"
)

// ProblemKind identifies a class of structure violation.
type ProblemKind string

const (
	// ProblemMissingSidecar flags a data file without a sidecar metadata file.
	ProblemMissingSidecar ProblemKind = "missing_sidecar"
	// ProblemOrphanSidecar flags a sidecar metadata file without a data file.
	ProblemOrphanSidecar ProblemKind = "orphan_sidecar"
	// ProblemDuplicateData flags an investigation with more than one data file.
	ProblemDuplicateData ProblemKind = "duplicate_data"
	// ProblemDuplicateSidecar flags an investigation with more than one sidecar.
	ProblemDuplicateSidecar ProblemKind = "duplicate_sidecar"
	// ProblemExtraRaw flags an investigation with more than one raw companion.
	ProblemExtraRaw ProblemKind = "extra_raw"
	// ProblemExtraSource flags an investigation with more than one source companion.
	ProblemExtraSource ProblemKind = "extra_source"
	// ProblemOrphanCompanion flags a raw or source companion whose
	// investigation has no data file.
	ProblemOrphanCompanion ProblemKind = "orphan_companion"
	// ProblemSidecarInvalid flags a sidecar metadata file that cannot be
	// parsed. Structure validation never reads files, so this kind is added
	// by the check pipeline after loading each sidecar.
	ProblemSidecarInvalid ProblemKind = "sidecar_invalid"
	// ProblemInvalidName flags an investigation name with invalid
	// characters. The scanner's naming patterns cannot produce such a name,
	// so this guards inventories assembled by other means.
	ProblemInvalidName ProblemKind = "invalid_name"
	// ProblemSubdirectory flags a subdirectory inside the data directory.
	ProblemSubdirectory ProblemKind = "subdirectory"
	// ProblemUnmatchedFile flags a file that matches no known naming pattern.
	ProblemUnmatchedFile ProblemKind = "unmatched_file"
)

// Problem is one structure violation, tied to the path that caused it.
type Problem struct {
	Kind          ProblemKind
	Investigation string
	Path          string
}

// Message returns the human-readable description of the problem.
func (p Problem) Message() string {
	switch p.Kind {
	case ProblemMissingSidecar:
		return fmt.Sprintf("data file %q has no sidecar metadata file", p.Path)
	case ProblemOrphanSidecar:
		return fmt.Sprintf("sidecar %q has no matching data file", p.Path)
	case ProblemDuplicateData:
		return fmt.Sprintf("investigation %q has more than one data file: %q", p.Investigation, p.Path)
	case ProblemDuplicateSidecar:
		return fmt.Sprintf("investigation %q has more than one sidecar: %q", p.Investigation, p.Path)
	case ProblemExtraRaw:
		return fmt.Sprintf("investigation %q has more than one raw file: %q", p.Investigation, p.Path)
	case ProblemExtraSource:
		return fmt.Sprintf("investigation %q has more than one source file: %q", p.Investigation, p.Path)
	case ProblemOrphanCompanion:
		return fmt.Sprintf("companion file %q belongs to no data file", p.Path)
	case ProblemSidecarInvalid:
		return fmt.Sprintf("sidecar %q cannot be parsed as metadata", p.Path)
	case ProblemInvalidName:
		return fmt.Sprintf("investigation name %q contains invalid characters, only [A-Za-z0-9_] are allowed", p.Investigation)
	case ProblemSubdirectory:
		return fmt.Sprintf("data directory must only contain files, found subdirectory %q", p.Path)
	case ProblemUnmatchedFile:
		return fmt.Sprintf("file %q does not match any known naming pattern", p.Path)
	default:
		return fmt.Sprintf("unknown problem at %q", p.Path)
	}
}

// Report is the result of validating an inventory. It collects every
// problem found so an author can fix a dataset in one pass.
type Report struct {
	Problems []Problem
}

// OK reports whether the structure invariant holds.
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

// MissingSidecars returns the data files that lack a sidecar metadata file.
func (r *Report) MissingSidecars() []string {
	return r.paths(ProblemMissingSidecar)
}

// OrphanSidecars returns the sidecar files that lack a matching data file.
func (r *Report) OrphanSidecars() []string {
	return r.paths(ProblemOrphanSidecar)
}

func (r *Report) paths(kind ProblemKind) []string {
	var paths []string
	for _, p := range r.Problems {
		if p.Kind == kind {
			paths = append(paths, p.Path)
		}
	}
	return paths
}

// Validate computes the structure report for an inventory. An empty
// inventory passes trivially. Duplicates are reported, never resolved by
// picking a winner.
func Validate(inv *Inventory) *Report {
	report := &Report{}

	for _, dir := range inv.Subdirs {
		report.add(Problem{Kind: ProblemSubdirectory, Path: dir})
	}
	for _, file := range inv.Unmatched {
		report.add(Problem{Kind: ProblemUnmatchedFile, Path: file})
	}

	for _, name := range inv.Names() {
		group := inv.Investigations[name]

		if !ValidInvestigationName(name) {
			report.add(Problem{Kind: ProblemInvalidName, Investigation: name})
		}

		switch {
		case len(group.Data) == 0:
			for _, sidecar := range group.Sidecars {
				report.add(Problem{Kind: ProblemOrphanSidecar, Investigation: name, Path: sidecar})
			}
			for _, companion := range append(append([]string{}, group.Raw...), group.Source...) {
				report.add(Problem{Kind: ProblemOrphanCompanion, Investigation: name, Path: companion})
			}
		case len(group.Data) > 1:
			for _, data := range group.Data[1:] {
				report.add(Problem{Kind: ProblemDuplicateData, Investigation: name, Path: data})
			}
		}

		if len(group.Data) > 0 {
			switch {
			case len(group.Sidecars) == 0:
				for _, data := range group.Data {
					report.add(Problem{Kind: ProblemMissingSidecar, Investigation: name, Path: data})
				}
			case len(group.Sidecars) > 1:
				for _, sidecar := range group.Sidecars[1:] {
					report.add(Problem{Kind: ProblemDuplicateSidecar, Investigation: name, Path: sidecar})
				}
			}
		}

		if len(group.Raw) > 1 {
			for _, raw := range group.Raw[1:] {
				report.add(Problem{Kind: ProblemExtraRaw, Investigation: name, Path: raw})
			}
		}
		if len(group.Source) > 1 {
			for _, source := range group.Source[1:] {
				report.add(Problem{Kind: ProblemExtraSource, Investigation: name, Path: source})
			}
		}
	}

	sort.SliceStable(report.Problems, func(i, j int) bool {
		a, b := report.Problems[i], report.Problems[j]
		if a.Investigation != b.Investigation {
			return a.Investigation < b.Investigation
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.Path < b.Path
	})

	return report
}

func (r *Report) add(p Problem) {
	r.Problems = append(r.Problems, p)
}
