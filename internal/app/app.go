// Package app implements the application layer for defaultdata.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/defaultdata/defaultdata/internal/core/domain"
	"github.com/defaultdata/defaultdata/internal/core/ports"
	"github.com/defaultdata/defaultdata/internal/ui/render"
	"go.trai.ch/zerr"
)

// App represents the main application logic: the check and package
// pipelines over one data directory.
type App struct {
	scanner  ports.Scanner
	sidecars ports.SidecarLoader
	hasher   ports.Hasher
	writer   ports.DescriptorWriter
	state    ports.StateStore
	logger   ports.Logger
	stdout   io.Writer
}

// New creates a new App instance.
func New(
	scanner ports.Scanner,
	sidecars ports.SidecarLoader,
	hasher ports.Hasher,
	writer ports.DescriptorWriter,
	state ports.StateStore,
	log ports.Logger,
) *App {
	return &App{
		scanner:  scanner,
		sidecars: sidecars,
		hasher:   hasher,
		writer:   writer,
		state:    state,
		logger:   log,
		stdout:   os.Stdout,
	}
}

// WithStdout redirects the App's status output. Used by tests.
func WithStdout(w io.Writer) func(*App) {
	return func(a *App) {
		a.stdout = w
	}
}

// CheckOptions are the inputs of the check pipeline.
type CheckOptions struct {
	// Dir is the data directory to validate.
	Dir string

	// Investigation restricts the check to one investigation when set.
	Investigation string
}

// PackageOptions are the inputs of the package pipeline.
type PackageOptions struct {
	Dir           string
	Investigation string

	// Output is the descriptor path. Empty means datapackage.json in the
	// working directory.
	Output string
}

// Check validates the data directory structure, prints the report and
// returns domain.ErrStructure when the bijection between data files and
// sidecars does not hold. On a structurally clean directory the sidecars
// are parsed too, so an author sees every broken metadata file in the same
// report instead of discovering them one at a time during packaging.
func (a *App) Check(_ context.Context, opts CheckOptions) error {
	report, inv, err := a.validate(opts.Dir, opts.Investigation)
	if err != nil {
		return err
	}

	if report.OK() {
		a.checkSidecars(inv, report)
	}

	if err := render.New(a.stdout).Render(report); err != nil {
		return zerr.Wrap(err, "failed to render report")
	}

	if !report.OK() {
		return zerr.With(domain.ErrStructure, "problems", len(report.Problems))
	}
	return nil
}

// Package re-validates the directory and, if the structure holds, builds
// the descriptor and writes it to the output path. On validation failure
// nothing is written.
func (a *App) Package(_ context.Context, opts PackageOptions) error {
	report, inv, err := a.validate(opts.Dir, opts.Investigation)
	if err != nil {
		return err
	}

	if !report.OK() {
		if err := render.New(a.stdout).Render(report); err != nil {
			return zerr.Wrap(err, "failed to render report")
		}
		return zerr.With(domain.ErrStructure, "problems", len(report.Problems))
	}

	descriptor, fingerprints, err := a.build(inv)
	if err != nil {
		return err
	}

	outputPath := opts.Output
	if outputPath == "" {
		outputPath = domain.DefaultDescriptorFile
	}
	statePath := filepath.Join(filepath.Dir(outputPath), domain.StateFile)

	previous, err := a.state.Load(statePath)
	if err != nil {
		// State is informational only, a broken state file must not block
		// packaging.
		a.logger.Warn(fmt.Sprintf("ignoring unreadable package state: %v", err))
		previous = map[string]string{}
	}

	if err := a.writer.Write(outputPath, descriptor); err != nil {
		return err
	}

	if err := a.state.Save(statePath, fingerprints); err != nil {
		a.logger.Warn(fmt.Sprintf("failed to save package state: %v", err))
	}

	if _, err := fmt.Fprintf(a.stdout, "Created %s with %d resource(s).\n", outputPath, len(descriptor.Resources)); err != nil {
		return zerr.Wrap(err, "failed to write status message")
	}

	if changed := countChanged(previous, fingerprints); len(previous) > 0 {
		a.logger.Info(fmt.Sprintf("%d resource(s) changed since last package", changed))
	}

	return nil
}

// checkSidecars parses every sidecar of a structurally valid inventory and
// folds parse failures into the report. It must only be called when the
// report is clean, so each investigation has exactly one sidecar.
func (a *App) checkSidecars(inv *domain.Inventory, report *domain.Report) {
	for _, name := range inv.Names() {
		group := inv.Investigations[name]
		sidecarPath := filepath.Join(inv.Dir, group.SidecarFile())

		if _, err := a.sidecars.Load(sidecarPath); err != nil {
			report.Problems = append(report.Problems, domain.Problem{
				Kind:          domain.ProblemSidecarInvalid,
				Investigation: name,
				Path:          group.SidecarFile(),
			})
		}
	}
}

func (a *App) validate(dir, investigation string) (*domain.Report, *domain.Inventory, error) {
	inv, err := a.scanner.Scan(dir)
	if err != nil {
		return nil, nil, err
	}

	inv, err = inv.Filter(investigation)
	if err != nil {
		return nil, nil, err
	}

	return domain.Validate(inv), inv, nil
}

// build assembles the descriptor and the per-resource fingerprints from a
// validated inventory. Resources are ordered by name so repeated runs over
// unchanged inputs produce identical output.
func (a *App) build(inv *domain.Inventory) (*domain.Descriptor, map[string]string, error) {
	descriptor := &domain.Descriptor{
		Name:      packageName(inv.Dir),
		Resources: []domain.Resource{},
	}
	fingerprints := make(map[string]string, len(inv.Investigations))

	for _, name := range inv.Names() {
		group := inv.Investigations[name]
		dataPath := filepath.Join(inv.Dir, group.DataFile())
		sidecarPath := filepath.Join(inv.Dir, group.SidecarFile())

		info, err := a.hasher.FileInfo(dataPath)
		if err != nil {
			return nil, nil, err
		}

		fields, err := a.sidecars.Load(sidecarPath)
		if err != nil {
			return nil, nil, err
		}
		if fields == nil {
			// An empty sidecar still yields "fields": [] in the descriptor.
			fields = []domain.Field{}
		}

		fingerprint, err := a.hasher.Fingerprint(dataPath, sidecarPath)
		if err != nil {
			return nil, nil, err
		}
		fingerprints[name] = fingerprint

		format := domain.FormatOf(group.DataFile())
		descriptor.Resources = append(descriptor.Resources, domain.Resource{
			Profile:   domain.ResourceProfile,
			Name:      name,
			Path:      group.DataFile(),
			Format:    format,
			Mediatype: domain.MediatypeOf(format),
			Encoding:  "utf-8",
			Bytes:     info.Bytes,
			Hash:      info.Hash,
			Schema:    domain.Schema{Fields: fields},
			Dialect:   domain.DialectFor(format),
			Licenses:  domain.DefaultLicenses(),
		})
	}

	return descriptor, fingerprints, nil
}

func countChanged(previous, current map[string]string) int {
	changed := 0
	for name, fingerprint := range current {
		if previous[name] != fingerprint {
			changed++
		}
	}
	for name := range previous {
		if _, ok := current[name]; !ok {
			changed++
		}
	}
	return changed
}

func packageName(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return domain.FallbackPackageName
	}

	base := filepath.Base(abs)
	if base == "." || base == string(filepath.Separator) || base == "" {
		return domain.FallbackPackageName
	}
	return base
}
