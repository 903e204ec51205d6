// Package render turns structure reports into human-readable terminal
// output.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/defaultdata/defaultdata/internal/core/domain"
	"github.com/defaultdata/defaultdata/internal/ui/output"
	"github.com/defaultdata/defaultdata/internal/ui/style"
	"github.com/muesli/termenv"
)

// ReportRenderer writes structure reports to a terminal.
type ReportRenderer struct {
	w    io.Writer
	pass lipgloss.Style
	fail lipgloss.Style
	item lipgloss.Style
}

// New creates a renderer for w using the environment's color profile.
func New(w io.Writer) *ReportRenderer {
	return NewWithProfile(w, output.ColorProfile())
}

// NewWithProfile creates a renderer with an explicit color profile. Used by
// tests to force deterministic output.
func NewWithProfile(w io.Writer, profile termenv.Profile) *ReportRenderer {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(profile), termenv.WithTTY(true))
	r.SetColorProfile(profile)
	return &ReportRenderer{
		w:    w,
		pass: r.NewStyle().Foreground(style.Green),
		fail: r.NewStyle().Foreground(style.Red),
		item: r.NewStyle().Foreground(style.Slate),
	}
}

// Render writes one line per problem followed by a pass/fail summary.
func (r *ReportRenderer) Render(report *domain.Report) error {
	if report.OK() {
		_, err := fmt.Fprintln(r.w, r.pass.Render(style.Check+" All checks passed."))
		return err
	}

	if _, err := fmt.Fprintln(r.w, "Validation errors found:"); err != nil {
		return err
	}
	for _, problem := range report.Problems {
		line := "  " + r.fail.Render(style.Cross) + " " + r.item.Render(problem.Message())
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return err
		}
	}

	summary := fmt.Sprintf("%s %d problem(s) found.", style.Cross, len(report.Problems))
	_, err := fmt.Fprintln(r.w, r.fail.Render(summary))
	return err
}
