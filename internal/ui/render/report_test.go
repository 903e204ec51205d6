package render_test

import (
	"bytes"
	"testing"

	"github.com/defaultdata/defaultdata/internal/core/domain"
	"github.com/defaultdata/defaultdata/internal/ui/render"
	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func renderAscii(t *testing.T, report *domain.Report) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	r := render.NewWithProfile(buf, termenv.Ascii)
	require.NoError(t, r.Render(report))
	return buf.Bytes()
}

func TestRender_Pass(t *testing.T) {
	inv := domain.NewInventory("/tmp/data")
	inv.Add("happiness", domain.FileData, "happiness.csv")
	inv.Add("happiness", domain.FileSidecar, "happiness.meta.yaml")

	got := renderAscii(t, domain.Validate(inv))

	g := goldie.New(t)
	g.Assert(t, "report_pass", got)
}

func TestRender_Failures(t *testing.T) {
	inv := domain.NewInventory("/tmp/data")
	inv.Add("beta", domain.FileSidecar, "beta.meta.yaml")
	inv.Add("happiness", domain.FileData, "happiness.csv")

	got := renderAscii(t, domain.Validate(inv))

	g := goldie.New(t)
	g.Assert(t, "report_failures", got)
}

func TestRender_EveryProblemGetsALine(t *testing.T) {
	inv := domain.NewInventory("/tmp/data")
	inv.Subdirs = []string{"nested"}
	inv.Add("alpha", domain.FileData, "alpha.csv")
	inv.Add("beta", domain.FileSidecar, "beta.meta.yaml")

	got := renderAscii(t, domain.Validate(inv))

	g := goldie.New(t)
	g.Assert(t, "report_mixed", got)
}
