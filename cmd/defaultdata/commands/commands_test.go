package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/defaultdata/defaultdata/cmd/defaultdata/commands"
	"github.com/defaultdata/defaultdata/internal/app"
	"github.com/defaultdata/defaultdata/internal/core/domain"
	"github.com/defaultdata/defaultdata/internal/core/ports"
	"github.com/defaultdata/defaultdata/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type harness struct {
	scanner  *mocks.MockScanner
	sidecars *mocks.MockSidecarLoader
	hasher   *mocks.MockHasher
	writer   *mocks.MockDescriptorWriter
	state    *mocks.MockStateStore
	stdout   *bytes.Buffer
	cli      *commands.CLI
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	h := &harness{
		scanner:  mocks.NewMockScanner(ctrl),
		sidecars: mocks.NewMockSidecarLoader(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		writer:   mocks.NewMockDescriptorWriter(ctrl),
		state:    mocks.NewMockStateStore(ctrl),
		stdout:   &bytes.Buffer{},
	}
	a := app.New(h.scanner, h.sidecars, h.hasher, h.writer, h.state, mocks.NewMockLogger(ctrl))
	app.WithStdout(h.stdout)(a)
	h.cli = commands.New(a)
	return h
}

func matchedInventory(dir string) *domain.Inventory {
	inv := domain.NewInventory(dir)
	inv.Add("happiness", domain.FileData, "happiness.csv")
	inv.Add("happiness", domain.FileSidecar, "happiness.meta.yaml")
	return inv
}

func TestCheck_DefaultDir(t *testing.T) {
	h := newHarness(t)
	h.scanner.EXPECT().Scan(".").Return(matchedInventory("."), nil)
	h.sidecars.EXPECT().Load(gomock.Any()).Return(nil, nil)

	h.cli.SetArgs([]string{"check"})

	err := h.cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, h.stdout.String(), "All checks passed")
}

func TestCheck_DirFlag(t *testing.T) {
	h := newHarness(t)
	h.scanner.EXPECT().Scan("research").Return(matchedInventory("research"), nil)
	h.sidecars.EXPECT().Load(gomock.Any()).Return(nil, nil)

	h.cli.SetArgs([]string{"check", "--dir", "research"})

	err := h.cli.Execute(context.Background())
	require.NoError(t, err)
}

func TestCheck_FailedStructure(t *testing.T) {
	h := newHarness(t)
	inv := domain.NewInventory(".")
	inv.Add("happiness", domain.FileData, "happiness.csv")
	h.scanner.EXPECT().Scan(".").Return(inv, nil)

	h.cli.SetArgs([]string{"check"})

	err := h.cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrStructure)
}

func TestCheck_InvestigationArg(t *testing.T) {
	h := newHarness(t)
	inv := matchedInventory(".")
	inv.Add("gdp", domain.FileData, "gdp.csv")
	h.scanner.EXPECT().Scan(".").Return(inv, nil)
	h.sidecars.EXPECT().Load(gomock.Any()).Return(nil, nil)

	// Only happiness is checked, so the missing gdp sidecar is not reported.
	h.cli.SetArgs([]string{"check", "happiness"})

	err := h.cli.Execute(context.Background())
	require.NoError(t, err)
}

func TestPackage_OutputFlag(t *testing.T) {
	h := newHarness(t)
	h.scanner.EXPECT().Scan(".").Return(matchedInventory("."), nil)
	h.hasher.EXPECT().FileInfo(gomock.Any()).Return(ports.FileInfo{}, nil)
	h.sidecars.EXPECT().Load(gomock.Any()).Return(nil, nil)
	h.hasher.EXPECT().Fingerprint(gomock.Any(), gomock.Any()).Return("0", nil)
	h.state.EXPECT().Load(gomock.Any()).Return(map[string]string{}, nil)
	h.writer.EXPECT().Write("out.json", gomock.Any()).Return(nil)
	h.state.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	h.cli.SetArgs([]string{"package", "-o", "out.json"})

	err := h.cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, h.stdout.String(), "out.json")
}

func TestRoot_Help(t *testing.T) {
	h := newHarness(t)

	h.cli.SetArgs([]string{"--help"})

	err := h.cli.Execute(context.Background())
	require.NoError(t, err)
}
