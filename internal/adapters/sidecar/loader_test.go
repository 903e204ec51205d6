package sidecar_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/defaultdata/defaultdata/internal/adapters/sidecar"
	"github.com/defaultdata/defaultdata/internal/core/domain"
	"github.com/defaultdata/defaultdata/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *sidecar.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return sidecar.NewLoader(mockLogger)
}

func writeSidecar(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "happiness.meta.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load_FieldsInAuthorOrder(t *testing.T) {
	path := writeSidecar(t, `
country:
  type: string
  description: Country name
year:
  type: integer
score:
  type: number
`)

	fields, err := newLoader(t).Load(path)
	require.NoError(t, err)

	require.Len(t, fields, 3)
	assert.Equal(t, "country", fields[0].Name)
	assert.Equal(t, "year", fields[1].Name)
	assert.Equal(t, "score", fields[2].Name)
	assert.Equal(t, "string", fields[0].Attrs["type"])
	assert.Equal(t, "Country name", fields[0].Attrs["description"])
}

func TestLoader_Load_EmptyFileHasNoFields(t *testing.T) {
	path := writeSidecar(t, "")

	fields, err := newLoader(t).Load(path)
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestLoader_Load_NonMappingRootFails(t *testing.T) {
	path := writeSidecar(t, "- a\n- b\n")

	_, err := newLoader(t).Load(path)
	require.ErrorIs(t, err, domain.ErrMetadataParse)
}

func TestLoader_Load_MalformedYAMLFails(t *testing.T) {
	path := writeSidecar(t, "country: [unclosed\n")

	_, err := newLoader(t).Load(path)
	require.Error(t, err)
}

func TestLoader_Load_SkipsNonMappingFieldsWithWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)
	loader := sidecar.NewLoader(mockLogger)

	path := writeSidecar(t, `
country:
  type: string
comment: just a string
`)

	fields, err := loader.Load(path)
	require.NoError(t, err)

	require.Len(t, fields, 1)
	assert.Equal(t, "country", fields[0].Name)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "nope.meta.yaml"))
	require.Error(t, err)
}
