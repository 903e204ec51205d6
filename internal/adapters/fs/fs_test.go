package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/defaultdata/defaultdata/internal/adapters/fs"
	"github.com/defaultdata/defaultdata/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScanner_Scan_ClassifiesByNamingPattern(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, "happiness.csv", "country,score\n")
	createFile(t, dir, "happiness.meta.yaml", "country:\n  type: string\n")
	createFile(t, dir, "happiness-raw.xlsx", "binary")
	createFile(t, dir, "happiness-source.url", "https://example.org")
	createFile(t, dir, "gdp.tsv", "country\tgdp\n")

	scanner := fs.NewScanner()
	inv, err := scanner.Scan(dir)
	require.NoError(t, err)

	require.Equal(t, []string{"gdp", "happiness"}, inv.Names())

	happiness := inv.Investigations["happiness"]
	assert.Equal(t, []string{"happiness.csv"}, happiness.Data)
	assert.Equal(t, []string{"happiness.meta.yaml"}, happiness.Sidecars)
	assert.Equal(t, []string{"happiness-raw.xlsx"}, happiness.Raw)
	assert.Equal(t, []string{"happiness-source.url"}, happiness.Source)

	gdp := inv.Investigations["gdp"]
	assert.Equal(t, []string{"gdp.tsv"}, gdp.Data)
	assert.Empty(t, gdp.Sidecars)
}

func TestScanner_Scan_AcceptsBothSidecarExtensions(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, "a.meta.yaml", "x: {}\n")
	createFile(t, dir, "b.meta.yml", "x: {}\n")

	inv, err := fs.NewScanner().Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.meta.yaml"}, inv.Investigations["a"].Sidecars)
	assert.Equal(t, []string{"b.meta.yml"}, inv.Investigations["b"].Sidecars)
}

func TestScanner_Scan_RecordsStrayEntries(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o750))
	createFile(t, dir, "bad name.csv", "x")
	createFile(t, dir, "noextension", "x")

	inv, err := fs.NewScanner().Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"nested"}, inv.Subdirs)
	assert.ElementsMatch(t, []string{"bad name.csv", "noextension"}, inv.Unmatched)
	assert.Empty(t, inv.Investigations)
}

func TestScanner_Scan_IgnoresHousekeepingAndOwnOutputs(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, ".gitignore", "*")
	createFile(t, dir, ".DS_Store", "")
	createFile(t, dir, domain.DefaultDescriptorFile, "{}")
	createFile(t, dir, domain.StateFile, "{}")

	inv, err := fs.NewScanner().Scan(dir)
	require.NoError(t, err)

	assert.Empty(t, inv.Investigations)
	assert.Empty(t, inv.Unmatched)
	assert.True(t, domain.Validate(inv).OK())
}

func TestScanner_Scan_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()

	inv, err := fs.NewScanner().Scan(dir)
	require.NoError(t, err)

	assert.Empty(t, inv.Investigations)
	assert.True(t, domain.Validate(inv).OK())
}

func TestScanner_Scan_MissingDirectory(t *testing.T) {
	_, err := fs.NewScanner().Scan(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, domain.ErrDirectoryNotFound)
}

func TestScanner_Scan_PathIsAFile(t *testing.T) {
	dir := t.TempDir()
	path := createFile(t, dir, "data.csv", "x")

	_, err := fs.NewScanner().Scan(path)
	require.ErrorIs(t, err, domain.ErrNotADirectory)
}

func TestHasher_FileInfo(t *testing.T) {
	dir := t.TempDir()
	path := createFile(t, dir, "happiness.csv", "country,score\nFinland,7.8\n")

	info, err := fs.NewHasher().FileInfo(path)
	require.NoError(t, err)

	assert.Equal(t, int64(26), info.Bytes)
	assert.Equal(t, "e28fe020440d9ad674e7f8133655a54f", info.Hash)
}

func TestHasher_FileInfo_MissingFile(t *testing.T) {
	_, err := fs.NewHasher().FileInfo(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestHasher_Fingerprint_IsStable(t *testing.T) {
	dir := t.TempDir()
	data := createFile(t, dir, "happiness.csv", "country,score\n")
	sidecar := createFile(t, dir, "happiness.meta.yaml", "country:\n  type: string\n")

	h := fs.NewHasher()

	first, err := h.Fingerprint(data, sidecar)
	require.NoError(t, err)
	second, err := h.Fingerprint(data, sidecar)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 16)
}

func TestHasher_Fingerprint_ChangesWithContent(t *testing.T) {
	dir := t.TempDir()
	data := createFile(t, dir, "happiness.csv", "country,score\n")

	h := fs.NewHasher()
	before, err := h.Fingerprint(data)
	require.NoError(t, err)

	createFile(t, dir, "happiness.csv", "country,score\nFinland,7.8\n")
	after, err := h.Fingerprint(data)
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}
