package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Paths(t *testing.T) {
	c := Config{DataDir: "data", WorkDir: "work"}

	assert.Equal(t, filepath.Join("work", "streets-budafok.csv"), c.StreetsPath("budafok"))
	assert.Equal(t, filepath.Join("work", "street-housenumbers-budafok.csv"), c.HouseNumbersPath("budafok"))
	assert.Equal(t, filepath.Join("work", "street-housenumbers-reference-budafok.lst"), c.ReferenceListPath("budafok"))
}

func TestReadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streets.csv")
	content := "@id\tname\n1\tA utca\n\n2\tB utca\t\n3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rows, err := ReadTable(path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "A utca"}, {"2", "B utca"}, {"3"}}, rows)

	names, err := NthColumn(path, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A utca", "B utca"}, names)
}

func TestReadTable_Missing(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestWriteAndReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "list.lst")

	require.NoError(t, WriteLines(path, []string{"A utca 1", "A utca 3"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A utca 1\nA utca 3\n", string(data))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A utca 1", "A utca 3"}, lines)

	require.NoError(t, WriteLines(path, nil))
	lines, err = ReadLines(path)
	require.NoError(t, err)
	assert.Empty(t, lines)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}
