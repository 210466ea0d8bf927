package map_reduce

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadRecords(t *testing.T) {
	dir := writeInputs(t, map[string]string{
		"b.txt": "third\n",
		"a.txt": "first\nsecond",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	got, err := ReadRecords(dir)
	require.NoError(t, err)
	require.Equal(t, []Record{
		{Source: filepath.Join(dir, "a.txt"), Line: "first\n"},
		{Source: filepath.Join(dir, "a.txt"), Line: "second"},
		{Source: filepath.Join(dir, "b.txt"), Line: "third\n"},
	}, got)
}

func TestReadRecordsEmptyFile(t *testing.T) {
	dir := writeInputs(t, map[string]string{"empty.txt": ""})

	got, err := ReadRecords(dir)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestReadRecordsInvalidUTF8(t *testing.T) {
	dir := writeInputs(t, map[string]string{"bad.txt": "fine line\nbroken \xff\n"})

	_, err := ReadRecords(dir)
	require.ErrorIs(t, err, ErrInvalidUTF8)
	require.Contains(t, err.Error(), "line 2")
}

func TestCreateOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")

	require.NoError(t, CreateOutputDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())

	require.ErrorIs(t, CreateOutputDir(dir), ErrOutputExists)
}

func TestWriteResults(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteResults(dir, []Pair{{"a", 6}, {"b", 3}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "a\t6\nb\t3\n", string(data))

	path, err = WriteSuccess(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, SuccessFileName), path)
}
