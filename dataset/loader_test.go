package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSynthesizesSampleWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv")

	rows, err := Load(path)
	require.NoError(t, err)

	// The sample file must now exist on disk and round-trip cleanly.
	_, err = os.Stat(path)
	require.NoError(t, err)

	assert.Len(t, rows, len(sampleMovies))
	movies, dropped := Clean(rows)
	assert.Zero(t, dropped, "sample dataset should have no malformed rows")
	assert.Len(t, movies, len(sampleMovies))
}

func TestLoadKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv")
	data := "Title,Genre,Rating,Year\nSolaris,Sci-Fi,8.1,1972\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	rows, err := Load(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Solaris", rows[0].Title)

	// The existing file must not be replaced by the sample.
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, string(got))
}

func TestParseHeaderMatching(t *testing.T) {
	csvData := " title , GENRE ,Rating,Year,Director\nHeat,Crime,8.3,1995,Mann\n"

	rows, err := parse(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, RawRow{Title: "Heat", Genre: "Crime", Year: "1995", Rating: "8.3"}, rows[0])
}

func TestParseMissingColumn(t *testing.T) {
	csvData := "Title,Genre,Rating\nHeat,Crime,8.3\n"

	_, err := parse(strings.NewReader(csvData))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "year")
}

func TestParseShortRows(t *testing.T) {
	// Rows shorter than the header surface as raw rows with empty fields;
	// the cleaner is responsible for dropping them.
	csvData := "Title,Genre,Rating,Year\nHeat,Crime\n"

	rows, err := parse(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Year)
}
