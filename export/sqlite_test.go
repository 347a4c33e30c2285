package export

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelens-org/cinelens/dataset"
)

func TestWriteSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.db")
	movies := []dataset.Movie{
		{Title: "A", Genre: "Comedy,Drama", Year: 2020, Rating: 8.0},
		{Title: "B", Genre: "Drama", Year: 2020, Rating: 6.0},
	}

	require.NoError(t, WriteSQLite(path, movies, testGenres, testYears))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var movieCount int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM movies").Scan(&movieCount))
	assert.Equal(t, 2, movieCount)

	var dramaAvg float64
	require.NoError(t, db.QueryRow("SELECT avg_rating FROM genre_ratings WHERE genre = 'Drama'").Scan(&dramaAvg))
	assert.Equal(t, 7.0, dramaAvg)

	var count2020 int
	require.NoError(t, db.QueryRow("SELECT count FROM year_counts WHERE year = 2020").Scan(&count2020))
	assert.Equal(t, 2, count2020)
}

func TestWriteSQLiteReplacesPreviousRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.db")
	movies := []dataset.Movie{{Title: "A", Genre: "Drama", Year: 2020, Rating: 8.0}}

	require.NoError(t, WriteSQLite(path, movies, testGenres, testYears))
	// Second run with a smaller dataset must fully replace the first.
	require.NoError(t, WriteSQLite(path, movies[:0], nil, nil))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM movies").Scan(&n))
	assert.Zero(t, n)
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM genre_ratings").Scan(&n))
	assert.Zero(t, n)
}
