package export

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/cinelens-org/cinelens/dataset"
	"github.com/cinelens-org/cinelens/stats"
)

// ============================================================================
// SQLITE REPORT — one queryable artifact next to the CSVs
// ============================================================================
// The database is an output file, not a store: every run drops and
// recreates the tables inside a single transaction, so a crashed run never
// leaves a half-written report behind.
// ============================================================================

const reportSchema = `
DROP TABLE IF EXISTS movies;
DROP TABLE IF EXISTS genre_ratings;
DROP TABLE IF EXISTS year_counts;

CREATE TABLE movies (
	title  TEXT NOT NULL,
	genre  TEXT NOT NULL,
	year   INTEGER NOT NULL,
	rating REAL NOT NULL
);

CREATE TABLE genre_ratings (
	genre      TEXT PRIMARY KEY,
	avg_rating REAL NOT NULL
);

CREATE TABLE year_counts (
	year  INTEGER PRIMARY KEY,
	count INTEGER NOT NULL
);
`

// WriteSQLite writes the cleaned dataset and both aggregate tables to a
// SQLite database at path.
func WriteSQLite(path string, movies []dataset.Movie, genres, years []stats.Group) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(reportSchema); err != nil {
		return fmt.Errorf("failed to create report schema: %w", err)
	}

	if err := insertMovies(tx, movies); err != nil {
		return err
	}
	if err := insertGroups(tx, "INSERT INTO genre_ratings (genre, avg_rating) VALUES (?, ?)", genres, groupValue); err != nil {
		return err
	}
	if err := insertGroups(tx, "INSERT INTO year_counts (year, count) VALUES (?, ?)", years, groupCount); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit report: %w", err)
	}

	log.Debugf("wrote %s (%d movies, %d genres, %d years)", path, len(movies), len(genres), len(years))
	return nil
}

func insertMovies(tx *sql.Tx, movies []dataset.Movie) error {
	stmt, err := tx.Prepare("INSERT INTO movies (title, genre, year, rating) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare movie insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range movies {
		if _, err := stmt.Exec(m.Title, m.Genre, m.Year, m.Rating); err != nil {
			return fmt.Errorf("failed to insert movie %q: %w", m.Title, err)
		}
	}
	return nil
}

func insertGroups(tx *sql.Tx, query string, groups []stats.Group, value func(stats.Group) any) error {
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare aggregate insert: %w", err)
	}
	defer stmt.Close()

	for _, g := range groups {
		if _, err := stmt.Exec(g.Key, value(g)); err != nil {
			return fmt.Errorf("failed to insert aggregate row %q: %w", g.Key, err)
		}
	}
	return nil
}

func groupValue(g stats.Group) any { return g.Value }
func groupCount(g stats.Group) any { return g.Count }
