package export

import (
	"fmt"
	"strconv"

	"github.com/cinelens-org/cinelens/dataset"
	"github.com/cinelens-org/cinelens/stats"
)

// ============================================================================
// TABLE BUILDERS — aggregate groups and movies → writable tables
// ============================================================================
// Each builder fixes its column schema; WriteCSV only serializes. The
// two-column aggregate schemas (genre,avg_rating and year,count) are part
// of the output contract and must not change shape between runs.
// ============================================================================

// Table is a fully materialized output table.
type Table struct {
	Headers []string
	Rows    [][]string
}

// GenreTable renders mean-rating-per-genre groups as (genre, avg_rating).
func GenreTable(groups []stats.Group) Table {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{g.Label, fmt.Sprintf("%.2f", g.Value)})
	}
	return Table{Headers: []string{"genre", "avg_rating"}, Rows: rows}
}

// YearTable renders count-per-year groups as (year, count).
func YearTable(groups []stats.Group) Table {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{g.Label, strconv.Itoa(g.Count)})
	}
	return Table{Headers: []string{"year", "count"}, Rows: rows}
}

// MovieTable renders the cleaned dataset as (title, genre, year, rating).
func MovieTable(movies []dataset.Movie) Table {
	rows := make([][]string, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, movieRow(m))
	}
	return Table{Headers: []string{"title", "genre", "year", "rating"}, Rows: rows}
}

// TopTable renders the top-rated list as (rank, title, year, rating),
// rank starting at 1.
func TopTable(movies []dataset.Movie) Table {
	rows := make([][]string, 0, len(movies))
	for i, m := range movies {
		rows = append(rows, []string{strconv.Itoa(i + 1), m.Title, strconv.Itoa(m.Year), stats.FormatValue(m.Rating)})
	}
	return Table{Headers: []string{"rank", "title", "year", "rating"}, Rows: rows}
}

func movieRow(m dataset.Movie) []string {
	return []string{m.Title, m.Genre, strconv.Itoa(m.Year), stats.FormatValue(m.Rating)}
}
