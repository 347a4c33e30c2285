package dataset

import (
	"math"
	"strconv"
)

// ============================================================================
// CLEANER — raw rows → valid movies
// ============================================================================
// A row survives when title, genre, year, and rating are all present and
// year/rating parse as numbers. Everything else is dropped, counted, and
// debug-logged — a dirty row never aborts a run.
// ============================================================================

// Clean converts raw rows into valid movies. The second return value is the
// number of rows dropped as malformed.
func Clean(rows []RawRow) ([]Movie, int) {
	movies := make([]Movie, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		m, ok := cleanRow(row)
		if !ok {
			dropped++
			log.Debugf("dropping malformed row: title=%q genre=%q year=%q rating=%q",
				row.Title, row.Genre, row.Year, row.Rating)
			continue
		}
		movies = append(movies, m)
	}

	return movies, dropped
}

func cleanRow(row RawRow) (Movie, bool) {
	if row.Title == "" || row.Genre == "" || row.Year == "" || row.Rating == "" {
		return Movie{}, false
	}

	year, err := strconv.Atoi(row.Year)
	if err != nil {
		// Tolerate "2010.0" style exports
		f, ferr := strconv.ParseFloat(row.Year, 64)
		if ferr != nil || f != float64(int(f)) {
			return Movie{}, false
		}
		year = int(f)
	}

	rating, err := strconv.ParseFloat(row.Rating, 64)
	if err != nil || math.IsNaN(rating) {
		// "NaN" parses but compares false against both bounds, so it
		// would slip through the clamp and poison every mean downstream.
		return Movie{}, false
	}
	rating = clampRating(rating)

	return Movie{
		Title:  row.Title,
		Genre:  row.Genre,
		Year:   year,
		Rating: rating,
	}, true
}

func clampRating(r float64) float64 {
	if r < MinRating {
		return MinRating
	}
	if r > MaxRating {
		return MaxRating
	}
	return r
}
