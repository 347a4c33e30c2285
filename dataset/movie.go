package dataset

// ============================================================================
// MOVIE — The one record type flowing through the pipeline
// ============================================================================

// Movie is a cleaned movie record.
// Genre may hold a comma-separated list until ExplodeGenres is applied.
type Movie struct {
	Title  string
	Genre  string
	Year   int
	Rating float64
}

// RawRow is an uncleaned CSV row. All fields are strings as read from the
// file; the cleaner decides which rows survive.
type RawRow struct {
	Title  string
	Genre  string
	Year   string
	Rating string
}

// Rating bounds. Values outside the range are clamped during cleaning
// rather than dropped.
const (
	MinRating = 0.0
	MaxRating = 10.0
)
