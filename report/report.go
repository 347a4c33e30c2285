package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/op/go-logging"

	"github.com/cinelens-org/cinelens/chart"
	"github.com/cinelens-org/cinelens/dataset"
	"github.com/cinelens-org/cinelens/export"
	"github.com/cinelens-org/cinelens/stats"
)

var log = logging.MustGetLogger("log")

// ============================================================================
// REPORT — the whole batch, one stage at a time
// ============================================================================
// load → clean → { explode → aggregate → export → chart } and { top-N }.
// Every stage fully consumes its input before the next starts; the only
// state is the slices passed between them.
// ============================================================================

// Output artifact names inside the output directory.
const (
	FileMovies     = "movies_clean.csv"
	FileGenres     = "genre_avg_ratings.csv"
	FileYears      = "movies_per_year.csv"
	FileTop        = "top_movies.csv"
	FileGenreChart = "avg_rating_by_genre.png"
	FileYearChart  = "movies_per_year.png"
	FileDatabase   = "report.db"
)

// Params configures a run.
type Params struct {
	DataPath  string // input CSV; synthesized if missing
	OutputDir string // created if missing
	TopN      int    // 0 → stats.DefaultTopN
}

// Summary describes what a run did.
type Summary struct {
	Loaded    int // raw rows read
	Dropped   int // malformed rows skipped
	Genres    int // distinct genres aggregated
	Years     int // distinct years aggregated
	Artifacts []string
}

func (s *Summary) String() string {
	return fmt.Sprintf("%d rows loaded, %d dropped, %d genres, %d years, %d artifacts",
		s.Loaded, s.Dropped, s.Genres, s.Years, len(s.Artifacts))
}

// Run executes the full pipeline and returns a run summary. Row-level
// problems are skipped inside the stages; any error returned here is
// fatal to the run.
func Run(p Params) (*Summary, error) {
	if p.TopN <= 0 {
		p.TopN = stats.DefaultTopN
	}
	if err := os.MkdirAll(p.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	// Load + clean
	rows, err := dataset.Load(p.DataPath)
	if err != nil {
		return nil, err
	}
	movies, dropped := dataset.Clean(rows)
	log.Infof("cleaned dataset: %d valid movies, %d rows dropped", len(movies), dropped)

	// Aggregate
	genres := stats.MeanRatingByGenre(dataset.ExplodeGenres(movies))
	years := stats.CountByYear(movies)
	top := stats.TopRated(movies, p.TopN)

	summary := &Summary{
		Loaded:  len(rows),
		Dropped: dropped,
		Genres:  len(genres),
		Years:   len(years),
	}

	// Export CSV tables
	tables := []struct {
		name  string
		table export.Table
	}{
		{FileMovies, export.MovieTable(movies)},
		{FileGenres, export.GenreTable(genres)},
		{FileYears, export.YearTable(years)},
		{FileTop, export.TopTable(top)},
	}
	for _, t := range tables {
		path := filepath.Join(p.OutputDir, t.name)
		if err := export.WriteCSV(path, t.table); err != nil {
			return nil, err
		}
		summary.Artifacts = append(summary.Artifacts, path)
	}

	// SQLite report
	dbPath := filepath.Join(p.OutputDir, FileDatabase)
	if err := export.WriteSQLite(dbPath, movies, genres, years); err != nil {
		return nil, err
	}
	summary.Artifacts = append(summary.Artifacts, dbPath)

	// Charts. The genre chart shows best genres first; the aggregate CSV
	// above stays key-ordered.
	byRating := make([]stats.Group, len(genres))
	copy(byRating, genres)
	stats.SortGroups(byRating, stats.ByValueDesc)

	charts := []struct {
		name string
		cfg  *chart.Config
	}{
		{FileGenreChart, chart.FromGroups(chart.TypeBar, "Average Rating by Genre", "Genre", "Average Rating", byRating)},
		{FileYearChart, chart.FromGroups(chart.TypeLine, "Movies Released Per Year", "Year", "Count", years)},
	}
	for _, c := range charts {
		if c.cfg == nil {
			log.Warningf("skipping %s: no data to plot", c.name)
			continue
		}
		path := filepath.Join(p.OutputDir, c.name)
		if err := chart.Render(c.cfg, path); err != nil {
			return nil, err
		}
		summary.Artifacts = append(summary.Artifacts, path)
	}

	return summary, nil
}
