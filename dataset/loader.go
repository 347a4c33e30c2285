package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("log")

// ============================================================================
// LOADER — movies.csv → raw rows
// ============================================================================
// Header matching is case- and whitespace-insensitive; extra columns are
// ignored. A missing input file is not an error: a sample dataset is
// written first so a bare `cinelens` run always produces output.
// ============================================================================

// Required column names after normalization.
const (
	colTitle  = "title"
	colGenre  = "genre"
	colYear   = "year"
	colRating = "rating"
)

// Load reads the movies CSV at path into raw rows. If the file does not
// exist, a sample dataset is written there first.
func Load(path string) ([]RawRow, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Infof("%s not found, writing sample dataset", path)
		if werr := WriteSample(path); werr != nil {
			return nil, fmt.Errorf("failed to write sample dataset: %w", werr)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	return parse(f)
}

func parse(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	// Column index per required field, -1 = absent.
	idx := map[string]int{colTitle: -1, colGenre: -1, colYear: -1, colRating: -1}
	for i, h := range headers {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, ok := idx[key]; ok {
			idx[key] = i
		}
		// Unknown columns are silently skipped
	}
	for key, i := range idx {
		if i < 0 {
			return nil, fmt.Errorf("dataset is missing required column %q", key)
		}
	}

	field := func(row []string, key string) string {
		i := idx[key]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var rows []RawRow
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Debugf("skipping unreadable CSV row: %v", err)
			continue
		}
		rows = append(rows, RawRow{
			Title:  field(row, colTitle),
			Genre:  field(row, colGenre),
			Year:   field(row, colYear),
			Rating: field(row, colRating),
		})
	}

	return rows, nil
}

// ============================================================================
// SAMPLE DATASET
// ============================================================================

// sampleMovies seeds first runs that have no dataset on disk.
var sampleMovies = []Movie{
	{"Inception", "Sci-Fi", 2010, 8.8},
	{"Titanic", "Romance, Drama", 1997, 7.8},
	{"Interstellar", "Sci-Fi, Drama", 2014, 8.6},
	{"The Dark Knight", "Action, Crime", 2008, 9.0},
	{"Avengers: Endgame", "Action, Superhero", 2019, 8.4},
	{"La La Land", "Romance, Musical", 2016, 8.0},
	{"Parasite", "Thriller, Drama", 2019, 8.6},
	{"Mad Max: Fury Road", "Action, Adventure", 2015, 8.1},
	{"The Godfather", "Crime, Drama", 1972, 9.2},
	{"Toy Story 3", "Animation, Family", 2010, 8.3},
	{"Whiplash", "Drama, Music", 2014, 8.5},
	{"Coco", "Animation, Family", 2017, 8.4},
	{"Dangal", "Drama, Sport", 2016, 8.4},
	{"3 Idiots", "Comedy, Drama", 2009, 8.4},
	{"Joker", "Crime, Drama", 2019, 8.5},
	{"The Shawshank Redemption", "Drama", 1994, 9.3},
	{"Forrest Gump", "Drama, Romance", 1994, 8.8},
	{"RRR", "Action, Drama", 2022, 8.0},
	{"K.G.F: Chapter 2", "Action, Crime", 2022, 8.2},
	{"The Avengers", "Action, Superhero", 2012, 8.0},
}

// WriteSample writes the built-in sample dataset to path.
func WriteSample(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Title", "Genre", "Rating", "Year"}); err != nil {
		return err
	}
	for _, m := range sampleMovies {
		rec := []string{
			m.Title,
			m.Genre,
			fmt.Sprintf("%.1f", m.Rating),
			fmt.Sprintf("%d", m.Year),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
