package stats

import (
	"sort"

	"github.com/cinelens-org/cinelens/dataset"
)

// ============================================================================
// TOP-N — highest rated movies from the cleaned, unexploded dataset
// ============================================================================

// DefaultTopN matches the original report: the five best-rated movies.
const DefaultTopN = 5

// TopRated returns the n highest-rated movies, rating descending. The sort
// is stable, so equal ratings keep their input order. Fewer than n movies
// in, fewer out. The input slice is not modified.
func TopRated(movies []dataset.Movie, n int) []dataset.Movie {
	if n <= 0 || len(movies) == 0 {
		return nil
	}

	ranked := make([]dataset.Movie, len(movies))
	copy(ranked, movies)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Rating > ranked[j].Rating })

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
