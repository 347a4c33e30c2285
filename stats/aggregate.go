package stats

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/cinelens-org/cinelens/dataset"
)

// ============================================================================
// AGGREGATORS — Grouping and reduction over cleaned movies
// ============================================================================
// Grouping preserves first-seen order internally, then each public
// aggregate is sorted into a deterministic order so re-running over the
// same dataset always produces identical tables.
// ============================================================================

// Group is one row of an aggregate table.
type Group struct {
	Key   string  // group key ("Drama", "2019")
	Label string  // display label, usually the key
	Value float64 // aggregated value (mean rating, count)
	Count int     // records in the group
}

// MeanRatingByGenre computes the arithmetic mean rating per genre.
// Input must already be genre-exploded; each movie contributes once per
// single-genre copy. Groups are ordered by genre, case-insensitively.
func MeanRatingByGenre(movies []dataset.Movie) []Group {
	groups := groupBy(movies, func(m dataset.Movie) string { return m.Genre })

	for i := range groups {
		groups[i].Value = RoundTo2(groups[i].Value / float64(groups[i].Count))
	}

	SortGroups(groups, ByLabel)
	return groups
}

// CountByYear counts movies per release year over the unexploded cleaned
// set. Groups are ordered by year ascending. The sum of all counts equals
// the number of input movies.
func CountByYear(movies []dataset.Movie) []Group {
	groups := groupBy(movies, func(m dataset.Movie) string { return strconv.Itoa(m.Year) })

	for i := range groups {
		groups[i].Value = float64(groups[i].Count)
	}

	SortGroups(groups, ByNumericKey)
	return groups
}

// groupBy buckets movies by key, accumulating rating sums in Value and
// sizes in Count. Callers finish the reduction. A key that no movie maps
// to never appears.
func groupBy(movies []dataset.Movie, keyFn func(dataset.Movie) string) []Group {
	index := make(map[string]int)
	var groups []Group

	for _, m := range movies {
		key := keyFn(m)
		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key, Label: key})
		}
		groups[i].Value += m.Rating
		groups[i].Count++
	}

	return groups
}

// ============================================================================
// SORTING
// ============================================================================

// Sort modes for SortGroups.
const (
	ByLabel      = "label_asc"   // case-insensitive alphabetical
	ByNumericKey = "key_numeric" // numeric key ascending (years)
	ByValueDesc  = "value_desc"  // largest value first, label breaks ties
)

// SortGroups orders groups in place by the given mode.
func SortGroups(groups []Group, mode string) {
	switch mode {
	case ByNumericKey:
		sort.Slice(groups, func(i, j int) bool { return numericKey(groups[i].Key) < numericKey(groups[j].Key) })
	case ByValueDesc:
		sort.Slice(groups, func(i, j int) bool {
			if groups[i].Value != groups[j].Value {
				return groups[i].Value > groups[j].Value
			}
			return strings.ToLower(groups[i].Label) < strings.ToLower(groups[j].Label)
		})
	case ByLabel:
		sort.Slice(groups, func(i, j int) bool { return strings.ToLower(groups[i].Label) < strings.ToLower(groups[j].Label) })
	default:
		// preserve grouping order
	}
}

func numericKey(key string) float64 {
	v, err := strconv.ParseFloat(key, 64)
	if err != nil {
		return math.Inf(1)
	}
	return v
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// RoundTo2 rounds to 2 decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// TotalCount sums the Count field across groups.
func TotalCount(groups []Group) int {
	total := 0
	for _, g := range groups {
		total += g.Count
	}
	return total
}

// FormatValue renders an aggregate value: whole numbers without decimals,
// fractional values with two.
func FormatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
