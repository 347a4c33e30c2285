package dataset

import "strings"

// ============================================================================
// GENRE SPLITTER — multi-genre rows → one row per genre
// ============================================================================

// ExplodeGenres expands each movie into one copy per comma-separated genre
// token. Tokens are trimmed; empty tokens are discarded. The result is used
// only for per-genre aggregation — per-title outputs keep the original
// combined genre string.
func ExplodeGenres(movies []Movie) []Movie {
	out := make([]Movie, 0, len(movies))
	for _, m := range movies {
		for _, g := range strings.Split(m.Genre, ",") {
			g = strings.TrimSpace(g)
			if g == "" {
				continue
			}
			single := m
			single.Genre = g
			out = append(out, single)
		}
	}
	return out
}
