package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cinelens-org/cinelens/dataset"
)

func TestTopRated(t *testing.T) {
	movies := []dataset.Movie{
		{Title: "A", Rating: 7.0},
		{Title: "B", Rating: 9.0},
		{Title: "C", Rating: 8.0},
		{Title: "D", Rating: 8.5},
		{Title: "E", Rating: 6.0},
		{Title: "F", Rating: 9.5},
	}

	top := TopRated(movies, 5)

	titles := make([]string, len(top))
	for i, m := range top {
		titles[i] = m.Title
	}
	assert.Equal(t, []string{"F", "B", "D", "C", "A"}, titles)
}

func TestTopRatedStableTies(t *testing.T) {
	movies := []dataset.Movie{
		{Title: "First", Rating: 8.0},
		{Title: "Second", Rating: 8.0},
		{Title: "Third", Rating: 8.0},
	}

	top := TopRated(movies, 2)

	assert.Equal(t, "First", top[0].Title)
	assert.Equal(t, "Second", top[1].Title)
}

func TestTopRatedShortDataset(t *testing.T) {
	movies := []dataset.Movie{
		{Title: "Only", Rating: 5.0},
	}

	assert.Len(t, TopRated(movies, 5), 1)
	assert.Empty(t, TopRated(nil, 5))
	assert.Empty(t, TopRated(movies, 0))
}

func TestTopRatedDoesNotMutateInput(t *testing.T) {
	movies := []dataset.Movie{
		{Title: "A", Rating: 1.0},
		{Title: "B", Rating: 9.0},
	}

	TopRated(movies, 1)

	assert.Equal(t, "A", movies[0].Title)
}
