package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPivotAt(t *testing.T) {
	pivot := RatingsPivot{
		Genres:    []string{"Comedy", "Crime"},
		Countries: []string{"UK", "USA"},
		Cells: [][]float64{
			{6.7, math.NaN()},
			{7.8, 8.3},
		},
	}

	v, ok := pivot.At("Crime", "USA")
	require.True(t, ok)
	require.InDelta(t, 8.3, v, 1e-9)

	_, ok = pivot.At("Comedy", "USA")
	require.False(t, ok, "empty cell")

	_, ok = pivot.At("Horror", "USA")
	require.False(t, ok, "unknown genre")

	_, ok = pivot.At("Crime", "Japan")
	require.False(t, ok, "unknown country")
}

func TestRatingStrings(t *testing.T) {
	g := GenreRating{Genre: "Crime", AvgRating: 8.133333, Count: 3}
	require.Equal(t, "Crime | Avg Rating: 8.13 (3 movies)", g.String())

	c := CountryRating{Country: "USA", AvgRating: 7.2, Count: 2}
	require.Equal(t, "USA | Avg Rating: 7.20 (2 movies)", c.String())
}
