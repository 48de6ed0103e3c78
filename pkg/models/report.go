package models

import (
	"math"
	"strconv"
)

// GenreRating is the average vote for one genre.
type GenreRating struct {
	Genre     string  `json:"genre"`
	AvgRating float64 `json:"avg_rating"`
	Count     int     `json:"count"`
}

func (g GenreRating) String() string {
	return g.Genre + " | Avg Rating: " + strconv.FormatFloat(g.AvgRating, 'f', 2, 64) +
		" (" + strconv.Itoa(g.Count) + " movies)"
}

// CountryRating is the average vote for one production country.
type CountryRating struct {
	Country   string  `json:"country"`
	AvgRating float64 `json:"avg_rating"`
	Count     int     `json:"count"`
}

func (c CountryRating) String() string {
	return c.Country + " | Avg Rating: " + strconv.FormatFloat(c.AvgRating, 'f', 2, 64) +
		" (" + strconv.Itoa(c.Count) + " movies)"
}

// RatingsPivot cross-tabulates average ratings over genre and country.
// Cells[i][j] holds the mean vote for (Genres[i], Countries[j]); a
// combination with no movies is NaN.
type RatingsPivot struct {
	Genres    []string    `json:"genres"`
	Countries []string    `json:"countries"`
	Cells     [][]float64 `json:"cells"`
}

// At returns the cell for a genre/country pair. The boolean is false
// when either axis label is unknown or the cell is empty.
func (p RatingsPivot) At(genre, country string) (float64, bool) {
	gi, ci := -1, -1
	for i, g := range p.Genres {
		if g == genre {
			gi = i
			break
		}
	}
	for j, c := range p.Countries {
		if c == country {
			ci = j
			break
		}
	}
	if gi < 0 || ci < 0 {
		return 0, false
	}
	v := p.Cells[gi][ci]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Report is the full analysis of one request: both breakdown tables,
// the pivot feeding the heatmap, and the number of rows analyzed.
type Report struct {
	GenreRatings   []GenreRating   `json:"genre_ratings"`
	CountryRatings []CountryRating `json:"country_ratings"`
	Pivot          RatingsPivot    `json:"pivot"`
	Total          int             `json:"total"`
}
