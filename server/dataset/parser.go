package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/akshatha300/iris-classifier/pkg/models"
)

const (
	colTitle       = "title"
	colGenre       = "genre"
	colCountry     = "country"
	colVoteAverage = "vote_average"
)

// Columns a row must carry a usable value for; anything else is
// tolerated missing.
var requiredColumns = []string{colGenre, colCountry, colVoteAverage}

var ErrInvalidMovie = errors.New("invalid movie")

// DefaultAliases folds the spelled-out country names the dataset mixes
// in onto their short forms.
func DefaultAliases() map[string]string {
	return map[string]string{
		"United States":  "USA",
		"United Kingdom": "UK",
	}
}

type columnIndex map[string]int

func mapColumns(header []string) (columnIndex, error) {
	cols := make(columnIndex, len(header))
	for i, name := range header {
		cols[normalizeColumn(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("dataset is missing required column %q", name)
		}
	}
	return cols, nil
}

func normalizeColumn(name string) string {
	name = strings.TrimPrefix(name, "\ufeff") // some exports lead with a BOM
	return strings.ToLower(strings.TrimSpace(name))
}

// parseMovie builds a Movie from a CSV record slice.
func parseMovie(record []string, cols columnIndex, aliases map[string]string) (*models.Movie, error) {
	if hasNaNValues(record, cols) {
		return nil, ErrInvalidMovie
	}

	voteAverage, err := parseFloat64(record[cols[colVoteAverage]], "vote_average")
	if err != nil {
		return nil, err
	}

	title := ""
	if idx, ok := cols[colTitle]; ok && idx < len(record) {
		title = record[idx]
	}

	return &models.Movie{
		Title:       title,
		Genre:       record[cols[colGenre]],
		Country:     canonicalCountry(record[cols[colCountry]], aliases),
		VoteAverage: voteAverage,
	}, nil
}

// hasNaNValues checks whether required fields are empty or NaN.
func hasNaNValues(record []string, cols columnIndex) bool {
	for _, name := range requiredColumns {
		idx := cols[name]
		if idx >= len(record) {
			return true
		}
		value := record[idx]
		if value == "" || value == "NaN" {
			return true
		}
	}
	return false
}

// parseFloat64 converts a string to float64.
func parseFloat64(str, field string) (float64, error) {
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %v", field, err)
	}
	return v, nil
}

func canonicalCountry(name string, aliases map[string]string) string {
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return name
}
