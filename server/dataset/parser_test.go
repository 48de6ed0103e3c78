package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akshatha300/iris-classifier/pkg/models"
)

func TestMapColumns(t *testing.T) {
	tests := []struct {
		name        string
		header      []string
		expectError bool
	}{
		{
			name:   "canonical order",
			header: []string{"title", "genre", "country", "vote_average"},
		},
		{
			name:   "shuffled with extras",
			header: []string{"vote_average", "id", "country", "genre"},
		},
		{
			name:   "case and spacing ignored",
			header: []string{"Title", " Genre ", "COUNTRY", "Vote_Average"},
		},
		{
			name:   "byte order mark stripped",
			header: []string{"﻿title", "genre", "country", "vote_average"},
		},
		{
			name:        "missing genre",
			header:      []string{"title", "country", "vote_average"},
			expectError: true,
		},
		{
			name:        "empty header",
			header:      []string{},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, err := mapColumns(tt.header)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, name := range requiredColumns {
				require.Contains(t, cols, name)
			}
		})
	}
}

func TestParseMovie(t *testing.T) {
	cols := columnIndex{colTitle: 0, colGenre: 1, colCountry: 2, colVoteAverage: 3}
	aliases := DefaultAliases()

	tests := []struct {
		name       string
		record     []string
		expected   *models.Movie
		invalidRow bool
		parseError bool
	}{
		{
			name:     "full row",
			record:   []string{"Heat", "Crime", "United States", "8.0"},
			expected: &models.Movie{Title: "Heat", Genre: "Crime", Country: "USA", VoteAverage: 8.0},
		},
		{
			name:     "unknown country passes through",
			record:   []string{"Amelie", "Romance", "France", "8.2"},
			expected: &models.Movie{Title: "Amelie", Genre: "Romance", Country: "France", VoteAverage: 8.2},
		},
		{
			name:       "empty genre",
			record:     []string{"X", "", "USA", "7.0"},
			invalidRow: true,
		},
		{
			name:       "NaN country",
			record:     []string{"X", "Drama", "NaN", "7.0"},
			invalidRow: true,
		},
		{
			name:       "empty vote",
			record:     []string{"X", "Drama", "USA", ""},
			invalidRow: true,
		},
		{
			name:       "record too short",
			record:     []string{"X", "Drama"},
			invalidRow: true,
		},
		{
			name:       "non numeric vote",
			record:     []string{"X", "Drama", "USA", "eight"},
			parseError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movie, err := parseMovie(tt.record, cols, aliases)
			if tt.invalidRow {
				require.ErrorIs(t, err, ErrInvalidMovie)
				return
			}
			if tt.parseError {
				require.Error(t, err)
				require.NotErrorIs(t, err, ErrInvalidMovie)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, movie)
		})
	}
}

func TestDefaultAliases(t *testing.T) {
	aliases := DefaultAliases()
	require.Equal(t, "USA", aliases["United States"])
	require.Equal(t, "UK", aliases["United Kingdom"])
}
