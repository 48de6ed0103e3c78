package analytics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/akshatha300/iris-classifier/pkg/models"
)

// FilterMovies keeps the rows matching the requested genre and country.
// An empty value leaves that dimension unconstrained.
func FilterMovies(movies []models.Movie, genre, country string) []models.Movie {
	filtered := movies
	if genre != "" {
		filtered = filter(filtered, func(m models.Movie) bool { return m.Genre == genre })
	}
	if country != "" {
		filtered = filter(filtered, func(m models.Movie) bool { return m.Country == country })
	}
	return filtered
}

// AverageByGenre computes the mean vote per genre, best rated first.
func AverageByGenre(movies []models.Movie) []models.GenreRating {
	keys, values := groupValues(movies, func(m models.Movie) string { return m.Genre })

	ratings := make([]models.GenreRating, 0, len(keys))
	for i, key := range keys {
		ratings = append(ratings, models.GenreRating{
			Genre:     key,
			AvgRating: stat.Mean(values[i], nil),
			Count:     len(values[i]),
		})
	}

	sort.SliceStable(ratings, func(i, j int) bool {
		if ratings[i].AvgRating != ratings[j].AvgRating {
			return ratings[i].AvgRating > ratings[j].AvgRating
		}
		return ratings[i].Genre < ratings[j].Genre
	})
	return ratings
}

// AverageByCountry computes the mean vote per production country, best
// rated first.
func AverageByCountry(movies []models.Movie) []models.CountryRating {
	keys, values := groupValues(movies, func(m models.Movie) string { return m.Country })

	ratings := make([]models.CountryRating, 0, len(keys))
	for i, key := range keys {
		ratings = append(ratings, models.CountryRating{
			Country:   key,
			AvgRating: stat.Mean(values[i], nil),
			Count:     len(values[i]),
		})
	}

	sort.SliceStable(ratings, func(i, j int) bool {
		if ratings[i].AvgRating != ratings[j].AvgRating {
			return ratings[i].AvgRating > ratings[j].AvgRating
		}
		return ratings[i].Country < ratings[j].Country
	})
	return ratings
}

// ValuesByGenre returns each genre's raw vote averages, genres in
// first-appearance order. The box plot draws straight from this.
func ValuesByGenre(movies []models.Movie) ([]string, [][]float64) {
	return groupValues(movies, func(m models.Movie) string { return m.Genre })
}

// PivotGenreCountry cross-tabulates mean votes over genre and country.
// Axes are sorted alphabetically; combinations with no movies are NaN.
func PivotGenreCountry(movies []models.Movie) models.RatingsPivot {
	cells := make(map[string]map[string]*ratingAccumulator)
	for _, movie := range movies {
		byCountry, ok := cells[movie.Genre]
		if !ok {
			byCountry = make(map[string]*ratingAccumulator)
			cells[movie.Genre] = byCountry
		}
		acc, ok := byCountry[movie.Country]
		if !ok {
			acc = &ratingAccumulator{}
			byCountry[movie.Country] = acc
		}
		acc.RatingSum += movie.VoteAverage
		acc.RatingCount++
	}

	genres := make([]string, 0, len(cells))
	countrySet := make(map[string]struct{})
	for genre, byCountry := range cells {
		genres = append(genres, genre)
		for country := range byCountry {
			countrySet[country] = struct{}{}
		}
	}
	countries := make([]string, 0, len(countrySet))
	for country := range countrySet {
		countries = append(countries, country)
	}
	sort.Strings(genres)
	sort.Strings(countries)

	grid := make([][]float64, len(genres))
	for i, genre := range genres {
		grid[i] = make([]float64, len(countries))
		for j, country := range countries {
			if acc, ok := cells[genre][country]; ok && acc.RatingCount > 0 {
				grid[i][j] = acc.RatingSum / float64(acc.RatingCount)
			} else {
				grid[i][j] = math.NaN()
			}
		}
	}

	return models.RatingsPivot{Genres: genres, Countries: countries, Cells: grid}
}

// BuildReport filters the dataset and assembles both breakdown tables
// plus the genre/country pivot.
func BuildReport(movies []models.Movie, genre, country string) models.Report {
	filtered := FilterMovies(movies, genre, country)
	return models.Report{
		GenreRatings:   AverageByGenre(filtered),
		CountryRatings: AverageByCountry(filtered),
		Pivot:          PivotGenreCountry(filtered),
		Total:          len(filtered),
	}
}

type ratingAccumulator struct {
	RatingSum   float64
	RatingCount int
}

// groupValues buckets vote averages by key, keeping first-appearance
// order of the keys.
func groupValues(movies []models.Movie, keyOf func(models.Movie) string) ([]string, [][]float64) {
	grouped := make(map[string][]float64)
	order := make([]string, 0)

	for _, movie := range movies {
		key := keyOf(movie)
		if _, exists := grouped[key]; !exists {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], movie.VoteAverage)
	}

	values := make([][]float64, len(order))
	for i, key := range order {
		values[i] = grouped[key]
	}
	return order, values
}

func filter[T any](slice []T, predicate func(T) bool) []T {
	var result []T
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}
