package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/akshatha300/iris-classifier/pkg/models"
)

// Loader reads the ratings CSV and turns it into cleaned movie rows.
// Rows missing a required value, or that cannot be parsed, are dropped
// rather than failing the load.
type Loader struct {
	path    string
	aliases map[string]string
}

func NewLoader(path string, aliases map[string]string) *Loader {
	return &Loader{path: path, aliases: aliases}
}

// Load reads and cleans the whole dataset file.
func (l *Loader) Load() ([]models.Movie, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("error opening dataset: %w", err)
	}
	defer file.Close()

	return l.ReadAll(file)
}

// ReadAll consumes CSV rows from r until EOF. Column positions come
// from the header line, so the dataset may carry extra columns in any
// order as long as genre, country and vote_average are present.
func (l *Loader) ReadAll(r io.Reader) ([]models.Movie, error) {
	csvReader := csv.NewReader(r)
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1 // Allow variable number of fields

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading header line: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var movies []models.Movie
	dropped := 0
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record: %w", err)
		}

		// A record with fewer fields than the header was split over
		// multiple lines; try to join it back together.
		if len(record) < len(header) {
			record, err = joinRecords(csvReader, record, len(header))
			if errors.Is(err, io.EOF) {
				dropped++
				break
			}
			if err != nil {
				return nil, err
			}
		}
		if len(record) > len(header) {
			dropped++
			slog.Debug("dropping over-wide record", slog.Int("fields", len(record)))
			continue
		}

		movie, err := parseMovie(record, cols, l.aliases)
		if err != nil {
			dropped++
			slog.Debug("dropping invalid row", slog.String("reason", err.Error()))
			continue
		}
		movies = append(movies, *movie)
	}

	if dropped > 0 {
		slog.Info("dropped malformed rows",
			slog.Int("dropped", dropped),
			slog.Int("kept", len(movies)))
	}

	return movies, nil
}

func joinRecords(r *csv.Reader, current []string, expectedFields int) ([]string, error) {
	// Keep joining records until we have at least expectedFields fields.
	joined := current
	for len(joined) < expectedFields {
		next, err := r.Read()
		if err != nil {
			return nil, err
		}

		// Glue the broken field back together, then append whatever
		// extra fields the continuation line carried.
		joined[len(joined)-1] = joined[len(joined)-1] + " " + next[0]
		if len(next) > 1 {
			joined = append(joined, next[1:]...)
		}
	}

	return joined, nil
}
