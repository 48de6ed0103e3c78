package charts

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/akshatha300/iris-classifier/pkg/models"
	"github.com/akshatha300/iris-classifier/server/analytics"
)

// File names the charts are saved under. Every render overwrites the
// previous files so the static directory always serves the latest run.
const (
	BarChartFile = "genre_ratings.png"
	HeatmapFile  = "genre_country_heatmap.png"
	BoxPlotFile  = "genre_boxplot.png"
)

var ErrNoMovies = errors.New("no movies to plot")

var barBlue = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// Renderer draws the rating charts as PNG files under a static
// directory served by the web server.
type Renderer struct {
	outputDir string
}

func NewRenderer(outputDir string) *Renderer {
	return &Renderer{outputDir: outputDir}
}

// RenderAll draws the three charts from the full dataset, one goroutine
// per chart. It fails fast when the dataset is empty or the output
// directory cannot be created.
func (r *Renderer) RenderAll(ctx context.Context, movies []models.Movie) error {
	if len(movies) == 0 {
		return ErrNoMovies
	}
	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return fmt.Errorf("error creating charts directory: %w", err)
	}

	slog.Debug("rendering charts",
		slog.Int("movies", len(movies)),
		slog.String("dir", r.outputDir))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return r.renderGenreBars(movies)
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return r.renderHeatmap(movies)
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return r.renderBoxPlot(movies)
	})
	return g.Wait()
}

// renderGenreBars draws a horizontal bar chart of the average rating
// per genre, best rated on top.
func (r *Renderer) renderGenreBars(movies []models.Movie) error {
	ratings := analytics.AverageByGenre(movies)

	p := plot.New()
	p.Title.Text = "Average Movie Ratings by Genre"
	p.X.Label.Text = "Average Rating"
	p.Y.Label.Text = "Genre"

	// NominalY lays names bottom-up, so reverse to put the best first.
	values := make(plotter.Values, len(ratings))
	names := make([]string, len(ratings))
	for i, rating := range ratings {
		j := len(ratings) - 1 - i
		values[j] = rating.AvgRating
		names[j] = rating.Genre
	}

	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return fmt.Errorf("error building genre bar chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = barBlue
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalY(names...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filepath.Join(r.outputDir, BarChartFile)); err != nil {
		return fmt.Errorf("error saving genre bar chart: %w", err)
	}
	return nil
}

// renderHeatmap draws the genre/country pivot with the mean rating
// printed inside every populated cell.
func (r *Renderer) renderHeatmap(movies []models.Movie) error {
	pivot := analytics.PivotGenreCountry(movies)

	p := plot.New()
	p.Title.Text = "Average Ratings by Genre and Country"

	heat := plotter.NewHeatMap(pivotGrid{pivot}, palette.Heat(12, 1))
	if heat.Min == heat.Max {
		// A single distinct value leaves the color scale with zero
		// width and no valid palette index.
		heat.Min, heat.Max = heat.Min-0.5, heat.Max+0.5
	}
	p.Add(heat)

	p.X.Tick.Marker = plot.ConstantTicks(axisTicks(pivot.Countries))
	p.Y.Tick.Marker = plot.ConstantTicks(axisTicks(pivot.Genres))
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	labels, err := cellLabels(pivot)
	if err != nil {
		return fmt.Errorf("error labelling heatmap: %w", err)
	}
	p.Add(labels)

	if err := p.Save(7*vg.Inch, 5*vg.Inch, filepath.Join(r.outputDir, HeatmapFile)); err != nil {
		return fmt.Errorf("error saving heatmap: %w", err)
	}
	return nil
}

// renderBoxPlot draws one box per genre over the raw vote averages,
// genres in dataset order.
func (r *Renderer) renderBoxPlot(movies []models.Movie) error {
	genres, values := analytics.ValuesByGenre(movies)

	p := plot.New()
	p.Title.Text = "Rating Distribution by Genre"
	p.X.Label.Text = "genre"
	p.Y.Label.Text = "vote_average"

	for i, groupValues := range values {
		box, err := plotter.NewBoxPlot(vg.Points(24), float64(i), plotter.Values(groupValues))
		if err != nil {
			return fmt.Errorf("error building box for %s: %w", genres[i], err)
		}
		p.Add(box)
	}
	p.NominalX(genres...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filepath.Join(r.outputDir, BoxPlotFile)); err != nil {
		return fmt.Errorf("error saving box plot: %w", err)
	}
	return nil
}

// pivotGrid adapts a RatingsPivot to the heat map's grid interface.
// Empty cells stay NaN and the plotter leaves them blank.
type pivotGrid struct {
	pivot models.RatingsPivot
}

func (g pivotGrid) Dims() (c, r int) {
	return len(g.pivot.Countries), len(g.pivot.Genres)
}

func (g pivotGrid) Z(c, r int) float64 { return g.pivot.Cells[r][c] }

func (g pivotGrid) X(c int) float64 { return float64(c) }

func (g pivotGrid) Y(r int) float64 { return float64(r) }

func axisTicks(names []string) []plot.Tick {
	ticks := make([]plot.Tick, len(names))
	for i, name := range names {
		ticks[i] = plot.Tick{Value: float64(i), Label: name}
	}
	return ticks
}

func cellLabels(pivot models.RatingsPivot) (*plotter.Labels, error) {
	xys := plotter.XYLabels{}
	for i := range pivot.Genres {
		for j := range pivot.Countries {
			v := pivot.Cells[i][j]
			if math.IsNaN(v) {
				continue
			}
			xys.XYs = append(xys.XYs, plotter.XY{X: float64(j), Y: float64(i)})
			xys.Labels = append(xys.Labels, fmt.Sprintf("%.2f", v))
		}
	}

	labels, err := plotter.NewLabels(xys)
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	return labels, nil
}
