package web

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akshatha300/iris-classifier/server/analytics"
	"github.com/akshatha300/iris-classifier/server/charts"
)

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// handleAnalyze reloads the dataset, redraws the charts from the full
// data and renders the rating tables for the requested slice.
func (s *Server) handleAnalyze(c *gin.Context) {
	genre := c.PostForm("genre")
	country := c.PostForm("country")

	movies, err := s.loader.Load()
	if err != nil {
		slog.Error("error loading dataset", slog.String("error", err.Error()))
		s.renderError(c, "The dataset could not be loaded.")
		return
	}

	// The charts always show the whole dataset; only the tables honor
	// the requested filters.
	if err := s.renderer.RenderAll(c.Request.Context(), movies); err != nil {
		slog.Error("error rendering charts", slog.String("error", err.Error()))
		s.renderError(c, "The charts could not be rendered.")
		return
	}

	report := analytics.BuildReport(movies, genre, country)
	slog.Info("analysis served",
		slog.String(requestIDKey, c.GetString(requestIDKey)),
		slog.String("genre", genre),
		slog.String("country", country),
		slog.Int("movies", report.Total))

	c.HTML(http.StatusOK, "results.html", gin.H{
		"Report":      report,
		"GenrePlot":   "/static/" + charts.BarChartFile,
		"HeatmapPlot": "/static/" + charts.HeatmapFile,
		"BoxplotPlot": "/static/" + charts.BoxPlotFile,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) renderError(c *gin.Context, message string) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": message})
}
