package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akshatha300/iris-classifier/server/charts"
	"github.com/akshatha300/iris-classifier/server/dataset"
)

//go:embed templates/*.html
var templatesFS embed.FS

const shutdownTimeout = 5 * time.Second

// Config carries the web server settings.
type Config struct {
	Addr      string
	StaticDir string
	Debug     bool
}

// Server ties the dataset loader and the chart renderer to the routes
// of the analysis app.
type Server struct {
	engine   *gin.Engine
	srv      *http.Server
	loader   *dataset.Loader
	renderer *charts.Renderer
}

func NewServer(cfg Config, loader *dataset.Loader, renderer *charts.Renderer) (*Server, error) {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID(), AccessLog())

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}
	engine.SetHTMLTemplate(tmpl)
	engine.Static("/static", cfg.StaticDir)

	s := &Server{
		engine:   engine,
		srv:      &http.Server{Addr: cfg.Addr, Handler: engine},
		loader:   loader,
		renderer: renderer,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.engine.GET("/", s.handleIndex)
	s.engine.POST("/analyze", s.handleAnalyze)
	s.engine.GET("/healthz", s.handleHealth)
}

// Handler exposes the route tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	failed := make(chan error, 1)
	go func() {
		slog.Info("http server listening", slog.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
	}()

	select {
	case err := <-failed:
		return fmt.Errorf("error serving http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down http server: %w", err)
	}
	slog.Info("http server stopped")
	return nil
}
