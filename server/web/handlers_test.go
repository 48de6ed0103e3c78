package web_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/akshatha300/iris-classifier/server/charts"
	"github.com/akshatha300/iris-classifier/server/dataset"
	"github.com/akshatha300/iris-classifier/server/web"
)

const testCSV = `title,genre,country,vote_average
Heat,Crime,United States,8.0
Snatch,Crime,United Kingdom,7.8
Amelie,Romance,France,8.2
Taxi,Comedy,France,7.0
Ted,Comedy,United States,6.4
`

func newTestServer(t *testing.T) (*web.Server, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "movies.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(testCSV), 0644))

	staticDir := filepath.Join(dir, "static")
	loader := dataset.NewLoader(csvPath, dataset.DefaultAliases())
	renderer := charts.NewRenderer(staticDir)

	s, err := web.NewServer(web.Config{Addr: ":0", StaticDir: staticDir}, loader, renderer)
	require.NoError(t, err)
	return s, staticDir
}

func postAnalyze(t *testing.T, s *web.Server, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestIndexServesForm(t *testing.T) {
	s, _ := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(t, body, `action="/analyze" method="post"`)
	require.Contains(t, body, `name="genre"`)
	require.Contains(t, body, `name="country"`)
}

func TestAnalyzeUnfiltered(t *testing.T) {
	s, staticDir := newTestServer(t)

	w := postAnalyze(t, s, url.Values{})
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	require.Contains(t, body, "Romance: 8.20")
	require.Contains(t, body, "Crime: 7.90")
	require.Contains(t, body, "Comedy: 6.70")
	require.Contains(t, body, "USA: 7.20")
	require.Contains(t, body, "UK: 7.80")
	require.Contains(t, body, "France: 7.60")

	require.Contains(t, body, "/static/"+charts.BarChartFile)
	require.Contains(t, body, "/static/"+charts.HeatmapFile)
	require.Contains(t, body, "/static/"+charts.BoxPlotFile)

	for _, name := range []string{charts.BarChartFile, charts.HeatmapFile, charts.BoxPlotFile} {
		_, err := os.Stat(filepath.Join(staticDir, name))
		require.NoError(t, err, "expected chart %s on disk", name)
	}
}

func TestAnalyzeFiltersTables(t *testing.T) {
	tests := []struct {
		name        string
		form        url.Values
		contains    []string
		notContains []string
	}{
		{
			name:        "genre only",
			form:        url.Values{"genre": {"Crime"}},
			contains:    []string{"Crime: 7.90", "USA: 8.00", "UK: 7.80"},
			notContains: []string{"Romance", "France"},
		},
		{
			name:        "country only",
			form:        url.Values{"country": {"France"}},
			contains:    []string{"Romance: 8.20", "Comedy: 7.00", "France: 7.60"},
			notContains: []string{"Crime", "USA"},
		},
		{
			name:        "genre and country",
			form:        url.Values{"genre": {"Crime"}, "country": {"USA"}},
			contains:    []string{"Crime: 8.00", "USA: 8.00"},
			notContains: []string{"UK"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(t)
			w := postAnalyze(t, s, tt.form)
			require.Equal(t, http.StatusOK, w.Code)

			body := w.Body.String()
			for _, want := range tt.contains {
				require.Contains(t, body, want)
			}
			for _, unwanted := range tt.notContains {
				require.NotContains(t, body, unwanted)
			}
		})
	}
}

// The tables follow the filters, but the charts are always redrawn
// from the whole dataset.
func TestAnalyzeChartsIgnoreFilters(t *testing.T) {
	s, staticDir := newTestServer(t)

	first := postAnalyze(t, s, url.Values{})
	require.Equal(t, http.StatusOK, first.Code)
	full, err := os.ReadFile(filepath.Join(staticDir, charts.BarChartFile))
	require.NoError(t, err)

	second := postAnalyze(t, s, url.Values{"genre": {"Crime"}})
	require.Equal(t, http.StatusOK, second.Code)
	filtered, err := os.ReadFile(filepath.Join(staticDir, charts.BarChartFile))
	require.NoError(t, err)

	require.Equal(t, full, filtered)
}

func TestAnalyzeNoMatches(t *testing.T) {
	s, _ := newTestServer(t)

	w := postAnalyze(t, s, url.Values{"genre": {"Documentary"}})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotContains(t, w.Body.String(), "<li>")
}

func TestAnalyzeMissingDataset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()

	loader := dataset.NewLoader(filepath.Join(dir, "missing.csv"), dataset.DefaultAliases())
	renderer := charts.NewRenderer(filepath.Join(dir, "static"))
	s, err := web.NewServer(web.Config{Addr: ":0", StaticDir: dir}, loader, renderer)
	require.NoError(t, err)

	w := postAnalyze(t, s, url.Values{})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "The dataset could not be loaded.")
}

func TestAnalyzeChartFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "movies.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(testCSV), 0644))

	// A plain file where the charts directory should go makes the
	// renderer fail deterministically.
	blocked := filepath.Join(dir, "static")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0644))

	loader := dataset.NewLoader(csvPath, dataset.DefaultAliases())
	s, err := web.NewServer(web.Config{Addr: ":0", StaticDir: blocked}, loader, charts.NewRenderer(blocked))
	require.NoError(t, err)

	w := postAnalyze(t, s, url.Values{})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "The charts could not be rendered.")
}

func TestStaticServesCharts(t *testing.T) {
	s, _ := newTestServer(t)
	require.Equal(t, http.StatusOK, postAnalyze(t, s, url.Values{}).Code)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/static/"+charts.BarChartFile, nil)
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	s, _ := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	s.Handler().ServeHTTP(w, req)
	require.NotEmpty(t, w.Header().Get("X-Request-Id"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	s.Handler().ServeHTTP(w, req)
	require.Equal(t, "abc-123", w.Header().Get("X-Request-Id"))
}
