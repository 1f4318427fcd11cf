package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Annany2002/servo-panel/config"
	"github.com/Annany2002/servo-panel/internal/metrics"
)

type staticRenderer string

func (s staticRenderer) Render(string, any) ([]byte, error) { return []byte(s), nil }

func newTestRouter(cfg *config.Config, m *metrics.HTTPMetrics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return setupRouter(cfg, m, staticRenderer("<p>servo</p>"))
}

func baseConfig() *config.Config {
	return &config.Config{
		SessionSecret:      config.DefaultSessionSecret,
		Host:               "0.0.0.0",
		Port:               5000,
		LogLevel:           "debug",
		CORSAllowedOrigins: []string{"*"},
	}
}

func do(r http.Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = "198.51.100.4:40000"
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSetupRouterWithDefaultSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, err := SetupRouter(baseConfig(), nil)
	require.NoError(t, err)

	rec := do(router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitDisabledByDefault(t *testing.T) {
	router := newTestRouter(baseConfig(), nil)
	for i := 0; i < 20; i++ {
		require.Equal(t, http.StatusOK, do(router, http.MethodGet, "/", nil).Code)
	}
}

func TestRateLimitEnabled(t *testing.T) {
	cfg := baseConfig()
	cfg.RateLimitPerMinute = 2
	router := newTestRouter(cfg, nil)

	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(router, http.MethodGet, "/", nil).Code)
}

func TestCORS(t *testing.T) {
	t.Run("any origin", func(t *testing.T) {
		router := newTestRouter(baseConfig(), nil)
		rec := do(router, http.MethodGet, "/", http.Header{"Origin": {"http://panel.local"}})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("listed origins only", func(t *testing.T) {
		cfg := baseConfig()
		cfg.CORSAllowedOrigins = []string{"http://panel.local"}
		router := newTestRouter(cfg, nil)

		rec := do(router, http.MethodGet, "/", http.Header{"Origin": {"http://panel.local"}})
		assert.Equal(t, "http://panel.local", rec.Header().Get("Access-Control-Allow-Origin"))

		rec = do(router, http.MethodGet, "/", http.Header{"Origin": {"http://evil.local"}})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestCORSConfig(t *testing.T) {
	c := corsConfig([]string{"http://a.local", "*"})
	assert.True(t, c.AllowAllOrigins)
	assert.Empty(t, c.AllowOrigins)

	c = corsConfig([]string{"http://a.local"})
	assert.False(t, c.AllowAllOrigins)
	assert.Equal(t, []string{"http://a.local"}, c.AllowOrigins)
}

func TestRouterRecordsMetrics(t *testing.T) {
	m := metrics.NewHTTPMetrics(prometheus.NewRegistry())
	router := newTestRouter(baseConfig(), m)

	do(router, http.MethodGet, "/", nil)
	do(router, http.MethodGet, "/", nil)
	do(router, http.MethodGet, "/nowhere", nil)
	do(router, http.MethodGet, "/static/js/servo_control.js", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/static/*filepath", "200")))
}
