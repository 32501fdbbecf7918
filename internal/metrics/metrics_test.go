package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerRegistersOnCustomRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewManager(
		WithPrometheusRegistry(registry),
		WithNamespace("test"),
		WithSubsystem("reports"),
		WithHistogramBuckets([]float64{0.01, 0.1, 1}),
	)

	m.RecordReport("team_wins", OutcomeOK, 20*time.Millisecond)
	m.RecordReport("team_wins", OutcomeOK, 30*time.Millisecond)
	m.RecordReport("team_wins", OutcomeQueryError, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.reports.WithLabelValues("team_wins", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reports.WithLabelValues("team_wins", OutcomeQueryError)))

	families, err := registry.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "test_reports_reports_total")
	assert.Contains(t, names, "test_reports_report_duration_seconds")
}

func TestRecordHTTPRequest(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewManager(WithPrometheusRegistry(registry))

	m.RecordHTTPRequest("/player/:playerId", http.MethodGet, "200", 5*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/player/:playerId", http.MethodGet, "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.httpRequestDuration))
}

func TestHandlerExposesGlobalMetrics(t *testing.T) {
	RecordReport("leaderboard", OutcomeOK, time.Millisecond)

	recorder := httptest.NewRecorder()
	Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `baseball_stats_reports_total{outcome="ok",report="leaderboard"}`)
	assert.Contains(t, recorder.Body.String(), "go_goroutines")
}
