package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fitpro-app/fitpro/internal/middleware"
	"github.com/fitpro-app/fitpro/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	promcl "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestMetrics(t *testing.T) {
	metricsManager, reg := metrics.NewTestManagerAndRegistry()

	router := mux.NewRouter()
	router.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")
	router.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}).Methods("GET")
	router.Use(middleware.RequestMetrics(metricsManager))

	for i := 0; i < 3; i++ {
		req, err := http.NewRequest("GET", "/ok", nil)
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	req, err := http.NewRequest("GET", "/broken", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusInternalServerError, rr.Code)

	okCounter, err := metricsManager.CounterRequests.GetMetricWith(map[string]string{
		"method": "GET", "status": "200",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(3), testutil.ToFloat64(okCounter))

	brokenCounter, err := metricsManager.CounterRequests.GetMetricWith(map[string]string{
		"method": "GET", "status": "500",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(brokenCounter))

	gathered, err := reg.Gather()
	require.NoError(t, err)
	require.NotNil(t, gathered)

	var foundDurationHistogram *promcl.MetricFamily
	for _, m := range gathered {
		if *m.Name == "backend_test_server_request_duration_seconds" {
			foundDurationHistogram = m
			break
		}
	}
	if foundDurationHistogram == nil {
		t.Fatal("found duration histogram is nil")
	}

	// one histogram series per status code
	require.Len(t, foundDurationHistogram.Metric, 2)
	for _, histMetric := range foundDurationHistogram.Metric {
		require.NotNil(t, histMetric.Histogram)
		assert.Positive(t, *histMetric.Histogram.SampleCount)
	}
}
