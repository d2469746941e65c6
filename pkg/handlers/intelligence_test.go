package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iamgoncalo/ecoplanta2/pkg/services"
)

func newIntelligenceMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	NewIntelligenceHandler(services.NewDatasetService(42), zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func TestListInsightReports(t *testing.T) {
	mux := newIntelligenceMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/intelligence/reports", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp InsightReportListResponse
	decodeData(t, rec.Body.Bytes(), &resp)
	assert.Equal(t, 8, resp.Total)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/intelligence/reports?module=factory", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec.Body.Bytes(), &resp)
	for _, report := range resp.Reports {
		assert.Equal(t, "factory", report.Module)
	}
}

func TestListModels(t *testing.T) {
	mux := newIntelligenceMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/intelligence/models", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var registry []services.ModelInfo
	decodeData(t, rec.Body.Bytes(), &registry)
	require.Len(t, registry, 3)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/intelligence/models/"+registry[0].ModelID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/intelligence/models/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestForecastEndpoint(t *testing.T) {
	mux := newIntelligenceMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/intelligence/forecast", strings.NewReader(`{}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var result services.ForecastResult
	decodeData(t, rec.Body.Bytes(), &result)
	assert.Equal(t, services.ModelLeadTimeForecast, result.ModelID)
	assert.Equal(t, "mean_baseline", result.Method)
	// Defaults to a six period horizon.
	require.Len(t, result.Forecast, 6)
	assert.Equal(t, "period_1", result.Forecast[0].Period)
	for _, p := range result.Forecast {
		assert.LessOrEqual(t, p.LowerBound, p.Value)
		assert.GreaterOrEqual(t, p.UpperBound, p.Value)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/intelligence/forecast", strings.NewReader(`{"horizon_periods":2}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec.Body.Bytes(), &result)
	assert.Len(t, result.Forecast, 2)
}

func TestForecastEndpointValidation(t *testing.T) {
	mux := newIntelligenceMux(t)

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"horizon too large", `{"horizon_periods":100}`},
		{"negative horizon", `{"horizon_periods":-1}`},
		{"confidence out of range", `{"confidence_level":1.5}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/intelligence/forecast", strings.NewReader(tc.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAnomalyDetectEndpoint(t *testing.T) {
	mux := newIntelligenceMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/intelligence/anomaly-detect", strings.NewReader(`{}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var result services.AnomalyDetectionResult
	decodeData(t, rec.Body.Bytes(), &result)
	assert.Equal(t, services.ModelQAAnomalyDetector, result.ModelID)
	assert.InDelta(t, 2.0, result.ThresholdZ, 1e-9)
	assert.Equal(t, len(result.Points), result.TotalRecords)
	assert.Positive(t, result.TotalRecords)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/intelligence/anomaly-detect", strings.NewReader(`{"threshold":-1}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeatureStoreEndpoint(t *testing.T) {
	mux := newIntelligenceMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/intelligence/feature-store", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var features []services.FeatureDefinition
	decodeData(t, rec.Body.Bytes(), &features)
	assert.Len(t, features, 8)
}

func TestTrainingJobLifecycle(t *testing.T) {
	mux := newIntelligenceMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/intelligence/train", strings.NewReader(`{"model_name":"lead-time-v2"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var job TrainingJob
	decodeData(t, rec.Body.Bytes(), &job)
	assert.NotEmpty(t, job.JobID)
	assert.Equal(t, "lead-time-v2", job.ModelName)
	assert.Equal(t, "completed", job.Status)
	assert.NotEmpty(t, job.Metrics)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/intelligence/train/"+job.JobID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched TrainingJob
	decodeData(t, rec.Body.Bytes(), &fetched)
	assert.Equal(t, job.JobID, fetched.JobID)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/intelligence/train/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Missing model name is rejected.
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/intelligence/train", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
