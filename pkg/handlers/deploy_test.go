package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iamgoncalo/ecoplanta2/pkg/models"
	"github.com/iamgoncalo/ecoplanta2/pkg/repositories"
	"github.com/iamgoncalo/ecoplanta2/pkg/services"
)

func newDeployMux(t *testing.T) (*http.ServeMux, *repositories.DeliveryRepository) {
	t.Helper()
	datasets := services.NewDatasetService(42)
	deliveries := repositories.NewDeliveryRepository(datasets)
	mux := http.NewServeMux()
	NewDeployHandler(datasets, deliveries, zap.NewNop()).RegisterRoutes(mux)
	return mux, deliveries
}

func TestDeployOverviewChecklistProgress(t *testing.T) {
	mux, _ := newDeployMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/deploy", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp DeployOverviewResponse
	decodeData(t, rec.Body.Bytes(), &resp)
	require.NotEmpty(t, resp.Jobs)
	for _, job := range resp.Jobs {
		assert.Equal(t, models.ChecklistTotal, job.TotalCount)
		assert.Equal(t, job.Checklist.CompletedCount(), job.CompletedCount)
		assert.InDelta(t, job.Checklist.CompletionPct(), job.CompletionPct, 1e-9)
		// The first three steps are always done in generated jobs.
		assert.GreaterOrEqual(t, job.CompletedCount, 3)
	}
}

func TestUpdateDeliveryStatusEndpoint(t *testing.T) {
	mux, deliveries := newDeployMux(t)

	existing, err := deliveries.List()
	require.NoError(t, err)
	require.NotEmpty(t, existing)
	id := existing[0].ID

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/logistics/deliveries/"+id+"/status", strings.NewReader(`{"status":"delivered"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var delivery models.Delivery
	decodeData(t, rec.Body.Bytes(), &delivery)
	assert.Equal(t, models.DeliveryDelivered, delivery.Status)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/logistics/deliveries/"+id+"/status", strings.NewReader(`{"status":"teleported"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
