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

func newPartnersMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	NewPartnersHandler(services.NewDatasetService(42), zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func TestListPartners(t *testing.T) {
	mux := newPartnersMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/partners", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PartnerListResponse
	decodeData(t, rec.Body.Bytes(), &resp)
	assert.Equal(t, 8, resp.Total)
	for _, partner := range resp.Partners {
		assert.Len(t, partner.CapacityPlans, 12, "partner %s should carry a year of capacity plans", partner.ID)
	}
}

func TestGetPartnerNotFound(t *testing.T) {
	mux := newPartnersMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/partners/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPartnerQuotes(t *testing.T) {
	mux := newPartnersMux(t)

	var list PartnerListResponse
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/partners", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec.Body.Bytes(), &list)
	require.NotEmpty(t, list.Partners)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/partners/"+list.Partners[0].ID+"/quotes", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAllocateEndpoint(t *testing.T) {
	mux := newPartnersMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/partners/allocate", strings.NewReader(`{"units":10}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var result services.AllocationResult
	decodeData(t, rec.Body.Bytes(), &result)
	assert.Equal(t, 10, result.TotalRequested)
	assert.Equal(t, 10, result.TotalAllocated)
	assert.True(t, result.FullyAllocated)
}

func TestAllocateEndpointValidation(t *testing.T) {
	mux := newPartnersMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/partners/allocate", strings.NewReader(`{"units":0}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOptimizeEndpointDeterministic(t *testing.T) {
	mux := newPartnersMux(t)

	first := httptest.NewRecorder()
	mux.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/partners/optimize", nil))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	mux.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/partners/optimize", nil))
	require.Equal(t, http.StatusOK, second.Code)

	assert.Equal(t, first.Body.String(), second.Body.String())
}
