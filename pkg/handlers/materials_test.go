package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iamgoncalo/ecoplanta2/pkg/services"
)

func newMaterialsMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	NewMaterialsHandler(services.NewDatasetService(42), zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func TestListMaterials(t *testing.T) {
	mux := newMaterialsMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/materials", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MaterialListResponse
	decodeData(t, rec.Body.Bytes(), &resp)
	assert.Equal(t, 14, resp.Total)
}

func TestListSmartMaterials(t *testing.T) {
	mux := newMaterialsMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/materials/smart", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MaterialListResponse
	decodeData(t, rec.Body.Bytes(), &resp)
	require.NotEmpty(t, resp.Materials)
	for _, m := range resp.Materials {
		assert.True(t, m.IsSmartMaterial, "material %s is not smart", m.Name)
	}
}

func TestListSuppliers(t *testing.T) {
	mux := newMaterialsMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/materials/suppliers", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SupplierListResponse
	decodeData(t, rec.Body.Bytes(), &resp)
	assert.Equal(t, 8, resp.Total)
}

func TestCompareMaterials(t *testing.T) {
	mux := newMaterialsMux(t)

	var list MaterialListResponse
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/materials", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec.Body.Bytes(), &list)
	require.GreaterOrEqual(t, len(list.Materials), 2)

	first, second := list.Materials[0], list.Materials[1]
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/materials/compare?ids="+first.ID+","+second.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MaterialComparisonResponse
	decodeData(t, rec.Body.Bytes(), &resp)
	require.Len(t, resp.Materials, 2)
	assert.Equal(t, []string{"density", "tensile_strength", "thermal_conductivity", "embodied_carbon_kg"}, resp.ComparisonFields)
	require.Len(t, resp.BestBy, 4)

	// Tensile strength picks the maximum, the rest pick the minimum.
	strongest := first
	if second.TensileStrength > first.TensileStrength {
		strongest = second
	}
	assert.Equal(t, strongest.ID, resp.BestBy["tensile_strength"])
	lightest := first
	if second.Density < first.Density {
		lightest = second
	}
	assert.Equal(t, lightest.ID, resp.BestBy["density"])
}

func TestCompareMaterialsValidation(t *testing.T) {
	mux := newMaterialsMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/materials/compare?ids=only-one", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/materials/compare", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/materials/compare?ids=nope-1,nope-2", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetMaterial(t *testing.T) {
	mux := newMaterialsMux(t)

	var list MaterialListResponse
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/materials", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec.Body.Bytes(), &list)
	require.NotEmpty(t, list.Materials)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/materials/"+list.Materials[0].ID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/materials/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
