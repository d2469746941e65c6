package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/iamgoncalo/ecoplanta2/pkg/models"
	"github.com/iamgoncalo/ecoplanta2/pkg/seed"
	"github.com/iamgoncalo/ecoplanta2/pkg/services"
)

// MaterialListResponse for GET /api/materials
type MaterialListResponse struct {
	Materials []models.Material `json:"materials"`
	Total     int               `json:"total"`
}

// SupplierListResponse for GET /api/materials/suppliers
type SupplierListResponse struct {
	Suppliers []models.Supplier `json:"suppliers"`
	Total     int               `json:"total"`
}

// MaterialComparisonResponse for GET /api/materials/compare
type MaterialComparisonResponse struct {
	Materials        []models.Material `json:"materials"`
	ComparisonFields []string          `json:"comparison_fields"`
	BestBy           map[string]string `json:"best_by"`
}

// MaterialsHandler serves the materials catalog, supplier roster and
// inventory levels.
type MaterialsHandler struct {
	datasets *services.DatasetService
	logger   *zap.Logger
}

// NewMaterialsHandler creates a new materials handler.
func NewMaterialsHandler(datasets *services.DatasetService, logger *zap.Logger) *MaterialsHandler {
	return &MaterialsHandler{datasets: datasets, logger: logger}
}

// RegisterRoutes registers the materials handler's routes on the given mux.
func (h *MaterialsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/materials", h.List)
	mux.HandleFunc("GET /api/materials/smart", h.ListSmart)
	mux.HandleFunc("GET /api/materials/suppliers", h.ListSuppliers)
	mux.HandleFunc("GET /api/materials/inventory", h.ListInventory)
	mux.HandleFunc("GET /api/materials/compare", h.Compare)
	mux.HandleFunc("GET /api/materials/{id}", h.Get)
}

func (h *MaterialsHandler) dataset(w http.ResponseWriter) (*models.Dataset, bool) {
	ds, err := h.datasets.Dataset()
	if err != nil {
		h.logger.Error("Failed to load dataset", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "dataset_unavailable", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return nil, false
	}
	return ds, true
}

// filterCatalog drops any entry mentioning a banned construction method. The
// generator already refuses to build such entries, so this normally passes
// everything through.
func filterCatalog(materials []models.Material) []models.Material {
	out := make([]models.Material, 0, len(materials))
	for _, m := range materials {
		if seed.ContainsBannedMaterialTerm(m.Name) || seed.ContainsBannedMaterialTerm(m.Category) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// List handles GET /api/materials
func (h *MaterialsHandler) List(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w)
	if !ok {
		return
	}

	materials := filterCatalog(ds.Materials)
	response := MaterialListResponse{Materials: materials, Total: len(materials)}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ListSmart handles GET /api/materials/smart
func (h *MaterialsHandler) ListSmart(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w)
	if !ok {
		return
	}

	smart := make([]models.Material, 0)
	for _, m := range filterCatalog(ds.Materials) {
		if m.IsSmartMaterial {
			smart = append(smart, m)
		}
	}
	response := MaterialListResponse{Materials: smart, Total: len(smart)}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ListSuppliers handles GET /api/materials/suppliers
func (h *MaterialsHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w)
	if !ok {
		return
	}

	response := SupplierListResponse{Suppliers: ds.Suppliers, Total: len(ds.Suppliers)}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ListInventory handles GET /api/materials/inventory
func (h *MaterialsHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w)
	if !ok {
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: ds.InventoryItems}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Compare handles GET /api/materials/compare?ids=a,b,...
//
// Comparison picks the highest tensile strength and the lowest value for
// every other property.
func (h *MaterialsHandler) Compare(w http.ResponseWriter, r *http.Request) {
	ids := make([]string, 0)
	for _, id := range strings.Split(r.URL.Query().Get("ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) < 2 {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_comparison", "at least 2 material ids are required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	ds, ok := h.dataset(w)
	if !ok {
		return
	}

	catalog := make(map[string]models.Material)
	for _, m := range filterCatalog(ds.Materials) {
		catalog[m.ID] = m
	}

	selected := make([]models.Material, 0, len(ids))
	for _, id := range ids {
		m, found := catalog[id]
		if !found {
			if err := ErrorResponse(w, http.StatusNotFound, "material_not_found", "material not found: "+id); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		selected = append(selected, m)
	}

	fields := []string{"density", "tensile_strength", "thermal_conductivity", "embodied_carbon_kg"}
	value := func(m models.Material, field string) float64 {
		switch field {
		case "density":
			return m.Density
		case "tensile_strength":
			return m.TensileStrength
		case "thermal_conductivity":
			return m.ThermalConductivity
		default:
			return m.EmbodiedCarbonKg
		}
	}

	bestBy := make(map[string]string, len(fields))
	for _, field := range fields {
		best := selected[0]
		for _, m := range selected[1:] {
			if field == "tensile_strength" {
				if value(m, field) > value(best, field) {
					best = m
				}
			} else if value(m, field) < value(best, field) {
				best = m
			}
		}
		bestBy[field] = best.ID
	}

	response := MaterialComparisonResponse{Materials: selected, ComparisonFields: fields, BestBy: bestBy}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Get handles GET /api/materials/{id}
func (h *MaterialsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w)
	if !ok {
		return
	}

	id := r.PathValue("id")
	for _, m := range filterCatalog(ds.Materials) {
		if m.ID == id {
			if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: m}); err != nil {
				h.logger.Error("Failed to write response", zap.Error(err))
			}
			return
		}
	}
	if err := ErrorResponse(w, http.StatusNotFound, "material_not_found", "material not found: "+id); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}
