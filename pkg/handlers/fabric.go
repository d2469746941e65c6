package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/iamgoncalo/ecoplanta2/pkg/models"
	"github.com/iamgoncalo/ecoplanta2/pkg/services"
)

// HomeUnitListResponse for GET /api/fabric/units
type HomeUnitListResponse struct {
	Units []models.HomeUnit `json:"units"`
	Total int               `json:"total"`
}

// FabricOverviewResponse for GET /api/fabric
type FabricOverviewResponse struct {
	ProductionLines []models.ProductionLine `json:"production_lines"`
	SceneObjects    int                     `json:"scene_objects"`
	Camera          models.SceneCamera      `json:"camera"`
}

// FabricHandler serves the digital-fabric surface: installed home units and
// the 3-D factory scene.
type FabricHandler struct {
	datasets *services.DatasetService
	logger   *zap.Logger
}

// NewFabricHandler creates a new fabric handler.
func NewFabricHandler(datasets *services.DatasetService, logger *zap.Logger) *FabricHandler {
	return &FabricHandler{datasets: datasets, logger: logger}
}

// RegisterRoutes registers the fabric handler's routes on the given mux.
func (h *FabricHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/fabric", h.Overview)
	mux.HandleFunc("GET /api/fabric/units", h.ListUnits)
	mux.HandleFunc("GET /api/fabric/units/{id}", h.GetUnit)
	mux.HandleFunc("GET /api/fabric/scene", h.GetScene)
	mux.HandleFunc("GET /api/fabric/configs", h.ListConfigs)
	mux.HandleFunc("GET /api/fabric/frameworks", h.ListFrameworks)
	mux.HandleFunc("GET /api/fabric/patents", h.ListPatents)
}

func (h *FabricHandler) dataset(w http.ResponseWriter) (*models.Dataset, bool) {
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

// Overview handles GET /api/fabric
func (h *FabricHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w)
	if !ok {
		return
	}

	response := FabricOverviewResponse{
		ProductionLines: ds.ProductionLines,
		SceneObjects:    len(ds.FactoryScene.Objects),
		Camera:          ds.FactoryScene.Camera,
	}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ListUnits handles GET /api/fabric/units
func (h *FabricHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w)
	if !ok {
		return
	}

	response := HomeUnitListResponse{Units: ds.HomeUnits, Total: len(ds.HomeUnits)}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// GetUnit handles GET /api/fabric/units/{id}
func (h *FabricHandler) GetUnit(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w)
	if !ok {
		return
	}

	id := r.PathValue("id")
	for _, unit := range ds.HomeUnits {
		if unit.ID == id {
			if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: unit}); err != nil {
				h.logger.Error("Failed to write response", zap.Error(err))
			}
			return
		}
	}
	if err := ErrorResponse(w, http.StatusNotFound, "home_unit_not_found", "home unit not found: "+id); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}

// GetScene handles GET /api/fabric/scene
func (h *FabricHandler) GetScene(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w)
	if !ok {
		return
	}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: ds.FactoryScene}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ListConfigs handles GET /api/fabric/configs
func (h *FabricHandler) ListConfigs(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w)
	if !ok {
		return
	}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: ds.HouseConfigs}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ListFrameworks handles GET /api/fabric/frameworks
func (h *FabricHandler) ListFrameworks(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w)
	if !ok {
		return
	}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: ds.Frameworks}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ListPatents handles GET /api/fabric/patents
func (h *FabricHandler) ListPatents(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w)
	if !ok {
		return
	}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: ds.Patents}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
