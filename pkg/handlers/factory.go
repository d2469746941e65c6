package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/iamgoncalo/ecoplanta2/pkg/apperrors"
	"github.com/iamgoncalo/ecoplanta2/pkg/models"
	"github.com/iamgoncalo/ecoplanta2/pkg/repositories"
	"github.com/iamgoncalo/ecoplanta2/pkg/services"
)

// ============================================================================
// Request/Response Types
// ============================================================================

// FactoryOverviewResponse for GET /api/factory
type FactoryOverviewResponse struct {
	ProductionLines []models.ProductionLine `json:"production_lines"`
	WorkOrders      []models.WorkOrder      `json:"work_orders"`
	BOMs            []models.BOM            `json:"boms"`
}

// CreateWorkOrderRequest for POST /api/factory/workorders
type CreateWorkOrderRequest struct {
	BOMID            string    `json:"bom_id" validate:"required"`
	ProductionLineID string    `json:"production_line_id" validate:"required"`
	Priority         int       `json:"priority" validate:"gte=1,lte=5"`
	ScheduledStart   time.Time `json:"scheduled_start" validate:"required"`
	ScheduledEnd     time.Time `json:"scheduled_end" validate:"required,gtfield=ScheduledStart"`
}

// UpdateWorkOrderStatusRequest for PATCH /api/factory/workorders/{id}
type UpdateWorkOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ============================================================================
// Handler
// ============================================================================

// FactoryHandler handles factory floor HTTP requests: production lines, work
// orders, BOMs, inventory and QA records.
type FactoryHandler struct {
	datasets   *services.DatasetService
	workOrders *repositories.WorkOrderRepository
	validate   *validator.Validate
	logger     *zap.Logger
}

// NewFactoryHandler creates a new factory handler.
func NewFactoryHandler(datasets *services.DatasetService, workOrders *repositories.WorkOrderRepository, logger *zap.Logger) *FactoryHandler {
	return &FactoryHandler{
		datasets:   datasets,
		workOrders: workOrders,
		validate:   validator.New(),
		logger:     logger,
	}
}

// RegisterRoutes registers the factory handler's routes on the given mux.
func (h *FactoryHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/factory", h.Overview)
	mux.HandleFunc("GET /api/factory/workorders", h.ListWorkOrders)
	mux.HandleFunc("POST /api/factory/workorders", h.CreateWorkOrder)
	mux.HandleFunc("GET /api/factory/workorders/{id}", h.GetWorkOrder)
	mux.HandleFunc("PATCH /api/factory/workorders/{id}/status", h.UpdateWorkOrderStatus)
	mux.HandleFunc("GET /api/factory/inventory", h.ListInventory)
	mux.HandleFunc("GET /api/factory/qa", h.ListQARecords)
	mux.HandleFunc("GET /api/factory/bom/{id}", h.GetBOM)
}

func (h *FactoryHandler) dataset(w http.ResponseWriter) (*models.Dataset, bool) {
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

// Overview handles GET /api/factory
func (h *FactoryHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w)
	if !ok {
		return
	}

	orders, err := h.workOrders.List()
	if err != nil {
		h.logger.Error("Failed to list work orders", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "list_workorders_failed", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := FactoryOverviewResponse{
		ProductionLines: ds.ProductionLines,
		WorkOrders:      orders,
		BOMs:            ds.BOMs,
	}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ListWorkOrders handles GET /api/factory/workorders
func (h *FactoryHandler) ListWorkOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.workOrders.List()
	if err != nil {
		h.logger.Error("Failed to list work orders", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "list_workorders_failed", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: orders}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// GetWorkOrder handles GET /api/factory/workorders/{id}
func (h *FactoryHandler) GetWorkOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	wo, err := h.workOrders.Get(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			if err := ErrorResponse(w, http.StatusNotFound, "workorder_not_found", "work order not found: "+id); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		h.logger.Error("Failed to get work order", zap.String("workorder_id", id), zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "get_workorder_failed", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: wo}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// CreateWorkOrder handles POST /api/factory/workorders
func (h *FactoryHandler) CreateWorkOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateWorkOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request_body", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if err := h.validate.Struct(req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "validation_failed", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	wo, err := h.workOrders.Create(models.WorkOrder{
		BOMID:            req.BOMID,
		ProductionLineID: req.ProductionLineID,
		Priority:         req.Priority,
		ScheduledStart:   req.ScheduledStart,
		ScheduledEnd:     req.ScheduledEnd,
	})
	if err != nil {
		h.logger.Error("Failed to create work order", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "create_workorder_failed", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	h.logger.Info("Work order created", zap.String("workorder_id", wo.ID), zap.String("bom_id", wo.BOMID))
	if err := WriteJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: wo}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// UpdateWorkOrderStatus handles PATCH /api/factory/workorders/{id}/status
func (h *FactoryHandler) UpdateWorkOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req UpdateWorkOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request_body", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if err := h.validate.Struct(req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "validation_failed", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	wo, err := h.workOrders.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidStatus):
			if err := ErrorResponse(w, http.StatusBadRequest, "invalid_status", "invalid work order status: "+req.Status); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
		case errors.Is(err, apperrors.ErrNotFound):
			if err := ErrorResponse(w, http.StatusNotFound, "workorder_not_found", "work order not found: "+id); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
		default:
			h.logger.Error("Failed to update work order status", zap.String("workorder_id", id), zap.Error(err))
			if err := ErrorResponse(w, http.StatusInternalServerError, "update_workorder_failed", err.Error()); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: wo}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ListInventory handles GET /api/factory/inventory
func (h *FactoryHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w)
	if !ok {
		return
	}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: ds.InventoryItems}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ListQARecords handles GET /api/factory/qa
func (h *FactoryHandler) ListQARecords(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w)
	if !ok {
		return
	}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: ds.QARecords}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// GetBOM handles GET /api/factory/bom/{id}
func (h *FactoryHandler) GetBOM(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w)
	if !ok {
		return
	}

	id := r.PathValue("id")
	for _, bom := range ds.BOMs {
		if bom.ID == id {
			if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: bom}); err != nil {
				h.logger.Error("Failed to write response", zap.Error(err))
			}
			return
		}
	}
	if err := ErrorResponse(w, http.StatusNotFound, "bom_not_found", "bom not found: "+id); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}
