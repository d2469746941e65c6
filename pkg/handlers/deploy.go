package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

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

// DeploymentJobView is a deployment job with checklist progress broken out.
type DeploymentJobView struct {
	models.DeploymentJob
	CompletedCount int     `json:"completed_count"`
	TotalCount     int     `json:"total_count"`
	CompletionPct  float64 `json:"completion_pct"`
}

// DeployOverviewResponse for GET /api/deploy
type DeployOverviewResponse struct {
	Deliveries []models.Delivery   `json:"deliveries"`
	Jobs       []DeploymentJobView `json:"jobs"`
}

// UpdateDeliveryStatusRequest for PATCH /api/deploy/deliveries/{id}
type UpdateDeliveryStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ============================================================================
// Handler
// ============================================================================

// DeployHandler handles logistics HTTP requests: deliveries and on-site
// deployment jobs.
type DeployHandler struct {
	datasets   *services.DatasetService
	deliveries *repositories.DeliveryRepository
	validate   *validator.Validate
	logger     *zap.Logger
}

// NewDeployHandler creates a new deploy handler.
func NewDeployHandler(datasets *services.DatasetService, deliveries *repositories.DeliveryRepository, logger *zap.Logger) *DeployHandler {
	return &DeployHandler{
		datasets:   datasets,
		deliveries: deliveries,
		validate:   validator.New(),
		logger:     logger,
	}
}

// RegisterRoutes registers the deploy handler's routes on the given mux.
func (h *DeployHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/deploy", h.Overview)
	mux.HandleFunc("GET /api/deploy/jobs", h.ListJobs)
	mux.HandleFunc("GET /api/logistics/deliveries", h.ListDeliveries)
	mux.HandleFunc("PATCH /api/logistics/deliveries/{id}/status", h.UpdateDeliveryStatus)
}

func jobViews(jobs []models.DeploymentJob) []DeploymentJobView {
	views := make([]DeploymentJobView, 0, len(jobs))
	for _, job := range jobs {
		views = append(views, DeploymentJobView{
			DeploymentJob:  job,
			CompletedCount: job.Checklist.CompletedCount(),
			TotalCount:     models.ChecklistTotal,
			CompletionPct:  job.Checklist.CompletionPct(),
		})
	}
	return views
}

// Overview handles GET /api/deploy
func (h *DeployHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ds, err := h.datasets.Dataset()
	if err != nil {
		h.logger.Error("Failed to load dataset", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "dataset_unavailable", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	deliveries, err := h.deliveries.List()
	if err != nil {
		h.logger.Error("Failed to list deliveries", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "list_deliveries_failed", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := DeployOverviewResponse{
		Deliveries: deliveries,
		Jobs:       jobViews(ds.DeploymentJobs),
	}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ListDeliveries handles GET /api/logistics/deliveries
func (h *DeployHandler) ListDeliveries(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.deliveries.List()
	if err != nil {
		h.logger.Error("Failed to list deliveries", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "list_deliveries_failed", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: deliveries}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// UpdateDeliveryStatus handles PATCH /api/logistics/deliveries/{id}/status
func (h *DeployHandler) UpdateDeliveryStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req UpdateDeliveryStatusRequest
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

	delivery, err := h.deliveries.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidStatus):
			if err := ErrorResponse(w, http.StatusBadRequest, "invalid_status", "invalid delivery status: "+req.Status); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
		case errors.Is(err, apperrors.ErrNotFound):
			if err := ErrorResponse(w, http.StatusNotFound, "delivery_not_found", "delivery not found: "+id); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
		default:
			h.logger.Error("Failed to update delivery status", zap.String("delivery_id", id), zap.Error(err))
			if err := ErrorResponse(w, http.StatusInternalServerError, "update_delivery_failed", err.Error()); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: delivery}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ListJobs handles GET /api/deploy/jobs
func (h *DeployHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	ds, err := h.datasets.Dataset()
	if err != nil {
		h.logger.Error("Failed to load dataset", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "dataset_unavailable", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: jobViews(ds.DeploymentJobs)}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
