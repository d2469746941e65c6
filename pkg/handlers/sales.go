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

// PipelineStats summarises the sales funnel.
type PipelineStats struct {
	TotalLeads         int     `json:"total_leads"`
	QualifiedLeads     int     `json:"qualified_leads"`
	TotalOpportunities int     `json:"total_opportunities"`
	TotalContracts     int     `json:"total_contracts"`
	PipelineValue      float64 `json:"pipeline_value"`
}

// SalesOverviewResponse for GET /api/sales
type SalesOverviewResponse struct {
	Stats         PipelineStats        `json:"stats"`
	Leads         []models.Lead        `json:"leads"`
	Opportunities []models.Opportunity `json:"opportunities"`
	Contracts     []models.Contract    `json:"contracts"`
}

// CreateLeadRequest for POST /api/sales/leads
type CreateLeadRequest struct {
	Name          string  `json:"name" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         string  `json:"phone"`
	Company       string  `json:"company" validate:"required"`
	Region        string  `json:"region"`
	Score         int     `json:"score" validate:"gte=0,lte=100"`
	PipelineValue float64 `json:"pipeline_value" validate:"gte=0"`
	Notes         string  `json:"notes"`
}

// UpdateLeadStatusRequest for PATCH /api/sales/leads/{id}
type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ============================================================================
// Handler
// ============================================================================

// SalesHandler handles the sales pipeline HTTP requests.
type SalesHandler struct {
	datasets *services.DatasetService
	leads    *repositories.LeadRepository
	validate *validator.Validate
	logger   *zap.Logger
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(datasets *services.DatasetService, leads *repositories.LeadRepository, logger *zap.Logger) *SalesHandler {
	return &SalesHandler{
		datasets: datasets,
		leads:    leads,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the sales handler's routes on the given mux.
func (h *SalesHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/sales", h.Overview)
	mux.HandleFunc("GET /api/sales/pipeline/stats", h.PipelineStatsOnly)
	mux.HandleFunc("GET /api/sales/leads", h.ListLeads)
	mux.HandleFunc("POST /api/sales/leads", h.CreateLead)
	mux.HandleFunc("GET /api/sales/leads/{id}", h.GetLead)
	mux.HandleFunc("PATCH /api/sales/leads/{id}", h.UpdateLeadStatus)
}

func pipelineStats(leads []models.Lead, ds *models.Dataset) PipelineStats {
	stats := PipelineStats{
		TotalLeads:         len(leads),
		TotalOpportunities: len(ds.Opportunities),
		TotalContracts:     len(ds.Contracts),
	}
	for _, lead := range leads {
		stats.PipelineValue += lead.PipelineValue
		switch lead.Status {
		case models.LeadStatusQualified, models.LeadStatusProposal, models.LeadStatusNegotiation, models.LeadStatusWon:
			stats.QualifiedLeads++
		}
	}
	return stats
}

// Overview handles GET /api/sales
func (h *SalesHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ds, err := h.datasets.Dataset()
	if err != nil {
		h.logger.Error("Failed to load dataset", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "dataset_unavailable", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	leads, err := h.leads.List()
	if err != nil {
		h.logger.Error("Failed to list leads", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "list_leads_failed", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := SalesOverviewResponse{
		Stats:         pipelineStats(leads, ds),
		Leads:         leads,
		Opportunities: ds.Opportunities,
		Contracts:     ds.Contracts,
	}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// PipelineStatsOnly handles GET /api/sales/pipeline/stats
func (h *SalesHandler) PipelineStatsOnly(w http.ResponseWriter, r *http.Request) {
	ds, err := h.datasets.Dataset()
	if err != nil {
		h.logger.Error("Failed to load dataset", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "dataset_unavailable", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	leads, err := h.leads.List()
	if err != nil {
		h.logger.Error("Failed to list leads", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "list_leads_failed", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: pipelineStats(leads, ds)}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ListLeads handles GET /api/sales/leads
func (h *SalesHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leads.List()
	if err != nil {
		h.logger.Error("Failed to list leads", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "list_leads_failed", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: leads}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// GetLead handles GET /api/sales/leads/{id}
func (h *SalesHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	lead, err := h.leads.Get(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			if err := ErrorResponse(w, http.StatusNotFound, "lead_not_found", "lead not found: "+id); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		h.logger.Error("Failed to get lead", zap.String("lead_id", id), zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "get_lead_failed", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: lead}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// CreateLead handles POST /api/sales/leads
func (h *SalesHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req CreateLeadRequest
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

	lead, err := h.leads.Create(models.Lead{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Company:       req.Company,
		Region:        req.Region,
		Score:         req.Score,
		PipelineValue: req.PipelineValue,
		Notes:         req.Notes,
	})
	if err != nil {
		h.logger.Error("Failed to create lead", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "create_lead_failed", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	h.logger.Info("Lead created", zap.String("lead_id", lead.ID), zap.String("company", lead.Company))
	if err := WriteJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: lead}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// UpdateLeadStatus handles PATCH /api/sales/leads/{id}
func (h *SalesHandler) UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req UpdateLeadStatusRequest
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

	lead, err := h.leads.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidStatus):
			if err := ErrorResponse(w, http.StatusBadRequest, "invalid_status", "invalid lead status: "+req.Status); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
		case errors.Is(err, apperrors.ErrNotFound):
			if err := ErrorResponse(w, http.StatusNotFound, "lead_not_found", "lead not found: "+id); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
		default:
			h.logger.Error("Failed to update lead status", zap.String("lead_id", id), zap.Error(err))
			if err := ErrorResponse(w, http.StatusInternalServerError, "update_lead_failed", err.Error()); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: lead}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
