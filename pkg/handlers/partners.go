package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/iamgoncalo/ecoplanta2/pkg/models"
	"github.com/iamgoncalo/ecoplanta2/pkg/services"
)

// ============================================================================
// Request/Response Types
// ============================================================================

// PartnerView is a partner with its monthly capacity plans attached.
type PartnerView struct {
	models.Partner
	CapacityPlans []models.CapacityPlan `json:"capacity_plans"`
}

// PartnerListResponse for GET /api/partners
type PartnerListResponse struct {
	Partners []PartnerView `json:"partners"`
	Total    int           `json:"total"`
}

// AllocateRequest for POST /api/partners/allocate
type AllocateRequest struct {
	Units            int    `json:"units" validate:"required,gte=1"`
	PreferredCountry string `json:"preferred_country"`
	MaxLeadTimeDays  int    `json:"max_lead_time_days" validate:"gte=0"`
}

// ============================================================================
// Handler
// ============================================================================

// PartnersHandler handles the manufacturing partner network HTTP requests.
type PartnersHandler struct {
	datasets *services.DatasetService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewPartnersHandler creates a new partners handler.
func NewPartnersHandler(datasets *services.DatasetService, logger *zap.Logger) *PartnersHandler {
	return &PartnersHandler{
		datasets: datasets,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the partners handler's routes on the given mux.
func (h *PartnersHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/partners", h.List)
	mux.HandleFunc("POST /api/partners/allocate", h.Allocate)
	mux.HandleFunc("GET /api/partners/optimize", h.Optimize)
	mux.HandleFunc("GET /api/partners/{id}", h.Get)
	mux.HandleFunc("GET /api/partners/{id}/quotes", h.ListQuotes)
}

func (h *PartnersHandler) dataset(w http.ResponseWriter) (*models.Dataset, bool) {
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

func plansForPartner(partnerID string, plans []models.CapacityPlan) []models.CapacityPlan {
	out := make([]models.CapacityPlan, 0)
	for _, plan := range plans {
		if plan.PartnerID == partnerID {
			out = append(out, plan)
		}
	}
	return out
}

// List handles GET /api/partners
func (h *PartnersHandler) List(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w)
	if !ok {
		return
	}

	views := make([]PartnerView, 0, len(ds.Partners))
	for _, partner := range ds.Partners {
		views = append(views, PartnerView{
			Partner:       partner,
			CapacityPlans: plansForPartner(partner.ID, ds.CapacityPlans),
		})
	}
	response := PartnerListResponse{Partners: views, Total: len(views)}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: response}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Get handles GET /api/partners/{id}
func (h *PartnersHandler) Get(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w)
	if !ok {
		return
	}

	id := r.PathValue("id")
	for _, partner := range ds.Partners {
		if partner.ID == id {
			view := PartnerView{
				Partner:       partner,
				CapacityPlans: plansForPartner(partner.ID, ds.CapacityPlans),
			}
			if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: view}); err != nil {
				h.logger.Error("Failed to write response", zap.Error(err))
			}
			return
		}
	}
	if err := ErrorResponse(w, http.StatusNotFound, "partner_not_found", "partner not found: "+id); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}

// ListQuotes handles GET /api/partners/{id}/quotes
func (h *PartnersHandler) ListQuotes(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w)
	if !ok {
		return
	}

	id := r.PathValue("id")
	found := false
	for _, partner := range ds.Partners {
		if partner.ID == id {
			found = true
			break
		}
	}
	if !found {
		if err := ErrorResponse(w, http.StatusNotFound, "partner_not_found", "partner not found: "+id); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	quotes := make([]models.PartnerQuote, 0)
	for _, quote := range ds.PartnerQuotes {
		if quote.PartnerID == id {
			quotes = append(quotes, quote)
		}
	}
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: quotes}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Allocate handles POST /api/partners/allocate
func (h *PartnersHandler) Allocate(w http.ResponseWriter, r *http.Request) {
	var req AllocateRequest
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

	ds, ok := h.dataset(w)
	if !ok {
		return
	}

	result := services.Allocate(req.Units, ds.Partners, ds.CapacityPlans, services.AllocationOptions{
		PreferredCountry: req.PreferredCountry,
		MaxLeadTimeDays:  req.MaxLeadTimeDays,
	})

	h.logger.Info("Order allocated",
		zap.Int("requested_units", result.TotalRequested),
		zap.Int("allocated_units", result.TotalAllocated),
		zap.Bool("fully_allocated", result.FullyAllocated),
	)
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: result}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Optimize handles GET /api/partners/optimize
func (h *PartnersHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w)
	if !ok {
		return
	}

	result := services.Optimize(ds.Partners, ds.CapacityPlans)
	if err := WriteJSON(w, http.StatusOK, ApiResponse{Success: true, Data: result}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
