package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iamgoncalo/ecoplanta2/pkg/apperrors"
	"github.com/iamgoncalo/ecoplanta2/pkg/models"
)

// WorkOrderRepository stores factory work orders.
type WorkOrderRepository struct {
	datasets DatasetProvider

	once    sync.Once
	initErr error
	mu      sync.Mutex
	orders  []models.WorkOrder
}

// NewWorkOrderRepository creates a WorkOrderRepository backed by the given
// dataset.
func NewWorkOrderRepository(datasets DatasetProvider) *WorkOrderRepository {
	return &WorkOrderRepository{datasets: datasets}
}

func (r *WorkOrderRepository) init() error {
	r.once.Do(func() {
		ds, err := r.datasets.Dataset()
		if err != nil {
			r.initErr = err
			return
		}
		r.orders = make([]models.WorkOrder, len(ds.WorkOrders))
		copy(r.orders, ds.WorkOrders)
	})
	return r.initErr
}

// List returns all work orders currently in the store.
func (r *WorkOrderRepository) List() ([]models.WorkOrder, error) {
	if err := r.init(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.WorkOrder, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

// Get returns the work order with the given id.
func (r *WorkOrderRepository) Get(id string) (models.WorkOrder, error) {
	if err := r.init(); err != nil {
		return models.WorkOrder{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, wo := range r.orders {
		if wo.ID == id {
			return wo, nil
		}
	}
	return models.WorkOrder{}, apperrors.ErrNotFound
}

// Create schedules a new work order through the API surface.
func (r *WorkOrderRepository) Create(wo models.WorkOrder) (models.WorkOrder, error) {
	if err := r.init(); err != nil {
		return models.WorkOrder{}, err
	}
	now := time.Now().UTC()
	wo.ID = uuid.New().String()
	if wo.Status == "" {
		wo.Status = models.WorkOrderPlanned
	}
	wo.Source = models.SourceSyntheticGenerated
	wo.SourceID = models.APICreatedSourceID
	wo.CreatedAt = now
	wo.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, wo)
	return wo, nil
}

// UpdateStatus transitions a work order. Moving into in_progress stamps the
// actual start once; moving into completed stamps the actual end.
func (r *WorkOrderRepository) UpdateStatus(id, status string) (models.WorkOrder, error) {
	if !models.ValidWorkOrderStatuses[status] {
		return models.WorkOrder{}, apperrors.ErrInvalidStatus
	}
	if err := r.init(); err != nil {
		return models.WorkOrder{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID != id {
			continue
		}
		now := time.Now().UTC()
		r.orders[i].Status = status
		switch status {
		case models.WorkOrderInProgress:
			if r.orders[i].ActualStart == nil {
				start := now
				r.orders[i].ActualStart = &start
			}
		case models.WorkOrderCompleted:
			end := now
			r.orders[i].ActualEnd = &end
		}
		r.orders[i].UpdatedAt = now
		return r.orders[i], nil
	}
	return models.WorkOrder{}, apperrors.ErrNotFound
}
