package repositories

import (
	"sync"
	"time"

	"github.com/iamgoncalo/ecoplanta2/pkg/apperrors"
	"github.com/iamgoncalo/ecoplanta2/pkg/models"
)

// DeliveryRepository stores outbound deliveries.
type DeliveryRepository struct {
	datasets DatasetProvider

	once       sync.Once
	initErr    error
	mu         sync.Mutex
	deliveries []models.Delivery
}

// NewDeliveryRepository creates a DeliveryRepository backed by the given
// dataset.
func NewDeliveryRepository(datasets DatasetProvider) *DeliveryRepository {
	return &DeliveryRepository{datasets: datasets}
}

func (r *DeliveryRepository) init() error {
	r.once.Do(func() {
		ds, err := r.datasets.Dataset()
		if err != nil {
			r.initErr = err
			return
		}
		r.deliveries = make([]models.Delivery, len(ds.Deliveries))
		copy(r.deliveries, ds.Deliveries)
	})
	return r.initErr
}

// List returns all deliveries currently in the store.
func (r *DeliveryRepository) List() ([]models.Delivery, error) {
	if err := r.init(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Delivery, len(r.deliveries))
	copy(out, r.deliveries)
	return out, nil
}

// Get returns the delivery with the given id.
func (r *DeliveryRepository) Get(id string) (models.Delivery, error) {
	if err := r.init(); err != nil {
		return models.Delivery{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.deliveries {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Delivery{}, apperrors.ErrNotFound
}

// UpdateStatus transitions a delivery. Reaching delivered stamps the actual
// arrival if it is still unset.
func (r *DeliveryRepository) UpdateStatus(id, status string) (models.Delivery, error) {
	if !models.ValidDeliveryStatuses[status] {
		return models.Delivery{}, apperrors.ErrInvalidStatus
	}
	if err := r.init(); err != nil {
		return models.Delivery{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.deliveries {
		if r.deliveries[i].ID != id {
			continue
		}
		now := time.Now().UTC()
		r.deliveries[i].Status = status
		if status == models.DeliveryDelivered && r.deliveries[i].ActualArrival == nil {
			arrived := now
			r.deliveries[i].ActualArrival = &arrived
		}
		r.deliveries[i].UpdatedAt = now
		return r.deliveries[i], nil
	}
	return models.Delivery{}, apperrors.ErrNotFound
}
