// Package repositories provides in-memory stores layered over the generated
// dataset. Each store copies its collection on first use so API mutations
// never leak back into the canonical seeded snapshot.
package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iamgoncalo/ecoplanta2/pkg/apperrors"
	"github.com/iamgoncalo/ecoplanta2/pkg/models"
)

// DatasetProvider yields the generated dataset the stores copy from.
// *services.DatasetService satisfies it.
type DatasetProvider interface {
	Dataset() (*models.Dataset, error)
}

// LeadRepository stores sales leads.
type LeadRepository struct {
	datasets DatasetProvider

	once    sync.Once
	initErr error
	mu      sync.Mutex
	leads   []models.Lead
}

// NewLeadRepository creates a LeadRepository backed by the given dataset.
func NewLeadRepository(datasets DatasetProvider) *LeadRepository {
	return &LeadRepository{datasets: datasets}
}

// init copies the lead collection on first use. A generation error is cached
// so every later call keeps reporting it instead of serving an empty store.
func (r *LeadRepository) init() error {
	r.once.Do(func() {
		ds, err := r.datasets.Dataset()
		if err != nil {
			r.initErr = err
			return
		}
		r.leads = make([]models.Lead, len(ds.Leads))
		copy(r.leads, ds.Leads)
	})
	return r.initErr
}

// List returns all leads currently in the store.
func (r *LeadRepository) List() ([]models.Lead, error) {
	if err := r.init(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Lead, len(r.leads))
	copy(out, r.leads)
	return out, nil
}

// Get returns the lead with the given id.
func (r *LeadRepository) Get(id string) (models.Lead, error) {
	if err := r.init(); err != nil {
		return models.Lead{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, lead := range r.leads {
		if lead.ID == id {
			return lead, nil
		}
	}
	return models.Lead{}, apperrors.ErrNotFound
}

// Create adds a new lead. API-created records get a random id and wall-clock
// timestamps, unlike the generator's derived ids and fixed logical clock.
func (r *LeadRepository) Create(lead models.Lead) (models.Lead, error) {
	if err := r.init(); err != nil {
		return models.Lead{}, err
	}
	now := time.Now().UTC()
	lead.ID = uuid.New().String()
	if lead.Status == "" {
		lead.Status = models.LeadStatusNew
	}
	lead.Source = models.SourceSyntheticGenerated
	lead.SourceID = models.APICreatedSourceID
	lead.CreatedAt = now
	lead.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = append(r.leads, lead)
	return lead, nil
}

// UpdateStatus transitions a lead to a new pipeline status. The status is
// validated before the lookup so an unknown status on a missing lead still
// reports the status problem.
func (r *LeadRepository) UpdateStatus(id, status string) (models.Lead, error) {
	if !models.ValidLeadStatuses[status] {
		return models.Lead{}, apperrors.ErrInvalidStatus
	}
	if err := r.init(); err != nil {
		return models.Lead{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.leads {
		if r.leads[i].ID == id {
			r.leads[i].Status = status
			r.leads[i].UpdatedAt = time.Now().UTC()
			return r.leads[i], nil
		}
	}
	return models.Lead{}, apperrors.ErrNotFound
}
