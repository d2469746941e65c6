// Package services contains the business logic layered over the generated
// dataset: once-per-process generation, capacity allocation, and pipeline
// analytics.
package services

import (
	"sync"

	"github.com/iamgoncalo/ecoplanta2/pkg/models"
	"github.com/iamgoncalo/ecoplanta2/pkg/seed"
)

// DatasetService owns the once-per-process generated dataset. It is
// constructed at the composition root and passed by reference to
// repositories and handlers; there is no package-level cache, so tests can
// construct fresh instances per test.
type DatasetService struct {
	seed int64

	once    sync.Once
	dataset *models.Dataset
	err     error
}

// NewDatasetService creates a dataset service for the given seed. Generation
// is deferred until the first Dataset call.
func NewDatasetService(seedValue int64) *DatasetService {
	return &DatasetService{seed: seedValue}
}

// Dataset returns the generated dataset, generating it on first call.
// Concurrent callers serialize around the first construction. The returned
// dataset is owned by this service and must never be mutated; mutation
// endpoints take copies through the repositories.
func (s *DatasetService) Dataset() (*models.Dataset, error) {
	s.once.Do(func() {
		s.dataset, s.err = seed.New(s.seed).GenerateAll()
	})
	return s.dataset, s.err
}

// Seed returns the generation seed this service was constructed with.
func (s *DatasetService) Seed() int64 {
	return s.seed
}
