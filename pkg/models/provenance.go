// Package models contains domain types for the ecoplanta2 backend.
package models

import "time"

// Source represents where a record's data came from.
type Source string

// Source constants. Every record carries exactly one of these.
const (
	SourceSyntheticGenerated     Source = "synthetic_generated"     // produced by the seed generator or an API mutation
	SourceIntegrationPlaceholder Source = "integration_placeholder" // stand-in for a not-yet-wired external system
	SourceAuthoritative          Source = "authoritative"           // real upstream data
)

// String returns the string representation of a Source.
func (s Source) String() string {
	return string(s)
}

// IsValid returns true if the source is a known provenance source.
func (s Source) IsValid() bool {
	switch s {
	case SourceSyntheticGenerated, SourceIntegrationPlaceholder, SourceAuthoritative:
		return true
	default:
		return false
	}
}

// APICreatedSourceID marks records created through the HTTP surface rather
// than by the seed generator. Such records carry wall-clock timestamps.
const APICreatedSourceID = "api-created"

// Provenance is embedded in every domain record. Generator-produced records
// carry a seed-derived SourceID and a fixed logical timestamp so repeated
// runs are byte-identical; API-created records carry APICreatedSourceID and
// real wall-clock time. The two regimes are never mixed within one record.
type Provenance struct {
	Source    Source    `json:"source"`
	SourceID  string    `json:"source_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
