package models

// Framework is a patented structural framing system. MaterialIDs and
// PatentIDs reference generated materials and patents by position.
type Framework struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	FrameworkType    string   `json:"framework_type"`
	Description      string   `json:"description"`
	StructuralRating string   `json:"structural_rating"`
	MaterialIDs      []string `json:"material_ids"`
	PatentIDs        []string `json:"patent_ids"`
	Provenance
}

// PatentClaims summarizes the claim structure of a patent filing.
type PatentClaims struct {
	IndependentClaims int    `json:"independent_claims"`
	DependentClaims   int    `json:"dependent_claims"`
	Summary           string `json:"summary"`
}

// ExperimentResults holds validation experiment outcomes for a patent.
type ExperimentResults struct {
	TestsConducted int     `json:"tests_conducted"`
	SuccessRatePct float64 `json:"success_rate_pct"`
	PeerReviewed   bool    `json:"peer_reviewed"`
}

// Patent is a filed, pending or granted patent.
type Patent struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	FilingNumber      string            `json:"filing_number"`
	Status            string            `json:"status"`
	FilingDate        string            `json:"filing_date"`
	Claims            PatentClaims      `json:"claims"`
	ExperimentResults ExperimentResults `json:"experiment_results"`
	Inventors         string            `json:"inventors"`
	NoveltyNotes      string            `json:"novelty_notes"`
	Provenance
}
