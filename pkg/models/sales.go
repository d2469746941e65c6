package models

// Lead pipeline statuses, in pipeline order.
const (
	LeadStatusNew         = "new"
	LeadStatusContacted   = "contacted"
	LeadStatusQualified   = "qualified"
	LeadStatusProposal    = "proposal"
	LeadStatusNegotiation = "negotiation"
	LeadStatusWon         = "won"
	LeadStatusLost        = "lost"
)

// ValidLeadStatuses is the full 7-state lead status enum.
var ValidLeadStatuses = map[string]bool{
	LeadStatusNew:         true,
	LeadStatusContacted:   true,
	LeadStatusQualified:   true,
	LeadStatusProposal:    true,
	LeadStatusNegotiation: true,
	LeadStatusWon:         true,
	LeadStatusLost:        true,
}

// Lead is a sales pipeline lead.
type Lead struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Company       string  `json:"company"`
	Status        string  `json:"status"`
	Score         int     `json:"score"`
	AssignedTo    string  `json:"assigned_to"`
	Region        string  `json:"region"`
	PipelineValue float64 `json:"pipeline_value"`
	Notes         string  `json:"notes"`
	Provenance
}

// Opportunity stages.
const (
	StageDiscovery   = "discovery"
	StageProposal    = "proposal"
	StageNegotiation = "negotiation"
	StageClosedWon   = "closed_won"
	StageClosedLost  = "closed_lost"
)

// Opportunity is a qualified lead under active negotiation.
type Opportunity struct {
	ID            string  `json:"id"`
	LeadID        string  `json:"lead_id"`
	Title         string  `json:"title"`
	Value         float64 `json:"value"`
	Stage         string  `json:"stage"`
	Probability   float64 `json:"probability"`
	ExpectedClose string  `json:"expected_close"`
	Provenance
}

// Contract is a signed or pending housing contract.
type Contract struct {
	ID            string  `json:"id"`
	OpportunityID string  `json:"opportunity_id"`
	Number        string  `json:"number"`
	Value         float64 `json:"value"`
	Status        string  `json:"status"`
	SignedDate    *string `json:"signed_date"`
	Terms         string  `json:"terms"`
	Provenance
}
