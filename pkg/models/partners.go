package models

// ComplianceDocs tracks which certifications a partner holds.
type ComplianceDocs struct {
	ISO9001           bool `json:"iso_9001"`
	ISO14001          bool `json:"iso_14001"`
	CEMark            bool `json:"ce_mark"`
	LocalBuildingCode bool `json:"local_building_code"`
}

// Partner is an EU manufacturing partner.
type Partner struct {
	ID                    string         `json:"id"`
	Name                  string         `json:"name"`
	Country               string         `json:"country"`
	Region                string         `json:"region"`
	CapacityUnitsPerMonth int            `json:"capacity_units_per_month"`
	ComplianceDocs        ComplianceDocs `json:"compliance_docs"`
	ContactEmail          string         `json:"contact_email"`
	Rating                float64        `json:"rating"`
	LeadTimeDays          int            `json:"lead_time_days"`
	Provenance
}

// CapacityPlan is one partner-month of allocated/available capacity.
type CapacityPlan struct {
	ID             string  `json:"id"`
	PartnerID      string  `json:"partner_id"`
	Month          string  `json:"month"`
	AllocatedUnits int     `json:"allocated_units"`
	AvailableUnits int     `json:"available_units"`
	UtilizationPct float64 `json:"utilization_pct"`
	Provenance
}

// PartnerQuote is a partner's offer for a unit order.
type PartnerQuote struct {
	ID           string  `json:"id"`
	PartnerID    string  `json:"partner_id"`
	Units        int     `json:"units"`
	PricePerUnit float64 `json:"price_per_unit"`
	TotalPrice   float64 `json:"total_price"`
	LeadTimeDays int     `json:"lead_time_days"`
	ValidUntil   string  `json:"valid_until"`
	Status       string  `json:"status"`
	Provenance
}
