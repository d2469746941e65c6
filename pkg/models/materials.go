package models

// Supplier is an EU materials supplier.
type Supplier struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Country        string  `json:"country"`
	Rating         float64 `json:"rating"`
	LeadTimeDays   int     `json:"lead_time_days"`
	Certifications string  `json:"certifications"`
	ContactEmail   string  `json:"contact_email"`
	Provenance
}

// Material is a construction material in the high-quality catalog.
type Material struct {
	ID                  string  `json:"id"`
	SupplierID          string  `json:"supplier_id"`
	Name                string  `json:"name"`
	Category            string  `json:"category"`
	Grade               string  `json:"grade"`
	Density             float64 `json:"density"`
	TensileStrength     float64 `json:"tensile_strength"`
	ThermalConductivity float64 `json:"thermal_conductivity"`
	EmbodiedCarbonKg    float64 `json:"embodied_carbon_kg"`
	IsSmartMaterial     bool    `json:"is_smart_material"`
	ComplianceCerts     string  `json:"compliance_certs"`
	Provenance
}

// InventoryItem is warehouse stock for a material.
type InventoryItem struct {
	ID         string  `json:"id"`
	MaterialID string  `json:"material_id"`
	Warehouse  string  `json:"warehouse"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	MinStock   float64 `json:"min_stock"`
	MaxStock   float64 `json:"max_stock"`
	Provenance
}
