package models

import "time"

// BOMItem is one material line in a bill of materials.
type BOMItem struct {
	MaterialID   string  `json:"material_id"`
	MaterialName string  `json:"material_name"`
	Quantity     int     `json:"quantity"`
	Unit         string  `json:"unit"`
	UnitCost     float64 `json:"unit_cost"`
	LineCost     float64 `json:"line_cost"`
}

// BOM is a versioned bill of materials for a house config.
type BOM struct {
	ID            string    `json:"id"`
	HouseConfigID string    `json:"house_config_id"`
	Version       int       `json:"version"`
	Items         []BOMItem `json:"items"`
	TotalCost     float64   `json:"total_cost"`
	Status        string    `json:"status"`
	Provenance
}

// ProductionLine is one factory assembly line.
type ProductionLine struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Location            string  `json:"location"`
	CapacityUnitsPerDay int     `json:"capacity_units_per_day"`
	Status              string  `json:"status"`
	CurrentWorkOrderID  *string `json:"current_workorder_id"`
	Provenance
}

// Work order execution statuses.
const (
	WorkOrderPlanned      = "planned"
	WorkOrderScheduled    = "scheduled"
	WorkOrderInProgress   = "in_progress"
	WorkOrderQualityCheck = "quality_check"
	WorkOrderCompleted    = "completed"
	WorkOrderOnHold       = "on_hold"
)

// ValidWorkOrderStatuses are the statuses accepted by the mutation surface.
var ValidWorkOrderStatuses = map[string]bool{
	WorkOrderPlanned:      true,
	WorkOrderScheduled:    true,
	WorkOrderInProgress:   true,
	WorkOrderQualityCheck: true,
	WorkOrderCompleted:    true,
	WorkOrderOnHold:       true,
}

// WorkOrder schedules a BOM onto a production line.
type WorkOrder struct {
	ID               string     `json:"id"`
	BOMID            string     `json:"bom_id"`
	ProductionLineID string     `json:"production_line_id"`
	Status           string     `json:"status"`
	Priority         int        `json:"priority"`
	ScheduledStart   time.Time  `json:"scheduled_start"`
	ScheduledEnd     time.Time  `json:"scheduled_end"`
	ActualStart      *time.Time `json:"actual_start"`
	ActualEnd        *time.Time `json:"actual_end"`
	Provenance
}

// Defect is a single QA finding.
type Defect struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// QARecord is a quality inspection of a work order.
type QARecord struct {
	ID          string    `json:"id"`
	WorkOrderID string    `json:"work_order_id"`
	Inspector   string    `json:"inspector"`
	Result      string    `json:"result"`
	Defects     []Defect  `json:"defects"`
	Notes       string    `json:"notes"`
	InspectedAt time.Time `json:"inspected_at"`
	Provenance
}

// QAOutlierRecord is a QA record enriched with a defect count, generated with
// deliberate outliers for anomaly-detection demos.
type QAOutlierRecord struct {
	QARecord
	DefectCount int `json:"defect_count"`
}
