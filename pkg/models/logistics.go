package models

import "time"

// Delivery statuses.
const (
	DeliveryPreparing = "preparing"
	DeliveryInTransit = "in_transit"
	DeliveryDelivered = "delivered"
	DeliveryDelayed   = "delayed"
)

// ValidDeliveryStatuses are the statuses accepted by the mutation surface.
var ValidDeliveryStatuses = map[string]bool{
	DeliveryPreparing: true,
	DeliveryInTransit: true,
	DeliveryDelivered: true,
	DeliveryDelayed:   true,
}

// Delivery ships a completed work order to its destination.
type Delivery struct {
	ID               string     `json:"id"`
	WorkOrderID      string     `json:"work_order_id"`
	Origin           string     `json:"origin"`
	Destination      string     `json:"destination"`
	Carrier          string     `json:"carrier"`
	Status           string     `json:"status"`
	EstimatedArrival time.Time  `json:"estimated_arrival"`
	ActualArrival    *time.Time `json:"actual_arrival"`
	Provenance
}

// ChecklistTotal is the fixed number of installation checklist steps.
const ChecklistTotal = 5

// InstallationChecklist is the fixed 5-step on-site installation checklist.
type InstallationChecklist struct {
	FoundationCheck    bool `json:"foundation_check"`
	UtilityConnections bool `json:"utility_connections"`
	ModuleAlignment    bool `json:"module_alignment"`
	SmartSystemBoot    bool `json:"smart_system_boot"`
	FinalInspection    bool `json:"final_inspection"`
}

// CompletedCount returns how many checklist steps are done.
func (c InstallationChecklist) CompletedCount() int {
	n := 0
	for _, done := range []bool{
		c.FoundationCheck,
		c.UtilityConnections,
		c.ModuleAlignment,
		c.SmartSystemBoot,
		c.FinalInspection,
	} {
		if done {
			n++
		}
	}
	return n
}

// CompletionPct returns checklist completion as a percentage.
func (c InstallationChecklist) CompletionPct() float64 {
	return float64(c.CompletedCount()) / float64(ChecklistTotal) * 100
}

// DeploymentJob installs a delivered unit at its site.
type DeploymentJob struct {
	ID                string                `json:"id"`
	DeliveryID        string                `json:"delivery_id"`
	SiteAddress       string                `json:"site_address"`
	Status            string                `json:"status"`
	Checklist         InstallationChecklist `json:"installation_checklist"`
	CommissioningDate string                `json:"commissioning_date"`
	CrewLead          string                `json:"crew_lead"`
	Provenance
}
