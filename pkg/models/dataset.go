package models

// Dataset is the full generated collection graph. Ownership is by value: the
// generator builds it once and hands it to the caller; nothing mutates it in
// place afterwards. Mutation endpoints operate on copies taken by the
// repositories.
type Dataset struct {
	Suppliers        []Supplier        `json:"suppliers"`
	Materials        []Material        `json:"materials"`
	HouseConfigs     []HouseConfig     `json:"house_configs"`
	Frameworks       []Framework       `json:"frameworks"`
	Patents          []Patent          `json:"patents"`
	Leads            []Lead            `json:"leads"`
	Opportunities    []Opportunity     `json:"opportunities"`
	Contracts        []Contract        `json:"contracts"`
	BOMs             []BOM             `json:"boms"`
	ProductionLines  []ProductionLine  `json:"production_lines"`
	WorkOrders       []WorkOrder       `json:"work_orders"`
	InventoryItems   []InventoryItem   `json:"inventory_items"`
	QARecords        []QARecord        `json:"qa_records"`
	Deliveries       []Delivery        `json:"deliveries"`
	DeploymentJobs   []DeploymentJob   `json:"deployment_jobs"`
	Partners         []Partner         `json:"partners"`
	CapacityPlans    []CapacityPlan    `json:"capacity_plans"`
	PartnerQuotes    []PartnerQuote    `json:"partner_quotes"`
	HomeUnits        []HomeUnit        `json:"home_units"`
	TelemetryEvents  []TelemetryEvent  `json:"telemetry_events"`
	TimeSeriesData   []TimeSeriesPoint `json:"time_series_data"`
	QAOutlierRecords []QAOutlierRecord `json:"qa_outlier_records"`
	InsightReports   []InsightReport   `json:"insight_reports"`
	FactoryScene     FactoryScene      `json:"factory_scene"`
}

// Collections returns the dataset keyed by collection name, the boundary the
// routing layer consumes. Every value is a record slice except
// "factory_scene", which is a single nested object.
func (d *Dataset) Collections() map[string]any {
	return map[string]any{
		"suppliers":          d.Suppliers,
		"materials":          d.Materials,
		"house_configs":      d.HouseConfigs,
		"frameworks":         d.Frameworks,
		"patents":            d.Patents,
		"leads":              d.Leads,
		"opportunities":      d.Opportunities,
		"contracts":          d.Contracts,
		"boms":               d.BOMs,
		"production_lines":   d.ProductionLines,
		"work_orders":        d.WorkOrders,
		"inventory_items":    d.InventoryItems,
		"qa_records":         d.QARecords,
		"deliveries":         d.Deliveries,
		"deployment_jobs":    d.DeploymentJobs,
		"partners":           d.Partners,
		"capacity_plans":     d.CapacityPlans,
		"partner_quotes":     d.PartnerQuotes,
		"home_units":         d.HomeUnits,
		"telemetry_events":   d.TelemetryEvents,
		"time_series_data":   d.TimeSeriesData,
		"qa_outlier_records": d.QAOutlierRecords,
		"insight_reports":    d.InsightReports,
		"factory_scene":      d.FactoryScene,
	}
}
