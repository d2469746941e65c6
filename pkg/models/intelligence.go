package models

import "time"

// TelemetryPayload is the decoded sensor reading of a telemetry event.
type TelemetryPayload struct {
	Value    float64 `json:"value"`
	Unit     string  `json:"unit"`
	SensorID string  `json:"sensor_id"`
}

// TelemetryEvent is one sensor reading from an installed home unit.
type TelemetryEvent struct {
	ID         string           `json:"id"`
	HomeUnitID string           `json:"home_unit_id"`
	EventType  string           `json:"event_type"`
	Payload    TelemetryPayload `json:"payload"`
	Timestamp  time.Time        `json:"timestamp"`
	Provenance
}

// TimeSeriesPoint is one observation in a forecasting series.
type TimeSeriesPoint struct {
	ID          string  `json:"id"`
	Metric      string  `json:"metric"`
	Period      string  `json:"period"`
	Value       float64 `json:"value"`
	WorkOrderID *string `json:"work_order_id"`
	Provenance
}

// KeyMetrics are the headline numbers of an insight report.
type KeyMetrics struct {
	Primary   float64 `json:"primary"`
	Secondary float64 `json:"secondary"`
	Trend     string  `json:"trend"`
}

// ReportParameters describe the inputs an insight report was generated with.
type ReportParameters struct {
	Period      string            `json:"period"`
	Granularity string            `json:"granularity"`
	Filters     map[string]string `json:"filters"`
}

// ReportResults hold the findings of an insight report.
type ReportResults struct {
	Summary         string     `json:"summary"`
	KeyMetrics      KeyMetrics `json:"key_metrics"`
	Recommendations []string   `json:"recommendations"`
}

// InsightReport is a pre-computed analytics report for one business module.
type InsightReport struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Module      string           `json:"module"`
	ReportType  string           `json:"report_type"`
	Parameters  ReportParameters `json:"parameters"`
	Results     ReportResults    `json:"results"`
	GeneratedAt time.Time        `json:"generated_at"`
	Provenance
}
