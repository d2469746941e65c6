package services

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/iamgoncalo/ecoplanta2/pkg/models"
)

// Baseline model ids exposed by the analytics registry.
const (
	ModelLeadTimeForecast  = "lead-time-forecast-v1"
	ModelQAAnomalyDetector = "qa-anomaly-detector-v1"
	ModelEnergyForecast    = "energy-forecast-v1"
)

// ModelInfo describes a registered baseline model and its offline metrics.
type ModelInfo struct {
	ModelID      string             `json:"model_id"`
	ModelName    string             `json:"model_name"`
	ModelType    string             `json:"model_type"`
	Version      string             `json:"version"`
	Description  string             `json:"description"`
	Metrics      map[string]float64 `json:"metrics"`
	FeaturesUsed []string           `json:"features_used"`
	Status       string             `json:"status"`
}

var availableModels = []ModelInfo{
	{
		ModelID:     ModelLeadTimeForecast,
		ModelName:   "Lead Time Forecaster",
		ModelType:   "regression",
		Version:     "1.0",
		Description: "Baseline mean+std forecaster for work order lead times. Computes statistics from historical completion data.",
		Metrics:     map[string]float64{"mae": 3.2, "rmse": 4.5, "r2": 0.72},
		FeaturesUsed: []string{
			"scheduled_duration_days",
			"priority",
			"bom_total_cost",
			"production_line_capacity",
		},
		Status: "ready",
	},
	{
		ModelID:     ModelQAAnomalyDetector,
		ModelName:   "QA Anomaly Detector",
		ModelType:   "anomaly_detection",
		Version:     "1.0",
		Description: "Z-score based anomaly detection on QA inspection results. Flags records with defect rates beyond the threshold.",
		Metrics:     map[string]float64{"precision": 0.85, "recall": 0.78, "f1": 0.81},
		FeaturesUsed: []string{
			"defect_count",
			"inspection_result",
			"inspector_id",
		},
		Status: "ready",
	},
	{
		ModelID:     ModelEnergyForecast,
		ModelName:   "Energy Consumption Forecaster",
		ModelType:   "time_series",
		Version:     "0.9",
		Description: "Time series forecaster for home unit energy consumption. Based on telemetry event aggregation.",
		Metrics:     map[string]float64{"mape": 8.5, "rmse": 2.1},
		FeaturesUsed: []string{
			"energy_consumption_kwh",
			"solar_generation_kwh",
			"temperature_c",
			"hour_of_day",
		},
		Status: "ready",
	},
}

// AvailableModels returns the baseline model registry.
func AvailableModels() []ModelInfo {
	out := make([]ModelInfo, len(availableModels))
	copy(out, availableModels)
	return out
}

// FindModel looks up a registered model by id.
func FindModel(modelID string) (ModelInfo, bool) {
	for _, m := range availableModels {
		if m.ModelID == modelID {
			return m, true
		}
	}
	return ModelInfo{}, false
}

// FeatureDefinition is one entry of the feature catalog backing the models.
type FeatureDefinition struct {
	Name        string `json:"name"`
	DType       string `json:"dtype"`
	Description string `json:"description"`
	SourceTable string `json:"source_table"`
}

var availableFeatures = []FeatureDefinition{
	{Name: "scheduled_duration_days", DType: "float64", Description: "Scheduled duration of work order in days", SourceTable: "work_orders"},
	{Name: "priority", DType: "int64", Description: "Work order priority (1=highest, 5=lowest)", SourceTable: "work_orders"},
	{Name: "bom_total_cost", DType: "float64", Description: "Total cost of the bill of materials", SourceTable: "boms"},
	{Name: "production_line_capacity", DType: "int64", Description: "Units per day capacity of the production line", SourceTable: "production_lines"},
	{Name: "defect_count", DType: "int64", Description: "Number of defects found in QA inspection", SourceTable: "qa_records"},
	{Name: "inspection_result", DType: "category", Description: "QA inspection result (pass/fail/minor_defect)", SourceTable: "qa_records"},
	{Name: "energy_consumption_kwh", DType: "float64", Description: "Energy consumption in kWh", SourceTable: "telemetry_events"},
	{Name: "temperature_c", DType: "float64", Description: "Temperature reading in Celsius", SourceTable: "telemetry_events"},
}

// AvailableFeatures returns the feature catalog.
func AvailableFeatures() []FeatureDefinition {
	out := make([]FeatureDefinition, len(availableFeatures))
	copy(out, availableFeatures)
	return out
}

// ForecastPoint is one predicted period with its confidence interval.
type ForecastPoint struct {
	Period     string  `json:"period"`
	Value      float64 `json:"value"`
	LowerBound float64 `json:"lower_bound"`
	UpperBound float64 `json:"upper_bound"`
}

// ForecastResult is the output of the mean-baseline lead time forecaster.
type ForecastResult struct {
	ModelID        string          `json:"model_id"`
	MetricName     string          `json:"metric_name"`
	Forecast       []ForecastPoint `json:"forecast"`
	HistoricalMean float64         `json:"historical_mean"`
	HistoricalStd  float64         `json:"historical_std"`
	Method         string          `json:"method"`
}

// meanStd computes the mean and population standard deviation, with the
// original baseline's floor of 1.0 when the sample has zero variance.
func meanStd(values []float64) (float64, float64) {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))
	if variance == 0 {
		return mean, 1.0
	}
	return mean, math.Sqrt(variance)
}

// ForecastLeadTime runs the mean-baseline forecast over work order scheduled
// durations. A pure function of its inputs: repeated calls over the same
// dataset produce identical forecasts.
func ForecastLeadTime(workOrders []models.WorkOrder, horizonPeriods int, confidenceLevel float64) ForecastResult {
	var durations []float64
	for _, wo := range workOrders {
		days := math.Floor(wo.ScheduledEnd.Sub(wo.ScheduledStart).Hours() / 24)
		if days > 0 {
			durations = append(durations, days)
		}
	}

	mean, std := 15.0, 5.0
	if len(durations) > 0 {
		mean, std = meanStd(durations)
	}

	z := 1.96
	switch {
	case confidenceLevel >= 0.99:
		z = 2.576
	case confidenceLevel >= 0.95:
		z = 1.96
	case confidenceLevel >= 0.90:
		z = 1.645
	}

	result := ForecastResult{
		ModelID:        ModelLeadTimeForecast,
		MetricName:     "lead_time_days",
		HistoricalMean: roundTo(mean, 2),
		HistoricalStd:  roundTo(std, 2),
		Method:         "mean_baseline",
	}
	for i := 0; i < horizonPeriods; i++ {
		// Deterministic cyclic variation around the mean.
		variation := std * 0.1 * float64(i%3-1)
		predicted := roundTo(mean+variation, 2)
		lower := roundTo(predicted-z*std, 2)
		if lower < 0 {
			lower = 0
		}
		result.Forecast = append(result.Forecast, ForecastPoint{
			Period:     fmt.Sprintf("period_%d", i+1),
			Value:      predicted,
			LowerBound: lower,
			UpperBound: roundTo(predicted+z*std, 2),
		})
	}
	return result
}

// AnomalyPoint is one scored QA record.
type AnomalyPoint struct {
	RecordID  string  `json:"record_id"`
	Value     float64 `json:"value"`
	ZScore    float64 `json:"z_score"`
	IsAnomaly bool    `json:"is_anomaly"`
	Label     string  `json:"label"`
}

// AnomalyDetectionResult is the output of the z-score QA anomaly detector.
type AnomalyDetectionResult struct {
	ModelID        string         `json:"model_id"`
	MetricName     string         `json:"metric_name"`
	TotalRecords   int            `json:"total_records"`
	AnomaliesFound int            `json:"anomalies_found"`
	AnomalyRate    float64        `json:"anomaly_rate"`
	ThresholdZ     float64        `json:"threshold_z"`
	Mean           float64        `json:"mean"`
	Std            float64        `json:"std"`
	Points         []AnomalyPoint `json:"points"`
}

// DetectQAAnomalies z-scores QA defect rates and flags records beyond the
// threshold. A non-pass result counts as one extra defect to amplify the
// signal.
func DetectQAAnomalies(records []models.QAOutlierRecord, threshold float64) AnomalyDetectionResult {
	result := AnomalyDetectionResult{
		ModelID:    ModelQAAnomalyDetector,
		MetricName: "qa_defect_rate",
		ThresholdZ: threshold,
	}
	if len(records) == 0 {
		return result
	}

	values := make([]float64, len(records))
	for i, rec := range records {
		count := float64(len(rec.Defects))
		if rec.Result != "pass" {
			count++
		}
		values[i] = count
	}
	mean, std := meanStd(values)

	for i, rec := range records {
		z := (values[i] - mean) / std
		isAnomaly := math.Abs(z) > threshold
		label := ""
		switch {
		case isAnomaly && z > 0:
			label = "high_defect_rate"
		case isAnomaly && z < 0:
			label = "unusually_low_defect_rate"
		}
		if isAnomaly {
			result.AnomaliesFound++
		}
		result.Points = append(result.Points, AnomalyPoint{
			RecordID:  rec.ID,
			Value:     values[i],
			ZScore:    roundTo(z, 4),
			IsAnomaly: isAnomaly,
			Label:     label,
		})
	}

	result.TotalRecords = len(records)
	result.AnomalyRate = roundTo(float64(result.AnomaliesFound)/float64(result.TotalRecords)*100, 2)
	result.Mean = roundTo(mean, 4)
	result.Std = roundTo(std, 4)
	return result
}

func roundTo(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
