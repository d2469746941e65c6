package seed

import (
	"fmt"
	"strings"

	"github.com/iamgoncalo/ecoplanta2/pkg/models"
)

const timeSeriesCount = 30

// generateTimeSeries produces weekly lead-time observations with a seasonal
// component, suitable for forecasting demos.
func (g *Generator) generateTimeSeries(workOrders []models.WorkOrder) []models.TimeSeriesPoint {
	items := make([]models.TimeSeriesPoint, 0, timeSeriesCount)
	for i := 0; i < timeSeriesCount; i++ {
		var workOrderID *string
		if len(workOrders) > 0 {
			id := workOrders[i%len(workOrders)].ID
			workOrderID = &id
		}
		base := g.s.uniform(5, 30)
		seasonal := 3.0 * float64(i%7) / 7.0
		items = append(items, models.TimeSeriesPoint{
			ID:          DeriveID("time_series", i),
			Metric:      "lead_time_days",
			Period:      fmt.Sprintf("2025-W%02d", (i%52)+1),
			Value:       round2(base + seasonal),
			WorkOrderID: workOrderID,
			Provenance:  g.provenance(),
		})
	}
	return items
}

type insightReportSeed struct {
	title      string
	module     string
	reportType string
}

var insightReportSeeds = []insightReportSeed{
	{"Monthly Production Efficiency", "fabric", "kpi_dashboard"},
	{"Sales Pipeline Forecast Q3 2025", "sales", "forecast"},
	{"Material Cost Trend Analysis", "frameworks", "trend"},
	{"Smart Home Energy Optimization", "intelligence", "analysis"},
	{"Deployment Schedule Risk Assessment", "deploy", "risk"},
	{"Partner Capacity Utilization Report", "partners", "utilization"},
	{"Quality Defect Rate Trend", "fabric", "trend"},
	{"Carbon Footprint per Housing Unit", "intelligence", "sustainability"},
}

func (g *Generator) generateInsightReports() []models.InsightReport {
	items := make([]models.InsightReport, 0, len(insightReportSeeds))
	for i, r := range insightReportSeeds {
		items = append(items, models.InsightReport{
			ID:         DeriveID("insight", i),
			Title:      r.title,
			Module:     r.module,
			ReportType: r.reportType,
			Parameters: models.ReportParameters{
				Period:      "2025-Q3",
				Granularity: "monthly",
				Filters:     map[string]string{},
			},
			Results: models.ReportResults{
				Summary: fmt.Sprintf("Analysis of %s completed.", strings.ToLower(r.title)),
				KeyMetrics: models.KeyMetrics{
					Primary:   round1(g.s.uniform(60, 99)),
					Secondary: round1(g.s.uniform(40, 95)),
					Trend:     pick(g.s, "up", "stable", "down"),
				},
				Recommendations: []string{
					"Continue monitoring key indicators.",
					"Investigate outlier data points.",
				},
			},
			GeneratedAt: g.s.datetime(2025, 2025),
			Provenance:  g.provenance(),
		})
	}
	return items
}
