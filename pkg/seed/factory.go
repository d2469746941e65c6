package seed

import (
	"fmt"

	"github.com/iamgoncalo/ecoplanta2/pkg/models"
)

func (g *Generator) generateBOMs(houseConfigs []models.HouseConfig, materials []models.Material) ([]models.BOM, error) {
	if len(materials) == 0 {
		return nil, fmt.Errorf("bom generation requires at least one material")
	}
	items := make([]models.BOM, 0, len(houseConfigs))
	for i, hc := range houseConfigs {
		numItems := g.s.intBetween(8, 15)
		lines := make([]models.BOMItem, 0, numItems)
		total := 0.0
		for j := 0; j < numItems; j++ {
			mat := materials[j%len(materials)]
			qty := g.s.intBetween(1, 50)
			unitCost := round2(g.s.uniform(50, 5000))
			lineCost := round2(float64(qty) * unitCost)
			total += lineCost
			lines = append(lines, models.BOMItem{
				MaterialID:   mat.ID,
				MaterialName: mat.Name,
				Quantity:     qty,
				Unit:         "units",
				UnitCost:     unitCost,
				LineCost:     lineCost,
			})
		}
		items = append(items, models.BOM{
			ID:            DeriveID("bom", i),
			HouseConfigID: hc.ID,
			Version:       1,
			Items:         lines,
			TotalCost:     round2(total),
			Status:        pick(g.s, "draft", "approved", "in_production"),
			Provenance:    g.provenance(),
		})
	}
	return items, nil
}

type productionLineSeed struct {
	name     string
	location string
	capacity int
}

var productionLineSeeds = []productionLineSeed{
	{"Line A - CLT Assembly", "Figueira da Foz, Portugal", 3},
	{"Line B - Steel Framing", "Figueira da Foz, Portugal", 2},
	{"Line C - Module Integration", "Figueira da Foz, Portugal", 4},
	{"Line D - Smart Systems Install", "Figueira da Foz, Portugal", 5},
}

func (g *Generator) generateProductionLines() []models.ProductionLine {
	items := make([]models.ProductionLine, 0, len(productionLineSeeds))
	for i, pl := range productionLineSeeds {
		items = append(items, models.ProductionLine{
			ID:                  DeriveID("production_line", i),
			Name:                pl.name,
			Location:            pl.location,
			CapacityUnitsPerDay: pl.capacity,
			Status:              pick(g.s, "idle", "running", "running", "running"),
			CurrentWorkOrderID:  nil,
			Provenance:          g.provenance(),
		})
	}
	return items
}

// workOrderStatusCycle assigns statuses positionally so the QA, delivery and
// deployment collection sizes are fixed functions of the BOM count.
var workOrderStatusCycle = []string{
	models.WorkOrderPlanned,
	models.WorkOrderScheduled,
	models.WorkOrderInProgress,
	models.WorkOrderCompleted,
}

func (g *Generator) generateWorkOrders(boms []models.BOM, lines []models.ProductionLine) ([]models.WorkOrder, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("work order generation requires at least one production line")
	}
	items := make([]models.WorkOrder, 0, len(boms))
	for i, bom := range boms {
		start := g.s.datetime(2025, 2025)
		end := start.AddDate(0, 0, g.s.intBetween(5, 30))
		status := workOrderStatusCycle[i%len(workOrderStatusCycle)]
		wo := models.WorkOrder{
			ID:               DeriveID("work_order", i),
			BOMID:            bom.ID,
			ProductionLineID: lines[i%len(lines)].ID,
			Status:           status,
			Priority:         g.s.intBetween(1, 5),
			ScheduledStart:   start,
			ScheduledEnd:     end,
			Provenance:       g.provenance(),
		}
		if status == models.WorkOrderInProgress || status == models.WorkOrderCompleted {
			s := start
			wo.ActualStart = &s
		}
		if status == models.WorkOrderCompleted {
			e := end
			wo.ActualEnd = &e
		}
		items = append(items, wo)
	}
	return items, nil
}

func (g *Generator) generateInventoryItems(materials []models.Material) []models.InventoryItem {
	warehouses := []string{
		"Armazem Principal - Figueira da Foz",
		"Armazem Smart Materials - Coimbra",
	}
	items := make([]models.InventoryItem, 0, len(materials))
	for i, mat := range materials {
		unit := "kg"
		if mat.Category == "glazing" || mat.Category == "energy" {
			unit = "units"
		}
		items = append(items, models.InventoryItem{
			ID:         DeriveID("inventory", i),
			MaterialID: mat.ID,
			Warehouse:  warehouses[i%len(warehouses)],
			Quantity:   round1(g.s.uniform(100, 10_000)),
			Unit:       unit,
			MinStock:   round1(g.s.uniform(50, 500)),
			MaxStock:   round1(g.s.uniform(10_000, 50_000)),
			Provenance: g.provenance(),
		})
	}
	return items
}

var qaInspectors = []string{
	"Eng. Ana Ferreira",
	"Eng. Joao Oliveira",
	"Eng. Catarina Sousa",
	"Eng. Miguel Rocha",
}

func workOrderInspectable(status string) bool {
	return status == models.WorkOrderCompleted || status == models.WorkOrderInProgress
}

func (g *Generator) generateQARecords(workOrders []models.WorkOrder) []models.QARecord {
	var items []models.QARecord
	for i, wo := range workOrders {
		if !workOrderInspectable(wo.Status) {
			continue
		}
		defects := []models.Defect{}
		if g.s.num.Float64() <= 0.2 {
			defects = append(defects, models.Defect{
				Type:        "cosmetic",
				Description: "Minor surface scratch on module panel",
				Severity:    "low",
			})
		}
		items = append(items, models.QARecord{
			ID:          DeriveID("qa_record", i),
			WorkOrderID: wo.ID,
			Inspector:   qaInspectors[i%len(qaInspectors)],
			Result:      pick(g.s, "pass", "pass", "pass", "minor_defect"),
			Defects:     defects,
			Notes:       "Quality inspection completed per EcoContainer QA-001 standard.",
			InspectedAt: g.s.datetime(2025, 2025),
			Provenance:  g.provenance(),
		})
	}
	return items
}

// generateQAOutliers produces the anomaly-detection variant of the QA data:
// every 7th inspectable work order fails with multiple high-severity defects.
func (g *Generator) generateQAOutliers(workOrders []models.WorkOrder) []models.QAOutlierRecord {
	var items []models.QAOutlierRecord
	idx := 0
	for i, wo := range workOrders {
		if !workOrderInspectable(wo.Status) {
			continue
		}
		var defects []models.Defect
		var result string
		if idx%7 == 6 {
			defects = []models.Defect{
				{Type: "structural", Description: "Major alignment deviation detected", Severity: "high"},
				{Type: "cosmetic", Description: "Surface damage on panel", Severity: "medium"},
				{Type: "functional", Description: "Smart system connectivity failure", Severity: "high"},
			}
			result = "fail"
		} else {
			defects = []models.Defect{}
			if g.s.num.Float64() <= 0.2 {
				defects = append(defects, models.Defect{
					Type:        "cosmetic",
					Description: "Minor surface scratch on module panel",
					Severity:    "low",
				})
			}
			result = pick(g.s, "pass", "pass", "pass", "minor_defect")
		}
		items = append(items, models.QAOutlierRecord{
			QARecord: models.QARecord{
				ID:          DeriveID("qa_outlier", idx),
				WorkOrderID: wo.ID,
				Inspector:   qaInspectors[i%len(qaInspectors)],
				Result:      result,
				Defects:     defects,
				Notes:       "Quality inspection per EcoContainer QA-001.",
				InspectedAt: g.s.datetime(2025, 2025),
				Provenance:  g.provenance(),
			},
			DefectCount: len(defects),
		})
		idx++
	}
	return items
}
