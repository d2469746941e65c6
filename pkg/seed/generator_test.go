package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamgoncalo/ecoplanta2/pkg/models"
)

func TestGenerateAllDeterministic(t *testing.T) {
	first, err := New(42).GenerateAll()
	require.NoError(t, err)
	second, err := New(42).GenerateAll()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateAllRepeatableWithinOneGenerator(t *testing.T) {
	g := New(42)
	first, err := g.GenerateAll()
	require.NoError(t, err)
	second, err := g.GenerateAll()
	require.NoError(t, err)

	// GenerateAll resets both streams, so the same generator reproduces
	// itself exactly.
	assert.Equal(t, first, second)
}

func TestGenerateAllSeedSensitivity(t *testing.T) {
	a, err := New(42).GenerateAll()
	require.NoError(t, err)
	b, err := New(99).GenerateAll()
	require.NoError(t, err)

	require.NotEmpty(t, a.Leads)
	require.NotEmpty(t, b.Leads)
	assert.NotEqual(t, a.Leads[0].Name, b.Leads[0].Name)
}

func TestGenerateAllEntityCounts(t *testing.T) {
	ds, err := New(42).GenerateAll()
	require.NoError(t, err)

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"suppliers", len(ds.Suppliers), 8},
		{"materials", len(ds.Materials), 14},
		{"house configs", len(ds.HouseConfigs), 6},
		{"frameworks", len(ds.Frameworks), 4},
		{"patents", len(ds.Patents), 6},
		{"leads", len(ds.Leads), 15},
		{"opportunities", len(ds.Opportunities), 9},
		{"contracts", len(ds.Contracts), 4},
		{"boms", len(ds.BOMs), 6},
		{"production lines", len(ds.ProductionLines), 4},
		{"work orders", len(ds.WorkOrders), 6},
		{"inventory items", len(ds.InventoryItems), 14},
		{"qa records", len(ds.QARecords), 2},
		{"deliveries", len(ds.Deliveries), 1},
		{"deployment jobs", len(ds.DeploymentJobs), 1},
		{"partners", len(ds.Partners), 8},
		{"capacity plans", len(ds.CapacityPlans), 96},
		{"partner quotes", len(ds.PartnerQuotes), 24},
		{"home units", len(ds.HomeUnits), 10},
		{"telemetry events", len(ds.TelemetryEvents), 20},
		{"time series points", len(ds.TimeSeriesData), 30},
		{"qa outlier records", len(ds.QAOutlierRecords), 2},
		{"insight reports", len(ds.InsightReports), 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestIdentityStableAcrossSeeds(t *testing.T) {
	a, err := New(42).GenerateAll()
	require.NoError(t, err)
	b, err := New(7).GenerateAll()
	require.NoError(t, err)

	// Record identity is derived from namespace and ordinal, never from the
	// seed: the nth entity keeps its id while its attributes change.
	assert.Equal(t, a.Leads[0].ID, b.Leads[0].ID)
	assert.Equal(t, a.Materials[5].ID, b.Materials[5].ID)
	assert.Equal(t, a.Partners[3].ID, b.Partners[3].ID)
}

func TestReferentialClosure(t *testing.T) {
	ds, err := New(42).GenerateAll()
	require.NoError(t, err)

	ids := func(extract func(*models.Dataset) []string) map[string]bool {
		set := make(map[string]bool)
		for _, id := range extract(ds) {
			set[id] = true
		}
		return set
	}
	supplierIDs := ids(func(d *models.Dataset) []string {
		out := make([]string, len(d.Suppliers))
		for i, s := range d.Suppliers {
			out[i] = s.ID
		}
		return out
	})
	materialIDs := ids(func(d *models.Dataset) []string {
		out := make([]string, len(d.Materials))
		for i, m := range d.Materials {
			out[i] = m.ID
		}
		return out
	})
	patentIDs := ids(func(d *models.Dataset) []string {
		out := make([]string, len(d.Patents))
		for i, p := range d.Patents {
			out[i] = p.ID
		}
		return out
	})
	leadIDs := ids(func(d *models.Dataset) []string {
		out := make([]string, len(d.Leads))
		for i, l := range d.Leads {
			out[i] = l.ID
		}
		return out
	})
	opportunityIDs := ids(func(d *models.Dataset) []string {
		out := make([]string, len(d.Opportunities))
		for i, o := range d.Opportunities {
			out[i] = o.ID
		}
		return out
	})
	houseConfigIDs := ids(func(d *models.Dataset) []string {
		out := make([]string, len(d.HouseConfigs))
		for i, hc := range d.HouseConfigs {
			out[i] = hc.ID
		}
		return out
	})
	bomIDs := ids(func(d *models.Dataset) []string {
		out := make([]string, len(d.BOMs))
		for i, b := range d.BOMs {
			out[i] = b.ID
		}
		return out
	})
	lineIDs := ids(func(d *models.Dataset) []string {
		out := make([]string, len(d.ProductionLines))
		for i, pl := range d.ProductionLines {
			out[i] = pl.ID
		}
		return out
	})
	workOrderIDs := ids(func(d *models.Dataset) []string {
		out := make([]string, len(d.WorkOrders))
		for i, wo := range d.WorkOrders {
			out[i] = wo.ID
		}
		return out
	})
	deliveryIDs := ids(func(d *models.Dataset) []string {
		out := make([]string, len(d.Deliveries))
		for i, dl := range d.Deliveries {
			out[i] = dl.ID
		}
		return out
	})
	partnerIDs := ids(func(d *models.Dataset) []string {
		out := make([]string, len(d.Partners))
		for i, p := range d.Partners {
			out[i] = p.ID
		}
		return out
	})
	homeUnitIDs := ids(func(d *models.Dataset) []string {
		out := make([]string, len(d.HomeUnits))
		for i, hu := range d.HomeUnits {
			out[i] = hu.ID
		}
		return out
	})

	for _, m := range ds.Materials {
		assert.True(t, supplierIDs[m.SupplierID], "material %s has dangling supplier %s", m.ID, m.SupplierID)
	}
	for _, fw := range ds.Frameworks {
		for _, id := range fw.MaterialIDs {
			assert.True(t, materialIDs[id], "framework %s has dangling material %s", fw.ID, id)
		}
		for _, id := range fw.PatentIDs {
			assert.True(t, patentIDs[id], "framework %s has dangling patent %s", fw.ID, id)
		}
	}
	for _, o := range ds.Opportunities {
		assert.True(t, leadIDs[o.LeadID], "opportunity %s has dangling lead %s", o.ID, o.LeadID)
	}
	for _, c := range ds.Contracts {
		assert.True(t, opportunityIDs[c.OpportunityID], "contract %s has dangling opportunity %s", c.ID, c.OpportunityID)
	}
	for _, b := range ds.BOMs {
		assert.True(t, houseConfigIDs[b.HouseConfigID], "bom %s has dangling house config %s", b.ID, b.HouseConfigID)
		for _, item := range b.Items {
			assert.True(t, materialIDs[item.MaterialID], "bom %s has dangling material %s", b.ID, item.MaterialID)
		}
	}
	for _, wo := range ds.WorkOrders {
		assert.True(t, bomIDs[wo.BOMID], "work order %s has dangling bom %s", wo.ID, wo.BOMID)
		assert.True(t, lineIDs[wo.ProductionLineID], "work order %s has dangling line %s", wo.ID, wo.ProductionLineID)
	}
	for _, inv := range ds.InventoryItems {
		assert.True(t, materialIDs[inv.MaterialID], "inventory %s has dangling material %s", inv.ID, inv.MaterialID)
	}
	for _, qa := range ds.QARecords {
		assert.True(t, workOrderIDs[qa.WorkOrderID], "qa record %s has dangling work order %s", qa.ID, qa.WorkOrderID)
	}
	for _, qa := range ds.QAOutlierRecords {
		assert.True(t, workOrderIDs[qa.WorkOrderID], "qa outlier %s has dangling work order %s", qa.ID, qa.WorkOrderID)
	}
	for _, dl := range ds.Deliveries {
		assert.True(t, workOrderIDs[dl.WorkOrderID], "delivery %s has dangling work order %s", dl.ID, dl.WorkOrderID)
	}
	for _, job := range ds.DeploymentJobs {
		assert.True(t, deliveryIDs[job.DeliveryID], "deployment job %s has dangling delivery %s", job.ID, job.DeliveryID)
	}
	for _, plan := range ds.CapacityPlans {
		assert.True(t, partnerIDs[plan.PartnerID], "capacity plan %s has dangling partner %s", plan.ID, plan.PartnerID)
	}
	for _, quote := range ds.PartnerQuotes {
		assert.True(t, partnerIDs[quote.PartnerID], "quote %s has dangling partner %s", quote.ID, quote.PartnerID)
	}
	for _, hu := range ds.HomeUnits {
		assert.True(t, houseConfigIDs[hu.HouseConfigID], "home unit %s has dangling house config %s", hu.ID, hu.HouseConfigID)
	}
	for _, ev := range ds.TelemetryEvents {
		assert.True(t, homeUnitIDs[ev.HomeUnitID], "telemetry event %s has dangling home unit %s", ev.ID, ev.HomeUnitID)
	}
	for _, ts := range ds.TimeSeriesData {
		if ts.WorkOrderID != nil {
			assert.True(t, workOrderIDs[*ts.WorkOrderID], "time series %s has dangling work order %s", ts.ID, *ts.WorkOrderID)
		}
	}
}

func TestProvenanceClosure(t *testing.T) {
	ds, err := New(42).GenerateAll()
	require.NoError(t, err)

	check := func(name string, p models.Provenance) {
		assert.Equal(t, models.SourceSyntheticGenerated, p.Source, "%s source", name)
		assert.Equal(t, "seed-42", p.SourceID, "%s source id", name)
		assert.Equal(t, logicalClock, p.CreatedAt, "%s created_at", name)
		assert.Equal(t, logicalClock, p.UpdatedAt, "%s updated_at", name)
	}

	for _, s := range ds.Suppliers {
		check("supplier", s.Provenance)
	}
	for _, m := range ds.Materials {
		check("material", m.Provenance)
	}
	for _, l := range ds.Leads {
		check("lead", l.Provenance)
	}
	for _, wo := range ds.WorkOrders {
		check("work order", wo.Provenance)
	}
	for _, p := range ds.Partners {
		check("partner", p.Provenance)
	}
	for _, r := range ds.InsightReports {
		check("insight report", r.Provenance)
	}
	for _, ev := range ds.TelemetryEvents {
		check("telemetry event", ev.Provenance)
	}
}

func TestBannedTermsExcluded(t *testing.T) {
	ds, err := New(42).GenerateAll()
	require.NoError(t, err)

	for _, m := range ds.Materials {
		for _, term := range bannedMaterialTerms {
			assert.NotContains(t, strings.ToLower(m.Name), term)
			assert.NotContains(t, strings.ToLower(m.Category), term)
		}
	}
}

func TestContainsBannedMaterialTerm(t *testing.T) {
	assert.True(t, ContainsBannedMaterialTerm("Light Steel Frame Panel"))
	assert.True(t, ContainsBannedMaterialTerm("LSF"))
	assert.False(t, ContainsBannedMaterialTerm("Cross-Laminated Timber"))
}

func TestWorkOrderTimestampsMatchStatus(t *testing.T) {
	ds, err := New(42).GenerateAll()
	require.NoError(t, err)

	for _, wo := range ds.WorkOrders {
		switch wo.Status {
		case models.WorkOrderCompleted:
			assert.NotNil(t, wo.ActualStart, "completed work order %s missing actual start", wo.ID)
			assert.NotNil(t, wo.ActualEnd, "completed work order %s missing actual end", wo.ID)
		case models.WorkOrderInProgress:
			assert.NotNil(t, wo.ActualStart, "in-progress work order %s missing actual start", wo.ID)
			assert.Nil(t, wo.ActualEnd, "in-progress work order %s has actual end", wo.ID)
		default:
			assert.Nil(t, wo.ActualStart, "work order %s in %s has actual start", wo.ID, wo.Status)
			assert.Nil(t, wo.ActualEnd, "work order %s in %s has actual end", wo.ID, wo.Status)
		}
	}
}

func TestCollectionsKeys(t *testing.T) {
	ds, err := New(42).GenerateAll()
	require.NoError(t, err)

	collections := ds.Collections()
	assert.Len(t, collections, 24)
	for _, key := range []string{
		"suppliers", "materials", "house_configs", "frameworks", "patents",
		"leads", "opportunities", "contracts", "boms", "production_lines",
		"work_orders", "inventory_items", "qa_records", "deliveries",
		"deployment_jobs", "partners", "capacity_plans", "partner_quotes",
		"home_units", "telemetry_events", "time_series_data",
		"qa_outlier_records", "insight_reports", "factory_scene",
	} {
		assert.Contains(t, collections, key)
	}
}
