package seed

import (
	"fmt"

	"github.com/iamgoncalo/ecoplanta2/pkg/models"
)

type partnerSeed struct {
	name     string
	country  string
	region   string
	capacity int
}

var partnerSeeds = []partnerSeed{
	{"Modular Iberia SA", "Portugal", "Iberia", 20},
	{"Casas Modulares Espana SL", "Spain", "Iberia", 18},
	{"EcoBuild Deutschland GmbH", "Germany", "Central Europe", 25},
	{"Duurzaam Wonen BV", "Netherlands", "Benelux", 22},
	{"Green Homes France SAS", "France", "Western Europe", 18},
	{"Smart Living Italia SpA", "Italy", "Southern Europe", 12},
	{"EcoModul Polska Sp z o.o.", "Poland", "Central Europe", 16},
	{"NachhaltigBau GmbH", "Austria", "Central Europe", 14},
}

func (g *Generator) generatePartners() []models.Partner {
	items := make([]models.Partner, 0, len(partnerSeeds))
	for i, p := range partnerSeeds {
		items = append(items, models.Partner{
			ID:                    DeriveID("partner", i),
			Name:                  p.name,
			Country:               p.country,
			Region:                p.region,
			CapacityUnitsPerMonth: p.capacity,
			ComplianceDocs: models.ComplianceDocs{
				ISO9001:           true,
				ISO14001:          true,
				CEMark:            true,
				LocalBuildingCode: true,
			},
			ContactEmail: contactEmail("partnerships", p.name),
			Rating:       round1(g.s.uniform(3.5, 5.0)),
			LeadTimeDays: pick(g.s, 21, 30, 45, 60),
			Provenance:   g.provenance(),
		})
	}
	return items
}

func (g *Generator) generateCapacityPlans(partners []models.Partner) []models.CapacityPlan {
	items := make([]models.CapacityPlan, 0, len(partners)*12)
	idx := 0
	for _, partner := range partners {
		cap := partner.CapacityUnitsPerMonth
		for m := 1; m <= 12; m++ {
			alloc := g.s.intBetween(cap*3/10, cap)
			utilization := 0.0
			if cap > 0 {
				utilization = round1(float64(alloc) / float64(cap) * 100)
			}
			items = append(items, models.CapacityPlan{
				ID:             DeriveID("capacity_plan", idx),
				PartnerID:      partner.ID,
				Month:          fmt.Sprintf("2025-%02d", m),
				AllocatedUnits: alloc,
				AvailableUnits: cap - alloc,
				UtilizationPct: utilization,
				Provenance:     g.provenance(),
			})
			idx++
		}
	}
	return items
}

// quotesPerPartner is fixed so the quote collection size never depends on a
// random draw.
const quotesPerPartner = 3

func (g *Generator) generatePartnerQuotes(partners []models.Partner) []models.PartnerQuote {
	items := make([]models.PartnerQuote, 0, len(partners)*quotesPerPartner)
	idx := 0
	for _, partner := range partners {
		for q := 0; q < quotesPerPartner; q++ {
			units := g.s.intBetween(2, 15)
			pricePer := round2(g.s.uniform(3500, 8000))
			items = append(items, models.PartnerQuote{
				ID:           DeriveID("partner_quote", idx),
				PartnerID:    partner.ID,
				Units:        units,
				PricePerUnit: pricePer,
				TotalPrice:   round2(float64(units) * pricePer),
				LeadTimeDays: partner.LeadTimeDays + g.s.intBetween(-5, 10),
				ValidUntil:   g.s.date(2025, 2026).Format(dateLayout),
				Status:       pick(g.s, "active", "active", "expired"),
				Provenance:   g.provenance(),
			})
			idx++
		}
	}
	return items
}
