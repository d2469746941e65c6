package seed

import (
	"fmt"

	"github.com/iamgoncalo/ecoplanta2/pkg/models"
)

var leadCompanies = []string{
	"Grupo Pestana Hotels",
	"Sonae Sierra",
	"CBRE Portugal",
	"Merlin Properties",
	"Vanguard Properties",
	"JLL Portugal",
	"Habitat Invest",
	"Square Asset Management",
	"Explorer Investments",
	"Norfin SGFII",
	"Avenue Real Estate",
	"Kronos Real Estate",
	"Nexity Portugal",
	"Libertas Group",
	"Telhabel Construcoes",
}

var leadRegions = []string{"Lisboa", "Porto", "Algarve", "Centro", "Norte", "Alentejo"}

// leadStatusCycle assigns statuses positionally so downstream collection
// sizes never depend on random draws.
var leadStatusCycle = []string{
	models.LeadStatusNew,
	models.LeadStatusContacted,
	models.LeadStatusQualified,
	models.LeadStatusProposal,
	models.LeadStatusNegotiation,
	models.LeadStatusWon,
}

const leadCount = 15

func (g *Generator) generateLeads() []models.Lead {
	items := make([]models.Lead, 0, leadCount)
	for i := 0; i < leadCount; i++ {
		items = append(items, models.Lead{
			ID:            DeriveID("lead", i),
			Name:          g.s.text.Name(),
			Email:         g.s.text.Email(),
			Phone:         g.s.text.PhoneFormatted(),
			Company:       leadCompanies[i%len(leadCompanies)],
			Status:        leadStatusCycle[i%len(leadStatusCycle)],
			Score:         g.s.intBetween(20, 95),
			AssignedTo:    g.s.text.Name(),
			Region:        leadRegions[i%len(leadRegions)],
			PipelineValue: round2(g.s.uniform(120_000, 650_000)),
			Notes: fmt.Sprintf("Interested in Planta Smart Homes %s model.",
				pick(g.s, "T1", "T3", "T4+", "Studio", "Duplex")),
			Provenance: g.provenance(),
		})
	}
	return items
}

// opportunityStages is the 5-state opportunity stage enum. Stages are
// assigned positionally per opportunity ordinal; values and probabilities
// still come from the numeric stream.
var opportunityStages = []string{
	models.StageDiscovery,
	models.StageProposal,
	models.StageNegotiation,
	models.StageClosedWon,
	models.StageClosedLost,
}

func leadIsQualified(status string) bool {
	switch status {
	case models.LeadStatusQualified, models.LeadStatusProposal, models.LeadStatusNegotiation, models.LeadStatusWon:
		return true
	default:
		return false
	}
}

func (g *Generator) generateOpportunities(leads []models.Lead) []models.Opportunity {
	var items []models.Opportunity
	ordinal := 0
	for i, lead := range leads {
		if !leadIsQualified(lead.Status) {
			continue
		}
		items = append(items, models.Opportunity{
			ID:            DeriveID("opportunity", i),
			LeadID:        lead.ID,
			Title:         "Planta Smart Home - " + lead.Company,
			Value:         round2(g.s.uniform(120_000, 650_000)),
			Stage:         opportunityStages[ordinal%len(opportunityStages)],
			Probability:   round2(g.s.uniform(0.3, 0.95)),
			ExpectedClose: g.s.date(2025, 2026).Format(dateLayout),
			Provenance:    g.provenance(),
		})
		ordinal++
	}
	return items
}

func (g *Generator) generateContracts(opportunities []models.Opportunity) []models.Contract {
	var items []models.Contract
	idx := 0
	for _, opp := range opportunities {
		if opp.Stage != models.StageNegotiation && opp.Stage != models.StageClosedWon {
			continue
		}
		status := "pending"
		var signed *string
		if opp.Stage == models.StageClosedWon {
			status = "active"
			d := g.s.date(2025, 2025).Format(dateLayout)
			signed = &d
		}
		items = append(items, models.Contract{
			ID:            DeriveID("contract", idx),
			OpportunityID: opp.ID,
			Number:        fmt.Sprintf("ECO-2025-%04d", idx+1),
			Value:         opp.Value,
			Status:        status,
			SignedDate:    signed,
			Terms:         "Standard EcoContainer modular housing contract with 10-year structural warranty.",
			Provenance:    g.provenance(),
		})
		idx++
	}
	return items
}
