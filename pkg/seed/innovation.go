package seed

import (
	"fmt"
	"strings"

	"github.com/iamgoncalo/ecoplanta2/pkg/models"
)

type patentSeed struct {
	title  string
	filing string
	status string
}

var patentSeeds = []patentSeed{
	{"Modular CLT-Steel Hybrid Connector for Seismic Resilience", "EP-2024-001234", "granted"},
	{"Self-Healing Bio-Concrete Mix with Bacillus Subtilis Integration", "EP-2024-001567", "granted"},
	{"Adaptive Smart Glass Facade with Electrochromic Control System", "EP-2025-002345", "pending"},
	{"Phase-Change Material Thermal Storage for Modular Housing", "EP-2025-002789", "pending"},
	{"Graphene-Enhanced Waterproofing Membrane for CLT Structures", "PT-2025-003456", "filed"},
	{"Piezoelectric Floor Tile Energy Harvesting System for Smart Homes", "EP-2025-004123", "filed"},
}

func (g *Generator) generatePatents() []models.Patent {
	items := make([]models.Patent, 0, len(patentSeeds))
	for i, p := range patentSeeds {
		summary := strings.ToLower(p.title)
		if len(summary) > 60 {
			summary = summary[:60]
		}
		items = append(items, models.Patent{
			ID:           DeriveID("patent", i),
			Title:        p.title,
			FilingNumber: p.filing,
			Status:       p.status,
			FilingDate:   g.s.date(2024, 2025).Format(dateLayout),
			Claims: models.PatentClaims{
				IndependentClaims: g.s.intBetween(2, 5),
				DependentClaims:   g.s.intBetween(5, 15),
				Summary:           "Novel approach to " + summary,
			},
			ExperimentResults: models.ExperimentResults{
				TestsConducted: g.s.intBetween(5, 20),
				SuccessRatePct: round1(g.s.uniform(88, 99.5)),
				PeerReviewed:   pick(g.s, true, false),
			},
			Inventors:    "Dr. Maria Santos, Eng. Pedro Almeida, Dr. Sofia Costa",
			NoveltyNotes: "First application of this technology in modular housing: " + p.title,
			Provenance:   g.provenance(),
		})
	}
	return items
}

type frameworkSeed struct {
	name        string
	ftype       string
	description string
	rating      string
}

var frameworkSeeds = []frameworkSeed{
	{
		"EcoFrame Hybrid CLT-Steel", "hybrid",
		"Patented hybrid cross-laminated timber and high-strength steel modular framing system for seismic zone IV compliance.",
		"A+",
	},
	{
		"BioFrame Self-Healing Concrete", "concrete",
		"Self-healing bio-concrete structural framework with embedded sensors for real-time stress monitoring.",
		"A",
	},
	{
		"NanoFrame Graphene-Enhanced", "composite",
		"Graphene-enhanced composite framework with superior strength-to-weight ratio and thermal performance.",
		"A+",
	},
	{
		"SmartFrame Adaptive Skin", "adaptive",
		"Adaptive building envelope framework integrating phase-change materials, smart glass, and piezoelectric harvesting.",
		"A",
	},
}

// Framework i borrows materials i*3..i*3+2 and patents (i*2+j) mod len by
// position. The slice rule is kept for compatibility with downstream
// consumers, but the ids resolve into the generated collections so
// referential closure holds.
func (g *Generator) generateFrameworks(materials []models.Material, patents []models.Patent) ([]models.Framework, error) {
	const materialsPerFramework = 3
	const patentsPerFramework = 2

	if len(materials) < len(frameworkSeeds)*materialsPerFramework {
		return nil, fmt.Errorf("frameworks generation requires %d materials, have %d",
			len(frameworkSeeds)*materialsPerFramework, len(materials))
	}
	if len(patents) == 0 {
		return nil, fmt.Errorf("frameworks generation requires at least one patent")
	}

	items := make([]models.Framework, 0, len(frameworkSeeds))
	for i, f := range frameworkSeeds {
		materialIDs := make([]string, 0, materialsPerFramework)
		for j := 0; j < materialsPerFramework; j++ {
			materialIDs = append(materialIDs, materials[i*materialsPerFramework+j].ID)
		}
		patentIDs := make([]string, 0, patentsPerFramework)
		for j := 0; j < patentsPerFramework; j++ {
			patentIDs = append(patentIDs, patents[(i*patentsPerFramework+j)%len(patents)].ID)
		}
		items = append(items, models.Framework{
			ID:               DeriveID("framework", i),
			Name:             f.name,
			FrameworkType:    f.ftype,
			Description:      f.description,
			StructuralRating: f.rating,
			MaterialIDs:      materialIDs,
			PatentIDs:        patentIDs,
			Provenance:       g.provenance(),
		})
	}
	return items, nil
}
