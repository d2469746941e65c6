package seed

import (
	"fmt"
	"strings"

	"github.com/iamgoncalo/ecoplanta2/pkg/models"
)

type supplierSeed struct {
	name    string
	country string
	certs   string
}

var supplierSeeds = []supplierSeed{
	{"ArcelorMittal Iberica", "Portugal", "ISO 9001, ISO 14001, CE Mark"},
	{"Siemens Building Technologies", "Germany", "ISO 9001, ISO 50001, TUV"},
	{"BASF Construction Chemicals", "Germany", "ISO 9001, ISO 14001, REACH"},
	{"Saint-Gobain Portugal", "Portugal", "ISO 9001, CE Mark, EPD"},
	{"Kingspan Insulated Panels", "Ireland", "ISO 9001, ISO 14001, BRE A+"},
	{"Covestro High Performance", "Germany", "ISO 9001, ISO 14001, UL"},
	{"Stora Enso CLT Division", "Finland", "ISO 9001, FSC, PEFC, EPD"},
	{"REHAU Smart Infrastructure", "Germany", "ISO 9001, ISO 14001, CE Mark"},
}

func contactEmail(prefix, name string) string {
	slug := strings.ReplaceAll(strings.ToLower(name), " ", "")
	slug = strings.ReplaceAll(slug, ".", "")
	if len(slug) > 12 {
		slug = slug[:12]
	}
	return fmt.Sprintf("%s@%s.eu", prefix, slug)
}

func (g *Generator) generateSuppliers() []models.Supplier {
	items := make([]models.Supplier, 0, len(supplierSeeds))
	for i, s := range supplierSeeds {
		items = append(items, models.Supplier{
			ID:             DeriveID("supplier", i),
			Name:           s.name,
			Country:        s.country,
			Rating:         round1(g.s.uniform(4.0, 5.0)),
			LeadTimeDays:   pick(g.s, 7, 10, 14, 21, 28),
			Certifications: s.certs,
			ContactEmail:   contactEmail("sales", s.name),
			Provenance:     g.provenance(),
		})
	}
	return items
}

type materialSeed struct {
	name            string
	category        string
	grade           string
	density         float64
	tensileStrength float64
	thermalCond     float64
	carbonKg        float64
	smart           bool
	certs           string
}

// High-quality catalog only: no LSF, no weak materials. The generator
// enforces this against bannedMaterialTerms before emitting anything.
var materialSeeds = []materialSeed{
	{"Cross-Laminated Timber (CLT) Grade C24", "structural_timber", "C24", 470, 420, 0.12, 110, false, "EN 16351, CE Mark, FSC, EPD"},
	{"Ultra-High Performance Concrete (UHPC)", "smart_concrete", "UHPC-150", 2500, 150, 1.6, 280, false, "EN 206, CE Mark, EPD"},
	{"Aerogel Insulation Panel", "insulation_aerogel", "AeroTherm-Pro", 150, 8, 0.015, 45, true, "EN 13162, CE Mark, Euroclass A2"},
	{"Triple-Glazed Smart Glass", "smart_glass", "SmartView-3X", 2500, 120, 0.5, 95, true, "EN 1279, EN 410, CE Mark"},
	{"Phase-Change Material Wallboard", "phase_change_material", "PCM-23", 850, 15, 0.18, 35, true, "EN 13501, Euroclass B-s1-d0"},
	{"High-Strength Structural Steel S460", "structural_steel", "S460ML", 7850, 540, 50, 1200, false, "EN 10025, CE Mark, EPD"},
	{"Self-Healing Bio-Concrete", "smart_concrete", "BioHeal-50", 2350, 55, 1.4, 180, true, "EN 206, CE Mark, Innovation Cert"},
	{"Vacuum Insulation Panel (VIP)", "insulation_aerogel", "VIP-Core-7", 200, 5, 0.007, 30, false, "EN 13166, CE Mark, EPD"},
	{"Carbon Fiber Reinforced Polymer (CFRP) Rebar", "carbon_fiber", "CFRP-12", 1600, 2000, 5, 320, false, "ACI 440, CE Mark"},
	{"Piezoelectric Energy Harvesting Tile", "smart_coating", "PZT-Floor-V2", 3200, 80, 1.1, 55, true, "CE Mark, IEC 61010, EN 50581"},
	{"Graphene-Enhanced Waterproofing Membrane", "smart_coating", "GrapheneSeal-Pro", 950, 35, 0.17, 18, true, "EN 13967, CE Mark, EPD"},
	{"Recycled Aluminium Composite Panel", "composite_panel", "ReAlu-FR-A2", 2700, 310, 160, 85, false, "EN 13501, Euroclass A2, EPD"},
	{"Structural Aluminium Alloy 6082-T6", "structural_aluminum", "6082-T6", 2710, 310, 170, 95, false, "EN 1999, CE Mark, EPD"},
	{"Basalt Fiber Composite Panel", "composite_panel", "BasaltComp-HT", 1900, 480, 0.9, 65, false, "EN 13706, CE Mark, EPD"},
}

func (g *Generator) generateMaterials(suppliers []models.Supplier) ([]models.Material, error) {
	if len(suppliers) == 0 {
		return nil, fmt.Errorf("materials generation requires at least one supplier")
	}
	for _, m := range materialSeeds {
		for _, term := range bannedMaterialTerms {
			if strings.Contains(strings.ToLower(m.name), term) || strings.Contains(strings.ToLower(m.category), term) {
				return nil, fmt.Errorf("banned material term %q in catalog entry %q", term, m.name)
			}
		}
	}
	items := make([]models.Material, 0, len(materialSeeds))
	for i, m := range materialSeeds {
		items = append(items, models.Material{
			ID:                  DeriveID("material", i),
			SupplierID:          suppliers[i%len(suppliers)].ID,
			Name:                m.name,
			Category:            m.category,
			Grade:               m.grade,
			Density:             m.density,
			TensileStrength:     m.tensileStrength,
			ThermalConductivity: m.thermalCond,
			EmbodiedCarbonKg:    m.carbonKg,
			IsSmartMaterial:     m.smart,
			ComplianceCerts:     m.certs,
			Provenance:          g.provenance(),
		})
	}
	return items, nil
}

type houseConfigSeed struct {
	name      string
	modelType string
	modules   int
	areaM2    float64
	floors    int
}

var houseConfigSeeds = []houseConfigSeed{
	{"Planta Compact T1", "compact", 3, 45, 1},
	{"Planta Family T3", "family", 6, 110, 2},
	{"Planta Villa T4+", "villa", 10, 200, 2},
	{"Planta Studio", "studio", 2, 32, 1},
	{"Planta Duplex T2", "duplex", 5, 85, 2},
	{"Planta Eco-Lodge", "eco_lodge", 8, 150, 1},
}

func (g *Generator) generateHouseConfigs() []models.HouseConfig {
	items := make([]models.HouseConfig, 0, len(houseConfigSeeds))
	for i, hc := range houseConfigSeeds {
		items = append(items, models.HouseConfig{
			ID:          DeriveID("house_config", i),
			Name:        hc.name,
			ModelType:   hc.modelType,
			NumModules:  hc.modules,
			FloorAreaM2: hc.areaM2,
			NumFloors:   hc.floors,
			Spec: models.HouseSpec{
				Insulation: "aerogel",
				Glazing:    "triple_smart",
				HVAC:       "heat_pump",
				SolarKW:    round1(hc.areaM2 * 0.08),
				BatteryKWh: round1(hc.areaM2 * 0.12),
				SmartHome:  true,
			},
			Provenance: g.provenance(),
		})
	}
	return items
}
