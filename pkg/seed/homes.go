package seed

import (
	"fmt"

	"github.com/iamgoncalo/ecoplanta2/pkg/models"
)

var homeUnitLocations = []string{
	"Rua Augusta 45, Lisboa",
	"Av. dos Aliados 120, Porto",
	"Rua de Santa Catarina 88, Porto",
	"Praia da Rocha, Portimao",
	"Universidade de Coimbra, Coimbra",
	"Parque das Nacoes, Lisboa",
	"Av. da Liberdade 200, Lisboa",
	"Cais da Ribeira 15, Porto",
	"Bairro Alto 33, Lisboa",
	"Alfama 7, Lisboa",
}

var homeUnitStatusCycle = []string{
	models.HomeUnitManufacturing,
	models.HomeUnitShipped,
	models.HomeUnitInstalled,
	models.HomeUnitActive,
}

const homeUnitCount = 10

func (g *Generator) generateHomeUnits(houseConfigs []models.HouseConfig) ([]models.HomeUnit, error) {
	if len(houseConfigs) == 0 {
		return nil, fmt.Errorf("home unit generation requires at least one house config")
	}
	items := make([]models.HomeUnit, 0, homeUnitCount)
	for i := 0; i < homeUnitCount; i++ {
		items = append(items, models.HomeUnit{
			ID:               DeriveID("home_unit", i),
			HouseConfigID:    houseConfigs[i%len(houseConfigs)].ID,
			SerialNumber:     fmt.Sprintf("PSH-2025-%05d", i+1),
			OwnerName:        g.s.text.Name(),
			InstallationDate: g.s.date(2025, 2026).Format(dateLayout),
			Location:         homeUnitLocations[i%len(homeUnitLocations)],
			Status:           homeUnitStatusCycle[i%len(homeUnitStatusCycle)],
			Provenance:       g.provenance(),
		})
	}
	return items, nil
}

var telemetryEventTypes = []string{
	"temperature_reading",
	"energy_consumption",
	"solar_generation",
	"humidity_reading",
	"air_quality",
	"water_usage",
	"smart_glass_adjustment",
	"hvac_cycle",
}

var telemetryUnits = map[string]string{
	"temperature_reading":    "C",
	"energy_consumption":     "kWh",
	"solar_generation":       "kWh",
	"humidity_reading":       "%",
	"air_quality":            "AQI",
	"water_usage":            "L",
	"smart_glass_adjustment": "tint_%",
	"hvac_cycle":             "min",
}

const eventsPerHomeUnit = 5

func (g *Generator) generateTelemetryEvents(homeUnits []models.HomeUnit) []models.TelemetryEvent {
	var items []models.TelemetryEvent
	idx := 0
	for _, hu := range homeUnits {
		if hu.Status != models.HomeUnitActive && hu.Status != models.HomeUnitInstalled {
			continue
		}
		for e := 0; e < eventsPerHomeUnit; e++ {
			eventType := pick(g.s, telemetryEventTypes...)
			items = append(items, models.TelemetryEvent{
				ID:         DeriveID("telemetry", idx),
				HomeUnitID: hu.ID,
				EventType:  eventType,
				Payload: models.TelemetryPayload{
					Value:    round2(g.s.uniform(0, 100)),
					Unit:     telemetryUnits[eventType],
					SensorID: fmt.Sprintf("sensor-%d", g.s.intBetween(1, 20)),
				},
				Timestamp:  g.s.datetime(2025, 2025),
				Provenance: g.provenance(),
			})
			idx++
		}
	}
	return items
}
