package seed

import "github.com/iamgoncalo/ecoplanta2/pkg/models"

var deliveryCarriers = []string{"Transporte Modular EU", "Logistica Verde SA", "EcoFreight Iberia"}

var deliveryDestinations = []string{
	"Lisboa, Portugal",
	"Porto, Portugal",
	"Faro, Portugal",
	"Braga, Portugal",
	"Coimbra, Portugal",
	"Setubal, Portugal",
}

func (g *Generator) generateDeliveries(workOrders []models.WorkOrder) []models.Delivery {
	var items []models.Delivery
	idx := 0
	for _, wo := range workOrders {
		if wo.Status != models.WorkOrderCompleted {
			continue
		}
		est := g.s.datetime(2025, 2026)
		d := models.Delivery{
			ID:               DeriveID("delivery", idx),
			WorkOrderID:      wo.ID,
			Origin:           "Figueira da Foz, Portugal",
			Destination:      deliveryDestinations[idx%len(deliveryDestinations)],
			Carrier:          deliveryCarriers[idx%len(deliveryCarriers)],
			Status:           pick(g.s, models.DeliveryPreparing, models.DeliveryInTransit, models.DeliveryDelivered),
			EstimatedArrival: est,
			Provenance:       g.provenance(),
		}
		if g.s.num.Float64() > 0.4 {
			arrived := est
			d.ActualArrival = &arrived
		}
		items = append(items, d)
		idx++
	}
	return items
}

var crewLeads = []string{
	"Mestre Carlos Mendes",
	"Mestre Rita Pinto",
	"Mestre Tiago Alves",
	"Mestre Ines Rodrigues",
}

func (g *Generator) generateDeploymentJobs(deliveries []models.Delivery) []models.DeploymentJob {
	items := make([]models.DeploymentJob, 0, len(deliveries))
	for i, dlv := range deliveries {
		items = append(items, models.DeploymentJob{
			ID:          DeriveID("deployment", i),
			DeliveryID:  dlv.ID,
			SiteAddress: dlv.Destination,
			Status:      pick(g.s, "planned", "site_prep", "installing", "commissioning", "completed"),
			Checklist: models.InstallationChecklist{
				FoundationCheck:    true,
				UtilityConnections: true,
				ModuleAlignment:    true,
				SmartSystemBoot:    pick(g.s, true, false),
				FinalInspection:    pick(g.s, true, false),
			},
			CommissioningDate: g.s.date(2025, 2026).Format(dateLayout),
			CrewLead:          crewLeads[i%len(crewLeads)],
			Provenance:        g.provenance(),
		})
	}
	return items
}
