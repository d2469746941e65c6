package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/iamgoncalo/ecoplanta2/pkg/models"
)

// baseUnitCost is the reference cost of one housing unit before the partner
// rating discount is applied.
const baseUnitCost = 5000.0

// AllocationOptions are optional pre-ranking filters. A filter that would
// eliminate every candidate is ignored rather than failing the allocation.
type AllocationOptions struct {
	PreferredCountry string
	MaxLeadTimeDays  int
}

// PartnerAllocation is one partner's share of an allocated order.
type PartnerAllocation struct {
	PartnerID      string  `json:"partner_id"`
	PartnerName    string  `json:"partner_name"`
	Country        string  `json:"country"`
	AllocatedUnits int     `json:"allocated_units"`
	LeadTimeDays   int     `json:"lead_time_days"`
	EstimatedCost  float64 `json:"estimated_cost"`
}

// AllocationResult reports how an order was spread across partners. Partial
// allocation is a normal outcome, not an error.
type AllocationResult struct {
	Allocations    []PartnerAllocation `json:"allocations"`
	TotalAllocated int                 `json:"total_allocated"`
	TotalRequested int                 `json:"total_requested"`
	FullyAllocated bool                `json:"fully_allocated"`
}

// OptimizationResult reports a full-pool ranked allocation across the
// partner network.
type OptimizationResult struct {
	OptimizedAllocations []PartnerAllocation `json:"optimized_allocations"`
	TotalCost            float64             `json:"total_cost"`
	AvgLeadTimeDays      float64             `json:"avg_lead_time_days"`
	TotalUnits           int                 `json:"total_units"`
	OptimizationScore    float64             `json:"optimization_score"`
}

// EfficiencyScore ranks a partner: rating divided by lead time, clamped to a
// one-day minimum.
func EfficiencyScore(p models.Partner) float64 {
	days := p.LeadTimeDays
	if days < 1 {
		days = 1
	}
	return p.Rating / float64(days)
}

// RankPartners returns the partners ordered by descending efficiency score.
// The sort is stable: ties keep their original input order, which makes
// repeated allocation runs over the same dataset identical. The input slice
// is not modified.
func RankPartners(partners []models.Partner) []models.Partner {
	ranked := make([]models.Partner, len(partners))
	copy(ranked, partners)
	sort.SliceStable(ranked, func(i, j int) bool {
		return EfficiencyScore(ranked[i]) > EfficiencyScore(ranked[j])
	})
	return ranked
}

// avgAvailableUnits computes the integer-division mean of available units
// across a partner's capacity plans.
func avgAvailableUnits(partnerID string, plans []models.CapacityPlan) int {
	total, count := 0, 0
	for _, plan := range plans {
		if plan.PartnerID == partnerID {
			total += plan.AvailableUnits
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / count
}

// estimatedCost prices allocated units at baseUnitCost discounted by partner
// rating, rounded to 2 decimals.
func estimatedCost(units int, rating float64) float64 {
	if rating <= 0 {
		return 0
	}
	return decimal.NewFromInt(int64(units)).
		Mul(decimal.NewFromFloat(baseUnitCost).Div(decimal.NewFromFloat(rating))).
		Round(2).InexactFloat64()
}

// filterPartners applies the optional country and lead-time filters, falling
// back to the unfiltered set whenever a filter leaves zero candidates.
func filterPartners(partners []models.Partner, opts AllocationOptions) []models.Partner {
	candidates := partners
	if opts.PreferredCountry != "" {
		var filtered []models.Partner
		for _, p := range candidates {
			if p.Country == opts.PreferredCountry {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}
	if opts.MaxLeadTimeDays > 0 {
		var filtered []models.Partner
		for _, p := range candidates {
			if p.LeadTimeDays <= opts.MaxLeadTimeDays {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}
	return candidates
}

// Allocate greedily assigns an order across partners in efficiency-rank
// order, bounded by each partner's average available capacity. It is a pure
// read-only projection: neither partners nor plans are mutated.
func Allocate(orderUnits int, partners []models.Partner, plans []models.CapacityPlan, opts AllocationOptions) AllocationResult {
	result := AllocationResult{TotalRequested: orderUnits}

	remaining := orderUnits
	for _, partner := range RankPartners(filterPartners(partners, opts)) {
		if remaining <= 0 {
			break
		}
		available := avgAvailableUnits(partner.ID, plans)
		if available <= 0 {
			continue
		}
		assigned := available
		if remaining < assigned {
			assigned = remaining
		}
		result.Allocations = append(result.Allocations, PartnerAllocation{
			PartnerID:      partner.ID,
			PartnerName:    partner.Name,
			Country:        partner.Country,
			AllocatedUnits: assigned,
			LeadTimeDays:   partner.LeadTimeDays,
			EstimatedCost:  estimatedCost(assigned, partner.Rating),
		})
		result.TotalAllocated += assigned
		remaining -= assigned
	}

	result.FullyAllocated = remaining <= 0
	return result
}

// Optimize allocates the entire available pool in rank order and scores the
// outcome. Repeated calls over the same dataset return identical results.
func Optimize(partners []models.Partner, plans []models.CapacityPlan) OptimizationResult {
	var result OptimizationResult

	totalCost := decimal.Zero
	leadTimeSum := 0
	weightedScore := 0.0
	for _, partner := range RankPartners(partners) {
		available := avgAvailableUnits(partner.ID, plans)
		if available <= 0 {
			continue
		}
		cost := estimatedCost(available, partner.Rating)
		result.OptimizedAllocations = append(result.OptimizedAllocations, PartnerAllocation{
			PartnerID:      partner.ID,
			PartnerName:    partner.Name,
			Country:        partner.Country,
			AllocatedUnits: available,
			LeadTimeDays:   partner.LeadTimeDays,
			EstimatedCost:  cost,
		})
		result.TotalUnits += available
		totalCost = totalCost.Add(decimal.NewFromFloat(cost))
		leadTimeSum += partner.LeadTimeDays
		weightedScore += EfficiencyScore(partner) * float64(available)
	}

	if n := len(result.OptimizedAllocations); n > 0 {
		result.TotalCost = totalCost.Round(2).InexactFloat64()
		result.AvgLeadTimeDays = decimal.NewFromInt(int64(leadTimeSum)).
			Div(decimal.NewFromInt(int64(n))).Round(1).InexactFloat64()
		result.OptimizationScore = decimal.NewFromFloat(weightedScore / float64(result.TotalUnits)).
			Round(3).InexactFloat64()
	}
	return result
}
