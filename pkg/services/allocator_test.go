package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamgoncalo/ecoplanta2/pkg/models"
)

func allocatorFixture() ([]models.Partner, []models.CapacityPlan) {
	partners := []models.Partner{
		{ID: "p-slow", Name: "Slow Modular", Country: "ES", Rating: 4.0, LeadTimeDays: 20},
		{ID: "p-fast", Name: "Fast Modular", Country: "PT", Rating: 5.0, LeadTimeDays: 10},
	}
	plans := []models.CapacityPlan{
		{ID: "cp-1", PartnerID: "p-fast", Month: "2025-01", AvailableUnits: 8},
		{ID: "cp-2", PartnerID: "p-slow", Month: "2025-01", AvailableUnits: 20},
	}
	return partners, plans
}

func TestEfficiencyScore(t *testing.T) {
	assert.InDelta(t, 0.5, EfficiencyScore(models.Partner{Rating: 5.0, LeadTimeDays: 10}), 1e-9)
	assert.InDelta(t, 0.2, EfficiencyScore(models.Partner{Rating: 4.0, LeadTimeDays: 20}), 1e-9)
	// Lead time is clamped to one day.
	assert.InDelta(t, 5.0, EfficiencyScore(models.Partner{Rating: 5.0, LeadTimeDays: 0}), 1e-9)
}

func TestRankPartnersDescendingAndStable(t *testing.T) {
	partners := []models.Partner{
		{ID: "a", Rating: 4.0, LeadTimeDays: 20},
		{ID: "b", Rating: 5.0, LeadTimeDays: 10},
		{ID: "c", Rating: 2.0, LeadTimeDays: 10}, // ties with a at 0.2
	}

	ranked := RankPartners(partners)
	require.Len(t, ranked, 3)
	assert.Equal(t, "b", ranked[0].ID)
	// Tied scores keep input order.
	assert.Equal(t, "a", ranked[1].ID)
	assert.Equal(t, "c", ranked[2].ID)

	// Input slice must stay untouched.
	assert.Equal(t, "a", partners[0].ID)
}

func TestAllocateSpillsToNextPartner(t *testing.T) {
	partners, plans := allocatorFixture()

	result := Allocate(10, partners, plans, AllocationOptions{})

	require.Len(t, result.Allocations, 2)
	assert.Equal(t, "p-fast", result.Allocations[0].PartnerID)
	assert.Equal(t, 8, result.Allocations[0].AllocatedUnits)
	assert.InDelta(t, 8000.0, result.Allocations[0].EstimatedCost, 0.01) // 8 * (5000/5.0)
	assert.Equal(t, "p-slow", result.Allocations[1].PartnerID)
	assert.Equal(t, 2, result.Allocations[1].AllocatedUnits)
	assert.InDelta(t, 2500.0, result.Allocations[1].EstimatedCost, 0.01) // 2 * (5000/4.0)

	assert.Equal(t, 10, result.TotalAllocated)
	assert.Equal(t, 10, result.TotalRequested)
	assert.True(t, result.FullyAllocated)
}

func TestAllocatePartialWhenCapacityExhausted(t *testing.T) {
	partners, plans := allocatorFixture()

	result := Allocate(100, partners, plans, AllocationOptions{})

	assert.Equal(t, 28, result.TotalAllocated)
	assert.Equal(t, 100, result.TotalRequested)
	assert.False(t, result.FullyAllocated)
}

func TestAllocateAveragesPlanAvailability(t *testing.T) {
	partners := []models.Partner{{ID: "p", Name: "P", Rating: 4.0, LeadTimeDays: 10}}
	plans := []models.CapacityPlan{
		{ID: "cp-1", PartnerID: "p", Month: "2025-01", AvailableUnits: 10},
		{ID: "cp-2", PartnerID: "p", Month: "2025-02", AvailableUnits: 5},
	}

	// Integer-division mean: (10+5)/2 = 7.
	result := Allocate(50, partners, plans, AllocationOptions{})
	require.Len(t, result.Allocations, 1)
	assert.Equal(t, 7, result.Allocations[0].AllocatedUnits)
}

func TestAllocateCountryFilter(t *testing.T) {
	partners, plans := allocatorFixture()

	result := Allocate(5, partners, plans, AllocationOptions{PreferredCountry: "ES"})
	require.Len(t, result.Allocations, 1)
	assert.Equal(t, "p-slow", result.Allocations[0].PartnerID)
}

func TestAllocateFilterFallsBackWhenEmpty(t *testing.T) {
	partners, plans := allocatorFixture()

	// No partner matches, so the filter is dropped rather than failing.
	result := Allocate(10, partners, plans, AllocationOptions{PreferredCountry: "DE"})
	assert.True(t, result.FullyAllocated)
	assert.Equal(t, 10, result.TotalAllocated)
}

func TestAllocateMaxLeadTimeFilter(t *testing.T) {
	partners, plans := allocatorFixture()

	result := Allocate(5, partners, plans, AllocationOptions{MaxLeadTimeDays: 15})
	require.Len(t, result.Allocations, 1)
	assert.Equal(t, "p-fast", result.Allocations[0].PartnerID)
}

func TestAllocateSkipsPartnersWithoutCapacity(t *testing.T) {
	partners := []models.Partner{
		{ID: "empty", Rating: 5.0, LeadTimeDays: 5},
		{ID: "full", Rating: 3.0, LeadTimeDays: 30},
	}
	plans := []models.CapacityPlan{
		{ID: "cp", PartnerID: "full", Month: "2025-01", AvailableUnits: 12},
	}

	result := Allocate(10, partners, plans, AllocationOptions{})
	require.Len(t, result.Allocations, 1)
	assert.Equal(t, "full", result.Allocations[0].PartnerID)
}

func TestOptimizeReproducible(t *testing.T) {
	partners, plans := allocatorFixture()

	first := Optimize(partners, plans)
	second := Optimize(partners, plans)
	assert.Equal(t, first, second)
}

func TestOptimizeAllocatesFullPool(t *testing.T) {
	partners, plans := allocatorFixture()

	result := Optimize(partners, plans)
	require.Len(t, result.OptimizedAllocations, 2)
	assert.Equal(t, 28, result.TotalUnits)
	assert.InDelta(t, 33000.0, result.TotalCost, 0.01) // 8*1000 + 20*1250
	assert.InDelta(t, 15.0, result.AvgLeadTimeDays, 0.01)
	assert.Greater(t, result.OptimizationScore, 0.0)
}
