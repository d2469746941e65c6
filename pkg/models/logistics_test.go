package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecklistCompletion(t *testing.T) {
	tests := []struct {
		name      string
		checklist InstallationChecklist
		wantCount int
		wantPct   float64
	}{
		{
			name:      "empty",
			checklist: InstallationChecklist{},
			wantCount: 0,
			wantPct:   0,
		},
		{
			name: "three of five",
			checklist: InstallationChecklist{
				FoundationCheck:    true,
				UtilityConnections: true,
				ModuleAlignment:    true,
			},
			wantCount: 3,
			wantPct:   60.0,
		},
		{
			name: "complete",
			checklist: InstallationChecklist{
				FoundationCheck:    true,
				UtilityConnections: true,
				ModuleAlignment:    true,
				SmartSystemBoot:    true,
				FinalInspection:    true,
			},
			wantCount: 5,
			wantPct:   100.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCount, tt.checklist.CompletedCount())
			assert.InDelta(t, tt.wantPct, tt.checklist.CompletionPct(), 1e-9)
		})
	}
}

func TestSourceIsValid(t *testing.T) {
	assert.True(t, SourceSyntheticGenerated.IsValid())
	assert.True(t, SourceIntegrationPlaceholder.IsValid())
	assert.True(t, SourceAuthoritative.IsValid())
	assert.False(t, Source("handwritten").IsValid())
}
