package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCapacityReport(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		occupancy int
		proposed  int
		fits      bool
	}{
		{"fits exactly", 10, 6, 4, true},
		{"fits with room", 10, 2, 3, true},
		{"over by one", 10, 8, 3, false},
		{"already full", 10, 10, 1, false},
		{"zero proposed on full tent", 10, 10, 0, true},
		{"zero capacity never fits a group", 0, 0, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := NewCapacityReport(1, tt.capacity, tt.occupancy, tt.proposed)
			assert.Equal(t, tt.occupancy+tt.proposed, report.ProjectedTotal)
			assert.Equal(t, tt.fits, report.Fits)
		})
	}
}

func TestCapacityReportIsOverCapacity(t *testing.T) {
	over := NewCapacityReport(1, 4, 6, 0)
	assert.True(t, over.IsOverCapacity())

	full := NewCapacityReport(1, 4, 4, 0)
	assert.False(t, full.IsOverCapacity())
}
