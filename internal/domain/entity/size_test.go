package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSizeTable(t *testing.T) {
	table := DefaultSizeTable()

	for r := MinRank; r <= MaxRank; r++ {
		assert.Equal(t, DefaultDiameters[r-1], table.Diameter(r), "rank %d", r)
		assert.Equal(t, DefaultImpulses[r-1], table.BounceImpulse(r), "rank %d", r)
	}
	assert.Equal(t, 60.0, table.Diameter(3))
	assert.Equal(t, 14.0, table.BounceImpulse(5))
}

func TestSizeTable_PanicsOutsideRange(t *testing.T) {
	table := DefaultSizeTable()

	assert.Panics(t, func() { table.Diameter(0) })
	assert.Panics(t, func() { table.Diameter(MaxRank + 1) })
	assert.Panics(t, func() { table.BounceImpulse(-3) })
}

func TestNewSizeTable(t *testing.T) {
	tests := []struct {
		name      string
		diameters [MaxRank]float64
		impulses  [MaxRank]float64
		wantErr   string
	}{
		{
			name:      "valid",
			diameters: [MaxRank]float64{10, 20, 30, 40, 50},
			impulses:  [MaxRank]float64{1, 2, 3, 4, 5},
		},
		{
			name:      "zero diameter",
			diameters: [MaxRank]float64{0, 20, 30, 40, 50},
			impulses:  DefaultImpulses,
			wantErr:   "rank 1: diameter must be positive",
		},
		{
			name:      "not increasing",
			diameters: [MaxRank]float64{10, 20, 20, 40, 50},
			impulses:  DefaultImpulses,
			wantErr:   "rank 3: diameter 20 must exceed rank 2",
		},
		{
			name:      "negative impulse",
			diameters: DefaultDiameters,
			impulses:  [MaxRank]float64{6, 8, -1, 12, 14},
			wantErr:   "rank 3: bounce impulse must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewSizeTable(tt.diameters, tt.impulses)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 30.0, table.Diameter(3))
			assert.Equal(t, 5.0, table.BounceImpulse(5))
		})
	}
}
