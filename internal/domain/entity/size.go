package entity

import "fmt"

// DefaultDiameters and DefaultImpulses are indexed by rank-1
var (
	DefaultDiameters = [MaxRank]float64{20, 40, 60, 80, 100}
	DefaultImpulses  = [MaxRank]float64{6, 8, 10, 12, 14}
)

// SizeTable maps a rank to its footprint diameter and floor bounce impulse.
// It is built once and never mutated. Looking up a rank outside
// [MinRank, MaxRank] panics: every ball is created with a valid rank,
// so a bad rank means the registry is corrupt.
type SizeTable struct {
	diameters [MaxRank + 1]float64
	impulses  [MaxRank + 1]float64
}

// NewSizeTable validates and builds a table. Diameters must be positive and
// strictly increasing with rank; impulses must be positive.
func NewSizeTable(diameters, impulses [MaxRank]float64) (SizeTable, error) {
	var t SizeTable
	for i := range diameters {
		r := Rank(i + 1)
		if diameters[i] <= 0 {
			return SizeTable{}, fmt.Errorf("rank %d: diameter must be positive, got %v", r, diameters[i])
		}
		if i > 0 && diameters[i] <= diameters[i-1] {
			return SizeTable{}, fmt.Errorf("rank %d: diameter %v must exceed rank %d diameter %v", r, diameters[i], r-1, diameters[i-1])
		}
		if impulses[i] <= 0 {
			return SizeTable{}, fmt.Errorf("rank %d: bounce impulse must be positive, got %v", r, impulses[i])
		}
		t.diameters[r] = diameters[i]
		t.impulses[r] = impulses[i]
	}
	return t, nil
}

// DefaultSizeTable returns the stock table
func DefaultSizeTable() SizeTable {
	t, err := NewSizeTable(DefaultDiameters, DefaultImpulses)
	if err != nil {
		panic(err)
	}
	return t
}

// Diameter returns the footprint edge length for r
func (t SizeTable) Diameter(r Rank) float64 {
	mustRank(r)
	return t.diameters[r]
}

// BounceImpulse returns the upward speed a ball of rank r leaves the floor with
func (t SizeTable) BounceImpulse(r Rank) float64 {
	mustRank(r)
	return t.impulses[r]
}

func mustRank(r Rank) {
	if !r.Valid() {
		panic(fmt.Sprintf("entity: ball rank %d outside [%d, %d]", r, MinRank, MaxRank))
	}
}
