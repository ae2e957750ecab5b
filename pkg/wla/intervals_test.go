package wla

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartition_UnionOfScheduleAndAvailabilityBounds(t *testing.T) {
	demands := []Demand{
		{Start: 0, Finish: 5, Line: 0, Geometry: 0, Required: 1},
		{Start: 5, Finish: 9, Line: 0, Geometry: 0, Required: 1},
	}
	availabilities := []Availability{
		{Worker: 1, Windows: [][2]int{{2, 7}}},
	}

	intervals := Partition(demands, availabilities)
	require.Equal(t, []Interval{{0, 2}, {2, 5}, {5, 7}, {7, 9}}, intervals)
}

func TestPartition_DuplicateBoundsCollapse(t *testing.T) {
	demands := []Demand{
		{Start: 0, Finish: 4, Line: 0, Geometry: 0, Required: 1},
		{Start: 0, Finish: 4, Line: 1, Geometry: 1, Required: 2},
	}
	intervals := Partition(demands, []Availability{{Worker: 1, Windows: [][2]int{{0, 4}}}})
	require.Equal(t, []Interval{{0, 4}}, intervals)
}

func TestPartition_Empty(t *testing.T) {
	require.Empty(t, Partition(nil, nil))
}

func TestAvailabilityContains(t *testing.T) {
	a := Availability{Worker: 1, Windows: [][2]int{{0, 7}, {16, 23}}}
	require.True(t, a.contains(0, 7))
	require.True(t, a.contains(17, 20))
	require.False(t, a.contains(6, 9), "no single window spans the interval")
	require.False(t, a.contains(7, 16))
}

func TestAffinityTable_MissingSentinel(t *testing.T) {
	table := NewAffinityTable(2, 3)
	table.Set(1, 2, AffinityRecord{Experience: 0.3, MedicalOK: true})

	rec := table.At(1, 2)
	require.True(t, rec.Known)
	require.True(t, rec.MedicalOK)

	missing := table.At(2, 0)
	require.False(t, missing.Known)
	require.False(t, missing.MedicalOK)
	require.Zero(t, missing.Experience)

	// out-of-range lookups behave like missing records
	require.False(t, table.At(0, 0).Known)
	require.False(t, table.At(3, 0).Known)
	require.False(t, table.At(1, 5).Known)
}
