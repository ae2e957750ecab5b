package wla

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolveGlobal_AssignsWithinStaffingBounds(t *testing.T) {
	demands := []Demand{
		{Task: 0, Start: 0, Finish: 6, Line: 0, Geometry: 0, Required: 1},
		{Task: 1, Start: 6, Finish: 10, Line: 0, Geometry: 0, Required: 1},
	}

	affinity := NewAffinityTable(3, 1)
	affinity.Set(1, 0, AffinityRecord{Experience: 0.8, Preference: 0.8, Resilience: 0.8, MedicalOK: true})
	affinity.Set(2, 0, AffinityRecord{Experience: 0.4, Preference: 0.4, Resilience: 0.4, MedicalOK: true})
	affinity.Set(3, 0, AffinityRecord{Experience: 0.6, Preference: 0.6, Resilience: 0.6, MedicalOK: true})

	availabilities := []Availability{
		{Worker: 1, Windows: [][2]int{{0, 10}}},
		{Worker: 2, Windows: [][2]int{{0, 10}}},
		{Worker: 3, Windows: [][2]int{{0, 10}}},
	}

	result, err := SolveGlobal(context.Background(), demands, affinity, availabilities, testOptions())
	require.NoError(t, err)
	require.Equal(t, ModelGlobal, result.Model)

	workers := result.Workers[0]
	// min 1 (largest single requirement), max 2 (summed requirements)
	require.GreaterOrEqual(t, len(workers), 1)
	require.LessOrEqual(t, len(workers), 2)
}

func TestSolveGlobal_MedicalGatesEligibility(t *testing.T) {
	demands := []Demand{{Task: 0, Start: 0, Finish: 8, Line: 0, Geometry: 0, Required: 1}}

	affinity := NewAffinityTable(2, 1)
	affinity.Set(1, 0, AffinityRecord{Experience: 0.9, Preference: 0.9, Resilience: 0.9, MedicalOK: false})
	affinity.Set(2, 0, AffinityRecord{Experience: 0.1, Preference: 0.1, Resilience: 0.1, MedicalOK: true})

	availabilities := []Availability{
		{Worker: 1, Windows: [][2]int{{0, 8}}},
		{Worker: 2, Windows: [][2]int{{0, 8}}},
	}

	result, err := SolveGlobal(context.Background(), demands, affinity, availabilities, testOptions())
	require.NoError(t, err)
	require.Equal(t, map[int][]int{0: {2}}, result.Workers)
}

func TestSolveGlobal_InfeasibleStaffing(t *testing.T) {
	// two workers required at once but only one exists
	demands := []Demand{{Task: 0, Start: 0, Finish: 8, Line: 0, Geometry: 0, Required: 2}}

	affinity := NewAffinityTable(1, 1)
	affinity.Set(1, 0, AffinityRecord{Experience: 0.5, Preference: 0.5, Resilience: 0.5, MedicalOK: true})
	availabilities := []Availability{{Worker: 1, Windows: [][2]int{{0, 8}}}}

	result, err := SolveGlobal(context.Background(), demands, affinity, availabilities, testOptions())
	require.ErrorIs(t, err, ErrNoSolution)
	require.Empty(t, result.Workers)
}

func TestSolveGlobal_UnavailableWorkerNotAssigned(t *testing.T) {
	demands := []Demand{{Task: 0, Start: 0, Finish: 8, Line: 0, Geometry: 0, Required: 1}}

	affinity := NewAffinityTable(2, 1)
	affinity.Set(1, 0, AffinityRecord{Experience: 0.9, Preference: 0.9, Resilience: 0.9, MedicalOK: true})
	affinity.Set(2, 0, AffinityRecord{Experience: 0.5, Preference: 0.5, Resilience: 0.5, MedicalOK: true})

	// worker 1's window begins after the task ends
	availabilities := []Availability{
		{Worker: 1, Windows: [][2]int{{10, 20}}},
		{Worker: 2, Windows: [][2]int{{0, 8}}},
	}

	result, err := SolveGlobal(context.Background(), demands, affinity, availabilities, testOptions())
	require.NoError(t, err)
	require.Equal(t, map[int][]int{0: {2}}, result.Workers)
}
