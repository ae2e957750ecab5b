package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/plan"
)

func TestWritePlan_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.xlsx")
	schedule := []plan.ScheduleRow{
		{Task: "ORD-1", Start: 0, Finish: 6, Resource: "Line 0"},
	}
	allocation := []plan.AllocationRow{
		{Task: "ORD-1", Start: 0, Finish: 6, Resource: "Line 0",
			Geometry: "geoA", RequiredWorkers: 2, Workers: []string{"1", "4"}},
	}

	require.NoError(t, WritePlan(path, schedule, allocation))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	task, err := f.GetCellValue("Schedule", "A2")
	require.NoError(t, err)
	require.Equal(t, "ORD-1", task)

	resource, err := f.GetCellValue("Schedule", "D2")
	require.NoError(t, err)
	require.Equal(t, "Line 0", resource)

	workers, err := f.GetCellValue("Allocation", "G2")
	require.NoError(t, err)
	require.Equal(t, "1, 4", workers)
}

func TestWritePlan_EmptyPlanKeepsHeaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WritePlan(path, nil, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Schedule", "A1")
	require.NoError(t, err)
	require.Equal(t, "Task", header)

	header, err = f.GetCellValue("Allocation", "A1")
	require.NoError(t, err)
	require.Equal(t, "Task", header)
}
