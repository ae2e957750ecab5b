package plan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/wla"
)

func testConfig() Config {
	return Config{Logger: testLogger()}
}

func TestRunSchedule_EndToEnd(t *testing.T) {
	rows, message, err := RunSchedule(context.Background(), testRequest(), testConfig())
	require.NoError(t, err)
	require.Equal(t, MsgOrderToLineOK, message)
	require.Len(t, rows, 1)
	require.Equal(t, "ORD-1", rows[0].Task)
	require.Equal(t, "Line 0", rows[0].Resource)
	require.Equal(t, 0, rows[0].Start)
	require.Equal(t, 6, rows[0].Finish)
}

func TestRunSchedule_NoFeasibleOrders(t *testing.T) {
	req := testRequest()
	// no throughput rows means no order gets an alternative
	req.ThroughputMapping = nil

	rows, message, err := RunSchedule(context.Background(), req, testConfig())
	require.NoError(t, err)
	require.Equal(t, MsgNoSolution, message)
	require.Empty(t, rows)
}

func TestRunPipeline_EndToEnd(t *testing.T) {
	out, err := RunPipeline(context.Background(), testRequest(), testConfig())
	require.NoError(t, err)

	require.Equal(t, MsgWorkerAllocationOK, out.Message)
	require.Len(t, out.Rows, 1)
	require.Equal(t, "ORD-1", out.Rows[0].Task)
	require.Equal(t, "Line 0", out.Rows[0].Resource)
	require.Equal(t, "geoA", out.Rows[0].Geometry)
	require.Equal(t, 1, out.Rows[0].RequiredWorkers)
	require.Equal(t, []string{"1"}, out.Rows[0].Workers)

	require.NotNil(t, out.Allocation)
	require.Equal(t, wla.ModelInterval, out.Allocation.Model)
	require.False(t, out.Allocation.MedicalRelaxed)
}

func TestRunPipeline_MedicalRelaxationSecondPhase(t *testing.T) {
	req := testRequest()
	// the only worker is medically disqualified; the strict phase allocates
	// nobody and the explicit second phase lifts the constraint
	req.HumanFactor[0].MedicalCondition = false

	out, err := RunPipeline(context.Background(), req, testConfig())
	require.NoError(t, err)
	require.NotNil(t, out.Allocation)
	require.True(t, out.Allocation.MedicalRelaxed)
	require.Contains(t, out.Message, "medical constraint relaxed")
	require.Equal(t, []string{"1"}, out.Rows[0].Workers)
}

func TestRunPipeline_NoSolutionMessage(t *testing.T) {
	req := testRequest()
	req.ThroughputMapping = nil

	out, err := RunPipeline(context.Background(), req, testConfig())
	require.NoError(t, err)
	require.Equal(t, MsgNoSolution, out.Message)
	require.Empty(t, out.Rows)
}

func TestRunPipeline_CoarseModelIdentified(t *testing.T) {
	cfg := testConfig()
	cfg.CoarseAllocation = true

	out, err := RunPipeline(context.Background(), testRequest(), cfg)
	require.NoError(t, err)
	require.NotNil(t, out.Allocation)
	require.Equal(t, wla.ModelGlobal, out.Allocation.Model)
	require.Contains(t, out.Message, "coarse allocation model")
	require.Equal(t, []string{"1"}, out.Rows[0].Workers)
}

func TestValidateRequest(t *testing.T) {
	valid := []byte(`{
		"start_time_stamp": 1700000000,
		"order-data": [],
		"geometry_line_mapping": [],
		"throughput_mapping": [],
		"human_factor": [],
		"availabilities": [],
		"hardcoded_allocation": []
	}`)
	result, err := ValidateRequest(valid)
	require.NoError(t, err)
	require.True(t, result.Valid)

	missing := []byte(`{"start_time_stamp": 1700000000}`)
	result, err = ValidateRequest(missing)
	require.NoError(t, err)
	require.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)

	_, err = ValidateRequest([]byte(`{not json`))
	require.Error(t, err)
}
