package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/common"
	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/jsonutil"
	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/plan"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := common.NewLogger(io.Discard, "test", common.ErrorLevel)
	return setupRouter(plan.Config{Logger: logger}, logger)
}

func testRequestBody(t *testing.T) []byte {
	t.Helper()
	start := int64(1_700_000_000)
	body, err := jsonutil.Marshal(plan.Request{
		StartTimeStamp: start,
		OrderData: []plan.OrderRow{
			{Order: "ORD-1", Geometry: "geoA", Amount: 600, Deadline: start + 48*3600, Mold: 1, Priority: true},
		},
		GeometryLineMapping: []plan.GeometryLineRow{
			{Geometry: "geoA", MainLine: 0, AlternativeLines: []int{}, NumberOfWorkers: 1},
		},
		ThroughputMapping: []plan.ThroughputRow{
			{Line: "Line 0", Geometry: "geoA", Throughput: 600},
		},
		HumanFactor: []plan.HumanFactorRow{
			{Worker: "1", Geometry: "geoA", Experience: 0.5, Preference: 0.5, Resilience: 0.5, MedicalCondition: true},
		},
		Availabilities: []plan.AvailabilityRow{
			{Worker: "1", FromTimestamp: start, EndTimestamp: start + 24*3600, Date: "2023-11-14"},
		},
		HardcodedAllocation: []map[string]interface{}{},
	})
	require.NoError(t, err)
	return body
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestOrderToLine_MalformedBody(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/order-to-line", bytes.NewBufferString("{not json"))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderToLine_MissingFields(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/order-to-line", bytes.NewBufferString(`{"start_time_stamp": 1}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "invalid input data")
}

func TestOrderToLine_Success(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/order-to-line", bytes.NewBuffer(testRequestBody(t)))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp plan.ScheduleResponse
	require.NoError(t, jsonutil.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, plan.MsgOrderToLineOK, resp.Message)
	require.Len(t, resp.Solution, 1)
	require.Equal(t, "ORD-1", resp.Solution[0].Task)
	require.Equal(t, "Line 0", resp.Solution[0].Resource)
}

func TestWorkerAssignment_Success(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/worker-assignment", bytes.NewBuffer(testRequestBody(t)))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp plan.AllocationResponse
	require.NoError(t, jsonutil.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, plan.MsgWorkerAllocationOK, resp.Message)
	require.Len(t, resp.Solution, 1)
	require.Equal(t, []string{"1"}, resp.Solution[0].Workers)
}

func TestWorkerAssignment_NoFeasibleSolutionStillAnswers200(t *testing.T) {
	router := testRouter()

	// strip the throughput mapping so no order survives canonicalization
	var request plan.Request
	require.NoError(t, jsonutil.Unmarshal(testRequestBody(t), &request))
	request.ThroughputMapping = []plan.ThroughputRow{}
	body, err := jsonutil.Marshal(request)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/worker-assignment", bytes.NewBuffer(body))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp plan.AllocationResponse
	require.NoError(t, jsonutil.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, plan.MsgNoSolution, resp.Message)
	require.Empty(t, resp.Solution)
}
