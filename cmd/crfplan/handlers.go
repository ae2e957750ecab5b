package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/common"
	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/gantt"
	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/jsonutil"
	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/plan"
)

// registerHandlers registers the planning endpoints on the router
func registerHandlers(router *gin.Engine, cfg plan.Config, logger *common.Logger) {
	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": common.Version,
		})
	})

	// Order-to-line scheduling: canonicalize the request and solve the line
	// schedule only
	router.POST("/order-to-line", func(c *gin.Context) {
		req, ok := decodeRequest(c)
		if !ok {
			return
		}

		rows, message, err := plan.RunSchedule(c.Request.Context(), req, cfg)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		logScheduleChart(logger, rows)

		c.JSON(http.StatusOK, plan.ScheduleResponse{
			Message:  message,
			Solution: rows,
		})
	})

	// Worker assignment: the full pipeline, schedule plus allocation
	router.POST("/worker-assignment", func(c *gin.Context) {
		req, ok := decodeRequest(c)
		if !ok {
			return
		}

		out, err := plan.RunPipeline(c.Request.Context(), req, cfg)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, plan.AllocationResponse{
			Message:  out.Message,
			Solution: out.Rows,
		})
	})
}

// decodeRequest validates the raw body against the request schema and
// decodes it. Schema violations and malformed JSON answer 400.
func decodeRequest(c *gin.Context) (*plan.Request, bool) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "failed to read request body"})
		return nil, false
	}

	validation, err := plan.ValidateRequest(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid JSON in request body"})
		return nil, false
	}
	if !validation.Valid {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "invalid input data",
			"errors":  validation.Errors,
		})
		return nil, false
	}

	var req plan.Request
	if err := jsonutil.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input data"})
		return nil, false
	}
	return &req, true
}

// logScheduleChart writes a console Gantt chart of the schedule at debug
// level, the way the planners inspect solver output during tuning
func logScheduleChart(logger *common.Logger, rows []plan.ScheduleRow) {
	if logger == nil || logger.GetLevel() > common.DebugLevel || len(rows) == 0 {
		return
	}
	entries := make([]gantt.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, gantt.Entry{
			Task:     row.Task,
			Start:    row.Start,
			Finish:   row.Finish,
			Resource: row.Resource,
		})
	}
	logger.Debug("schedule gantt chart:\n%s", gantt.Render(entries, 0))
}
