/*
Package main implements the production planning HTTP service.

REST API Specification:

Planning Service
====================

Service Type: REST (HTTP/JSON)
Description: Plans manufacturing work for a horizon of several days by
solving two coupled optimization problems: order-to-line scheduling and
worker-to-line allocation.

Available REST Endpoints:
-------------------------

 1. GET /health
    Description: Health check endpoint to verify service is running
    Request Parameters: None
    Response:
    - status (string): "ok" if service is healthy
    - version (string): service version

 2. POST /order-to-line
    Description: Solves the order-to-line scheduling problem
    Request Body: the planning request (see request schema)
    Response:
    - message (string): success or "No Optimal / Feasible solution found!!"
    - solution (array): schedule entries {Task, Start, Finish, Resource}
    Errors:
    - Invalid body: 400 with schema validation errors

 3. POST /worker-assignment
    Description: Runs the full pipeline: order-to-line scheduling followed
    by worker-to-line allocation over the resulting schedule
    Request Body: the planning request (see request schema)
    Response:
    - message (string): success (possibly annotated with the allocation
      model used) or "No Optimal / Feasible solution found!!"
    - solution (array): allocation entries {Task, Start, Finish, Resource,
      geometry, required_workers, workers}
    Errors:
    - Invalid body: 400 with schema validation errors

Notes:
------
- Both endpoints answer 200 for "no feasible solution"; the message field
  disambiguates
- All planning state is request-scoped; concurrent requests share nothing
- Solver invocations honor the configured wall-clock limits and return the
  best incumbent found when a limit expires
*/
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/common"
	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/plan"
)

func main() {
	// Load configuration
	config, err := common.LoadConfig(common.DefaultConfigFile)
	if err != nil {
		common.Warn(LogMsgWarningLoadingConfig, err)
		os.Exit(1)
	}

	if config.Logging.Level != "" {
		common.SetLevel(common.ParseLogLevel(config.Logging.Level))
	}

	address := config.Server.Address
	if address == "" {
		address = common.DefaultListenAddress
	}
	shutdownTimeout := common.DefaultShutdownTimeout
	if config.Server.ShutdownTimeoutSeconds > 0 {
		shutdownTimeout = time.Duration(config.Server.ShutdownTimeoutSeconds) * time.Second
	}
	common.Info(LogMsgConfigLoaded, address, int(shutdownTimeout.Seconds()))

	logger := common.Default()
	cfg := plan.ConfigFromSolver(config.Solver, logger)
	router := setupRouter(cfg, logger)

	server := &http.Server{
		Addr:    address,
		Handler: router,
	}

	go func() {
		common.Info(LogMsgStartingService, address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			common.Error(LogMsgFailedStartServer, err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.Info(LogMsgShuttingDown)
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		common.Error(LogMsgServerForcedShutdown, err)
	}
	common.Info(LogMsgServiceStopped)
}
