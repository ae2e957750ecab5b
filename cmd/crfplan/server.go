package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/common"
	"github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/plan"
)

// setupRouter creates the Gin router, registers middleware and handlers
func setupRouter(cfg plan.Config, logger *common.Logger) *gin.Engine {
	// Set Gin mode to release (minimal logging)
	gin.SetMode(gin.ReleaseMode)

	// Keep Gin's own output off stdout
	gin.DefaultWriter = os.Stderr
	gin.DefaultErrorWriter = os.Stderr

	// Create Gin router without default middleware
	router := gin.New()
	// Add recovery middleware but log to stderr
	router.Use(gin.RecoveryWithWriter(os.Stderr))

	// Add CORS middleware
	router.Use(cors.Default())

	registerHandlers(router, cfg, logger)

	return router
}
