package router

import (
	"github.com/gin-gonic/gin"

	"idsegen/internal/handler"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(batchH *handler.BatchHandler, healthH *handler.HealthHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", healthH.Health)

	v1 := r.Group("/api/v1")
	batches := v1.Group("/batches")
	batches.POST("/process", batchH.Process)

	return r
}
