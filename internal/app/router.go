// internal/app/router.go
package app

import (
	"fleetmaint-service/internal/config"
	fleetHandler "fleetmaint-service/internal/handlers/fleet"
	planningHandler "fleetmaint-service/internal/handlers/planning"
	syncHandler "fleetmaint-service/internal/handlers/sync"
	wsHandler "fleetmaint-service/internal/handlers/ws"
	"fleetmaint-service/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	FleetHandler    *fleetHandler.FleetHandler
	PlanningHandler *planningHandler.PlanningHandler
	SyncHandler     *syncHandler.SyncHandler
	WSHandler       *wsHandler.WSHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, cfg config.AppConfig, h *Handlers) {
	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== WebSocket ====================
	r.GET("/ws", h.WSHandler.HandleConnection)

	// ==================== Read API ====================
	api.GET("/vehicles", h.FleetHandler.ListVehicles)
	api.GET("/planning/:year", h.PlanningHandler.GetYear)
	api.GET("/sync-status", h.SyncHandler.Status)

	// ==================== Admin ====================
	admin := api.Group("/admin")
	admin.Use(h.AuthMiddleware.RequireAdmin())
	{
		admin.POST("/import", h.SyncHandler.RunImport)
		admin.POST("/planning/:year/generate", h.PlanningHandler.GenerateYear)
	}
}
