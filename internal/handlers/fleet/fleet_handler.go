// internal/handlers/fleet/fleet_handler.go
package fleet

import (
	"net/http"

	"fleetmaint-service/internal/domain/fleet"
	"fleetmaint-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type FleetHandler struct {
	vehicles fleet.Repository
}

func NewFleetHandler(vehicles fleet.Repository) *FleetHandler {
	return &FleetHandler{vehicles: vehicles}
}

// ListVehicles returns the full vehicle catalog.
func (h *FleetHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.vehicles.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list vehicles", err)
		return
	}
	response.Success(c, http.StatusOK, "vehicles retrieved", vehicles)
}
