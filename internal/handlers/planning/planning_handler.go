// internal/handlers/planning/planning_handler.go
package planning

import (
	"errors"
	"net/http"
	"strconv"

	"fleetmaint-service/internal/domain/planning"
	xerrors "fleetmaint-service/internal/pkg/errors"
	"fleetmaint-service/internal/pkg/response"
	"fleetmaint-service/internal/service/planner"
	"fleetmaint-service/internal/websocket"

	"github.com/gin-gonic/gin"
)

type PlanningHandler struct {
	plans   planning.Repository
	planner *planner.Planner
	hub     *websocket.Hub
}

func NewPlanningHandler(plans planning.Repository, p *planner.Planner, hub *websocket.Hub) *PlanningHandler {
	return &PlanningHandler{plans: plans, planner: p, hub: hub}
}

// GetYear returns the union of all three tracks for one year, ordered by due
// date.
func (h *PlanningHandler) GetYear(c *gin.Context) {
	year, err := parseYear(c.Param("year"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid year", err)
		return
	}

	entries, err := h.plans.ListYear(c.Request.Context(), year)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list planning", err)
		return
	}
	response.Success(c, http.StatusOK, "planning retrieved", entries)
}

// GenerateYear rebuilds one year's schedule. Admin only.
func (h *PlanningHandler) GenerateYear(c *gin.Context) {
	year, err := parseYear(c.Param("year"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid year", err)
		return
	}

	count, err := h.planner.GenerateYear(c.Request.Context(), year)
	if err != nil {
		if errors.Is(err, xerrors.ErrLocked) {
			response.Error(c, http.StatusConflict, "generation already running for this year", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to generate planning", err)
		return
	}

	h.hub.Broadcast(websocket.Event{Type: "planning", Year: year, Entries: count})
	response.Success(c, http.StatusOK, "planning generated", gin.H{"year": year, "entries": count})
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if year < 1900 || year > 2200 {
		return 0, errors.New("year out of range")
	}
	return year, nil
}
