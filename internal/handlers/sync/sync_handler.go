// internal/handlers/sync/sync_handler.go
package sync

import (
	"net/http"

	"fleetmaint-service/internal/domain/history"
	"fleetmaint-service/internal/pkg/response"
	"fleetmaint-service/internal/service/importer"
	"fleetmaint-service/internal/websocket"

	"github.com/gin-gonic/gin"
)

type SyncHandler struct {
	syncLog  history.SyncLogRepository
	importer *importer.Importer
	dataDir  string
	hub      *websocket.Hub
}

func NewSyncHandler(syncLog history.SyncLogRepository, imp *importer.Importer, dataDir string, hub *websocket.Hub) *SyncHandler {
	return &SyncHandler{syncLog: syncLog, importer: imp, dataDir: dataDir, hub: hub}
}

// Status returns the five most recent sync-log rows.
func (h *SyncHandler) Status(c *gin.Context) {
	entries, err := h.syncLog.Recent(c.Request.Context(), 5)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to read sync log", err)
		return
	}
	response.Success(c, http.StatusOK, "sync status retrieved", entries)
}

// RunImport runs the full incremental import over the data directory. Admin
// only. Per-file failures are reported, not fatal.
func (h *SyncHandler) RunImport(c *gin.Context) {
	results := h.importer.ImportAll(c.Request.Context(), h.dataDir)

	for _, res := range results {
		if res.Err == nil && res.RowsAdded > 0 {
			h.hub.Broadcast(websocket.Event{Type: "import", Source: res.File, RowsAdded: res.RowsAdded})
		}
	}
	response.Success(c, http.StatusOK, "import finished", results)
}
