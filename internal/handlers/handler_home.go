package handlers

import (
	"net/http"

	portssvc "github.com/pocketmoney/pocket_money_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// registerHomeRoutes adds the health check.
func registerHomeRoutes(r *gin.Engine, ledger portssvc.LedgerReaderSvc) {
	r.GET("/health", func(c *gin.Context) {
		storage := "ok"
		if ledger.Degraded() {
			// State changes continue in memory but the latest write has not
			// reached the durable store.
			storage = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": storage})
	})
}
