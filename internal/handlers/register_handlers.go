package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/pocketmoney/pocket_money_app/internal/core/ports/services"
	"github.com/pocketmoney/pocket_money_app/internal/middleware"
	"github.com/pocketmoney/pocket_money_app/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	registerHomeRoutes(r, services.Ledger)

	// Public parent-login endpoint (rate limited)
	registerAuthRoutes(r, cfg, services.Ledger)

	// Child-facing surface: no auth, gated only by the device
	v1 := r.Group("/api/v1")
	registerLedgerRoutes(v1, services.Ledger)
	registerDepositRoutes(v1, services.Ledger)
	registerReportingRoutes(v1, services.Reporting)
	registerOnboardingRoutes(v1, services.Ledger)

	// Parent admin surface behind the shared-secret session
	parent := v1.Group("/parent", middleware.ParentAuthMiddleware(cfg.JWTSecret))
	registerParentRoutes(parent, services.Ledger)
}
