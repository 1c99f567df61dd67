package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/pocketmoney/pocket_money_app/internal/core/ports/services"
	"github.com/pocketmoney/pocket_money_app/internal/dto"
	"github.com/pocketmoney/pocket_money_app/internal/middleware"
	"github.com/pocketmoney/pocket_money_app/internal/utils"
	"github.com/pocketmoney/pocket_money_app/pkg/config"
	"github.com/gin-gonic/gin"
)

// authHandler exchanges the parental password for a short-lived session token.
type authHandler struct {
	ledger      portssvc.ProfileSvc
	jwtSecret   string
	jwtDuration time.Duration
	jwtIssuer   string
}

func newAuthHandler(ledger portssvc.ProfileSvc, cfg *config.Config) *authHandler {
	return &authHandler{
		ledger:      ledger,
		jwtSecret:   cfg.JWTSecret,
		jwtDuration: cfg.JWTExpiryDuration,
		jwtIssuer:   cfg.JWTIssuer,
	}
}

// registerAuthRoutes sets up the parent-login route with a per-IP rate limit.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, ledger portssvc.LedgerSvcFacade) {
	h := newAuthHandler(ledger, cfg)

	// 5 attempts per minute keeps a guessing child out without locking the
	// parent out for long.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/parent-login", middleware.RateLimit(ipLimiter), h.parentLogin)
	}
}

func (h *authHandler) parentLogin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ParentLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for parent login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	if !h.ledger.VerifyParentalPassword(req.Password) {
		logger.Warn("Parental password rejected")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect parental password"})
		return
	}

	token, err := utils.GenerateJWT(middleware.ParentSubject, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to generate parent session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, dto.ParentLoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(h.jwtDuration),
	})
}
