package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/pocketmoney/pocket_money_app/internal/core/ports/services"
	"github.com/pocketmoney/pocket_money_app/internal/dto"
	"github.com/pocketmoney/pocket_money_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// onboardingHandler reports and completes first-launch setup.
type onboardingHandler struct {
	ledger portssvc.ProfileSvc
}

func registerOnboardingRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := &onboardingHandler{ledger: ledger}

	onboarding := rg.Group("/onboarding")
	{
		onboarding.GET("", h.status)
		onboarding.POST("", h.complete)
	}
}

func (h *onboardingHandler) status(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OnboardingStatusResponse{FirstLaunch: h.ledger.IsFirstLaunch()})
}

func (h *onboardingHandler) complete(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for onboarding", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	if err := h.ledger.CompleteOnboarding(c.Request.Context(), req.ToDomain()); err != nil {
		logger.Error("Failed to complete onboarding", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete onboarding"})
		return
	}

	logger.Info("Onboarding completed", slog.String("child_name", req.ChildName))
	c.JSON(http.StatusCreated, dto.ToUserProfileResponse(*h.ledger.Profile()))
}
