package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pocketmoney/pocket_money_app/internal/apperrors"
	portssvc "github.com/pocketmoney/pocket_money_app/internal/core/ports/services"
	"github.com/pocketmoney/pocket_money_app/internal/dto"
	"github.com/pocketmoney/pocket_money_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// parentHandler handles the admin surface behind the parent session.
type parentHandler struct {
	ledger portssvc.LedgerSvcFacade
}

func newParentHandler(ledger portssvc.LedgerSvcFacade) *parentHandler {
	return &parentHandler{ledger: ledger}
}

// registerParentRoutes registers the parent-only profile and rate routes. The
// group is expected to carry the parent auth middleware already.
func registerParentRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := newParentHandler(ledger)

	rg.GET("/profile", h.getProfile)
	rg.PUT("/profile", h.updateProfile)
	rg.PUT("/rates", h.updateTermRates)
	rg.PUT("/rate", h.updateRate)
	rg.DELETE("/data", h.clearAllData)
}

func (h *parentHandler) getProfile(c *gin.Context) {
	profile := h.ledger.Profile()
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not set up yet"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserProfileResponse(*profile))
}

func (h *parentHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProfile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	if err := h.ledger.UpdateUserProfile(c.Request.Context(), req.ToDomain()); err != nil {
		logger.Error("Failed to update profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	logger.Info("Profile updated")
	c.JSON(http.StatusOK, dto.ToUserProfileResponse(*h.ledger.Profile()))
}

func (h *parentHandler) updateTermRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateTermRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTermRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	if err := h.ledger.UpdateTermInterestRates(c.Request.Context(), req.TermInterestRates); err != nil {
		h.respondProfileUpdateError(c, logger, err, "Failed to update term rates")
		return
	}

	logger.Info("Term interest rates updated")
	c.JSON(http.StatusOK, dto.ToUserProfileResponse(*h.ledger.Profile()))
}

func (h *parentHandler) updateRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	if err := h.ledger.UpdateInterestRate(c.Request.Context(), req.InterestRate); err != nil {
		h.respondProfileUpdateError(c, logger, err, "Failed to update interest rate")
		return
	}

	logger.Info("Default interest rate updated", slog.String("rate", req.InterestRate.String()))
	c.JSON(http.StatusOK, dto.ToUserProfileResponse(*h.ledger.Profile()))
}

func (h *parentHandler) clearAllData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.ledger.ClearAllData(c.Request.Context()); err != nil {
		logger.Error("Failed to clear data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear data"})
		return
	}

	logger.Info("All ledger data cleared")
	c.Status(http.StatusNoContent)
}

func (h *parentHandler) respondProfileUpdateError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error updating rates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Rate update before onboarding", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
