package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pocketmoney/pocket_money_app/internal/apperrors"
	"github.com/pocketmoney/pocket_money_app/internal/core/domain"
	portssvc "github.com/pocketmoney/pocket_money_app/internal/core/ports/services"
	"github.com/pocketmoney/pocket_money_app/internal/dto"
	"github.com/pocketmoney/pocket_money_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// depositHandler handles fixed-term deposit requests.
type depositHandler struct {
	ledger portssvc.LedgerSvcFacade
}

func newDepositHandler(ledger portssvc.LedgerSvcFacade) *depositHandler {
	return &depositHandler{ledger: ledger}
}

// registerDepositRoutes registers deposit and rate routes.
func registerDepositRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := newDepositHandler(ledger)

	deposits := rg.Group("/deposits")
	{
		deposits.GET("", h.listDeposits)
		deposits.POST("", h.createDeposit)
		deposits.POST("/:id/withdraw", h.withdrawDeposit)
		deposits.POST("/check-matured", h.checkMatured)
	}

	rg.GET("/rates", h.listRates)
}

func (h *depositHandler) listDeposits(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToDepositResponses(h.ledger.Deposits()))
}

func (h *depositHandler) createDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDeposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	deposit, err := h.ledger.CreateDeposit(c.Request.Context(), req.Amount, req.TermMonths)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientBalance) {
			logger.Warn("Deposit rejected for insufficient balance", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating deposit", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create deposit", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create deposit"})
		}
		return
	}

	logger.Info("Deposit created",
		slog.String("deposit_id", deposit.ID),
		slog.String("amount", deposit.Amount.String()),
		slog.String("term_months", deposit.TermMonths.String()))
	c.JSON(http.StatusCreated, dto.ToDepositResponse(*deposit))
}

func (h *depositHandler) withdrawDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	depositID := c.Param("id")

	deposit, err := h.ledger.WithdrawDeposit(c.Request.Context(), depositID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Withdrawal of unknown deposit", slog.String("deposit_id", depositID))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to withdraw deposit", slog.String("deposit_id", depositID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to withdraw deposit"})
		}
		return
	}

	logger.Info("Deposit withdrawn", slog.String("deposit_id", deposit.ID))
	c.JSON(http.StatusOK, dto.ToDepositResponse(*deposit))
}

// checkMatured is the manual maturation trigger (pull-to-refresh flows and
// tests); it shares the scheduler's idempotent credit path.
func (h *depositHandler) checkMatured(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	credited, err := h.ledger.CheckAndCreditMaturedDeposits(c.Request.Context())
	if err != nil {
		logger.Error("Manual maturation check failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check matured deposits"})
		return
	}

	c.JSON(http.StatusOK, dto.MaturationCheckResponse{Credited: credited})
}

func (h *depositHandler) listRates(c *gin.Context) {
	terms := domain.SupportedTerms()
	rates := make([]dto.TermRateResponse, len(terms))
	for i, term := range terms {
		rates[i] = dto.TermRateResponse{
			TermMonths: term,
			AnnualRate: h.ledger.GetInterestRateForTerm(term),
		}
	}
	c.JSON(http.StatusOK, rates)
}
