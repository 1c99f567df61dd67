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

// ledgerHandler handles the balance and transaction-log requests.
type ledgerHandler struct {
	ledger portssvc.LedgerSvcFacade
}

func newLedgerHandler(ledger portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledger: ledger}
}

// registerLedgerRoutes registers the balance and transaction routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledger)

	rg.GET("/ledger", h.getLedgerSummary)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
	}
}

func (h *ledgerHandler) getLedgerSummary(c *gin.Context) {
	c.JSON(http.StatusOK, dto.LedgerSummaryResponse{
		Balance:          h.ledger.Balance(),
		AvailableBalance: h.ledger.AvailableBalance(),
		TotalSavings:     h.ledger.TotalSavings(),
		Saved:            !h.ledger.Degraded(),
	})
}

func (h *ledgerHandler) listTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToTransactionResponses(h.ledger.Transactions()))
}

func (h *ledgerHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	txn, err := h.ledger.AddTransaction(c.Request.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientBalance) {
			logger.Warn("Transaction rejected for insufficient balance", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		}
		return
	}

	logger.Info("Transaction created",
		slog.String("transaction_id", txn.ID), slog.String("type", string(txn.Type)))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*txn))
}
