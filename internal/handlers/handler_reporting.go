package handlers

import (
	"net/http"

	portssvc "github.com/pocketmoney/pocket_money_app/internal/core/ports/services"
	"github.com/pocketmoney/pocket_money_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the current-month spending summaries.
type reportingHandler struct {
	reporting portssvc.ReportingSvcFacade
}

func registerReportingRoutes(rg *gin.RouterGroup, reporting portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reporting: reporting}

	reports := rg.Group("/reports")
	{
		reports.GET("/categories", h.topCategories)
		reports.GET("/monthly", h.monthSummary)
	}
}

func (h *reportingHandler) topCategories(c *gin.Context) {
	summaries := h.reporting.TopCategories(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToCategorySummaryResponses(summaries))
}

func (h *reportingHandler) monthSummary(c *gin.Context) {
	summary := h.reporting.CurrentMonthSummary(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToMonthSummaryResponse(summary))
}
