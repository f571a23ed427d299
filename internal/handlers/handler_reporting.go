package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/simple_ledger/internal/core/domain"
	"github.com/SscSPs/simple_ledger/internal/core/ledger"
	portssvc "github.com/SscSPs/simple_ledger/internal/core/ports/services"
	"github.com/SscSPs/simple_ledger/internal/dto"
	"github.com/SscSPs/simple_ledger/internal/middleware"
	"github.com/SscSPs/simple_ledger/internal/utils/money"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to income/expense reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	formatter        money.Formatter
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, f money.Formatter) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		formatter:        f,
	}
}

// registerReportingRoutes registers routes related to reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, f money.Formatter) {
	h := newReportingHandler(reportingService, f)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/summary", h.getSummary)
		reportingGroup.GET("/monthly", h.getMonthly)
		reportingGroup.GET("/accounts/:id/balance", h.getAccountBalance)
	}
}

// getSummary godoc
// @Summary Income and expense summary
// @Description Totals income and expense by category over the matching transactions
// @Tags reports
// @Produce json
// @Param keyword query string false "Memo keyword"
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Param granularity query string false "account or type" default(account)
// @Param top query int false "Number of top expense categories" default(5)
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for summary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	filter, err := params.Filter()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	granularity, err := domain.ParseGranularity(params.Granularity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.reportingService.Summary(c.Request.Context(), filter, granularity)
	if err != nil {
		respondError(c, logger, err, "Failed to generate summary")
		return
	}

	top := ledger.TopCategories(summary.ExpenseByCategory, params.Top)
	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary, top, h.formatter))
}

// getMonthly godoc
// @Summary Monthly income and expense
// @Tags reports
// @Produce json
// @Param keyword query string false "Memo keyword"
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Success 200 {object} dto.MonthlyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthly(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	months, err := h.reportingService.Monthly(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "Failed to generate monthly report")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyResponse(months, h.formatter))
}

// getAccountBalance godoc
// @Summary Account balance
// @Description Signed balance of one account, positive on its normal side
// @Tags reports
// @Produce json
// @Param id path string true "Account ID"
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /reports/accounts/{id}/balance [get]
func (h *reportingHandler) getAccountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account_id", c.Param("id")))

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	balance, err := h.reportingService.AccountBalance(c.Request.Context(), c.Param("id"), filter)
	if err != nil {
		respondError(c, logger, err, "Failed to compute account balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountBalanceResponse(balance, h.formatter))
}
