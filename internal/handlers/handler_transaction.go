package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/simple_ledger/internal/core/ports/services"
	"github.com/SscSPs/simple_ledger/internal/dto"
	"github.com/SscSPs/simple_ledger/internal/middleware"
	"github.com/SscSPs/simple_ledger/internal/utils/money"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions and their corrections.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	formatter          money.Formatter
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, f money.Formatter) *transactionHandler {
	return &transactionHandler{transactionService: ts, formatter: f}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade, f money.Formatter) {
	h := newTransactionHandler(ts, f)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.POST("/validate", h.validateTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
		transactions.POST("/:id/corrections", h.correctTransaction)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Validates a balanced set of journal entries and records it. Every rule violation is reported.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Malformed JSON"
// @Failure 422 {object} dto.ValidationErrorResponse "Transaction is invalid"
// @Failure 503 {object} map[string]string "Storage unavailable, nothing was recorded"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tx, err := h.transactionService.Create(c.Request.Context(), req.ToCandidate())
	if err != nil {
		respondError(c, logger, err, "Failed to record transaction")
		return
	}

	logger.Info("Transaction recorded", slog.String("transaction_id", tx.ID()))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*tx, h.formatter))
}

// validateTransaction godoc
// @Summary Validate a transaction without recording it
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction"
// @Success 200 {object} dto.ValidateTransactionResponse
// @Failure 400 {object} map[string]string "Malformed JSON"
// @Failure 422 {object} dto.ValidationErrorResponse "Transaction is invalid"
// @Router /transactions/validate [post]
func (h *transactionHandler) validateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ValidateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tx, err := h.transactionService.Validate(c.Request.Context(), req.ToCandidate())
	if err != nil {
		respondError(c, logger, err, "Failed to validate transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ValidateTransactionResponse{Valid: true, Transaction: dto.ToTransactionResponse(*tx, h.formatter)})
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", c.Param("id")))

	tx, err := h.transactionService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(*tx, h.formatter))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions newest first, filtered by memo keyword and date range
// @Tags transactions
// @Produce  json
// @Param   keyword query string false "Substring of the transaction or entry memo"
// @Param   from query string false "First date (YYYY-MM-DD)"
// @Param   to query string false "Last date (YYYY-MM-DD)"
// @Param   limit query int false "Page size"
// @Param   next_token query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txs, next, err := h.transactionService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txs, h.formatter),
		NextToken:    next,
	})
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Deletes a transaction that is not part of a correction
// @Tags transactions
// @Param   id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction is part of a correction"
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", c.Param("id")))

	if err := h.transactionService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete transaction")
		return
	}

	logger.Info("Transaction deleted")
	c.Status(http.StatusNoContent)
}

// correctTransaction godoc
// @Summary Correct a recorded transaction
// @Description Records a reversal of the original and a replacement together. Neither is recorded if either is invalid.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Original transaction ID"
// @Param   correction body dto.CorrectTransactionRequest true "Replacement entries"
// @Success 201 {object} dto.CorrectionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction was already corrected"
// @Failure 422 {object} dto.ValidationErrorResponse "Correction is invalid"
// @Failure 503 {object} map[string]string "Storage unavailable, nothing was recorded"
// @Router /transactions/{id}/corrections [post]
func (h *transactionHandler) correctTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("original_id", c.Param("id")))
	var req dto.CorrectTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CorrectTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.transactionService.Correct(c.Request.Context(), c.Param("id"), req.ToDomain())
	if err != nil {
		respondError(c, logger, err, "Failed to correct transaction")
		return
	}

	logger.Info("Transaction corrected",
		slog.String("reversal_id", result.Reversal.ID()),
		slog.String("replacement_id", result.Replacement.ID()))
	c.JSON(http.StatusCreated, dto.CorrectionResponse{
		Correction:  result.Correction,
		Reversal:    dto.ToTransactionResponse(result.Reversal, h.formatter),
		Replacement: dto.ToTransactionResponse(result.Replacement, h.formatter),
	})
}
