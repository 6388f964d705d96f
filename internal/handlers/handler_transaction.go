package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopbook/shopbook_backend/internal/core/domain"
	"github.com/shopbook/shopbook_backend/internal/core/ports"
	"github.com/shopbook/shopbook_backend/internal/dto"
	"github.com/shopbook/shopbook_backend/internal/middleware"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService ports.TransactionService
}

func newTransactionHandler(ts ports.TransactionService) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService ports.TransactionService) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id/status", h.updateStatus)
		transactions.DELETE("", h.bulkDelete)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Records one transaction and posts its balance and denomination effects atomically.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Validation or cash reconciliation failure"
// @Failure 404 {object} ErrorResponse "Referenced account missing"
// @Failure 409 {object} ErrorResponse "Lost a concurrency conflict, retry"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.transactionService.RecordTransaction(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record transaction")
		return
	}

	logger.Info("Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("payment_mode", string(txn.PaymentMode)))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions newest first, filtered by the query params.
// @Tags transactions
// @Produce json
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Param type query string false "Transaction type"
// @Param category query string false "Category"
// @Param payment_mode query string false "Payment mode"
// @Param account_id query string false "Matches inward or outward account"
// @Param search query string false "Matches client name or description"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query params: " + err.Error()})
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// getTransaction godoc
// @Summary Get a transaction
// @Description Fetches a single transaction by ID.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateStatus godoc
// @Summary Update a transaction's work status
// @Description Flips a transaction between pending and completed. Idempotent; never re-posts.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param status body dto.UpdateTransactionStatusRequest true "New status"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id}/status [put]
func (h *transactionHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateTransactionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.transactionService.SetStatus(c.Request.Context(), c.Param("id"), domain.TransactionStatus(req.Status), actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update transaction status")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// bulkDelete godoc
// @Summary Bulk delete transaction history
// @Description Deletes the transactions matching the filters. Posted balance effects are NOT reversed.
// @Tags transactions
// @Produce json
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Param type query string false "Transaction type"
// @Param category query string false "Category"
// @Param payment_mode query string false "Payment mode"
// @Param account_id query string false "Matches inward or outward account"
// @Success 200 {object} dto.BulkDeleteResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [delete]
func (h *transactionHandler) bulkDelete(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query params: " + err.Error()})
		return
	}
	filter, err := params.ToFilter()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	count, err := h.transactionService.BulkDelete(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to delete transactions")
		return
	}

	logger.Info("Transactions deleted", slog.Int64("count", count))
	c.JSON(http.StatusOK, dto.BulkDeleteResponse{
		Message: fmt.Sprintf("Deleted %d transactions", count),
		Count:   count,
	})
}
