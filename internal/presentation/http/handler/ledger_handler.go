package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/yudhapane/kacapos/internal/application/service"
	"github.com/yudhapane/kacapos/internal/presentation/http/dto/response"
	"github.com/yudhapane/kacapos/pkg/pagination"
)

// LedgerHandler handles day-ledger HTTP requests: listing transactions,
// browsing ledger history, and the owner-gated delete and reprint.
type LedgerHandler struct {
	checkoutService *service.CheckoutService
	printerService  *service.PrinterService
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(checkoutService *service.CheckoutService, printerService *service.PrinterService) *LedgerHandler {
	return &LedgerHandler{
		checkoutService: checkoutService,
		printerService:  printerService,
	}
}

// ListDay returns the transactions for one date (default today).
func (h *LedgerHandler) ListDay(c *gin.Context) {
	dateKey, ok := DateKeyParam(c)
	if !ok {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	txns, err := h.checkoutService.DayTransactions(c.Request.Context(), dateKey)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Transactions retrieved successfully", gin.H{
		"date":         dateKey,
		"transactions": txns,
	})
}

// ListDates returns ledger date keys, newest first, paginated.
func (h *LedgerHandler) ListDates(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.checkoutService.ListDates(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Ledger dates retrieved successfully", result)
}

// Delete removes one transaction by receipt code from its day ledger.
// Owner-gated by the auth middleware.
func (h *LedgerHandler) Delete(c *gin.Context) {
	dateKey, ok := DateKeyParam(c)
	if !ok {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	if err := h.checkoutService.DeleteTransaction(c.Request.Context(), dateKey, c.Param("code")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Reprint prints the receipt of an existing transaction again. Owner-gated.
func (h *LedgerHandler) Reprint(c *gin.Context) {
	dateKey, ok := DateKeyParam(c)
	if !ok {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	txn, err := h.checkoutService.FindTransaction(c.Request.Context(), dateKey, c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt, printErr := h.printerService.PrintTransaction(txn, true)
	if printErr != nil {
		// Still return the receipt so the caller can render it elsewhere.
		response.Success(c, 200, "Receipt built but printing failed", receipt)
		return
	}
	response.OK(c, "Receipt reprinted", receipt)
}
