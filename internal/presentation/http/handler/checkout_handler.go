package handler

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/yudhapane/kacapos/internal/application/service"
	"github.com/yudhapane/kacapos/internal/domain/enum"
	"github.com/yudhapane/kacapos/internal/presentation/http/dto/request"
	"github.com/yudhapane/kacapos/internal/presentation/http/dto/response"
)

// CheckoutHandler handles checkout HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
	printerService  *service.PrinterService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService, printerService *service.PrinterService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		printerService:  printerService,
	}
}

// checkoutView is the recorded transaction plus its printable receipt.
type checkoutView struct {
	Transaction interface{} `json:"transaction"`
	Receipt     interface{} `json:"receipt"`
}

// Checkout finalizes the session's cart as a paid transaction. The receipt
// prints best-effort: a printer failure does not undo a recorded sale.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	session := GetSession(c)

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	txn, err := h.checkoutService.Checkout(c.Request.Context(), session, enum.PaymentMethod(req.PaymentMethod))
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt, printErr := h.printerService.PrintTransaction(txn, false)
	if printErr != nil {
		log.Printf("Receipt print failed after checkout %s: %v", txn.ReceiptCode, printErr)
	}

	response.Created(c, "Transaction recorded", checkoutView{
		Transaction: txn,
		Receipt:     receipt,
	})
}
