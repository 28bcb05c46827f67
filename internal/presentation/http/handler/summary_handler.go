package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/yudhapane/kacapos/internal/application/service"
	"github.com/yudhapane/kacapos/internal/presentation/http/dto/response"
)

// SummaryHandler handles daily summary HTTP requests
type SummaryHandler struct {
	summaryService *service.SummaryService
	printerService *service.PrinterService
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService *service.SummaryService, printerService *service.PrinterService) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		printerService: printerService,
	}
}

// Get returns the per-payment-method summary for one date (default today).
func (h *SummaryHandler) Get(c *gin.Context) {
	dateKey, ok := DateKeyParam(c)
	if !ok {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	summary, err := h.summaryService.Summarize(c.Request.Context(), dateKey)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Summary retrieved successfully", summary)
}

// Print sends the closing summary for one date to the thermal printer.
// Owner-gated.
func (h *SummaryHandler) Print(c *gin.Context) {
	dateKey, ok := DateKeyParam(c)
	if !ok {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	summary, err := h.summaryService.Summarize(c.Request.Context(), dateKey)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.printerService.PrintSummary(summary); err != nil {
		response.Success(c, 200, "Summary built but printing failed", summary)
		return
	}
	response.OK(c, "Summary printed", summary)
}
