package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yudhapane/kacapos/internal/application/service"
	"github.com/yudhapane/kacapos/internal/presentation/http/dto/response"
)

// SessionHandler handles cashier session HTTP requests
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Open starts a new cashier session with an empty cart.
func (h *SessionHandler) Open(c *gin.Context) {
	session := h.sessionService.Open()
	response.Created(c, "Session opened", session)
}

// Close ends a cashier session. The cart is discarded with it.
func (h *SessionHandler) Close(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	if err := h.sessionService.Close(id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
