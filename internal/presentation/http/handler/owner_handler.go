package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/yudhapane/kacapos/internal/application/service"
	"github.com/yudhapane/kacapos/internal/presentation/http/dto/request"
	"github.com/yudhapane/kacapos/internal/presentation/http/dto/response"
)

// OwnerHandler handles the owner passcode gate
type OwnerHandler struct {
	ownerService *service.OwnerService
}

// NewOwnerHandler creates a new owner handler
func NewOwnerHandler(ownerService *service.OwnerService) *OwnerHandler {
	return &OwnerHandler{ownerService: ownerService}
}

// Login checks the owner passcode and returns a short-lived token for
// destructive operations.
func (h *OwnerHandler) Login(c *gin.Context) {
	var req request.OwnerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.ownerService.Login(req.Passcode)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Owner login successful", result)
}
