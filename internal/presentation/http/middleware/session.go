package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yudhapane/kacapos/internal/application/service"
	"github.com/yudhapane/kacapos/internal/presentation/http/dto/response"
)

// SessionHeader names the header carrying the cashier session ID.
const SessionHeader = "X-Session-ID"

// SessionMiddleware resolves the cashier session from the request header and
// puts it on the context for cart and checkout handlers.
func SessionMiddleware(sessionService *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SessionHeader)
		if raw == "" {
			response.BadRequest(c, SessionHeader+" header is required")
			c.Abort()
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid session ID")
			c.Abort()
			return
		}

		session, err := sessionService.Get(id)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set("session", session)
		c.Next()
	}
}
