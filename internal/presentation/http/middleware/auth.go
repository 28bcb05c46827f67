package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yudhapane/kacapos/internal/presentation/http/dto/response"
	"github.com/yudhapane/kacapos/pkg/utils"
)

// OwnerAuthMiddleware guards destructive operations (transaction delete,
// reprint, summary printout) behind a valid owner token.
func OwnerAuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateOwnerToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired owner token")
			c.Abort()
			return
		}

		c.Set("owner", true)
		c.Set("owner_claims", claims)
		c.Next()
	}
}
