package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yudhapane/kacapos/internal/domain/entity"
)

// GetSession extracts the cashier session from the Gin context. The session
// middleware puts it there; handlers behind that middleware can rely on it.
func GetSession(c *gin.Context) *entity.Session {
	val, exists := c.Get("session")
	if !exists {
		return nil
	}
	session, ok := val.(*entity.Session)
	if !ok {
		return nil
	}
	return session
}

// DateKeyParam returns the validated ?date= query parameter, defaulting to
// today. The second return is false when the parameter is malformed.
func DateKeyParam(c *gin.Context) (string, bool) {
	raw := c.Query("date")
	if raw == "" {
		return entity.DateKeyFor(time.Now()), true
	}
	if _, err := time.Parse(entity.DateKeyFormat, raw); err != nil {
		return "", false
	}
	return raw, true
}
