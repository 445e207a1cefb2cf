package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const clientIDKey = "clientId"

// Identity stores a caller identity in context when the client sends one.
// The frontend keeps its session in localStorage and forwards the id as
// X-Client-Id; nothing here is authentication, the id only keys rate
// limiting and history records. Absent header falls back to the client IP.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader("X-Client-Id"))
		if id == "" {
			id = c.ClientIP()
		}
		c.Set(clientIDKey, id)
		c.Next()
	}
}

// ClientIDFromContext fetches the caller identity set by Identity middleware.
func ClientIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(clientIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
