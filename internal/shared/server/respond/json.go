package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes the payload with the given status. Success bodies are the
// payload itself, never wrapped in an envelope; errors go through Error.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// OK writes the payload with 200 OK.
func OK(c *gin.Context, payload any) {
	JSON(c, http.StatusOK, payload)
}
