package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope the contact and careers forms expect:
// {"success": true} or {"error": "..."}
type Response struct {
	Success bool   `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int) {
	c.JSON(code, Response{Success: true})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Error: message})
}
