package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// CORSMiddleware accepts cross-origin requests from any origin, without credentials.
func CORSMiddleware() gin.HandlerFunc {
	policy := cors.AllowAll()

	return func(c *gin.Context) {
		policy.HandlerFunc(c.Writer, c.Request)

		// Every OPTIONS request ends here, preflight or not
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
