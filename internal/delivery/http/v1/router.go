package v1

import (
	"aluxim-mail-relay/internal/delivery/http/middleware"
	"aluxim-mail-relay/internal/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	Banner         = "Aluxim Resend Server running ✅"
	MsgInvalidBody = "Invalid request body."
)

type RouterDeps struct {
	ContactUC     domain.ContactUsecase
	ApplicationUC domain.ApplicationUsecase
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	// Health Check
	health := func(c *gin.Context) {
		c.String(http.StatusOK, Banner)
	}
	r.GET("/", health)
	r.GET("/health", health)

	// Public routes
	NewContactHandler(r, deps.ContactUC)
	NewJobApplicationHandler(r, deps.ApplicationUC)

	return r
}
