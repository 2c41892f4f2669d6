package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"aluxim-mail-relay/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCORSMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(CORSMiddleware())
	router.POST("/send-email", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	t.Run("any origin is allowed on actual requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/send-email", nil)
		req.Header.Set("Origin", "https://anything.example.org")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight is answered without reaching the handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/send-email", nil)
		req.Header.Set("Origin", "https://aluxim.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "content-type")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})
}

func TestCORSMiddlewarePlainOptions(t *testing.T) {
	router := gin.New()
	router.Use(CORSMiddleware())
	router.POST("/apply-job", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	req := httptest.NewRequest(http.MethodOptions, "/apply-job", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())
	})

	t.Run("reuses the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})
}

func TestErrorHandler(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/validation", func(c *gin.Context) {
		c.Error(apperror.Validation("All fields required.", nil))
	})
	router.GET("/delivery", func(c *gin.Context) {
		c.Error(apperror.Delivery("Failed to send message.", errors.New("secret upstream detail")))
	})
	router.GET("/unknown", func(c *gin.Context) {
		c.Error(errors.New("boom"))
	})

	cases := []struct {
		path string
		code int
		body string
	}{
		{"/validation", http.StatusBadRequest, `{"error":"All fields required."}`},
		{"/delivery", http.StatusInternalServerError, `{"error":"Failed to send message."}`},
		{"/unknown", http.StatusInternalServerError, `{"error":"Internal Server Error"}`},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.code, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
			assert.NotContains(t, w.Body.String(), "secret upstream detail")
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	router := gin.New()
	router.Use(SecurityHeadersMiddleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}
