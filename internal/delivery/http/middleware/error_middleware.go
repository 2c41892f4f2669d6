package middleware

import (
	"aluxim-mail-relay/internal/delivery/http/response"
	"aluxim-mail-relay/pkg/apperror"
	"aluxim-mail-relay/pkg/logger"
	"aluxim-mail-relay/pkg/validation"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		requestID := c.GetString(RequestIDKey)

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			// Never expose internal error details to clients
			appErr = apperror.Internal(err)
		}

		switch {
		case appErr.Code >= http.StatusInternalServerError:
			logger.Log.Error(appErr.Message, "request_id", requestID, "path", c.FullPath(), "error", appErr.Err)
		case appErr.Err != nil:
			logger.Log.Warn(appErr.Message, "request_id", requestID, "path", c.FullPath(),
				"missing_fields", validation.MissingFields(appErr.Err), "error", appErr.Err)
		}

		response.Error(c, appErr.Code, appErr.Message)
	}
}
