package v1

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body. An empty body decodes to the zero value
// so the usecase reports missing fields instead of a parse error.
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
