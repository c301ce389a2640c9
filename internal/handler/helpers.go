package handler

import (
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/quizdesk/internal/middleware"
	appErr "github.com/xxxsen/quizdesk/internal/pkg/errors"
	"github.com/xxxsen/quizdesk/internal/pkg/response"
)

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID, _ := c.Get(middleware.ContextRequestIDKey)
	logutil.GetLogger(c.Request.Context()).Warn("request failed",
		zap.Any("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	switch {
	case appErr.IsInvalid(err):
		response.Invalid(c, err.Error())
	default:
		response.Internal(c)
	}
}

// bindOptionalJSON decodes the request body into dst. An empty body leaves
// dst untouched and reports false.
func bindOptionalJSON(c *gin.Context, dst interface{}) (bool, error) {
	if c.Request.Body == nil {
		return false, nil
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("decode body: %v: %w", err, appErr.ErrInvalid)
	}
	return true, nil
}
