package middleware

import (
	"net/http"

	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recovery converts any panic into the generic error envelope. Each
// incident gets a fresh error ID that appears in both the log line and the
// response, so a user report can be matched to the stack trace.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	l := logger.Named("recovery")
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				errorID := uuid.New().String()
				l.Error("unhandled panic",
					zap.String("error_id", errorID),
					zap.Any("panic", r),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"),
				)
				response.Error(c,
					http.StatusInternalServerError,
					apperror.CodeInternalError,
					"An error occurred while processing your request",
					gin.H{"error_id": errorID},
				)
				c.Abort()
			}
		}()
		c.Next()
	}
}
