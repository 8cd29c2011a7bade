package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"cvcraft-backend/internal/delivery/http/response"
	"cvcraft-backend/pkg/apperror"
	"cvcraft-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func appLogger() *slog.Logger {
	if logger.Log != nil {
		return logger.Log
	}
	return slog.Default()
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError {
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// Internal details stay in the log
		requestID, _ := c.Get("RequestID")
		appLogger().Error("Request failed",
			"error", err,
			"path", c.FullPath(),
			"method", c.Request.Method,
			"request_id", requestID,
		)
		if appErr != nil {
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
