package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thoughtcode-25/DIGI-FARM/internal/middleware"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/errors"
	"github.com/thoughtcode-25/DIGI-FARM/pkg/logger"
)

// statusFor maps application error codes onto HTTP statuses.
func statusFor(code string) int {
	switch code {
	case errors.ErrCodeValidation:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeNoTasksForDate, errors.ErrCodeUnknownTask:
		return http.StatusNotFound
	case errors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case errors.ErrCodeForbidden:
		return http.StatusForbidden
	case errors.ErrCodeAlreadyExists:
		return http.StatusConflict
	case errors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case errors.ErrCodeProviderUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	code := errors.CodeOf(err)
	status := statusFor(code)

	message := err.Error()
	if appErr, ok := err.(*errors.AppError); ok {
		message = appErr.Message
	}
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "path", c.FullPath(), "error", err)
		message = "internal server error"
	}

	c.JSON(status, gin.H{"error": message, "code": code})
}

func farmerID(c *gin.Context) string {
	return c.GetString(middleware.ContextFarmerID)
}

func username(c *gin.Context) string {
	return c.GetString(middleware.ContextUsername)
}
