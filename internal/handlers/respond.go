package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/asset_compass/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error to its status. Server-side failures get a generic message.
func respondError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": failureMsg})
		return
	}
	logger.Warn(failureMsg, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}
