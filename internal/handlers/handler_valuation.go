package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/asset_compass/internal/core/ports/services"
	"github.com/SscSPs/asset_compass/internal/dto"
	"github.com/SscSPs/asset_compass/internal/middleware"
	"github.com/gin-gonic/gin"
)

type valuationHandler struct {
	valuationService portssvc.ValuationSvc
}

func newValuationHandler(vs portssvc.ValuationSvc) *valuationHandler {
	return &valuationHandler{valuationService: vs}
}

// registerValuationRoutes registers routes related to portfolio valuation.
func registerValuationRoutes(rg *gin.RouterGroup, valuationService portssvc.ValuationSvc) {
	h := newValuationHandler(valuationService)
	rg.GET("/networth", h.getNetWorth)
}

// getNetWorth godoc
// @Summary Get the net worth of the caller
// @Description Sums all holdings in USD and converts the total to the reference currency
// @Tags valuation
// @Produce  json
// @Success 200 {object} dto.NetWorthResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute net worth"
// @Security BearerAuth
// @Router /networth [get]
func (h *valuationHandler) getNetWorth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerRef, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Owner ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	netWorth, err := h.valuationService.NetWorth(c.Request.Context(), ownerRef)
	if err != nil {
		respondError(c, logger, err, "Failed to compute net worth")
		return
	}

	logger.Info("Net worth computed", slog.Int("holdings", netWorth.HoldingCount), slog.Bool("rate_stale", netWorth.RateStale))
	c.JSON(http.StatusOK, dto.ToNetWorthResponse(netWorth))
}
