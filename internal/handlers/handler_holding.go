package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/asset_compass/internal/apperrors"
	"github.com/SscSPs/asset_compass/internal/core/domain"
	portssvc "github.com/SscSPs/asset_compass/internal/core/ports/services"
	"github.com/SscSPs/asset_compass/internal/dto"
	"github.com/SscSPs/asset_compass/internal/middleware"
	"github.com/gin-gonic/gin"
)

// holdingHandler handles HTTP requests related to holdings.
type holdingHandler struct {
	tradeService  portssvc.TradeSvcFacade
	ledgerService portssvc.LedgerSvc
}

// newHoldingHandler creates a new holdingHandler.
func newHoldingHandler(ts portssvc.TradeSvcFacade, ls portssvc.LedgerSvc) *holdingHandler {
	return &holdingHandler{
		tradeService:  ts,
		ledgerService: ls,
	}
}

// registerHoldingRoutes registers routes related to holdings.
func registerHoldingRoutes(rg *gin.RouterGroup, tradeService portssvc.TradeSvcFacade, ledgerService portssvc.LedgerSvc) {
	h := newHoldingHandler(tradeService, ledgerService)

	holdings := rg.Group("/holdings")
	{
		holdings.POST("/buy", h.buy)
		holdings.POST("", h.createManualAsset)
		holdings.GET("", h.listHoldings)
		holdings.GET("/:holdingID", h.getHolding)
		holdings.POST("/:holdingID/refresh", h.refreshPrice)
		holdings.PUT("/:holdingID", h.manualAdjust)
		holdings.DELETE("/:holdingID", h.deleteHolding)
		holdings.GET("/:holdingID/history", h.listHistory)
	}
}

// buy godoc
// @Summary Buy into an instrument
// @Description Converts an invested cash amount into units of a ticker at the current price
// @Tags holdings
// @Accept  json
// @Produce  json
// @Param   order body dto.BuyRequest true "Order details"
// @Success 201 {object} dto.TradeReceiptResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Price unavailable"
// @Failure 500 {object} map[string]string "Failed to execute buy"
// @Security BearerAuth
// @Router /holdings/buy [post]
func (h *holdingHandler) buy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Buy", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerRef, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Owner ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	instrumentType, _ := domain.ParseInstrumentType(req.InstrumentType)
	if req.InstrumentType == "" {
		instrumentType = domain.Stock
	}

	logger.Info("Received request to buy", slog.String("ticker", req.Ticker), slog.String("currency", req.PaymentCurrency))

	receipt, err := h.tradeService.Buy(c.Request.Context(), domain.BuyOrder{
		OwnerRef:        ownerRef,
		OwnerEmail:      middleware.GetUserEmailFromContext(c),
		Ticker:          req.Ticker,
		Name:            req.Name,
		InstrumentType:  instrumentType,
		InvestedAmount:  req.InvestedAmount,
		PaymentCurrency: req.PaymentCurrency,
	})
	if err != nil {
		respondError(c, logger, err, "Failed to execute buy")
		return
	}

	logger.Info("Buy executed successfully", slog.String("holding_id", receipt.Holding.HoldingID))
	c.JSON(http.StatusCreated, dto.ToTradeReceiptResponse(receipt))
}

// createManualAsset godoc
// @Summary Record a manual asset
// @Description Records a legacy asset by its total value as one unit
// @Tags holdings
// @Accept  json
// @Produce  json
// @Param   asset body dto.CreateManualAssetRequest true "Asset details"
// @Success 201 {object} dto.HoldingResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record asset"
// @Security BearerAuth
// @Router /holdings [post]
func (h *holdingHandler) createManualAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateManualAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateManualAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerRef, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Owner ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	instrumentType, _ := domain.ParseInstrumentType(req.InstrumentType)
	holding, err := h.tradeService.CreateManualAsset(c.Request.Context(), domain.ManualAsset{
		OwnerRef:       ownerRef,
		Name:           req.Name,
		Ticker:         req.Ticker,
		InstrumentType: instrumentType,
		Value:          req.Value,
		Currency:       req.Currency,
	})
	if err != nil {
		respondError(c, logger, err, "Failed to record asset")
		return
	}

	logger.Info("Manual asset recorded successfully", slog.String("holding_id", holding.HoldingID))
	c.JSON(http.StatusCreated, dto.ToHoldingResponse(holding))
}

// listHoldings godoc
// @Summary List holdings of the caller
// @Tags holdings
// @Produce  json
// @Success 200 {object} dto.ListHoldingsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list holdings"
// @Security BearerAuth
// @Router /holdings [get]
func (h *holdingHandler) listHoldings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerRef, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Owner ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	holdings, err := h.tradeService.ListHoldings(c.Request.Context(), ownerRef)
	if err != nil {
		respondError(c, logger, err, "Failed to list holdings")
		return
	}

	logger.Info("Holdings listed successfully", slog.Int("count", len(holdings)))
	c.JSON(http.StatusOK, dto.ToListHoldingsResponse(holdings))
}

// getHolding godoc
// @Summary Get a holding by ID
// @Tags holdings
// @Produce  json
// @Param   holdingID path string true "Holding ID"
// @Success 200 {object} dto.HoldingResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (another owner's holding)"
// @Failure 404 {object} map[string]string "Holding not found"
// @Failure 500 {object} map[string]string "Failed to retrieve holding"
// @Security BearerAuth
// @Router /holdings/{holdingID} [get]
func (h *holdingHandler) getHolding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	holding, ok := h.ownedHolding(c, logger)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToHoldingResponse(holding))
}

// refreshPrice godoc
// @Summary Refresh the price of a holding
// @Description Replaces the reference price of a holding with the current market price. Quantity never changes.
// @Tags holdings
// @Produce  json
// @Param   holdingID path string true "Holding ID"
// @Success 200 {object} dto.RefreshPriceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (another owner's holding)"
// @Failure 404 {object} map[string]string "Holding not found"
// @Failure 502 {object} map[string]string "Price unavailable"
// @Failure 500 {object} map[string]string "Failed to refresh price"
// @Security BearerAuth
// @Router /holdings/{holdingID}/refresh [post]
func (h *holdingHandler) refreshPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	holding, ok := h.ownedHolding(c, logger)
	if !ok {
		return
	}

	result, err := h.tradeService.RefreshPrice(c.Request.Context(), holding.HoldingID)
	if err != nil {
		respondError(c, logger, err, "Failed to refresh price")
		return
	}

	logger.Info("Price refreshed successfully", slog.String("new_price", result.NewPrice.String()))
	c.JSON(http.StatusOK, dto.ToRefreshPriceResponse(result))
}

// manualAdjust godoc
// @Summary Overwrite the value of a holding
// @Description Sets the total USD value of a holding, for assets without a market price
// @Tags holdings
// @Accept  json
// @Produce  json
// @Param   holdingID path string true "Holding ID"
// @Param   adjustment body dto.ManualAdjustRequest true "New total value in USD"
// @Success 200 {object} dto.HoldingResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (another owner's holding)"
// @Failure 404 {object} map[string]string "Holding not found"
// @Failure 500 {object} map[string]string "Failed to adjust holding"
// @Security BearerAuth
// @Router /holdings/{holdingID} [put]
func (h *holdingHandler) manualAdjust(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ManualAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ManualAdjust", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	holding, ok := h.ownedHolding(c, logger)
	if !ok {
		return
	}

	updated, err := h.tradeService.ManualAdjust(c.Request.Context(), holding.HoldingID, req.NewValue)
	if err != nil {
		respondError(c, logger, err, "Failed to adjust holding")
		return
	}

	logger.Info("Holding adjusted successfully")
	c.JSON(http.StatusOK, dto.ToHoldingResponse(updated))
}

// deleteHolding godoc
// @Summary Delete a holding
// @Description Removes a holding. Its history is kept.
// @Tags holdings
// @Param   holdingID path string true "Holding ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (another owner's holding)"
// @Failure 404 {object} map[string]string "Holding not found"
// @Failure 500 {object} map[string]string "Failed to delete holding"
// @Security BearerAuth
// @Router /holdings/{holdingID} [delete]
func (h *holdingHandler) deleteHolding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	holding, ok := h.ownedHolding(c, logger)
	if !ok {
		return
	}

	if err := h.tradeService.DeleteHolding(c.Request.Context(), holding.HoldingID); err != nil {
		respondError(c, logger, err, "Failed to delete holding")
		return
	}

	logger.Info("Holding deleted successfully")
	c.Status(http.StatusNoContent)
}

// listHistory godoc
// @Summary List the value history of a holding
// @Description Returns ledger entries newest first using token-based pagination
// @Tags holdings
// @Produce  json
// @Param   holdingID path string true "Holding ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token of the next page"
// @Success 200 {object} dto.ListLedgerEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (another owner's holding)"
// @Failure 404 {object} map[string]string "Holding not found"
// @Failure 500 {object} map[string]string "Failed to load history"
// @Security BearerAuth
// @Router /holdings/{holdingID}/history [get]
func (h *holdingHandler) listHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListLedgerEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListHistory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	holding, ok := h.ownedHolding(c, logger)
	if !ok {
		return
	}

	entries, next, err := h.ledgerService.HistoryPage(c.Request.Context(), holding.HoldingID, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to load history")
		return
	}

	c.JSON(http.StatusOK, dto.ToListLedgerEntriesResponse(holding.HoldingID, entries, next))
}

// ownedHolding loads the holding named in the path and checks the caller owns it.
// On failure it writes the response and returns false.
func (h *holdingHandler) ownedHolding(c *gin.Context, logger *slog.Logger) (*domain.Holding, bool) {
	ownerRef, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Owner ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}

	holdingID := c.Param("holdingID")
	holding, err := h.tradeService.GetHolding(c.Request.Context(), holdingID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve holding")
		return nil, false
	}
	if !holding.OwnedBy(ownerRef) {
		logger.Warn("Owner forbidden to access holding", slog.String("holding_id", holdingID), slog.String("holding_owner", holding.OwnerRef))
		c.JSON(apperrors.StatusCode(apperrors.ErrForbidden), gin.H{"error": "Forbidden"})
		return nil, false
	}
	return holding, true
}
