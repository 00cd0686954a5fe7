package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/asset_compass/internal/core/domain"
	portssvc "github.com/SscSPs/asset_compass/internal/core/ports/services"
	"github.com/SscSPs/asset_compass/internal/dto"
	"github.com/SscSPs/asset_compass/internal/middleware"
	"github.com/gin-gonic/gin"
)

// marketHandler exposes read-only price oracle lookups.
type marketHandler struct {
	oracle portssvc.PriceOracleSvc
}

func newMarketHandler(oracle portssvc.PriceOracleSvc) *marketHandler {
	return &marketHandler{oracle: oracle}
}

// registerMarketRoutes registers routes related to market data.
func registerMarketRoutes(rg *gin.RouterGroup, oracle portssvc.PriceOracleSvc) {
	h := newMarketHandler(oracle)

	market := rg.Group("/market")
	{
		market.GET("/rate", h.getExchangeRate)
		market.GET("/search", h.searchInstruments)
		market.GET("/price/:ticker", h.getUnitPrice)
	}
}

// getExchangeRate godoc
// @Summary Get the USD exchange rate of a currency
// @Description Returns units of the currency per one USD. Never fails for a valid code: stale or seeded values are flagged.
// @Tags market
// @Produce  json
// @Param   currency query string true "ISO 4217 currency code"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /market/rate [get]
func (h *marketHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ExchangeRateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for GetExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	quote := h.oracle.GetExchangeRate(c.Request.Context(), domain.USDTo(params.Currency))
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(quote))
}

// searchInstruments godoc
// @Summary Search instruments
// @Description Looks up tickers by keyword. Results are marked synthetic when the market data provider is unavailable.
// @Tags market
// @Produce  json
// @Param   query query string true "Keywords"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to search instruments"
// @Security BearerAuth
// @Router /market/search [get]
func (h *marketHandler) searchInstruments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for SearchInstruments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	matches, err := h.oracle.SearchInstruments(c.Request.Context(), params.Query)
	if err != nil {
		respondError(c, logger, err, "Failed to search instruments")
		return
	}
	c.JSON(http.StatusOK, dto.ToSearchResponse(matches))
}

// getUnitPrice godoc
// @Summary Get the current USD price of a ticker
// @Tags market
// @Produce  json
// @Param   ticker path string true "Ticker symbol"
// @Success 200 {object} dto.UnitPriceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Price unavailable"
// @Security BearerAuth
// @Router /market/price/{ticker} [get]
func (h *marketHandler) getUnitPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ticker := c.Param("ticker")

	price, err := h.oracle.GetUnitPrice(c.Request.Context(), ticker)
	if err != nil {
		respondError(c, logger, err, "Failed to get unit price")
		return
	}

	c.JSON(http.StatusOK, dto.UnitPriceResponse{
		Ticker:    ticker,
		UnitPrice: price,
		Currency:  domain.USD,
	})
}
