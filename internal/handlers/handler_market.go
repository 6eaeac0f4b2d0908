package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/invest_gateway/internal/core/ports/services"
	"github.com/SscSPs/invest_gateway/internal/dto"
	"github.com/SscSPs/invest_gateway/internal/middleware"
	"github.com/gin-gonic/gin"
)

// marketHandler serves the exchange-style /market API.
type marketHandler struct {
	instrumentService portssvc.InstrumentSvcFacade
	operationService  portssvc.OperationSvc
	marketDataService portssvc.MarketDataSvc
}

// registerMarketRoutes registers routes under /market.
func registerMarketRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &marketHandler{
		instrumentService: services.Instrument,
		operationService:  services.Operation,
		marketDataService: services.MarketData,
	}

	market := rg.Group("/market")
	{
		market.GET("/get_kline", h.getKline)
		market.GET("/instrument_info", h.getInstrumentInfo)
		market.GET("/tickers", h.getTickers)
		market.GET("/position_info", middleware.RequireAccount(), h.getPositionInfo)
	}
}

// getKline godoc
// @Summary Get candles within a window
// @Tags market
// @Produce json
// @Param figi query string true "FIGI"
// @Param interval query string true "1min, 5min, 15min, hour or day"
// @Param from query string true "RFC3339 start"
// @Param to query string true "RFC3339 end"
// @Success 200 {array} dto.CandleResponse
// @Failure 400 {object} map[string]string "Invalid window or interval"
// @Security BearerAuth
// @Router /market/get_kline [get]
func (h *marketHandler) getKline(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.KlineQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}

	candles, err := h.marketDataService.Candles(c.Request.Context(), credentials(c), q.Figi, q.Interval, q.From, q.To)
	if err != nil {
		respondError(c, logger, err, "Failed to get candles")
		return
	}
	c.JSON(http.StatusOK, dto.ToCandleResponses(candles))
}

// getInstrumentInfo godoc
// @Summary Get any instrument
// @Tags market
// @Produce json
// @Param id query string true "Identifier"
// @Param id_type query string false "figi, ticker or uid" default(figi)
// @Param class_code query string false "Class code, required for ticker"
// @Success 200 {object} dto.AvailableShareResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /market/instrument_info [get]
func (h *marketHandler) getInstrumentInfo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.InstrumentInfoQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}

	inst, err := h.instrumentService.InstrumentBy(c.Request.Context(), credentials(c), q.IDType, q.ClassCode, q.ID)
	if err != nil {
		respondError(c, logger, err, "Failed to get instrument")
		return
	}
	c.JSON(http.StatusOK, dto.ToAvailableShareResponse(inst))
}

// getTickers godoc
// @Summary Get last prices of several instruments
// @Tags market
// @Produce json
// @Param figi query []string true "FIGI, repeat for more instruments" collectionFormat(multi)
// @Success 200 {array} dto.LastPriceResponse
// @Security BearerAuth
// @Router /market/tickers [get]
func (h *marketHandler) getTickers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.TickersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}

	prices, err := h.marketDataService.LastPrices(c.Request.Context(), credentials(c), q.Figi)
	if err != nil {
		respondError(c, logger, err, "Failed to get last prices")
		return
	}
	c.JSON(http.StatusOK, dto.ToLastPriceResponses(prices))
}

// getPositionInfo godoc
// @Summary Get the holding of one instrument
// @Tags market
// @Produce json
// @Param Account-Id header string true "Account id"
// @Param figi query string true "FIGI"
// @Success 200 {object} dto.PositionsSecurityResponse
// @Failure 404 {object} map[string]string "No position"
// @Security BearerAuth
// @Router /market/position_info [get]
func (h *marketHandler) getPositionInfo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.FigiQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}

	pos, err := h.operationService.PositionInfo(c.Request.Context(), credentials(c), q.Figi)
	if err != nil {
		respondError(c, logger, err, "Failed to get position")
		return
	}
	c.JSON(http.StatusOK, dto.ToPositionsSecurityResponse(pos))
}
