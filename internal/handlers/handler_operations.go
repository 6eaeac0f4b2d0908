package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/invest_gateway/internal/core/ports/services"
	"github.com/SscSPs/invest_gateway/internal/dto"
	"github.com/SscSPs/invest_gateway/internal/middleware"
	"github.com/gin-gonic/gin"
)

// operationHandler handles account history and per-instrument market data.
type operationHandler struct {
	operationService  portssvc.OperationSvc
	marketDataService portssvc.MarketDataSvc
}

func newOperationHandler(ops portssvc.OperationSvc, ms portssvc.MarketDataSvc) *operationHandler {
	return &operationHandler{
		operationService:  ops,
		marketDataService: ms,
	}
}

// registerOperationRoutes registers routes under /operation_market.
func registerOperationRoutes(rg *gin.RouterGroup, operationService portssvc.OperationSvc, marketDataService portssvc.MarketDataSvc) {
	h := newOperationHandler(operationService, marketDataService)

	ops := rg.Group("/operation_market")
	{
		account := ops.Group("", middleware.RequireAccount())
		account.GET("/operations", h.listOperations)
		account.GET("/portfolio", h.getPortfolio)
		account.GET("/positions", h.getPositions)
		account.GET("/broker_report", h.getBrokerReport)
		account.GET("/withdraw_limits", h.getWithdrawLimits)

		ops.GET("/candles", h.getCandles)
		ops.GET("/last_prices", h.getLastPrices)
		ops.GET("/close_prices", h.getClosePrices)
		ops.GET("/order_book", h.getOrderBook)
	}
}

// listOperations godoc
// @Summary List account operations
// @Description Operations of the last year. Payments keep their sign.
// @Tags operation_market
// @Produce json
// @Param Account-Id header string true "Account id"
// @Success 200 {array} dto.AccountOperationResponse
// @Failure 400 {object} map[string]string "Account-Id header required"
// @Security BearerAuth
// @Router /operation_market/operations [get]
func (h *operationHandler) listOperations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ops, err := h.operationService.Operations(c.Request.Context(), credentials(c))
	if err != nil {
		respondError(c, logger, err, "Failed to get operations")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountOperationResponses(ops))
}

// getPortfolio godoc
// @Summary Get account portfolio
// @Tags operation_market
// @Produce json
// @Param Account-Id header string true "Account id"
// @Success 200 {object} dto.AccountPortfolioResponse
// @Security BearerAuth
// @Router /operation_market/portfolio [get]
func (h *operationHandler) getPortfolio(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	p, err := h.operationService.Portfolio(c.Request.Context(), credentials(c))
	if err != nil {
		respondError(c, logger, err, "Failed to get portfolio")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountPortfolioResponse(p))
}

// getPositions godoc
// @Summary Get account positions
// @Tags operation_market
// @Produce json
// @Param Account-Id header string true "Account id"
// @Success 200 {object} dto.AccountPositionsResponse
// @Security BearerAuth
// @Router /operation_market/positions [get]
func (h *operationHandler) getPositions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	p, err := h.operationService.Positions(c.Request.Context(), credentials(c))
	if err != nil {
		respondError(c, logger, err, "Failed to get positions")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountPositionsResponse(p))
}

// getBrokerReport godoc
// @Summary Request a broker report
// @Description Starts generation of a report for the last year and returns the task id
// @Tags operation_market
// @Produce json
// @Param Account-Id header string true "Account id"
// @Success 200 {object} dto.BrokerReportResponse
// @Security BearerAuth
// @Router /operation_market/broker_report [get]
func (h *operationHandler) getBrokerReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	taskID, err := h.operationService.BrokerReport(c.Request.Context(), credentials(c))
	if err != nil {
		respondError(c, logger, err, "Failed to request broker report")
		return
	}
	c.JSON(http.StatusOK, dto.BrokerReportResponse{TaskID: taskID})
}

// getWithdrawLimits godoc
// @Summary Get withdraw limits
// @Tags operation_market
// @Produce json
// @Param Account-Id header string true "Account id"
// @Success 200 {object} dto.WithdrawLimitsResponse
// @Security BearerAuth
// @Router /operation_market/withdraw_limits [get]
func (h *operationHandler) getWithdrawLimits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	w, err := h.operationService.WithdrawLimits(c.Request.Context(), credentials(c))
	if err != nil {
		respondError(c, logger, err, "Failed to get withdraw limits")
		return
	}
	c.JSON(http.StatusOK, dto.ToWithdrawLimitsResponse(w))
}

// getCandles godoc
// @Summary Get candles
// @Description Candles of the last day unless from and to are given
// @Tags operation_market
// @Produce json
// @Param figi query string true "FIGI"
// @Param interval query string false "1min, 5min, 15min, hour or day" default(hour)
// @Param from query string false "RFC3339 start"
// @Param to query string false "RFC3339 end"
// @Success 200 {array} dto.CandleResponse
// @Security BearerAuth
// @Router /operation_market/candles [get]
func (h *operationHandler) getCandles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.CandlesQuery
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

// getLastPrices godoc
// @Summary Get the last price of an instrument
// @Tags operation_market
// @Produce json
// @Param figi query string true "FIGI"
// @Success 200 {array} dto.LastPriceResponse
// @Security BearerAuth
// @Router /operation_market/last_prices [get]
func (h *operationHandler) getLastPrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.FigiQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}

	prices, err := h.marketDataService.LastPrices(c.Request.Context(), credentials(c), []string{q.Figi})
	if err != nil {
		respondError(c, logger, err, "Failed to get last prices")
		return
	}
	c.JSON(http.StatusOK, dto.ToLastPriceResponses(prices))
}

// getClosePrices godoc
// @Summary Get recent trades
// @Description Anonymous trades of the last 30 minutes
// @Tags operation_market
// @Produce json
// @Param figi query string true "FIGI"
// @Success 200 {array} dto.TradeResponse
// @Security BearerAuth
// @Router /operation_market/close_prices [get]
func (h *operationHandler) getClosePrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.FigiQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}

	trades, err := h.marketDataService.RecentTrades(c.Request.Context(), credentials(c), q.Figi)
	if err != nil {
		respondError(c, logger, err, "Failed to get last trades")
		return
	}
	c.JSON(http.StatusOK, dto.ToTradeResponses(trades))
}

// getOrderBook godoc
// @Summary Get the order book
// @Tags operation_market
// @Produce json
// @Param figi query string true "FIGI"
// @Param depth query int true "Depth: 1, 10, 20, 30, 40 or 50"
// @Success 200 {object} dto.OrderBookResponse
// @Security BearerAuth
// @Router /operation_market/order_book [get]
func (h *operationHandler) getOrderBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.OrderBookQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}

	book, err := h.marketDataService.OrderBook(c.Request.Context(), credentials(c), q.Figi, q.Depth)
	if err != nil {
		respondError(c, logger, err, "Failed to get order book")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderBookResponse(book))
}
