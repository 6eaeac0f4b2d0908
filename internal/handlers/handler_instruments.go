package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/invest_gateway/internal/core/ports/services"
	"github.com/SscSPs/invest_gateway/internal/dto"
	"github.com/SscSPs/invest_gateway/internal/middleware"
	"github.com/gin-gonic/gin"
)

// nextTokenHeader carries the paging token of list endpoints.
const nextTokenHeader = "X-Next-Token"

// instrumentHandler handles reference data and token owner requests.
type instrumentHandler struct {
	instrumentService portssvc.InstrumentSvcFacade
	userService       portssvc.UserSvc
}

// newInstrumentHandler creates a new instrumentHandler.
func newInstrumentHandler(is portssvc.InstrumentSvcFacade, us portssvc.UserSvc) *instrumentHandler {
	return &instrumentHandler{
		instrumentService: is,
		userService:       us,
	}
}

// registerInstrumentRoutes registers routes under /user_instruments.
func registerInstrumentRoutes(rg *gin.RouterGroup, instrumentService portssvc.InstrumentSvcFacade, userService portssvc.UserSvc) {
	h := newInstrumentHandler(instrumentService, userService)

	instruments := rg.Group("/user_instruments")
	{
		instruments.GET("/trading_schedules", h.getTradingSchedules)
		instruments.GET("/currencies", h.listCurrencies)
		instruments.GET("/currency_by", h.getCurrencyBy)
		instruments.GET("/share_by", h.getShareBy)
		instruments.GET("/shares", h.listShares)
		instruments.GET("/instrument_by", h.getInstrumentBy)
		instruments.GET("/dividends", h.getDividends)
		instruments.GET("/accounts", h.listAccounts)
		instruments.GET("/margin_attributes", middleware.RequireAccount(), h.getMarginAttributes)
		instruments.GET("/user_tariff", h.getUserTariff)
		instruments.GET("/user_info", h.getUserInfo)
	}
}

// getTradingSchedules godoc
// @Summary Get exchange trading schedule
// @Description Returns the trading days of an exchange for the coming week
// @Tags user_instruments
// @Produce json
// @Param exch query string true "Exchange code, e.g. MOEX"
// @Success 200 {array} dto.TradeScheduleResponse
// @Failure 400 {object} map[string]string "exch is required"
// @Failure 401 {object} map[string]string "Broker token required"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Security BearerAuth
// @Router /user_instruments/trading_schedules [get]
func (h *instrumentHandler) getTradingSchedules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.TradingSchedulesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}

	schedules, err := h.instrumentService.TradingSchedules(c.Request.Context(), credentials(c), q.Exchange)
	if err != nil {
		respondError(c, logger, err, "Failed to get trading schedules")
		return
	}
	c.JSON(http.StatusOK, dto.ToTradeScheduleResponses(schedules))
}

// listCurrencies godoc
// @Summary List currencies
// @Description Lists tradable currencies. The next page token is returned in the X-Next-Token header.
// @Tags user_instruments
// @Produce json
// @Param limit query int false "Page size"
// @Param next_token query string false "Page token"
// @Success 200 {array} dto.AvailableCurrencyResponse
// @Failure 400 {object} map[string]string "Invalid paging parameters"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Security BearerAuth
// @Router /user_instruments/currencies [get]
func (h *instrumentHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var page dto.ListParams
	if err := c.ShouldBindQuery(&page); err != nil {
		respondBindError(c, logger, err)
		return
	}

	currencies, next, err := h.instrumentService.Currencies(c.Request.Context(), credentials(c), page)
	if err != nil {
		respondError(c, logger, err, "Failed to list currencies")
		return
	}
	if next != "" {
		c.Header(nextTokenHeader, next)
	}
	logger.Debug("Currencies listed", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToListAvailableCurrencyResponse(currencies))
}

// getCurrencyBy godoc
// @Summary Get a currency by FIGI
// @Tags user_instruments
// @Produce json
// @Param id query string true "Currency FIGI"
// @Success 200 {object} dto.AvailableCurrencyResponse
// @Failure 400 {object} map[string]string "Invalid FIGI"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /user_instruments/currency_by [get]
func (h *instrumentHandler) getCurrencyBy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.CurrencyByQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}

	currency, err := h.instrumentService.CurrencyBy(c.Request.Context(), credentials(c), q.ID)
	if err != nil {
		respondError(c, logger, err, "Failed to get currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToAvailableCurrencyResponse(currency))
}

// getShareBy godoc
// @Summary Get a share by ticker
// @Tags user_instruments
// @Produce json
// @Param ticker query string true "Ticker"
// @Param class_code query string true "Class code, e.g. TQBR"
// @Success 200 {object} dto.AvailableShareResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /user_instruments/share_by [get]
func (h *instrumentHandler) getShareBy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.ShareByQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}

	share, err := h.instrumentService.ShareBy(c.Request.Context(), credentials(c), q.Ticker, q.ClassCode)
	if err != nil {
		respondError(c, logger, err, "Failed to get share")
		return
	}
	c.JSON(http.StatusOK, dto.ToAvailableShareResponse(share))
}

// listShares godoc
// @Summary List shares
// @Description Lists tradable shares. The next page token is returned in the X-Next-Token header.
// @Tags user_instruments
// @Produce json
// @Param limit query int false "Page size"
// @Param next_token query string false "Page token"
// @Success 200 {array} dto.AvailableShareResponse
// @Failure 502 {object} map[string]string "Upstream failure"
// @Security BearerAuth
// @Router /user_instruments/shares [get]
func (h *instrumentHandler) listShares(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var page dto.ListParams
	if err := c.ShouldBindQuery(&page); err != nil {
		respondBindError(c, logger, err)
		return
	}

	shares, next, err := h.instrumentService.Shares(c.Request.Context(), credentials(c), page)
	if err != nil {
		respondError(c, logger, err, "Failed to list shares")
		return
	}
	if next != "" {
		c.Header(nextTokenHeader, next)
	}
	c.JSON(http.StatusOK, dto.ToListAvailableShareResponse(shares))
}

// getInstrumentBy godoc
// @Summary Get an instrument by FIGI
// @Tags user_instruments
// @Produce json
// @Param figi query string true "FIGI"
// @Success 200 {object} dto.AvailableShareResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /user_instruments/instrument_by [get]
func (h *instrumentHandler) getInstrumentBy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.FigiQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}

	inst, err := h.instrumentService.InstrumentBy(c.Request.Context(), credentials(c), "figi", "", q.Figi)
	if err != nil {
		respondError(c, logger, err, "Failed to get instrument")
		return
	}
	c.JSON(http.StatusOK, dto.ToAvailableShareResponse(inst))
}

// getDividends godoc
// @Summary Get dividends of a share
// @Description Dividends declared within the last year
// @Tags user_instruments
// @Produce json
// @Param figi query string true "FIGI"
// @Success 200 {array} dto.ShareDividendResponse
// @Security BearerAuth
// @Router /user_instruments/dividends [get]
func (h *instrumentHandler) getDividends(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.FigiQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}

	divs, err := h.instrumentService.Dividends(c.Request.Context(), credentials(c), q.Figi)
	if err != nil {
		respondError(c, logger, err, "Failed to get dividends")
		return
	}
	c.JSON(http.StatusOK, dto.ToShareDividendResponses(q.Figi, divs))
}

// listAccounts godoc
// @Summary List accounts
// @Tags user_instruments
// @Produce json
// @Success 200 {array} dto.AccountResponse
// @Security BearerAuth
// @Router /user_instruments/accounts [get]
func (h *instrumentHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accounts, err := h.userService.Accounts(c.Request.Context(), credentials(c))
	if err != nil {
		respondError(c, logger, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// getMarginAttributes godoc
// @Summary Get margin attributes
// @Tags user_instruments
// @Produce json
// @Param Account-Id header string true "Account id"
// @Success 200 {object} dto.MarginAttributesResponse
// @Failure 400 {object} map[string]string "Account-Id header required"
// @Security BearerAuth
// @Router /user_instruments/margin_attributes [get]
func (h *instrumentHandler) getMarginAttributes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	attrs, err := h.userService.MarginAttributes(c.Request.Context(), credentials(c))
	if err != nil {
		respondError(c, logger, err, "Failed to get margin attributes")
		return
	}
	c.JSON(http.StatusOK, dto.ToMarginAttributesResponse(attrs))
}

// getUserTariff godoc
// @Summary Get API request limits of the token
// @Tags user_instruments
// @Produce json
// @Success 200 {object} dto.UserTariffResponse
// @Security BearerAuth
// @Router /user_instruments/user_tariff [get]
func (h *instrumentHandler) getUserTariff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tariff, err := h.userService.UserTariff(c.Request.Context(), credentials(c))
	if err != nil {
		respondError(c, logger, err, "Failed to get user tariff")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserTariffResponse(tariff))
}

// getUserInfo godoc
// @Summary Get token owner information
// @Tags user_instruments
// @Produce json
// @Success 200 {object} dto.UserInfoResponse
// @Security BearerAuth
// @Router /user_instruments/user_info [get]
func (h *instrumentHandler) getUserInfo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	info, err := h.userService.UserInfo(c.Request.Context(), credentials(c))
	if err != nil {
		respondError(c, logger, err, "Failed to get user info")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserInfoResponse(info))
}
