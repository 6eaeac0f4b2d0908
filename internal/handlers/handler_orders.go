package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/invest_gateway/internal/core/ports/services"
	"github.com/SscSPs/invest_gateway/internal/dto"
	"github.com/SscSPs/invest_gateway/internal/middleware"
	"github.com/gin-gonic/gin"
)

// orderHandler handles order and stop order requests.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func newOrderHandler(svc portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{orderService: svc}
}

// registerOrderRoutes registers routes under /orders. Every route is account scoped.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders", middleware.RequireAccount())
	{
		orders.POST("/post_order", h.postOrder)
		orders.GET("/order_state", h.getOrderState)
		orders.GET("/get", h.listOrders)
		orders.POST("/cancel_order", h.cancelOrder)
		orders.PUT("/replace_order", h.replaceOrder)
		orders.POST("/post_stop_order", h.postStopOrder)
		orders.GET("/get_stop_order", h.listStopOrders)
		orders.POST("/cancel_stop_order", h.cancelStopOrder)
	}
}

// postOrder godoc
// @Summary Post an order
// @Description Direction is Buy or Sell; order type is Limit, Market or Best Price. A missing order_id is generated.
// @Tags orders
// @Accept json
// @Produce json
// @Param Account-Id header string true "Account id"
// @Param order body dto.PostOrderRequest true "Order"
// @Success 200 {object} dto.PostOrderResponse
// @Failure 400 {object} map[string]string "Invalid order"
// @Security BearerAuth
// @Router /orders/post_order [post]
func (h *orderHandler) postOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PostOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger.Info("Received request to post order", slog.String("figi", req.Figi), slog.String("direction", req.Direction))
	report, err := h.orderService.PostOrder(c.Request.Context(), credentials(c), req)
	if err != nil {
		respondError(c, logger, err, "Failed to post order")
		return
	}
	c.JSON(http.StatusOK, dto.ToPostOrderResponse(report))
}

// getOrderState godoc
// @Summary Get order state
// @Tags orders
// @Produce json
// @Param Account-Id header string true "Account id"
// @Param order_id query string true "Order id"
// @Success 200 {object} dto.OrderStateResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /orders/order_state [get]
func (h *orderHandler) getOrderState(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.OrderIDQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}

	state, err := h.orderService.OrderState(c.Request.Context(), credentials(c), q.OrderID)
	if err != nil {
		respondError(c, logger, err, "Failed to get order state")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderStateResponse(state))
}

// listOrders godoc
// @Summary List active orders
// @Tags orders
// @Produce json
// @Param Account-Id header string true "Account id"
// @Success 200 {array} dto.OrderStateResponse
// @Security BearerAuth
// @Router /orders/get [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orders, err := h.orderService.Orders(c.Request.Context(), credentials(c))
	if err != nil {
		respondError(c, logger, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, dto.ToListOrderStateResponse(orders))
}

// cancelOrder godoc
// @Summary Cancel an order
// @Tags orders
// @Produce json
// @Param Account-Id header string true "Account id"
// @Param order_id query string true "Order id"
// @Success 200 {object} dto.CancelResponse
// @Security BearerAuth
// @Router /orders/cancel_order [post]
func (h *orderHandler) cancelOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.OrderIDQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}

	at, err := h.orderService.CancelOrder(c.Request.Context(), credentials(c), q.OrderID)
	if err != nil {
		respondError(c, logger, err, "Failed to cancel order")
		return
	}
	logger.Info("Order cancelled", slog.String("order_id", q.OrderID))
	c.JSON(http.StatusOK, dto.CancelResponse{Time: at})
}

// replaceOrder godoc
// @Summary Replace an order
// @Description Changes quantity and price of an active order
// @Tags orders
// @Accept json
// @Produce json
// @Param Account-Id header string true "Account id"
// @Param order body dto.ReplaceOrderRequest true "Replacement"
// @Success 200 {object} dto.PostOrderResponse
// @Security BearerAuth
// @Router /orders/replace_order [put]
func (h *orderHandler) replaceOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReplaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	report, err := h.orderService.ReplaceOrder(c.Request.Context(), credentials(c), req)
	if err != nil {
		respondError(c, logger, err, "Failed to replace order")
		return
	}
	c.JSON(http.StatusOK, dto.ToPostOrderResponse(report))
}

// postStopOrder godoc
// @Summary Post a stop order
// @Description Stop order type is Take Profit, Stop Loss or Stop Limit; expiration is Good Till Cancel or Good Till Date
// @Tags orders
// @Accept json
// @Produce json
// @Param Account-Id header string true "Account id"
// @Param order body dto.PostStopOrderRequest true "Stop order"
// @Success 200 {object} dto.StopOrderIDResponse
// @Security BearerAuth
// @Router /orders/post_stop_order [post]
func (h *orderHandler) postStopOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PostStopOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	id, err := h.orderService.PostStopOrder(c.Request.Context(), credentials(c), req)
	if err != nil {
		respondError(c, logger, err, "Failed to post stop order")
		return
	}
	c.JSON(http.StatusOK, dto.StopOrderIDResponse{StopOrderID: id})
}

// listStopOrders godoc
// @Summary List active stop orders
// @Tags orders
// @Produce json
// @Param Account-Id header string true "Account id"
// @Success 200 {array} dto.StopOrderResponse
// @Security BearerAuth
// @Router /orders/get_stop_order [get]
func (h *orderHandler) listStopOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orders, err := h.orderService.StopOrders(c.Request.Context(), credentials(c))
	if err != nil {
		respondError(c, logger, err, "Failed to list stop orders")
		return
	}
	c.JSON(http.StatusOK, dto.ToStopOrderResponses(orders))
}

// cancelStopOrder godoc
// @Summary Cancel a stop order
// @Tags orders
// @Produce json
// @Param Account-Id header string true "Account id"
// @Param stop_order_id query string true "Stop order id"
// @Success 200 {object} dto.CancelResponse
// @Security BearerAuth
// @Router /orders/cancel_stop_order [post]
func (h *orderHandler) cancelStopOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.StopOrderIDQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}

	at, err := h.orderService.CancelStopOrder(c.Request.Context(), credentials(c), q.StopOrderID)
	if err != nil {
		respondError(c, logger, err, "Failed to cancel stop order")
		return
	}
	logger.Info("Stop order cancelled", slog.String("stop_order_id", q.StopOrderID))
	c.JSON(http.StatusOK, dto.CancelResponse{Time: at})
}
