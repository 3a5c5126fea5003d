package handlers

import (
	"net/http"

	"coursestore/services/order"
	"coursestore/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves order submission and listing.
type OrderHandler struct {
	Service order.OrderService
}

func NewOrderHandler(orderSvc order.OrderService) *OrderHandler {
	return &OrderHandler{Service: orderSvc}
}

// CreateOrderHandler handles POST /orders.
func (h *OrderHandler) CreateOrderHandler(c *gin.Context) {
	var input order.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "malformed order body")
		return
	}

	record, err := h.Service.SubmitOrder(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"orderId": record.ID,
		"order":   record,
	})
}

// ListOrdersHandler handles GET /orders.
func (h *OrderHandler) ListOrdersHandler(c *gin.Context) {
	orders, err := h.Service.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
