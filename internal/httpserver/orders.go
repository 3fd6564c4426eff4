package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopapi/internal/domain"
	ordersvc "shopapi/internal/service/order"
)

type createOrderRequest struct {
	UserID          string          `json:"userId" binding:"required"`
	ShippingAddress *addressRequest `json:"shippingAddress"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
}

func (h *handlers) listOrders(c *gin.Context) {
	filter := ordersvc.ListFilter{
		UserID: c.Query("userId"),
		Status: domain.OrderStatus(c.Query("status")),
		Limit:  intQuery(c, "limit", 10),
		Offset: intQuery(c, "offset", 0),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		respondErrorCode(c, http.StatusBadRequest, codeBadRequest, "Invalid status filter")
		return
	}
	c.JSON(http.StatusOK, h.deps.OrderSvc.List(filter))
}

func (h *handlers) getOrder(c *gin.Context) {
	o, err := h.deps.OrderSvc.Get(c.Param("orderId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *handlers) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	o, err := h.deps.OrderSvc.Place(ordersvc.PlaceInput{
		UserID:          req.UserID,
		ShippingAddress: req.ShippingAddress.toDomain(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h *handlers) updateOrderStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	o, err := h.deps.OrderSvc.UpdateStatus(c.Param("orderId"), domain.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}
