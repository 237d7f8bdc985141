package handlers

import (
	"net/http"

	"meal-marketplace-api/middleware"
	"meal-marketplace-api/pkg/resp"
	"meal-marketplace-api/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type PlaceOrderRequest struct {
	ProviderID      uint   `json:"provider_id" binding:"required"`
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	Note            string `json:"note"`
	Items           []struct {
		MealID   uint `json:"meal_id" binding:"required"`
		Quantity int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1,dive"`
}

// Place creates a new order (customer only)
func (h *OrderHandler) Place(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	in := services.PlaceOrderInput{
		ProviderID:      req.ProviderID,
		DeliveryAddress: req.DeliveryAddress,
		Note:            req.Note,
	}
	for _, item := range req.Items {
		in.Items = append(in.Items, services.OrderItemInput{MealID: item.MealID, Quantity: item.Quantity})
	}

	order, err := h.orders.Place(middleware.GetUserID(c), in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "order placed successfully", order)
}

// ListMine returns all orders for the logged-in customer
func (h *OrderHandler) ListMine(c *gin.Context) {
	orders, err := h.orders.ListMine(middleware.GetUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "orders", gin.H{"count": len(orders), "orders": orders})
}

// Get returns a single order's full detail with history
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.Get(middleware.GetUserID(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "order", order)
}

// Cancel cancels a PLACED order (customer only)
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.Cancel(middleware.GetUserID(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "order cancelled successfully", gin.H{"order_id": order.ID, "status": order.Status})
}
