package handlers

import (
	"net/http"

	"meal-marketplace-api/middleware"
	"meal-marketplace-api/models"
	"meal-marketplace-api/pkg/resp"
	"meal-marketplace-api/services"

	"github.com/gin-gonic/gin"
)

type ProviderHandler struct {
	providers *services.ProviderService
	orders    *services.OrderService
}

func NewProviderHandler(providers *services.ProviderService, orders *services.OrderService) *ProviderHandler {
	return &ProviderHandler{providers: providers, orders: orders}
}

// Me returns the caller's provider profile
func (h *ProviderHandler) Me(c *gin.Context) {
	profile, err := h.providers.MyProfile(middleware.GetUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "provider profile", profile)
}

// UpdateMe edits the caller's provider profile
func (h *ProviderHandler) UpdateMe(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	profile, err := h.providers.UpdateProfile(middleware.GetUserID(c), fields)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "provider profile updated", profile)
}

// Dashboard returns order counts per status, revenue sums and menu size
func (h *ProviderHandler) Dashboard(c *gin.Context) {
	dash, err := h.providers.GetDashboard(middleware.GetUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "provider dashboard", dash)
}

// Orders lists the provider's incoming orders, optionally by status
func (h *ProviderHandler) Orders(c *gin.Context) {
	orders, err := h.providers.Orders(middleware.GetUserID(c), c.Query("status"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "provider orders", gin.H{"count": len(orders), "orders": orders})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required,orderstatus"`
	Note   string             `json:"note"`
}

// UpdateOrderStatus handles the provider's state transitions
func (h *ProviderHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	order, err := h.orders.ProviderTransition(middleware.GetUserID(c), id, req.Status, req.Note)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "order status updated", gin.H{"order_id": order.ID, "status": order.Status})
}
