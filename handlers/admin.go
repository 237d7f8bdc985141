package handlers

import (
	"net/http"

	"meal-marketplace-api/middleware"
	"meal-marketplace-api/models"
	"meal-marketplace-api/pkg/resp"
	"meal-marketplace-api/repository"
	"meal-marketplace-api/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	admin  *services.AdminService
	orders *services.OrderService
}

func NewAdminHandler(admin *services.AdminService, orders *services.OrderService) *AdminHandler {
	return &AdminHandler{admin: admin, orders: orders}
}

// Dashboard returns platform-wide totals — admin only
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dash, err := h.admin.GetDashboard()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "platform dashboard", dash)
}

// Users returns all users, optionally filtered by role — admin only
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.admin.Users(c.Query("role"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "users", gin.H{"count": len(users), "users": users})
}

type SetUserStatusRequest struct {
	Status models.UserStatus `json:"status" binding:"required,oneof=ACTIVE SUSPENDED"`
}

// SetUserStatus suspends or reactivates an account — admin only
func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req SetUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.admin.SetUserStatus(id, req.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "user status updated", gin.H{"user_id": id, "status": req.Status})
}

// Orders returns all orders with optional filters — admin only
func (h *AdminHandler) Orders(c *gin.Context) {
	orders, err := h.admin.Orders(repository.OrderFilter{
		Status:     c.Query("status"),
		CustomerID: c.Query("customer_id"),
		ProviderID: c.Query("provider_id"),
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "orders", gin.H{"count": len(orders), "orders": orders})
}

// Providers returns every provider profile — admin only
func (h *AdminHandler) Providers(c *gin.Context) {
	providers, err := h.admin.Providers()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "providers", gin.H{"count": len(providers), "providers": providers})
}

type ForceOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required,orderstatus"`
	Reason string             `json:"reason"`
}

// ForceOrderStatus lets admin override any order state (emergency use)
func (h *AdminHandler) ForceOrderStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req ForceOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	order, err := h.orders.ForceStatus(middleware.GetUserID(c), id, req.Status, req.Reason)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "order status force-updated by admin", gin.H{"order_id": order.ID, "status": order.Status})
}
