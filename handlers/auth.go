package handlers

import (
	"net/http"

	"meal-marketplace-api/middleware"
	"meal-marketplace-api/models"
	"meal-marketplace-api/pkg/resp"
	"meal-marketplace-api/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth   *services.AuthService
	tokens *middleware.AuthMiddleware
}

func NewAuthHandler(auth *services.AuthService, tokens *middleware.AuthMiddleware) *AuthHandler {
	return &AuthHandler{auth: auth, tokens: tokens}
}

type RegisterRequest struct {
	Name           string          `json:"name" binding:"required"`
	Email          string          `json:"email" binding:"required,email"`
	Password       string          `json:"password" binding:"required,min=6"`
	Role           models.UserRole `json:"role" binding:"required,oneof=USER PROVIDER ADMIN"`
	Phone          string          `json:"phone"`
	RestaurantName string          `json:"restaurant_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new account; PROVIDER signups also get their
// provider profile.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.auth.Register(services.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		Phone:          req.Phone,
		RestaurantName: req.RestaurantName,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}

	token, err := h.tokens.GenerateToken(user)
	if err != nil {
		resp.Error(c, err)
		return
	}

	resp.Created(c, "account created successfully", gin.H{
		"token": token,
		"user":  userSummary(user),
	})
}

// Login authenticates a user and returns a JWT
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}

	token, err := h.tokens.GenerateToken(user)
	if err != nil {
		resp.Error(c, err)
		return
	}

	resp.OK(c, "login successful", gin.H{
		"token": token,
		"user":  userSummary(user),
	})
}

// Profile returns the authenticated user's account
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.auth.Profile(middleware.GetUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "profile", user)
}

func userSummary(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
}
