package handlers

import (
	"net/http"

	"meal-marketplace-api/middleware"
	"meal-marketplace-api/pkg/resp"
	"meal-marketplace-api/repository"
	"meal-marketplace-api/services"

	"github.com/gin-gonic/gin"
)

type MealHandler struct {
	meals *services.MealService
}

func NewMealHandler(meals *services.MealService) *MealHandler {
	return &MealHandler{meals: meals}
}

type CreateMealRequest struct {
	CategoryID    uint     `json:"category_id" binding:"required"`
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	OriginalPrice float64  `json:"original_price" binding:"omitempty,gt=0"`
	Image         string   `json:"image"`
	Calories      int      `json:"calories" binding:"omitempty,gte=0"`
	PrepTime      int      `json:"prep_time_minutes" binding:"omitempty,gte=0"`
	IsVegetarian  bool     `json:"is_vegetarian"`
	IsSpicy       bool     `json:"is_spicy"`
	IsPopular     bool     `json:"is_popular"`
	Ingredients   []string `json:"ingredients"`
}

// Create adds a meal to the caller's menu (provider only)
func (h *MealHandler) Create(c *gin.Context) {
	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	meal, err := h.meals.Create(middleware.GetUserID(c), services.CreateMealInput{
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Image:         req.Image,
		Calories:      req.Calories,
		PrepTime:      req.PrepTime,
		IsVegetarian:  req.IsVegetarian,
		IsSpicy:       req.IsSpicy,
		IsPopular:     req.IsPopular,
		Ingredients:   req.Ingredients,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "meal created", meal)
}

// List returns meals filtered by query params (public)
func (h *MealHandler) List(c *gin.Context) {
	meals, err := h.meals.List(repository.MealFilter{
		ProviderID:     queryID(c, "provider_id"),
		CategoryID:     queryID(c, "category_id"),
		Search:         c.Query("search"),
		VegetarianOnly: c.Query("vegetarian") == "true",
		AvailableOnly:  c.Query("available") == "true",
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "meals", gin.H{"count": len(meals), "meals": meals})
}

// Get returns one meal with its rating summary and reviews (public)
func (h *MealHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := h.meals.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "meal", detail)
}

// Update edits a meal on the caller's menu (provider only)
func (h *MealHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	meal, err := h.meals.Update(middleware.GetUserID(c), id, fields)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "meal updated", meal)
}

// Delete removes a meal; meals with order history are only marked
// unavailable (provider only)
func (h *MealHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	soft, err := h.meals.Delete(middleware.GetUserID(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if soft {
		resp.OK(c, "meal has order history and was marked unavailable", gin.H{"soft_deleted": true})
		return
	}
	resp.OK(c, "meal deleted", gin.H{"soft_deleted": false})
}
