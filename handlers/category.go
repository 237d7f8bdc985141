package handlers

import (
	"net/http"

	"meal-marketplace-api/pkg/resp"
	"meal-marketplace-api/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categories *services.CategoryService
	browse     *services.RestaurantService
}

func NewCategoryHandler(categories *services.CategoryService, browse *services.RestaurantService) *CategoryHandler {
	return &CategoryHandler{categories: categories, browse: browse}
}

type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Icon  string `json:"icon"`
	Image string `json:"image"`
}

// Create adds a category (admin only); the slug is derived from the name
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	category, err := h.categories.Create(services.CreateCategoryInput{
		Name:  req.Name,
		Icon:  req.Icon,
		Image: req.Image,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "category created", category)
}

// List returns all categories (public)
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "categories", categories)
}

// MealsBySlug returns a category with its available meals (public)
func (h *CategoryHandler) MealsBySlug(c *gin.Context) {
	result, err := h.browse.MealsByCategory(c.Param("slug"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "category meals", result)
}

// Update edits category fields (admin only)
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	category, err := h.categories.Update(id, fields)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "category updated", category)
}

// Delete removes an empty category (admin only)
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.categories.Delete(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "category deleted", nil)
}
