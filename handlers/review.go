package handlers

import (
	"net/http"

	"meal-marketplace-api/middleware"
	"meal-marketplace-api/pkg/resp"
	"meal-marketplace-api/services"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviews *services.ReviewService
}

func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type CreateReviewRequest struct {
	OrderID uint   `json:"order_id" binding:"required"`
	MealID  uint   `json:"meal_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// Create reviews a meal from a delivered order (customer only)
func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	review, err := h.reviews.Create(middleware.GetUserID(c), services.CreateReviewInput{
		OrderID: req.OrderID,
		MealID:  req.MealID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "review created", review)
}

// ForMeal returns a meal's reviews with the computed average (public)
func (h *ReviewHandler) ForMeal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	result, err := h.reviews.ForMeal(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "meal reviews", result)
}
