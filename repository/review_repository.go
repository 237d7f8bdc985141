package repository

import (
	"errors"

	"meal-marketplace-api/apperr"
	"meal-marketplace-api/models"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(tx *gorm.DB, review *models.Review) error {
	if err := tx.Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("this order's meal has already been reviewed")
		}
		return apperr.Infra("create review", err)
	}
	return nil
}

func (r *ReviewRepository) FindByMeal(mealID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("User").Where("meal_id = ?", mealID).
		Order("created_at desc").Find(&reviews).Error
	if err != nil {
		return nil, apperr.Infra("list meal reviews", err)
	}
	return reviews, nil
}

func (r *ReviewRepository) Exists(userID, mealID, orderID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Review{}).
		Where("user_id = ? AND meal_id = ? AND order_id = ?", userID, mealID, orderID).
		Count(&count).Error
	if err != nil {
		return false, apperr.Infra("check review", err)
	}
	return count > 0, nil
}

// RatingsForProvider returns every rating given to the provider's meals,
// used to recompute the denormalized provider rating summary.
func (r *ReviewRepository) RatingsForProvider(tx *gorm.DB, providerID uint) ([]int, error) {
	var ratings []int
	err := tx.Model(&models.Review{}).
		Joins("JOIN meals ON meals.id = reviews.meal_id").
		Where("meals.provider_id = ?", providerID).
		Pluck("reviews.rating", &ratings).Error
	if err != nil {
		return nil, apperr.Infra("load provider ratings", err)
	}
	return ratings, nil
}
