package services

import (
	"meal-marketplace-api/apperr"
	"meal-marketplace-api/models"
	"meal-marketplace-api/repository"
	"meal-marketplace-api/utils"

	"gorm.io/gorm"
)

type MealService struct {
	db         *gorm.DB
	meals      *repository.MealRepository
	categories *repository.CategoryRepository
	providers  *repository.ProviderRepository
	reviews    *repository.ReviewRepository
}

func NewMealService(
	db *gorm.DB,
	meals *repository.MealRepository,
	categories *repository.CategoryRepository,
	providers *repository.ProviderRepository,
	reviews *repository.ReviewRepository,
) *MealService {
	return &MealService{db: db, meals: meals, categories: categories, providers: providers, reviews: reviews}
}

type CreateMealInput struct {
	CategoryID    uint
	Name          string
	Description   string
	Price         float64
	OriginalPrice float64
	Image         string
	Calories      int
	PrepTime      int
	IsVegetarian  bool
	IsSpicy       bool
	IsPopular     bool
	Ingredients   []string
}

// Create adds a meal to the caller's menu and bumps the category counter
// in the same transaction.
func (s *MealService) Create(ownerUserID uint, in CreateMealInput) (*models.Meal, error) {
	profile, err := s.providers.FindByUserID(ownerUserID)
	if err != nil {
		return nil, err
	}
	if _, err := s.categories.FindByID(in.CategoryID); err != nil {
		return nil, err
	}

	meal := models.Meal{
		ProviderID:    profile.ID,
		CategoryID:    in.CategoryID,
		Name:          in.Name,
		Slug:          utils.Slugify(in.Name),
		Description:   in.Description,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Image:         in.Image,
		Available:     true,
		Calories:      in.Calories,
		PrepTime:      in.PrepTime,
		IsVegetarian:  in.IsVegetarian,
		IsSpicy:       in.IsSpicy,
		IsPopular:     in.IsPopular,
		Ingredients:   in.Ingredients,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.meals.Create(tx, &meal); err != nil {
			return err
		}
		return s.categories.AdjustMealCount(tx, in.CategoryID, 1)
	})
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// MealDetail is a meal plus its rating summary computed from reviews.
type MealDetail struct {
	Meal          models.Meal     `json:"meal"`
	AverageRating float64         `json:"average_rating"`
	ReviewCount   int             `json:"review_count"`
	Reviews       []models.Review `json:"reviews"`
}

func (s *MealService) Get(id uint) (*MealDetail, error) {
	meal, err := s.meals.FindByID(id)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.FindByMeal(id)
	if err != nil {
		return nil, err
	}
	ratings := make([]int, 0, len(reviews))
	for _, review := range reviews {
		ratings = append(ratings, review.Rating)
	}
	return &MealDetail{
		Meal:          *meal,
		AverageRating: AverageRating(ratings),
		ReviewCount:   len(reviews),
		Reviews:       reviews,
	}, nil
}

func (s *MealService) List(filter repository.MealFilter) ([]models.Meal, error) {
	return s.meals.FindAll(filter)
}

// mealUpdatable maps the editable JSON field names to their columns.
var mealUpdatable = map[string]string{
	"name": "name", "description": "description", "price": "price",
	"original_price": "original_price", "image": "image", "available": "available",
	"calories": "calories", "prep_time_minutes": "prep_time",
	"is_vegetarian": "is_vegetarian", "is_spicy": "is_spicy", "is_popular": "is_popular",
}

func (s *MealService) Update(ownerUserID, mealID uint, fields map[string]interface{}) (*models.Meal, error) {
	meal, err := s.ownedMeal(ownerUserID, mealID)
	if err != nil {
		return nil, err
	}
	update := map[string]interface{}{}
	for k, v := range fields {
		if column, ok := mealUpdatable[k]; ok {
			update[column] = v
		}
	}
	if name, ok := update["name"].(string); ok {
		update["slug"] = utils.Slugify(name)
	}
	if len(update) == 0 {
		return nil, apperr.Validation("no updatable fields in request")
	}
	if err := s.meals.Update(meal, update); err != nil {
		return nil, err
	}
	return meal, nil
}

// Delete removes a meal from the menu. Meals referenced by order history
// are only marked unavailable so past orders keep their rows; the
// returned flag reports which path was taken (true = soft delete).
func (s *MealService) Delete(ownerUserID, mealID uint) (bool, error) {
	meal, err := s.ownedMeal(ownerUserID, mealID)
	if err != nil {
		return false, err
	}

	refs, err := s.meals.OrderItemCount(mealID)
	if err != nil {
		return false, err
	}

	if refs > 0 {
		err = s.db.Transaction(func(tx *gorm.DB) error {
			return s.meals.MarkUnavailable(tx, mealID)
		})
		return true, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.meals.Delete(tx, mealID); err != nil {
			return err
		}
		return s.categories.AdjustMealCount(tx, meal.CategoryID, -1)
	})
	return false, err
}

func (s *MealService) ownedMeal(ownerUserID, mealID uint) (*models.Meal, error) {
	meal, err := s.meals.FindByID(mealID)
	if err != nil {
		return nil, err
	}
	owned, err := s.providers.IsOwnedBy(meal.ProviderID, ownerUserID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, apperr.Forbidden("you don't own this meal")
	}
	return meal, nil
}
