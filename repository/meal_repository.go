package repository

import (
	"errors"

	"meal-marketplace-api/apperr"
	"meal-marketplace-api/models"

	"gorm.io/gorm"
)

type MealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) *MealRepository {
	return &MealRepository{db: db}
}

func (r *MealRepository) Create(tx *gorm.DB, meal *models.Meal) error {
	if err := tx.Create(meal).Error; err != nil {
		return apperr.Infra("create meal", err)
	}
	return nil
}

func (r *MealRepository) FindByID(id uint) (*models.Meal, error) {
	var meal models.Meal
	if err := r.db.Preload("Category").First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("meal not found")
		}
		return nil, apperr.Infra("find meal", err)
	}
	return &meal, nil
}

// MealFilter narrows the public meal listing.
type MealFilter struct {
	ProviderID     uint
	CategoryID     uint
	Search         string
	VegetarianOnly bool
	AvailableOnly  bool
}

func (r *MealRepository) FindAll(filter MealFilter) ([]models.Meal, error) {
	var meals []models.Meal
	query := r.db.Preload("Category").Order("created_at desc")
	if filter.ProviderID != 0 {
		query = query.Where("provider_id = ?", filter.ProviderID)
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	if filter.VegetarianOnly {
		query = query.Where("is_vegetarian = ?", true)
	}
	if filter.AvailableOnly {
		query = query.Where("available = ?", true)
	}
	if err := query.Find(&meals).Error; err != nil {
		return nil, apperr.Infra("list meals", err)
	}
	return meals, nil
}

func (r *MealRepository) Update(meal *models.Meal, fields map[string]interface{}) error {
	if err := r.db.Model(meal).Updates(fields).Error; err != nil {
		return apperr.Infra("update meal", err)
	}
	return nil
}

func (r *MealRepository) MarkUnavailable(tx *gorm.DB, id uint) error {
	err := tx.Model(&models.Meal{}).Where("id = ?", id).Update("available", false).Error
	if err != nil {
		return apperr.Infra("mark meal unavailable", err)
	}
	return nil
}

func (r *MealRepository) Delete(tx *gorm.DB, id uint) error {
	if err := tx.Delete(&models.Meal{}, id).Error; err != nil {
		return apperr.Infra("delete meal", err)
	}
	return nil
}

// OrderItemCount reports how many order items reference the meal; a
// non-zero count blocks hard deletion.
func (r *MealRepository) OrderItemCount(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.OrderItem{}).Where("meal_id = ?", id).Count(&count).Error
	if err != nil {
		return 0, apperr.Infra("count order items for meal", err)
	}
	return count, nil
}

func (r *MealRepository) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Meal{}).Where("category_id = ?", categoryID).Count(&count).Error
	if err != nil {
		return 0, apperr.Infra("count meals in category", err)
	}
	return count, nil
}

func (r *MealRepository) CountByProvider(providerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Meal{}).Where("provider_id = ?", providerID).Count(&count).Error
	if err != nil {
		return 0, apperr.Infra("count meals for provider", err)
	}
	return count, nil
}
