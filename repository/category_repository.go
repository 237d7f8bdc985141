package repository

import (
	"errors"

	"meal-marketplace-api/apperr"
	"meal-marketplace-api/models"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("category slug already exists")
		}
		return apperr.Infra("create category", err)
	}
	return nil
}

func (r *CategoryRepository) FindByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, apperr.Infra("find category", err)
	}
	return &category, nil
}

func (r *CategoryRepository) FindBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, apperr.Infra("find category by slug", err)
	}
	return &category, nil
}

func (r *CategoryRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Category{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, apperr.Infra("check category slug", err)
	}
	return count > 0, nil
}

func (r *CategoryRepository) FindAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, apperr.Infra("list categories", err)
	}
	return categories, nil
}

func (r *CategoryRepository) Update(category *models.Category, fields map[string]interface{}) error {
	if err := r.db.Model(category).Updates(fields).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("category slug already exists")
		}
		return apperr.Infra("update category", err)
	}
	return nil
}

func (r *CategoryRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Category{}, id).Error; err != nil {
		return apperr.Infra("delete category", err)
	}
	return nil
}

// AdjustMealCount shifts the denormalized meal counter; runs inside the
// caller's transaction so the counter cannot drift from the meal rows.
func (r *CategoryRepository) AdjustMealCount(tx *gorm.DB, id uint, delta int) error {
	err := tx.Model(&models.Category{}).Where("id = ?", id).
		Update("meal_count", gorm.Expr("meal_count + ?", delta)).Error
	if err != nil {
		return apperr.Infra("adjust category meal count", err)
	}
	return nil
}
