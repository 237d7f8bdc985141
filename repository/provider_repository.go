package repository

import (
	"errors"

	"meal-marketplace-api/apperr"
	"meal-marketplace-api/models"

	"gorm.io/gorm"
)

type ProviderRepository struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

func (r *ProviderRepository) Create(tx *gorm.DB, profile *models.ProviderProfile) error {
	if err := tx.Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("provider profile already exists")
		}
		return apperr.Infra("create provider profile", err)
	}
	return nil
}

func (r *ProviderRepository) FindByID(id uint) (*models.ProviderProfile, error) {
	var profile models.ProviderProfile
	if err := r.db.First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("provider not found")
		}
		return nil, apperr.Infra("find provider", err)
	}
	return &profile, nil
}

func (r *ProviderRepository) FindByUserID(userID uint) (*models.ProviderProfile, error) {
	var profile models.ProviderProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("no provider profile for this account")
		}
		return nil, apperr.Infra("find provider by user", err)
	}
	return &profile, nil
}

func (r *ProviderRepository) FindBySlug(slug string) (*models.ProviderProfile, error) {
	var profile models.ProviderProfile
	err := r.db.Preload("Meals", "available = ?", true).Where("slug = ?", slug).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("provider not found")
		}
		return nil, apperr.Infra("find provider by slug", err)
	}
	return &profile, nil
}

// ProviderFilter narrows the public provider listing.
type ProviderFilter struct {
	Cuisine  string
	Search   string
	OpenOnly bool
}

func (r *ProviderRepository) FindAll(filter ProviderFilter) ([]models.ProviderProfile, error) {
	var profiles []models.ProviderProfile
	query := r.db.Order("rating desc")
	if filter.Cuisine != "" {
		query = query.Where("cuisines LIKE ?", "%"+filter.Cuisine+"%")
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	if filter.OpenOnly {
		query = query.Where("is_open = ?", true)
	}
	if err := query.Find(&profiles).Error; err != nil {
		return nil, apperr.Infra("list providers", err)
	}
	return profiles, nil
}

func (r *ProviderRepository) Update(profile *models.ProviderProfile, fields map[string]interface{}) error {
	if err := r.db.Model(profile).Updates(fields).Error; err != nil {
		return apperr.Infra("update provider profile", err)
	}
	return nil
}

// UpdateRating overwrites the denormalized rating summary.
func (r *ProviderRepository) UpdateRating(tx *gorm.DB, id uint, rating float64, reviewCount int) error {
	err := tx.Model(&models.ProviderProfile{}).Where("id = ?", id).
		Updates(map[string]interface{}{"rating": rating, "review_count": reviewCount}).Error
	if err != nil {
		return apperr.Infra("update provider rating", err)
	}
	return nil
}

func (r *ProviderRepository) IsOwnedBy(providerID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProviderProfile{}).
		Where("id = ? AND user_id = ?", providerID, userID).Count(&count).Error
	if err != nil {
		return false, apperr.Infra("check provider ownership", err)
	}
	return count > 0, nil
}

func (r *ProviderRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.ProviderProfile{}).Count(&count).Error; err != nil {
		return 0, apperr.Infra("count providers", err)
	}
	return count, nil
}
