package repository

import (
	"errors"

	"meal-marketplace-api/apperr"
	"meal-marketplace-api/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(tx *gorm.DB, user *models.User) error {
	if err := tx.Create(user).Error; err != nil {
		return apperr.Infra("create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Infra("find user", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Infra("find user by email", err)
	}
	return &user, nil
}

func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, apperr.Infra("check email", err)
	}
	return count > 0, nil
}

func (r *UserRepository) FindAll(role string) ([]models.User, error) {
	var users []models.User
	query := r.db.Order("created_at desc")
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, apperr.Infra("list users", err)
	}
	return users, nil
}

func (r *UserRepository) UpdateStatus(id uint, status models.UserStatus) error {
	res := r.db.Model(&models.User{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return apperr.Infra("update user status", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("user not found")
	}
	return nil
}

func (r *UserRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, apperr.Infra("count users", err)
	}
	return count, nil
}
