package services

import (
	"meal-marketplace-api/apperr"
	"meal-marketplace-api/models"
	"meal-marketplace-api/repository"
	"meal-marketplace-api/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	users     *repository.UserRepository
	providers *repository.ProviderRepository
}

func NewAuthService(db *gorm.DB, users *repository.UserRepository, providers *repository.ProviderRepository) *AuthService {
	return &AuthService{db: db, users: users, providers: providers}
}

type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	Role           models.UserRole
	Phone          string
	RestaurantName string // only meaningful for PROVIDER signups
}

// Register creates the account and, for PROVIDER signups, the provider
// profile in the same transaction.
func (s *AuthService) Register(in RegisterInput) (*models.User, error) {
	switch in.Role {
	case models.RoleUser, models.RoleProvider, models.RoleAdmin:
	default:
		return nil, apperr.Validation("invalid role, must be USER, PROVIDER or ADMIN")
	}

	exists, err := s.users.EmailExists(in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Infra("hash password", err)
	}

	user := models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Status:       models.UserActive,
		Phone:        in.Phone,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.users.Create(tx, &user); err != nil {
			return err
		}
		if in.Role != models.RoleProvider {
			return nil
		}
		name := in.RestaurantName
		if name == "" {
			name = in.Name
		}
		slug, err := s.uniqueSlug(name)
		if err != nil {
			return err
		}
		profile := models.ProviderProfile{
			UserID: user.ID,
			Name:   name,
			Slug:   slug,
			Phone:  in.Phone,
			IsOpen: true,
		}
		return s.providers.Create(tx, &profile)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// uniqueSlug appends a short random suffix when the plain slug is taken.
func (s *AuthService) uniqueSlug(name string) (string, error) {
	slug := utils.Slugify(name)
	if slug == "" {
		slug = "provider"
	}
	_, err := s.providers.FindBySlug(slug)
	switch {
	case err == nil:
		return slug + "-" + uuid.NewString()[:8], nil
	case apperr.KindOf(err) == apperr.KindNotFound:
		return slug, nil
	default:
		return "", err
	}
}

// Login verifies credentials and rejects suspended accounts.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, apperr.Unauthorized("invalid email or password")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("invalid email or password")
	}
	if user.Status == models.UserSuspended {
		return nil, apperr.Forbidden("account suspended")
	}
	return user, nil
}

// Profile returns the account for the authenticated user.
func (s *AuthService) Profile(userID uint) (*models.User, error) {
	return s.users.FindByID(userID)
}
