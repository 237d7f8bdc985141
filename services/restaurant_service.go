package services

import (
	"meal-marketplace-api/models"
	"meal-marketplace-api/repository"
)

// RestaurantService serves the public browse surface: provider listings,
// storefront detail and category navigation. Read-only.
type RestaurantService struct {
	providers  *repository.ProviderRepository
	meals      *repository.MealRepository
	categories *repository.CategoryRepository
}

func NewRestaurantService(
	providers *repository.ProviderRepository,
	meals *repository.MealRepository,
	categories *repository.CategoryRepository,
) *RestaurantService {
	return &RestaurantService{providers: providers, meals: meals, categories: categories}
}

func (s *RestaurantService) List(filter repository.ProviderFilter) ([]models.ProviderProfile, error) {
	return s.providers.FindAll(filter)
}

// Storefront returns the provider with its available menu.
func (s *RestaurantService) Storefront(slug string) (*models.ProviderProfile, error) {
	return s.providers.FindBySlug(slug)
}

func (s *RestaurantService) Categories() ([]models.Category, error) {
	return s.categories.FindAll()
}

// CategoryMeals is a category plus the available meals inside it.
type CategoryMeals struct {
	Category models.Category `json:"category"`
	Meals    []models.Meal   `json:"meals"`
}

func (s *RestaurantService) MealsByCategory(slug string) (*CategoryMeals, error) {
	category, err := s.categories.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	meals, err := s.meals.FindAll(repository.MealFilter{
		CategoryID:    category.ID,
		AvailableOnly: true,
	})
	if err != nil {
		return nil, err
	}
	return &CategoryMeals{Category: *category, Meals: meals}, nil
}
