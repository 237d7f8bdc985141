package services

import (
	"meal-marketplace-api/apperr"
	"meal-marketplace-api/models"
	"meal-marketplace-api/repository"
	"meal-marketplace-api/utils"
)

type CategoryService struct {
	categories *repository.CategoryRepository
	meals      *repository.MealRepository
}

func NewCategoryService(categories *repository.CategoryRepository, meals *repository.MealRepository) *CategoryService {
	return &CategoryService{categories: categories, meals: meals}
}

type CreateCategoryInput struct {
	Name  string
	Icon  string
	Image string
}

func (s *CategoryService) Create(in CreateCategoryInput) (*models.Category, error) {
	slug := utils.Slugify(in.Name)
	if slug == "" {
		return nil, apperr.Validation("category name must contain at least one letter or digit")
	}
	exists, err := s.categories.SlugExists(slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("a category with this slug already exists")
	}

	category := models.Category{
		Name:  in.Name,
		Slug:  slug,
		Icon:  in.Icon,
		Image: in.Image,
	}
	if err := s.categories.Create(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) List() ([]models.Category, error) {
	return s.categories.FindAll()
}

func (s *CategoryService) Get(id uint) (*models.Category, error) {
	return s.categories.FindByID(id)
}

// categoryUpdatable is the field allow-list for admin edits.
var categoryUpdatable = map[string]bool{
	"name": true, "icon": true, "image": true,
}

func (s *CategoryService) Update(id uint, fields map[string]interface{}) (*models.Category, error) {
	category, err := s.categories.FindByID(id)
	if err != nil {
		return nil, err
	}
	update := map[string]interface{}{}
	for k, v := range fields {
		if categoryUpdatable[k] {
			update[k] = v
		}
	}
	// Renaming regenerates the slug so the two never diverge
	if name, ok := update["name"].(string); ok {
		slug := utils.Slugify(name)
		if slug == "" {
			return nil, apperr.Validation("category name must contain at least one letter or digit")
		}
		update["slug"] = slug
	}
	if len(update) == 0 {
		return nil, apperr.Validation("no updatable fields in request")
	}
	if err := s.categories.Update(category, update); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete refuses to remove a category that still has meals.
func (s *CategoryService) Delete(id uint) error {
	if _, err := s.categories.FindByID(id); err != nil {
		return err
	}
	count, err := s.meals.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("cannot delete a category that still has meals")
	}
	return s.categories.Delete(id)
}
