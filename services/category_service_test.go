package services

import (
	"testing"

	"meal-marketplace-api/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategoryGeneratesSlug(t *testing.T) {
	f := newFixture(t)

	category, err := f.categorySvc.Create(CreateCategoryInput{Name: "Fast Food & Snacks"})
	require.NoError(t, err)
	assert.Equal(t, "fast-food-snacks", category.Slug)
	assert.Equal(t, 0, category.MealCount)
}

func TestCreateCategoryDuplicateSlugConflicts(t *testing.T) {
	f := newFixture(t)

	_, err := f.categorySvc.Create(CreateCategoryInput{Name: "Pizza"})
	require.NoError(t, err)

	_, err = f.categorySvc.Create(CreateCategoryInput{Name: "PIZZA!!"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestCreateCategoryRejectsSymbolOnlyName(t *testing.T) {
	f := newFixture(t)

	_, err := f.categorySvc.Create(CreateCategoryInput{Name: "!!!"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestDeleteEmptyCategorySucceeds(t *testing.T) {
	f := newFixture(t)
	category := f.newCategory(t, "Soups")

	require.NoError(t, f.categorySvc.Delete(category.ID))

	_, err := f.categorySvc.Get(category.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDeleteCategoryWithMealsConflicts(t *testing.T) {
	f := newFixture(t)
	owner, _ := f.newProvider(t, "owner@example.com", "Testaurant")
	category := f.newCategory(t, "Burgers")
	meal := f.newMeal(t, owner.ID, category.ID, "Cheeseburger", 9.5)

	err := f.categorySvc.Delete(category.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// Category and meal are untouched
	got, err := f.categorySvc.Get(category.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.MealCount)
	_, err = f.mealSvc.Get(meal.ID)
	assert.NoError(t, err)
}

func TestDeleteMissingCategoryNotFound(t *testing.T) {
	f := newFixture(t)
	err := f.categorySvc.Delete(999)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpdateCategoryOntoExistingSlugConflicts(t *testing.T) {
	f := newFixture(t)
	f.newCategory(t, "Pizza")
	other := f.newCategory(t, "Pasta")

	_, err := f.categorySvc.Update(other.ID, map[string]interface{}{"name": "PIZZA!!"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// The losing category keeps its old name and slug
	got, err := f.categorySvc.Get(other.ID)
	require.NoError(t, err)
	assert.Equal(t, "pasta", got.Slug)
}

func TestUpdateCategoryAllowList(t *testing.T) {
	f := newFixture(t)
	category := f.newCategory(t, "Grill")

	_, err := f.categorySvc.Update(category.ID, map[string]interface{}{
		"icon":       "flame",
		"meal_count": 42, // not editable, must be ignored
	})
	require.NoError(t, err)

	got, err := f.categorySvc.Get(category.ID)
	require.NoError(t, err)
	assert.Equal(t, "flame", got.Icon)
	assert.Equal(t, 0, got.MealCount)

	// A body with only non-editable fields updates nothing
	_, err = f.categorySvc.Update(category.ID, map[string]interface{}{"meal_count": 42})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestUpdateCategoryRenameRegeneratesSlug(t *testing.T) {
	f := newFixture(t)
	category := f.newCategory(t, "Desserts")

	updated, err := f.categorySvc.Update(category.ID, map[string]interface{}{"name": "Sweet Treats"})
	require.NoError(t, err)

	got, err := f.categorySvc.Get(updated.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sweet Treats", got.Name)
	assert.Equal(t, "sweet-treats", got.Slug)
}
