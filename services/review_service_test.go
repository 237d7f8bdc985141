package services

import (
	"testing"

	"meal-marketplace-api/apperr"
	"meal-marketplace-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewSetup(t *testing.T) (*fixture, *models.User, *models.User, *models.ProviderProfile, *models.Meal, *models.Order) {
	t.Helper()
	f := newFixture(t)
	owner, profile := f.newProvider(t, "owner@example.com", "Testaurant")
	customer := f.newCustomer(t, "eater@example.com")
	category := f.newCategory(t, "Mains")
	meal := f.newMeal(t, owner.ID, category.ID, "Lasagna", 13.0)
	order := f.placeOrder(t, customer.ID, profile.ID, OrderItemInput{MealID: meal.ID, Quantity: 1})
	return f, owner, customer, profile, meal, order
}

func TestReviewRequiresDeliveredOrder(t *testing.T) {
	f, _, customer, _, meal, order := reviewSetup(t)

	_, err := f.reviewSvc.Create(customer.ID, CreateReviewInput{
		OrderID: order.ID, MealID: meal.ID, Rating: 5,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestReviewDeliveredOrderSucceeds(t *testing.T) {
	f, owner, customer, profile, meal, order := reviewSetup(t)
	f.deliver(t, owner.ID, order.ID)

	review, err := f.reviewSvc.Create(customer.ID, CreateReviewInput{
		OrderID: order.ID, MealID: meal.ID, Rating: 4, Comment: "solid",
	})
	require.NoError(t, err)
	assert.Equal(t, order.ID, review.OrderID)

	// Denormalized provider rating is recomputed in the same transaction
	got, err := f.providers.FindByID(profile.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got.Rating)
	assert.Equal(t, 1, got.ReviewCount)
}

func TestReviewMealNotInOrderRejected(t *testing.T) {
	f, owner, customer, _, _, order := reviewSetup(t)
	f.deliver(t, owner.ID, order.ID)
	category := f.newCategory(t, "Extras")
	otherMeal := f.newMeal(t, owner.ID, category.ID, "Tiramisu", 5.0)

	_, err := f.reviewSvc.Create(customer.ID, CreateReviewInput{
		OrderID: order.ID, MealID: otherMeal.ID, Rating: 5,
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestReviewForeignOrderForbidden(t *testing.T) {
	f, owner, _, _, meal, order := reviewSetup(t)
	f.deliver(t, owner.ID, order.ID)
	stranger := f.newCustomer(t, "stranger@example.com")

	_, err := f.reviewSvc.Create(stranger.ID, CreateReviewInput{
		OrderID: order.ID, MealID: meal.ID, Rating: 5,
	})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestReviewDuplicatePerOrderConflicts(t *testing.T) {
	f, owner, customer, _, meal, order := reviewSetup(t)
	f.deliver(t, owner.ID, order.ID)

	_, err := f.reviewSvc.Create(customer.ID, CreateReviewInput{OrderID: order.ID, MealID: meal.ID, Rating: 5})
	require.NoError(t, err)

	_, err = f.reviewSvc.Create(customer.ID, CreateReviewInput{OrderID: order.ID, MealID: meal.ID, Rating: 1})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestReviewRatingBounds(t *testing.T) {
	f, owner, customer, _, meal, order := reviewSetup(t)
	f.deliver(t, owner.ID, order.ID)

	for _, rating := range []int{0, 6, -1} {
		_, err := f.reviewSvc.Create(customer.ID, CreateReviewInput{
			OrderID: order.ID, MealID: meal.ID, Rating: rating,
		})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err), "rating %d", rating)
	}
}

func TestForMealSummary(t *testing.T) {
	f, owner, customer, profile, meal, order := reviewSetup(t)
	f.deliver(t, owner.ID, order.ID)
	_, err := f.reviewSvc.Create(customer.ID, CreateReviewInput{OrderID: order.ID, MealID: meal.ID, Rating: 5})
	require.NoError(t, err)

	// Two more deliveries, two more reviews
	for _, rating := range []int{3, 4} {
		o := f.placeOrder(t, customer.ID, profile.ID, OrderItemInput{MealID: meal.ID, Quantity: 1})
		f.deliver(t, owner.ID, o.ID)
		_, err := f.reviewSvc.Create(customer.ID, CreateReviewInput{OrderID: o.ID, MealID: meal.ID, Rating: rating})
		require.NoError(t, err)
	}

	summary, err := f.reviewSvc.ForMeal(meal.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, summary.AverageRating)
	assert.Equal(t, 3, summary.ReviewCount)
	assert.Len(t, summary.Reviews, 3)
}

func TestForMealEmpty(t *testing.T) {
	f, _, _, _, meal, _ := reviewSetup(t)

	summary, err := f.reviewSvc.ForMeal(meal.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.AverageRating)
	assert.Equal(t, 0, summary.ReviewCount)
}
