package services

import (
	"testing"

	"meal-marketplace-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderDashboardSnapshot(t *testing.T) {
	f := newFixture(t)
	owner, profile := f.newProvider(t, "owner@example.com", "Testaurant")
	customer := f.newCustomer(t, "eater@example.com")
	category := f.newCategory(t, "Mains")
	meal := f.newMeal(t, owner.ID, category.ID, "Paella", 18.0)
	f.newMeal(t, owner.ID, category.ID, "Gazpacho", 6.0)

	delivered := f.placeOrder(t, customer.ID, profile.ID, OrderItemInput{MealID: meal.ID, Quantity: 1})
	f.deliver(t, owner.ID, delivered.ID)

	cancelled := f.placeOrder(t, customer.ID, profile.ID, OrderItemInput{MealID: meal.ID, Quantity: 1})
	_, err := f.orderSvc.Cancel(customer.ID, cancelled.ID)
	require.NoError(t, err)

	f.placeOrder(t, customer.ID, profile.ID, OrderItemInput{MealID: meal.ID, Quantity: 2})

	dash, err := f.providerSvc.GetDashboard(owner.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), dash.StatusCounts[models.StatusPlaced])
	assert.Equal(t, int64(1), dash.StatusCounts[models.StatusDelivered])
	assert.Equal(t, int64(1), dash.StatusCounts[models.StatusCancelled])
	assert.Equal(t, int64(0), dash.StatusCounts[models.StatusPreparing])
	assert.Equal(t, 18.0, dash.TotalRevenue) // cancelled and placed orders excluded
	assert.Equal(t, 18.0, dash.MonthlyRevenue)
	assert.Equal(t, int64(2), dash.MealCount)
}

func TestUpdateProfileAllowList(t *testing.T) {
	f := newFixture(t)
	owner, _ := f.newProvider(t, "owner@example.com", "Testaurant")

	_, err := f.providerSvc.UpdateProfile(owner.ID, map[string]interface{}{
		"description": "family kitchen",
		"is_open":     false,
		"rating":      5.0, // not editable, must be ignored
	})
	require.NoError(t, err)

	profile, err := f.providerSvc.MyProfile(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "family kitchen", profile.Description)
	assert.False(t, profile.IsOpen)
	assert.Equal(t, 0.0, profile.Rating)
}

func TestAdminDashboardTotals(t *testing.T) {
	f := newFixture(t)
	owner, profile := f.newProvider(t, "owner@example.com", "Testaurant")
	customer := f.newCustomer(t, "eater@example.com")
	category := f.newCategory(t, "Mains")
	meal := f.newMeal(t, owner.ID, category.ID, "Risotto", 14.0)

	order := f.placeOrder(t, customer.ID, profile.ID, OrderItemInput{MealID: meal.ID, Quantity: 1})
	f.deliver(t, owner.ID, order.ID)

	dash, err := f.adminSvc.GetDashboard()
	require.NoError(t, err)
	assert.Equal(t, int64(2), dash.TotalUsers)
	assert.Equal(t, int64(1), dash.TotalProviders)
	assert.Equal(t, int64(1), dash.TotalOrders)
	assert.Equal(t, int64(1), dash.StatusCounts[models.StatusDelivered])
	assert.Equal(t, 14.0, dash.TotalRevenue)
}

func TestSuspendUserBlocksLogin(t *testing.T) {
	f := newFixture(t)
	customer := f.newCustomer(t, "eater@example.com")

	require.NoError(t, f.adminSvc.SetUserStatus(customer.ID, models.UserSuspended))

	_, err := f.authSvc.Login("eater@example.com", "secret123")
	require.Error(t, err)

	require.NoError(t, f.adminSvc.SetUserStatus(customer.ID, models.UserActive))
	_, err = f.authSvc.Login("eater@example.com", "secret123")
	assert.NoError(t, err)
}
