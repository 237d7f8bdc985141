package services

import (
	"path/filepath"
	"testing"

	"meal-marketplace-api/models"
	"meal-marketplace-api/repository"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.ProviderProfile{},
		&models.Category{},
		&models.Meal{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
		&models.Review{},
	))
	return db
}

// fixture wires the full service graph over one test database.
type fixture struct {
	db *gorm.DB

	users     *repository.UserRepository
	cats      *repository.CategoryRepository
	meals     *repository.MealRepository
	providers *repository.ProviderRepository
	orders    *repository.OrderRepository
	reviews   *repository.ReviewRepository

	authSvc     *AuthService
	categorySvc *CategoryService
	mealSvc     *MealService
	orderSvc    *OrderService
	providerSvc *ProviderService
	adminSvc    *AdminService
	browseSvc   *RestaurantService
	reviewSvc   *ReviewService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	f := &fixture{
		db:        db,
		users:     repository.NewUserRepository(db),
		cats:      repository.NewCategoryRepository(db),
		meals:     repository.NewMealRepository(db),
		providers: repository.NewProviderRepository(db),
		orders:    repository.NewOrderRepository(db),
		reviews:   repository.NewReviewRepository(db),
	}
	f.authSvc = NewAuthService(db, f.users, f.providers)
	f.categorySvc = NewCategoryService(f.cats, f.meals)
	f.mealSvc = NewMealService(db, f.meals, f.cats, f.providers, f.reviews)
	f.orderSvc = NewOrderService(db, f.orders, f.meals, f.providers, zerolog.Nop())
	f.providerSvc = NewProviderService(f.providers, f.orders, f.meals)
	f.adminSvc = NewAdminService(f.users, f.providers, f.orders)
	f.browseSvc = NewRestaurantService(f.providers, f.meals, f.cats)
	f.reviewSvc = NewReviewService(db, f.reviews, f.orders, f.providers)
	return f
}

func (f *fixture) newCustomer(t *testing.T, email string) *models.User {
	t.Helper()
	user, err := f.authSvc.Register(RegisterInput{
		Name: "Test Customer", Email: email, Password: "secret123", Role: models.RoleUser,
	})
	require.NoError(t, err)
	return user
}

// newProvider registers a PROVIDER account and returns the user plus its
// auto-created profile.
func (f *fixture) newProvider(t *testing.T, email, restaurant string) (*models.User, *models.ProviderProfile) {
	t.Helper()
	user, err := f.authSvc.Register(RegisterInput{
		Name: "Test Owner", Email: email, Password: "secret123",
		Role: models.RoleProvider, RestaurantName: restaurant,
	})
	require.NoError(t, err)
	profile, err := f.providers.FindByUserID(user.ID)
	require.NoError(t, err)
	return user, profile
}

func (f *fixture) newCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	category, err := f.categorySvc.Create(CreateCategoryInput{Name: name})
	require.NoError(t, err)
	return category
}

func (f *fixture) newMeal(t *testing.T, ownerID, categoryID uint, name string, price float64) *models.Meal {
	t.Helper()
	meal, err := f.mealSvc.Create(ownerID, CreateMealInput{
		CategoryID: categoryID, Name: name, Price: price,
	})
	require.NoError(t, err)
	return meal
}

func (f *fixture) placeOrder(t *testing.T, customerID uint, providerID uint, items ...OrderItemInput) *models.Order {
	t.Helper()
	order, err := f.orderSvc.Place(customerID, PlaceOrderInput{
		ProviderID:      providerID,
		DeliveryAddress: "42 Test Street",
		Items:           items,
	})
	require.NoError(t, err)
	return order
}

// deliver walks an order through the provider's forward path.
func (f *fixture) deliver(t *testing.T, ownerID, orderID uint) {
	t.Helper()
	for _, status := range []models.OrderStatus{models.StatusPreparing, models.StatusReady, models.StatusDelivered} {
		_, err := f.orderSvc.ProviderTransition(ownerID, orderID, status, "")
		require.NoError(t, err)
	}
}
