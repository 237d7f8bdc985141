package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"meal-marketplace-api/handlers"
	"meal-marketplace-api/middleware"
	"meal-marketplace-api/models"
	"meal-marketplace-api/repository"
	"meal-marketplace-api/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testApp struct {
	router *gin.Engine
	tokens *middleware.AuthMiddleware
	auth   *services.AuthService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	mealRepo := repository.NewMealRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	authSvc := services.NewAuthService(db, userRepo, providerRepo)
	categorySvc := services.NewCategoryService(categoryRepo, mealRepo)
	mealSvc := services.NewMealService(db, mealRepo, categoryRepo, providerRepo, reviewRepo)
	orderSvc := services.NewOrderService(db, orderRepo, mealRepo, providerRepo, zerolog.Nop())
	providerSvc := services.NewProviderService(providerRepo, orderRepo, mealRepo)
	adminSvc := services.NewAdminService(userRepo, providerRepo, orderRepo)
	browseSvc := services.NewRestaurantService(providerRepo, mealRepo, categoryRepo)
	reviewSvc := services.NewReviewService(db, reviewRepo, orderRepo, providerRepo)

	tokens := middleware.NewAuthMiddleware("test-secret", time.Hour)
	require.NoError(t, handlers.RegisterValidators())

	r := gin.New()
	SetupRoutes(r, tokens, &Handlers{
		Auth:       handlers.NewAuthHandler(authSvc, tokens),
		Category:   handlers.NewCategoryHandler(categorySvc, browseSvc),
		Meal:       handlers.NewMealHandler(mealSvc),
		Order:      handlers.NewOrderHandler(orderSvc),
		Provider:   handlers.NewProviderHandler(providerSvc, orderSvc),
		Admin:      handlers.NewAdminHandler(adminSvc, orderSvc),
		Restaurant: handlers.NewRestaurantHandler(browseSvc),
		Review:     handlers.NewReviewHandler(reviewSvc),
	})

	return &testApp{router: r, tokens: tokens, auth: authSvc}
}

func (a *testApp) tokenFor(t *testing.T, email string, role models.UserRole) string {
	t.Helper()
	user, err := a.auth.Register(services.RegisterInput{
		Name: "Route Tester", Email: email, Password: "secret123", Role: role,
	})
	require.NoError(t, err)
	token, err := a.tokens.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func (a *testApp) do(method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func TestAdminDashboardRoleGate(t *testing.T) {
	app := newTestApp(t)

	// No token
	w := app.do(http.MethodGet, "/api/admin/dashboard", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token
	w = app.do(http.MethodGet, "/api/admin/dashboard", "not-a-jwt", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid token, wrong role
	userToken := app.tokenFor(t, "user@example.com", models.RoleUser)
	w = app.do(http.MethodGet, "/api/admin/dashboard", userToken, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Allowed role gets the envelope
	adminToken := app.tokenFor(t, "admin@example.com", models.RoleAdmin)
	w = app.do(http.MethodGet, "/api/admin/dashboard", adminToken, "")
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Message)
	assert.NotEmpty(t, env.Data)
}

func TestFailureEnvelopeShape(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/api/provider/dashboard", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Message)
}

func TestPublicBrowseNeedsNoAuth(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/api/restaurant", "/api/cat", "/api/meals", "/api/state-machine"} {
		w := app.do(http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRegisterValidationRejected(t *testing.T) {
	app := newTestApp(t)

	// Role outside the enum fails binding before any service runs
	w := app.do(http.MethodPost, "/api/auth/register", "",
		`{"name":"X","email":"x@example.com","password":"secret123","role":"DRIVER"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed email
	w = app.do(http.MethodPost, "/api/auth/register", "",
		`{"name":"X","email":"not-an-email","password":"secret123","role":"USER"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProviderStatusRouteValidatesEnum(t *testing.T) {
	app := newTestApp(t)
	providerToken := app.tokenFor(t, "owner@example.com", models.RoleProvider)

	w := app.do(http.MethodPut, "/api/provider/orders/1/status", providerToken, `{"status":"SHIPPED"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
