package routes

import (
	"meal-marketplace-api/handlers"
	"meal-marketplace-api/middleware"
	"meal-marketplace-api/models"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every route handler for registration.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Category   *handlers.CategoryHandler
	Meal       *handlers.MealHandler
	Order      *handlers.OrderHandler
	Provider   *handlers.ProviderHandler
	Admin      *handlers.AdminHandler
	Restaurant *handlers.RestaurantHandler
	Review     *handlers.ReviewHandler
}

func SetupRoutes(r *gin.Engine, auth *middleware.AuthMiddleware, h *Handlers) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", h.Auth.Register)
		public.POST("/auth/login", h.Auth.Login)

		// Browse (no auth needed)
		public.GET("/restaurant", h.Restaurant.List)
		public.GET("/restaurant/:slug", h.Restaurant.Storefront)
		public.GET("/cat", h.Category.List)
		public.GET("/cat/:slug/meals", h.Category.MealsBySlug)
		public.GET("/meals", h.Meal.List)
		public.GET("/meals/:id", h.Meal.Get)
		public.GET("/review/meal/:id", h.Review.ForMeal)

		// Order lifecycle info (great for docs/Postman)
		public.GET("/state-machine", handlers.StateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	authed := r.Group("/api")
	authed.Use(auth.AuthRequired())
	{
		authed.GET("/auth/profile", h.Auth.Profile)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api")
	customer.Use(auth.AuthRequired(), auth.RoleRequired(models.RoleUser))
	{
		customer.POST("/order", h.Order.Place)
		customer.GET("/order", h.Order.ListMine)
		customer.GET("/order/:id", h.Order.Get)
		customer.PUT("/order/:id/cancel", h.Order.Cancel)
		customer.POST("/review", h.Review.Create)
	}

	// ── Provider routes ────────────────────────────────────────────
	provider := r.Group("/api/provider")
	provider.Use(auth.AuthRequired(), auth.RoleRequired(models.RoleProvider))
	{
		provider.GET("", h.Provider.Me)
		provider.PATCH("", h.Provider.UpdateMe)
		provider.GET("/dashboard", h.Provider.Dashboard)
		provider.GET("/orders", h.Provider.Orders)
		provider.PUT("/orders/:id/status", h.Provider.UpdateOrderStatus)
	}

	// Menu management lives under /api/meals next to the public reads
	menu := r.Group("/api/meals")
	menu.Use(auth.AuthRequired(), auth.RoleRequired(models.RoleProvider))
	{
		menu.POST("", h.Meal.Create)
		menu.PATCH("/:id", h.Meal.Update)
		menu.DELETE("/:id", h.Meal.Delete)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(auth.AuthRequired(), auth.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/dashboard", h.Admin.Dashboard)
		admin.GET("/users", h.Admin.Users)
		admin.PATCH("/users/:id/status", h.Admin.SetUserStatus)
		admin.GET("/orders", h.Admin.Orders)
		admin.PUT("/orders/:id/status", h.Admin.ForceOrderStatus)
		admin.GET("/providers", h.Admin.Providers)
	}

	// Category management is admin-only
	cat := r.Group("/api/cat")
	cat.Use(auth.AuthRequired(), auth.RoleRequired(models.RoleAdmin))
	{
		cat.POST("", h.Category.Create)
		cat.PATCH("/:id", h.Category.Update)
		cat.DELETE("/:id", h.Category.Delete)
	}
}
