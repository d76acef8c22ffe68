// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/snackshop-backend/internal/config"
	"github.com/your-org/snackshop-backend/internal/domain/analytics"
	"github.com/your-org/snackshop-backend/internal/domain/cart"
	"github.com/your-org/snackshop-backend/internal/domain/catalog"
	"github.com/your-org/snackshop-backend/internal/domain/checkout"
	"github.com/your-org/snackshop-backend/internal/domain/delivery"
	"github.com/your-org/snackshop-backend/internal/domain/order"
	"github.com/your-org/snackshop-backend/internal/domain/user"
	"github.com/your-org/snackshop-backend/internal/interfaces/http/handlers"
	"github.com/your-org/snackshop-backend/internal/interfaces/http/middleware"
	"github.com/your-org/snackshop-backend/internal/pkg/auth"
	"github.com/your-org/snackshop-backend/internal/pkg/pdf"
	"gorm.io/gorm"
)

// SetupRoutes wires all API routes with their services
func SetupRoutes(api *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) {
	// Shared services
	jwtService := auth.NewJWTService(cfg)
	policy := delivery.NewPolicy(cfg)

	cartStore := cart.NewRedisStore(redisClient, 0)
	cartService := cart.NewService(db, cartStore)

	catalogService := catalog.NewService(db, cfg)
	categoryService := catalog.NewCategoryService(db)
	reviewService := catalog.NewReviewService(db)
	userService := user.NewService(db, jwtService, logger, cfg)
	orderService := order.NewService(db, logger)
	checkoutService := checkout.NewService(db, cartService, policy, logger, cfg)
	analyticsService := analytics.NewService(db)
	pdfService := pdf.NewService(cfg)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	productHandler := handlers.NewProductHandler(catalogService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, policy)
	orderHandler := handlers.NewOrderHandler(orderService, pdfService)
	contactHandler := handlers.NewContactHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(orderService, analyticsService, pdfService)

	requireAuth := middleware.Auth(jwtService)

	// Public routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
	}

	products := api.Group("/products")
	{
		products.GET("", productHandler.List)
		products.GET("/:id", productHandler.Get)
		products.GET("/:id/reviews", reviewHandler.List)
		products.POST("/:id/reviews", requireAuth, reviewHandler.Create)
	}

	api.GET("/categories", categoryHandler.List)
	api.POST("/contact", contactHandler.Submit)
	api.GET("/checkout/delivery-info", checkoutHandler.DeliveryInfo)

	// Authenticated customer routes
	protected := api.Group("")
	protected.Use(requireAuth)
	{
		protected.POST("/auth/logout", authHandler.Logout)
		protected.GET("/auth/profile", authHandler.Profile)
		protected.PUT("/auth/profile", authHandler.UpdateProfile)

		protected.GET("/cart", cartHandler.Get)
		protected.POST("/cart/items", cartHandler.AddItem)
		protected.PUT("/cart/items/:product_id", cartHandler.UpdateItem)
		protected.DELETE("/cart/items/:product_id", cartHandler.RemoveItem)
		protected.DELETE("/cart", cartHandler.Clear)

		protected.POST("/checkout", checkoutHandler.PlaceOrder)

		protected.GET("/orders", orderHandler.List)
		protected.GET("/orders/:id", orderHandler.Get)
		protected.GET("/orders/:id/receipt", orderHandler.Receipt)
		protected.POST("/orders/:id/cancel", orderHandler.Cancel)

		protected.DELETE("/reviews/:id", reviewHandler.Delete)
	}

	// Admin routes
	admin := api.Group("/admin")
	admin.Use(requireAuth, middleware.AdminOnly())
	{
		admin.GET("/dashboard", adminHandler.Dashboard)

		admin.GET("/orders", adminHandler.ListOrders)
		admin.GET("/orders/:id", adminHandler.GetOrder)
		admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
		admin.GET("/orders/:id/receipt", adminHandler.OrderReceipt)

		admin.POST("/products", productHandler.Create)
		admin.PUT("/products/:id", productHandler.Update)
		admin.DELETE("/products/:id", productHandler.Delete)

		admin.POST("/categories", categoryHandler.Create)
		admin.PUT("/categories/:id", categoryHandler.Update)
		admin.DELETE("/categories/:id", categoryHandler.Delete)
	}
}
