package routes

import (
	"biscenic-store/config"
	"biscenic-store/controllers"
	"biscenic-store/middleware"
	"biscenic-store/models"
	"biscenic-store/repositories"
	"biscenic-store/services"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies carries everything the route tree needs. main builds one
// for the real backend; tests build one around httptest servers.
type Dependencies struct {
	Config     *config.Config
	Store      *services.SessionStore
	Products   *repositories.ProductRepository
	Categories *repositories.CategoryRepository
	Users      *repositories.UserRepository
	Payments   *repositories.PaymentRepository
	Orders     *services.OrderService
	Email      *models.EmailService
	Cloudinary *models.CloudinaryService
}

// NewDependencies wires the production dependency graph against the
// configured backend. Email and Cloudinary stay nil when their
// credentials are absent; the controllers answer 503 for those features.
func NewDependencies(cfg *config.Config) Dependencies {
	client := repositories.NewClient()
	orders := repositories.NewOrderRepository(client)

	deps := Dependencies{
		Config:     cfg,
		Store:      services.NewSessionStore(cfg.SessionTTL),
		Products:   repositories.NewProductRepository(client),
		Categories: repositories.NewCategoryRepository(client),
		Users:      repositories.NewUserRepository(client),
		Payments:   repositories.NewPaymentRepository(client),
		Orders:     services.NewOrderService(orders),
	}

	if email, err := models.NewEmailService(); err != nil {
		log.Printf("Warning: email disabled: %v", err)
	} else {
		deps.Email = email
	}

	if cloudinary, err := models.NewCloudinaryService(); err != nil {
		log.Printf("Warning: image uploads disabled: %v", err)
	} else {
		deps.Cloudinary = cloudinary
	}

	return deps
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	authCtrl := controllers.NewAuthController(deps.Users)
	userCtrl := controllers.NewUserController(deps.Users)
	productCtrl := controllers.NewProductController(deps.Products)
	categoryCtrl := controllers.NewCategoryController(deps.Categories)
	cartCtrl := controllers.NewCartController(deps.Products)
	checkoutCtrl := controllers.NewCheckoutController(deps.Payments)
	orderCtrl := controllers.NewOrderController(deps.Orders)
	analyticsCtrl := controllers.NewAnalyticsController()
	contactCtrl := controllers.NewContactController(deps.Email, deps.Config)
	uploadCtrl := controllers.NewUploadController(deps.Cloudinary)

	router.Use(middleware.SessionMiddleware(deps.Store))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/logout", authCtrl.Logout)

	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.GET("/categories", categoryCtrl.GetCategories)
	router.GET("/categories/:id", categoryCtrl.GetCategoryByID)

	router.GET("/cart", cartCtrl.GetCart)
	router.POST("/cart/items", cartCtrl.AddItem)
	router.PATCH("/cart/items/:id", cartCtrl.UpdateQuantity)
	router.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
	router.DELETE("/cart", cartCtrl.ClearCart)

	router.GET("/checkout/summary", checkoutCtrl.GetSummary)
	router.POST("/checkout/pay", checkoutCtrl.Pay)
	router.GET("/checkout/verify", checkoutCtrl.VerifyPayment)

	router.POST("/contact", contactCtrl.SendMessage)

	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware())
	{
		admin.GET("/check", authCtrl.CheckAdmin)
		admin.GET("/dashboard", orderCtrl.GetDashboard)
		admin.GET("/analytics", analyticsCtrl.GetReport)

		admin.POST("/products", productCtrl.CreateProduct)
		admin.PUT("/products/:id", productCtrl.UpdateProduct)
		admin.PATCH("/products/:id/images", productCtrl.UpdateProductImages)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PUT("/categories/:id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", categoryCtrl.DeleteCategory)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/:id", orderCtrl.GetOrderByID)
		admin.PUT("/orders/status", orderCtrl.UpdateOrderStatus)
		admin.DELETE("/orders/:id", orderCtrl.DeleteOrder)

		admin.GET("/users", userCtrl.GetAllUsers)
		admin.GET("/users/:id/orders", orderCtrl.GetUserOrders)
		admin.PUT("/users/:id/role", userCtrl.UpdateUserRole)
		admin.DELETE("/users/:id", userCtrl.DeleteUser)

		admin.POST("/uploads", uploadCtrl.UploadImages)
	}
}
