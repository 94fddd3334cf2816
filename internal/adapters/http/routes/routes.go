package routes

import (
	"context"
	"time"

	"carrental/internal/adapters/http/handlers"
	"carrental/internal/adapters/http/middleware"
	"carrental/internal/adapters/persistence/repositories"
	"carrental/internal/config"
	"carrental/internal/core/services"
	"carrental/internal/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const catalogMaxAge = time.Minute

// NewApp builds the fiber app with middlewares and routes
func NewApp(db *gorm.DB, cfg *config.Config, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Car Rental API v1.0",
		ErrorHandler: middleware.NewErrorHandler(log),
	})

	middleware.Setup(app, cfg)
	Setup(app, db, cfg, log)

	return app
}

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	// Initialize repositories
	customerRepo := repositories.NewCustomerRepository(db)
	employeeRepo := repositories.NewEmployeeRepository(db)
	brandRepo := repositories.NewBrandRepository(db)
	styleRepo := repositories.NewStyleRepository(db)
	carRepo := repositories.NewCarRepository(db)
	rentalRepo := repositories.NewRentalRepository(db)

	// Initialize services
	authService := services.NewAuthService(customerRepo, employeeRepo, cfg.JWT)
	customerService := services.NewCustomerService(customerRepo)
	employeeService := services.NewEmployeeService(employeeRepo, log)
	catalogService := services.NewCatalogService(brandRepo, styleRepo, carRepo)
	rentalService := services.NewRentalService(rentalRepo, customerRepo, carRepo, log)

	// Initialize handlers
	validate := validator.New()
	healthHandler := handlers.NewHealthHandler(cfg.AppMode, func(ctx context.Context) error {
		return config.HealthCheck(ctx, db)
	})
	authHandler := handlers.NewAuthHandler(authService, validate)
	accountHandler := handlers.NewAccountHandler(customerService, employeeService, authService, validate)
	catalogHandler := handlers.NewCatalogHandler(catalogService, validate)
	rentalHandler := handlers.NewRentalHandler(rentalService, validate)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	requireAuth := middleware.RequireAuth(authService)

	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	setupAuthRoutes(apiV1, authHandler, cfg)
	setupAccountRoutes(apiV1, accountHandler, requireAuth)
	setupCatalogRoutes(apiV1, catalogHandler, requireAuth)
	setupRentalRoutes(apiV1, rentalHandler, requireAuth)
}

// setupAuthRoutes configures login routes
func setupAuthRoutes(router fiber.Router, h *handlers.AuthHandler, cfg *config.Config) {
	auth := router.Group("/auth",
		middleware.NoCacheHeaders(),
		middleware.AuthRateLimiter(cfg.RateLimit.AuthMax),
	)
	auth.Post("/", h.LoginCustomer)
	auth.Post("/employee", h.LoginEmployee)
}

// setupAccountRoutes configures customer and employee routes
func setupAccountRoutes(router fiber.Router, h *handlers.AccountHandler, requireAuth fiber.Handler) {
	customers := router.Group("/customers", middleware.NoCacheHeaders())
	customers.Post("/", h.RegisterCustomer)
	customers.Get("/", requireAuth, middleware.EmployeeOnly(), h.ListCustomers)
	customers.Get("/me", requireAuth, h.CurrentCustomer)

	employees := router.Group("/employees", middleware.NoCacheHeaders(), requireAuth)
	employees.Post("/", middleware.ManagerOnly(), h.CreateEmployee)
	employees.Get("/", middleware.ManagerOnly(), h.ListEmployees)
	employees.Get("/me", middleware.EmployeeOnly(), h.CurrentEmployee)
}

// catalogResource groups the five handlers of one catalog collection
type catalogResource struct {
	list, get, create, update, remove fiber.Handler
}

// setupCatalogRoutes configures brand, style and car routes.
// Reads are public; writes need an employee token.
func setupCatalogRoutes(router fiber.Router, h *handlers.CatalogHandler, requireAuth fiber.Handler) {
	resources := map[string]catalogResource{
		"/brands": {h.ListBrands, h.GetBrand, h.CreateBrand, h.UpdateBrand, h.DeleteBrand},
		"/styles": {h.ListStyles, h.GetStyle, h.CreateStyle, h.UpdateStyle, h.DeleteStyle},
		"/cars":   {h.ListCars, h.GetCar, h.CreateCar, h.UpdateCar, h.DeleteCar},
	}

	for prefix, r := range resources {
		group := router.Group(prefix)
		group.Get("/", middleware.CatalogCache(catalogMaxAge), r.list)
		group.Get("/:id", middleware.ValidateID(), middleware.CatalogCache(catalogMaxAge), r.get)
		group.Post("/", requireAuth, middleware.EmployeeOnly(), r.create)
		group.Put("/:id", requireAuth, middleware.EmployeeOnly(), middleware.ValidateID(), r.update)
		group.Delete("/:id", requireAuth, middleware.EmployeeOnly(), middleware.ValidateID(), r.remove)
	}
}

// setupRentalRoutes configures rental and return routes
func setupRentalRoutes(router fiber.Router, h *handlers.RentalHandler, requireAuth fiber.Handler) {
	rentals := router.Group("/rentals", middleware.NoCacheHeaders(), requireAuth)
	rentals.Get("/", h.ListRentals)
	rentals.Get("/me", h.ListMyRentals)
	rentals.Get("/:id", middleware.EmployeeOnly(), middleware.ValidateID(), h.GetRental)
	rentals.Post("/", h.CreateRental)
	rentals.Put("/:id", middleware.EmployeeOnly(), middleware.ValidateID(), h.UpdateRental)
	rentals.Delete("/:id", middleware.ManagerOnly(), middleware.ValidateID(), h.DeleteRental)

	returns := router.Group("/returns", middleware.NoCacheHeaders(), requireAuth, middleware.EmployeeOnly())
	returns.Post("/", h.ReturnRental)
}
