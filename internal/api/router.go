package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/house-hunter/marketplace-api/docs"
	"github.com/house-hunter/marketplace-api/internal/api/handler"
	"github.com/house-hunter/marketplace-api/internal/api/middleware"
	"github.com/house-hunter/marketplace-api/internal/core/domain"
	"github.com/house-hunter/marketplace-api/internal/core/ports"
	"github.com/house-hunter/marketplace-api/pkg/logger"
	"github.com/house-hunter/marketplace-api/pkg/token"
)

// Dependencies are the wired services and stores the router needs. Everything
// is constructed in main and injected here; the router owns no lifecycle.
type Dependencies struct {
	DB     *mongo.Database
	Redis  *redis.Client
	Tokens *token.Manager

	Users    ports.UserRepository
	Auth     ports.AuthService
	Houses   ports.HouseService
	Bookings ports.BookingService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Tokens)
	houseHandler := handler.NewHouseHandler(deps.Houses)
	bookingHandler := handler.NewBookingHandler(deps.Bookings)
	userHandler := handler.NewUserHandler(deps.Users)

	// --- Gates ---
	authGate := middleware.Auth(deps.Tokens)
	ownerGate := middleware.RequireRole(deps.Users, domain.RoleHouseOwner)
	renterGate := middleware.RequireRole(deps.Users, domain.RoleHouseRenter)

	// --- Public routes ---
	e.POST("/jwt", authHandler.Token)
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/houses", houseHandler.Search)
	e.GET("/users/:userEmail", userHandler.Get)

	// --- Owner routes ---
	e.POST("/house", houseHandler.Create, authGate, ownerGate)
	e.GET("/houses/:houseOwner", houseHandler.ListByOwner, authGate, ownerGate)
	e.PATCH("/houses/:houseId", houseHandler.Update, authGate, ownerGate)
	e.DELETE("/houses/:houseId", houseHandler.Delete, authGate, ownerGate)

	// --- Renter routes ---
	e.POST("/booking", bookingHandler.Create, authGate, renterGate)
	e.GET("/bookings/:houseRenter", bookingHandler.ListByRenter, authGate, renterGate)
	e.DELETE("/bookings/:bookId", bookingHandler.Delete, authGate, renterGate)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
