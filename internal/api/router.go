package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pawfinder/adoption-platform/docs"
	"github.com/pawfinder/adoption-platform/internal/api/handler"
	"github.com/pawfinder/adoption-platform/internal/api/middleware"
	"github.com/pawfinder/adoption-platform/internal/core/ports"
	"github.com/pawfinder/adoption-platform/internal/core/service"
	mongodb "github.com/pawfinder/adoption-platform/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, verifier ports.TokenVerifier, provider ports.PaymentProvider, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("petadoption"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	petRepo := mongodb.NewPetRepository(db)
	donationRepo := mongodb.NewDonationRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)

	// --- Services ---
	userService := service.NewUserService(userRepo, log)
	petService := service.NewPetService(petRepo, userRepo, log)
	donationService := service.NewDonationService(donationRepo, log)
	paymentService := service.NewPaymentService(paymentRepo, provider, log)
	requestService := service.NewRequestService(requestRepo, log)

	// --- Handlers ---
	userHandler := handler.NewUserHandler(userService)
	petHandler := handler.NewPetHandler(petService)
	donationHandler := handler.NewDonationHandler(donationService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	requestHandler := handler.NewRequestHandler(requestService)

	authRequired := middleware.Auth(verifier)
	adminOnly := middleware.AdminOnly(userRepo)

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Pets are waiting for you"})
	})

	// --- Pets ---
	e.GET("/pets", petHandler.List)
	e.GET("/allpets", petHandler.ListAll, authRequired)
	e.GET("/pets/:id", petHandler.Get)
	e.POST("/pets", petHandler.Create, authRequired)
	e.PUT("/pets/:petId", petHandler.Update, authRequired)
	e.PATCH("/pets/:id/status", petHandler.SetStatus, authRequired, adminOnly)
	e.PATCH("/pets/:id/adopt", petHandler.Adopt, authRequired)
	e.DELETE("/pets/:id", petHandler.Delete, authRequired)

	// --- Donation campaigns ---
	e.GET("/donations/infinite", donationHandler.ListInfinite)
	e.GET("/donations", donationHandler.List)
	e.GET("/donations/:id", donationHandler.Get)
	e.POST("/donations", donationHandler.Create, authRequired)
	e.PUT("/donations/:id", donationHandler.Update, authRequired)
	e.PATCH("/donations/:id", donationHandler.SetStatus, authRequired)
	e.DELETE("/donations/:id", donationHandler.Delete, authRequired, adminOnly)

	// --- Payments ---
	e.POST("/create-payment-intent", paymentHandler.CreateIntent)
	e.GET("/donation-payments", paymentHandler.List, authRequired)
	e.POST("/donation-payments", paymentHandler.Record, authRequired)
	e.DELETE("/donation-payments/:id", paymentHandler.Delete, authRequired)

	// --- Adoption requests ---
	e.GET("/adoption-requests", requestHandler.List, authRequired)
	e.GET("/adoption-requests/:id", requestHandler.ListByPet, authRequired)
	e.POST("/adoption-requests", requestHandler.Create, authRequired)
	e.PATCH("/adoption-requests/:id", requestHandler.SetStatus, authRequired)

	// --- Users ---
	e.GET("/users", userHandler.List, authRequired)
	e.GET("/users/role", userHandler.Role)
	e.POST("/users", userHandler.Register)
	e.PUT("/users/role/:id", userHandler.SetRole, authRequired, adminOnly)

	// --- Operational surface ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
