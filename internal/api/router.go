package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/babycare/store-api/internal/api/handler"
	"github.com/babycare/store-api/internal/api/middleware"
	"github.com/babycare/store-api/internal/core/service"
	mongodb "github.com/babycare/store-api/internal/infrastructure/db/mongo"
	redisdb "github.com/babycare/store-api/internal/infrastructure/db/redis"
	"github.com/babycare/store-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The Mongo database and Redis client are the process-wide handles opened at
// startup; every repository shares them.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("babystore"))

	// --- Dependencies ---
	authService := service.NewAuthService(mongodb.NewUserRepository(db), cfg.JWTSecret, cfg.TokenTTL)
	authHandler := handler.NewAuthHandler(authService)

	productService := service.NewProductService(mongodb.NewProductRepository(db), redisdb.NewCatalogCache(rdb), log)
	productHandler := handler.NewProductHandler(productService)

	orderService := service.NewOrderService(mongodb.NewOrderRepository(db), log)
	orderHandler := handler.NewOrderHandler(orderService)

	requireAuth := middleware.Auth(cfg.JWTSecret)

	// --- API routes ---
	apiGroup := e.Group("/api")

	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.GET("/auth/me", authHandler.Me, requireAuth)

	apiGroup.POST("/product", productHandler.Create)
	apiGroup.GET("/products", productHandler.List)
	apiGroup.GET("/product/:id", productHandler.Get)

	apiGroup.POST("/order", orderHandler.Create)
	apiGroup.GET("/orders", orderHandler.List)
	apiGroup.PATCH("/:orderId/status", orderHandler.UpdateStatus)

	// --- Health & operational endpoints ---
	healthHandler := handler.NewHealthHandler(db, rdb)
	e.GET("/", healthHandler.Status)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
