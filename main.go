package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-food-ordering/config"
	"go-food-ordering/controllers"
	"go-food-ordering/database"
	"go-food-ordering/helpers"
	"go-food-ordering/middleware"
	"go-food-ordering/repositories"
	"go-food-ordering/routes"
	"go-food-ordering/seeders"
	"go-food-ordering/services"
)

func main() {
	found, err := config.LoadEnvFile(".env")
	if err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, err := helpers.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	if !found {
		zap.S().Info(".env file not found, using process environment")
	}

	if err := run(cfg, logger); err != nil {
		zap.S().Fatalw("server stopped", "error", err)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, cfg.MongoURL)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			zap.S().Warnw("mongo disconnect", "error", err)
		}
	}()

	registry := database.NewRegistry(client.Database(cfg.DatabaseName))
	if err := registry.EnsureIndexes(ctx); err != nil {
		return err
	}
	repos := repositories.New(registry)

	tokens := helpers.NewTokenMaker(cfg.SecretKey, cfg.TokenTTL)
	authService := services.NewAuthService(repos.Users, tokens)
	userService := services.NewUserService(repos.Users)
	restaurantService := services.NewRestaurantService(repos.Restaurants, repos.Users)
	categoryService := services.NewCategoryService(repos.Categories, repos.Restaurants)
	productService := services.NewProductService(repos.Products, repos.Categories, repos.Restaurants)
	orderService := services.NewOrderService(repos.Orders, repos.Products, repos.Users, repos.Restaurants)

	if cfg.SeedData {
		seeder := &seeders.Seeder{
			Users:       authService,
			Restaurants: restaurantService,
			Categories:  categoryService,
			Products:    productService,
		}
		if _, err := seeder.SeedDemoCatalog(ctx); err != nil {
			return err
		}
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx, nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})

	routes.Register(router, routes.Controllers{
		Users:       controllers.NewUserController(authService, userService, cfg.RequestTimeout),
		Restaurants: controllers.NewRestaurantController(restaurantService, cfg.RequestTimeout),
		Categories:  controllers.NewCategoryController(categoryService, cfg.RequestTimeout),
		Products:    controllers.NewProductController(productService, cfg.RequestTimeout),
		Orders:      controllers.NewOrderController(orderService, cfg.RequestTimeout),
	}, middleware.Authentication(authService))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		zap.S().Infow("listening", "addr", server.Addr, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	zap.S().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
