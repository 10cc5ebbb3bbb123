package main

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/tdat2209/Read-Track-Backend/internal/books"
	"github.com/tdat2209/Read-Track-Backend/internal/health"
	"github.com/tdat2209/Read-Track-Backend/internal/items"
	"github.com/tdat2209/Read-Track-Backend/internal/logs"
	"github.com/tdat2209/Read-Track-Backend/internal/middleware"
	"github.com/tdat2209/Read-Track-Backend/internal/notify"
	"github.com/tdat2209/Read-Track-Backend/internal/store"
	"github.com/tdat2209/Read-Track-Backend/pkg/config"
	"github.com/tdat2209/Read-Track-Backend/pkg/logger"
	"github.com/tdat2209/Read-Track-Backend/pkg/metrics"
)

func main() {
	// Load environment variables from .env if present (optional)
	_ = godotenv.Load()

	cfg := config.LoadServerConfig()

	logger.Init(logger.LogLevel(cfg.LogLevel), cfg.LogJSON, os.Stdout)
	log := logger.GetLogger().WithContext("component", "api_server")
	log.Info("starting_api_server", "version", "1.0.0")

	// All state is process-local; nothing survives a restart.
	memStore := store.NewMemoryStore()

	hub := notify.NewHub(logger.WithContext("component", "notify_hub"))
	go hub.Run()
	defer hub.Stop()

	bookService := books.NewService(memStore)
	logService := logs.NewService(memStore)

	bookHandler := books.NewHandler(bookService, hub)
	logHandler := logs.NewHandler(logService, hub)
	itemHandler := items.NewHandler()
	healthHandler := health.NewHandler(memStore)
	metricsHandler := metrics.NewHandler()

	router := gin.Default()

	// CORS middleware configuration
	corsConfig := cors.DefaultConfig()
	if cfg.FrontendURL == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{cfg.FrontendURL}
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	router.Use(limiter.Middleware())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is alive")
	})
	router.GET("/health", healthHandler.Healthz)
	router.GET("/ready", healthHandler.Readyz)
	router.GET("/metrics", metricsHandler.Metrics)
	router.GET("/ws", hub.HandleWS)

	itemGroup := router.Group("/items")
	{
		itemGroup.GET("", itemHandler.ListItems)
		itemGroup.GET("/:id", itemHandler.GetItem)
		itemGroup.POST("", itemHandler.CreateItem)
		itemGroup.PATCH("/:id", itemHandler.UpdateItem)
		itemGroup.DELETE("/:id", itemHandler.DeleteItem)
	}

	bookGroup := router.Group("/books")
	{
		bookGroup.GET("", bookHandler.ListBooks)
		bookGroup.GET("/:id", bookHandler.GetBook)
		bookGroup.POST("", bookHandler.CreateBook)
		bookGroup.PATCH("/:id", bookHandler.UpdateBook)
		bookGroup.DELETE("/:id", bookHandler.DeleteBook)

		bookGroup.GET("/:id/logs", logHandler.ListLogs)
		bookGroup.POST("/:id/logs", logHandler.CreateLog)
	}

	log.Info("starting_api_server", "addr", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		log.Error("failed_to_start_api_server", "error", err.Error())
		os.Exit(1)
	}
}
