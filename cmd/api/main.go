// @title Catboard API
// @version 1.0
// @description Backend for the catboard single-page app: cat posts, trivia quiz, sign-up form, clock and themes.
// @host localhost:8090
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"catboard/internal/adapter"
	"catboard/internal/cache"
	"catboard/internal/client"
	"catboard/internal/config"
	"catboard/internal/handler"
	"catboard/internal/logger"
	"catboard/internal/middleware"
	"catboard/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Upstream clients
	catCatalog := client.NewCatAPIClient(cfg.CatAPI.BaseURL, cfg.CatAPI.APIKey)
	triviaAPI := client.NewTriviaClient(cfg.Trivia.BaseURL)
	signupGateway := client.NewUsersClient(cfg.Signup.BaseURL, cfg.Signup.Timeout)

	// Initialize services
	catService := service.NewCatService(catCatalog, cacheAdapter, cfg.CatAPI)
	quizService := service.NewQuizService(triviaAPI, cacheAdapter, cfg.Trivia)
	signupService := service.NewSignupService(signupGateway)
	clockService := service.NewClockService(cfg.Clock.Tick)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 5*time.Second)
	themeService := service.NewThemeService(startupCtx, cacheAdapter, cfg.Theme.StorageKey)
	cancelStartup()

	router := service.NewRouter(catService, quizService, signupService, clockService, cfg.CatAPI.Limit)

	// Mirror theme changes into the log, the server-side stand-in for
	// the browser-chrome color update.
	go func() {
		for change := range themeService.Subscribe() {
			appLogger.Info("theme changed", zap.String("theme", change.Theme))
		}
	}()

	// Initialize handlers
	catHandler := handler.NewCatHandler(catService)
	quizHandler := handler.NewQuizHandler(quizService)
	signupHandler := handler.NewSignupHandler(signupService)
	clockHandler := handler.NewClockHandler(clockService)
	themeHandler := handler.NewThemeHandler(themeService)
	navigationHandler := handler.NewNavigationHandler(router)
	healthHandler := handler.NewHealthHandler(cacheAdapter)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	apiGroup := app.Group("/api")

	// Cat routes
	apiGroup.Get("/cats", catHandler.GetPosts)
	apiGroup.Get("/cats/carousel", catHandler.GetCarousel)
	apiGroup.Post("/cats/invalidate", catHandler.Invalidate)
	apiGroup.Get("/cats/:id", catHandler.GetCatDetail)

	// Quiz routes
	apiGroup.Post("/quiz", quizHandler.StartSession)
	apiGroup.Post("/quiz/:id/answers", quizHandler.SubmitAnswers)

	// Sign-up routes
	apiGroup.Get("/signup", signupHandler.GetForm)
	apiGroup.Post("/signup", signupHandler.Submit)
	apiGroup.Post("/signup/fields", signupHandler.EditField)

	// Clock, theme and navigation
	apiGroup.Get("/clock", clockHandler.Current)
	apiGroup.Get("/theme", themeHandler.Current)
	apiGroup.Put("/theme", themeHandler.Change)
	apiGroup.Post("/theme/toggle", themeHandler.Toggle)
	apiGroup.Post("/theme/system", themeHandler.SyncSystemPreference)
	apiGroup.Post("/navigate/:page", navigationHandler.Navigate)

	apiGroup.Get("/health", healthHandler.Health)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	clockService.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
