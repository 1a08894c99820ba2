package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/learnly/server/adapters/mongo"
	"github.com/learnly/server/internal/api"
	"github.com/learnly/server/internal/config"
	"github.com/learnly/server/usecase"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	// Connect to the store; serving without it is not an option
	client, err := mongo.NewClient(cfg.MongoURI, cfg.MongoDatabase, logger)
	if err != nil {
		logger.Fatal("Could not connect to MongoDB", zap.Error(err))
	}

	// Initialize repositories
	courseRepo := mongo.NewCourseRepository(client.Database)
	userRepo := mongo.NewUserRepository(client.Database)

	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := userRepo.EnsureIndexes(ctx); err != nil {
			logger.Fatal("Could not ensure indexes", zap.Error(err))
		}
		cancel()
	}

	// Initialize usecase services
	catalog := usecase.NewCatalogService(courseRepo, logger)
	enrollment := usecase.NewEnrollmentService(courseRepo, userRepo, logger)
	accounts := usecase.NewAccountService(userRepo, []byte(cfg.JWTSecret), logger)

	// Seed sample courses after the connection is established. Request
	// handling does not wait for this to finish.
	seeder := usecase.NewSeeder(courseRepo, logger)
	go seeder.Run(context.Background())

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Initialize API routes
	api.InitRoutes(e, catalog, enrollment, accounts, []byte(cfg.JWTSecret), logger)

	host := localIP()
	address := net.JoinHostPort(host, cfg.Port)

	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server is running", zap.String("address", "http://"+address))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := client.Close(ctx); err != nil {
		logger.Error("Error closing MongoDB connection", zap.Error(err))
	}

	logger.Info("Server exited")
}

// localIP returns the machine's first non-loopback IPv4 address, falling
// back to loopback when none is discoverable.
func localIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "127.0.0.1"
	}
	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipnet.IP.To4(); ip4 != nil {
			return ip4.String()
		}
	}
	return "127.0.0.1"
}
