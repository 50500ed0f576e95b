package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/0xGitteth/Exhibit-sub000/internal/config"
	"github.com/0xGitteth/Exhibit-sub000/internal/connect"
	"github.com/0xGitteth/Exhibit-sub000/internal/container"
	"github.com/0xGitteth/Exhibit-sub000/internal/routes"
)

func setupLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func main() {
	if err := godotenv.Load(".env.local"); err != nil {
		slog.Info("No .env.local file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg)
	slog.SetDefault(logger)

	var cld *cloudinary.Cloudinary
	if cfg.CloudinaryCloudName != "" {
		cld, err = connect.CloudinaryCredentials()
		if err != nil {
			logger.Error("Failed to initialize Cloudinary", "error", err)
			os.Exit(1)
		}
		logger.Info("Cloudinary configured", "cloud_name", cfg.CloudinaryCloudName)
	} else {
		logger.Info("Cloudinary not configured, uploads go to local disk")
	}

	var mongoClient *mongo.Client
	if cfg.MongoDBURI != "" {
		mongoClient, err = connect.MongoDBConnect(cfg.MongoDBURI)
		if err != nil {
			logger.Error("Failed to connect to MongoDB", "error", err)
			os.Exit(1)
		}
		logger.Info("Connected to MongoDB")
	}

	c := container.NewContainer(logger, cfg, cld, mongoClient)

	if err := c.AuthService.SeedDemoAccounts(context.Background()); err != nil {
		logger.Error("Failed to seed demo accounts", "error", err)
		os.Exit(1)
	}

	r := routes.SetupRoutes(c)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	if mongoClient != nil {
		if err := connect.MongoDBDisconnect(); err != nil {
			logger.Error("Failed to disconnect from MongoDB", "error", err)
		}
	}

	logger.Info("Server exited")
}
