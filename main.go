package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/nirvana726/Woods/config"
	"github.com/nirvana726/Woods/controllers"
	"github.com/nirvana726/Woods/routes"
	"github.com/nirvana726/Woods/services"
	"github.com/nirvana726/Woods/utils"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.LoadConfig()
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.JWTSecret == "" {
		logrus.Fatal("❌ JWT_SECRET environment variable is not set")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		logrus.Fatalf("❌ Database connect failed: %v", err)
	}
	logrus.Info("✅ Database connection established")

	// Redis list cache is optional; without it every list request hits the
	// database.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("❌ Redis connect failed: %v", err)
		}
		logrus.Info("✅ Redis connection established")
	}

	// Cloudinary when configured, local disk otherwise.
	var storage services.ObjectStorage
	if cfg.CloudinaryCloudName != "" {
		storage, err = services.NewCloudinaryStorage(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			logrus.Fatalf("❌ Cloudinary init failed: %v", err)
		}
		logrus.Info("✅ Cloudinary storage configured")
	} else {
		storage = services.NewDiskStorage("uploads")
		logrus.Warn("⚠️  Cloudinary credentials missing; storing uploads on local disk")
	}

	mailer := utils.NewMailer(cfg.ResendAPIKey, cfg.EmailFrom)

	userService := services.NewUserService(db)
	roomService := services.NewRoomService(db)
	activityService := services.NewActivityService(db)
	bookingService := services.NewBookingService(db)
	contactService := services.NewContactService(db)
	galleryService := services.NewGalleryService(db, storage)

	authController := controllers.NewAuthController(userService, cfg.JWTSecret)
	roomController := controllers.NewRoomController(roomService, storage, redisClient)
	activityController := controllers.NewActivityController(activityService, storage, redisClient)
	bookingController := controllers.NewBookingController(bookingService, mailer)
	contactController := controllers.NewContactController(contactService, mailer)
	galleryController := controllers.NewGalleryController(galleryService)

	router := routes.SetupRouter(
		db, cfg.JWTSecret, cfg.CORSOrigins,
		authController, roomController, activityController,
		bookingController, contactController, galleryController,
	)

	addr := ":" + cfg.AppPort
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.Infof("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Warn("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	logrus.Info("✅ Server stopped gracefully")
}
