package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging
	"time"    // Time durations

	"cafetaria/internal/api"        // Custom package for API handlers
	"cafetaria/internal/auth"       // Registration and login flows
	"cafetaria/internal/config"     // Custom package for configuration
	"cafetaria/internal/domain"     // Domain models and role enum
	"cafetaria/internal/middleware" // Custom package for middleware
	"cafetaria/internal/token"      // Token issuer

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database. TranslateError surfaces unique-constraint
	// violations as gorm.ErrDuplicatedKey for the stores.
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Token issuer and auth flows
	tokens := token.NewIssuer(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	authSvc := auth.NewService(db, tokens)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	authGroup := r.Group("/auth")
	authGroup.POST("/register-customer", api.RegisterCustomerHandler(authSvc, redisClient)) // Customer registration endpoint
	authGroup.POST("/register-admin", api.RegisterAdminHandler(authSvc, redisClient))       // Admin registration endpoint
	authGroup.POST("/login", api.LoginHandler(authSvc))                                     // Login endpoint

	// Customer routes (authenticated; reads and deletes by id are admin-only)
	customerGroup := r.Group("/customers")
	customerGroup.Use(middleware.Auth(tokens))
	customerGroup.GET("", api.ListCustomersHandler(db, redisClient)) // List customers endpoint
	customerGroup.GET("/:id", middleware.RequireRoles(domain.RoleAdmin),
		api.GetCustomerHandler(db, redisClient)) // Get customer endpoint
	customerGroup.DELETE("/:id", middleware.RequireRoles(domain.RoleAdmin),
		api.DeleteCustomerHandler(db, redisClient)) // Delete customer endpoint

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admins")
	adminGroup.Use(middleware.Auth(tokens), middleware.RequireRoles(domain.RoleAdmin))
	adminGroup.GET("", api.ListAdminsHandler(db, redisClient))          // List admins endpoint
	adminGroup.GET("/:id", api.GetAdminHandler(db, redisClient))        // Get admin endpoint
	adminGroup.DELETE("/:id", api.DeleteAdminHandler(db, redisClient))  // Delete admin endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
