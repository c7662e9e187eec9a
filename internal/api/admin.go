package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes

	"cafetaria/internal/cache"  // Redis cache helpers
	"cafetaria/internal/domain" // Importing domain models
	"cafetaria/internal/store"  // Typed data access layer

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

const (
	adminsCacheKey = "admins:all" // Cache key for the admin list
	adminCacheKey  = "admin:"     // Cache key prefix for a single admin
)

// AdminResponse represents an admin profile as returned by the API
type AdminResponse struct {
	ID    string `json:"id"`    // Admin ID
	Name  string `json:"name"`  // Administrator name
	Email string `json:"email"` // Contact email
	Phone string `json:"phone"` // Phone number
}

// toAdminResponse maps a stored admin onto the API shape
func toAdminResponse(admin domain.Admin) AdminResponse {
	return AdminResponse{
		ID:    admin.ID,    // Admin ID
		Name:  admin.Name,  // Administrator name
		Email: admin.Email, // Contact email
		Phone: admin.Phone, // Phone number
	}
}

// ListAdminsHandler returns all admin profiles
func ListAdminsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		// Try to get cached response
		var cached []AdminResponse
		found, err := cache.Get(ctx, rdb, adminsCacheKey, &cached)
		if err == nil && found {
			respond(c, http.StatusOK, "Successfully retrieved all admin", cached)
			return
		}
		admins, err := store.NewAdminStore(db).FindAll(c.Request.Context())
		if err != nil {
			respondDomainError(c, err)
			return
		}
		// Map admins to response format
		resp := make([]AdminResponse, len(admins))
		for i, admin := range admins {
			resp[i] = toAdminResponse(admin)
		}
		// Cache the response for future requests
		_ = cache.Set(ctx, rdb, adminsCacheKey, resp, cacheTTL)
		respond(c, http.StatusOK, "Successfully retrieved all admin", resp)
	}
}

// GetAdminHandler returns a single admin profile by id
func GetAdminHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")         // Admin id from the path
		ctx := context.Background() // Context for Redis operations
		// Try to get cached response
		var cached AdminResponse
		found, err := cache.Get(ctx, rdb, adminCacheKey+id, &cached)
		if err == nil && found {
			respond(c, http.StatusOK, "Successfully get admin by id", cached)
			return
		}
		admin, err := store.NewAdminStore(db).FindByID(c.Request.Context(), id)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		resp := toAdminResponse(*admin)
		// Cache the response for future requests
		_ = cache.Set(ctx, rdb, adminCacheKey+id, resp, cacheTTL)
		respond(c, http.StatusOK, "Successfully get admin by id", resp)
	}
}

// DeleteAdminHandler removes an admin profile by id
func DeleteAdminHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id") // Admin id from the path
		if err := store.NewAdminStore(db).Delete(c.Request.Context(), id); err != nil {
			respondDomainError(c, err)
			return
		}
		// Log successful deletion
		logrus.WithFields(logrus.Fields{
			"admin_id": id,
		}).Info("Admin deleted")
		// Invalidate list and single-admin cache
		ctx := context.Background()
		_ = cache.Delete(ctx, rdb, adminsCacheKey)
		_ = cache.Delete(ctx, rdb, adminCacheKey+id)
		respond(c, http.StatusOK, "Successfully Delete Admin", nil)
	}
}
