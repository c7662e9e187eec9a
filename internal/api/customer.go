package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Time durations

	"cafetaria/internal/cache"  // Redis cache helpers
	"cafetaria/internal/domain" // Importing domain models
	"cafetaria/internal/store"  // Typed data access layer

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

const (
	customersCacheKey = "customers:all"  // Cache key for the customer list
	customerCacheKey  = "customer:"      // Cache key prefix for a single customer
	cacheTTL          = 60 * time.Second // TTL for cached read responses
)

// CustomerResponse represents a customer profile as returned by the API
type CustomerResponse struct {
	ID           string `json:"id"`           // Customer ID
	CustomerName string `json:"customerName"` // Customer name
	Address      string `json:"address"`      // Home address
	Phone        string `json:"phone"`        // Mobile phone number
	Email        string `json:"email"`        // Contact email
}

// toCustomerResponse maps a stored customer onto the API shape
func toCustomerResponse(customer domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:           customer.ID,          // Customer ID
		CustomerName: customer.Name,        // stored name -> customerName
		Address:      customer.Address,     // Home address
		Phone:        customer.MobilePhone, // stored mobile_phone -> phone
		Email:        customer.Email,       // Contact email
	}
}

// ListCustomersHandler returns all customer profiles
func ListCustomersHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		// Try to get cached response
		var cached []CustomerResponse
		found, err := cache.Get(ctx, rdb, customersCacheKey, &cached)
		if err == nil && found {
			respond(c, http.StatusOK, "Successfully retrieved all customer", cached)
			return
		}
		customers, err := store.NewCustomerStore(db).FindAll(c.Request.Context())
		if err != nil {
			respondDomainError(c, err)
			return
		}
		// Map customers to response format
		resp := make([]CustomerResponse, len(customers))
		for i, customer := range customers {
			resp[i] = toCustomerResponse(customer)
		}
		// Cache the response for future requests
		_ = cache.Set(ctx, rdb, customersCacheKey, resp, cacheTTL)
		respond(c, http.StatusOK, "Successfully retrieved all customer", resp)
	}
}

// GetCustomerHandler returns a single customer profile by id
func GetCustomerHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")         // Customer id from the path
		ctx := context.Background() // Context for Redis operations
		// Try to get cached response
		var cached CustomerResponse
		found, err := cache.Get(ctx, rdb, customerCacheKey+id, &cached)
		if err == nil && found {
			respond(c, http.StatusOK, "Successfully get customer by id", cached)
			return
		}
		customer, err := store.NewCustomerStore(db).FindByID(c.Request.Context(), id)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		resp := toCustomerResponse(*customer)
		// Cache the response for future requests
		_ = cache.Set(ctx, rdb, customerCacheKey+id, resp, cacheTTL)
		respond(c, http.StatusOK, "Successfully get customer by id", resp)
	}
}

// DeleteCustomerHandler removes a customer profile by id
func DeleteCustomerHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id") // Customer id from the path
		if err := store.NewCustomerStore(db).Delete(c.Request.Context(), id); err != nil {
			respondDomainError(c, err)
			return
		}
		// Log successful deletion
		logrus.WithFields(logrus.Fields{
			"customer_id": id,
		}).Info("Customer deleted")
		// Invalidate list and single-customer cache
		ctx := context.Background()
		_ = cache.Delete(ctx, rdb, customersCacheKey)
		_ = cache.Delete(ctx, rdb, customerCacheKey+id)
		respond(c, http.StatusOK, "Successfully Delete Customer", nil)
	}
}
