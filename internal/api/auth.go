package api

import (
	"context"  // Context for cache invalidation
	"net/http" // HTTP status codes

	"cafetaria/internal/auth"  // Registration and login flows
	"cafetaria/internal/cache" // Redis cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// Request struct for customer registration
type RegisterCustomerRequest struct {
	Username     string `json:"username" binding:"required"`     // Username must be provided
	Password     string `json:"password" binding:"required"`     // Password must be provided
	CustomerName string `json:"customerName" binding:"required"` // Customer name must be provided
	Address      string `json:"address" binding:"required"`      // Address must be provided
	MobilePhone  string `json:"mobilePhone" binding:"required"`  // Mobile phone must be provided
	Email        string `json:"email" binding:"required,email"`  // Valid email must be provided
}

// Request struct for admin registration
type RegisterAdminRequest struct {
	Username    string `json:"username" binding:"required"`    // Username must be provided
	Password    string `json:"password" binding:"required"`    // Password must be provided
	Email       string `json:"email" binding:"required,email"` // Valid email must be provided
	MobilePhone string `json:"mobilePhone" binding:"required"` // Mobile phone must be provided
}

// Request struct for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Response struct for registration
type RegisterResponse struct {
	Username string `json:"username"` // Registered username
	Role     string `json:"role"`     // Assigned role
}

// Response struct for login
type LoginResponse struct {
	Token string `json:"token"` // Signed bearer token
	Role  string `json:"role"`  // Role of the authenticated principal
}

// isValidPassword checks the password length (bcrypt caps input at 72 bytes)
func isValidPassword(password string) bool {
	return len(password) >= 8 && len(password) <= 72
}

// RegisterCustomerHandler registers a new customer account
func RegisterCustomerHandler(svc *auth.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterCustomerRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		// Validate password length
		if !isValidPassword(req.Password) {
			respondError(c, http.StatusBadRequest, "Password must be 8-72 characters")
			return
		}
		res, err := svc.RegisterCustomer(c.Request.Context(), auth.RegisterCustomerInput{
			Username:    req.Username,     // Login username
			Password:    req.Password,     // Plaintext password, hashed by the flow
			Name:        req.CustomerName, // Customer name
			Address:     req.Address,      // Home address
			MobilePhone: req.MobilePhone,  // Mobile phone number
			Email:       req.Email,        // Contact email
		})
		if err != nil {
			respondDomainError(c, err)
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"username": res.Username,
			"role":     res.Role,
		}).Info("Customer registered")
		// Invalidate the customer list cache
		_ = cache.Delete(context.Background(), rdb, customersCacheKey)
		respond(c, http.StatusCreated, "Successfully registered customer", RegisterResponse{
			Username: res.Username,
			Role:     string(res.Role),
		})
	}
}

// RegisterAdminHandler registers a new administrator account
func RegisterAdminHandler(svc *auth.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterAdminRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		// Validate password length
		if !isValidPassword(req.Password) {
			respondError(c, http.StatusBadRequest, "Password must be 8-72 characters")
			return
		}
		res, err := svc.RegisterAdmin(c.Request.Context(), auth.RegisterAdminInput{
			Username: req.Username,    // Login username
			Password: req.Password,    // Plaintext password, hashed by the flow
			Email:    req.Email,       // Contact email
			Phone:    req.MobilePhone, // Phone number
		})
		if err != nil {
			respondDomainError(c, err)
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"username": res.Username,
			"role":     res.Role,
		}).Info("Admin registered")
		// Invalidate the admin list cache
		_ = cache.Delete(context.Background(), rdb, adminsCacheKey)
		respond(c, http.StatusCreated, "Successfully registered admin", RegisterResponse{
			Username: res.Username,
			Role:     string(res.Role),
		})
	}
}

// LoginHandler authenticates a user and returns a signed token
func LoginHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		res, err := svc.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		respond(c, http.StatusOK, "Successfully logged in", LoginResponse{
			Token: res.Token,
			Role:  string(res.Role),
		})
	}
}
