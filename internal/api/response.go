package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"cafetaria/internal/domain" // Domain error taxonomy

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CommonResponse is the envelope wrapping every payload
type CommonResponse struct {
	StatusCode int    `json:"statusCode"`     // HTTP status code
	Message    string `json:"message"`        // Human-readable message
	Data       any    `json:"data,omitempty"` // Payload, omitted on errors
}

// respond writes an enveloped response
func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, CommonResponse{StatusCode: status, Message: message, Data: data})
}

// respondError writes an enveloped error without payload
func respondError(c *gin.Context, status int, message string) {
	respond(c, status, message, nil)
}

// respondDomainError maps a flow or store error onto the HTTP taxonomy.
// Unmapped errors are logged and reported as a bare 500 with no internal
// detail leaked to the caller.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		respondError(c, http.StatusConflict, "Username already exists")
	case errors.Is(err, domain.ErrAlreadyExists):
		respondError(c, http.StatusConflict, "Record already exists")
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, http.StatusNotFound, "Record not found")
	case errors.Is(err, domain.ErrBadCredentials):
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
	default:
		logrus.WithFields(logrus.Fields{
			"path":  c.FullPath(),
			"error": err.Error(),
		}).Error("Request failed")
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
