package handler

import (
	"errors"
	"net/http"

	"sangam/internal/domain"

	"github.com/gin-gonic/gin"
)

// fail maps the domain error taxonomy onto a status plus a stable "code"
// tag so clients can branch without string-matching messages.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation_error"})
	case errors.Is(err, domain.ErrSelfReference):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "code": "self_reference"})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "already_exists"})
	case errors.Is(err, domain.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error(), "code": "not_authorized"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": "not_found"})
	case errors.Is(err, domain.ErrNotConnected):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error(), "code": "not_connected"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "code": "internal"})
	}
}
