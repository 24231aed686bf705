// Package handlers contains HTTP request handlers for the user service.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/GunarsK-portfolio/user-service/internal/service"
)

// respondError writes a JSON error body with the given status.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondServiceError maps service-layer sentinel errors onto HTTP status
// codes. Unrecognized errors are logged and reported as 500 without leaking
// internals.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, service.ErrUnauthenticated):
		respondError(c, http.StatusUnauthorized, "unauthenticated")
	case errors.Is(err, service.ErrAccountDisabled):
		respondError(c, http.StatusForbidden, "account disabled")
	case errors.Is(err, service.ErrForbidden):
		respondError(c, http.StatusForbidden, "forbidden")
	case errors.Is(err, service.ErrSelfDelete):
		respondError(c, http.StatusBadRequest, "cannot delete own account")
	case errors.Is(err, service.ErrInvalidRole):
		respondError(c, http.StatusBadRequest, "invalid role")
	case errors.Is(err, service.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrEmailTaken):
		respondError(c, http.StatusConflict, "email already registered")
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}
