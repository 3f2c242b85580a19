package handlers

import (
	"errors"
	"net/http"
	"time"

	request "lotes_backoffice/internal/adapter/http/dto/request"
	response "lotes_backoffice/internal/adapter/http/dto/response"
	"lotes_backoffice/internal/usecase"
	"lotes_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	s, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}

	maxAge := int(time.Until(s.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, s.ID, maxAge, "/", "", c.Request.TLS != nil, true)
	c.JSON(http.StatusOK, response.FromAuthSession(s))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context(), sessionID(c)); err != nil && !errors.Is(err, usecase.ErrSessionNotFound) {
		writeError(c, mapAuthError(err))
		return
	}
	c.SetCookie(SessionCookie, "", -1, "/", "", c.Request.TLS != nil, true)
	c.Status(http.StatusNoContent)
}

// Me returns the session resolved by RequireSession.
func (h *AuthHandler) Me(c *gin.Context) {
	s, ok := SessionFrom(c)
	if !ok {
		writeError(c, errUnauthorized)
		return
	}
	c.JSON(http.StatusOK, response.FromAuthSession(s))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCredentials):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAuthServiceUnavailable):
		return pkg.NewDomainError("AUTH_SERVICE_UNAVAILABLE", "Could not reach the authentication service", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrSessionNotFound), errors.Is(err, usecase.ErrSessionExpired):
		return errUnauthorized
	default:
		return mapCommonError(err)
	}
}
