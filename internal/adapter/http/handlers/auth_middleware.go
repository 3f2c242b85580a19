package handlers

import (
	"errors"
	"strings"

	"lotes_backoffice/internal/domain/entities"
	"lotes_backoffice/internal/infrastructure/backend"
	"lotes_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "bo_session"

	sessionKey = "auth.session"
)

// RequireSession resolves the caller's session, forwards its access token to
// every backend call made with the request context and records the user for
// user-scoped caching.
func RequireSession(uc usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := uc.Current(c.Request.Context(), sessionID(c))
		if err != nil {
			appErr := errUnauthorized
			if !errors.Is(err, usecase.ErrSessionNotFound) && !errors.Is(err, usecase.ErrSessionExpired) {
				appErr = mapCommonError(err)
			}
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(sessionKey, s)
		ctx := backend.WithAccessToken(c.Request.Context(), s.AccessToken)
		c.Request = c.Request.WithContext(usecase.WithUserID(ctx, s.User.ID))
		c.Next()
	}
}

func SessionFrom(c *gin.Context) (entities.AuthSession, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return entities.AuthSession{}, false
	}
	s, ok := v.(entities.AuthSession)
	return s, ok
}

func sessionID(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(SessionHeader)); id != "" {
		return id
	}
	id, _ := c.Cookie(SessionCookie)
	return id
}
