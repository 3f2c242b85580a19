package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"lotes_backoffice/internal/domain/entities"
	"lotes_backoffice/internal/infrastructure/logger"
	"lotes_backoffice/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMissingCredentials     = errors.New("email and password are required")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrAuthServiceUnavailable = errors.New("authentication service unavailable")
	ErrSessionNotFound        = errors.New("session not found")
	ErrSessionExpired         = errors.New("session expired")
)

// DefaultSessionTTL applies when the access token carries no exp claim.
const DefaultSessionTTL = 8 * time.Hour

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (entities.AuthSession, error)
	Current(ctx context.Context, sessionID string) (entities.AuthSession, error)
	Logout(ctx context.Context, sessionID string) error
}

type AuthUseCase struct {
	api   interfaces.ISalesAPI
	store interfaces.ITokenStore
	now   func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(api interfaces.ISalesAPI, store interfaces.ITokenStore) *AuthUseCase {
	return &AuthUseCase{api: api, store: store, now: func() time.Time { return time.Now().UTC() }}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.AuthSession, error) {
	log := logger.For("auth.usecase")
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return entities.AuthSession{}, ErrMissingCredentials
	}

	tokens, err := u.api.Login(ctx, email, password)
	switch {
	case errors.Is(err, interfaces.ErrUnauthorized):
		log.Info().Str("email", email).Msg("login rejected")
		return entities.AuthSession{}, ErrInvalidCredentials
	case errors.Is(err, interfaces.ErrBackendUnavailable):
		log.Error().Err(err).Msg("login failed; backend unreachable")
		return entities.AuthSession{}, ErrAuthServiceUnavailable
	case err != nil:
		log.Error().Err(err).Str("email", email).Msg("login failed")
		return entities.AuthSession{}, err
	}
	if tokens.AccessToken == "" {
		return entities.AuthSession{}, ErrInvalidCredentials
	}

	now := u.now()
	s := entities.AuthSession{
		ID:           uuid.NewString(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         tokens.User,
		CreatedAt:    now,
		ExpiresAt:    tokenExpiry(tokens.AccessToken, now),
	}
	if err := u.store.Save(ctx, s); err != nil {
		log.Error().Err(err).Msg("session save failed")
		return entities.AuthSession{}, err
	}
	log.Info().Str("user_id", s.User.ID).Time("expires_at", s.ExpiresAt).Msg("login success")
	return s, nil
}

func (u *AuthUseCase) Current(ctx context.Context, sessionID string) (entities.AuthSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.AuthSession{}, ErrSessionNotFound
	}
	s, ok, err := u.store.Get(ctx, sessionID)
	if err != nil {
		return entities.AuthSession{}, err
	}
	if !ok {
		return entities.AuthSession{}, ErrSessionNotFound
	}
	if !u.now().Before(s.ExpiresAt) {
		if err := u.store.Delete(ctx, sessionID); err != nil {
			logger.For("auth.usecase").Warn().Err(err).Msg("expired session cleanup failed")
		}
		return entities.AuthSession{}, ErrSessionExpired
	}
	return s, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrSessionNotFound
	}
	return u.store.Delete(ctx, sessionID)
}

// tokenExpiry reads exp without verifying the signature; the backend verifies
// the token on every call, this only bounds the local session.
func tokenExpiry(token string, now time.Time) time.Time {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil || claims.ExpiresAt == nil {
		return now.Add(DefaultSessionTTL)
	}
	return claims.ExpiresAt.UTC()
}
