package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lotes_backoffice/internal/adapter/http/handlers/mocks"
	"lotes_backoffice/internal/domain/entities"
	"lotes_backoffice/internal/infrastructure/backend"
	"lotes_backoffice/internal/usecase"
	"lotes_backoffice/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"not-an-email"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		uc.EXPECT().Login(gomock.Any(), "ana@lotes.pe", "bad").Return(entities.AuthSession{}, usecase.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"ana@lotes.pe","password":"bad"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_CREDENTIALS" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("success sets the cookie and hides tokens", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		uc.EXPECT().Login(gomock.Any(), "ana@lotes.pe", "secret").Return(entities.AuthSession{
			ID:          "sid-1",
			AccessToken: "jwt",
			User:        entities.User{ID: "user-1", Email: "ana@lotes.pe"},
			ExpiresAt:   time.Now().Add(time.Hour),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"ana@lotes.pe","password":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains([]byte(w.Header().Get("Set-Cookie")), []byte(SessionCookie+"=sid-1")) {
			t.Fatalf("expected session cookie, got %q", w.Header().Get("Set-Cookie"))
		}
		if bytes.Contains(w.Body.Bytes(), []byte("jwt")) {
			t.Fatalf("access token leaked: %s", w.Body.String())
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAuthUseCase(ctrl)
	h := NewAuthHandler(uc)

	r := gin.New()
	r.POST("/v1/auth/logout", h.Logout)

	uc.EXPECT().Logout(gomock.Any(), "sid-1").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "sid-1"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IAuthUseCase, h *AuthHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/auth/me", RequireSession(uc), func(c *gin.Context) {
			ctx := c.Request.Context()
			if backend.AccessTokenFrom(ctx) != "jwt" || usecase.UserIDFrom(ctx) != "user-1" {
				c.AbortWithStatus(http.StatusTeapot)
				return
			}
			c.Next()
		}, h.Me)
		return r
	}

	t.Run("missing session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(uc, NewAuthHandler(uc))

		uc.EXPECT().Current(gomock.Any(), "").Return(entities.AuthSession{}, usecase.ErrSessionNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(uc, NewAuthHandler(uc))

		uc.EXPECT().Current(gomock.Any(), "sid-1").Return(entities.AuthSession{}, errors.New("redis down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.Header.Set(SessionHeader, "sid-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("header session forwards the token and the user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(uc, NewAuthHandler(uc))

		uc.EXPECT().Current(gomock.Any(), "sid-1").Return(entities.AuthSession{ID: "sid-1", AccessToken: "jwt", User: entities.User{ID: "user-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.Header.Set(SessionHeader, "sid-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["sessionId"] != "sid-1" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestMapCommonError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", &usecase.ValidationError{Fields: map[string]string{"address": "required"}}, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"backend unauthorized", interfaces.ErrUnauthorized, http.StatusUnauthorized, "SESSION_EXPIRED"},
		{"backend down", interfaces.ErrBackendUnavailable, http.StatusServiceUnavailable, "BACKEND_UNAVAILABLE"},
		{"not found", interfaces.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"backend rejected", &backend.APIError{Status: http.StatusConflict, Message: "Lote ya vendido"}, http.StatusConflict, "BACKEND_REJECTED"},
		{"other", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapCommonError(tc.err)
			if got.HTTPStatus != tc.status || got.Code != tc.code {
				t.Fatalf("expected %d %s, got %d %s", tc.status, tc.code, got.HTTPStatus, got.Code)
			}
		})
	}
}
