package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"lotes_backoffice/internal/domain/entities"
	"lotes_backoffice/internal/usecase/interfaces"
	mock_interfaces "lotes_backoffice/internal/usecase/interfaces/mocks"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("backend-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("missing credentials", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		if _, err := uc.Login(ctx, "  ", "secret"); !errors.Is(err, ErrMissingCredentials) {
			t.Fatalf("expected ErrMissingCredentials, got %v", err)
		}
	})

	errCases := []struct {
		name    string
		backend error
		want    error
	}{
		{"wrong password", interfaces.ErrUnauthorized, ErrInvalidCredentials},
		{"backend down", interfaces.ErrBackendUnavailable, ErrAuthServiceUnavailable},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			api := mock_interfaces.NewMockISalesAPI(ctrl)
			store := mock_interfaces.NewMockITokenStore(ctrl)
			uc := NewAuthUseCase(api, store)

			api.EXPECT().Login(gomock.Any(), "ana@lotes.pe", "secret").Return(entities.AuthTokens{}, tc.backend)

			if _, err := uc.Login(ctx, " Ana@Lotes.pe ", "secret"); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("session expires with the token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockISalesAPI(ctrl)
		store := mock_interfaces.NewMockITokenStore(ctrl)
		uc := NewAuthUseCase(api, store)
		uc.now = func() time.Time { return now }

		exp := now.Add(90 * time.Minute)
		token := signedToken(t, exp)
		api.EXPECT().Login(gomock.Any(), "ana@lotes.pe", "secret").Return(entities.AuthTokens{AccessToken: token, RefreshToken: "r", User: entities.User{ID: "user-1"}}, nil)
		store.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.AuthSession{})).DoAndReturn(func(_ context.Context, s entities.AuthSession) error {
			if s.ID == "" || s.AccessToken != token || s.User.ID != "user-1" {
				t.Fatalf("unexpected session %+v", s)
			}
			return nil
		})

		s, err := uc.Login(ctx, "ana@lotes.pe", "secret")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !s.ExpiresAt.Equal(exp.Truncate(time.Second)) {
			t.Fatalf("expected expiry %v, got %v", exp, s.ExpiresAt)
		}
	})

	t.Run("opaque token uses default ttl", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockISalesAPI(ctrl)
		store := mock_interfaces.NewMockITokenStore(ctrl)
		uc := NewAuthUseCase(api, store)
		uc.now = func() time.Time { return now }

		api.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.AuthTokens{AccessToken: "opaque"}, nil)
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		s, err := uc.Login(ctx, "ana@lotes.pe", "secret")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !s.ExpiresAt.Equal(now.Add(DefaultSessionTTL)) {
			t.Fatalf("unexpected expiry %v", s.ExpiresAt)
		}
	})
}

func TestAuthUseCase_Current(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockITokenStore(ctrl)
		uc := NewAuthUseCase(nil, store)
		uc.now = func() time.Time { return now }

		store.EXPECT().Get(gomock.Any(), "sid").Return(entities.AuthSession{ID: "sid", ExpiresAt: now.Add(time.Minute)}, true, nil)

		if s, err := uc.Current(ctx, "sid"); err != nil || s.ID != "sid" {
			t.Fatalf("unexpected %v %+v", err, s)
		}
	})

	t.Run("expired is deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockITokenStore(ctrl)
		uc := NewAuthUseCase(nil, store)
		uc.now = func() time.Time { return now }

		store.EXPECT().Get(gomock.Any(), "sid").Return(entities.AuthSession{ID: "sid", ExpiresAt: now}, true, nil)
		store.EXPECT().Delete(gomock.Any(), "sid").Return(nil)

		if _, err := uc.Current(ctx, "sid"); !errors.Is(err, ErrSessionExpired) {
			t.Fatalf("expected ErrSessionExpired, got %v", err)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockITokenStore(ctrl)
		uc := NewAuthUseCase(nil, store)

		store.EXPECT().Get(gomock.Any(), "sid").Return(entities.AuthSession{}, false, nil)

		if _, err := uc.Current(ctx, "sid"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
		if err := uc.Logout(ctx, ""); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestCatalogUseCase_EmptyParents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := mock_interfaces.NewMockISalesAPI(ctrl)
	uc := NewCatalogUseCase(newTestQueries(api))

	stages, err := uc.Stages(context.Background(), " ")
	if err != nil || stages == nil || len(stages) != 0 {
		t.Fatalf("expected empty stages, got %v %v", err, stages)
	}
	lots, err := uc.Lots(context.Background(), "p1", "")
	if err != nil || lots == nil || len(lots) != 0 {
		t.Fatalf("expected empty lots, got %v %v", err, lots)
	}

	api.EXPECT().Roles(gomock.Any()).Return([]entities.Role{{ID: 1, Code: "ADM"}}, nil).Times(1)
	uc.Roles(context.Background())
	roles, _ := uc.Roles(context.Background())
	if len(roles) != 1 {
		t.Fatalf("expected cached roles, got %+v", roles)
	}
}
