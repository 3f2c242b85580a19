package usecase

import (
	"context"

	"lotes_backoffice/internal/infrastructure/cache"
	"lotes_backoffice/internal/usecase/interfaces"
)

func newTestQueries(api interfaces.ISalesAPI) *Queries {
	return NewQueries(api, cache.NewQueryCache(cache.NewMemoryStore(cache.DefaultGCTime)))
}

// userCtx is a request context of a signed-in user.
func userCtx(userID string) context.Context {
	return WithUserID(context.Background(), userID)
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
