package usecase

import (
	"context"
	"strings"
)

type callerKey struct{}

// WithUserID records the authenticated user making the request. Cached reads
// of user-visible data and wizard access are scoped by it.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, callerKey{}, strings.TrimSpace(userID))
}

// UserIDFrom returns the user recorded by WithUserID, or "" for internal calls.
func UserIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(callerKey{}).(string)
	return id
}
