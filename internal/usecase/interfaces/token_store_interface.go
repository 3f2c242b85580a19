package interfaces

import (
	"context"

	"lotes_backoffice/internal/domain/entities"
)

// ITokenStore holds logged-in sessions. It is injected so the auth use case
// never reaches for a global store.
type ITokenStore interface {
	Save(ctx context.Context, s entities.AuthSession) error
	Get(ctx context.Context, id string) (entities.AuthSession, bool, error)
	Delete(ctx context.Context, id string) error
}
