package response

import (
	"time"

	"lotes_backoffice/internal/domain/entities"
)

// SessionResponse never carries the backend tokens; the browser only holds the session id.
type SessionResponse struct {
	SessionID string        `json:"sessionId"`
	User      entities.User `json:"user"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

func FromAuthSession(s entities.AuthSession) SessionResponse {
	return SessionResponse{SessionID: s.ID, User: s.User, ExpiresAt: s.ExpiresAt}
}
