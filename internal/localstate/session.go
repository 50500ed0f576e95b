package localstate

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/0xGitteth/Exhibit-sub000/internal/models"
)

const sessionKey = "exhibit_session"

// SessionStore persists the currently authenticated user. An absent entry
// means logged out.
type SessionStore struct {
	kv     KV
	logger *slog.Logger
}

func NewSessionStore(kv KV, logger *slog.Logger) *SessionStore {
	return &SessionStore{kv: kv, logger: logger}
}

// Current returns the persisted session user. Corrupted JSON is logged and
// treated as absent, never surfaced to the caller.
func (s *SessionStore) Current() (*models.User, bool) {
	data, ok := s.kv.Get(sessionKey)
	if !ok {
		return nil, false
	}
	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		s.logger.Warn("discarding corrupted session entry", "error", err)
		return nil, false
	}
	if u.Email == "" {
		return nil, false
	}
	return &u, true
}

func (s *SessionStore) Save(u *models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to serialize session user: %v", err)
	}
	return s.kv.Set(sessionKey, data)
}

func (s *SessionStore) Clear() {
	if err := s.kv.Delete(sessionKey); err != nil {
		s.logger.Warn("failed to clear session entry", "error", err)
	}
}
