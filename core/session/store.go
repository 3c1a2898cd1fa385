package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"github.com/coachly/mobile/core"
	"github.com/coachly/mobile/storage/kvstore"
)

var ErrMissingToken = errors.New("auth response carries no token")

// Store owns the process-wide Session. It persists the identity under two
// independent device-store keys and signals the navigation layer on every
// transition. Reads are torn-free; concurrent logins/logouts are
// last-write-wins, as in the app this models.
type Store struct {
	kv     kvstore.Store
	router Router
	logger core.Logger

	mu   sync.RWMutex
	curr Session
}

func NewStore(kv kvstore.Store, router Router, logger core.Logger) *Store {
	return &Store{kv: kv, router: router, logger: logger}
}

// Current returns a copy of the session; mutating it does not affect the store.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess := s.curr
	if sess.User != nil {
		usr := *sess.User
		sess.User = &usr
	}
	return sess
}

// Restore loads a persisted session at process start. Both keys must be
// present and the user record must parse; on any storage or parse failure
// the session stays empty and the condition is only logged (fail-safe:
// the user re-authenticates). Reports whether a session was restored.
func (s *Store) Restore(ctx context.Context) bool {
	raw, err := s.kv.Get(ctx, kvstore.KeyUser)
	if err != nil {
		s.logRestoreMiss(kvstore.KeyUser, err)
		return false
	}
	token, err := s.kv.Get(ctx, kvstore.KeyToken)
	if err != nil {
		s.logRestoreMiss(kvstore.KeyToken, err)
		return false
	}

	var usr User
	if err := json.Unmarshal([]byte(raw), &usr); err != nil {
		s.logger.Warn("discarding unreadable saved session", "error", err)
		return false
	}
	if _, err := ParseRole(string(usr.Role)); err != nil {
		s.logger.Warn("discarding saved session", "error", err)
		return false
	}
	if ctx.Err() != nil {
		return false
	}

	s.mu.Lock()
	s.curr = Session{Token: token, User: &usr}
	s.mu.Unlock()

	s.logger.Info("session restored", "user", usr.Email, "role", usr.Role)
	s.router.Replace(RouteTabs)
	return true
}

func (s *Store) logRestoreMiss(key string, err error) {
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		s.logger.Debug("no saved session", "key", key)
		return
	}
	s.logger.Warn("session restore failed", "key", key, "error", err)
}

// Login opens a session for usr with the given bearer token. Both durable
// writes are staged before the in-memory state is touched: if the second
// write fails, the first is rolled back and the store is left exactly as
// it was. Navigates to the main app surface on success.
func (s *Store) Login(ctx context.Context, token string, usr User) error {
	if token == "" {
		return ErrMissingToken
	}
	if _, err := ParseRole(string(usr.Role)); err != nil {
		return err
	}

	raw, err := json.Marshal(usr)
	if err != nil {
		return errors.Wrap(err, "encoding user record")
	}
	if err := s.kv.Set(ctx, kvstore.KeyUser, string(raw)); err != nil {
		return core.NewPersistenceError("failed to save session", err)
	}
	if err := s.kv.Set(ctx, kvstore.KeyToken, token); err != nil {
		if delErr := s.kv.Delete(ctx, kvstore.KeyUser); delErr != nil {
			s.logger.Warn("login rollback failed", "error", delErr)
		}
		return core.NewPersistenceError("failed to save session", err)
	}
	// the caller may be gone; leave shared state alone
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.curr = Session{Token: token, User: &usr}
	s.mu.Unlock()

	s.logger.Info("logged in", "user", usr.Email, "role", usr.Role)
	s.router.Replace(RouteTabs)
	return nil
}

// Logout removes both persisted keys, clears the in-memory session and
// navigates to the login screen. On a storage failure the session is left
// intact and the error propagates so the caller can retry.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, kvstore.KeyUser); err != nil {
		return core.NewPersistenceError("failed to clear session", err)
	}
	if err := s.kv.Delete(ctx, kvstore.KeyToken); err != nil {
		return core.NewPersistenceError("failed to clear session", err)
	}

	s.mu.Lock()
	s.curr = Session{}
	s.mu.Unlock()

	s.logger.Info("logged out")
	s.router.Replace(RouteLogin)
	return nil
}
