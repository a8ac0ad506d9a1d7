package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/adminclient/internal/client/models"
	"github.com/dmitrijs2005/adminclient/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/adminclient/internal/common"
	"github.com/dmitrijs2005/adminclient/internal/logging"
)

// Snapshot is a point-in-time copy of the session.
type Snapshot struct {
	Token string
	User  *models.User
}

// Authenticated reports whether the snapshot carries a token.
func (s Snapshot) Authenticated() bool {
	return s.Token != ""
}

type Store struct {
	// writeMu serialises SetAuth, Logout and Restore so that memory, storage
	// and subscribers see changes in the same order. mu guards the fields.
	writeMu   sync.Mutex
	mu        sync.RWMutex
	token     string
	user      *models.User
	listeners []func(Snapshot)

	storage metadata.Repository
	log     logging.Logger
}

// NewStore returns an empty session backed by storage. A nil storage keeps
// the session in memory only.
func NewStore(storage metadata.Repository, log logging.Logger) *Store {
	if log == nil {
		log = logging.Discard()
	}
	return &Store{storage: storage, log: log.With("component", "session")}
}

// Restore loads a previously persisted token. The user is not persisted and
// stays nil until the next SetAuth.
func (s *Store) Restore(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	token, err := s.storage.Get(ctx, common.TokenStorageKey)
	if errors.Is(err, common.ErrorNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.user = nil
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.log.Debug(ctx, "session restored", "authenticated", snap.Authenticated())
	s.notify(snap)
	return nil
}

// SetAuth makes token and user the current session and persists the token.
// The token is not validated. In-memory state is updated even when
// persisting fails; the persistence error is returned afterwards.
func (s *Store) SetAuth(ctx context.Context, token string, user *models.User) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.token = token
	s.user = user.Clone()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)

	if s.storage == nil {
		return nil
	}
	if err := s.storage.Set(ctx, common.TokenStorageKey, token); err != nil {
		s.log.Error(ctx, "persist token failed", "error", err)
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

// Logout clears token and user and removes the persisted token. Calling it on
// an already empty session is harmless.
func (s *Store) Logout(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.token = ""
	s.user = nil
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)

	if s.storage == nil {
		return nil
	}
	if err := s.storage.Delete(ctx, common.TokenStorageKey); err != nil {
		s.log.Error(ctx, "remove persisted token failed", "error", err)
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a non-empty token is held.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Token returns the current bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the current user, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Clone()
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to be called after every session change. fn runs on
// the goroutine that changed the session, in the order the changes were
// made, and must not call Subscribe, SetAuth, Logout or Restore.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{Token: s.token, User: s.user.Clone()}
}

func (s *Store) notify(snap Snapshot) {
	s.mu.RLock()
	listeners := make([]func(Snapshot), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(Snapshot{Token: snap.Token, User: snap.User.Clone()})
	}
}
