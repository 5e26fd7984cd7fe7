package auth

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/akeren/enquiry-portal/config"
	apperrors "github.com/akeren/enquiry-portal/pkg/errors"
	"github.com/google/uuid"
)

const sessionKeyPrefix = "session:"

// Session is an authenticated admin session. Tokens are opaque UUIDs; the
// cookie carries only the token, never the username.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionStore persists sessions with a sliding TTL: every successful Get
// pushes the expiry forward by the configured TTL.
type SessionStore interface {
	// Create mints a new session for username.
	Create(ctx context.Context, username string) (*Session, error)
	// Get returns (nil, nil) when the token is unknown or expired.
	Get(ctx context.Context, token string) (*Session, error)
	// Destroy removes a session. Destroying an unknown token is not an error.
	Destroy(ctx context.Context, token string) error
}

// NewSessionStore returns a Redis-backed store when a cache is configured and
// an in-process store otherwise, so a single-instance deployment works with no
// external dependencies.
func NewSessionStore(cache config.Cache, ttl time.Duration) SessionStore {
	if cache != nil {
		return &cacheSessionStore{cache: cache, ttl: ttl}
	}
	return newMemorySessionStore(ttl)
}

type cacheSessionStore struct {
	cache config.Cache
	ttl   time.Duration
}

func (s *cacheSessionStore) Create(ctx context.Context, username string) (*Session, error) {
	now := time.Now()
	session := &Session{
		Token:     uuid.NewString(),
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.put(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *cacheSessionStore) Get(ctx context.Context, token string) (*Session, error) {
	raw, err := s.cache.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		return nil, apperrors.NewInternalServerError("failed to load session", err)
	}
	if raw == "" {
		return nil, nil
	}

	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, apperrors.NewInternalServerError("failed to decode session", err)
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.cache.Delete(ctx, sessionKeyPrefix+token)
		return nil, nil
	}

	// Sliding expiry: each authenticated request extends the session.
	session.ExpiresAt = time.Now().Add(s.ttl)
	if err := s.put(ctx, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (s *cacheSessionStore) Destroy(ctx context.Context, token string) error {
	if err := s.cache.Delete(ctx, sessionKeyPrefix+token); err != nil {
		return apperrors.NewInternalServerError("failed to destroy session", err)
	}
	return nil
}

func (s *cacheSessionStore) put(ctx context.Context, session *Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return apperrors.NewInternalServerError("failed to encode session", err)
	}

	if err := s.cache.Set(ctx, sessionKeyPrefix+session.Token, string(payload), s.ttl); err != nil {
		return apperrors.NewInternalServerError("failed to store session", err)
	}

	return nil
}

type memorySessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*Session
}

func newMemorySessionStore(ttl time.Duration) *memorySessionStore {
	return &memorySessionStore{
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

func (s *memorySessionStore) Create(_ context.Context, username string) (*Session, error) {
	now := time.Now()
	session := &Session{
		Token:     uuid.NewString(),
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(now)
	s.sessions[session.Token] = session

	copied := *session
	return &copied, nil
}

func (s *memorySessionStore) Get(_ context.Context, token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}

	now := time.Now()
	if now.After(session.ExpiresAt) {
		delete(s.sessions, token)
		return nil, nil
	}

	session.ExpiresAt = now.Add(s.ttl)

	copied := *session
	return &copied, nil
}

func (s *memorySessionStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

func (s *memorySessionStore) purgeExpiredLocked(now time.Time) {
	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}
