package auth

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/akeren/enquiry-portal/config"
	"github.com/akeren/enquiry-portal/internal/log"
	apperrors "github.com/akeren/enquiry-portal/pkg/errors"
)

type AuthService interface {
	// Login validates the credential pair and mints a session on success.
	Login(ctx context.Context, username, password string) (*Session, error)

	// Validate resolves a session token to its session, extending the TTL.
	Validate(ctx context.Context, token string) (*Session, error)

	// Logout destroys the session for token.
	Logout(ctx context.Context, token string) error
}

type authService struct {
	logger   *log.Logger
	admin    *config.AdminConfig
	sessions SessionStore
}

func NewAuthService(logger *log.Logger, admin *config.AdminConfig, sessions SessionStore) AuthService {
	return &authService{
		logger:   logger,
		admin:    admin,
		sessions: sessions,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*Session, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if strings.TrimSpace(username) == "" || password == "" {
		return nil, apperrors.NewUnauthorizedError("invalid username or password", nil)
	}

	// When no admin credential is configured every attempt must fail.
	if s.admin.Username == "" || s.admin.Password == "" {
		logger.Warn("Login attempt rejected: no admin credentials configured")
		return nil, apperrors.NewUnauthorizedError("invalid username or password", nil)
	}

	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) == 1

	if !userMatch || !passMatch {
		logger.Warn("Login attempt failed", "username", username)
		return nil, apperrors.NewUnauthorizedError("invalid username or password", nil)
	}

	session, err := s.sessions.Create(ctx, username)
	if err != nil {
		logger.Error("Failed to create session", "error", err)
		return nil, err
	}

	logger.Info("Admin logged in", "username", username)
	return session, nil
}

func (s *authService) Validate(ctx context.Context, token string) (*Session, error) {
	if strings.TrimSpace(token) == "" {
		return nil, apperrors.NewUnauthorizedError("missing session token", nil)
	}

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.NewUnauthorizedError("session expired or unknown", nil)
	}

	return session, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}

	return s.sessions.Destroy(ctx, token)
}
