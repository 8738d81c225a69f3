package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Juan171109/automation-task/internal/models"
	"github.com/Juan171109/automation-task/internal/storage"
)

// SessionService gates access to the shop for one browser tab
type SessionService interface {
	Login(ctx context.Context, username, password string) (*models.UserSession, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	Current(ctx context.Context) (*models.UserSession, error)
}

// SessionServiceImpl implements SessionService
type SessionServiceImpl struct {
	sessionStore storage.Store
	basketStore  storage.Store
	credentials  CredentialStore
	trimUsername bool
}

// NewSessionService creates a new session service. sessionStore holds the
// tab-scoped "userSession" key; basketStore holds the durable "basket" key
// that logout erases.
func NewSessionService(sessionStore, basketStore storage.Store, credentials CredentialStore, trimUsername bool) SessionService {
	return &SessionServiceImpl{
		sessionStore: sessionStore,
		basketStore:  basketStore,
		credentials:  credentials,
		trimUsername: trimUsername,
	}
}

// Login checks the credentials and stores a new session on success
func (s *SessionServiceImpl) Login(ctx context.Context, username, password string) (*models.UserSession, error) {
	if s.trimUsername {
		username = strings.TrimSpace(username)
	}

	if username == "" || password == "" || !s.credentials.Verify(username, password) {
		zap.S().Infow("login rejected", "username", username)
		return nil, models.ErrInvalidCredentials
	}

	session := models.NewUserSession(username)
	data, err := storage.MarshalSession(session)
	if err != nil {
		return nil, err
	}
	if err := s.sessionStore.Put(ctx, storage.KeyUserSession, data); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	zap.S().Infow("login succeeded", "username", username)
	return session, nil
}

// Logout destroys the session and erases the stored basket. Logging out
// with no session is not an error.
func (s *SessionServiceImpl) Logout(ctx context.Context) error {
	if err := s.basketStore.Delete(ctx, storage.KeyBasket); err != nil {
		return fmt.Errorf("failed to erase basket: %w", err)
	}
	if err := s.sessionStore.Delete(ctx, storage.KeyUserSession); err != nil {
		return fmt.Errorf("failed to erase session: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether an active session is stored
func (s *SessionServiceImpl) IsAuthenticated(ctx context.Context) bool {
	_, err := s.Current(ctx)
	return err == nil
}

// Current returns the stored session, or ErrUnauthenticated when there is
// none. An unreadable session counts as no session.
func (s *SessionServiceImpl) Current(ctx context.Context) (*models.UserSession, error) {
	data, err := s.sessionStore.Get(ctx, storage.KeyUserSession)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, models.ErrUnauthenticated
	}
	if err != nil {
		zap.S().Warnw("failed to read session", "error", err)
		return nil, models.ErrUnauthenticated
	}

	session, err := storage.UnmarshalSession(data)
	if err != nil {
		zap.S().Warnw("discarding corrupt session", "error", err)
		return nil, models.ErrUnauthenticated
	}
	if !session.IsActive() {
		return nil, models.ErrUnauthenticated
	}

	return session, nil
}
