// internal/service/auth/auth.go
package auth

import (
	"context"

	"hotel-admin-service/internal/backend"
	"hotel-admin-service/internal/pkg/session"

	"go.uber.org/zap"
)

// AuthService runs the credential exchange against the external backend and
// hands the resulting token pair to the session manager. It never verifies
// passwords itself; the backend owns all credentials.
type AuthService struct {
	backend  *backend.Client
	sessions *session.Manager
	logger   *zap.Logger
}

func NewAuthService(client *backend.Client, sessions *session.Manager, logger *zap.Logger) *AuthService {
	return &AuthService{
		backend:  client,
		sessions: sessions,
		logger:   logger,
	}
}

// Login exchanges credentials for a token pair, fetches the principal, and
// creates the session. Returns the session plus the signed cookie token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*session.Session, string, error) {
	pair, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	user, err := s.backend.Me(ctx, pair.AccessToken)
	if err != nil {
		return nil, "", err
	}

	sess, cookie, err := s.sessions.Create(ctx, pair, user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("operator logged in",
		zap.Int64("user_id", sess.UserID),
		zap.String("session_id", sess.ID),
	)
	return sess, cookie, nil
}

// Logout revokes the refresh token upstream and destroys the session. The
// upstream call is best-effort: the local session dies either way.
func (s *AuthService) Logout(ctx context.Context, sess *session.Session) error {
	if err := s.backend.Logout(ctx, sess.AccessToken, sess.RefreshToken); err != nil {
		s.logger.Warn("backend logout failed", zap.String("session_id", sess.ID), zap.Error(err))
	}
	return s.sessions.Invalidate(ctx, sess.ID)
}
