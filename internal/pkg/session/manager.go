// internal/pkg/session/manager.go
package session

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"hotel-admin-service/internal/backend"
	xerrors "hotel-admin-service/internal/pkg/errors"
	"hotel-admin-service/internal/pkg/tokenclock"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// TokenRefresher exchanges a refresh token for a new pair. Satisfied by
// backend.Client; narrowed to an interface so manager tests can count
// exchange calls.
type TokenRefresher interface {
	Refresh(ctx context.Context, refreshToken string) (*backend.TokenPair, error)
}

// Manager owns the session lifecycle: creation on login, the refresh
// protocol underneath every authenticated request, and invalidation.
//
// Refreshes are serialized per session through a singleflight group, so N
// concurrent requests observing an expired token produce exactly one
// upstream exchange and all share its outcome. Two independent exchanges
// would invalidate one of the resulting pairs at the backend.
type Manager struct {
	store     Store
	refresher TokenRefresher
	codec     *CookieCodec
	group     singleflight.Group
	maxAge    time.Duration
	margin    time.Duration
	logger    *zap.Logger
}

func NewManager(store Store, refresher TokenRefresher, codec *CookieCodec, maxAge, margin time.Duration, logger *zap.Logger) *Manager {
	return &Manager{
		store:     store,
		refresher: refresher,
		codec:     codec,
		maxAge:    maxAge,
		margin:    margin,
		logger:    logger,
	}
}

// Create builds a session from a fresh token pair and principal info,
// persists it, and mints the browser cookie token. The access token expiry
// is decoded from the token itself, never supplied by the caller.
func (m *Manager) Create(ctx context.Context, pair *backend.TokenPair, user *backend.UserInfo) (*Session, string, error) {
	now := time.Now()
	sess := &Session{
		ID:                 ulid.MustNew(ulid.Timestamp(now), rand.Reader).String(),
		AccessToken:        pair.AccessToken,
		RefreshToken:       pair.RefreshToken,
		AccessTokenExpires: tokenclock.ExpiryOf(pair.AccessToken),
		UserID:             user.ID,
		Email:              user.Email,
		FullName:           user.DisplayName(),
		Role:               user.Role,
		CreatedAt:          now,
		ExpiresAt:          now.Add(m.maxAge),
	}

	if err := m.store.Save(ctx, sess); err != nil {
		return nil, "", fmt.Errorf("failed to save session: %w", err)
	}

	cookie, err := m.codec.Mint(sess.ID, sess.ExpiresAt)
	if err != nil {
		return nil, "", err
	}
	return sess, cookie, nil
}

// Resolve turns a cookie token into a valid session, refreshing the access
// token first when it has expired. Every failure collapses into
// ErrAuthRequired; callers redirect to login rather than distinguishing.
func (m *Manager) Resolve(ctx context.Context, cookieToken string) (*Session, error) {
	id, err := m.codec.Verify(cookieToken)
	if err != nil {
		return nil, xerrors.ErrAuthRequired
	}

	sess, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, xerrors.ErrAuthRequired
	}

	return m.EnsureValid(ctx, sess)
}

// EnsureValid returns the session as-is while the access token is live, and
// otherwise runs the refresh protocol. On any refresh failure the session is
// destroyed and ErrAuthRequired returned.
func (m *Manager) EnsureValid(ctx context.Context, sess *Session) (*Session, error) {
	if !tokenclock.Expired(sess.AccessTokenExpires, m.margin) {
		return sess, nil
	}

	v, err, _ := m.group.Do(sess.ID, func() (interface{}, error) {
		return m.refresh(ctx, sess.ID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Session), nil
}

// refresh runs one exchange for a session. Runs inside the singleflight
// group; re-loads the session first because a waiter that queued behind a
// completed refresh must not trigger a second one.
func (m *Manager) refresh(ctx context.Context, id string) (*Session, error) {
	sess, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, xerrors.ErrAuthRequired
	}

	if !tokenclock.Expired(sess.AccessTokenExpires, m.margin) {
		return sess, nil
	}

	if sess.RefreshToken == "" {
		m.invalidate(ctx, id, "no refresh token")
		return nil, xerrors.ErrAuthRequired
	}

	pair, err := m.refresher.Refresh(ctx, sess.RefreshToken)
	if err != nil {
		m.invalidate(ctx, id, "refresh exchange failed")
		return nil, xerrors.ErrAuthRequired
	}

	// Replace the pair atomically and recompute expiry from the new token.
	sess.AccessToken = pair.AccessToken
	sess.RefreshToken = pair.RefreshToken
	sess.AccessTokenExpires = tokenclock.ExpiryOf(pair.AccessToken)

	if err := m.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save refreshed session: %w", err)
	}
	return sess, nil
}

// Invalidate destroys a session. Used by logout and by proxy services when
// a downstream call answers 401.
func (m *Manager) Invalidate(ctx context.Context, id string) error {
	return m.store.Clear(ctx, id)
}

func (m *Manager) invalidate(ctx context.Context, id, reason string) {
	if err := m.store.Clear(ctx, id); err != nil {
		m.logger.Warn("failed to clear session", zap.String("session_id", id), zap.Error(err))
		return
	}
	m.logger.Info("session invalidated", zap.String("session_id", id), zap.String("reason", reason))
}

// MaxAge is the session (and cookie) lifetime in seconds.
func (m *Manager) MaxAge() int {
	return int(m.maxAge / time.Second)
}
