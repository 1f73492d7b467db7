// internal/service/platform/platform.go
package platform

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"hotel-admin-service/internal/backend"
	"hotel-admin-service/internal/domain/pagination"
	"hotel-admin-service/internal/domain/platform"
	xerrors "hotel-admin-service/internal/pkg/errors"
	"hotel-admin-service/internal/pkg/session"

	"go.uber.org/zap"
)

// PlatformService proxies credential-record CRUD to the external backend.
// Ownership scoping is enforced by the backend; this layer only attaches
// the session's bearer token and normalizes the results.
type PlatformService struct {
	backend  *backend.Client
	sessions *session.Manager
	logger   *zap.Logger
}

func NewPlatformService(client *backend.Client, sessions *session.Manager, logger *zap.Logger) *PlatformService {
	return &PlatformService{
		backend:  client,
		sessions: sessions,
		logger:   logger,
	}
}

func (s *PlatformService) List(ctx context.Context, sess *session.Session, q pagination.Query) (*platform.ListResponse, error) {
	list, err := s.backend.ListPlatforms(ctx, sess.AccessToken, q)
	if err != nil {
		return nil, s.guard(ctx, sess, err)
	}
	return list, nil
}

func (s *PlatformService) Get(ctx context.Context, sess *session.Session, id string) (json.RawMessage, error) {
	raw, err := s.backend.GetPlatform(ctx, sess.AccessToken, id)
	if err != nil {
		return nil, s.guard(ctx, sess, err)
	}
	return raw, nil
}

func (s *PlatformService) Create(ctx context.Context, sess *session.Session, req *platform.CreatePlatformRequest) (json.RawMessage, error) {
	req.ApplyDefaults()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	raw, err := s.backend.CreatePlatform(ctx, sess.AccessToken, body)
	if err != nil {
		return nil, s.guard(ctx, sess, err)
	}
	return raw, nil
}

// Update forwards the caller's body verbatim; the backend decides which
// fields apply.
func (s *PlatformService) Update(ctx context.Context, sess *session.Session, id string, body []byte) (json.RawMessage, error) {
	raw, err := s.backend.UpdatePlatform(ctx, sess.AccessToken, id, body)
	if err != nil {
		return nil, s.guard(ctx, sess, err)
	}
	return raw, nil
}

func (s *PlatformService) Delete(ctx context.Context, sess *session.Session, id string) error {
	if err := s.backend.DeletePlatform(ctx, sess.AccessToken, id); err != nil {
		return s.guard(ctx, sess, err)
	}
	return nil
}

// guard destroys the session when the backend answered 401: the token pair
// is no longer honored and every later call must fail fast with
// AuthRequired instead of hammering the backend.
func (s *PlatformService) guard(ctx context.Context, sess *session.Session, err error) error {
	var upstream *xerrors.UpstreamError
	if errors.As(err, &upstream) && upstream.StatusCode == http.StatusUnauthorized {
		if clearErr := s.sessions.Invalidate(ctx, sess.ID); clearErr != nil {
			s.logger.Warn("failed to invalidate session after downstream 401",
				zap.String("session_id", sess.ID), zap.Error(clearErr))
		}
		return xerrors.ErrAuthRequired
	}
	return err
}
