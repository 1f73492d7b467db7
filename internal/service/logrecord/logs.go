// internal/service/logrecord/logs.go
package logrecord

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"hotel-admin-service/internal/backend"
	"hotel-admin-service/internal/domain/logrecord"
	xerrors "hotel-admin-service/internal/pkg/errors"
	"hotel-admin-service/internal/pkg/session"

	"go.uber.org/zap"
)

// LogService proxies read-only automation-log queries to the external
// backend. The dashboard never mutates logs.
type LogService struct {
	backend  *backend.Client
	sessions *session.Manager
	logger   *zap.Logger
}

func NewLogService(client *backend.Client, sessions *session.Manager, logger *zap.Logger) *LogService {
	return &LogService{
		backend:  client,
		sessions: sessions,
		logger:   logger,
	}
}

func (s *LogService) List(ctx context.Context, sess *session.Session, f logrecord.ListFilters) (*logrecord.ListResponse, error) {
	list, err := s.backend.ListLogs(ctx, sess.AccessToken, f)
	if err != nil {
		return nil, s.guard(ctx, sess, err)
	}
	return list, nil
}

func (s *LogService) Get(ctx context.Context, sess *session.Session, id string) (json.RawMessage, error) {
	raw, err := s.backend.GetLog(ctx, sess.AccessToken, id)
	if err != nil {
		return nil, s.guard(ctx, sess, err)
	}
	return raw, nil
}

// guard destroys the session on a downstream 401 so subsequent calls fail
// fast with AuthRequired.
func (s *LogService) guard(ctx context.Context, sess *session.Session, err error) error {
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
