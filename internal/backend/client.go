// internal/backend/client.go
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"hotel-admin-service/internal/domain/logrecord"
	"hotel-admin-service/internal/domain/pagination"
	"hotel-admin-service/internal/domain/platform"
	xerrors "hotel-admin-service/internal/pkg/errors"

	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// Client talks to the external channel-manager backend. Every data-bearing
// route in this service ends up here: same method, derived query parameters,
// bearer token attached, error bodies normalized.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// ========== Auth ==========

// Login exchanges operator credentials for a token pair.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	body, _ := json.Marshal(loginRequest{Email: email, Password: password})

	raw, err := c.do(ctx, http.MethodPost, "/login", nil, "", body)
	if err != nil {
		return nil, err
	}

	var pair TokenPair
	if err := json.Unmarshal(raw, &pair); err != nil {
		return nil, fmt.Errorf("%w: malformed login response", xerrors.ErrTransport)
	}
	if !pair.Complete() {
		return nil, fmt.Errorf("%w: login response missing tokens", xerrors.ErrTransport)
	}
	return &pair, nil
}

// Me fetches the principal behind an access token.
func (c *Client) Me(ctx context.Context, accessToken string) (*UserInfo, error) {
	raw, err := c.do(ctx, http.MethodGet, "/users/me", nil, accessToken, nil)
	if err != nil {
		return nil, err
	}

	var user UserInfo
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("%w: malformed user response", xerrors.ErrTransport)
	}
	return &user, nil
}

// Refresh exchanges a refresh token for a new token pair. Any failure mode
// (non-2xx, transport error, malformed body, missing tokens) is a failed
// exchange; the caller invalidates the session.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	body, _ := json.Marshal(refreshRequest{RefreshToken: refreshToken})

	raw, err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, "", body)
	if err != nil {
		return nil, err
	}

	var pair TokenPair
	if err := json.Unmarshal(raw, &pair); err != nil {
		return nil, fmt.Errorf("%w: malformed refresh response", xerrors.ErrTransport)
	}
	if !pair.Complete() {
		return nil, fmt.Errorf("%w: refresh response missing tokens", xerrors.ErrTransport)
	}
	return &pair, nil
}

// Logout revokes a refresh token upstream.
func (c *Client) Logout(ctx context.Context, accessToken, refreshToken string) error {
	body, _ := json.Marshal(logoutRequest{RefreshToken: refreshToken})

	_, err := c.do(ctx, http.MethodPost, "/auth/logout", nil, accessToken, body)
	return err
}

// ========== Hotel platforms ==========

func (c *Client) ListPlatforms(ctx context.Context, token string, q pagination.Query) (*platform.ListResponse, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("limit", strconv.Itoa(q.Limit))

	raw, err := c.do(ctx, http.MethodGet, "/hotel-platforms", params, token, nil)
	if err != nil {
		return nil, err
	}

	var list platform.ListResponse
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%w: malformed platform list", xerrors.ErrTransport)
	}
	list.Normalize(q.Page, q.Limit)
	return &list, nil
}

// GetPlatform returns the backend's body unchanged; detail fetches are the
// only place login_password is revealed and the gateway does not reshape it.
func (c *Client) GetPlatform(ctx context.Context, token, id string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/hotel-platforms/"+id, nil, token, nil)
}

func (c *Client) CreatePlatform(ctx context.Context, token string, body []byte) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/hotel-platforms", nil, token, body)
}

func (c *Client) UpdatePlatform(ctx context.Context, token, id string, body []byte) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, "/hotel-platforms/"+id, nil, token, body)
}

func (c *Client) DeletePlatform(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/hotel-platforms/"+id, nil, token, nil)
	return err
}

// ========== Logs ==========

func (c *Client) ListLogs(ctx context.Context, token string, f logrecord.ListFilters) (*logrecord.ListResponse, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(f.Page))
	params.Set("limit", strconv.Itoa(f.Limit))
	// Optional filters are omitted entirely when empty, never sent as "".
	if f.Agent != "" {
		params.Set("agent", f.Agent)
	}
	if f.Result != "" {
		params.Set("result", f.Result)
	}
	if f.Platform != "" {
		params.Set("platform", f.Platform)
	}

	raw, err := c.do(ctx, http.MethodGet, "/logs", params, token, nil)
	if err != nil {
		return nil, err
	}

	var list logrecord.ListResponse
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%w: malformed log list", xerrors.ErrTransport)
	}
	list.Normalize(f.Page, f.Limit)
	return &list, nil
}

func (c *Client) GetLog(ctx context.Context, token, id string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/logs/"+id, nil, token, nil)
}

// ========== Transport ==========

// do sends one request to the backend. Transport failures come back wrapped
// in ErrTransport; non-2xx statuses come back as *UpstreamError with the
// backend's status preserved and its detail field normalized.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, token string, body []byte) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xerrors.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", xerrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xerrors.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp.StatusCode, raw)
	}
	return raw, nil
}

// decodeError maps a backend error body onto the error taxonomy. A string
// detail is surfaced verbatim; a structured list collapses to the generic
// validation message; anything else leaves the message empty so handlers
// substitute their endpoint-specific fallback.
func decodeError(status int, raw []byte) error {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		switch detail := body.Detail.(type) {
		case string:
			if detail != "" {
				return xerrors.Upstream(status, detail)
			}
		case []interface{}:
			return xerrors.UpstreamValidation(status)
		}
	}
	return xerrors.Upstream(status, "")
}
