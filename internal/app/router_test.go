// internal/app/router_test.go
package app

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"hotel-admin-service/internal/backend"
	authHandler "hotel-admin-service/internal/handlers/auth"
	logHandler "hotel-admin-service/internal/handlers/logrecord"
	platformHandler "hotel-admin-service/internal/handlers/platform"
	"hotel-admin-service/internal/middleware"
	"hotel-admin-service/internal/pkg/session"
	authService "hotel-admin-service/internal/service/auth"
	logService "hotel-admin-service/internal/service/logrecord"
	platformService "hotel-admin-service/internal/service/platform"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockBackend simulates the external channel-manager API and counts every
// call it receives, so tests can assert how many upstream requests a gateway
// operation really costs.
type mockBackend struct {
	*httptest.Server

	calls       atomic.Int64
	lastBody    atomic.Value // []byte of the most recent request body
	accessToken string
	listStatus  int
	listBody    string
}

func tokenWithExp(exp time.Time) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf(`{"exp":%d}`, exp.Unix())))
	return fmt.Sprintf("%s.%s.sig", header, payload)
}

func newMockBackend(t *testing.T) *mockBackend {
	t.Helper()
	mb := &mockBackend{
		accessToken: tokenWithExp(time.Now().Add(30 * time.Minute)),
		listStatus:  http.StatusOK,
		listBody:    `{"items":[{"id":1,"platform":"YANOLJA","hotel_name":"Seoul Grand"}],"total":1}`,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["password"] != "correct-password" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"incorrect email or password"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"access_token":  mb.accessToken,
			"refresh_token": "refresh-1",
		})
	})
	mux.HandleFunc("GET /users/me", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id": 7, "email": "op@hotel.example", "full_name": "Operator", "role": "admin",
		})
	})
	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /hotel-platforms", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(mb.listStatus)
		w.Write([]byte(mb.listBody))
	})
	mux.HandleFunc("POST /hotel-platforms", func(w http.ResponseWriter, r *http.Request) {
		var body json.RawMessage
		json.NewDecoder(r.Body).Decode(&body)
		mb.lastBody.Store([]byte(body))
		w.Write([]byte(`{"id":2,"status":"active"}`))
	})
	mux.HandleFunc("GET /logs", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	})

	counted := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mb.calls.Add(1)
		mux.ServeHTTP(w, r)
	})
	mb.Server = httptest.NewServer(counted)
	t.Cleanup(mb.Server.Close)
	return mb
}

func newTestRouter(t *testing.T, mb *mockBackend) (*gin.Engine, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	client := backend.NewClient(mb.URL, 5*time.Second, logger)
	store := session.NewMemoryStore()
	codec := session.NewCookieCodec("router-test-secret")
	sessions := session.NewManager(store, client, codec, 7*24*time.Hour, 0, logger)

	handlers := &Handlers{
		AuthHandler:     authHandler.NewAuthHandler(authService.NewAuthService(client, sessions, logger), sessions, false, logger),
		PlatformHandler: platformHandler.NewPlatformHandler(platformService.NewPlatformService(client, sessions, logger)),
		LogHandler:      logHandler.NewLogHandler(logService.NewLogService(client, sessions, logger)),
		AuthMiddleware:  middleware.NewAuthMiddleware(sessions),
	}

	engine := gin.New()
	SetupRouter(engine, handlers)
	return engine, sessions
}

func doLogin(t *testing.T, engine *gin.Engine) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"op@hotel.example","password":"correct-password"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("login response did not set a session cookie")
	return nil
}

func TestLoginSetsCookieAndReturnsPrincipal(t *testing.T) {
	mb := newMockBackend(t)
	engine, _ := newTestRouter(t, mb)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"op@hotel.example","password":"correct-password"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var principal map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &principal))
	assert.Equal(t, "op@hotel.example", principal["email"])
	assert.Equal(t, "Operator", principal["full_name"])
	assert.NotContains(t, w.Body.String(), "access_token")

	var found *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			found = c
		}
	}
	require.NotNil(t, found)
	assert.True(t, found.HttpOnly)
	assert.Equal(t, 7*24*3600, found.MaxAge)
}

func TestLoginRejectedCredentialsPassStatusThrough(t *testing.T) {
	mb := newMockBackend(t)
	engine, _ := newTestRouter(t, mb)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"op@hotel.example","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"incorrect email or password"}`, w.Body.String())
}

func TestProtectedRouteWithoutSessionNeverContactsBackend(t *testing.T) {
	mb := newMockBackend(t)
	engine, _ := newTestRouter(t, mb)

	for _, cookie := range []*http.Cookie{nil, {Name: session.CookieName, Value: "forged"}} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/hotel-platforms", nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"authentication required"}`, w.Body.String())
	}
	assert.Equal(t, int64(0), mb.calls.Load())
}

func TestListPlatformsNormalizesEnvelope(t *testing.T) {
	mb := newMockBackend(t)
	engine, _ := newTestRouter(t, mb)
	cookie := doLogin(t, engine)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/hotel-platforms?page=1&limit=10", nil)
	req.AddCookie(cookie)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Items      []map[string]interface{} `json:"items"`
		Total      int                      `json:"total"`
		Page       int                      `json:"page"`
		Limit      int                      `json:"limit"`
		TotalPages int                      `json:"total_pages"`
		HasNext    *bool                    `json:"has_next"`
		HasPrev    *bool                    `json:"has_prev"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.LessOrEqual(t, len(resp.Items), 10)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 10, resp.Limit)
	assert.Equal(t, 1, resp.TotalPages)
	require.NotNil(t, resp.HasNext)
	assert.False(t, *resp.HasNext)
	require.NotNil(t, resp.HasPrev)
	assert.False(t, *resp.HasPrev)
}

func TestCreatePlatformDefaultsStatus(t *testing.T) {
	mb := newMockBackend(t)
	engine, _ := newTestRouter(t, mb)
	cookie := doLogin(t, engine)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hotel-platforms",
		strings.NewReader(`{"platform":"AGODA","login_id":"hotel77","login_password":"pw","hotel_name":"Busan Bay"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	forwarded, ok := mb.lastBody.Load().([]byte)
	require.True(t, ok, "backend never saw the create request")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(forwarded, &body))
	assert.Equal(t, "active", body["status"])
	assert.Equal(t, "hotel77", body["login_id"])
}

func TestValidationErrorCollapsesToGenericMessage(t *testing.T) {
	mb := newMockBackend(t)
	mb.listStatus = http.StatusUnprocessableEntity
	mb.listBody = `{"detail":[{"loc":["query","page"],"msg":"value is not a valid integer"}]}`
	engine, _ := newTestRouter(t, mb)
	cookie := doLogin(t, engine)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/hotel-platforms", nil)
	req.AddCookie(cookie)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error":"invalid input"}`, w.Body.String())
}

func TestDownstream401InvalidatesSession(t *testing.T) {
	mb := newMockBackend(t)
	mb.listStatus = http.StatusUnauthorized
	mb.listBody = `{"detail":"token revoked"}`
	engine, _ := newTestRouter(t, mb)
	cookie := doLogin(t, engine)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/hotel-platforms", nil)
	req.AddCookie(cookie)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"authentication required"}`, w.Body.String())

	// The session is gone; reusing the cookie fails before reaching the
	// backend.
	before := mb.calls.Load()
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/logs", nil)
	req.AddCookie(cookie)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, before, mb.calls.Load())
}

func TestLogoutExpiresCookieAndDestroysSession(t *testing.T) {
	mb := newMockBackend(t)
	engine, _ := newTestRouter(t, mb)
	cookie := doLogin(t, engine)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(cookie)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			assert.Less(t, c.MaxAge, 0)
		}
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.AddCookie(cookie)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeReturnsPrincipalWithoutBackendCall(t *testing.T) {
	mb := newMockBackend(t)
	engine, _ := newTestRouter(t, mb)
	cookie := doLogin(t, engine)
	before := mb.calls.Load()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.AddCookie(cookie)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "op@hotel.example")
	assert.Equal(t, before, mb.calls.Load())
}
