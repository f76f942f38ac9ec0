// Tests run as an external package so they can install the API's central
// error handler, which maps domain errors to status codes.
package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gaeliza/match-system/internal/api"
	"github.com/gaeliza/match-system/internal/api/handler"
	"github.com/gaeliza/match-system/internal/api/middleware"
	"github.com/gaeliza/match-system/internal/core/domain"
)

type stubAuthService struct {
	registerFn    func(ctx context.Context, email, password, username string) (*domain.User, error)
	loginFn       func(ctx context.Context, email, password string) (string, *domain.User, error)
	currentUserFn func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password, username string) (*domain.User, error) {
	return s.registerFn(ctx, email, password, username)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	return s.currentUserFn(ctx, token)
}

func newTestServer(stub *stubAuthService) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	h := handler.NewAuthHandler(stub)
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.GET("/auth/me", h.Me, middleware.Auth(stub))
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, username string) (*domain.User, error) {
			if email != "a@x.com" || password != "secret123" || username != "alice" {
				t.Fatalf("unexpected args: %s %s %s", email, password, username)
			}
			return &domain.User{
				ID:           "u1",
				Username:     username,
				Email:        email,
				PasswordHash: "$2a$10$should-never-appear",
				CreatedAt:    time.Now().UTC(),
			}, nil
		},
	}
	e := newTestServer(stub)

	rec := doJSON(e, http.MethodPost, "/auth/register", `{"email":"a@x.com","password":"secret123","username":"alice"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "alice" || resp["email"] != "a@x.com" || resp["id"] != "u1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, ok := resp["password_hash"]; ok {
		t.Fatalf("password_hash must never be serialized")
	}
	if strings.Contains(rec.Body.String(), "should-never-appear") {
		t.Fatalf("hash material leaked into response body")
	}
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, username string) (*domain.User, error) {
			return nil, domain.ErrUsernameTaken
		},
	}
	e := newTestServer(stub)

	rec := doJSON(e, http.MethodPost, "/auth/register", `{"email":"a@x.com","password":"p","username":"alice"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, username string) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	e := newTestServer(stub)

	rec := doJSON(e, http.MethodPost, "/auth/register", `{"email":"a@x.com","password":"p","username":"alice"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, username string) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	e := newTestServer(stub)

	rec := doJSON(e, http.MethodPost, "/auth/register", `{"email":"not-an-email","password":"p","username":"alice"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, username string) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	e := newTestServer(stub)

	rec := doJSON(e, http.MethodPost, "/auth/register", "not-json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "token123", &domain.User{ID: "u1", Username: "alice", Email: email}, nil
		},
	}
	e := newTestServer(stub)

	rec := doJSON(e, http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"secret123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "token123" {
		t.Fatalf("expected access_token, got %v", resp["access_token"])
	}
	if resp["token_type"] != "bearer" {
		t.Fatalf("expected token_type bearer, got %v", resp["token_type"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "alice" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
	if _, hasHash := user["password_hash"]; hasHash {
		t.Fatalf("password_hash must never be serialized")
	}
}

func TestAuthHandler_Login_FailureBranchesIndistinguishable(t *testing.T) {
	// Same service error regardless of cause; both must render identically.
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	e := newTestServer(stub)

	wrongPass := doJSON(e, http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"wrong"}`)
	unknown := doJSON(e, http.MethodPost, "/auth/login", `{"email":"ghost@x.com","password":"whatever"}`)

	if wrongPass.Code != http.StatusUnauthorized || unknown.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrongPass.Code, unknown.Code)
	}
	if wrongPass.Body.String() != unknown.Body.String() {
		t.Fatalf("failure responses differ: %q vs %q", wrongPass.Body.String(), unknown.Body.String())
	}
}

func TestAuthHandler_Me_Success(t *testing.T) {
	stub := &stubAuthService{
		currentUserFn: func(ctx context.Context, token string) (*domain.User, error) {
			if token != "token123" {
				t.Fatalf("unexpected token: %s", token)
			}
			return &domain.User{ID: "u1", Username: "alice", Email: "a@x.com"}, nil
		},
	}
	e := newTestServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer token123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "u1" || resp["username"] != "alice" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Me_InvalidToken(t *testing.T) {
	stub := &stubAuthService{
		currentUserFn: func(ctx context.Context, token string) (*domain.User, error) {
			return nil, domain.ErrInvalidToken
		},
	}
	e := newTestServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
