package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gaeliza/match-system/internal/core/domain"
)

type stubAuthService struct {
	currentUserFn func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password, username string) (*domain.User, error) {
	return nil, nil
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return "", nil, nil
}

func (s *stubAuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	return s.currentUserFn(ctx, token)
}

func runAuth(t *testing.T, stub *stubAuthService, authorization string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	}

	if err := Auth(stub)(next)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, nextCalled
}

func TestAuth_ValidToken(t *testing.T) {
	user := &domain.User{ID: "u1", Username: "alice"}
	stub := &stubAuthService{
		currentUserFn: func(ctx context.Context, token string) (*domain.User, error) {
			if token != "token123" {
				t.Fatalf("unexpected token: %s", token)
			}
			return user, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen any
	next := func(c echo.Context) error {
		seen = c.Get(userContextKey)
		return c.NoContent(http.StatusOK)
	}

	if err := Auth(stub)(next)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := seen.(*domain.User)
	if !ok || got.ID != "u1" {
		t.Fatalf("expected user in context, got %+v", seen)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	stub := &stubAuthService{
		currentUserFn: func(ctx context.Context, token string) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}

	rec, nextCalled := runAuth(t, stub, "")
	if nextCalled {
		t.Fatalf("next should not run without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	stub := &stubAuthService{
		currentUserFn: func(ctx context.Context, token string) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}

	rec, nextCalled := runAuth(t, stub, "Token abc")
	if nextCalled {
		t.Fatalf("next should not run with a non-bearer scheme")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	stub := &stubAuthService{
		currentUserFn: func(ctx context.Context, token string) (*domain.User, error) {
			return nil, domain.ErrInvalidToken
		},
	}

	rec, nextCalled := runAuth(t, stub, "Bearer bad")
	if nextCalled {
		t.Fatalf("next should not run when validation fails")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
