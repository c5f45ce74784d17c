package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gatekeep/auth-service/internal/core/domain"
	"github.com/gatekeep/auth-service/internal/infrastructure/memory"
)

func TestWhitelisted_Member(t *testing.T) {
	e := echo.New()
	registry := memory.NewWhitelist()
	if err := registry.Add(context.Background(), "tok123"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CtxToken, "tok123")

	called := false
	mw := Whitelisted(registry)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestWhitelisted_NotMember(t *testing.T) {
	e := echo.New()
	registry := memory.NewWhitelist()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CtxToken, "tok123")

	mw := Whitelisted(registry)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrNotWhitelisted) {
		t.Fatalf("expected ErrNotWhitelisted, got %v", err)
	}
}

func TestWhitelisted_NoTokenInContext(t *testing.T) {
	e := echo.New()
	registry := memory.NewWhitelist()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Whitelisted(registry)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}
