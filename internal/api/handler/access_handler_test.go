package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gatekeep/auth-service/internal/api/middleware"
	"github.com/gatekeep/auth-service/internal/infrastructure/memory"
)

func newAuthedContext(e *echo.Echo, rec *httptest.ResponseRecorder, token string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, "user_1")
	c.Set(middleware.CtxEmail, "alice@example.com")
	c.Set(middleware.CtxToken, token)
	return c
}

func TestAccessHandler_Welcome(t *testing.T) {
	e := echo.New()
	h := NewAccessHandler(memory.NewWhitelist(), nil)

	rec := httptest.NewRecorder()
	c := newAuthedContext(e, rec, "tok123")

	if err := h.Welcome(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] == "" {
		t.Fatalf("expected greeting message")
	}
}

func TestAccessHandler_WhitelistMe(t *testing.T) {
	e := echo.New()
	registry := memory.NewWhitelist()
	h := NewAccessHandler(registry, nil)

	rec := httptest.NewRecorder()
	c := newAuthedContext(e, rec, "tok123")

	if err := h.WhitelistMe(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	ok, err := registry.Contains(context.Background(), "tok123")
	if err != nil {
		t.Fatalf("contains failed: %v", err)
	}
	if !ok {
		t.Fatalf("expected token to be whitelisted")
	}
}

func TestAccessHandler_WhitelistMe_NoIdentity(t *testing.T) {
	e := echo.New()
	h := NewAccessHandler(memory.NewWhitelist(), nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.WhitelistMe(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAccessHandler_WelcomeSecret(t *testing.T) {
	e := echo.New()
	h := NewAccessHandler(memory.NewWhitelist(), nil)

	rec := httptest.NewRecorder()
	c := newAuthedContext(e, rec, "tok123")

	if err := h.WelcomeSecret(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
