package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/gatekeep/auth-service/internal/api/metrics"
	"github.com/gatekeep/auth-service/internal/core/domain"
	"github.com/gatekeep/auth-service/internal/core/token"
)

// TokenHeader is the request header carrying the bearer token.
const TokenHeader = "x-access-token"

// Context keys set by TokenAuth for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxToken  = "token"
)

// TokenVerifier checks a raw token and returns its claims.
type TokenVerifier interface {
	Verify(raw string) (*token.Claims, error)
}

// TokenAuth validates the x-access-token header and injects the decoded
// identity into the echo context. A missing token and an invalid token are
// distinct failures: the central error handler maps the former to 418 and
// the latter to 401.
func TokenAuth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(TokenHeader)
			if raw == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return domain.ErrMissingToken
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrExpiredToken):
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
				default:
					metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				}
				return err
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxToken, raw)

			return next(c)
		}
	}
}
