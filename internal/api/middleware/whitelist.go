package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/gatekeep/auth-service/internal/core/domain"
	"github.com/gatekeep/auth-service/internal/core/ports"
)

// Whitelisted gates a route on whitelist membership of the request token.
// Must run after TokenAuth, which stores the raw token in the context.
func Whitelisted(registry ports.Whitelist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, _ := c.Get(CtxToken).(string)
			if raw == "" {
				return domain.ErrMissingToken
			}

			ok, err := registry.Contains(c.Request().Context(), raw)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrNotWhitelisted
			}
			return next(c)
		}
	}
}
