package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gatekeep/auth-service/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the TokenAuth middleware and
// performs a fast-fail check before any further work: a non-empty raw token
// proves the middleware ran on this request.
func ctxIdentity(c echo.Context) (userID, email, rawToken string, err error) {
	rawToken, _ = c.Get(middleware.CtxToken).(string)
	if rawToken == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ = c.Get(middleware.CtxUserID).(string)
	email, _ = c.Get(middleware.CtxEmail).(string)
	return userID, email, rawToken, nil
}
