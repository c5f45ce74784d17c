package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gatekeep/auth-service/internal/core/ports"
)

// AccessHandler serves the token-gated routes and the whitelist opt-in.
type AccessHandler struct {
	whitelist ports.Whitelist
	events    ports.AuthEventSink
}

// NewAccessHandler creates an AccessHandler. events may be nil.
func NewAccessHandler(whitelist ports.Whitelist, events ports.AuthEventSink) *AccessHandler {
	return &AccessHandler{whitelist: whitelist, events: events}
}

// Welcome greets any authenticated caller.
//
// @Summary      Greeting for authenticated users
// @Tags         access
// @Produce      json
// @Param        x-access-token  header    string  true  "Bearer token"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      418  {object}  errorResponse
// @Router       /welcome [get]
func (h *AccessHandler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "welcome"})
}

// WhitelistMe opts the caller's token into the elevated-access tier.
//
// @Summary      Whitelist the current token
// @Tags         access
// @Produce      json
// @Param        x-access-token  header    string  true  "Bearer token"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      418  {object}  errorResponse
// @Router       /whitelistMe [get]
func (h *AccessHandler) WhitelistMe(c echo.Context) error {
	_, email, rawToken, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.whitelist.Add(c.Request().Context(), rawToken); err != nil {
		return err
	}

	if h.events != nil {
		h.events.Enqueue(ports.AuthEvent{Type: ports.EventWhitelisted, Email: email, At: time.Now().UTC()})
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "whitelisted"})
}

// WelcomeSecret greets callers whose token is whitelisted. The whitelist
// check itself runs in the Whitelisted middleware.
//
// @Summary      Greeting for whitelisted users
// @Tags         access
// @Produce      json
// @Param        x-access-token  header    string  true  "Bearer token"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      418  {object}  errorResponse
// @Router       /welcomeSecret [get]
func (h *AccessHandler) WelcomeSecret(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "welcome to the secret area"})
}
