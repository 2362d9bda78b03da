// Package handlers carries the pieces shared by every HTTP handler package:
// session identity extraction and the error-to-status mapping.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
)

// SessionCookie is the fallback carrier of the session identity.
const SessionCookie = "clima_session"

// SessionID extracts the caller's session identity from the X-Session-ID
// header, falling back to the session cookie. Empty when the caller sent
// neither.
func SessionID(c *gin.Context) string {
	if id := c.GetHeader("X-Session-ID"); id != "" {
		return id
	}
	if id, err := c.Cookie(SessionCookie); err == nil {
		return id
	}
	return ""
}

// StatusFor maps the error taxonomy to HTTP statuses.
func StatusFor(err error) int {
	var httpErr *models.UpstreamHTTPError
	var rangeErr *models.InvalidDateRangeError
	var connErr *models.UpstreamConnectionError

	switch {
	case errors.Is(err, models.ErrInvalidInput), errors.Is(err, models.ErrDecode):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrMissingAPIKey):
		// Configuration problem surfaced to the user, not a crash.
		return http.StatusServiceUnavailable
	case errors.As(err, &rangeErr):
		return http.StatusBadRequest
	case errors.As(err, &httpErr):
		return http.StatusBadGateway
	case errors.As(err, &connErr):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
