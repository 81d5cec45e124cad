package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/anylist/anylist-api/internal/api/authctx"
)

// BearerToken copies the raw bearer token from the Authorization header into
// the request context. It never rejects: public operations must work without
// a token, so a missing or malformed header is simply treated as "no token"
// and the per-operation identity check decides later.
func BearerToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token, ok := extractBearer(c.Request().Header.Get("Authorization")); ok {
				ctx := authctx.WithToken(c.Request().Context(), token)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}
}

func extractBearer(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
