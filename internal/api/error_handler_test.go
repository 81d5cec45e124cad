package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/anylist/anylist-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "echo http error", err: echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), want: http.StatusBadRequest},
		{name: "unauthenticated", err: domain.ErrUnauthenticated, want: http.StatusUnauthorized},
		{name: "invalid credentials", err: domain.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "forbidden", err: domain.ErrForbidden, want: http.StatusForbidden},
		{name: "seed disabled", err: domain.ErrSeedDisabled, want: http.StatusForbidden},
		{name: "user not found", err: domain.ErrUserNotFound, want: http.StatusNotFound},
		{name: "item not found", err: domain.ErrItemNotFound, want: http.StatusNotFound},
		{name: "email taken", err: domain.ErrEmailTaken, want: http.StatusConflict},
		{name: "throttled", err: domain.ErrTooManyAttempts, want: http.StatusTooManyRequests},
		{name: "unexpected", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tc.err, c)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
			if rec.Body.Len() == 0 {
				t.Fatalf("expected error envelope in body")
			}
		})
	}
}
