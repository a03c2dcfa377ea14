package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"blogapi/internal/apierror"
)

func invokeMiddleware(t *testing.T, authorization string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	v := NewVerifier(testSecret, 0, time.Minute)
	h := Middleware(v)(func(c echo.Context) error {
		claims, ok := ClaimsFrom(c)
		if !ok || claims.Username != "alice" {
			t.Fatalf("claims not propagated: %+v", claims)
		}
		return c.NoContent(http.StatusOK)
	})
	return h(c)
}

func TestMiddleware_ValidBearer(t *testing.T) {
	tok, err := SignToken(testSecret, 0, testUser())
	if err != nil {
		t.Fatalf("SignToken: %v", err)
	}
	if err := invokeMiddleware(t, "Bearer "+tok); err != nil {
		t.Fatalf("middleware: %v", err)
	}
}

func TestMiddleware_Rejections(t *testing.T) {
	tok, _ := SignToken(testSecret, 0, testUser())
	wrong, _ := SignToken("other-secret", 0, testUser())

	cases := []struct {
		name          string
		authorization string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer nope"},
		{"wrong secret", "Bearer " + wrong},
		{"tampered", "Bearer " + tok + "x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := invokeMiddleware(t, tc.authorization)
			var apiErr *apierror.Error
			if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
				t.Fatalf("expected unauthorized error, got: %v", err)
			}
		})
	}
}
