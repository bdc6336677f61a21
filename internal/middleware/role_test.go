package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name    string
		allowed []string
		role    string
		want    int
	}{
		{"matching role passes", []string{"COMPANY"}, "COMPANY", http.StatusOK},
		{"any of several passes", []string{"COMPANY", "ADMIN"}, "ADMIN", http.StatusOK},
		{"wrong role rejected", []string{"ADMIN"}, "CLIENT", http.StatusForbidden},
		{"missing role rejected", []string{"ADMIN"}, "", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tc.role != "" {
				c.Set("role", tc.role)
			}

			next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
			if err := RequireRole(tc.allowed...)(next)(c); err != nil {
				t.Fatalf("middleware returned error: %v", err)
			}
			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}
