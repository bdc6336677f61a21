package handler // handler defines the HTTP handlers for the API

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ayivi/bus-ticket-reservation/internal/booking"
	"github.com/ayivi/bus-ticket-reservation/internal/store"
)

// Session is the authenticated caller identity, extracted from the
// JWT claims the auth middleware stored in the request context. It
// is passed explicitly into the workflow layers instead of living as
// ambient global state.
type Session struct {
	UserID string
	Role   string
}

// SessionFrom rebuilds the session from the request context. It
// fails when the auth middleware did not run or the claims are not
// strings, which handlers translate into 401.
func SessionFrom(c echo.Context) (Session, error) {
	uid, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if uid == "" || role == "" {
		return Session{}, errors.New("no session in context")
	}
	return Session{UserID: uid, Role: role}, nil
}

// jsonError maps workflow errors onto HTTP responses: validation
// failures and schedule violations become 400 with the field-level
// message, ownership violations 403, everything else a generic 500.
func jsonError(c echo.Context, err error) error {
	var schedErr *booking.ScheduleError
	switch {
	case errors.As(err, &schedErr):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":     schedErr.Error(),
			"weekday":   schedErr.Weekday,
			"work_days": schedErr.WorkDays,
		})
	case errors.Is(err, store.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, store.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
