package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ayivi/bus-ticket-reservation/internal/booking"
	"github.com/ayivi/bus-ticket-reservation/internal/directory"
	"github.com/ayivi/bus-ticket-reservation/internal/model"
	"github.com/ayivi/bus-ticket-reservation/internal/queue"
	queue_publisher "github.com/ayivi/bus-ticket-reservation/internal/service"
	"github.com/ayivi/bus-ticket-reservation/internal/store"
)

// ClientHandler serves the traveler-facing endpoints: booking,
// listing own reservations and profile edits. JWT and role
// middleware have run before any method here is invoked.
//
// Publish sends the confirmation event after a successful booking.
// It defaults to the RabbitMQ publisher; tests swap in a recorder.
type ClientHandler struct {
	Booking   *booking.Service
	Directory *directory.Service
	Store     store.Store
	Publish   func(ctx context.Context, ev queue.ReservationConfirmedEvent) error
}

func NewClientHandler(b *booking.Service, d *directory.Service, s store.Store) *ClientHandler {
	if b == nil || d == nil || s == nil {
		panic("nil dependency passed to NewClientHandler")
	}
	return &ClientHandler{
		Booking:   b,
		Directory: d,
		Store:     s,
		Publish:   queue_publisher.PublishReservationConfirmed,
	}
}

type bookReq struct {
	StationID   string `json:"station_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Date        string `json:"date"`
	TimeIndex   *int   `json:"time_index"`
	TicketClass string `json:"ticket_class"`
}

// Book handles POST /v1/reservations. On success it returns the
// created reservation for immediate ticket rendering and publishes a
// confirmation event; publish failures are logged and do not fail
// the booking.
func (h *ClientHandler) Book(c echo.Context) error {
	sess, err := SessionFrom(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.TimeIndex == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "time_index is required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	res, err := h.Booking.Book(ctx, booking.Request{
		StationID:   req.StationID,
		ClientID:    sess.UserID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Date:        req.Date,
		TimeIndex:   *req.TimeIndex,
		TicketClass: req.TicketClass,
	})
	if err != nil {
		return jsonError(c, err)
	}

	companyName := ""
	if station, err := h.Directory.StationByID(ctx, res.StationID); err == nil && station != nil {
		companyName = station.CompanyName
	}
	_ = h.Publish(ctx, queue.ReservationConfirmedEvent{
		ReservationID: res.ID,
		StationID:     res.StationID,
		CompanyID:     res.CompanyID,
		CompanyName:   companyName,
		ClientID:      res.ClientID,
		ClientName:    res.ClientName,
		RouteSummary:  res.RouteSummary,
		DepartureDate: res.DepartureDate,
		DepartureTime: res.DepartureTime,
		TicketClass:   res.TicketClass,
		PricePaid:     res.PricePaid,
		ConfirmedAt:   res.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})

	return c.JSON(http.StatusCreated, res)
}

// MyReservations lists the caller's own reservations.
func (h *ClientHandler) MyReservations(c echo.Context) error {
	sess, err := SessionFrom(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	reservations, err := h.Directory.ReservationsOfClient(ctx, sess.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, reservations)
}

// GetReservation returns one of the caller's reservations by id, for
// ticket rendering. Reservations of other clients are reported as
// not found rather than forbidden, to avoid leaking ids.
func (h *ClientHandler) GetReservation(c echo.Context) error {
	sess, err := SessionFrom(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	reservations, err := h.Directory.ReservationsOfClient(ctx, sess.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	id := c.Param("id")
	for i := range reservations {
		if reservations[i].ID == id {
			return c.JSON(http.StatusOK, reservations[i])
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
}

type profileReq struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	NPI         string `json:"npi"`
	AvatarURL   string `json:"avatar_url"`
	CompanyName string `json:"company_name"`
	BannerURL   string `json:"banner_url"`
	IFU         string `json:"ifu"`
	RCCM        string `json:"rccm"`
}

// UpdateProfile lets the caller edit their own profile fields. The
// record is re-read first so identity fields, role, status and
// password hash carry over unchanged. Company-only fields are applied
// for COMPANY callers and ignored for everyone else.
func (h *ClientHandler) UpdateProfile(c echo.Context) error {
	sess, err := SessionFrom(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	u, err := h.Directory.UserByID(ctx, sess.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if u == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		u.Name = name
	}
	if req.Phone != "" {
		u.Phone = req.Phone
	}
	if req.NPI != "" {
		u.NPI = req.NPI
	}
	if req.AvatarURL != "" {
		u.AvatarURL = req.AvatarURL
	}
	if sess.Role == model.RoleCompany {
		if name := strings.TrimSpace(req.CompanyName); name != "" {
			u.CompanyName = name
		}
		if req.BannerURL != "" {
			u.BannerURL = req.BannerURL
		}
		if req.IFU != "" {
			u.IFU = req.IFU
		}
		if req.RCCM != "" {
			u.RCCM = req.RCCM
		}
	}
	if err := h.Store.Users().Upsert(ctx, u); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}
