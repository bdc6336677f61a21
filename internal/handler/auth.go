package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ayivi/bus-ticket-reservation/internal/config"
	"github.com/ayivi/bus-ticket-reservation/internal/model"
	"github.com/ayivi/bus-ticket-reservation/internal/store"
	"github.com/ayivi/bus-ticket-reservation/internal/utils"
)

// AuthHandler bundles dependencies for signup and login endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Store store.Store
}

func NewAuthHandler(cfg config.Config, s store.Store) *AuthHandler {
	if s == nil {
		panic("nil store passed to NewAuthHandler")
	}
	return &AuthHandler{Cfg: cfg, Store: s}
}

// ----- DTOs -----

type registerClientReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	NPI      string `json:"npi"`
}

type registerCompanyReq struct {
	CompanyName  string `json:"company_name"`
	ManagerName  string `json:"manager_name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	IFU          string `json:"ifu"`
	RCCM         string `json:"rccm"`
	AnattURL     string `json:"anatt_url"`
	OtherDocsURL string `json:"other_docs_url"`
	BannerURL    string `json:"banner_url"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type authResp struct {
	User   model.User `json:"user"`
	Access tokenPart  `json:"access"`
}

// RegisterClient creates a traveler account and returns a token
// immediately: clients need no approval step.
func (h *AuthHandler) RegisterClient(c echo.Context) error {
	var req registerClientReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" || strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/email/password required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if existing, err := h.userByEmail(ctx, req.Email); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	} else if existing != nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	u := model.User{
		ID:           utils.NewID(),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleClient,
		Name:         strings.TrimSpace(req.Name),
		Phone:        req.Phone,
		NPI:          req.NPI,
	}
	if err := h.Store.Users().Upsert(ctx, &u); err != nil {
		return jsonError(c, err)
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusCreated, authResp{
		User:   u,
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// RegisterCompany creates a company account in PENDING status. No
// token is issued: the company cannot log in until an admin approves
// the registration.
func (h *AuthHandler) RegisterCompany(c echo.Context) error {
	var req registerCompanyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	switch {
	case req.Email == "" || req.Password == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	case strings.TrimSpace(req.CompanyName) == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "company_name required"})
	case strings.TrimSpace(req.AnattURL) == "":
		// the accreditation document is the one mandatory upload
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "anatt_url required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if existing, err := h.userByEmail(ctx, req.Email); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	} else if existing != nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	u := model.User{
		ID:           utils.NewID(),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleCompany,
		Name:         strings.TrimSpace(req.ManagerName),
		CompanyName:  strings.TrimSpace(req.CompanyName),
		BannerURL:    req.BannerURL,
		IFU:          req.IFU,
		RCCM:         req.RCCM,
		AnattURL:     req.AnattURL,
		OtherDocsURL: req.OtherDocsURL,
		Status:       model.StatusPending,
	}
	if err := h.Store.Users().Upsert(ctx, &u); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"user":    u,
		"message": "registration received, awaiting approval",
	})
}

// Login verifies credentials and returns an access token. Company
// accounts are gated on approval: PENDING and REJECTED companies are
// refused with a message naming their state.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	u, err := h.userByEmail(ctx, req.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if u == nil || !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	if u.Role == model.RoleCompany && u.Status != model.StatusApproved {
		msg := "company account rejected"
		if u.Status == model.StatusPending {
			msg = "company account awaiting approval"
		}
		return c.JSON(http.StatusForbidden, echo.Map{"error": msg, "status": u.Status})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, authResp{
		User:   *u,
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Me re-fetches the caller's record by id and returns it. A company
// that lost its approval since the token was issued is invalidated
// here, mirroring the session re-validation done at app load.
func (h *AuthHandler) Me(c echo.Context) error {
	sess, err := SessionFrom(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	users, err := h.Store.Users().List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	for i := range users {
		if users[i].ID == sess.UserID {
			u := users[i]
			if u.Role == model.RoleCompany && u.Status != model.StatusApproved {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "company no longer approved"})
			}
			return c.JSON(http.StatusOK, u)
		}
	}
	return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
}

// userByEmail scans the users collection for the first record with
// the given email. Registration refuses duplicates, so at most one
// record matches for accounts created through the API.
func (h *AuthHandler) userByEmail(ctx context.Context, email string) (*model.User, error) {
	users, err := h.Store.Users().List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

// reqContext bounds the duration of store calls made by a handler.
func reqContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}
