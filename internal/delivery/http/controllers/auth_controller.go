package controllers

import (
	"log/slog"
	"net/http"

	"mainstreet/internal/delivery/http/helpers"
	"mainstreet/internal/delivery/http/middleware"
	"mainstreet/internal/domain"
)

// LoginRequest is the request body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (r LoginRequest) Validate() []string {
	var errs []string
	if r.Email == "" {
		errs = append(errs, "email is required")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the data payload on successful login.
type LoginResponse struct {
	Token string            `json:"token"`
	User  *domain.AdminUser `json:"user"`
}

// VerifyPasscodeRequest is the request body for POST /api/admin/verify.
type VerifyPasscodeRequest struct {
	Passcode string `json:"passcode"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{Logger: logger, Service: svc}
}

// Login godoc
// @Summary Admin login
// @Description Exchange email and password for a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin credentials"
// @Success 200 {object} helpers.APIResponse "data contains token and user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, user, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token, User: user})
}

// Me godoc
// @Summary Get the authenticated admin account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the admin user"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/me [get]
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.AdminIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	user, err := c.Service.GetAdminByID(r.Context(), adminID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}

// VerifyPasscode godoc
// @Summary Verify the shared admin passcode
// @Description Shared-secret gate, separate from token login.
// @Tags auth
// @Accept json
// @Produce json
// @Param passcode body VerifyPasscodeRequest true "Passcode"
// @Success 200 {object} helpers.APIResponse "data contains {ok:true}"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/verify [post]
func (c *AuthController) VerifyPasscode(w http.ResponseWriter, r *http.Request) {
	var req VerifyPasscodeRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	if err := c.Service.VerifyPasscode(req.Passcode); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"ok": true})
}
