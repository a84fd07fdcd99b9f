package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventoslisting/internal/delivery/http/helpers"
	"eventoslisting/internal/domain"
)

// ResetRequestRequest is the request body for POST /api/reset-password-request
type ResetRequestRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (r ResetRequestRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(strings.ToLower(r.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

// ResetPasswordRequest is the request body for POST /api/reset-password.
// Token carries the 4-digit code mailed to the user.
type ResetPasswordRequest struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (r ResetPasswordRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	}
	if strings.TrimSpace(r.Token) == "" {
		errs = append(errs, "token is required")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// PasswordResetController handles the reset-code request and redeem endpoints.
type PasswordResetController struct {
	Logger  *slog.Logger
	Service domain.PasswordResetService
}

// NewPasswordResetController creates a PasswordResetController with the given logger and service.
func NewPasswordResetController(logger *slog.Logger, svc domain.PasswordResetService) *PasswordResetController {
	return &PasswordResetController{
		Logger:  logger,
		Service: svc,
	}
}

// Request godoc
// @Summary Request a password-reset code
// @Description Emails a 4-digit single-use code valid for 15 minutes. A new request supersedes any earlier code.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body ResetRequestRequest true "Account email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse "unknown email"
// @Failure 500 {object} helpers.MessageResponse "mail transport failure"
// @Router /api/reset-password-request [post]
func (c *PasswordResetController) Request(w http.ResponseWriter, r *http.Request) {
	var req ResetRequestRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.Request(r.Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "no account with that email")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "failed to send reset code")
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, "reset code sent")
}

// Reset godoc
// @Summary Redeem a password-reset code
// @Description Sets a new password when the emailed code matches and has not expired. The code is consumed either way.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body ResetPasswordRequest true "Email, code, and new password"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.MessageResponse "invalid or expired code"
// @Failure 404 {object} helpers.MessageResponse "user no longer exists"
// @Failure 500 {object} helpers.MessageResponse
// @Router /api/reset-password [post]
func (c *PasswordResetController) Reset(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	err := c.Service.Redeem(r.Context(), req.Email, req.Token, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrResetCodeInvalid):
			helpers.WriteJSONError(w, http.StatusBadRequest, "invalid reset code")
		case errors.Is(err, domain.ErrResetCodeExpired):
			helpers.WriteJSONError(w, http.StatusBadRequest, "reset code expired, request a new one")
		case errors.Is(err, domain.ErrUserNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, "user not found")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, "password updated")
}
