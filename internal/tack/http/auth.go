package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/aussiebroadwan/tack/internal/tack/service"
	"github.com/aussiebroadwan/tack/pkg/httpx"
	"github.com/aussiebroadwan/tack/pkg/tacksdk"
)

// Cookie paths. The refresh token is only ever sent to the auth endpoints.
const (
	accessCookiePath  = "/"
	refreshCookiePath = "/api/auth"
)

// AuthHandler serves registration, login and the token lifecycle.
type AuthHandler struct {
	Sessions *service.SessionService
	Cookies  httpx.CookiePolicy
}

func (h *AuthHandler) setTokenCookies(w http.ResponseWriter, access, refresh string) {
	h.Cookies.Set(w, tacksdk.AccessCookieName, access, accessCookiePath, h.Sessions.Tokens.AccessTTL)
	h.Cookies.Set(w, tacksdk.RefreshCookieName, refresh, refreshCookiePath, h.Sessions.Tokens.RefreshTTL)
}

// refreshToken reads the refresh token from its cookie, falling back to a
// JSON body for clients without a cookie jar.
func refreshToken(r *http.Request) string {
	if c, err := r.Cookie(tacksdk.RefreshCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	var body tacksdk.RefreshRequest
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil || len(raw) == 0 {
		return ""
	}
	if json.Unmarshal(raw, &body) != nil {
		return ""
	}
	return body.RefreshToken
}

// HandleRegister handles POST /api/auth/register
//
//	@Summary		Register
//	@Description	Creates an unverified account and emails a six character verification code.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tacksdk.RegisterRequest						true	"Account details"
//	@Success		201		{object}	tacksdk.Envelope{data=tacksdk.User}			"Created account"
//	@Failure		400		{object}	tacksdk.Envelope							"Invalid JSON body"
//	@Failure		409		{object}	tacksdk.Envelope							"Email already registered"
//	@Failure		422		{object}	tacksdk.Envelope							"Validation failed"
//	@Failure		429		{object}	tacksdk.Envelope							"Rate limited"
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req tacksdk.RegisterRequest
	if !decode(w, r, &req) {
		return
	}

	user, err := h.Sessions.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusCreated,
		"Registration successful. Please check your email to verify your account.", user)
}

// HandleLogin handles POST /api/auth/login
//
//	@Summary		Login
//	@Description	Exchanges credentials for an access token. The refresh token is set as an httpOnly cookie.
//	@Description	Unverified accounts get requiresVerification=true and a fresh code by email instead.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tacksdk.LoginRequest							true	"Credentials"
//	@Success		200		{object}	tacksdk.Envelope{data=tacksdk.LoginResponse}	"Access token or verification notice"
//	@Failure		401		{object}	tacksdk.Envelope								"Invalid credentials"
//	@Failure		422		{object}	tacksdk.Envelope								"Validation failed"
//	@Failure		429		{object}	tacksdk.Envelope								"Rate limited"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req tacksdk.LoginRequest
	if !decode(w, r, &req) {
		return
	}

	result, err := h.Sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if result.RequiresVerification {
		httpx.WriteData(w, http.StatusOK,
			"Please check your email and verify your account before logging in. A new verification code has been sent.",
			tacksdk.LoginResponse{Email: req.Email, RequiresVerification: true})
		return
	}

	h.setTokenCookies(w, result.Tokens.AccessToken, result.Tokens.RefreshToken)
	httpx.WriteData(w, http.StatusOK, "Login successful.", tacksdk.LoginResponse{
		AccessToken: result.Tokens.AccessToken,
	})
}

// HandleRefresh handles POST /api/auth/refresh
//
//	@Summary		Refresh tokens
//	@Description	Rotates the refresh token. The presented token is revoked and cannot be used again.
//	@Description	Reads the refreshToken cookie, or a refreshToken field in the body.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tacksdk.RefreshRequest						false	"Body fallback"
//	@Success		200		{object}	tacksdk.Envelope{data=tacksdk.AuthResponse}	"New access token"
//	@Failure		401		{object}	tacksdk.Envelope							"Missing, invalid, expired or revoked token"
//	@Router			/api/auth/refresh [post].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	pair, err := h.Sessions.Refresh(r.Context(), refreshToken(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setTokenCookies(w, pair.AccessToken, pair.RefreshToken)
	httpx.WriteData(w, http.StatusOK, "Token refreshed successfully.", tacksdk.AuthResponse{
		AccessToken: pair.AccessToken,
	})
}

// HandleLogout handles POST /api/auth/logout
//
//	@Summary		Logout
//	@Description	Revokes the refresh token, if it is still valid, and clears both auth cookies.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	tacksdk.Envelope	"Logged out"
//	@Router			/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Logout(r.Context(), refreshToken(r)); err != nil {
		writeError(w, r, err)
		return
	}

	h.Cookies.Clear(w, tacksdk.AccessCookieName, accessCookiePath)
	h.Cookies.Clear(w, tacksdk.RefreshCookieName, refreshCookiePath)
	httpx.WriteData(w, http.StatusOK, "Logout successful.", nil)
}

// HandleForgotPassword handles POST /api/auth/forgot-password
//
//	@Summary		Forgot password
//	@Description	Emails a single-use password reset link.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tacksdk.EmailRequest	true	"Account email"
//	@Success		200		{object}	tacksdk.Envelope		"Reset link sent"
//	@Failure		422		{object}	tacksdk.Envelope		"Validation failed"
//	@Failure		429		{object}	tacksdk.Envelope		"Rate limited"
//	@Router			/api/auth/forgot-password [post].
func (h *AuthHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req tacksdk.EmailRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.Sessions.ForgotPassword(r.Context(), req.Email); err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "A password reset link has been sent to your email.", nil)
}

// HandleResetPassword handles POST /api/auth/reset-password
//
//	@Summary		Reset password
//	@Description	Sets a new password with the token from the reset email. The token works once.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tacksdk.ResetPasswordRequest	true	"Token and new password"
//	@Success		200		{object}	tacksdk.Envelope				"Password reset"
//	@Failure		401		{object}	tacksdk.Envelope				"Invalid or expired token"
//	@Failure		422		{object}	tacksdk.Envelope				"Validation failed"
//	@Router			/api/auth/reset-password [post].
func (h *AuthHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req tacksdk.ResetPasswordRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.Sessions.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "Password has been reset successfully. You can now log in.", nil)
}

// HandleVerifyEmail handles POST /api/auth/verify-email
//
//	@Summary		Verify email
//	@Description	Confirms the account with the emailed code and signs it in.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tacksdk.VerifyEmailRequest					true	"Email and code"
//	@Success		200		{object}	tacksdk.Envelope{data=tacksdk.AuthResponse}	"Verified and signed in"
//	@Failure		401		{object}	tacksdk.Envelope							"Invalid or expired code"
//	@Failure		409		{object}	tacksdk.Envelope							"Already verified"
//	@Failure		422		{object}	tacksdk.Envelope							"Validation failed"
//	@Router			/api/auth/verify-email [post].
func (h *AuthHandler) HandleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req tacksdk.VerifyEmailRequest
	if !decode(w, r, &req) {
		return
	}

	pair, err := h.Sessions.VerifyEmail(r.Context(), req.Email, req.Token)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setTokenCookies(w, pair.AccessToken, pair.RefreshToken)
	httpx.WriteData(w, http.StatusOK, "Email has been verified successfully. You are now logged in.",
		tacksdk.AuthResponse{AccessToken: pair.AccessToken})
}

// HandleSendVerification handles POST /api/auth/send-verification
//
//	@Summary		Resend verification code
//	@Description	Replaces any outstanding verification code with a new one and emails it.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tacksdk.EmailRequest	true	"Account email"
//	@Success		200		{object}	tacksdk.Envelope		"Code sent"
//	@Failure		409		{object}	tacksdk.Envelope		"Already verified"
//	@Failure		422		{object}	tacksdk.Envelope		"Validation failed"
//	@Router			/api/auth/send-verification [post].
func (h *AuthHandler) HandleSendVerification(w http.ResponseWriter, r *http.Request) {
	var req tacksdk.EmailRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.Sessions.SendVerification(r.Context(), req.Email); err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, "A verification code has been sent to your email.", nil)
}

// HandleMe handles GET /api/auth/me
//
//	@Summary		Current user
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	tacksdk.Envelope{data=tacksdk.User}	"Profile"
//	@Failure		401	{object}	tacksdk.Envelope					"Not authenticated"
//	@Security		BearerAuth
//	@Router			/api/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.Sessions.Me(r.Context(), actor(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "User profile fetched successfully.", user)
}

// HandleChangePassword handles POST /api/user/change-password
//
//	@Summary		Change password
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tacksdk.ChangePasswordRequest	true	"Current and new password"
//	@Success		200		{object}	tacksdk.Envelope				"Password changed"
//	@Failure		401		{object}	tacksdk.Envelope				"Incorrect current password"
//	@Failure		422		{object}	tacksdk.Envelope				"Validation failed"
//	@Security		BearerAuth
//	@Router			/api/user/change-password [post].
func (h *AuthHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req tacksdk.ChangePasswordRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.Sessions.ChangePassword(r.Context(), actor(r), req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Password changed successfully.", nil)
}
