package tacksdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Cookie names set by the auth endpoints.
const (
	AccessCookieName  = "accessToken"
	RefreshCookieName = "refreshToken"
)

// SDKClient is a client for the tack API. It covers the unauthenticated
// endpoints and creates Sessions for everything else.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client for the API at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates an unverified account. The verification code is mailed.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/register", req)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeJSON(resp, &user, http.StatusCreated); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates with email and password. It returns
// ErrVerificationRequired when the account is not verified yet.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	refresh := refreshCookie(resp)

	var out LoginResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	if out.RequiresVerification {
		return nil, ErrVerificationRequired
	}
	return c.NewSessionFromTokens(out.AccessToken, refresh), nil
}

// VerifyEmail confirms the account with the mailed code and signs it in.
func (c *SDKClient) VerifyEmail(ctx context.Context, email, otp string) (*Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/verify-email", VerifyEmailRequest{
		Email: email,
		Token: otp,
	})
	if err != nil {
		return nil, err
	}
	refresh := refreshCookie(resp)

	var out AuthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return c.NewSessionFromTokens(out.AccessToken, refresh), nil
}

// AuthenticateWithRefreshToken creates a session from a stored refresh
// token. The token is rotated by the call.
func (c *SDKClient) AuthenticateWithRefreshToken(ctx context.Context, refreshToken string) (*Session, error) {
	access, refresh, err := c.refresh(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	return c.NewSessionFromTokens(access, refresh), nil
}

// SendVerification mails a fresh verification code.
func (c *SDKClient) SendVerification(ctx context.Context, email string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/send-verification", EmailRequest{Email: email})
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// ForgotPassword mails a password reset link.
func (c *SDKClient) ForgotPassword(ctx context.Context, email string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/forgot-password", EmailRequest{Email: email})
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// ResetPassword sets a new password using the mailed reset token.
func (c *SDKClient) ResetPassword(ctx context.Context, token, password string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/reset-password", ResetPasswordRequest{
		Token:    token,
		Password: password,
	})
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// VerifyInvite previews an invitation without accepting it.
func (c *SDKClient) VerifyInvite(ctx context.Context, token string) (*InvitePreview, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/invites/verify/"+url.PathEscape(token), nil)
	if err != nil {
		return nil, err
	}

	var out InvitePreview
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Meta returns the enumerations the UI renders as select options.
func (c *SDKClient) Meta(ctx context.Context) (*Enumerations, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/meta", nil)
	if err != nil {
		return nil, err
	}

	var out Enumerations
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLiveness calls /livez.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil)
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := decodeRaw(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReadiness calls /readyz. A degraded service answers 503 with the
// failing checks filled in, which is returned without an error.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil)
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := decodeRaw(resp, &out, http.StatusOK, http.StatusServiceUnavailable); err != nil {
		return nil, err
	}
	return &out, nil
}

// refresh rotates refreshToken and returns the new pair.
func (c *SDKClient) refresh(ctx context.Context, refreshToken string) (string, string, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/refresh", RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return "", "", err
	}
	rotated := refreshCookie(resp)

	var out AuthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return "", "", err
	}
	return out.AccessToken, rotated, nil
}
