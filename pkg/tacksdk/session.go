package tacksdk

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// refreshBuffer is how long before expiry a session refreshes its token.
const refreshBuffer = 30 * time.Second

// Session is an authenticated client. Access tokens are refreshed
// automatically shortly before they expire.
type Session struct {
	client *SDKClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time
}

// NewSessionFromTokens wraps tokens obtained elsewhere. refreshToken may be
// empty, in which case the session ends when the access token expires.
func (c *SDKClient) NewSessionFromTokens(accessToken, refreshToken string) *Session {
	return &Session{
		client:       c,
		accessToken:  accessToken,
		refreshToken: refreshToken,
		expiresAt:    tokenExpiry(accessToken),
	}
}

// tokenExpiry reads exp without verifying the signature. The server is the
// one that checks it; the client only needs to know when to refresh.
func tokenExpiry(token string) time.Time {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil || claims.ExpiresAt == nil {
		return time.Now().Add(time.Minute)
	}
	return claims.ExpiresAt.Add(-refreshBuffer)
}

// AccessToken returns the current access token.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token. It changes on every
// refresh.
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// Refresh rotates the token pair now.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshLocked(ctx)
}

func (s *Session) refreshLocked(ctx context.Context) error {
	if s.refreshToken == "" {
		return errors.New("tacksdk: no refresh token available")
	}

	access, refresh, err := s.client.refresh(ctx, s.refreshToken)
	if err != nil {
		return err
	}

	s.accessToken = access
	if refresh != "" {
		s.refreshToken = refresh
	}
	s.expiresAt = tokenExpiry(access)
	return nil
}

// getValidToken returns a valid access token, refreshing if it is close to
// expiry.
func (s *Session) getValidToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if time.Now().Before(s.expiresAt) || s.refreshToken == "" {
		token := s.accessToken
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have refreshed while we waited.
	if time.Now().Before(s.expiresAt) {
		return s.accessToken, nil
	}

	if err := s.refreshLocked(ctx); err != nil {
		return "", err
	}
	return s.accessToken, nil
}

// Logout revokes the refresh token. The session is unusable afterwards.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	refresh := s.refreshToken
	s.refreshToken = ""
	s.expiresAt = time.Time{}
	s.mu.Unlock()

	resp, err := s.client.doRequest(ctx, http.MethodPost, "/api/auth/logout", RefreshRequest{RefreshToken: refresh})
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}
