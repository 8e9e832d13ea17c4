package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/tack/pkg/jwtx"
	"github.com/aussiebroadwan/tack/pkg/slogx"
)

// ErrMissingToken is passed to the failure handler when the request carries
// no access token at all.
var ErrMissingToken = errors.New("httpx: missing access token")

// AuthFailureFunc writes the response for a request that failed
// authentication. err is ErrMissingToken or an error from the verifier.
type AuthFailureFunc func(w http.ResponseWriter, r *http.Request, err error)

// AccessToken extracts the raw access token, looking at the Authorization
// bearer value first and then at the named cookie.
func AccessToken(r *http.Request, cookieName string) (string, bool) {
	if authz := r.Header.Get("Authorization"); authz != "" {
		scheme, raw, ok := strings.Cut(authz, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			if raw = strings.TrimSpace(raw); raw != "" {
				return raw, true
			}
		}
	}

	if cookieName != "" {
		if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
			return c.Value, true
		}
	}

	return "", false
}

// AuthnMiddleware verifies the access token and injects the subject and
// claims into the request context. It establishes identity only; what the
// identity may do is decided further in.
func AuthnMiddleware(v jwtx.Verifier, cookieName string, fail AuthFailureFunc) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw, ok := AccessToken(r, cookieName)
			if !ok {
				fail(w, r, ErrMissingToken)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				slogx.FromContext(ctx).Debug("access token rejected", "err", err)
				fail(w, r, err)
				return
			}

			ctx = contextWithAuth(ctx, claims)
			ctx = slogx.With(ctx, "user_id", claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
