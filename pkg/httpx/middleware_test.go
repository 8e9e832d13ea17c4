package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/tack/pkg/httpx"
	"github.com/aussiebroadwan/tack/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mark("a"), mark("b"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"a", "b", "handler"}, order)
}

func TestAccessToken(t *testing.T) {
	t.Run("bearer header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer abc")
		tok, ok := httpx.AccessToken(r, "accessToken")
		require.True(t, ok)
		require.Equal(t, "abc", tok)
	})

	t.Run("header wins over cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "bearer from-header")
		r.AddCookie(&http.Cookie{Name: "accessToken", Value: "from-cookie"})
		tok, _ := httpx.AccessToken(r, "accessToken")
		require.Equal(t, "from-header", tok)
	})

	t.Run("cookie fallback", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Basic Zm9vOmJhcg==")
		r.AddCookie(&http.Cookie{Name: "accessToken", Value: "from-cookie"})
		tok, ok := httpx.AccessToken(r, "accessToken")
		require.True(t, ok)
		require.Equal(t, "from-cookie", tok)
	})

	t.Run("missing", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, ok := httpx.AccessToken(r, "accessToken")
		require.False(t, ok)
	})
}

func TestAuthnMiddleware(t *testing.T) {
	signer, err := jwtx.NewHS256([]byte(testSecret), jwtx.KindAccess, "tack")
	require.NoError(t, err)

	var failed error
	fail := func(w http.ResponseWriter, r *http.Request, err error) {
		failed = err
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
	}

	var gotSubject string
	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject, _ = httpx.UserIDFromContext(r.Context())
		claims, ok := httpx.ClaimsFromContext(r.Context())
		require.True(t, ok)
		require.Equal(t, jwtx.KindAccess, claims.Kind)
		w.WriteHeader(http.StatusNoContent)
	}), httpx.AuthnMiddleware(signer, "accessToken", fail))

	t.Run("valid token", func(t *testing.T) {
		tok, err := signer.Sign(jwtx.NewClaims(jwtx.KindAccess, "user-1", "tack", time.Hour, time.Now()))
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "user-1", gotSubject)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.ErrorIs(t, failed, httpx.ErrMissingToken)
	})

	t.Run("expired token", func(t *testing.T) {
		tok, err := signer.Sign(jwtx.NewClaims(jwtx.KindAccess, "user-1", "tack", time.Minute, time.Now().Add(-time.Hour)))
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "accessToken", Value: tok})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.ErrorIs(t, failed, jwtx.ErrExpired)
	})
}

func TestWriteEnvelopes(t *testing.T) {
	t.Run("data", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpx.WriteData(rec, http.StatusCreated, "Created.", map[string]string{"id": "x"})

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

		var env map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		require.Equal(t, "success", env["status"])
		require.EqualValues(t, 201, env["statusCode"])
		require.Equal(t, "Created.", env["message"])
		require.NotContains(t, env, "errors")
	})

	t.Run("error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpx.WriteError(rec, http.StatusUnprocessableEntity, "Validation failed.", []httpx.FieldError{{Path: "email", Message: "must be a valid email"}})

		body := rec.Body.String()
		require.True(t, strings.Contains(body, `"path":"email"`))
		require.NotContains(t, body, `"data"`)
	})
}

func TestCookiePolicy(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.ProductionCookies.Set(rec, "refreshToken", "tok", "/api/auth", 7*24*time.Hour)
	httpx.DevelopmentCookies.Clear(rec, "accessToken", "/")

	res := rec.Result()
	cookies := res.Cookies()
	require.Len(t, cookies, 2)

	set := cookies[0]
	require.Equal(t, "refreshToken", set.Name)
	require.Equal(t, "/api/auth", set.Path)
	require.True(t, set.HttpOnly)
	require.True(t, set.Secure)
	require.Equal(t, http.SameSiteStrictMode, set.SameSite)
	require.Equal(t, 7*24*60*60, set.MaxAge)

	cleared := cookies[1]
	require.Equal(t, "accessToken", cleared.Name)
	require.False(t, cleared.Secure)
	require.Negative(t, cleared.MaxAge)
}

func TestCORSWithoutOrigins(t *testing.T) {
	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}), httpx.CORS(nil))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://anywhere.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"), "an empty list must not mean *")
}
