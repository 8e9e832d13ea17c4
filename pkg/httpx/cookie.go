package httpx

import (
	"net/http"
	"time"
)

// CookiePolicy holds the attributes shared by every auth cookie the API sets.
type CookiePolicy struct {
	Secure   bool
	SameSite http.SameSite
	Domain   string
}

// ProductionCookies is the policy for deployed environments.
var ProductionCookies = CookiePolicy{Secure: true, SameSite: http.SameSiteStrictMode}

// DevelopmentCookies works over plain http on localhost. Browsers refuse
// SameSite=None without Secure, so Lax is the loosest usable setting.
var DevelopmentCookies = CookiePolicy{Secure: false, SameSite: http.SameSiteLaxMode}

// Set writes an httpOnly cookie scoped to path that lives for maxAge.
func (p CookiePolicy) Set(w http.ResponseWriter, name, value, path string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Domain:   p.Domain,
		MaxAge:   int(maxAge.Seconds()),
		Expires:  time.Now().Add(maxAge),
		Secure:   p.Secure,
		HttpOnly: true,
		SameSite: p.SameSite,
	})
}

// Clear expires the named cookie. Path must match the one it was set with.
func (p CookiePolicy) Clear(w http.ResponseWriter, name, path string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		Domain:   p.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   p.Secure,
		HttpOnly: true,
		SameSite: p.SameSite,
	})
}
