// Package internal provides shared utilities for server subpackages.
package internal

import (
	"net/http"
	"time"
)

// SessionCookieNames defines cookie names for session authentication.
// __Host- prefix requires HTTPS, secure, path=/ (preferred for production).
// fallback cookie name works on HTTP for development.
var SessionCookieNames = []string{"__Host-qaflow-session", "qaflow-session"}

// SessionCookie returns the first session cookie value present in the request.
func SessionCookie(r *http.Request) (string, bool) {
	for _, name := range SessionCookieNames {
		if cookie, err := r.Cookie(name); err == nil && cookie.Value != "" {
			return cookie.Value, true
		}
	}
	return "", false
}

// IsSecure reports whether the request came over HTTPS, directly or through a proxy.
func IsSecure(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}

// SetSessionCookie sets the session cookie, using the __Host- prefix for HTTPS requests.
func SetSessionCookie(w http.ResponseWriter, r *http.Request, value string, ttl time.Duration) {
	secure := IsSecure(r)
	name := SessionCookieNames[1]
	if secure {
		name = SessionCookieNames[0]
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	})
}

// ClearSessionCookies expires both session cookies.
func ClearSessionCookies(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieNames[1],
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   IsSecure(r),
	})
	// __Host- cookie requires Secure regardless of the request scheme
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieNames[0],
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   true,
	})
}
