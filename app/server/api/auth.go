package api

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/qaflow/qaflow/app/server/internal"
	"github.com/qaflow/qaflow/app/validator"
)

// handleRegister creates a user account.
// POST /api/auth/register
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req internal.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid request body")
		return
	}

	user, err := h.auth.Register(r.Context(), req)
	if err != nil {
		var verr *validator.ValidationError
		switch {
		case errors.As(err, &verr):
			renderJSON(w, http.StatusBadRequest, rest.JSON{"error": verr.Message, "field": verr.Field})
		case errors.Is(err, internal.ErrUserExists):
			rest.SendErrorJSON(w, r, log.Default(), http.StatusConflict, err, "User with this email or username already exists")
		default:
			rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "Something went wrong")
		}
		return
	}

	renderJSON(w, http.StatusCreated, rest.JSON{"success": true, "user": userResponse{ID: user.ID, Username: user.Username, Email: user.Email}})
}

// handleLogin checks credentials and sets the session cookie.
// POST /api/auth/login
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req internal.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid request body")
		return
	}

	user, err := h.auth.Login(r.Context(), req)
	if err != nil {
		var verr *validator.ValidationError
		switch {
		case errors.As(err, &verr):
			renderJSON(w, http.StatusBadRequest, rest.JSON{"error": verr.Message, "field": verr.Field})
		case errors.Is(err, internal.ErrInvalidCredentials):
			rest.SendErrorJSON(w, r, log.Default(), http.StatusUnauthorized, err, "Invalid credentials")
		default:
			rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "Something went wrong")
		}
		return
	}

	value, err := h.auth.CreateSession(r.Context(), user)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "Something went wrong")
		return
	}
	internal.SetSessionCookie(w, r, value, h.auth.LoginTTL())
	rest.RenderJSON(w, rest.JSON{"success": true, "user": userResponse{ID: user.ID, Username: user.Username, Email: user.Email}})
}

// handleLogout invalidates the session and clears the cookie.
// POST /api/auth/logout
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	for _, name := range internal.SessionCookieNames {
		if cookie, err := r.Cookie(name); err == nil {
			h.auth.InvalidateSession(r.Context(), cookie.Value)
		}
	}
	internal.ClearSessionCookies(w, r)
	rest.RenderJSON(w, rest.JSON{"success": true})
}

// handleSession returns the current user.
// GET /api/auth/session
func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	rest.RenderJSON(w, rest.JSON{"user": userResponse{ID: id.UserID, Username: id.Username, Email: id.Email}})
}
