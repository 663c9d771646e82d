package web

import (
	"errors"
	"net/http"
	"strings"

	log "github.com/go-pkgz/lgr"

	"github.com/qaflow/qaflow/app/server/internal"
	"github.com/qaflow/qaflow/app/store"
	"github.com/qaflow/qaflow/app/validator"
)

// handleLoginForm renders the sign-in page.
func (h *Handler) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	data := h.newData(r, "Sign in")
	data.CallbackURL = r.URL.Query().Get("callbackUrl")
	h.render(w, http.StatusOK, "login.html", data)
}

// handleLogin processes the sign-in form submission.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	data := h.newData(r, "Sign in")
	data.CallbackURL = r.FormValue("callbackUrl")
	data.Email = strings.TrimSpace(r.FormValue("email"))

	user, err := h.auth.Login(r.Context(), internal.LoginRequest{Email: data.Email, Password: r.FormValue("password")})
	if err != nil {
		var verr *validator.ValidationError
		switch {
		case errors.As(err, &verr):
			data.Error, data.Field = verr.Message, verr.Field
			h.render(w, http.StatusBadRequest, "login.html", data)
		case errors.Is(err, internal.ErrInvalidCredentials):
			data.Error = "Invalid email or password"
			h.render(w, http.StatusUnauthorized, "login.html", data)
		default:
			log.Printf("[ERROR] failed to sign in %s: %v", data.Email, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	h.startSession(w, r, user, data.CallbackURL)
}

// handleRegisterForm renders the sign-up page.
func (h *Handler) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	data := h.newData(r, "Create account")
	data.CallbackURL = r.URL.Query().Get("callbackUrl")
	h.render(w, http.StatusOK, "register.html", data)
}

// handleRegister processes the sign-up form and signs the new user in.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	data := h.newData(r, "Create account")
	data.CallbackURL = r.FormValue("callbackUrl")
	data.Username = strings.TrimSpace(r.FormValue("username"))
	data.Email = strings.TrimSpace(r.FormValue("email"))

	req := internal.RegisterRequest{
		Username:        data.Username,
		Email:           data.Email,
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirmPassword"),
		Terms:           r.FormValue("terms") != "",
	}
	user, err := h.auth.Register(r.Context(), req)
	if err != nil {
		var verr *validator.ValidationError
		switch {
		case errors.As(err, &verr):
			data.Error, data.Field = verr.Message, verr.Field
			h.render(w, http.StatusBadRequest, "register.html", data)
		case errors.Is(err, internal.ErrUserExists):
			data.Error = "User with this email or username already exists"
			h.render(w, http.StatusConflict, "register.html", data)
		default:
			log.Printf("[ERROR] failed to register %s: %v", data.Email, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	h.startSession(w, r, user, data.CallbackURL)
}

// startSession sets the session cookie for user and redirects to the callback or the dashboard.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user store.User, callback string) {
	value, err := h.auth.CreateSession(r.Context(), user)
	if err != nil {
		log.Printf("[ERROR] failed to create session: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	internal.SetSessionCookie(w, r, value, h.auth.LoginTTL())
	http.Redirect(w, r, h.redirectTarget(callback), http.StatusSeeOther)
}

// handleLogout signs the user out by invalidating the session and clearing the cookies.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	for _, name := range internal.SessionCookieNames {
		if cookie, err := r.Cookie(name); err == nil {
			h.auth.InvalidateSession(r.Context(), cookie.Value)
		}
	}
	internal.ClearSessionCookies(w, r)

	// tell HTMX to perform a full page refresh
	w.Header().Set("HX-Refresh", "true")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
