package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaflow/qaflow/app/server/internal"
	"github.com/qaflow/qaflow/app/server/web/mocks"
	"github.com/qaflow/qaflow/app/store"
	"github.com/qaflow/qaflow/app/validator"
)

func formRequest(path string, form map[string][]string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, http.NoBody)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.PostForm = form
	return req
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "qaflow-session" || c.Name == "__Host-qaflow-session" {
			return c
		}
	}
	return nil
}

func loginAuth() *mocks.AuthProviderMock {
	return &mocks.AuthProviderMock{
		LoginFunc: func(_ context.Context, req internal.LoginRequest) (store.User, error) {
			switch {
			case req.Email == "":
				return store.User{}, &validator.ValidationError{Field: "email", Message: "Email is required"}
			case req.Email == "broken@example.com":
				return store.User{}, errors.New("db is down")
			case req.Password != "password1":
				return store.User{}, internal.ErrInvalidCredentials
			}
			return store.User{ID: "u1", Email: req.Email, Username: "annie"}, nil
		},
		CreateSessionFunc: func(context.Context, store.User) (string, error) { return "signed-session", nil },
		LoginTTLFunc:      func() time.Duration { return 24 * time.Hour },
	}
}

func TestHandler_HandleLoginForm(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/login?callbackUrl=%2Fdashboard%2Freports", http.NoBody)
	rec := httptest.NewRecorder()
	h.handleLoginForm(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sign in")
	assert.Contains(t, rec.Body.String(), `name="callbackUrl" value="/dashboard/reports"`)
}

func TestHandler_HandleLogin(t *testing.T) {
	t.Run("valid credentials redirect to callback", func(t *testing.T) {
		auth := loginAuth()
		h := newTestHandlerWith(t, auth, nil, nil)

		rec := httptest.NewRecorder()
		h.handleLogin(rec, formRequest("/login", map[string][]string{
			"email": {"ann@example.com"}, "password": {"password1"}, "callbackUrl": {"/dashboard/reports"}}))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard/reports", rec.Header().Get("Location"))
		cookie := sessionCookie(t, rec)
		require.NotNil(t, cookie)
		assert.Equal(t, "signed-session", cookie.Value)
		assert.Equal(t, "qaflow-session", cookie.Name)
		assert.True(t, cookie.HttpOnly)
		require.Len(t, auth.CreateSessionCalls(), 1)
		assert.Equal(t, "u1", auth.CreateSessionCalls()[0].User.ID)
	})

	t.Run("secure request uses host cookie", func(t *testing.T) {
		h := newTestHandlerWith(t, loginAuth(), nil, nil)
		req := formRequest("/login", map[string][]string{"email": {"ann@example.com"}, "password": {"password1"}})
		req.Header.Set("X-Forwarded-Proto", "https")
		rec := httptest.NewRecorder()
		h.handleLogin(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
		cookie := sessionCookie(t, rec)
		require.NotNil(t, cookie)
		assert.Equal(t, "__Host-qaflow-session", cookie.Name)
		assert.True(t, cookie.Secure)
	})

	t.Run("external callback ignored", func(t *testing.T) {
		h := newTestHandlerWith(t, loginAuth(), nil, nil)
		rec := httptest.NewRecorder()
		h.handleLogin(rec, formRequest("/login", map[string][]string{
			"email": {"ann@example.com"}, "password": {"password1"}, "callbackUrl": {"https://evil.example.com/"}}))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	})

	t.Run("invalid credentials shows error", func(t *testing.T) {
		h := newTestHandlerWith(t, loginAuth(), nil, nil)
		rec := httptest.NewRecorder()
		h.handleLogin(rec, formRequest("/login", map[string][]string{"email": {"ann@example.com"}, "password": {"wrong"}}))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid email or password")
		assert.Contains(t, rec.Body.String(), `value="ann@example.com"`)
		assert.Nil(t, sessionCookie(t, rec))
	})

	t.Run("validation error", func(t *testing.T) {
		h := newTestHandlerWith(t, loginAuth(), nil, nil)
		rec := httptest.NewRecorder()
		h.handleLogin(rec, formRequest("/login", map[string][]string{"password": {"password1"}}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Email is required")
	})

	t.Run("store failure", func(t *testing.T) {
		h := newTestHandlerWith(t, loginAuth(), nil, nil)
		rec := httptest.NewRecorder()
		h.handleLogin(rec, formRequest("/login", map[string][]string{"email": {"broken@example.com"}, "password": {"password1"}}))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("session failure", func(t *testing.T) {
		auth := loginAuth()
		auth.CreateSessionFunc = func(context.Context, store.User) (string, error) { return "", errors.New("db is down") }
		h := newTestHandlerWith(t, auth, nil, nil)
		rec := httptest.NewRecorder()
		h.handleLogin(rec, formRequest("/login", map[string][]string{"email": {"ann@example.com"}, "password": {"password1"}}))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Nil(t, sessionCookie(t, rec))
	})
}

func TestHandler_HandleRegister(t *testing.T) {
	auth := &mocks.AuthProviderMock{
		RegisterFunc: func(_ context.Context, req internal.RegisterRequest) (store.User, error) {
			switch {
			case !req.Terms:
				return store.User{}, &validator.ValidationError{Field: "terms", Message: "You must agree to the terms"}
			case req.Username == "taken":
				return store.User{}, internal.ErrUserExists
			case req.Username == "broken":
				return store.User{}, errors.New("db is down")
			}
			return store.User{ID: "u2", Username: req.Username, Email: req.Email}, nil
		},
		CreateSessionFunc: func(context.Context, store.User) (string, error) { return "new-session", nil },
		LoginTTLFunc:      func() time.Duration { return time.Hour },
	}
	h := newTestHandlerWith(t, auth, nil, nil)

	form := func(username string, terms bool) map[string][]string {
		f := map[string][]string{"username": {username}, "email": {" bob@example.com "},
			"password": {"password1"}, "confirmPassword": {"password1"}}
		if terms {
			f["terms"] = []string{"on"}
		}
		return f
	}

	t.Run("form page", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.handleRegisterForm(rec, httptest.NewRequest(http.MethodGet, "/register", http.NoBody))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `name="confirmPassword"`)
	})

	t.Run("success signs in", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.handleRegister(rec, formRequest("/register", form("bobby", true)))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
		cookie := sessionCookie(t, rec)
		require.NotNil(t, cookie)
		assert.Equal(t, "new-session", cookie.Value)

		calls := auth.RegisterCalls()
		req := calls[len(calls)-1].Req
		assert.Equal(t, "bobby", req.Username)
		assert.Equal(t, "bob@example.com", req.Email)
		assert.Equal(t, "password1", req.ConfirmPassword)
		assert.True(t, req.Terms)
	})

	t.Run("terms not accepted", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.handleRegister(rec, formRequest("/register", form("bobby", false)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "You must agree to the terms")
		assert.Contains(t, rec.Body.String(), `value="bobby"`)
	})

	t.Run("user exists", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.handleRegister(rec, formRequest("/register", form("taken", true)))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "already exists")
	})

	t.Run("store failure", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.handleRegister(rec, formRequest("/register", form("broken", true)))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandler_HandleLogout(t *testing.T) {
	auth := &mocks.AuthProviderMock{InvalidateSessionFunc: func(context.Context, string) {}}
	h := newTestHandlerWith(t, auth, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/logout", http.NoBody)
	req.AddCookie(&http.Cookie{Name: "qaflow-session", Value: "signed-session"})
	rec := httptest.NewRecorder()
	h.handleLogout(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, "true", rec.Header().Get("HX-Refresh"))
	require.Len(t, auth.InvalidateSessionCalls(), 1)
	assert.Equal(t, "signed-session", auth.InvalidateSessionCalls()[0].Value)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, c := range cookies {
		assert.Equal(t, -1, c.MaxAge, c.Name)
		assert.Empty(t, c.Value)
	}
}
