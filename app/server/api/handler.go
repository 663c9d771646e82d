// Package api provides HTTP handlers for the JSON API: identity endpoints, API token management,
// test report ingestion and dashboard stats.
package api

import (
	"context"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/qaflow/qaflow/app/gate"
	"github.com/qaflow/qaflow/app/server/internal"
	"github.com/qaflow/qaflow/app/store"
)

//go:generate moq -out mocks/authprovider.go -pkg mocks -skip-ensure -fmt goimports . AuthProvider
//go:generate moq -out mocks/tokenservice.go -pkg mocks -skip-ensure -fmt goimports . TokenService
//go:generate moq -out mocks/reportstore.go -pkg mocks -skip-ensure -fmt goimports . ReportStore

// AuthProvider defines the interface for authentication operations.
type AuthProvider interface {
	Register(ctx context.Context, req internal.RegisterRequest) (store.User, error)
	Login(ctx context.Context, req internal.LoginRequest) (store.User, error)
	CreateSession(ctx context.Context, user store.User) (string, error)
	InvalidateSession(ctx context.Context, value string)
	LoginTTL() time.Duration
}

// TokenService defines the interface for API token operations.
type TokenService interface {
	GetOrIssue(ctx context.Context, userID string) (string, error)
	Regenerate(ctx context.Context, userID string) (string, error)
	Revoke(ctx context.Context, userID string) error
	Verify(ctx context.Context, presented string) (userID string, ok bool, err error)
}

// ReportStore defines the interface for test report storage.
type ReportStore interface {
	CreateReport(ctx context.Context, r store.Report) (store.Report, error)
	GetReport(ctx context.Context, id, userID string) (store.Report, error)
	ListReports(ctx context.Context, userID string) ([]store.ReportSummary, error)
	CountReports(ctx context.Context, userID, status string) (int, error)
	CountTokens(ctx context.Context, userID string) (int, error)
}

// Recorder counts ingested reports.
type Recorder interface {
	ReportIngested(status string)
}

// Handler handles /api/* requests.
type Handler struct {
	auth    AuthProvider
	tokens  TokenService
	reports ReportStore
	rec     Recorder
}

// New creates a new API handler. rec may be nil.
func New(auth AuthProvider, tokens TokenService, reports ReportStore, rec Recorder) *Handler {
	return &Handler{auth: auth, tokens: tokens, reports: reports, rec: rec}
}

// Register registers API routes on the given router, mounted at /api.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("POST /auth/register", h.handleRegister)
	r.HandleFunc("POST /auth/login", h.handleLogin)
	r.HandleFunc("POST /auth/logout", h.handleLogout)
	r.HandleFunc("GET /auth/session", h.handleSession)

	r.HandleFunc("GET /user/token", h.handleGetToken)
	r.HandleFunc("POST /user/token/regenerate", h.handleRegenerateToken)
	r.HandleFunc("DELETE /user/token", h.handleRevokeToken)

	r.HandleFunc("POST /tests", h.handleCreateReport)
	r.HandleFunc("GET /tests", h.handleListReports)
	r.HandleFunc("GET /tests/{id}", h.handleGetReport)

	r.HandleFunc("GET /dashboard/stats", h.handleStats)
}

// requireIdentity returns the session identity placed in the context by the gate middleware.
// Writes 401 and returns false if there is none.
func requireIdentity(w http.ResponseWriter, r *http.Request) (gate.Identity, bool) {
	id, ok := gate.IdentityFromContext(r.Context())
	if !ok || id.UserID == "" {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusUnauthorized, nil, "Unauthorized")
		return gate.Identity{}, false
	}
	return id, true
}

// userResponse is the public view of a user.
type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// renderJSON sends data as JSON with the given status code.
func renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	rest.RenderJSON(w, data)
}
