// Package web provides HTTP handlers for the web UI.
package web

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/routegroup"

	"github.com/qaflow/qaflow/app/enum"
	"github.com/qaflow/qaflow/app/gate"
	"github.com/qaflow/qaflow/app/server/api"
	"github.com/qaflow/qaflow/app/server/internal"
	"github.com/qaflow/qaflow/app/store"
)

//go:generate moq -out mocks/authprovider.go -pkg mocks -skip-ensure -fmt goimports . AuthProvider
//go:generate moq -out mocks/tokenservice.go -pkg mocks -skip-ensure -fmt goimports . TokenService
//go:generate moq -out mocks/reportstore.go -pkg mocks -skip-ensure -fmt goimports . ReportStore

//go:embed templates
var templatesFS embed.FS

// pageNames lists page templates, each rendered inside base.html.
var pageNames = []string{"home.html", "page.html", "login.html", "register.html",
	"dashboard.html", "token.html", "reports.html", "report.html"}

// AuthProvider defines the interface for authentication operations.
type AuthProvider interface {
	Register(ctx context.Context, req internal.RegisterRequest) (store.User, error)
	Login(ctx context.Context, req internal.LoginRequest) (store.User, error)
	CreateSession(ctx context.Context, user store.User) (string, error)
	InvalidateSession(ctx context.Context, value string)
	LoginTTL() time.Duration
}

// TokenService defines the interface for API token operations used by the token page.
type TokenService interface {
	GetOrIssue(ctx context.Context, userID string) (string, error)
	Regenerate(ctx context.Context, userID string) (string, error)
}

// ReportStore defines the interface for reading test reports.
type ReportStore interface {
	GetReport(ctx context.Context, id, userID string) (store.Report, error)
	ListReports(ctx context.Context, userID string) ([]store.ReportSummary, error)
	CountReports(ctx context.Context, userID, status string) (int, error)
	CountTokens(ctx context.Context, userID string) (int, error)
}

// Config holds web handler configuration.
type Config struct {
	DefaultRedirect string // where to go after sign-in without a callback
	Version         string
}

// Handler handles web UI requests.
type Handler struct {
	auth        AuthProvider
	tokens      TokenService
	reports     ReportStore
	highlighter *Highlighter
	pages       map[string]*template.Template
	redirect    string
	version     string
}

// New creates a new web handler.
func New(auth AuthProvider, tokens TokenService, reports ReportStore, cfg Config) (*Handler, error) {
	pages, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	if cfg.DefaultRedirect == "" {
		cfg.DefaultRedirect = "/dashboard"
	}

	return &Handler{
		auth:        auth,
		tokens:      tokens,
		reports:     reports,
		highlighter: NewHighlighter(),
		pages:       pages,
		redirect:    cfg.DefaultRedirect,
		version:     cfg.Version,
	}, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleHome)
	for _, p := range publicPages {
		r.HandleFunc("GET "+p.Path, h.publicPageHandler(p))
	}
	r.HandleFunc("GET /login", h.handleLoginForm)
	r.HandleFunc("GET /register", h.handleRegisterForm)
	r.HandleFunc("POST /logout", h.handleLogout)
	r.HandleFunc("POST /theme", h.handleThemeToggle)

	r.HandleFunc("GET /dashboard", h.handleDashboard)
	r.HandleFunc("GET /dashboard/token", h.handleToken)
	r.HandleFunc("POST /dashboard/token/regenerate", h.handleTokenRegenerate)
	r.HandleFunc("GET /dashboard/reports", h.handleReports)
	r.HandleFunc("GET /dashboard/reports/{id}", h.handleReport)
}

// RegisterAuth registers the sign-in and sign-up form handlers with custom middleware.
func (h *Handler) RegisterAuth(r *routegroup.Bundle, middleware func(http.Handler) http.Handler) {
	r.Handle("POST /login", middleware(http.HandlerFunc(h.handleLogin)))
	r.Handle("POST /register", middleware(http.HandlerFunc(h.handleRegister)))
}

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatTime": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.UTC().Format("2006-01-02 15:04:05")
		},
		"formatDuration": func(ms int64) string {
			return (time.Duration(ms) * time.Millisecond).String()
		},
		"statusClass": func(status string) string {
			if _, err := enum.ParseReportStatus(status); err != nil {
				return "status-unknown"
			}
			return "status-" + status
		},
		"stepField":     stepField,
		"screenshotURL": screenshotURL,
	}
}

// parseTemplates parses every page together with the base layout and partials.
func parseTemplates() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("base.html").Funcs(templateFuncs()).
			ParseFS(templatesFS, "templates/base.html", "templates/partials/*.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return pages, nil
}

// templateData holds data passed to templates.
type templateData struct {
	Title       string
	Theme       string
	User        *gate.Identity // signed-in user, nil for anonymous visitors
	Version     string
	ChromaCSS   template.CSS
	Error       string
	Field       string // form field the error refers to
	Message     string
	CallbackURL string

	// echoed form values
	Username string
	Email    string

	Page        publicPage
	Stats       api.Stats
	Token       string
	BearerToken string
	Reports     []store.ReportSummary
	Report      api.ReportDetails
	Environment template.HTML // highlighted environment JSON
	RawData     template.HTML // highlighted submitted payload
}

// newData returns template data with the common fields filled from the request.
func (h *Handler) newData(r *http.Request, title string) templateData {
	data := templateData{Title: title, Theme: h.getTheme(r).String(), Version: h.version, ChromaCSS: h.highlighter.CSS()}
	if id, ok := gate.IdentityFromContext(r.Context()); ok {
		data.User = &id
	}
	return data
}

// render executes a page template and writes it with the given status.
// The page is rendered into a buffer first, so a template failure results in a clean 500.
func (h *Handler) render(w http.ResponseWriter, status int, page string, data templateData) {
	tmpl, ok := h.pages[page]
	if !ok {
		log.Printf("[ERROR] unknown template %s", page)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		log.Printf("[ERROR] failed to execute template %s: %v", page, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[WARN] failed to write response: %v", err)
	}
}

// getTheme returns the current theme from cookie.
func (h *Handler) getTheme(r *http.Request) enum.Theme {
	cookie, err := r.Cookie("theme")
	if err != nil {
		return enum.ThemeSystem
	}
	theme, err := enum.ParseTheme(cookie.Value)
	if err != nil {
		return enum.ThemeSystem
	}
	return theme
}

// identity returns the signed-in user placed in the context by the gate.
// Redirects to the login page and returns false if there is none.
func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (gate.Identity, bool) {
	id, ok := gate.IdentityFromContext(r.Context())
	if !ok || id.UserID == "" {
		http.Redirect(w, r, "/login?callbackUrl="+gate.EncodeURIComponent(r.URL.Path), http.StatusSeeOther)
		return gate.Identity{}, false
	}
	return id, true
}

// redirectTarget returns callback if it is a local path, otherwise the default redirect.
func (h *Handler) redirectTarget(callback string) string {
	if callback != "" && gate.IsLocalRedirect(callback) {
		return callback
	}
	return h.redirect
}

// stepField returns a step attribute as text, or empty string if it is not set.
func stepField(step map[string]any, key string) string {
	v, ok := step[key]
	if !ok || v == nil {
		return ""
	}
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return fmt.Sprint(v)
}

// screenshotURL returns an image source for inline data or http(s) screenshots.
// Anything else gives an empty URL and is not rendered.
func screenshotURL(v any) template.URL {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	switch {
	case strings.HasPrefix(s, "data:image/"), strings.HasPrefix(s, "https://"), strings.HasPrefix(s, "http://"):
		return template.URL(s) //nolint:gosec // limited to image data and http(s) urls
	}
	return ""
}
