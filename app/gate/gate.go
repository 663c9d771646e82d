// Package gate implements the access gate deciding, for every request, whether it is allowed,
// redirected to login or redirected to the dashboard. Decisions depend only on the request
// method, the path and whether the caller has an authenticated session.
package gate

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Action is the outcome of a gate decision.
type Action int

// gate actions
const (
	Allow Action = iota
	RedirectLogin
	RedirectDashboard
)

// String returns the action name used in logs and metrics.
func (a Action) String() string {
	switch a {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect_login"
	case RedirectDashboard:
		return "redirect_dashboard"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Decision is the result of Gate.Decide. Location is set for redirects only.
type Decision struct {
	Action   Action
	Location string
	Rule     string // name of the rule that matched
}

// Config defines route classification. Public routes are anonymous browser pages,
// machine routes are endpoints authenticating callers themselves (e.g. by bearer token).
// Machine route entries may be method-qualified, as in "POST /api/tests".
type Config struct {
	PublicRoutes    []string `yaml:"public_routes"`
	MachineRoutes   []string `yaml:"machine_routes"`
	AuthRoutes      []string `yaml:"auth_routes"`
	APIAuthPrefix   string   `yaml:"api_auth_prefix"`
	DashboardPrefix string   `yaml:"dashboard_prefix"`
	APIPrefix       string   `yaml:"api_prefix"`
	LoginPath       string   `yaml:"login_path"`
	DefaultRedirect string   `yaml:"default_redirect"`
}

// DefaultConfig returns the built-in route classification.
func DefaultConfig() Config {
	return Config{
		PublicRoutes:    []string{"/", "/docs", "/about", "/contact", "/privacy", "/terms", "/blog", "/faq"},
		MachineRoutes:   []string{"POST /api/tests"},
		AuthRoutes:      []string{"/login", "/register", "/forgot-password", "/reset-password"},
		APIAuthPrefix:   "/api/auth",
		DashboardPrefix: "/dashboard",
		APIPrefix:       "/api",
		LoginPath:       "/login",
		DefaultRedirect: "/dashboard",
	}
}

// LoadConfig reads route classification from a YAML file.
// Fields missing in the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path) //nolint:gosec // path is from CLI flag, controlled by admin
	if err != nil {
		return Config{}, fmt.Errorf("failed to read gate config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse gate config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid gate config: %w", err)
	}
	return cfg, nil
}

// Validate checks that all paths are absolute.
func (c Config) Validate() error {
	for name, p := range map[string]string{
		"api_auth_prefix":  c.APIAuthPrefix,
		"dashboard_prefix": c.DashboardPrefix,
		"api_prefix":       c.APIPrefix,
		"login_path":       c.LoginPath,
		"default_redirect": c.DefaultRedirect,
	} {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("%s must start with /, got %q", name, p)
		}
	}
	for _, r := range append(append([]string{}, c.PublicRoutes...), c.AuthRoutes...) {
		if !strings.HasPrefix(r, "/") {
			return fmt.Errorf("route must start with /, got %q", r)
		}
	}
	for _, r := range c.MachineRoutes {
		if _, err := parseMachineRoute(r); err != nil {
			return err
		}
	}
	return nil
}

type machineRoute struct {
	method string // empty matches any method
	path   string
}

func parseMachineRoute(s string) (machineRoute, error) {
	fields := strings.Fields(s)
	var mr machineRoute
	switch len(fields) {
	case 1:
		mr.path = fields[0]
	case 2:
		mr.method, mr.path = strings.ToUpper(fields[0]), fields[1]
	default:
		return machineRoute{}, fmt.Errorf("invalid machine route %q", s)
	}
	if !strings.HasPrefix(mr.path, "/") {
		return machineRoute{}, fmt.Errorf("machine route path must start with /, got %q", s)
	}
	return mr, nil
}

// Gate classifies requests using a static Config.
type Gate struct {
	cfg     Config
	machine []machineRoute
}

// New makes a Gate from cfg.
func New(cfg Config) (*Gate, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Gate{cfg: cfg}
	for _, r := range cfg.MachineRoutes {
		mr, err := parseMachineRoute(r)
		if err != nil {
			return nil, err
		}
		g.machine = append(g.machine, mr)
	}
	if len(cfg.PublicRoutes) == 0 && len(cfg.AuthRoutes) == 0 {
		return nil, errors.New("gate config has neither public nor auth routes")
	}
	return g, nil
}

// LoginPath returns the configured login page path.
func (g *Gate) LoginPath() string { return g.cfg.LoginPath }

// DefaultRedirect returns the path authenticated users land on.
func (g *Gate) DefaultRedirect() string { return g.cfg.DefaultRedirect }

// Decide returns the gate decision for a request. Rules are evaluated in order, first match wins:
// api-auth prefix, machine routes, auth pages, dashboard and api prefixes, public pages.
func (g *Gate) Decide(method, path string, authenticated bool) Decision {
	if strings.HasPrefix(path, g.cfg.APIAuthPrefix) {
		return Decision{Action: Allow, Rule: "api_auth"}
	}

	if g.isMachine(method, path) {
		return Decision{Action: Allow, Rule: "machine"}
	}

	if contains(g.cfg.AuthRoutes, path) {
		if authenticated {
			return Decision{Action: RedirectDashboard, Location: g.cfg.DefaultRedirect, Rule: "auth_page"}
		}
		return Decision{Action: Allow, Rule: "auth_page"}
	}

	if !authenticated && g.isProtected(path) {
		loc := g.cfg.LoginPath + "?callbackUrl=" + EncodeURIComponent(path)
		return Decision{Action: RedirectLogin, Location: loc, Rule: "protected"}
	}

	if !authenticated && !g.isPublic(path) {
		return Decision{Action: RedirectLogin, Location: g.cfg.LoginPath, Rule: "private"}
	}

	return Decision{Action: Allow, Rule: "default"}
}

func (g *Gate) isMachine(method, path string) bool {
	for _, mr := range g.machine {
		if mr.method != "" && !strings.EqualFold(mr.method, method) {
			continue
		}
		if matchRoute(mr.path, path) {
			return true
		}
	}
	return false
}

func (g *Gate) isProtected(path string) bool {
	if strings.HasPrefix(path, g.cfg.DashboardPrefix) {
		return true
	}
	return strings.HasPrefix(path, g.cfg.APIPrefix) && !strings.HasPrefix(path, g.cfg.APIAuthPrefix)
}

func (g *Gate) isPublic(path string) bool {
	for _, r := range g.cfg.PublicRoutes {
		if matchRoute(r, path) {
			return true
		}
	}
	return false
}

// matchRoute reports whether path is route itself or nested under it.
func matchRoute(route, path string) bool {
	return path == route || strings.HasPrefix(path, route+"/")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

var uriComponentFixer = strings.NewReplacer("+", "%20", "%21", "!", "%27", "'", "%28", "(", "%29", ")", "%2A", "*")

// EncodeURIComponent escapes s the way browsers' encodeURIComponent does,
// leaving only A-Z a-z 0-9 and - _ . ! ~ * ' ( ) unescaped.
func EncodeURIComponent(s string) string {
	return uriComponentFixer.Replace(url.QueryEscape(s))
}

// IsLocalRedirect reports whether target is a same-origin absolute path, safe to redirect to.
func IsLocalRedirect(target string) bool {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return false
	}
	u, err := url.Parse(target)
	return err == nil && u.Host == "" && u.Scheme == ""
}
