package gate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate(t *testing.T) *Gate {
	t.Helper()
	g, err := New(DefaultConfig())
	require.NoError(t, err)
	return g
}

func TestGate_Decide(t *testing.T) {
	g := newTestGate(t)

	tests := []struct {
		name     string
		method   string
		path     string
		authed   bool
		action   Action
		location string
		rule     string
	}{
		{"api auth anonymous", "POST", "/api/auth/login", false, Allow, "", "api_auth"},
		{"api auth authenticated", "GET", "/api/auth/session", true, Allow, "", "api_auth"},
		{"machine route anonymous", "POST", "/api/tests", false, Allow, "", "machine"},
		{"machine route wrong method", "GET", "/api/tests", false, RedirectLogin, "/login?callbackUrl=%2Fapi%2Ftests", "protected"},
		{"machine route lowercase method", "post", "/api/tests", false, Allow, "", "machine"},
		{"login anonymous", "GET", "/login", false, Allow, "", "auth_page"},
		{"login authenticated", "GET", "/login", true, RedirectDashboard, "/dashboard", "auth_page"},
		{"register authenticated", "GET", "/register", true, RedirectDashboard, "/dashboard", "auth_page"},
		{"reset password anonymous", "GET", "/reset-password", false, Allow, "", "auth_page"},
		{"dashboard anonymous", "GET", "/dashboard", false, RedirectLogin, "/login?callbackUrl=%2Fdashboard", "protected"},
		{"dashboard nested anonymous", "GET", "/dashboard/reports/42", false, RedirectLogin,
			"/login?callbackUrl=%2Fdashboard%2Freports%2F42", "protected"},
		{"dashboard authenticated", "GET", "/dashboard", true, Allow, "", "default"},
		{"api anonymous", "GET", "/api/user/token", false, RedirectLogin, "/login?callbackUrl=%2Fapi%2Fuser%2Ftoken", "protected"},
		{"api authenticated", "GET", "/api/user/token", true, Allow, "", "default"},
		{"root anonymous", "GET", "/", false, Allow, "", "default"},
		{"docs nested anonymous", "GET", "/docs/getting-started", false, Allow, "", "default"},
		{"blog anonymous", "GET", "/blog", false, Allow, "", "default"},
		{"docs lookalike anonymous", "GET", "/docsx", false, RedirectLogin, "/login", "private"},
		{"unknown anonymous", "GET", "/settings", false, RedirectLogin, "/login", "private"},
		{"unknown authenticated", "GET", "/settings", true, Allow, "", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := g.Decide(tt.method, tt.path, tt.authed)
			assert.Equal(t, tt.action, d.Action)
			assert.Equal(t, tt.location, d.Location)
			assert.Equal(t, tt.rule, d.Rule)
		})
	}
}

func TestGate_DecideProperties(t *testing.T) {
	g := newTestGate(t)
	paths := []string{"", "/", "/x", "/session", "/login", "/register/extra", "/a b", "/logout", "/ümlaut", "/callback?x=1"}
	methods := []string{"GET", "POST", "PUT", "DELETE"}

	t.Run("api auth prefix always allowed", func(t *testing.T) {
		for _, p := range paths {
			for _, m := range methods {
				for _, authed := range []bool{true, false} {
					d := g.Decide(m, "/api/auth"+p, authed)
					assert.Equal(t, Allow, d.Action, "%s /api/auth%s authed=%v", m, p, authed)
				}
			}
		}
	})

	t.Run("auth routes", func(t *testing.T) {
		for _, p := range DefaultConfig().AuthRoutes {
			assert.Equal(t, RedirectDashboard, g.Decide("GET", p, true).Action, p)
			assert.Equal(t, "/dashboard", g.Decide("GET", p, true).Location, p)
			assert.Equal(t, Allow, g.Decide("GET", p, false).Action, p)
		}
	})

	t.Run("dashboard redirects anonymous with callback", func(t *testing.T) {
		for _, p := range paths {
			path := "/dashboard" + p
			d := g.Decide("GET", path, false)
			assert.Equal(t, RedirectLogin, d.Action, path)
			assert.Equal(t, "/login?callbackUrl="+EncodeURIComponent(path), d.Location, path)
		}
	})
}

func TestGate_PublicAPIRouteStillProtected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PublicRoutes = append(cfg.PublicRoutes, "/api/tests", "/api/reports")
	cfg.MachineRoutes = nil
	g, err := New(cfg)
	require.NoError(t, err)

	for _, m := range []string{"GET", "POST"} {
		d := g.Decide(m, "/api/tests", false)
		assert.Equal(t, RedirectLogin, d.Action, m)
		assert.Equal(t, "/login?callbackUrl=%2Fapi%2Ftests", d.Location, m)
	}
	assert.Equal(t, RedirectLogin, g.Decide("GET", "/api/reports/1", false).Action)
}

func TestGate_MachineRouteAnyMethod(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MachineRoutes = []string{"/api/hooks"}
	g, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, Allow, g.Decide("GET", "/api/hooks", false).Action)
	assert.Equal(t, Allow, g.Decide("PUT", "/api/hooks/github", false).Action)
	assert.Equal(t, RedirectLogin, g.Decide("GET", "/api/hooksx", false).Action)
	assert.Equal(t, RedirectLogin, g.Decide("POST", "/api/tests", false).Action, "default machine route replaced")
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"relative login", func(c *Config) { c.LoginPath = "login" }},
		{"empty api prefix", func(c *Config) { c.APIPrefix = "" }},
		{"relative public route", func(c *Config) { c.PublicRoutes = []string{"docs"} }},
		{"bad machine route", func(c *Config) { c.MachineRoutes = []string{"POST /api/tests extra"} }},
		{"relative machine route", func(c *Config) { c.MachineRoutes = []string{"POST api/tests"} }},
		{"no routes", func(c *Config) { c.PublicRoutes, c.AuthRoutes = nil, nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			_, err := New(cfg)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gate.yml")
		content := `
public_routes: ["/", "/pricing"]
machine_routes:
  - "POST /api/tests"
  - "POST /api/runs"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"/", "/pricing"}, cfg.PublicRoutes)
		assert.Equal(t, []string{"POST /api/tests", "POST /api/runs"}, cfg.MachineRoutes)
		assert.Equal(t, "/login", cfg.LoginPath)
		assert.Equal(t, "/api/auth", cfg.APIAuthPrefix)

		g, err := New(cfg)
		require.NoError(t, err)
		assert.Equal(t, Allow, g.Decide("POST", "/api/runs", false).Action)
		assert.Equal(t, Allow, g.Decide("GET", "/pricing", false).Action)
		assert.Equal(t, RedirectLogin, g.Decide("GET", "/docs", false).Action)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read gate config")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gate.yml")
		require.NoError(t, os.WriteFile(path, []byte("public_routes: [\n"), 0o600))
		_, err := LoadConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse gate config")
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gate.yml")
		require.NoError(t, os.WriteFile(path, []byte("login_path: login\n"), 0o600))
		_, err := LoadConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid gate config")
	})
}

func TestEncodeURIComponent(t *testing.T) {
	tests := []struct{ in, want string }{
		{"/dashboard", "%2Fdashboard"},
		{"/dashboard/a b", "%2Fdashboard%2Fa%20b"},
		{"/x?y=1&z=2", "%2Fx%3Fy%3D1%26z%3D2"},
		{"-_.!~*'()", "-_.!~*'()"},
		{"a+b", "a%2Bb"},
		{"ü", "%C3%BC"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EncodeURIComponent(tt.in), tt.in)
	}
}

func TestIsLocalRedirect(t *testing.T) {
	tests := []struct {
		target string
		want   bool
	}{
		{"/dashboard", true},
		{"/dashboard/reports?x=1", true},
		{"", false},
		{"dashboard", false},
		{"//evil.example.com", false},
		{"/\\evil.example.com", false},
		{"https://evil.example.com/dashboard", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLocalRedirect(tt.target), tt.target)
	}
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "redirect_login", RedirectLogin.String())
	assert.Equal(t, "redirect_dashboard", RedirectDashboard.String())
	assert.Equal(t, "action(7)", Action(7).String())
}
