package gate

import (
	"context"
	"net/http"

	log "github.com/go-pkgz/lgr"
)

// Identity is the authenticated caller as resolved from the session.
type Identity struct {
	UserID   string
	Email    string
	Username string
}

// IdentityResolver resolves the session identity of a request.
// Returns false when the request carries no valid session.
type IdentityResolver interface {
	Identity(r *http.Request) (Identity, bool)
}

// Recorder counts gate decisions.
type Recorder interface {
	GateDecision(action string)
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity stored by the gate middleware, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// Middleware enforces gate decisions. Redirects are sent as 303 See Other.
// For HTMX requests it sets HX-Redirect with 401 to trigger full page navigation.
// Allowed requests of authenticated callers carry the identity in the request context.
func Middleware(g *Gate, ids IdentityResolver, rec Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id Identity
			authenticated := false
			if ids != nil {
				id, authenticated = ids.Identity(r)
			}

			d := g.Decide(r.Method, r.URL.Path, authenticated)
			if rec != nil {
				rec.GateDecision(d.Action.String())
			}

			if d.Action == Allow {
				if authenticated {
					r = r.WithContext(WithIdentity(r.Context(), id))
				}
				next.ServeHTTP(w, r)
				return
			}

			log.Printf("[DEBUG] gate %s %s: %s to %s (rule %s)", r.Method, r.URL.Path, d.Action, d.Location, d.Rule)
			if r.Header.Get("HX-Request") == "true" {
				w.Header().Set("HX-Redirect", d.Location)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			http.Redirect(w, r, d.Location, http.StatusSeeOther)
		})
	}
}
