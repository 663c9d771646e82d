package api

import (
	"errors"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/qaflow/qaflow/app/token"
)

// handleGetToken returns the API token of the current user, issuing one if needed.
// GET /api/user/token
func (h *Handler) handleGetToken(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	value, err := h.tokens.GetOrIssue(r.Context(), id.UserID)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "An error occurred while fetching API token")
		return
	}
	rest.RenderJSON(w, rest.JSON{"token": value, "bearerToken": "Bearer " + value})
}

// handleRegenerateToken replaces the API token of the current user.
// POST /api/user/token/regenerate
func (h *Handler) handleRegenerateToken(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	value, err := h.tokens.Regenerate(r.Context(), id.UserID)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "An error occurred while regenerating API token")
		return
	}
	rest.RenderJSON(w, rest.JSON{
		"success":     true,
		"token":       value,
		"bearerToken": "Bearer " + value,
		"message":     "Your API token has been regenerated successfully. Use it with the Authorization header (Bearer token).",
	})
}

// handleRevokeToken deletes the API token of the current user without issuing a new one.
// DELETE /api/user/token
func (h *Handler) handleRevokeToken(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	if err := h.tokens.Revoke(r.Context(), id.UserID); err != nil {
		if errors.Is(err, token.ErrNoToken) {
			rest.SendErrorJSON(w, r, log.Default(), http.StatusNotFound, err, "No API token to revoke")
			return
		}
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "An error occurred while revoking API token")
		return
	}
	rest.RenderJSON(w, rest.JSON{"success": true, "message": "Your API token has been revoked."})
}
