package web

import (
	"errors"
	"net/http"

	log "github.com/go-pkgz/lgr"

	"github.com/qaflow/qaflow/app/server/api"
	"github.com/qaflow/qaflow/app/store"
)

// recentReports is the number of reports shown on the dashboard overview.
const recentReports = 5

// handleDashboard renders the overview with report stats and the latest reports.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r)
	if !ok {
		return
	}

	stats, err := api.UserStats(r.Context(), h.reports, id.UserID)
	if err != nil {
		log.Printf("[ERROR] failed to get stats for %s: %v", id.UserID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	reports, err := h.reports.ListReports(r.Context(), id.UserID)
	if err != nil {
		log.Printf("[ERROR] failed to list reports for %s: %v", id.UserID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if len(reports) > recentReports {
		reports = reports[:recentReports]
	}

	data := h.newData(r, "Dashboard")
	data.Stats = stats
	data.Reports = reports
	h.render(w, http.StatusOK, "dashboard.html", data)
}

// handleToken renders the API token page, issuing a token if the user has none.
func (h *Handler) handleToken(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r)
	if !ok {
		return
	}
	value, err := h.tokens.GetOrIssue(r.Context(), id.UserID)
	if err != nil {
		log.Printf("[ERROR] failed to get api token for %s: %v", id.UserID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	data := h.newData(r, "API token")
	data.Token, data.BearerToken = value, "Bearer "+value
	h.render(w, http.StatusOK, "token.html", data)
}

// handleTokenRegenerate replaces the API token and renders the token page with the new value.
func (h *Handler) handleTokenRegenerate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r)
	if !ok {
		return
	}
	value, err := h.tokens.Regenerate(r.Context(), id.UserID)
	if err != nil {
		log.Printf("[ERROR] failed to regenerate api token for %s: %v", id.UserID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	data := h.newData(r, "API token")
	data.Token, data.BearerToken = value, "Bearer "+value
	data.Message = "Your API token has been regenerated. The previous token no longer works."
	h.render(w, http.StatusOK, "token.html", data)
}

// handleReports renders all reports of the user, newest first.
func (h *Handler) handleReports(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r)
	if !ok {
		return
	}
	reports, err := h.reports.ListReports(r.Context(), id.UserID)
	if err != nil {
		log.Printf("[ERROR] failed to list reports for %s: %v", id.UserID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	data := h.newData(r, "Test reports")
	data.Reports = reports
	h.render(w, http.StatusOK, "reports.html", data)
}

// handleReport renders a single report with its steps, screenshots and submitted payload.
func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	id, ok := h.identity(w, r)
	if !ok {
		return
	}
	rep, err := h.reports.GetReport(r.Context(), r.PathValue("id"), id.UserID)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[ERROR] failed to get report %s: %v", r.PathValue("id"), err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	data := h.newData(r, rep.Name)
	data.Report = api.DetailsFromReport(rep)
	data.Environment = h.highlighter.JSON(rep.Environment)
	data.RawData = h.highlighter.JSON(rep.RawData)
	h.render(w, http.StatusOK, "report.html", data)
}
