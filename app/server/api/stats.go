package api

import (
	"context"
	"fmt"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/qaflow/qaflow/app/enum"
)

// Stats is the dashboard summary of a user.
type Stats struct {
	TotalTests  int `json:"totalTests"`
	PassedTests int `json:"passedTests"`
	FailedTests int `json:"failedTests"`
	APIKeys     int `json:"apiKeys"`
}

// StatsStore is the part of the report storage needed for dashboard stats.
type StatsStore interface {
	CountReports(ctx context.Context, userID, status string) (int, error)
	CountTokens(ctx context.Context, userID string) (int, error)
}

// UserStats collects dashboard stats of userID.
func UserStats(ctx context.Context, reports StatsStore, userID string) (Stats, error) {
	var s Stats
	var err error
	if s.TotalTests, err = reports.CountReports(ctx, userID, ""); err != nil {
		return Stats{}, fmt.Errorf("failed to count reports: %w", err)
	}
	if s.PassedTests, err = reports.CountReports(ctx, userID, enum.ReportStatusPassed.String()); err != nil {
		return Stats{}, fmt.Errorf("failed to count passed reports: %w", err)
	}
	if s.FailedTests, err = reports.CountReports(ctx, userID, enum.ReportStatusFailed.String()); err != nil {
		return Stats{}, fmt.Errorf("failed to count failed reports: %w", err)
	}
	if s.APIKeys, err = reports.CountTokens(ctx, userID); err != nil {
		return Stats{}, fmt.Errorf("failed to count api tokens: %w", err)
	}
	return s, nil
}

// handleStats returns report counts and the number of API tokens of the current user.
// GET /api/dashboard/stats
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	stats, err := UserStats(r.Context(), h.reports, id.UserID)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "An error occurred while fetching dashboard stats")
		return
	}
	rest.RenderJSON(w, rest.JSON{"stats": stats})
}
