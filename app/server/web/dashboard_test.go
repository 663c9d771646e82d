package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaflow/qaflow/app/server/web/mocks"
	"github.com/qaflow/qaflow/app/store"
)

func summaries(n int) []store.ReportSummary {
	res := make([]store.ReportSummary, n)
	for i := range res {
		res[i] = store.ReportSummary{ID: fmt.Sprintf("r%d", i), Name: fmt.Sprintf("report-%d", i), Status: "passed",
			StartTime: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), DurationMS: 1500}
	}
	return res
}

func TestHandler_HandleDashboard(t *testing.T) {
	reports := &mocks.ReportStoreMock{
		CountReportsFunc: func(_ context.Context, userID, status string) (int, error) {
			switch status {
			case "":
				return 7, nil
			case "passed":
				return 5, nil
			case "failed":
				return 2, nil
			}
			return 0, fmt.Errorf("unexpected status %q", status)
		},
		CountTokensFunc: func(context.Context, string) (int, error) { return 1, nil },
		ListReportsFunc: func(context.Context, string) ([]store.ReportSummary, error) { return summaries(7), nil },
	}
	h := newTestHandlerWith(t, nil, nil, reports)

	t.Run("stats and recent reports", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.handleDashboard(rec, signedIn(httptest.NewRequest(http.MethodGet, "/dashboard", http.NoBody)))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `<strong id="total-tests">7</strong>`)
		assert.Contains(t, body, `<strong id="passed-tests">5</strong>`)
		assert.Contains(t, body, `<strong id="failed-tests">2</strong>`)
		assert.Contains(t, body, `<strong id="api-keys">1</strong>`)
		assert.Contains(t, body, "report-4")
		assert.NotContains(t, body, "report-5", "only recent reports shown")
		assert.Contains(t, body, "1.5s")
		for _, c := range reports.CountReportsCalls() {
			assert.Equal(t, testUser.UserID, c.UserID)
		}
	})

	t.Run("anonymous redirected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.handleDashboard(rec, httptest.NewRequest(http.MethodGet, "/dashboard", http.NoBody))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login?callbackUrl=%2Fdashboard", rec.Header().Get("Location"))
	})

	t.Run("stats failure", func(t *testing.T) {
		failing := &mocks.ReportStoreMock{
			CountReportsFunc: func(context.Context, string, string) (int, error) { return 0, errors.New("db is down") },
		}
		h := newTestHandlerWith(t, nil, nil, failing)
		rec := httptest.NewRecorder()
		h.handleDashboard(rec, signedIn(httptest.NewRequest(http.MethodGet, "/dashboard", http.NoBody)))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandler_HandleToken(t *testing.T) {
	tokens := &mocks.TokenServiceMock{
		GetOrIssueFunc: func(context.Context, string) (string, error) { return "qaf_current", nil },
		RegenerateFunc: func(context.Context, string) (string, error) { return "qaf_fresh", nil },
	}
	h := newTestHandlerWith(t, nil, tokens, nil)

	rec := httptest.NewRecorder()
	h.handleToken(rec, signedIn(httptest.NewRequest(http.MethodGet, "/dashboard/token", http.NoBody)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization: Bearer qaf_current")
	require.Len(t, tokens.GetOrIssueCalls(), 1)
	assert.Equal(t, testUser.UserID, tokens.GetOrIssueCalls()[0].UserID)

	rec = httptest.NewRecorder()
	h.handleTokenRegenerate(rec, signedIn(httptest.NewRequest(http.MethodPost, "/dashboard/token/regenerate", http.NoBody)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization: Bearer qaf_fresh")
	assert.Contains(t, rec.Body.String(), "has been regenerated")
	require.Len(t, tokens.RegenerateCalls(), 1)

	t.Run("failures", func(t *testing.T) {
		failing := &mocks.TokenServiceMock{
			GetOrIssueFunc: func(context.Context, string) (string, error) { return "", errors.New("db is down") },
			RegenerateFunc: func(context.Context, string) (string, error) { return "", errors.New("db is down") },
		}
		h := newTestHandlerWith(t, nil, failing, nil)
		rec := httptest.NewRecorder()
		h.handleToken(rec, signedIn(httptest.NewRequest(http.MethodGet, "/dashboard/token", http.NoBody)))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		rec = httptest.NewRecorder()
		h.handleTokenRegenerate(rec, signedIn(httptest.NewRequest(http.MethodPost, "/dashboard/token/regenerate", http.NoBody)))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandler_HandleReports(t *testing.T) {
	reports := &mocks.ReportStoreMock{
		ListReportsFunc: func(context.Context, string) ([]store.ReportSummary, error) { return summaries(7), nil },
	}
	h := newTestHandlerWith(t, nil, nil, reports)

	rec := httptest.NewRecorder()
	h.handleReports(rec, signedIn(httptest.NewRequest(http.MethodGet, "/dashboard/reports", http.NoBody)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/dashboard/reports/r6"`)
	assert.Contains(t, rec.Body.String(), `class="status-passed"`)

	t.Run("empty", func(t *testing.T) {
		empty := &mocks.ReportStoreMock{
			ListReportsFunc: func(context.Context, string) ([]store.ReportSummary, error) { return []store.ReportSummary{}, nil },
		}
		h := newTestHandlerWith(t, nil, nil, empty)
		rec := httptest.NewRecorder()
		h.handleReports(rec, signedIn(httptest.NewRequest(http.MethodGet, "/dashboard/reports", http.NoBody)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "No test reports yet")
	})
}

func TestHandler_HandleReport(t *testing.T) {
	shots := `[{"name":"open","status":"passed","timestamp":1,"screenshot":"data:image/png;base64,AAA"}]`
	rep := store.Report{
		ID: "r1", UserID: testUser.UserID, Name: "checkout", Description: "checkout flow", Status: "failed",
		StartTime: time.UnixMilli(1000).UTC(), EndTime: time.UnixMilli(3500).UTC(), DurationMS: 2500,
		AuthorName: "Ann", AuthorEmail: "ann@example.com",
		Environment: `{"browser":"firefox"}`,
		Steps:       `[{"name":"open","status":"passed","timestamp":1},{"name":"pay","status":"failed","timestamp":2}]`,
		Screenshots: &shots,
		RawData:     `{"name":"checkout","status":"failed"}`,
	}
	reports := &mocks.ReportStoreMock{
		GetReportFunc: func(_ context.Context, id, userID string) (store.Report, error) {
			if id == "r1" && userID == testUser.UserID {
				return rep, nil
			}
			if id == "broken" {
				return store.Report{}, errors.New("db is down")
			}
			return store.Report{}, store.ErrNotFound
		},
	}
	h := newTestHandlerWith(t, nil, nil, reports)
	router := newRouter(h)

	get := func(id string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, signedIn(httptest.NewRequest(http.MethodGet, "/dashboard/reports/"+id, http.NoBody)))
		return rec
	}

	rec := get("r1")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<h1>checkout</h1>")
	assert.Contains(t, body, "checkout flow")
	assert.Contains(t, body, "2.5s")
	assert.Contains(t, body, "Ann &lt;ann@example.com&gt;")
	assert.Contains(t, body, `src="data:image/png;base64,AAA"`)
	assert.Equal(t, 1, strings.Count(body, `class="screenshot"`), "only the step with a screenshot shows an image")
	assert.Contains(t, body, "firefox")

	assert.Equal(t, http.StatusNotFound, get("other").Code)
	assert.Equal(t, http.StatusInternalServerError, get("broken").Code)
}
