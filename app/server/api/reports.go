package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"reflect"
	"strconv"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/qaflow/qaflow/app/enum"
	"github.com/qaflow/qaflow/app/store"
	"github.com/qaflow/qaflow/app/token"
)

// reportRequest is a test run submitted by a runner. Times are epoch milliseconds,
// given either as numbers or numeric strings.
type reportRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	StartTime   json.RawMessage `json:"startTime"`
	EndTime     json.RawMessage `json:"endTime"`
	Duration    float64         `json:"duration"`
	Tester      *struct {
		Author string `json:"author"`
		Email  string `json:"email"`
	} `json:"tester"`
	Environment json.RawMessage `json:"environment"`
	Steps       json.RawMessage `json:"steps"`
}

// screenshot is a step with a screenshot, kept separately from the steps.
type screenshot struct {
	Name       any `json:"name"`
	Status     any `json:"status"`
	Timestamp  any `json:"timestamp"`
	Screenshot any `json:"screenshot"`
}

// handleCreateReport stores a test report, authenticated with the bearer API token.
// POST /api/tests
func (h *Handler) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	if _, ok := token.ParseBearer(header); !ok {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusUnauthorized, nil, "Authorization bearer token is required")
		return
	}
	userID, ok, err := h.tokens.Verify(r.Context(), header)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "An error occurred while processing your request")
		return
	}
	if !ok {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusUnauthorized, nil, "Invalid API token")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "failed to read request body")
		return
	}
	var req reportRequest
	if err := json.Unmarshal(body, &req); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid JSON body")
		return
	}
	if req.Name == "" || req.Status == "" {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, nil, "Missing required fields: name and status are required")
		return
	}

	report, err := buildReport(userID, req, body, time.Now())
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, err.Error())
		return
	}

	created, err := h.reports.CreateReport(r.Context(), report)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "An error occurred while processing your request")
		return
	}
	if h.rec != nil {
		h.rec.ReportIngested(statusLabel(created.Status))
	}
	log.Printf("[INFO] stored report %s %q (%s) for user %s", created.ID, created.Name, created.Status, userID)

	renderJSON(w, http.StatusCreated, rest.JSON{"success": true, "testId": created.ID, "message": "Test report created successfully"})
}

// statusLabel keeps metric labels bounded, statuses outside the known set are counted as "other".
func statusLabel(status string) string {
	if _, err := enum.ParseReportStatus(status); err != nil {
		return "other"
	}
	return status
}

// buildReport converts a submitted report into a store record.
func buildReport(userID string, req reportRequest, body []byte, now time.Time) (store.Report, error) {
	status := enum.NormalizeReportStatus(req.Status)
	if status == "" {
		return store.Report{}, errors.New("invalid status: empty")
	}
	start, err := parseEpochMillis(req.StartTime, now)
	if err != nil {
		return store.Report{}, fmt.Errorf("invalid startTime: %w", err)
	}
	end, err := parseEpochMillis(req.EndTime, now)
	if err != nil {
		return store.Report{}, fmt.Errorf("invalid endTime: %w", err)
	}

	if math.IsNaN(req.Duration) || math.Abs(req.Duration) > maxReportMillis-minReportMillis {
		return store.Report{}, fmt.Errorf("invalid duration: %v out of range", req.Duration)
	}
	duration := int64(req.Duration)
	if duration == 0 {
		duration = end.Sub(start).Milliseconds()
	}

	report := store.Report{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		StartTime:   start,
		EndTime:     end,
		DurationMS:  duration,
		Environment: compactOr(req.Environment, "{}"),
		Steps:       compactOr(req.Steps, "[]"),
		RawData:     compactOr(body, "{}"),
	}
	if req.Tester != nil {
		report.AuthorName, report.AuthorEmail = req.Tester.Author, req.Tester.Email
	}

	var steps []map[string]any
	if err := json.Unmarshal(req.Steps, &steps); err == nil {
		var shots []screenshot
		for _, st := range steps {
			if !truthy(st["screenshot"]) {
				continue
			}
			shots = append(shots, screenshot{Name: st["name"], Status: st["status"], Timestamp: st["timestamp"], Screenshot: st["screenshot"]})
		}
		if len(shots) > 0 {
			data, err := json.Marshal(shots)
			if err != nil {
				return store.Report{}, fmt.Errorf("failed to encode screenshots: %w", err)
			}
			s := string(data)
			report.Screenshots = &s
		}
	}
	return report, nil
}

// epoch millisecond bounds of accepted report times, years 0 to 9999
var (
	minReportMillis = float64(time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli())
	maxReportMillis = float64(time.Date(9999, 12, 31, 23, 59, 59, 999e6, time.UTC).UnixMilli())
)

// parseEpochMillis parses a number or numeric string of epoch milliseconds.
// Missing, null, zero and empty values give def. Non-finite values and times outside
// years 0..9999 are rejected.
func parseEpochMillis(raw json.RawMessage, def time.Time) (time.Time, error) {
	var v any
	if len(raw) == 0 {
		return def, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return time.Time{}, err
	}
	var ms float64
	switch val := v.(type) {
	case nil:
		return def, nil
	case float64:
		ms = val
	case string:
		if val == "" {
			return def, nil
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("not a number: %q", val)
		}
		ms = f
	default:
		return time.Time{}, fmt.Errorf("unsupported value %s", string(raw))
	}
	if ms == 0 {
		return def, nil
	}
	if math.IsNaN(ms) || ms < minReportMillis || ms > maxReportMillis {
		return time.Time{}, fmt.Errorf("%s out of range", string(raw))
	}
	return time.UnixMilli(int64(ms)).UTC(), nil
}

// compactOr returns raw JSON compacted, or def for missing and null values.
func compactOr(raw []byte, def string) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return def
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return def
	}
	return buf.String()
}

// truthy reports whether a decoded JSON value is set, as in a boolean context.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	default:
		return true
	}
}

// handleListReports returns report summaries of the current user, newest first.
// GET /api/tests
func (h *Handler) handleListReports(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	reports, err := h.reports.ListReports(r.Context(), id.UserID)
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "An error occurred while fetching test reports")
		return
	}
	rest.RenderJSON(w, rest.JSON{"reports": reports})
}

// ReportDetails is the detailed view of a report.
type ReportDetails struct {
	ID           string           `json:"id"`
	TestCaseName string           `json:"testCaseName"`
	Description  string           `json:"description"`
	Status       string           `json:"status"`
	StartTime    time.Time        `json:"startTime"`
	EndTime      time.Time        `json:"endTime"`
	Duration     int64            `json:"duration"`
	AuthorName   string           `json:"authorName"`
	AuthorEmail  string           `json:"authorEmail"`
	Tester       *Tester          `json:"tester"`
	Environment  any              `json:"environment"`
	Steps        []map[string]any `json:"steps"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// Tester is the author of a test run.
type Tester struct {
	Author string `json:"author"`
	Email  string `json:"email"`
}

// DetailsFromReport builds the detailed view, merging screenshots back into their steps.
func DetailsFromReport(rep store.Report) ReportDetails {
	d := ReportDetails{
		ID:           rep.ID,
		TestCaseName: rep.Name,
		Description:  rep.Description,
		Status:       rep.Status,
		StartTime:    rep.StartTime,
		EndTime:      rep.EndTime,
		Duration:     rep.DurationMS,
		AuthorName:   rep.AuthorName,
		AuthorEmail:  rep.AuthorEmail,
		Environment:  map[string]any{},
		Steps:        []map[string]any{},
		CreatedAt:    rep.CreatedAt,
	}
	if d.Duration == 0 {
		d.Duration = rep.EndTime.Sub(rep.StartTime).Milliseconds()
	}
	if rep.AuthorName != "" || rep.AuthorEmail != "" {
		d.Tester = &Tester{Author: rep.AuthorName, Email: rep.AuthorEmail}
	}
	if d.Description == "" {
		var raw struct {
			Description string `json:"description"`
		}
		if err := json.Unmarshal([]byte(rep.RawData), &raw); err == nil {
			d.Description = raw.Description
		}
	}

	var env any
	if err := json.Unmarshal([]byte(rep.Environment), &env); err == nil && env != nil {
		d.Environment = env
	}

	var steps []map[string]any
	if err := json.Unmarshal([]byte(rep.Steps), &steps); err == nil && steps != nil {
		d.Steps = steps
	}

	var shots []screenshot
	if rep.Screenshots != nil {
		if err := json.Unmarshal([]byte(*rep.Screenshots), &shots); err != nil {
			log.Printf("[WARN] invalid screenshots of report %s: %v", rep.ID, err)
		}
	}
	for _, step := range d.Steps {
		for _, shot := range shots {
			if reflect.DeepEqual(shot.Name, step["name"]) && reflect.DeepEqual(shot.Timestamp, step["timestamp"]) && truthy(shot.Screenshot) {
				step["screenshot"] = shot.Screenshot
				break
			}
		}
	}
	return d
}

// handleGetReport returns a report of the current user.
// GET /api/tests/{id}
func (h *Handler) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	rep, err := h.reports.GetReport(r.Context(), r.PathValue("id"), id.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			rest.SendErrorJSON(w, r, log.Default(), http.StatusNotFound, err, "Report not found")
			return
		}
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "An error occurred while fetching the test report")
		return
	}
	rest.RenderJSON(w, rest.JSON{"report": DetailsFromReport(rep)})
}
