package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const reportColumns = `id, user_id, name, description, status, start_time, end_time, duration_ms,
	author_name, author_email, environment, steps, screenshots, raw_data, created_at, updated_at`

// CreateReport inserts a test report. ID and timestamps are assigned by the store.
func (s *Store) CreateReport(ctx context.Context, r Report) (Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	r.ID = uuid.NewString()
	r.CreatedAt, r.UpdatedAt = now, now
	if r.Environment == "" {
		r.Environment = "{}"
	}
	if r.Steps == "" {
		r.Steps = "[]"
	}
	if r.RawData == "" {
		r.RawData = "{}"
	}

	query := s.adoptQuery(`INSERT INTO test_reports (` + reportColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := s.db.ExecContext(ctx, query, r.ID, r.UserID, r.Name, r.Description, r.Status,
		r.StartTime.UTC(), r.EndTime.UTC(), r.DurationMS, r.AuthorName, r.AuthorEmail,
		r.Environment, r.Steps, r.Screenshots, r.RawData, r.CreatedAt, r.UpdatedAt)
	if err != nil {
		return Report{}, fmt.Errorf("failed to create report %q: %w", r.Name, err)
	}
	return r, nil
}

// GetReport returns the report with the given id if it belongs to userID.
// Returns ErrNotFound if the report does not exist or is owned by another user.
func (s *Store) GetReport(ctx context.Context, id, userID string) (Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var r Report
	query := s.adoptQuery(`SELECT ` + reportColumns + ` FROM test_reports WHERE id = ? AND user_id = ?`)
	err := s.db.GetContext(ctx, &r, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return Report{}, ErrNotFound
	}
	if err != nil {
		return Report{}, fmt.Errorf("failed to get report %q: %w", id, err)
	}
	return r, nil
}

// ListReports returns summaries of all reports owned by userID, newest first.
func (s *Store) ListReports(ctx context.Context, userID string) ([]ReportSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := []ReportSummary{}
	query := s.adoptQuery(`SELECT id, name, description, status, start_time, end_time, duration_ms,
		author_name, author_email, created_at, updated_at
		FROM test_reports WHERE user_id = ? ORDER BY created_at DESC`)
	if err := s.db.SelectContext(ctx, &reports, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list reports for user %q: %w", userID, err)
	}
	return reports, nil
}

// CountReports returns the number of reports owned by userID.
// An empty status counts all reports, otherwise only those with the given status.
func (s *Store) CountReports(ctx context.Context, userID, status string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	var err error
	if status == "" {
		query := s.adoptQuery(`SELECT COUNT(*) FROM test_reports WHERE user_id = ?`)
		err = s.db.GetContext(ctx, &n, query, userID)
	} else {
		query := s.adoptQuery(`SELECT COUNT(*) FROM test_reports WHERE user_id = ? AND status = ?`)
		err = s.db.GetContext(ctx, &n, query, userID, status)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count reports for user %q: %w", userID, err)
	}
	return n, nil
}
