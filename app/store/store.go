// Package store provides SQLite and PostgreSQL persistence for users, sessions,
// API tokens and test reports.
package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a record is not found in the store.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when an insert or update violates a unique constraint.
var ErrConflict = errors.New("conflict")

// DBType identifies the database backend.
type DBType int

// supported database backends
const (
	DBTypeSQLite DBType = iota
	DBTypePostgres
)

// User is a registered account.
type User struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// APIToken is the single live bearer credential of a user.
type APIToken struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Token     string    `db:"token"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Session is a server-side record of an interactive login.
type Session struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

// Report is a submitted test-run report.
// Environment, Steps, Screenshots and RawData hold JSON documents as text.
type Report struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	StartTime   time.Time `db:"start_time"`
	EndTime     time.Time `db:"end_time"`
	DurationMS  int64     `db:"duration_ms"`
	AuthorName  string    `db:"author_name"`
	AuthorEmail string    `db:"author_email"`
	Environment string    `db:"environment"`
	Steps       string    `db:"steps"`
	Screenshots *string   `db:"screenshots"`
	RawData     string    `db:"raw_data"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// ReportSummary is the list view of a report, without the JSON payloads.
type ReportSummary struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Status      string    `db:"status" json:"status"`
	StartTime   time.Time `db:"start_time" json:"startTime"`
	EndTime     time.Time `db:"end_time" json:"endTime"`
	DurationMS  int64     `db:"duration_ms" json:"duration"`
	AuthorName  string    `db:"author_name" json:"authorName"`
	AuthorEmail string    `db:"author_email" json:"authorEmail"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
