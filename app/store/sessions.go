package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CreateSession stores a new session for userID.
func (s *Store) CreateSession(ctx context.Context, id, userID string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := s.adoptQuery(`INSERT INTO sessions (id, user_id, expires_at, created_at) VALUES (?, ?, ?, ?)`)
	if _, err := s.db.ExecContext(ctx, query, id, userID, expiresAt.UTC(), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetSession returns an unexpired session by id.
// Returns ErrNotFound if the session does not exist or has expired.
func (s *Store) GetSession(ctx context.Context, id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sess Session
	query := s.adoptQuery(`SELECT id, user_id, expires_at, created_at FROM sessions WHERE id = ? AND expires_at > ?`)
	err := s.db.GetContext(ctx, &sess, query, id, time.Now().UTC())
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}

// DeleteSession removes a session. Missing sessions are not an error.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := s.adoptQuery(`DELETE FROM sessions WHERE id = ?`)
	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteSessionsByUser removes all sessions of userID.
func (s *Store) DeleteSessionsByUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := s.adoptQuery(`DELETE FROM sessions WHERE user_id = ?`)
	if _, err := s.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete sessions for user %q: %w", userID, err)
	}
	return nil
}

// DeleteExpiredSessions removes expired sessions and returns how many were deleted.
func (s *Store) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := s.adoptQuery(`DELETE FROM sessions WHERE expires_at <= ?`)
	result, err := s.db.ExecContext(ctx, query, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check affected rows: %w", err)
	}
	return rows, nil
}
