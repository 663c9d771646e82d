package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const tokenColumns = `id, user_id, token, created_at, updated_at`

// TokenByUser returns the API token owned by userID.
// Returns ErrNotFound if the user has no token.
func (s *Store) TokenByUser(ctx context.Context, userID string) (APIToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var t APIToken
	query := s.adoptQuery(`SELECT ` + tokenColumns + ` FROM api_tokens WHERE user_id = ?`)
	err := s.db.GetContext(ctx, &t, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return APIToken{}, ErrNotFound
	}
	if err != nil {
		return APIToken{}, fmt.Errorf("failed to get token for user %q: %w", userID, err)
	}
	return t, nil
}

// TokenByValue returns the API token with the exact given value.
// Returns ErrNotFound if no token matches.
func (s *Store) TokenByValue(ctx context.Context, value string) (APIToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var t APIToken
	query := s.adoptQuery(`SELECT ` + tokenColumns + ` FROM api_tokens WHERE token = ?`)
	err := s.db.GetContext(ctx, &t, query, value)
	if errors.Is(err, sql.ErrNoRows) {
		return APIToken{}, ErrNotFound
	}
	if err != nil {
		return APIToken{}, fmt.Errorf("failed to get token by value: %w", err)
	}
	return t, nil
}

// CreateToken inserts a new token for userID.
// Returns ErrConflict if the user already has a token or the value is taken.
func (s *Store) CreateToken(ctx context.Context, userID, value string) (APIToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	t := APIToken{ID: uuid.NewString(), UserID: userID, Token: value, CreatedAt: now, UpdatedAt: now}
	query := s.adoptQuery(`INSERT INTO api_tokens (` + tokenColumns + `) VALUES (?, ?, ?, ?, ?)`)
	if _, err := s.db.ExecContext(ctx, query, t.ID, t.UserID, t.Token, t.CreatedAt, t.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return APIToken{}, fmt.Errorf("token for user %q: %w", userID, ErrConflict)
		}
		return APIToken{}, fmt.Errorf("failed to create token for user %q: %w", userID, err)
	}
	return t, nil
}

// ReplaceToken sets the token value of userID in a single statement.
// An existing record keeps its id and created_at, otherwise a new one is inserted.
// Returns ErrConflict if the value is already used by another user.
func (s *Store) ReplaceToken(ctx context.Context, userID, value string) (APIToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	query := s.adoptQuery(`
		INSERT INTO api_tokens (` + tokenColumns + `) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at`)
	if _, err := s.db.ExecContext(ctx, query, uuid.NewString(), userID, value, now, now); err != nil {
		if isUniqueViolation(err) {
			return APIToken{}, fmt.Errorf("token value for user %q: %w", userID, ErrConflict)
		}
		return APIToken{}, fmt.Errorf("failed to replace token for user %q: %w", userID, err)
	}

	var t APIToken
	sel := s.adoptQuery(`SELECT ` + tokenColumns + ` FROM api_tokens WHERE user_id = ?`)
	if err := s.db.GetContext(ctx, &t, sel, userID); err != nil {
		return APIToken{}, fmt.Errorf("failed to read replaced token for user %q: %w", userID, err)
	}
	return t, nil
}

// DeleteToken removes the token of userID.
// Returns ErrNotFound if the user has no token.
func (s *Store) DeleteToken(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := s.adoptQuery(`DELETE FROM api_tokens WHERE user_id = ?`)
	result, err := s.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete token for user %q: %w", userID, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// CountTokens returns the number of API tokens owned by userID.
func (s *Store) CountTokens(ctx context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	query := s.adoptQuery(`SELECT COUNT(*) FROM api_tokens WHERE user_id = ?`)
	if err := s.db.GetContext(ctx, &n, query, userID); err != nil {
		return 0, fmt.Errorf("failed to count tokens for user %q: %w", userID, err)
	}
	return n, nil
}
