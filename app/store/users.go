package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateUser inserts a new user. ID and CreatedAt are assigned when empty.
// Returns ErrConflict if the username or email is already taken.
func (s *Store) CreateUser(ctx context.Context, u User) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	query := s.adoptQuery(`INSERT INTO users (id, username, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`)
	if _, err := s.db.ExecContext(ctx, query, u.ID, u.Username, u.Email, u.PasswordHash, u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return User{}, fmt.Errorf("user %q: %w", u.Email, ErrConflict)
		}
		return User{}, fmt.Errorf("failed to create user %q: %w", u.Email, err)
	}
	return u, nil
}

// UserByEmail returns the user with the given email (case-insensitive).
// Returns ErrNotFound if there is no such user.
func (s *Store) UserByEmail(ctx context.Context, email string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var u User
	query := s.adoptQuery(`SELECT id, username, email, password_hash, created_at FROM users WHERE email = ?`)
	err := s.db.GetContext(ctx, &u, query, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// UserByID returns the user with the given id.
// Returns ErrNotFound if there is no such user.
func (s *Store) UserByID(ctx context.Context, id string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var u User
	query := s.adoptQuery(`SELECT id, username, email, password_hash, created_at FROM users WHERE id = ?`)
	err := s.db.GetContext(ctx, &u, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("failed to get user %q: %w", id, err)
	}
	return u, nil
}
