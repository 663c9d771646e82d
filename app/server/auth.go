package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/qaflow/qaflow/app/gate"
	"github.com/qaflow/qaflow/app/server/internal"
	"github.com/qaflow/qaflow/app/store"
	"github.com/qaflow/qaflow/app/validator"
)

//go:generate moq -out mocks/authstore.go -pkg mocks -skip-ensure -fmt goimports . AuthStore

// defaultSessionCleanupInterval is the default interval for background cleanup of expired sessions.
const defaultSessionCleanupInterval = 1 * time.Hour

// bcryptCost is the cost used for new password hashes.
const bcryptCost = 10

// sentinel errors shared with the api and web handlers
var (
	ErrInvalidCredentials = internal.ErrInvalidCredentials
	ErrUserExists         = internal.ErrUserExists
)

// dummyHash is compared against when the user does not exist, so both paths take similar time.
var dummyHash = sync.OnceValue(func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("qaflow-dummy-password"), bcryptCost)
	if err != nil {
		log.Printf("[WARN] failed to make dummy hash: %v", err)
	}
	return h
})

// AuthStore is the persistence used by Auth.
// Defined consumer-side per Go idiom.
type AuthStore interface {
	CreateUser(ctx context.Context, u store.User) (store.User, error)
	UserByEmail(ctx context.Context, email string) (store.User, error)
	CreateSession(ctx context.Context, id, userID string, expiresAt time.Time) error
	GetSession(ctx context.Context, id string) (store.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

// TokenIssuer provides the API token of a newly registered user.
type TokenIssuer interface {
	GetOrIssue(ctx context.Context, userID string) (string, error)
}

// RegisterRequest is the sign-up form.
type RegisterRequest = internal.RegisterRequest

// LoginRequest is the sign-in form.
type LoginRequest = internal.LoginRequest

// sessionClaims are carried by the session cookie. ID (jti) is the session id.
type sessionClaims struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthParams defines Auth dependencies and settings.
type AuthParams struct {
	Store           AuthStore
	Tokens          TokenIssuer
	Validator       *validator.Service
	Secret          string        // HMAC key for session cookies
	LoginTTL        time.Duration // session lifetime, 30 days by default
	CleanupInterval time.Duration // expired sessions cleanup, 1h by default
}

// Auth handles user registration, credential checks and cookie sessions.
// It resolves the session identity for the access gate.
type Auth struct {
	store           AuthStore
	tokens          TokenIssuer
	validator       *validator.Service
	secret          []byte
	loginTTL        time.Duration
	cleanupInterval time.Duration
}

// NewAuth creates a new Auth instance.
func NewAuth(p AuthParams) (*Auth, error) {
	if p.Store == nil {
		return nil, errors.New("auth store is required")
	}
	if len(p.Secret) < 16 {
		return nil, errors.New("auth secret must be at least 16 characters")
	}
	if p.LoginTTL == 0 {
		p.LoginTTL = 30 * 24 * time.Hour // 30 days
	}
	if p.CleanupInterval == 0 {
		p.CleanupInterval = defaultSessionCleanupInterval
	}
	if p.Validator == nil {
		p.Validator = validator.NewService()
	}
	return &Auth{
		store:           p.Store,
		tokens:          p.Tokens,
		validator:       p.Validator,
		secret:          []byte(p.Secret),
		loginTTL:        p.LoginTTL,
		cleanupInterval: p.CleanupInterval,
	}, nil
}

// LoginTTL returns the session lifetime.
func (a *Auth) LoginTTL() time.Duration {
	return a.loginTTL
}

// Register validates the request, creates the user and issues the user's API token.
// Returns *validator.ValidationError for invalid input and ErrUserExists on duplicates.
func (a *Auth) Register(ctx context.Context, req RegisterRequest) (store.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := a.validator.Struct(req); err != nil {
		return store.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return store.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.store.CreateUser(ctx, store.User{Username: req.Username, Email: req.Email, PasswordHash: string(hash)})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return store.User{}, ErrUserExists
		}
		return store.User{}, fmt.Errorf("failed to register user: %w", err)
	}
	log.Printf("[INFO] registered user %q (%s)", user.Username, user.ID)

	if a.tokens != nil {
		// token can still be obtained later through get-or-issue
		if _, err := a.tokens.GetOrIssue(ctx, user.ID); err != nil {
			log.Printf("[WARN] failed to issue api token for new user %s: %v", user.ID, err)
		}
	}
	return user, nil
}

// Login checks credentials and returns the user. Returns ErrInvalidCredentials on mismatch.
func (a *Auth) Login(ctx context.Context, req LoginRequest) (store.User, error) {
	if err := a.validator.Struct(req); err != nil {
		return store.User{}, err
	}

	user, err := a.store.UserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return store.User{}, fmt.Errorf("failed to find user: %w", err)
	}
	if errors.Is(err, store.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(req.Password))
		return store.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		log.Printf("[INFO] failed login for user %s", user.ID)
		return store.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// CreateSession stores a new session for user and returns the signed cookie value.
func (a *Auth) CreateSession(ctx context.Context, user store.User) (string, error) {
	now := time.Now()
	sessionID := uuid.NewString()
	expiresAt := now.Add(a.loginTTL)

	if err := a.store.CreateSession(ctx, sessionID, user.ID, expiresAt); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	claims := sessionClaims{
		Email:    user.Email,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

// parseSession validates the cookie signature and expiry.
func (a *Auth) parseSession(value string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(value, claims, func(*jwt.Token) (any, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("invalid session cookie: %w", err)
	}
	if claims.ID == "" || claims.Subject == "" {
		return nil, errors.New("invalid session cookie: missing session or subject")
	}
	return claims, nil
}

// SessionIdentity resolves a session cookie value. The session must still exist in the store,
// so an invalidated session stops resolving even while its cookie has not expired.
func (a *Auth) SessionIdentity(ctx context.Context, value string) (gate.Identity, bool) {
	claims, err := a.parseSession(value)
	if err != nil {
		log.Printf("[DEBUG] %v", err)
		return gate.Identity{}, false
	}
	sess, err := a.store.GetSession(ctx, claims.ID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("[WARN] failed to get session: %v", err)
		}
		return gate.Identity{}, false
	}
	if sess.UserID != claims.Subject {
		return gate.Identity{}, false
	}
	return gate.Identity{UserID: claims.Subject, Email: claims.Email, Username: claims.Username}, true
}

// Identity implements gate.IdentityResolver using the session cookie.
func (a *Auth) Identity(r *http.Request) (gate.Identity, bool) {
	for _, name := range internal.SessionCookieNames {
		cookie, err := r.Cookie(name)
		if err != nil {
			continue
		}
		if id, ok := a.SessionIdentity(r.Context(), cookie.Value); ok {
			return id, true
		}
	}
	return gate.Identity{}, false
}

// InvalidateSession removes the session referenced by a cookie value.
func (a *Auth) InvalidateSession(ctx context.Context, value string) {
	claims, err := a.parseSession(value)
	if err != nil {
		return
	}
	if err := a.store.DeleteSession(ctx, claims.ID); err != nil {
		log.Printf("[WARN] failed to delete session: %v", err)
	}
}

// StartCleanup starts background cleanup of expired sessions.
// Runs periodically until context is canceled. Default interval is 1 hour.
func (a *Auth) StartCleanup(ctx context.Context) {
	interval := a.cleanupInterval
	if interval == 0 {
		interval = defaultSessionCleanupInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Printf("[INFO] session cleanup stopped")
				return
			case <-ticker.C:
				deleted, err := a.store.DeleteExpiredSessions(ctx)
				if err != nil {
					log.Printf("[WARN] failed to cleanup expired sessions: %v", err)
					continue
				}
				if deleted > 0 {
					log.Printf("[INFO] cleaned up %d expired sessions", deleted)
				}
			}
		}
	}()

	log.Printf("[INFO] session cleanup started (interval: %s)", interval)
}
