// Package token implements the bearer token service. Every user has at most one live API token,
// an opaque random value presented by test runners in the Authorization header.
package token

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/go-pkgz/lgr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/qaflow/qaflow/app/store"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Prefix marks values issued by this service.
const Prefix = "qaf_"

const (
	tokenBytes          = 32 // 256 bits of entropy
	maxGenerateAttempts = 16
	tracerName          = "github.com/qaflow/qaflow/app/token"
)

var (
	// ErrNoToken is returned by Revoke when the user has no token.
	ErrNoToken = errors.New("no api token")
	// ErrGenerate is returned when no unique value was found within the attempt limit.
	ErrGenerate = errors.New("failed to generate unique api token")
)

// Store is the token persistence used by Service.
type Store interface {
	TokenByUser(ctx context.Context, userID string) (store.APIToken, error)
	TokenByValue(ctx context.Context, value string) (store.APIToken, error)
	CreateToken(ctx context.Context, userID, value string) (store.APIToken, error)
	ReplaceToken(ctx context.Context, userID, value string) (store.APIToken, error)
	DeleteToken(ctx context.Context, userID string) error
}

// Recorder counts token operations and verification results.
type Recorder interface {
	TokenOperation(op string)
	TokenVerified(result string)
}

// Service issues, regenerates, revokes and verifies API tokens.
type Service struct {
	store  Store
	rec    Recorder
	tracer trace.Tracer
	random io.Reader
}

// Option configures Service.
type Option func(s *Service)

// WithRecorder sets the metrics recorder.
func WithRecorder(rec Recorder) Option {
	return func(s *Service) { s.rec = rec }
}

// WithTracerProvider sets the tracer provider, the global one is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) { s.tracer = tp.Tracer(tracerName) }
}

// WithRandom sets the source of random bytes, crypto/rand by default.
func WithRandom(r io.Reader) Option {
	return func(s *Service) { s.random = r }
}

// NewService makes a token service on top of st.
func NewService(st Store, opts ...Option) *Service {
	s := &Service{store: st, tracer: otel.Tracer(tracerName), random: rand.Reader}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue creates a token for a user without one.
// Returns an error wrapping store.ErrConflict if the user already has a token.
func (s *Service) Issue(ctx context.Context, userID string) (res string, err error) {
	ctx, span := s.tracer.Start(ctx, "token.issue", trace.WithAttributes(attribute.String("user.id", userID)))
	defer func() { endSpan(span, err) }()
	return s.issue(ctx, userID)
}

func (s *Service) issue(ctx context.Context, userID string) (string, error) {
	value, err := s.generate(ctx)
	if err != nil {
		return "", err
	}
	if _, err := s.store.CreateToken(ctx, userID, value); err != nil {
		return "", fmt.Errorf("failed to issue token for user %q: %w", userID, err)
	}
	s.operation("issue")
	log.Printf("[INFO] issued api token %s for user %q", maskToken(value), userID)
	return value, nil
}

// GetOrIssue returns the existing token of the user unchanged or issues a new one.
// Concurrent callers for the same user get the same value.
func (s *Service) GetOrIssue(ctx context.Context, userID string) (res string, err error) {
	ctx, span := s.tracer.Start(ctx, "token.get_or_issue", trace.WithAttributes(attribute.String("user.id", userID)))
	defer func() { endSpan(span, err) }()

	t, err := s.store.TokenByUser(ctx, userID)
	if err == nil {
		span.SetAttributes(attribute.Bool("token.issued", false))
		return t.Token, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("failed to get token for user %q: %w", userID, err)
	}

	value, err := s.issue(ctx, userID)
	if errors.Is(err, store.ErrConflict) {
		// lost the race to a concurrent issue, return the winner
		t, rerr := s.store.TokenByUser(ctx, userID)
		if rerr != nil {
			return "", fmt.Errorf("failed to re-read token for user %q: %w", userID, rerr)
		}
		return t.Token, nil
	}
	if err != nil {
		return "", err
	}
	span.SetAttributes(attribute.Bool("token.issued", true))
	return value, nil
}

// Regenerate replaces the token of the user with a new value, issuing one if the user had none.
// The previous value stops verifying once Regenerate returns.
func (s *Service) Regenerate(ctx context.Context, userID string) (res string, err error) {
	ctx, span := s.tracer.Start(ctx, "token.regenerate", trace.WithAttributes(attribute.String("user.id", userID)))
	defer func() { endSpan(span, err) }()

	value, err := s.generate(ctx)
	if err != nil {
		return "", err
	}
	if _, err := s.store.ReplaceToken(ctx, userID, value); err != nil {
		return "", fmt.Errorf("failed to regenerate token for user %q: %w", userID, err)
	}
	s.operation("regenerate")
	log.Printf("[INFO] regenerated api token %s for user %q", maskToken(value), userID)
	return value, nil
}

// Revoke deletes the token of the user without issuing a new one.
// Returns ErrNoToken if the user has no token.
func (s *Service) Revoke(ctx context.Context, userID string) (err error) {
	ctx, span := s.tracer.Start(ctx, "token.revoke", trace.WithAttributes(attribute.String("user.id", userID)))
	defer func() { endSpan(span, err) }()

	if err := s.store.DeleteToken(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNoToken
		}
		return fmt.Errorf("failed to revoke token for user %q: %w", userID, err)
	}
	s.operation("revoke")
	log.Printf("[INFO] revoked api token for user %q", userID)
	return nil
}

// Verify resolves a presented token to its owner. An optional "Bearer " prefix (any case) and
// surrounding whitespace are ignored. Unknown and empty values return ok false with nil error,
// an error is returned only when the lookup itself failed.
func (s *Service) Verify(ctx context.Context, presented string) (userID string, ok bool, err error) {
	ctx, span := s.tracer.Start(ctx, "token.verify")
	defer func() { endSpan(span, err) }()

	value := normalize(presented)
	if value == "" {
		s.verified("miss")
		return "", false, nil
	}

	t, err := s.store.TokenByValue(ctx, value)
	if errors.Is(err, store.ErrNotFound) {
		s.verified("miss")
		log.Printf("[DEBUG] unknown api token %s", maskToken(value))
		return "", false, nil
	}
	if err != nil {
		s.verified("error")
		return "", false, fmt.Errorf("failed to verify token: %w", err)
	}
	s.verified("hit")
	span.SetAttributes(attribute.String("user.id", t.UserID))
	return t.UserID, true, nil
}

// generate makes a random value not used by any stored token.
func (s *Service) generate(ctx context.Context) (string, error) {
	buf := make([]byte, tokenBytes)
	for range maxGenerateAttempts {
		if _, err := io.ReadFull(s.random, buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		value := Prefix + hex.EncodeToString(buf)
		_, err := s.store.TokenByValue(ctx, value)
		if errors.Is(err, store.ErrNotFound) {
			return value, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check token uniqueness: %w", err)
		}
		log.Printf("[WARN] generated api token %s already exists, retrying", maskToken(value))
	}
	return "", ErrGenerate
}

func (s *Service) operation(op string) {
	if s.rec != nil {
		s.rec.TokenOperation(op)
	}
}

func (s *Service) verified(result string) {
	if s.rec != nil {
		s.rec.TokenVerified(result)
	}
}

// ParseBearer extracts the token from an Authorization header value.
// Returns false unless the header uses the Bearer scheme with a non-empty token.
func ParseBearer(header string) (string, bool) {
	scheme, value, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

// normalize strips an optional bearer scheme and whitespace.
func normalize(presented string) string {
	if v, ok := ParseBearer(presented); ok {
		return v
	}
	v := strings.TrimSpace(presented)
	if strings.EqualFold(v, "bearer") {
		return ""
	}
	return v
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// maskToken returns a masked version of token for safe logging (shows first 4 chars).
func maskToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return token[:4] + "****"
}
