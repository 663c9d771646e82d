package token

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/qaflow/qaflow/app/store"
	"github.com/qaflow/qaflow/app/token/mocks"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.New(context.Background(), filepath.Join(t.TempDir(), "tokens.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func createUser(t *testing.T, st *store.Store, name string) string {
	t.Helper()
	u, err := st.CreateUser(context.Background(), store.User{Username: name, Email: name + "@example.com", PasswordHash: "hash"})
	require.NoError(t, err)
	return u.ID
}

type countingRecorder struct {
	mu       sync.Mutex
	ops      map[string]int
	verifies map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{ops: map[string]int{}, verifies: map[string]int{}}
}

func (c *countingRecorder) TokenOperation(op string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops[op]++
}

func (c *countingRecorder) TokenVerified(result string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.verifies[result]++
}

func TestService_IssueAndVerify(t *testing.T) {
	st := newTestStore(t)
	rec := newCountingRecorder()
	svc := NewService(st, WithRecorder(rec))
	ctx := context.Background()
	userID := createUser(t, st, "alice")

	value, err := svc.Issue(ctx, userID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(value, Prefix))
	assert.Len(t, value, len(Prefix)+64)

	for _, presented := range []string{value, "Bearer " + value, "bearer " + value, "  BEARER   " + value + "  ", " " + value + "\n"} {
		got, ok, err := svc.Verify(ctx, presented)
		require.NoError(t, err, presented)
		assert.True(t, ok, presented)
		assert.Equal(t, userID, got, presented)
	}

	_, err = svc.Issue(ctx, userID)
	require.ErrorIs(t, err, store.ErrConflict, "second issue for the same user")

	assert.Equal(t, 1, rec.ops["issue"])
	assert.Equal(t, 5, rec.verifies["hit"])
}

func TestService_VerifyMiss(t *testing.T) {
	st := newTestStore(t)
	rec := newCountingRecorder()
	svc := NewService(st, WithRecorder(rec))
	ctx := context.Background()
	userID := createUser(t, st, "bob")
	value, err := svc.Issue(ctx, userID)
	require.NoError(t, err)

	for _, presented := range []string{"", "   ", "Bearer", "Bearer ", "qaf_unknown", "Bearer qaf_unknown",
		strings.ToUpper(value), value[:len(value)-1], "Token " + value} {
		got, ok, err := svc.Verify(ctx, presented)
		require.NoError(t, err, presented)
		assert.False(t, ok, presented)
		assert.Empty(t, got, presented)
	}
	assert.Equal(t, 9, rec.verifies["miss"])
}

func TestService_GetOrIssue(t *testing.T) {
	st := newTestStore(t)
	svc := NewService(st)
	ctx := context.Background()
	userID := createUser(t, st, "carol")

	first, err := svc.GetOrIssue(ctx, userID)
	require.NoError(t, err)
	second, err := svc.GetOrIssue(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, first, second, "get-or-issue must be idempotent")

	other := createUser(t, st, "dave")
	otherToken, err := svc.GetOrIssue(ctx, other)
	require.NoError(t, err)
	assert.NotEqual(t, first, otherToken)
}

func TestService_GetOrIssueConcurrent(t *testing.T) {
	st := newTestStore(t)
	svc := NewService(st)
	ctx := context.Background()
	userID := createUser(t, st, "erin")

	const workers = 16
	results := make([]string, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = svc.GetOrIssue(ctx, userID)
		}()
	}
	wg.Wait()

	for i := range workers {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i])
	}
}

func TestService_Regenerate(t *testing.T) {
	st := newTestStore(t)
	rec := newCountingRecorder()
	svc := NewService(st, WithRecorder(rec))
	ctx := context.Background()
	userID := createUser(t, st, "frank")

	t1, err := svc.GetOrIssue(ctx, userID)
	require.NoError(t, err)
	before, err := st.TokenByUser(ctx, userID)
	require.NoError(t, err)

	t2, err := svc.Regenerate(ctx, userID)
	require.NoError(t, err)
	assert.NotEqual(t, t1, t2)

	_, ok, err := svc.Verify(ctx, t1)
	require.NoError(t, err)
	assert.False(t, ok, "old token must stop verifying")

	got, ok, err := svc.Verify(ctx, "Bearer "+t2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, userID, got)

	after, err := st.TokenByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, before.ID, after.ID, "token record updated in place")

	current, err := svc.GetOrIssue(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, t2, current)
	assert.Equal(t, 1, rec.ops["regenerate"])
}

func TestService_RegenerateWithoutToken(t *testing.T) {
	st := newTestStore(t)
	svc := NewService(st)
	ctx := context.Background()
	userID := createUser(t, st, "grace")

	value, err := svc.Regenerate(ctx, userID)
	require.NoError(t, err)
	got, ok, err := svc.Verify(ctx, value)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, userID, got)
}

func TestService_Revoke(t *testing.T) {
	st := newTestStore(t)
	svc := NewService(st)
	ctx := context.Background()
	userID := createUser(t, st, "heidi")

	t1, err := svc.GetOrIssue(ctx, userID)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, userID))
	_, ok, err := svc.Verify(ctx, t1)
	require.NoError(t, err)
	assert.False(t, ok)

	err = svc.Revoke(ctx, userID)
	require.ErrorIs(t, err, ErrNoToken)

	t2, err := svc.GetOrIssue(ctx, userID)
	require.NoError(t, err)
	assert.NotEqual(t, t1, t2)
}

func TestService_Uniqueness(t *testing.T) {
	st := newTestStore(t)
	svc := NewService(st)
	ctx := context.Background()

	const users = 200
	seen := make(map[string]struct{}, users)
	for i := range users {
		userID := createUser(t, st, fmt.Sprintf("user%03d", i))
		value, err := svc.Issue(ctx, userID)
		require.NoError(t, err)
		_, dup := seen[value]
		require.False(t, dup, "duplicate token %s", value)
		seen[value] = struct{}{}
	}
	assert.Len(t, seen, users)
}

func TestService_GenerateRetriesOnCollision(t *testing.T) {
	// first two reads produce the same bytes as an existing token, third is fresh
	existing := Prefix + strings.Repeat("00", tokenBytes)
	random := bytes.NewReader(append(make([]byte, tokenBytes*2), bytes.Repeat([]byte{0xab}, tokenBytes)...))

	var created string
	ms := &mocks.StoreMock{
		TokenByValueFunc: func(_ context.Context, value string) (store.APIToken, error) {
			if value == existing {
				return store.APIToken{UserID: "other", Token: existing}, nil
			}
			return store.APIToken{}, store.ErrNotFound
		},
		CreateTokenFunc: func(_ context.Context, userID, value string) (store.APIToken, error) {
			created = value
			return store.APIToken{UserID: userID, Token: value}, nil
		},
	}
	svc := NewService(ms, WithRandom(random))

	value, err := svc.Issue(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, Prefix+strings.Repeat("ab", tokenBytes), value)
	assert.Equal(t, value, created)
	assert.Len(t, ms.TokenByValueCalls(), 3)
}

func TestService_GenerateGivesUp(t *testing.T) {
	ms := &mocks.StoreMock{
		TokenByValueFunc: func(_ context.Context, value string) (store.APIToken, error) {
			return store.APIToken{UserID: "other", Token: value}, nil
		},
	}
	svc := NewService(ms)

	_, err := svc.Issue(context.Background(), "u1")
	require.ErrorIs(t, err, ErrGenerate)
	assert.Len(t, ms.TokenByValueCalls(), maxGenerateAttempts)
	assert.Empty(t, ms.CreateTokenCalls())
}

func TestService_StorageErrors(t *testing.T) {
	errDB := errors.New("db is down")
	ms := &mocks.StoreMock{
		TokenByUserFunc: func(context.Context, string) (store.APIToken, error) {
			return store.APIToken{}, errDB
		},
		TokenByValueFunc: func(context.Context, string) (store.APIToken, error) {
			return store.APIToken{}, errDB
		},
		DeleteTokenFunc: func(context.Context, string) error { return errDB },
	}
	rec := newCountingRecorder()
	svc := NewService(ms, WithRecorder(rec))
	ctx := context.Background()

	_, err := svc.GetOrIssue(ctx, "u1")
	require.ErrorIs(t, err, errDB)

	_, err = svc.Issue(ctx, "u1")
	require.ErrorIs(t, err, errDB)

	_, err = svc.Regenerate(ctx, "u1")
	require.ErrorIs(t, err, errDB)

	err = svc.Revoke(ctx, "u1")
	require.ErrorIs(t, err, errDB)
	assert.NotErrorIs(t, err, ErrNoToken)

	_, ok, err := svc.Verify(ctx, "Bearer qaf_abc")
	require.ErrorIs(t, err, errDB)
	assert.False(t, ok)
	assert.Equal(t, 1, rec.verifies["error"])
	assert.Len(t, ms.TokenByUserCalls(), 1, "storage errors are not retried")
}

func TestService_GetOrIssueLostRace(t *testing.T) {
	calls := 0
	ms := &mocks.StoreMock{
		TokenByUserFunc: func(_ context.Context, userID string) (store.APIToken, error) {
			calls++
			if calls == 1 {
				return store.APIToken{}, store.ErrNotFound
			}
			return store.APIToken{UserID: userID, Token: "qaf_winner"}, nil
		},
		TokenByValueFunc: func(context.Context, string) (store.APIToken, error) {
			return store.APIToken{}, store.ErrNotFound
		},
		CreateTokenFunc: func(context.Context, string, string) (store.APIToken, error) {
			return store.APIToken{}, fmt.Errorf("token for user: %w", store.ErrConflict)
		},
	}
	svc := NewService(ms)

	value, err := svc.GetOrIssue(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "qaf_winner", value)
	assert.Len(t, ms.TokenByUserCalls(), 2)
}

func TestService_Spans(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	st := newTestStore(t)
	svc := NewService(st, WithTracerProvider(tp))
	ctx := context.Background()
	userID := createUser(t, st, "ivan")

	value, err := svc.GetOrIssue(ctx, userID)
	require.NoError(t, err)
	_, _, err = svc.Verify(ctx, value)
	require.NoError(t, err)
	require.ErrorIs(t, svc.Revoke(ctx, "missing-user"), ErrNoToken)

	names := []string{}
	for _, s := range exp.GetSpans() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"token.get_or_issue", "token.verify", "token.revoke"}, names)
	assert.Equal(t, "Error", exp.GetSpans()[2].Status.Code.String())
}

func TestParseBearer(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"  Bearer   abc  ", "abc", true},
		{"Bearer", "", false},
		{"Bearer   ", "", false},
		{"Basic abc", "", false},
		{"abc", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseBearer(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.want, got, tt.header)
	}
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "qaf_****", maskToken("qaf_0123456789abcdef"))
	assert.Equal(t, "****", maskToken("qaf"))
	assert.Equal(t, "****", maskToken(""))
}
