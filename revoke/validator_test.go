package revoke_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrymomot/jwtkit"
	"github.com/dmitrymomot/jwtkit/revoke"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore reports every lookup as failed.
type failingStore struct {
	err error
}

func (f failingStore) Add(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return f.err
}

func (f failingStore) Contains(ctx context.Context, tokenID string) (bool, error) {
	return false, f.err
}

func (f failingStore) Close() error { return nil }

func TestValidator(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	req := httptest.NewRequest("GET", "/", nil)

	t.Run("claims without jti pass", func(t *testing.T) {
		t.Parallel()

		store := revoke.NewMemoryStore(0)
		defer store.Close()

		validator := revoke.Validator(store)
		assert.NoError(t, validator(req, jwtkit.MapClaims{"sub": "user-123"}))
	})

	t.Run("empty jti passes", func(t *testing.T) {
		t.Parallel()

		store := revoke.NewMemoryStore(0)
		defer store.Close()

		validator := revoke.Validator(store)
		assert.NoError(t, validator(req, jwtkit.MapClaims{"jti": ""}))
	})

	t.Run("non string jti passes", func(t *testing.T) {
		t.Parallel()

		store := revoke.NewMemoryStore(0)
		defer store.Close()

		validator := revoke.Validator(store)
		assert.NoError(t, validator(req, jwtkit.MapClaims{"jti": 42.0}))
	})

	t.Run("unrevoked token passes", func(t *testing.T) {
		t.Parallel()

		store := revoke.NewMemoryStore(0)
		defer store.Close()

		validator := revoke.Validator(store)
		assert.NoError(t, validator(req, jwtkit.MapClaims{"jti": "token-1"}))
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		t.Parallel()

		store := revoke.NewMemoryStore(0)
		defer store.Close()

		require.NoError(t, store.Add(ctx, "token-1", time.Now().Add(time.Hour)))

		validator := revoke.Validator(store)
		err := validator(req, jwtkit.MapClaims{"jti": "token-1"})
		require.ErrorIs(t, err, revoke.ErrTokenRevoked)
	})

	t.Run("store errors propagate", func(t *testing.T) {
		t.Parallel()

		storeErr := errors.New("store unavailable")
		validator := revoke.Validator(failingStore{err: storeErr})

		err := validator(req, jwtkit.MapClaims{"jti": "token-1"})
		require.ErrorIs(t, err, storeErr)
	})
}

// The validator wired into the jwtkit middleware turns revocation into 401s.
func TestValidatorWithMiddleware(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	service, err := jwtkit.New(jwtkit.WithSigningKeyString("test-secret"))
	require.NoError(t, err)

	store := revoke.NewMemoryStore(0)
	defer store.Close()

	middleware := jwtkit.MiddlewareWithConfig(jwtkit.MiddlewareConfig{
		Service:   service,
		Validator: revoke.Validator(store),
	})

	server := httptest.NewServer(middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))
	defer server.Close()

	claims := jwtkit.NewStandardClaims("user-123")
	claims.ExpiresAt = time.Now().Add(time.Hour).Unix()

	token, err := service.Encode(claims)
	require.NoError(t, err)

	do := func() int {
		req, err := http.NewRequest("GET", server.URL, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		return resp.StatusCode
	}

	// Accepted while the token is not revoked.
	assert.Equal(t, http.StatusOK, do())

	// Revoke it and the same token is turned away.
	require.NoError(t, store.Add(ctx, claims.ID, time.Unix(claims.ExpiresAt, 0)))
	assert.Equal(t, http.StatusUnauthorized, do())
}
