package jwtkit_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrymomot/jwtkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	service, err := jwtkit.New(jwtkit.WithSigningKeyString("test-secret"))
	require.NoError(t, err)
	require.NotNil(t, service)

	testClaims := jwtkit.StandardClaims{
		ID:        "token-1",
		Subject:   "test-user",
		Issuer:    "test-issuer",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}

	token, err := service.Encode(testClaims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Handler that checks the middleware stored the claims in the context.
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := jwtkit.GetClaims[jwtkit.MapClaims](r.Context())
		if !ok {
			http.Error(w, "Claims not found in context", http.StatusInternalServerError)
			return
		}

		if claims["sub"] != testClaims.Subject {
			http.Error(w, "Subject mismatch", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("success"))
	})

	t.Run("DefaultTokenExtractor", func(t *testing.T) {
		middleware := jwtkit.Middleware(service)

		server := httptest.NewServer(middleware(testHandler))
		defer server.Close()

		req, err := http.NewRequest("GET", server.URL, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("MissingToken", func(t *testing.T) {
		middleware := jwtkit.Middleware(service)

		server := httptest.NewServer(middleware(testHandler))
		defer server.Close()

		resp, err := http.Get(server.URL)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		middleware := jwtkit.Middleware(service)

		server := httptest.NewServer(middleware(testHandler))
		defer server.Close()

		req, err := http.NewRequest("GET", server.URL, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer invalid-token")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("MalformedAuthorizationHeader", func(t *testing.T) {
		middleware := jwtkit.Middleware(service)

		server := httptest.NewServer(middleware(testHandler))
		defer server.Close()

		req, err := http.NewRequest("GET", server.URL, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("CookieTokenExtractor", func(t *testing.T) {
		middleware := jwtkit.MiddlewareWithConfig(jwtkit.MiddlewareConfig{
			Service:   service,
			Extractor: jwtkit.CookieTokenExtractor("jwt"),
		})

		server := httptest.NewServer(middleware(testHandler))
		defer server.Close()

		req, err := http.NewRequest("GET", server.URL, nil)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: token})

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("QueryTokenExtractor", func(t *testing.T) {
		middleware := jwtkit.MiddlewareWithConfig(jwtkit.MiddlewareConfig{
			Service:   service,
			Extractor: jwtkit.QueryTokenExtractor("token"),
		})

		server := httptest.NewServer(middleware(testHandler))
		defer server.Close()

		resp, err := http.Get(server.URL + "?token=" + token)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("HeaderTokenExtractor", func(t *testing.T) {
		middleware := jwtkit.MiddlewareWithConfig(jwtkit.MiddlewareConfig{
			Service:   service,
			Extractor: jwtkit.HeaderTokenExtractor("X-API-Token"),
		})

		server := httptest.NewServer(middleware(testHandler))
		defer server.Close()

		req, err := http.NewRequest("GET", server.URL, nil)
		require.NoError(t, err)
		req.Header.Set("X-API-Token", token)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("SkipMiddleware", func(t *testing.T) {
		middleware := jwtkit.MiddlewareWithConfig(jwtkit.MiddlewareConfig{
			Service: service,
			Skip: func(r *http.Request) bool {
				return r.URL.Path == "/health"
			},
		})

		skipHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("skipped"))
		})

		server := httptest.NewServer(middleware(skipHandler))
		defer server.Close()

		// The skipped path passes without a token.
		resp, err := http.Get(server.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		// Everything else still requires one.
		resp, err = http.Get(server.URL + "/other")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("ClaimsValidator", func(t *testing.T) {
		errBlocked := errors.New("subject blocked")

		middleware := jwtkit.MiddlewareWithConfig(jwtkit.MiddlewareConfig{
			Service: service,
			Validator: func(r *http.Request, claims jwtkit.MapClaims) error {
				if claims["sub"] == "blocked-user" {
					return errBlocked
				}
				return nil
			},
		})

		server := httptest.NewServer(middleware(testHandler))
		defer server.Close()

		// The regular token passes the validator.
		req, err := http.NewRequest("GET", server.URL, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		// A token for the blocked subject is rejected after verification.
		blockedToken, err := service.Encode(jwtkit.StandardClaims{Subject: "blocked-user"})
		require.NoError(t, err)

		req, err = http.NewRequest("GET", server.URL, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+blockedToken)

		resp, err = http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("CustomErrorHandler", func(t *testing.T) {
		middleware := jwtkit.MiddlewareWithConfig(jwtkit.MiddlewareConfig{
			Service: service,
			ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"authentication failed"}`))
			},
		})

		server := httptest.NewServer(middleware(testHandler))
		defer server.Close()

		resp, err := http.Get(server.URL)
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.JSONEq(t, `{"error":"authentication failed"}`, string(body))
	})

	t.Run("GetClaimsAs", func(t *testing.T) {
		typedHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var claims jwtkit.StandardClaims
			if err := jwtkit.GetClaimsAs(r.Context(), &claims); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			if claims.Subject != testClaims.Subject {
				http.Error(w, "Subject mismatch", http.StatusInternalServerError)
				return
			}

			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("success"))
		})

		middleware := jwtkit.Middleware(service)

		server := httptest.NewServer(middleware(typedHandler))
		defer server.Close()

		req, err := http.NewRequest("GET", server.URL, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("TokenInContext", func(t *testing.T) {
		tokenHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			stored, ok := jwtkit.GetToken(r.Context())
			if !ok || stored != token {
				http.Error(w, "Token not found in context", http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
		})

		middleware := jwtkit.Middleware(service)

		server := httptest.NewServer(middleware(tokenHandler))
		defer server.Close()

		req, err := http.NewRequest("GET", server.URL, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
