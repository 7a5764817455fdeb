package jwtkit

import (
	"net/http"
	"strings"
)

// TokenExtractorFunc defines a function that extracts a token from an HTTP request.
type TokenExtractorFunc func(r *http.Request) (string, error)

// SkipFunc defines a function that determines whether to skip token verification for a request.
type SkipFunc func(r *http.Request) bool

// ClaimsValidatorFunc runs after signature verification and can reject a
// request based on claim content, such as an expiry check or a revocation
// list lookup. A non-nil error rejects the request.
type ClaimsValidatorFunc func(r *http.Request, claims MapClaims) error

// ErrorHandlerFunc renders an authentication failure response.
type ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)

// MiddlewareConfig configures middleware behavior.
type MiddlewareConfig struct {
	Service      *Service            // token service used for verification
	Extractor    TokenExtractorFunc  // token extraction strategy (defaults to Bearer)
	Skip         SkipFunc            // optional request filter to bypass verification
	Validator    ClaimsValidatorFunc // optional claim-content check after verification
	ErrorHandler ErrorHandlerFunc    // failure response renderer (defaults to plain 401)
}

// Middleware creates HTTP middleware with default Bearer token extraction.
// Verifies tokens and injects claims into request context for downstream handlers.
func Middleware(service *Service) func(next http.Handler) http.Handler {
	return MiddlewareWithConfig(MiddlewareConfig{
		Service:   service,
		Extractor: BearerTokenExtractor,
	})
}

// MiddlewareWithConfig creates HTTP middleware with custom configuration.
func MiddlewareWithConfig(config MiddlewareConfig) func(next http.Handler) http.Handler {
	if config.Extractor == nil {
		config.Extractor = BearerTokenExtractor
	}
	if config.ErrorHandler == nil {
		config.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Skip != nil && config.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, err := config.Extractor(r)
			if err != nil {
				config.ErrorHandler(w, r, err)
				return
			}

			claims, err := config.Service.Decode(tokenString)
			if err != nil {
				config.ErrorHandler(w, r, err)
				return
			}

			if config.Validator != nil {
				if err := config.Validator(r, claims); err != nil {
					config.ErrorHandler(w, r, err)
					return
				}
			}

			ctx := r.Context()
			ctx = SetToken(ctx, tokenString)
			ctx = SetClaims(ctx, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerTokenExtractor extracts tokens from "Authorization: Bearer <token>" headers.
// This is the most common JWT transport method per RFC 6750.
func BearerTokenExtractor(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}

// CookieTokenExtractor creates a token extractor for cookie-based transport.
// Useful for browser applications where Authorization headers aren't practical.
func CookieTokenExtractor(cookieName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		cookie, err := r.Cookie(cookieName)
		if err != nil {
			return "", ErrMissingToken
		}
		return cookie.Value, nil
	}
}

// QueryTokenExtractor creates a token extractor for URL query parameters.
// Generally discouraged due to token exposure in logs and referrer headers.
func QueryTokenExtractor(paramName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := r.URL.Query().Get(paramName)
		if token == "" {
			return "", ErrMissingToken
		}
		return token, nil
	}
}

// HeaderTokenExtractor creates a token extractor for custom headers.
// Useful for APIs that use non-standard header names for token transport.
func HeaderTokenExtractor(headerName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := r.Header.Get(headerName)
		if token == "" {
			return "", ErrMissingToken
		}
		return token, nil
	}
}
