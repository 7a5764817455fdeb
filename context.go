package jwtkit

import (
	"context"
	"encoding/json"
	"fmt"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{ name string }

// String returns the name of the context key.
func (c contextKey) String() string { return c.name }

var (
	tokenContextKey  = &contextKey{name: "jwt"}        // raw token string
	claimsContextKey = &contextKey{name: "jwt_claims"} // decoded claims
)

// SetToken sets the raw token string in the context.
func SetToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// SetClaims sets the decoded claims in the context.
// It accepts any type of claims (struct or map).
func SetClaims(ctx context.Context, claims any) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// GetToken returns the raw token string from the context.
// If no token is found, the second return value will be false.
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok
}

// GetClaims returns the claims from the context as the specified type T.
// If no claims are found or they are of a different type, the second return
// value will be false.
func GetClaims[T any](ctx context.Context) (T, bool) {
	claims, ok := ctx.Value(claimsContextKey).(T)
	if !ok {
		var zero T
		return zero, false
	}
	return claims, true
}

// GetClaimsAs unmarshals the claims from the context into the provided
// struct. Claims stored under a different type are converted through JSON,
// so MapClaims set by the middleware can be read back as a typed struct.
func GetClaimsAs[T any](ctx context.Context, claims *T) error {
	if claims == nil {
		return fmt.Errorf("failed to unmarshal claims: %w", ErrInvalidClaims)
	}

	v := ctx.Value(claimsContextKey)
	if v == nil {
		return ErrInvalidClaims
	}

	// If the value is already of the expected type, just assign it
	if typedClaims, ok := v.(T); ok {
		*claims = typedClaims
		return nil
	}

	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal claims: %w", err)
	}

	if err := json.Unmarshal(jsonBytes, claims); err != nil {
		return fmt.Errorf("failed to unmarshal claims: %w", err)
	}

	return nil
}
