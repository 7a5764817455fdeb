package jwtkit

import (
	"time"

	"github.com/google/uuid"
)

// MapClaims is the schemaless claims representation returned by Decode.
// Values carry whatever types the JSON decoder produced; numbers are
// float64.
type MapClaims map[string]any

// StandardClaims represents the registered JWT claims defined in RFC 7519 Section 4.1.
// All fields use Unix timestamps for temporal claims to ensure consistent validation.
type StandardClaims struct {
	ID        string `json:"jti,omitempty"` // JWT ID - unique identifier for preventing token reuse
	Subject   string `json:"sub,omitempty"` // Subject - typically user ID or entity identifier
	Issuer    string `json:"iss,omitempty"` // Issuer - identifies who issued the token
	Audience  string `json:"aud,omitempty"` // Audience - intended recipient(s) of the token
	ExpiresAt int64  `json:"exp,omitempty"` // Expiration time - Unix timestamp when token expires
	NotBefore int64  `json:"nbf,omitempty"` // Not before - Unix timestamp when token becomes valid
	IssuedAt  int64  `json:"iat,omitempty"` // Issued at - Unix timestamp when token was created
}

// NewStandardClaims returns claims for the given subject with a fresh
// unique ID and the issue time set to now. Expiry and the remaining fields
// are left for the caller to fill.
func NewStandardClaims(subject string) StandardClaims {
	return StandardClaims{
		ID:       uuid.NewString(),
		Subject:  subject,
		IssuedAt: time.Now().Unix(),
	}
}

// Valid validates the temporal claims against current time. Decode never
// calls this; checking claim content after decoding is the caller's
// responsibility. Zero values are treated as unset (per RFC 7519) and are
// ignored during validation.
func (c StandardClaims) Valid() error {
	now := time.Now().Unix()

	if c.ExpiresAt > 0 && now > c.ExpiresAt {
		return ErrExpiredToken
	}

	if c.NotBefore > 0 && now < c.NotBefore {
		return ErrInvalidToken
	}

	return nil
}
