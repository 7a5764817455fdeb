package jwtkit

import "errors"

var (
	ErrInvalidToken         = errors.New("jwtkit: invalid token")
	ErrExpiredToken         = errors.New("jwtkit: token is expired")
	ErrUnsupportedAlgorithm = errors.New("jwtkit: unsupported algorithm")
	ErrAlgorithmNotAllowed  = errors.New("jwtkit: algorithm not allowed")
	ErrNoneWithKey          = errors.New("jwtkit: unsigned token rejected: key material present")
	ErrInvalidSignature     = errors.New("jwtkit: invalid signature")
	ErrSigningFailed        = errors.New("jwtkit: signing failed")
	ErrInvalidKey           = errors.New("jwtkit: invalid key")
	ErrMissingSigningKey    = errors.New("jwtkit: missing signing key")
	ErrTokenTooLong         = errors.New("jwtkit: token exceeds maximum length")
	ErrInvalidClaims        = errors.New("jwtkit: invalid claims")
	ErrMissingClaims        = errors.New("jwtkit: missing claims")
	ErrMissingToken         = errors.New("jwtkit: missing token")
	ErrParsingConfig        = errors.New("jwtkit: failed to parse config from environment")
)
