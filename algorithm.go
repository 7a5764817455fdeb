package jwtkit

import (
	"crypto"

	// Register the SHA-2 digests resolved through crypto.Hash.
	_ "crypto/sha256"
	_ "crypto/sha512"
)

// Algorithm identifies a token signing algorithm as declared in the "alg"
// header field. The supported set is closed; identifiers outside it fail
// both encoding and decoding.
type Algorithm string

// Algorithms defined by RFC 7518 Section 3.1 that this package supports.
const (
	AlgorithmNone  Algorithm = "none"  // unsigned token, empty signature segment
	AlgorithmHS256 Algorithm = "HS256" // HMAC with SHA-256
	AlgorithmHS384 Algorithm = "HS384" // HMAC with SHA-384
	AlgorithmHS512 Algorithm = "HS512" // HMAC with SHA-512
	AlgorithmRS256 Algorithm = "RS256" // RSA PKCS#1 v1.5 with SHA-256
	AlgorithmRS384 Algorithm = "RS384" // RSA PKCS#1 v1.5 with SHA-384
	AlgorithmRS512 Algorithm = "RS512" // RSA PKCS#1 v1.5 with SHA-512
	AlgorithmES256 Algorithm = "ES256" // ECDSA with SHA-256
	AlgorithmES384 Algorithm = "ES384" // ECDSA with SHA-384
	AlgorithmES512 Algorithm = "ES512" // ECDSA with SHA-512
)

// family routes an algorithm to its signing and verification strategy.
type family int

const (
	familyNone family = iota
	familyHMAC
	familyRSA
	familyECDSA
)

// algorithmInfo pairs a signing family with the digest it uses.
type algorithmInfo struct {
	family family
	hash   crypto.Hash
}

// algorithms is the single source of truth for algorithm dispatch. Encode
// and Decode both resolve through it, so no identifier is reachable from
// one path but not the other.
var algorithms = map[Algorithm]algorithmInfo{
	AlgorithmNone:  {family: familyNone},
	AlgorithmHS256: {family: familyHMAC, hash: crypto.SHA256},
	AlgorithmHS384: {family: familyHMAC, hash: crypto.SHA384},
	AlgorithmHS512: {family: familyHMAC, hash: crypto.SHA512},
	AlgorithmRS256: {family: familyRSA, hash: crypto.SHA256},
	AlgorithmRS384: {family: familyRSA, hash: crypto.SHA384},
	AlgorithmRS512: {family: familyRSA, hash: crypto.SHA512},
	AlgorithmES256: {family: familyECDSA, hash: crypto.SHA256},
	AlgorithmES384: {family: familyECDSA, hash: crypto.SHA384},
	AlgorithmES512: {family: familyECDSA, hash: crypto.SHA512},
}

// resolveAlgorithm maps an identifier to its dispatch info.
func resolveAlgorithm(alg Algorithm) (algorithmInfo, error) {
	info, ok := algorithms[alg]
	if !ok {
		return algorithmInfo{}, ErrUnsupportedAlgorithm
	}
	return info, nil
}

// ParseAlgorithm converts a string into a supported Algorithm.
// Useful when algorithm names arrive from configuration or request data.
func ParseAlgorithm(s string) (Algorithm, error) {
	alg := Algorithm(s)
	if _, ok := algorithms[alg]; !ok {
		return "", ErrUnsupportedAlgorithm
	}
	return alg, nil
}
