package jwtkit

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// HeaderType is the constant "typ" header value required by RFC 7519.
const HeaderType = "JWT"

// Header represents the JWT header as defined in RFC 7515. Field order
// matches the serialized form: typ precedes alg.
type Header struct {
	Type      string    `json:"typ"`
	Algorithm Algorithm `json:"alg"`
}

// Encode serializes claims into a compact token signed with the given key
// and algorithm. An empty algorithm defaults to HS256. For the none
// algorithm the key is unused and the signature segment is empty.
//
// Claims may be any JSON-serializable value. On failure no partial token is
// returned.
func Encode(claims any, key []byte, alg Algorithm) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	if alg == "" {
		alg = AlgorithmHS256
	}

	info, err := resolveAlgorithm(alg)
	if err != nil {
		return "", err
	}

	headerJSON, err := json.Marshal(Header{Type: HeaderType, Algorithm: alg})
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	// Build the signing input: base64url(header).base64url(claims)
	signingInput := base64URLEncode(headerJSON) + "." + base64URLEncode(claimsJSON)

	if info.family == familyNone {
		return signingInput + ".", nil
	}

	signature, err := sign(signingInput, key, info)
	if err != nil {
		return "", err
	}

	return signingInput + "." + base64URLEncode(signature), nil
}

// Decode parses a compact token, verifies its signature with the given key,
// and returns the claims. The allowed list restricts which declared
// algorithms are acceptable; an empty list accepts whatever algorithm the
// token declares. Claims content is returned verbatim: expiry, audience,
// and similar registered claims are not validated here.
//
// Token length is not bounded by this function; callers accepting tokens
// from untrusted sources should enforce a limit, or use Service which does.
func Decode(token string, key []byte, allowed ...Algorithm) (MapClaims, error) {
	var claims MapClaims
	if err := DecodeInto(token, key, &claims, allowed...); err != nil {
		return nil, err
	}
	return claims, nil
}

// DecodeInto behaves like Decode but unmarshals the claims into the
// provided value, which must be a non-nil pointer.
func DecodeInto(token string, key []byte, claims any, allowed ...Algorithm) error {
	if token == "" {
		return ErrInvalidToken
	}

	// Split on the first two separators only; the signature segment is the
	// entire remainder. A stray dot there fails base64 decoding for signed
	// algorithms.
	parts := strings.SplitN(token, ".", 3)
	if len(parts) != 3 {
		return ErrInvalidToken
	}
	headerEncoded, claimsEncoded, signatureEncoded := parts[0], parts[1], parts[2]

	headerJSON, err := base64URLDecode(headerEncoded)
	if err != nil {
		return errors.Join(ErrInvalidToken, err)
	}

	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return errors.Join(ErrInvalidToken, err)
	}

	// The none gate runs before the allowlist: a caller holding key material
	// must never accept an unsigned token, even with none explicitly
	// allowed.
	if header.Algorithm == AlgorithmNone && len(key) > 0 {
		return ErrNoneWithKey
	}

	// The allowlist is checked against the declared algorithm only; the key
	// type never influences which algorithms are acceptable.
	if len(allowed) > 0 && !slices.Contains(allowed, header.Algorithm) {
		return ErrAlgorithmNotAllowed
	}

	info, err := resolveAlgorithm(header.Algorithm)
	if err != nil {
		return err
	}

	signingInput := headerEncoded + "." + claimsEncoded

	switch info.family {
	case familyNone:
		// Gated above: none is acceptable only without key material. The
		// signature segment is ignored.
	case familyHMAC:
		if !verifyHMAC(signingInput, signatureEncoded, key, info) {
			return ErrInvalidSignature
		}
	default:
		signature, err := base64URLDecode(signatureEncoded)
		if err != nil {
			return errors.Join(ErrInvalidSignature, err)
		}
		if !verify(signingInput, signature, key, info) {
			return ErrInvalidSignature
		}
	}

	claimsJSON, err := base64URLDecode(claimsEncoded)
	if err != nil {
		return errors.Join(ErrInvalidToken, err)
	}

	if err := json.Unmarshal(claimsJSON, claims); err != nil {
		return errors.Join(ErrInvalidToken, err)
	}

	return nil
}
