package jwtkit

import (
	"encoding/base64"
	"strings"
)

// base64URLEncode encodes data using base64url encoding without padding.
// Padding removal is required by RFC 7515 for JWT tokens.
func base64URLEncode(data []byte) string {
	return strings.TrimRight(base64.URLEncoding.EncodeToString(data), "=")
}

// base64URLDecode decodes base64url-encoded data, restoring padding as
// needed. JWT tokens omit padding per RFC 7515, but Go's decoder requires
// it. A length of 1 modulo 4 cannot occur in valid base64 text and fails
// inside the decoder.
func base64URLDecode(s string) ([]byte, error) {
	switch len(s) % 4 {
	case 2:
		s += "=="
	case 3:
		s += "="
	}

	return base64.URLEncoding.DecodeString(s)
}
