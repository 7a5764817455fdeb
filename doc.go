// Package jwtkit implements encoding and verification of signed, compact
// JSON tokens (the JWT format) across the none, HS256/384/512, RS256/384/512,
// and ES256/384/512 algorithms, together with HTTP middleware and context
// helpers for Go services.
//
// Tokens are produced and consumed either through the package-level Encode
// and Decode functions, which take key material on every call, or through a
// configured Service that bundles a signing key, an encoding algorithm, a
// decode allowlist, and a token length bound. The decode path is a fixed
// sequence of hard gates: structural parsing, header extraction, the
// none-with-key rejection, the caller's algorithm allowlist, signature
// verification, and only then payload parsing. Claims content is returned
// verbatim; expiry, audience, and similar registered claims are never
// validated during decoding and remain the caller's decision (StandardClaims
// ships a Valid helper for that purpose).
//
// # Architecture
//
//   • Encode / Decode / DecodeInto – package-level token codec.
//   • Service – configured instance wrapping the codec with a key,
//     an allowlist, and a length bound.
//   • Algorithm – closed identifier set with a single dispatch table
//     consulted by both the encode and decode paths.
//   • context.go – helper functions for working with context.
//   • middleware.go – HTTP middleware that extracts a token (from header,
//     cookie, query, or custom header) and injects verified claims into the
//     request context.
//   • revoke/ – token revocation stores (in-memory and Redis) keyed by the
//     jti claim, pluggable into the middleware via a claims validator.
//   • errors.go – sentinel error values returned by the package.
//
// # Usage
//
// import "github.com/dmitrymomot/jwtkit"
//
// // Initialise the service.
// svc, err := jwtkit.New(
//     jwtkit.WithSigningKeyString("super-secret"),
//     jwtkit.WithAllowedAlgorithms(jwtkit.AlgorithmHS256),
// )
// if err != nil {
//     // handle error
// }
//
// // Generate a token.
// claims := jwtkit.NewStandardClaims("user-123")
// claims.ExpiresAt = time.Now().Add(24 * time.Hour).Unix()
// token, err := svc.Encode(claims)
//
// // Decode the token back.
// var parsed jwtkit.StandardClaims
// if err := svc.DecodeInto(token, &parsed); err != nil {
//     // handle invalid token
// }
// if err := parsed.Valid(); err != nil {
//     // handle expired / not-yet-valid token
// }
//
// // Use middleware in an http.Handler chain.
// http.Handle("/api", jwtkit.Middleware(svc)(yourHandler))
//
// # Error Handling
//
// Errors such as ErrInvalidSignature or ErrAlgorithmNotAllowed are returned
// as sentinel variables and can be compared using errors.Is. Decoding never
// returns partial claims: any failure yields a nil result and exactly one
// of the sentinel causes, and no distinction is made between a malformed
// and a forged signature.
//
// # Security Considerations
//
// A token declaring the none algorithm is rejected whenever key material is
// supplied to the decode call, before the allowlist is consulted. Callers
// verifying tokens from third parties should always pass an explicit
// allowlist; an empty allowlist accepts any supported algorithm the token
// declares.
//
// ECDSA signatures are transported in the ASN.1 DER form emitted by the
// signer. Ecosystems that require the fixed-width R||S concatenation from
// RFC 7518 will not interoperate with ES* tokens produced here, and
// signatures produced there will not verify here.
//
// Package-level Decode places no bound on token length; callers accepting
// tokens from untrusted sources should bound input size themselves or use
// Service, which enforces a configurable maximum (8 KiB by default).
//
// # Performance Considerations
//
// All operations are synchronous and allocate per call; no state is shared
// between calls, so encode and decode may run fully in parallel. HMAC
// signature comparison runs in constant time over the encoded text.
package jwtkit
