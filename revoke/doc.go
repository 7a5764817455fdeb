// Package revoke provides storage for revoked token identifiers so that
// individual tokens can be invalidated before their natural expiry.
//
// Signature verification alone cannot distinguish a token the issuer wants
// withdrawn from any other validly signed token. The stores in this package
// track jti claim values until the token's expiry passes; entries disappear
// on their own afterwards because an expired token fails the caller's
// expiry check anyway.
//
// # Architecture
//
//   • Store – the persistence interface (Add, Contains, Close).
//   • MemoryStore – mutex-guarded map with a periodic cleanup goroutine.
//   • RedisStore – Redis keys with native TTL, plus a Connect helper that
//     retries until the server is ready.
//   • Validator – adapter that plugs a Store into the jwtkit middleware.
//
// # Usage
//
// import (
//     "github.com/dmitrymomot/jwtkit"
//     "github.com/dmitrymomot/jwtkit/revoke"
// )
//
// // In-memory store with a five-minute cleanup sweep.
// store := revoke.NewMemoryStore(5 * time.Minute)
// defer store.Close()
//
// // Revoke a token until its expiry.
// err := store.Add(ctx, claims.ID, time.Unix(claims.ExpiresAt, 0))
//
// // Reject revoked tokens in the middleware.
// mw := jwtkit.MiddlewareWithConfig(jwtkit.MiddlewareConfig{
//     Service:   svc,
//     Validator: revoke.Validator(store),
// })
//
// For multi-instance deployments use RedisStore so every instance shares
// the same revocation list:
//
// client, err := revoke.Connect(ctx, cfg)
// if err != nil {
//     // handle error
// }
// store := revoke.NewRedisStore(client)
//
// # Error Handling
//
// Validator returns ErrTokenRevoked for revoked tokens. Store errors are
// passed through unchanged and can be inspected with errors.Is.
package revoke
