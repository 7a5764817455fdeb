package revoke

import "errors"

var (
	ErrTokenRevoked                 = errors.New("revoke: token revoked")
	ErrFailedToParseRedisConnString = errors.New("revoke: failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("revoke: redis did not become ready within the given time period")
)
