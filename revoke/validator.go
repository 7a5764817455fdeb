package revoke

import (
	"net/http"

	"github.com/dmitrymomot/jwtkit"
)

// Validator returns a claims validator for the jwtkit middleware that
// rejects tokens whose jti claim is present in the store. Tokens without a
// jti claim cannot be revoked individually and pass through.
func Validator(store Store) jwtkit.ClaimsValidatorFunc {
	return func(r *http.Request, claims jwtkit.MapClaims) error {
		jti, ok := claims["jti"].(string)
		if !ok || jti == "" {
			return nil
		}

		revoked, err := store.Contains(r.Context(), jti)
		if err != nil {
			return err
		}
		if revoked {
			return ErrTokenRevoked
		}

		return nil
	}
}
