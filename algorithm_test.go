package jwtkit_test

import (
	"testing"

	"github.com/dmitrymomot/jwtkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	t.Run("supported names", func(t *testing.T) {
		t.Parallel()

		names := []string{"none", "HS256", "HS384", "HS512", "RS256", "RS384", "RS512", "ES256", "ES384", "ES512"}
		for _, name := range names {
			alg, err := jwtkit.ParseAlgorithm(name)
			require.NoError(t, err)
			assert.Equal(t, jwtkit.Algorithm(name), alg)
		}
	})

	t.Run("unsupported names", func(t *testing.T) {
		t.Parallel()

		// Matching is exact: names are case-sensitive and never trimmed.
		names := []string{"", "HK256", "hs256", "None", "NONE", "RS128", " HS256"}
		for _, name := range names {
			_, err := jwtkit.ParseAlgorithm(name)
			assert.ErrorIs(t, err, jwtkit.ErrUnsupportedAlgorithm, name)
		}
	})
}
