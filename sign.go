package jwtkit

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"errors"
)

// sign produces raw signature bytes over signingInput with the given key.
// The none algorithm never reaches here; Encode short-circuits it.
func sign(signingInput string, key []byte, info algorithmInfo) ([]byte, error) {
	switch info.family {
	case familyHMAC:
		mac := hmac.New(info.hash.New, key)
		mac.Write([]byte(signingInput))
		return mac.Sum(nil), nil

	case familyRSA:
		priv, err := ParseRSAPrivateKeyPEM(key)
		if err != nil {
			return nil, err
		}
		sig, err := rsa.SignPKCS1v15(rand.Reader, priv, info.hash, digest(info.hash, signingInput))
		if err != nil {
			return nil, errors.Join(ErrSigningFailed, err)
		}
		return sig, nil

	case familyECDSA:
		priv, err := ParseECPrivateKeyPEM(key)
		if err != nil {
			return nil, err
		}
		// Signatures stay in the ASN.1 DER form the signer emits. Verifiers
		// that expect fixed-width R||S concatenation will not accept ES*
		// tokens produced here; see the package documentation.
		sig, err := ecdsa.SignASN1(rand.Reader, priv, digest(info.hash, signingInput))
		if err != nil {
			return nil, errors.Join(ErrSigningFailed, err)
		}
		return sig, nil

	default:
		return nil, ErrUnsupportedAlgorithm
	}
}

// digest hashes signingInput with the resolved digest function.
func digest(h crypto.Hash, signingInput string) []byte {
	hasher := h.New()
	hasher.Write([]byte(signingInput))
	return hasher.Sum(nil)
}
