package jwtkit

import (
	"crypto/ecdsa"
	"crypto/hmac"
	"crypto/rsa"
	"crypto/subtle"
)

// verify reports whether sig is a valid asymmetric signature over
// signingInput. Every abnormal path, including key parse failures, family
// mismatches, and malformed signatures, reports false; callers cannot
// distinguish the causes.
func verify(signingInput string, sig []byte, key []byte, info algorithmInfo) bool {
	if len(sig) == 0 {
		return false
	}

	pub, err := ParsePublicKeyPEM(key)
	if err != nil {
		return false
	}

	switch info.family {
	case familyRSA:
		rsaPub, ok := pub.(*rsa.PublicKey)
		if !ok {
			return false
		}
		return rsa.VerifyPKCS1v15(rsaPub, info.hash, digest(info.hash, signingInput), sig) == nil

	case familyECDSA:
		ecPub, ok := pub.(*ecdsa.PublicKey)
		if !ok {
			return false
		}
		return ecdsa.VerifyASN1(ecPub, digest(info.hash, signingInput), sig)

	default:
		return false
	}
}

// verifyHMAC recomputes the keyed digest over signingInput and compares it
// to the supplied base64url signature segment. The comparison runs over the
// encoded text in constant time to prevent timing attacks; an empty segment
// or an empty recomputation is always a mismatch.
func verifyHMAC(signingInput, signatureEncoded string, key []byte, info algorithmInfo) bool {
	mac := hmac.New(info.hash.New, key)
	mac.Write([]byte(signingInput))
	expected := base64URLEncode(mac.Sum(nil))

	if signatureEncoded == "" || expected == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(signatureEncoded), []byte(expected)) == 1
}
