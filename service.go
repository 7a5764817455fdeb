package jwtkit

// defaultMaxTokenLength bounds decoded tokens unless overridden. 8 KiB
// comfortably fits real-world claim sets.
const defaultMaxTokenLength = 8192

// Service bundles key material, an encoding algorithm, and a decode policy
// so call sites do not thread keys through every call. The zero value is
// not usable; construct with New or NewFromConfig.
//
// A Service is safe for concurrent use.
type Service struct {
	signingKey     []byte
	verifyKey      []byte
	algorithm      Algorithm
	allowed        []Algorithm
	maxTokenLength int
}

// Option configures a Service.
type Option func(*Service)

// WithSigningKey sets the signing key: the shared secret for HMAC
// algorithms, or a PEM-encoded private key for RSA and ECDSA.
func WithSigningKey(key []byte) Option {
	return func(s *Service) { s.signingKey = key }
}

// WithSigningKeyString sets the signing key from a string.
func WithSigningKeyString(key string) Option {
	return func(s *Service) { s.signingKey = []byte(key) }
}

// WithVerificationKey sets a separate key for Decode: a PEM-encoded public
// key for RSA and ECDSA algorithms. HMAC services do not need it because
// the same secret signs and verifies. When unset, Decode falls back to the
// signing key.
func WithVerificationKey(key []byte) Option {
	return func(s *Service) { s.verifyKey = key }
}

// WithVerificationKeyString sets the verification key from a string.
func WithVerificationKeyString(key string) Option {
	return func(s *Service) { s.verifyKey = []byte(key) }
}

// WithAlgorithm sets the algorithm used by Encode. Defaults to HS256.
func WithAlgorithm(alg Algorithm) Option {
	return func(s *Service) { s.algorithm = alg }
}

// WithAllowedAlgorithms restricts which declared algorithms Decode accepts.
// Without this option any supported algorithm is accepted.
func WithAllowedAlgorithms(algs ...Algorithm) Option {
	return func(s *Service) { s.allowed = algs }
}

// WithMaxTokenLength bounds the length of tokens accepted by Decode.
// Zero disables the check.
func WithMaxTokenLength(n int) Option {
	return func(s *Service) { s.maxTokenLength = n }
}

// New creates a Service. The algorithm and every allowlist entry must be
// supported, key material is required for all algorithms except none, and
// configuring none together with a key is rejected because such a service
// could never decode its own tokens. A service holding only a verification
// key can decode but not encode.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		algorithm:      AlgorithmHS256,
		maxTokenLength: defaultMaxTokenLength,
	}

	for _, opt := range opts {
		opt(s)
	}

	info, err := resolveAlgorithm(s.algorithm)
	if err != nil {
		return nil, err
	}

	for _, alg := range s.allowed {
		if _, err := resolveAlgorithm(alg); err != nil {
			return nil, err
		}
	}

	if info.family == familyNone {
		if len(s.signingKey) > 0 || len(s.verifyKey) > 0 {
			return nil, ErrNoneWithKey
		}
	} else if len(s.signingKey) == 0 && len(s.verifyKey) == 0 {
		return nil, ErrMissingSigningKey
	}

	return s, nil
}

// NewFromConfig creates a Service from the provided Config. Options are
// applied after the config values and may override them.
func NewFromConfig(cfg Config, opts ...Option) (*Service, error) {
	configOpts := make([]Option, 0, len(opts)+4)

	if cfg.SigningKey != "" {
		configOpts = append(configOpts, WithSigningKeyString(cfg.SigningKey))
	}
	if cfg.VerificationKey != "" {
		configOpts = append(configOpts, WithVerificationKeyString(cfg.VerificationKey))
	}
	if cfg.Algorithm != "" {
		configOpts = append(configOpts, WithAlgorithm(cfg.Algorithm))
	}
	if len(cfg.AllowedAlgorithms) > 0 {
		configOpts = append(configOpts, WithAllowedAlgorithms(cfg.AllowedAlgorithms...))
	}
	if cfg.MaxTokenLength > 0 {
		configOpts = append(configOpts, WithMaxTokenLength(cfg.MaxTokenLength))
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}

// Encode serializes claims into a token signed with the service signing
// key and algorithm.
func (s *Service) Encode(claims any) (string, error) {
	if s.algorithm != AlgorithmNone && len(s.signingKey) == 0 {
		return "", ErrMissingSigningKey
	}
	return Encode(claims, s.signingKey, s.algorithm)
}

// Decode parses and verifies a token with the service key and allowlist
// and returns its claims.
func (s *Service) Decode(token string) (MapClaims, error) {
	if err := s.checkLength(token); err != nil {
		return nil, err
	}
	return Decode(token, s.decodeKey(), s.allowed...)
}

// DecodeInto parses and verifies a token with the service key and
// allowlist, unmarshaling the claims into the provided value.
func (s *Service) DecodeInto(token string, claims any) error {
	if err := s.checkLength(token); err != nil {
		return err
	}
	return DecodeInto(token, s.decodeKey(), claims, s.allowed...)
}

// decodeKey picks the key Decode verifies with. The verification key wins
// when set; otherwise the signing key covers the symmetric case.
func (s *Service) decodeKey() []byte {
	if len(s.verifyKey) > 0 {
		return s.verifyKey
	}
	return s.signingKey
}

// checkLength enforces the configured token length bound before any
// decoding work happens.
func (s *Service) checkLength(token string) error {
	if s.maxTokenLength > 0 && len(token) > s.maxTokenLength {
		return ErrTokenTooLong
	}
	return nil
}
