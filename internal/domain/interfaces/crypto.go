package interfaces

// CryptoBackend implements one algorithm family over raw bytes.
// Implementations must hold no mutable state so that a single instance can
// serve concurrent callers.
type CryptoBackend interface {
	// CreateKeyPair returns a fresh random encryption key pair.
	CreateKeyPair() (pub, priv []byte, err error)
	// CreateSigningKeyPair derives the signing key pair from seed, or
	// generates a random one when seed is nil.
	CreateSigningKeyPair(seed []byte) (verKey, signKey []byte, err error)
	Sign(signKey, doc []byte) ([]byte, error)
	// Verify reports whether signature is valid. A mismatch is (false, nil).
	Verify(verKey, doc, signature []byte) (bool, error)
	GenNonce() ([]byte, error)
	Encrypt(priv, pub, doc, nonce []byte) ([]byte, error)
	Decrypt(priv, pub, doc, nonce []byte) ([]byte, error)
}

// BackendRegistry resolves crypto types to backends.
type BackendRegistry interface {
	// Resolve substitutes the default type for an empty one.
	Resolve(cryptoType string) (CryptoBackend, error)
	// Get requires an exact, registered type.
	Get(cryptoType string) (CryptoBackend, error)
	Types() []string
}

// Codec is the exchange encoding used for every key, DID, document,
// signature and nonce crossing the service boundary.
type Codec interface {
	Encode(b []byte) string
	Decode(s string) ([]byte, error)
}
