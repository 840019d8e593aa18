package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when a raw key has the wrong length.
	ErrInvalidKeySize = errors.New("invalid key size")
	// ErrInvalidPublicKey is returned when a public key is not a valid point.
	ErrInvalidPublicKey = errors.New("invalid public key")
	// ErrInvalidNonceSize is returned when a nonce has the wrong length.
	ErrInvalidNonceSize = errors.New("invalid nonce size")
	// ErrInvalidSeed is returned when a seed cannot produce a signing key.
	ErrInvalidSeed = errors.New("invalid seed")
	// ErrDecryptionFailed is returned when authenticated decryption fails.
	ErrDecryptionFailed = errors.New("decryption failed")
	// ErrRandom is returned when the randomness source fails.
	ErrRandom = errors.New("random source failure")
)
