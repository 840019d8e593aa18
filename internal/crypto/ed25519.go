package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/box"

	"signus/internal/domain"
)

// Ed25519 sizes.
const (
	Ed25519SeedSize = ed25519.SeedSize
	BoxKeySize      = 32
	BoxNonceSize    = 24
)

// Ed25519 is the default backend. Signing uses Ed25519; encryption uses
// crypto_box (X25519, XSalsa20, Poly1305) with a 24-byte nonce.
type Ed25519 struct {
	rand io.Reader
}

// NewEd25519 returns an Ed25519 backend reading randomness from crypto/rand.
func NewEd25519() *Ed25519 { return &Ed25519{rand: rand.Reader} }

// CreateKeyPair returns a fresh X25519 key pair.
func (b *Ed25519) CreateKeyPair() (pub, priv []byte, err error) {
	pk, sk, err := box.GenerateKey(b.rand)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrRandom, err)
	}
	return pk[:], sk[:], nil
}

// CreateSigningKeyPair uses a 32-byte seed directly as the Ed25519 seed, so
// identities match those produced by libsodium's crypto_sign_seed_keypair.
func (b *Ed25519) CreateSigningKeyPair(seed []byte) (verKey, signKey []byte, err error) {
	if seed == nil {
		pub, priv, err := ed25519.GenerateKey(b.rand)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrRandom, err)
		}
		return pub, priv, nil
	}
	if err := checkLen(seed, Ed25519SeedSize, ErrInvalidSeed, "ed25519 seed"); err != nil {
		return nil, nil, err
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return priv.Public().(ed25519.PublicKey), priv, nil
}

// Sign signs doc with a 64-byte Ed25519 private key.
func (b *Ed25519) Sign(signKey, doc []byte) ([]byte, error) {
	if err := checkLen(signKey, ed25519.PrivateKeySize, ErrInvalidKeySize, "ed25519 sign key"); err != nil {
		return nil, err
	}
	return ed25519.Sign(ed25519.PrivateKey(signKey), doc), nil
}

// Verify checks signature over doc. Signatures of the wrong length simply
// fail to verify.
func (b *Ed25519) Verify(verKey, doc, signature []byte) (bool, error) {
	if err := checkLen(verKey, ed25519.PublicKeySize, ErrInvalidKeySize, "ed25519 verkey"); err != nil {
		return false, err
	}
	return ed25519.Verify(ed25519.PublicKey(verKey), doc, signature), nil
}

// GenNonce returns a random crypto_box nonce.
func (b *Ed25519) GenNonce() ([]byte, error) {
	return randomBytes(b.rand, BoxNonceSize)
}

// Encrypt seals doc from the holder of priv to the holder of pub.
func (b *Ed25519) Encrypt(priv, pub, doc, nonce []byte) ([]byte, error) {
	sk, pk, n, err := boxParams(priv, pub, nonce)
	if err != nil {
		return nil, err
	}
	return box.Seal(nil, doc, n, pk, sk), nil
}

// Decrypt opens doc sent by the holder of pub to the holder of priv.
func (b *Ed25519) Decrypt(priv, pub, doc, nonce []byte) ([]byte, error) {
	sk, pk, n, err := boxParams(priv, pub, nonce)
	if err != nil {
		return nil, err
	}
	out, ok := box.Open(nil, doc, n, pk, sk)
	if !ok {
		return nil, ErrDecryptionFailed
	}
	return out, nil
}

func boxParams(priv, pub, nonce []byte) (*[BoxKeySize]byte, *[BoxKeySize]byte, *[BoxNonceSize]byte, error) {
	if err := checkLen(priv, BoxKeySize, ErrInvalidKeySize, "x25519 private key"); err != nil {
		return nil, nil, nil, err
	}
	if err := checkLen(pub, BoxKeySize, ErrInvalidKeySize, "x25519 public key"); err != nil {
		return nil, nil, nil, err
	}
	if err := checkLen(nonce, BoxNonceSize, ErrInvalidNonceSize, "nonce"); err != nil {
		return nil, nil, nil, err
	}
	var sk, pk [BoxKeySize]byte
	var n [BoxNonceSize]byte
	copy(sk[:], priv)
	copy(pk[:], pub)
	copy(n[:], nonce)
	return &sk, &pk, &n, nil
}

// Compile-time assertion that Ed25519 implements domain.CryptoBackend.
var _ domain.CryptoBackend = (*Ed25519)(nil)
