package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"

	"signus/internal/domain"
)

// Secp256k1 sizes.
const (
	Secp256k1PrivateKeySize = secp256k1.PrivKeyBytesLen
	Secp256k1PublicKeySize  = secp256k1.PubKeyBytesLenCompressed
	Secp256k1NonceSize      = chacha20poly1305.NonceSizeX
)

const (
	hkdfInfoSigning = "signus/secp256k1/signing/v1"
	hkdfInfoBox     = "signus/secp256k1/box/v1"
)

// Secp256k1 signs with ECDSA over SHA-256 digests (DER signatures) and
// encrypts with XChaCha20-Poly1305 keyed by an HKDF-expanded ECDH secret.
// Public keys are 33-byte compressed points.
type Secp256k1 struct {
	rand io.Reader
}

// NewSecp256k1 returns a secp256k1 backend reading randomness from crypto/rand.
func NewSecp256k1() *Secp256k1 { return &Secp256k1{rand: rand.Reader} }

// CreateKeyPair returns a fresh ECDH key pair.
func (b *Secp256k1) CreateKeyPair() (pub, priv []byte, err error) {
	sk, err := secp256k1.GeneratePrivateKeyFromRand(b.rand)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrRandom, err)
	}
	return sk.PubKey().SerializeCompressed(), sk.Serialize(), nil
}

// CreateSigningKeyPair expands seed with HKDF-SHA256 into the private scalar.
// Seeds of any length are accepted.
func (b *Secp256k1) CreateSigningKeyPair(seed []byte) (verKey, signKey []byte, err error) {
	if seed == nil {
		return b.CreateKeyPair()
	}
	if len(seed) == 0 {
		return nil, nil, fmt.Errorf("%w: empty seed", ErrInvalidSeed)
	}
	raw, err := hkdfExpand(seed, hkdfInfoSigning, Secp256k1PrivateKeySize)
	if err != nil {
		return nil, nil, err
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(raw); overflow || scalar.IsZero() {
		return nil, nil, fmt.Errorf("%w: seed does not map to a valid scalar", ErrInvalidSeed)
	}
	sk := secp256k1.NewPrivateKey(&scalar)
	return sk.PubKey().SerializeCompressed(), sk.Serialize(), nil
}

// Sign returns a DER-encoded ECDSA signature over SHA-256(doc).
func (b *Secp256k1) Sign(signKey, doc []byte) ([]byte, error) {
	sk, err := parsePrivateKey(signKey, "sign key")
	if err != nil {
		return nil, err
	}
	digest := sha256.Sum256(doc)
	return ecdsa.Sign(sk, digest[:]).Serialize(), nil
}

// Verify checks a DER signature. An unparsable signature is a mismatch.
func (b *Secp256k1) Verify(verKey, doc, signature []byte) (bool, error) {
	pk, err := parsePublicKey(verKey, "verkey")
	if err != nil {
		return false, err
	}
	sig, err := ecdsa.ParseDERSignature(signature)
	if err != nil {
		return false, nil
	}
	digest := sha256.Sum256(doc)
	return sig.Verify(digest[:], pk), nil
}

// GenNonce returns a random XChaCha20-Poly1305 nonce.
func (b *Secp256k1) GenNonce() ([]byte, error) {
	return randomBytes(b.rand, Secp256k1NonceSize)
}

// Encrypt seals doc from the holder of priv to the holder of pub.
func (b *Secp256k1) Encrypt(priv, pub, doc, nonce []byte) ([]byte, error) {
	aead, err := sharedAEAD(priv, pub, nonce)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce, doc, nil), nil
}

// Decrypt opens doc sent by the holder of pub to the holder of priv.
func (b *Secp256k1) Decrypt(priv, pub, doc, nonce []byte) ([]byte, error) {
	aead, err := sharedAEAD(priv, pub, nonce)
	if err != nil {
		return nil, err
	}
	out, err := aead.Open(nil, nonce, doc, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return out, nil
}

func sharedAEAD(priv, pub, nonce []byte) (cipher.AEAD, error) {
	sk, err := parsePrivateKey(priv, "private key")
	if err != nil {
		return nil, err
	}
	pk, err := parsePublicKey(pub, "public key")
	if err != nil {
		return nil, err
	}
	if err := checkLen(nonce, Secp256k1NonceSize, ErrInvalidNonceSize, "nonce"); err != nil {
		return nil, err
	}
	secret := secp256k1.GenerateSharedSecret(sk, pk)
	key, err := hkdfExpand(secret, hkdfInfoBox, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	return chacha20poly1305.NewX(key)
}

func parsePrivateKey(b []byte, what string) (*secp256k1.PrivateKey, error) {
	if err := checkLen(b, Secp256k1PrivateKeySize, ErrInvalidKeySize, "secp256k1 "+what); err != nil {
		return nil, err
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(b); overflow || scalar.IsZero() {
		return nil, fmt.Errorf("%w: secp256k1 %s out of range", ErrInvalidKeySize, what)
	}
	return secp256k1.NewPrivateKey(&scalar), nil
}

func parsePublicKey(b []byte, what string) (*secp256k1.PublicKey, error) {
	if err := checkLen(b, Secp256k1PublicKeySize, ErrInvalidKeySize, "secp256k1 "+what); err != nil {
		return nil, err
	}
	pk, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return pk, nil
}

func hkdfExpand(secret []byte, info string, n int) ([]byte, error) {
	out := make([]byte, n)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte(info)), out); err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time assertion that Secp256k1 implements domain.CryptoBackend.
var _ domain.CryptoBackend = (*Secp256k1)(nil)
