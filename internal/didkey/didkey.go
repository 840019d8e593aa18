// Package didkey formats verification keys as did:key identifiers.
//
// The method-specific id is the multibase base58btc encoding of the
// multicodec-prefixed public key.
package didkey

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/multiformats/go-multibase"

	"signus/internal/domain"
)

// Prefix starts every did:key identifier.
const Prefix = "did:key:"

var (
	ErrInvalidDID       = errors.New("invalid did:key")
	ErrUnsupportedCodec = errors.New("unsupported multicodec")
)

type codec struct {
	cryptoType string
	prefix     []byte
	keySize    int
}

// Multicodec varint prefixes for ed25519-pub and secp256k1-pub.
var codecs = []codec{
	{domain.CryptoTypeEd25519, []byte{0xed, 0x01}, 32},
	{domain.CryptoTypeSecp256k1, []byte{0xe7, 0x01}, 33},
}

func byType(cryptoType string) (codec, bool) {
	for _, c := range codecs {
		if c.cryptoType == cryptoType {
			return c, true
		}
	}
	return codec{}, false
}

// Format returns the did:key for verKey. An empty cryptoType means the
// default type.
func Format(cryptoType string, verKey []byte) (string, error) {
	if cryptoType == "" {
		cryptoType = domain.DefaultCryptoType
	}
	c, ok := byType(cryptoType)
	if !ok {
		return "", fmt.Errorf("%w: crypto type %q", ErrUnsupportedCodec, cryptoType)
	}
	if len(verKey) != c.keySize {
		return "", fmt.Errorf("%w: %s key has %d bytes, want %d", ErrInvalidDID, cryptoType, len(verKey), c.keySize)
	}

	prefixed := make([]byte, 0, len(c.prefix)+len(verKey))
	prefixed = append(prefixed, c.prefix...)
	prefixed = append(prefixed, verKey...)
	encoded, err := multibase.Encode(multibase.Base58BTC, prefixed)
	if err != nil {
		return "", fmt.Errorf("didkey: multibase encode: %w", err)
	}
	return Prefix + encoded, nil
}

// Parse extracts the crypto type and verification key from a did:key.
func Parse(did string) (cryptoType string, verKey []byte, err error) {
	encoded, ok := strings.CutPrefix(did, Prefix)
	if !ok || encoded == "" {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidDID, did)
	}
	enc, decoded, err := multibase.Decode(encoded)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDID, err)
	}
	if enc != multibase.Base58BTC {
		return "", nil, fmt.Errorf("%w: expected base58btc", ErrInvalidDID)
	}

	for _, c := range codecs {
		if !bytes.HasPrefix(decoded, c.prefix) {
			continue
		}
		key := decoded[len(c.prefix):]
		if len(key) != c.keySize {
			return "", nil, fmt.Errorf("%w: %s key has %d bytes, want %d", ErrInvalidDID, c.cryptoType, len(key), c.keySize)
		}
		return c.cryptoType, key, nil
	}
	return "", nil, ErrUnsupportedCodec
}
