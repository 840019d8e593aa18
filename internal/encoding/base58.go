// Package encoding provides the exchange encoding for keys, DIDs, documents,
// signatures and nonces: Base58 with the Bitcoin alphabet.
package encoding

import (
	"fmt"

	"github.com/mr-tron/base58"

	"signus/internal/domain"
)

// Base58 is the default domain.Codec.
type Base58 struct{}

// Encode never fails. Empty input encodes to the empty string.
func (Base58) Encode(b []byte) string { return base58.Encode(b) }

// Decode rejects characters outside the alphabet. The empty string decodes
// to an empty slice so that empty payloads survive a round trip.
func (Base58) Decode(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	b, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("base58: %w", err)
	}
	return b, nil
}

// Compile-time assertion that Base58 implements domain.Codec.
var _ domain.Codec = Base58{}
