// Package seed turns BIP-39 mnemonics into signing-key seeds.
//
// A seed produced here is 32 bytes long, which both crypto types accept.
package seed

import (
	"errors"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// Size is the length in bytes of a seed derived from a mnemonic.
const Size = 32

var (
	ErrMnemonicRequired = errors.New("mnemonic is required")
	ErrInvalidMnemonic  = errors.New("invalid mnemonic")
)

// NewMnemonic returns a fresh 24-word mnemonic.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// FromMnemonic derives a seed from mnemonic and an optional passphrase.
// The same inputs always give the same seed.
func FromMnemonic(mnemonic, passphrase string) (string, error) {
	mnemonic = Normalize(mnemonic)
	if mnemonic == "" {
		return "", ErrMnemonicRequired
	}
	if !bip39.IsMnemonicValid(mnemonic) {
		return "", ErrInvalidMnemonic
	}
	return string(bip39.NewSeed(mnemonic, passphrase)[:Size]), nil
}

// Normalize trims the mnemonic and collapses runs of whitespace.
func Normalize(mnemonic string) string {
	return strings.Join(strings.Fields(mnemonic), " ")
}
