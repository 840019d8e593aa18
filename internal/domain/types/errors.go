package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a SignusError.
type ErrorKind int

const (
	// KindUnknownCryptoType means the crypto type is not registered.
	KindUnknownCryptoType ErrorKind = iota + 1
	// KindDecoding means an input field is not valid exchange-encoded text.
	KindDecoding
	// KindInvalidStructure means a required field is missing or has the
	// wrong shape for the backend (key length, nonce length, seed).
	KindInvalidStructure
	// KindAuthentication means authenticated decryption rejected the input.
	KindAuthentication
	// KindBackend covers any other backend failure, e.g. the randomness source.
	KindBackend
)

// Sentinels matched by errors.Is against a SignusError of the same kind.
var (
	ErrUnknownCryptoType    = errors.New("unknown crypto type")
	ErrDecoding             = errors.New("decoding error")
	ErrInvalidStructure     = errors.New("invalid structure")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrBackend              = errors.New("crypto backend error")
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnknownCryptoType:
		return "unknown_crypto_type"
	case KindDecoding:
		return "decoding"
	case KindInvalidStructure:
		return "invalid_structure"
	case KindAuthentication:
		return "authentication"
	case KindBackend:
		return "backend"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindUnknownCryptoType:
		return ErrUnknownCryptoType
	case KindDecoding:
		return ErrDecoding
	case KindInvalidStructure:
		return ErrInvalidStructure
	case KindAuthentication:
		return ErrAuthenticationFailed
	default:
		return ErrBackend
	}
}

// SignusError is returned by every identity operation. Field names the
// offending input (did, seed, sk, pk, verkey, sign_key, signature, doc, nonce)
// when one is known.
type SignusError struct {
	Kind       ErrorKind
	Field      string
	CryptoType string
	Err        error
}

func (e *SignusError) Error() string {
	msg := "signus: " + e.Kind.sentinel().Error()
	if e.Kind == KindUnknownCryptoType {
		return fmt.Sprintf("%s %q", msg, e.CryptoType)
	}
	if e.Field != "" {
		msg += " (" + e.Field + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *SignusError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.Err}
}

// KindOf returns the kind of the first SignusError in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var se *SignusError
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}

// NewUnknownCryptoType reports an unregistered crypto type.
func NewUnknownCryptoType(cryptoType string) *SignusError {
	return &SignusError{Kind: KindUnknownCryptoType, CryptoType: cryptoType}
}

// NewDecodingError reports a field that failed to decode.
func NewDecodingError(field string, err error) *SignusError {
	return &SignusError{Kind: KindDecoding, Field: field, Err: err}
}

// NewStructureError reports a missing or malformed field.
func NewStructureError(field string, err error) *SignusError {
	return &SignusError{Kind: KindInvalidStructure, Field: field, Err: err}
}
