package signus

import (
	"errors"

	"signus/internal/crypto"
	"signus/internal/domain/types"
	"signus/internal/metrics"
)

var errPublicKeyNotFound = errors.New("public key not found")

// classify maps a backend error onto the domain taxonomy.
func classify(field string, err error) error {
	kind := types.KindBackend
	switch {
	case errors.Is(err, crypto.ErrDecryptionFailed):
		kind = types.KindAuthentication
	case errors.Is(err, crypto.ErrInvalidKeySize),
		errors.Is(err, crypto.ErrInvalidPublicKey),
		errors.Is(err, crypto.ErrInvalidNonceSize),
		errors.Is(err, crypto.ErrInvalidSeed):
		kind = types.KindInvalidStructure
	}
	return &types.SignusError{Kind: kind, Field: field, Err: err}
}

// resultLabel turns an operation outcome into a metrics label.
func resultLabel(err error) string {
	if err == nil {
		return metrics.ResultOK
	}
	if k := types.KindOf(err); k != 0 {
		return k.String()
	}
	return types.KindBackend.String()
}
