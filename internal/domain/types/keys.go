package types

// Crypto type identifiers understood by the built-in backends.
const (
	CryptoTypeEd25519   = "ed25519"
	CryptoTypeSecp256k1 = "secp256k1"
)

// DefaultCryptoType is used whenever a request or remote record leaves the
// crypto type unset.
const DefaultCryptoType = CryptoTypeEd25519

// DIDLength is the number of verification key bytes a derived DID keeps.
const DIDLength = 16
