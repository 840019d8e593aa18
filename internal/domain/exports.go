package domain

import (
	interfaces "signus/internal/domain/interfaces"
	types "signus/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	MyDidInfo   = types.MyDidInfo
	MyDid       = types.MyDid
	TheirDid    = types.TheirDid
	SignusError = types.SignusError
	ErrorKind   = types.ErrorKind
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SignusService   = interfaces.SignusService
	CryptoBackend   = interfaces.CryptoBackend
	BackendRegistry = interfaces.BackendRegistry
	Codec           = interfaces.Codec
)

// Constants re-exported from the types subpackage.
const (
	DefaultCryptoType   = types.DefaultCryptoType
	CryptoTypeEd25519   = types.CryptoTypeEd25519
	CryptoTypeSecp256k1 = types.CryptoTypeSecp256k1
	DIDLength           = types.DIDLength
)
