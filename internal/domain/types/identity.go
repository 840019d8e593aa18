package types

// MyDidInfo is a request to create a local identity. Every field is optional;
// an empty field selects the default behaviour.
type MyDidInfo struct {
	// DID is an explicit, already encoded identifier. When empty the DID is
	// derived from the verification key.
	DID string `json:"did,omitempty"`
	// Seed is used as raw bytes to derive the signing key pair. It is not
	// decoded with the exchange encoding.
	Seed string `json:"seed,omitempty"`
	// CryptoType selects the backend. Empty means DefaultCryptoType.
	CryptoType string `json:"crypto_type,omitempty"`
}

// MyDid is a local identity: the DID plus encryption and signing key pairs,
// every field encoded with the exchange encoding.
type MyDid struct {
	DID        string `json:"did"`
	CryptoType string `json:"crypto_type"`
	PK         string `json:"pk"`
	SK         string `json:"sk"`
	VerKey     string `json:"ver_key"`
	SignKey    string `json:"sign_key"`
}

// TheirDid returns the public half of the identity, the record a peer needs
// to verify signatures and encrypt to it.
func (d MyDid) TheirDid() TheirDid {
	return TheirDid{
		DID:        d.DID,
		CryptoType: d.CryptoType,
		PK:         d.PK,
		VerKey:     d.VerKey,
	}
}

// TheirDid is a remote identity built from published data.
type TheirDid struct {
	// DID is informational only.
	DID string `json:"did"`
	// CryptoType empty means DefaultCryptoType.
	CryptoType string `json:"crypto_type,omitempty"`
	// PK is the public encryption key, required for encrypt and decrypt.
	PK     string `json:"pk,omitempty"`
	VerKey string `json:"verkey"`
}

// EffectiveCryptoType returns CryptoType, or DefaultCryptoType when unset.
func (d TheirDid) EffectiveCryptoType() string {
	if d.CryptoType == "" {
		return DefaultCryptoType
	}
	return d.CryptoType
}
