package interfaces

import domaintypes "signus/internal/domain/types"

// SignusService creates local identities and performs signing and
// authenticated encryption between a local and a remote identity.
type SignusService interface {
	CreateMyDid(info domaintypes.MyDidInfo) (domaintypes.MyDid, error)
	Sign(myDid domaintypes.MyDid, doc string) (string, error)
	Verify(theirDid domaintypes.TheirDid, doc, signature string) (bool, error)
	Encrypt(
		myDid domaintypes.MyDid,
		theirDid domaintypes.TheirDid,
		doc string,
	) (ciphertext, nonce string, err error)
	Decrypt(
		myDid domaintypes.MyDid,
		theirDid domaintypes.TheirDid,
		doc string,
		nonce string,
	) (string, error)
}
