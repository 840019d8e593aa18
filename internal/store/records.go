package store

import (
	"fmt"

	"signus/internal/domain"
)

const (
	privateMode = 0o600
	publicMode  = 0o644
)

// SaveMyDid writes a local identity, private keys included.
func SaveMyDid(path string, myDid domain.MyDid) error {
	return WriteJSON(path, myDid, privateMode)
}

// LoadMyDid reads a local identity written by SaveMyDid.
func LoadMyDid(path string) (domain.MyDid, error) {
	var myDid domain.MyDid
	if err := ReadJSON(path, &myDid); err != nil {
		return domain.MyDid{}, err
	}
	if myDid.DID == "" || myDid.SignKey == "" || myDid.SK == "" {
		return domain.MyDid{}, fmt.Errorf("store: %s is not a local identity", path)
	}
	return myDid, nil
}

// SaveTheirDid writes the public view of an identity.
func SaveTheirDid(path string, theirDid domain.TheirDid) error {
	return WriteJSON(path, theirDid, publicMode)
}

// LoadTheirDid reads a remote identity. The crypto type and pk may be
// absent; the verkey may not.
func LoadTheirDid(path string) (domain.TheirDid, error) {
	var theirDid domain.TheirDid
	if err := ReadJSON(path, &theirDid); err != nil {
		return domain.TheirDid{}, err
	}
	if theirDid.VerKey == "" {
		return domain.TheirDid{}, fmt.Errorf("store: %s has no verkey", path)
	}
	return theirDid, nil
}
