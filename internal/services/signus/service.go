package signus

import (
	"fmt"

	"go.uber.org/zap"

	"signus/internal/domain"
	"signus/internal/domain/types"
	"signus/internal/encoding"
	"signus/internal/metrics"
	"signus/internal/util/memzero"
)

const (
	opCreate  = "create"
	opSign    = "sign"
	opVerify  = "verify"
	opEncrypt = "encrypt"
	opDecrypt = "decrypt"
)

// Service creates local identities and runs the signing and encryption
// operations on them through the backend registered for each crypto type.
type Service struct {
	registry domain.BackendRegistry
	codec    domain.Codec
	log      *zap.Logger
	metrics  *metrics.Collector
}

// New returns a service dispatching through registry.
func New(registry domain.BackendRegistry, opts ...Option) *Service {
	s := &Service{
		registry: registry,
		codec:    encoding.Base58{},
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateMyDid creates a local identity. The encryption key pair is always
// random; the signing key pair is derived from info.Seed when one is given.
// Without an explicit DID, the DID is the first 16 bytes of the verification
// key.
func (s *Service) CreateMyDid(info domain.MyDidInfo) (myDid domain.MyDid, err error) {
	cryptoType := info.CryptoType
	if cryptoType == "" {
		cryptoType = domain.DefaultCryptoType
	}
	defer func() { err = s.finish(opCreate, cryptoType, err) }()

	backend, err := s.registry.Resolve(cryptoType)
	if err != nil {
		return domain.MyDid{}, err
	}

	var seed []byte
	if info.Seed != "" {
		seed = []byte(info.Seed)
	}

	pk, sk, err := backend.CreateKeyPair()
	if err != nil {
		return domain.MyDid{}, classify("pk", err)
	}
	defer memzero.Zero(sk)

	verKey, signKey, err := backend.CreateSigningKeyPair(seed)
	if err != nil {
		return domain.MyDid{}, classify("seed", err)
	}
	defer memzero.Zero(signKey)

	var did []byte
	if info.DID != "" {
		if did, err = s.decode("did", info.DID); err != nil {
			return domain.MyDid{}, err
		}
	} else {
		if len(verKey) < domain.DIDLength {
			return domain.MyDid{}, types.NewStructureError(
				"ver_key",
				fmt.Errorf("verification key has %d bytes, need %d", len(verKey), domain.DIDLength),
			)
		}
		did = verKey[:domain.DIDLength]
	}

	myDid = domain.MyDid{
		DID:        s.codec.Encode(did),
		CryptoType: cryptoType,
		PK:         s.codec.Encode(pk),
		SK:         s.codec.Encode(sk),
		VerKey:     s.codec.Encode(verKey),
		SignKey:    s.codec.Encode(signKey),
	}
	s.log.Info("created did",
		zap.String("did", myDid.DID),
		zap.String("crypto_type", cryptoType),
		zap.Bool("seeded", seed != nil),
	)
	return myDid, nil
}

// Sign signs the raw bytes of doc with the identity's signing key and
// returns the encoded signature. The record's crypto type is not defaulted:
// a stored record without one is rejected.
func (s *Service) Sign(myDid domain.MyDid, doc string) (signature string, err error) {
	defer func() { err = s.finish(opSign, myDid.CryptoType, err) }()

	backend, err := s.registry.Get(myDid.CryptoType)
	if err != nil {
		return "", err
	}
	signKey, err := s.decode("sign_key", myDid.SignKey)
	if err != nil {
		return "", err
	}
	defer memzero.Zero(signKey)

	sig, err := backend.Sign(signKey, []byte(doc))
	if err != nil {
		return "", classify("sign_key", err)
	}
	return s.codec.Encode(sig), nil
}

// Verify reports whether signature is a valid signature of doc by theirDid.
// A signature that does not match is (false, nil); only unresolvable crypto
// types and malformed inputs are errors.
func (s *Service) Verify(theirDid domain.TheirDid, doc, signature string) (valid bool, err error) {
	cryptoType := theirDid.EffectiveCryptoType()
	defer func() {
		err = s.annotate(opVerify, cryptoType, err)
		result := resultLabel(err)
		if err == nil && !valid {
			result = metrics.ResultRejected
		}
		s.observe(opVerify, cryptoType, err, result)
	}()

	backend, err := s.registry.Resolve(cryptoType)
	if err != nil {
		return false, err
	}
	verKey, err := s.decode("verkey", theirDid.VerKey)
	if err != nil {
		return false, err
	}
	sig, err := s.decode("signature", signature)
	if err != nil {
		return false, err
	}

	valid, err = backend.Verify(verKey, []byte(doc), sig)
	if err != nil {
		return false, classify("verkey", err)
	}
	return valid, nil
}

// Encrypt seals doc from myDid to theirDid under a fresh nonce and returns
// the encoded ciphertext and nonce; both are needed to decrypt.
//
// doc must already be in the exchange encoding: it is decoded to raw bytes
// before encryption, so callers encode arbitrary payloads first.
func (s *Service) Encrypt(
	myDid domain.MyDid,
	theirDid domain.TheirDid,
	doc string,
) (ciphertext, nonce string, err error) {
	defer func() { err = s.finish(opEncrypt, myDid.CryptoType, err) }()

	backend, err := s.pair(myDid, theirDid)
	if err != nil {
		return "", "", err
	}

	rawNonce, err := backend.GenNonce()
	if err != nil {
		return "", "", classify("nonce", err)
	}

	sk, err := s.decode("sk", myDid.SK)
	if err != nil {
		return "", "", err
	}
	defer memzero.Zero(sk)
	pk, err := s.decode("pk", theirDid.PK)
	if err != nil {
		return "", "", err
	}
	plain, err := s.decode("doc", doc)
	if err != nil {
		return "", "", err
	}

	ct, err := backend.Encrypt(sk, pk, plain, rawNonce)
	if err != nil {
		return "", "", classify("", err)
	}
	return s.codec.Encode(ct), s.codec.Encode(rawNonce), nil
}

// Decrypt opens a ciphertext sent by theirDid to myDid and returns the
// plaintext in the exchange encoding. Authentication failure is an error
// of kind types.KindAuthentication; no partial plaintext is returned.
func (s *Service) Decrypt(
	myDid domain.MyDid,
	theirDid domain.TheirDid,
	doc string,
	nonce string,
) (plaintext string, err error) {
	defer func() { err = s.finish(opDecrypt, myDid.CryptoType, err) }()

	backend, err := s.pair(myDid, theirDid)
	if err != nil {
		return "", err
	}

	sk, err := s.decode("sk", myDid.SK)
	if err != nil {
		return "", err
	}
	defer memzero.Zero(sk)
	pk, err := s.decode("pk", theirDid.PK)
	if err != nil {
		return "", err
	}
	ct, err := s.decode("doc", doc)
	if err != nil {
		return "", err
	}
	rawNonce, err := s.decode("nonce", nonce)
	if err != nil {
		return "", err
	}

	plain, err := backend.Decrypt(sk, pk, ct, rawNonce)
	if err != nil {
		return "", classify("doc", err)
	}
	return s.codec.Encode(plain), nil
}

// pair resolves the backend shared by a local and a remote identity. Both
// must use the same crypto type and the remote record must carry a public
// encryption key.
func (s *Service) pair(myDid domain.MyDid, theirDid domain.TheirDid) (domain.CryptoBackend, error) {
	backend, err := s.registry.Get(myDid.CryptoType)
	if err != nil {
		return nil, err
	}
	theirType := theirDid.EffectiveCryptoType()
	if _, err := s.registry.Resolve(theirType); err != nil {
		return nil, err
	}
	if theirType != myDid.CryptoType {
		return nil, types.NewStructureError(
			"crypto_type",
			fmt.Errorf("local type %q does not match remote type %q", myDid.CryptoType, theirType),
		)
	}
	if theirDid.PK == "" {
		return nil, types.NewStructureError("pk", errPublicKeyNotFound)
	}
	return backend, nil
}

func (s *Service) decode(field, text string) ([]byte, error) {
	b, err := s.codec.Decode(text)
	if err != nil {
		return nil, types.NewDecodingError(field, err)
	}
	return b, nil
}

// finish annotates err and records the outcome of op.
func (s *Service) finish(op, cryptoType string, err error) error {
	err = s.annotate(op, cryptoType, err)
	s.observe(op, cryptoType, err, resultLabel(err))
	return err
}

func (s *Service) annotate(op, cryptoType string, err error) error {
	if err == nil {
		return nil
	}
	se, ok := err.(*types.SignusError)
	if !ok {
		se = &types.SignusError{Kind: types.KindBackend, Err: err}
	}
	if se.CryptoType == "" {
		se.CryptoType = cryptoType
	}
	s.log.Debug("operation failed",
		zap.String("op", op),
		zap.String("crypto_type", se.CryptoType),
		zap.Stringer("kind", se.Kind),
		zap.String("field", se.Field),
		zap.Error(se.Err),
	)
	return se
}

func (s *Service) observe(op, cryptoType string, err error, result string) {
	if types.KindOf(err) == types.KindUnknownCryptoType {
		cryptoType = "unknown"
	}
	s.metrics.Observe(op, cryptoType, result)
}

// Compile-time assertion that Service implements domain.SignusService.
var _ domain.SignusService = (*Service)(nil)
