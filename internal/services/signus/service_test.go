package signus_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signus/internal/crypto"
	"signus/internal/domain"
	"signus/internal/domain/types"
	"signus/internal/encoding"
	"signus/internal/services/signus"
)

var cryptoTypes = []string{domain.CryptoTypeEd25519, domain.CryptoTypeSecp256k1}

const testSeed = "DJASbewkdUY3265HJFDSbds278sdDSnA"

func newService(t *testing.T, opts ...signus.Option) *signus.Service {
	t.Helper()
	return signus.New(crypto.DefaultRegistry(), opts...)
}

func createDid(t *testing.T, svc *signus.Service, info domain.MyDidInfo) domain.MyDid {
	t.Helper()
	myDid, err := svc.CreateMyDid(info)
	require.NoError(t, err)
	return myDid
}

func TestCreateMyDid_EmptyInput(t *testing.T) {
	svc := newService(t)
	myDid := createDid(t, svc, domain.MyDidInfo{})

	assert.Equal(t, domain.DefaultCryptoType, myDid.CryptoType)
	for _, field := range []string{myDid.DID, myDid.PK, myDid.SK, myDid.VerKey, myDid.SignKey} {
		assert.NotEmpty(t, field)
	}

	var codec encoding.Base58
	did, err := codec.Decode(myDid.DID)
	require.NoError(t, err)
	verKey, err := codec.Decode(myDid.VerKey)
	require.NoError(t, err)
	assert.Len(t, did, domain.DIDLength)
	assert.Equal(t, verKey[:domain.DIDLength], did)
}

func TestCreateMyDid_DerivesDidFromVerKeyPrefix(t *testing.T) {
	var codec encoding.Base58
	svc := newService(t)
	for _, ct := range cryptoTypes {
		t.Run(ct, func(t *testing.T) {
			myDid := createDid(t, svc, domain.MyDidInfo{CryptoType: ct})
			verKey, err := codec.Decode(myDid.VerKey)
			require.NoError(t, err)
			assert.Equal(t, codec.Encode(verKey[:domain.DIDLength]), myDid.DID)
			assert.Equal(t, ct, myDid.CryptoType)
		})
	}
}

func TestCreateMyDid_ExplicitDid(t *testing.T) {
	svc := newService(t)
	myDid := createDid(t, svc, domain.MyDidInfo{DID: "Dbf2fjCbsiq2kfns"})
	assert.Equal(t, "Dbf2fjCbsiq2kfns", myDid.DID)
}

func TestCreateMyDid_MalformedDid(t *testing.T) {
	svc := newService(t)
	_, err := svc.CreateMyDid(domain.MyDidInfo{DID: "not base58 0OIl"})
	require.ErrorIs(t, err, types.ErrDecoding)

	var se *types.SignusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "did", se.Field)
}

func TestCreateMyDid_InvalidCryptoType(t *testing.T) {
	svc := newService(t)
	_, err := svc.CreateMyDid(domain.MyDidInfo{DID: "Dbf2fjCbsiq2kfns", CryptoType: "type"})
	require.ErrorIs(t, err, types.ErrUnknownCryptoType)

	var se *types.SignusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "type", se.CryptoType)
	assert.Contains(t, err.Error(), `"type"`)
}

func TestCreateMyDid_SeedIsDeterministic(t *testing.T) {
	svc := newService(t)
	for _, ct := range cryptoTypes {
		t.Run(ct, func(t *testing.T) {
			a := createDid(t, svc, domain.MyDidInfo{Seed: testSeed, CryptoType: ct})
			b := createDid(t, svc, domain.MyDidInfo{Seed: testSeed, CryptoType: ct})
			unseeded := createDid(t, svc, domain.MyDidInfo{CryptoType: ct})
			other := createDid(t, svc, domain.MyDidInfo{Seed: "00000000000000000000000000000My1", CryptoType: ct})

			assert.Equal(t, a.VerKey, b.VerKey)
			assert.Equal(t, a.SignKey, b.SignKey)
			assert.Equal(t, a.DID, b.DID)
			assert.NotEqual(t, a.VerKey, unseeded.VerKey)
			assert.NotEqual(t, a.VerKey, other.VerKey)

			// the encryption identity is never seeded
			assert.NotEqual(t, a.PK, b.PK)
		})
	}
}

func TestCreateMyDid_SeedWithExplicitDid(t *testing.T) {
	svc := newService(t)
	withSeed := createDid(t, svc, domain.MyDidInfo{DID: "Dbf2fjCbsiq2kfns", Seed: testSeed})
	withoutSeed := createDid(t, svc, domain.MyDidInfo{DID: "Dbf2fjCbsiq2kfns"})
	assert.NotEqual(t, withSeed.VerKey, withoutSeed.VerKey)
}

func TestCreateMyDid_Ed25519SeedMustBe32Bytes(t *testing.T) {
	svc := newService(t)
	_, err := svc.CreateMyDid(domain.MyDidInfo{Seed: "short"})
	require.ErrorIs(t, err, types.ErrInvalidStructure)
	require.ErrorIs(t, err, crypto.ErrInvalidSeed)

	var se *types.SignusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "seed", se.Field)
	assert.Equal(t, domain.DefaultCryptoType, se.CryptoType)
}

func TestSignVerify_RoundTrip(t *testing.T) {
	svc := newService(t)
	for _, ct := range cryptoTypes {
		t.Run(ct, func(t *testing.T) {
			myDid := createDid(t, svc, domain.MyDidInfo{CryptoType: ct})
			for _, doc := range []string{"some message", "", `{"reqId":1496822211362017764}`} {
				sig, err := svc.Sign(myDid, doc)
				require.NoError(t, err)

				ok, err := svc.Verify(myDid.TheirDid(), doc, sig)
				require.NoError(t, err)
				assert.True(t, ok, doc)
			}
		})
	}
}

func TestVerify_DefaultsCryptoType(t *testing.T) {
	svc := newService(t)
	myDid := createDid(t, svc, domain.MyDidInfo{})
	sig, err := svc.Sign(myDid, "some message")
	require.NoError(t, err)

	their := domain.TheirDid{DID: "sw2SA2jCbsiq2kfns", VerKey: myDid.VerKey}
	ok, err := svc.Verify(their, "some message", sig)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_TamperIsFalseNotError(t *testing.T) {
	var codec encoding.Base58
	svc := newService(t)
	for _, ct := range cryptoTypes {
		t.Run(ct, func(t *testing.T) {
			myDid := createDid(t, svc, domain.MyDidInfo{CryptoType: ct})
			doc := "some message"
			sig, err := svc.Sign(myDid, doc)
			require.NoError(t, err)

			rawSig, err := codec.Decode(sig)
			require.NoError(t, err)
			for _, i := range []int{0, len(rawSig) / 2, len(rawSig) - 1} {
				flipped := append([]byte(nil), rawSig...)
				flipped[i] ^= 0x01
				ok, err := svc.Verify(myDid.TheirDid(), doc, codec.Encode(flipped))
				require.NoError(t, err)
				assert.False(t, ok, "signature byte %d", i)
			}

			for i := range doc {
				tampered := []byte(doc)
				tampered[i] ^= 0x01
				ok, err := svc.Verify(myDid.TheirDid(), string(tampered), sig)
				require.NoError(t, err)
				assert.False(t, ok, "document byte %d", i)
			}
		})
	}
}

func TestVerify_OtherVerKeyIsFalse(t *testing.T) {
	svc := newService(t)
	myDid := createDid(t, svc, domain.MyDidInfo{})
	sig, err := svc.Sign(myDid, "message")
	require.NoError(t, err)

	their := domain.TheirDid{
		DID:        "sw2SA2jCbsiq2kfns",
		CryptoType: domain.CryptoTypeEd25519,
		VerKey:     "AnnxV4t3LUHKZaxVQDWoVaG44NrGmeDYMA4Gz6C2tCZd",
	}
	ok, err := svc.Verify(their, "message", sig)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_MalformedInputs(t *testing.T) {
	svc := newService(t)
	myDid := createDid(t, svc, domain.MyDidInfo{})
	sig, err := svc.Sign(myDid, "message")
	require.NoError(t, err)

	_, err = svc.Verify(domain.TheirDid{VerKey: "0OIl"}, "message", sig)
	assert.Equal(t, types.KindDecoding, types.KindOf(err))

	_, err = svc.Verify(myDid.TheirDid(), "message", "0OIl")
	assert.Equal(t, types.KindDecoding, types.KindOf(err))

	_, err = svc.Verify(domain.TheirDid{VerKey: "3yZe7d"}, "message", sig)
	assert.Equal(t, types.KindInvalidStructure, types.KindOf(err))
}

func TestSign_MalformedSignKey(t *testing.T) {
	svc := newService(t)
	myDid := createDid(t, svc, domain.MyDidInfo{})

	broken := myDid
	broken.SignKey = "0OIl"
	_, err := svc.Sign(broken, "doc")
	require.ErrorIs(t, err, types.ErrDecoding)

	broken.SignKey = myDid.VerKey
	_, err = svc.Sign(broken, "doc")
	require.ErrorIs(t, err, types.ErrInvalidStructure)
}

func TestSign_DoesNotDefaultStoredCryptoType(t *testing.T) {
	svc := newService(t)
	myDid := createDid(t, svc, domain.MyDidInfo{})
	myDid.CryptoType = ""
	_, err := svc.Sign(myDid, "doc")
	require.ErrorIs(t, err, types.ErrUnknownCryptoType)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	var codec encoding.Base58
	svc := newService(t)
	for _, ct := range cryptoTypes {
		t.Run(ct, func(t *testing.T) {
			alice := createDid(t, svc, domain.MyDidInfo{CryptoType: ct})
			bob := createDid(t, svc, domain.MyDidInfo{CryptoType: ct})

			for _, msg := range [][]byte{[]byte("hello bob"), {}, {0, 0, 7}} {
				sealed, nonce, err := svc.Encrypt(alice, bob.TheirDid(), codec.Encode(msg))
				require.NoError(t, err)
				require.NotEmpty(t, nonce)

				out, err := svc.Decrypt(bob, alice.TheirDid(), sealed, nonce)
				require.NoError(t, err)
				plain, err := codec.Decode(out)
				require.NoError(t, err)
				assert.Equal(t, msg, plain)
			}
		})
	}
}

func TestEncrypt_FreshNoncePerCall(t *testing.T) {
	var codec encoding.Base58
	svc := newService(t)
	alice := createDid(t, svc, domain.MyDidInfo{})
	bob := createDid(t, svc, domain.MyDidInfo{})
	doc := codec.Encode([]byte("same plaintext"))

	ct1, n1, err := svc.Encrypt(alice, bob.TheirDid(), doc)
	require.NoError(t, err)
	ct2, n2, err := svc.Encrypt(alice, bob.TheirDid(), doc)
	require.NoError(t, err)
	assert.NotEqual(t, n1, n2)
	assert.NotEqual(t, ct1, ct2)
}

func TestDecrypt_CrossKeyFails(t *testing.T) {
	var codec encoding.Base58
	svc := newService(t)
	for _, ct := range cryptoTypes {
		t.Run(ct, func(t *testing.T) {
			alice := createDid(t, svc, domain.MyDidInfo{CryptoType: ct})
			bob := createDid(t, svc, domain.MyDidInfo{CryptoType: ct})
			carol := createDid(t, svc, domain.MyDidInfo{CryptoType: ct})

			sealed, nonce, err := svc.Encrypt(alice, bob.TheirDid(), codec.Encode([]byte("for bob")))
			require.NoError(t, err)

			out, err := svc.Decrypt(carol, alice.TheirDid(), sealed, nonce)
			require.ErrorIs(t, err, types.ErrAuthenticationFailed)
			assert.Empty(t, out)
			assert.Equal(t, types.KindAuthentication, types.KindOf(err))

			_, err = svc.Decrypt(bob, carol.TheirDid(), sealed, nonce)
			require.ErrorIs(t, err, types.ErrAuthenticationFailed)

			_, n2, err := svc.Encrypt(alice, bob.TheirDid(), codec.Encode([]byte("y")))
			require.NoError(t, err)
			_, err = svc.Decrypt(bob, alice.TheirDid(), sealed, n2)
			require.ErrorIs(t, err, types.ErrAuthenticationFailed)
		})
	}
}

func TestEncryptDecrypt_MissingPublicKey(t *testing.T) {
	svc := newService(t)
	alice := createDid(t, svc, domain.MyDidInfo{})
	bob := createDid(t, svc, domain.MyDidInfo{})
	noPK := bob.TheirDid()
	noPK.PK = ""

	_, _, err := svc.Encrypt(alice, noPK, "3yZe7d")
	require.ErrorIs(t, err, types.ErrInvalidStructure)
	var se *types.SignusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "pk", se.Field)

	_, err = svc.Decrypt(alice, noPK, "3yZe7d", "3yZe7d")
	require.ErrorIs(t, err, types.ErrInvalidStructure)
}

func TestEncrypt_CryptoTypeMismatch(t *testing.T) {
	svc := newService(t)
	alice := createDid(t, svc, domain.MyDidInfo{CryptoType: domain.CryptoTypeSecp256k1})
	bob := createDid(t, svc, domain.MyDidInfo{})

	_, _, err := svc.Encrypt(alice, bob.TheirDid(), "3yZe7d")
	require.ErrorIs(t, err, types.ErrInvalidStructure)

	their := bob.TheirDid()
	their.CryptoType = "rsa"
	_, _, err = svc.Encrypt(bob, their, "3yZe7d")
	require.ErrorIs(t, err, types.ErrUnknownCryptoType)
}

func TestEncrypt_PlaintextMustBeEncoded(t *testing.T) {
	svc := newService(t)
	alice := createDid(t, svc, domain.MyDidInfo{})
	bob := createDid(t, svc, domain.MyDidInfo{})

	_, _, err := svc.Encrypt(alice, bob.TheirDid(), "plain text!")
	require.ErrorIs(t, err, types.ErrDecoding)
	var se *types.SignusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "doc", se.Field)
}

// countingCodec records how often Decode is called.
type countingCodec struct {
	encoding.Base58
	mu      sync.Mutex
	decodes int
}

func (c *countingCodec) Decode(s string) ([]byte, error) {
	c.mu.Lock()
	c.decodes++
	c.mu.Unlock()
	return c.Base58.Decode(s)
}

func TestUnknownCryptoType_FailsBeforeDecoding(t *testing.T) {
	svc := newService(t)
	alice := createDid(t, svc, domain.MyDidInfo{})
	bob := createDid(t, svc, domain.MyDidInfo{})

	codec := &countingCodec{}
	svc = newService(t, signus.WithCodec(codec))

	bad := alice
	bad.CryptoType = "unknown-type"
	badTheir := bob.TheirDid()
	badTheir.CryptoType = "unknown-type"

	_, err := svc.CreateMyDid(domain.MyDidInfo{DID: "Dbf2fjCbsiq2kfns", CryptoType: "unknown-type"})
	require.ErrorIs(t, err, types.ErrUnknownCryptoType)

	_, err = svc.Sign(bad, "doc")
	require.ErrorIs(t, err, types.ErrUnknownCryptoType)

	_, err = svc.Verify(badTheir, "doc", "3yZe7d")
	require.ErrorIs(t, err, types.ErrUnknownCryptoType)

	_, _, err = svc.Encrypt(bad, bob.TheirDid(), "3yZe7d")
	require.ErrorIs(t, err, types.ErrUnknownCryptoType)

	_, err = svc.Decrypt(bad, bob.TheirDid(), "3yZe7d", "3yZe7d")
	require.ErrorIs(t, err, types.ErrUnknownCryptoType)

	assert.Zero(t, codec.decodes)
}

func TestService_ConcurrentUse(t *testing.T) {
	var codec encoding.Base58
	svc := newService(t)
	alice := createDid(t, svc, domain.MyDidInfo{})
	bob := createDid(t, svc, domain.MyDidInfo{})

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sig, err := svc.Sign(alice, "concurrent")
			if err != nil {
				errs <- err
				return
			}
			if ok, err := svc.Verify(alice.TheirDid(), "concurrent", sig); err != nil || !ok {
				errs <- assert.AnError
				return
			}
			ct, nonce, err := svc.Encrypt(alice, bob.TheirDid(), codec.Encode([]byte("hi")))
			if err != nil {
				errs <- err
				return
			}
			if _, err := svc.Decrypt(bob, alice.TheirDid(), ct, nonce); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
