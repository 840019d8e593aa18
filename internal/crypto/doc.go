// Package crypto provides the algorithm backends behind signus and the
// registry that dispatches to them by crypto type.
//
// Contents
//
//   - Ed25519 backend: Ed25519 signatures and X25519/XSalsa20-Poly1305
//     authenticated encryption compatible with libsodium crypto_box
//     (NewEd25519)
//   - Secp256k1 backend: ECDSA signatures over SHA-256 and ECDH keyed
//     XChaCha20-Poly1305 (NewSecp256k1)
//   - Registry: immutable crypto type to backend mapping (NewRegistry,
//     DefaultRegistry)
//
// # Notes
//
// Backends work on raw bytes and return the sentinel errors in errors.go;
// mapping them to the domain error taxonomy is the service's job. No backend
// holds mutable state, so one instance may serve concurrent callers.
package crypto
