// Package signus implements the identity service: creating local DIDs,
// signing and verifying documents, and authenticated encryption between a
// local identity and a remote identity's published key.
//
// The service looks up the backend for each record's crypto type in a
// domain.BackendRegistry, crosses the encoding boundary with a domain.Codec
// (Base58 by default) and reports every failure as a *types.SignusError.
// It holds no mutable state and is safe for concurrent use.
package signus
