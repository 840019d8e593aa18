// Package commands defines the signus CLI and wires dependencies for subcommands.
//
// Commands
//
//   - create    Create a local identity and write it as JSON
//   - export    Write the public view of a local identity
//   - sign      Sign a document with a local identity
//   - verify    Check a signature against a remote identity
//   - encrypt   Encrypt a document from a local to a remote identity
//   - decrypt   Decrypt a document sent by a remote identity
//   - mnemonic  Print a fresh BIP-39 mnemonic
//   - didkey    Render a remote identity's verkey as a did:key
//   - types     List the enabled crypto types
//
// # Implementation
//
// The root command loads the configuration and builds the dependency graph
// (logger, backend registry, metrics, identity service) before any subcommand
// runs. Identity records are plain JSON files read and written by the store
// package; private keys are not encrypted at rest.
package commands
