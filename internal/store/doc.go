// Package store reads and writes identity records as JSON files.
//
// Writes go through a temp file and rename, so a record on disk is either
// the old or the new version. Records holding private keys are written with
// mode 0600. Nothing is encrypted at rest.
package store
