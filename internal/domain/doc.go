// Package domain defines the identity records, error taxonomy and contracts
// shared across signus. It contains plain types and interfaces only.
package domain
