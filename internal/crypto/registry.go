package crypto

import (
	"fmt"
	"sort"

	"signus/internal/domain"
	"signus/internal/domain/types"
)

// Registry maps crypto types to backends. It is built once and never
// mutated, so lookups need no locking.
type Registry struct {
	backends map[string]domain.CryptoBackend
}

// NewRegistry copies backends into a registry. The default crypto type must
// be present.
func NewRegistry(backends map[string]domain.CryptoBackend) (*Registry, error) {
	if _, ok := backends[domain.DefaultCryptoType]; !ok {
		return nil, fmt.Errorf("crypto: registry must include default type %q", domain.DefaultCryptoType)
	}
	m := make(map[string]domain.CryptoBackend, len(backends))
	for name, b := range backends {
		if b == nil {
			return nil, fmt.Errorf("crypto: nil backend for type %q", name)
		}
		m[name] = b
	}
	return &Registry{backends: m}, nil
}

// NewBackend constructs a built-in backend by crypto type.
func NewBackend(cryptoType string) (domain.CryptoBackend, error) {
	switch cryptoType {
	case types.CryptoTypeEd25519:
		return NewEd25519(), nil
	case types.CryptoTypeSecp256k1:
		return NewSecp256k1(), nil
	default:
		return nil, types.NewUnknownCryptoType(cryptoType)
	}
}

// BuiltinTypes lists the crypto types NewBackend understands.
func BuiltinTypes() []string {
	return []string{types.CryptoTypeEd25519, types.CryptoTypeSecp256k1}
}

// DefaultRegistry registers every built-in backend.
func DefaultRegistry() *Registry {
	r, err := RegistryFor(BuiltinTypes())
	if err != nil {
		panic(err)
	}
	return r
}

// RegistryFor builds a registry holding the named built-in backends.
func RegistryFor(cryptoTypes []string) (*Registry, error) {
	backends := make(map[string]domain.CryptoBackend, len(cryptoTypes))
	for _, name := range cryptoTypes {
		b, err := NewBackend(name)
		if err != nil {
			return nil, err
		}
		backends[name] = b
	}
	return NewRegistry(backends)
}

// Resolve returns the backend for cryptoType, using the default type when it
// is empty. Matching is exact and case-sensitive.
func (r *Registry) Resolve(cryptoType string) (domain.CryptoBackend, error) {
	if cryptoType == "" {
		cryptoType = domain.DefaultCryptoType
	}
	return r.Get(cryptoType)
}

// Get returns the backend registered under exactly cryptoType.
func (r *Registry) Get(cryptoType string) (domain.CryptoBackend, error) {
	b, ok := r.backends[cryptoType]
	if !ok {
		return nil, types.NewUnknownCryptoType(cryptoType)
	}
	return b, nil
}

// Types returns the registered crypto types in sorted order.
func (r *Registry) Types() []string {
	out := make([]string, 0, len(r.backends))
	for name := range r.backends {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Compile-time assertion that Registry implements domain.BackendRegistry.
var _ domain.BackendRegistry = (*Registry)(nil)
