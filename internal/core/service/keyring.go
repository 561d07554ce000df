package service

import (
	"github.com/mocklab/corpmock/internal/core/domain"
)

// Keyring is the static API key registry plus the request gate. It is
// built once at startup and read-only afterwards, so lookups need no
// locking.
type Keyring struct {
	keys  map[string]domain.APIKey
	order []domain.APIKey
}

// NewKeyring indexes the given keys. Later duplicates of the same key
// string win, preserving the uniqueness invariant.
func NewKeyring(keys []domain.APIKey) *Keyring {
	k := &Keyring{keys: make(map[string]domain.APIKey, len(keys))}
	for _, key := range keys {
		if _, dup := k.keys[key.Key]; !dup {
			k.order = append(k.order, key)
		}
		k.keys[key.Key] = key
	}
	return k
}

// Authorize decides whether providedKey may access an endpoint scoped
// to service at the required minimum level. It is a pure decision:
// domain.ErrUnauthorized for unknown keys, domain.ErrForbidden for a
// service or level mismatch, nil to allow.
func (k *Keyring) Authorize(providedKey string, service domain.Service, minLevel domain.Level) error {
	key, ok := k.keys[providedKey]
	if !ok {
		return domain.ErrUnauthorized
	}
	if key.Service != service || !key.Level.Satisfies(minLevel) {
		return domain.ErrForbidden
	}
	return nil
}

// All returns the registered keys in registration order. Exposed on the
// demo /api-keys endpoint; this is mock data, not a secret store.
func (k *Keyring) All() []domain.APIKey {
	out := make([]domain.APIKey, len(k.order))
	copy(out, k.order)
	return out
}
