package service

import (
	"errors"
	"testing"

	"github.com/mocklab/corpmock/internal/core/domain"
)

func TestKeyring_Authorize_AllValidKeys(t *testing.T) {
	keys := domain.DefaultAPIKeys()
	ring := NewKeyring(keys)

	for _, k := range keys {
		if err := ring.Authorize(k.Key, k.Service, k.Level); err != nil {
			t.Errorf("Authorize(%q, %s, %s) = %v, want allow", k.Key, k.Service, k.Level, err)
		}
	}
}

func TestKeyring_Authorize_UnknownKey(t *testing.T) {
	ring := NewKeyring(domain.DefaultAPIKeys())

	for _, key := range []string{"", "nope", "fin_12345ABCDE"} {
		err := ring.Authorize(key, domain.ServiceFinancial, domain.LevelRead)
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("Authorize(%q) = %v, want ErrUnauthorized", key, err)
		}
	}
}

func TestKeyring_Authorize_ServiceMismatch(t *testing.T) {
	ring := NewKeyring(domain.DefaultAPIKeys())

	err := ring.Authorize("hr_12345abcde", domain.ServiceFinancial, domain.LevelRead)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for HR key on financial, got %v", err)
	}
}

func TestKeyring_Authorize_LevelGate(t *testing.T) {
	ring := NewKeyring(domain.DefaultAPIKeys())

	// Read key cannot clear the payroll tier.
	if err := ring.Authorize("hr_12345abcde", domain.ServiceHR, domain.LevelPayroll); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("read key on payroll tier: got %v, want ErrForbidden", err)
	}
	// Payroll key clears it.
	if err := ring.Authorize("payroll_24680mnop", domain.ServiceHR, domain.LevelPayroll); err != nil {
		t.Errorf("payroll key on payroll tier: got %v, want allow", err)
	}
	// Admin clears every tier.
	if err := ring.Authorize("hr_admin_67890xyz", domain.ServiceHR, domain.LevelPayroll); err != nil {
		t.Errorf("admin key on payroll tier: got %v, want allow", err)
	}
	// Payroll key does not clear the base read tier.
	if err := ring.Authorize("payroll_24680mnop", domain.ServiceHR, domain.LevelRead); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("payroll key on read tier: got %v, want ErrForbidden", err)
	}
}

func TestKeyring_Authorize_PureDecision(t *testing.T) {
	ring := NewKeyring(domain.DefaultAPIKeys())

	// Same inputs give the same answer regardless of prior denials.
	_ = ring.Authorize("bogus", domain.ServiceIT, domain.LevelRead)
	if err := ring.Authorize("it_12345abcde", domain.ServiceIT, domain.LevelRead); err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
}

func TestKeyring_All(t *testing.T) {
	keys := domain.DefaultAPIKeys()
	ring := NewKeyring(keys)

	all := ring.All()
	if len(all) != len(keys) {
		t.Fatalf("All() returned %d keys, want %d", len(all), len(keys))
	}
	for i, k := range all {
		if k != keys[i] {
			t.Errorf("All()[%d] = %+v, want %+v", i, k, keys[i])
		}
	}
}
