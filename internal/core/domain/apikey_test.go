package domain

import "testing"

func TestLevelSatisfies(t *testing.T) {
	cases := []struct {
		have, want Level
		expect     bool
	}{
		{LevelRead, LevelRead, true},
		{LevelAdmin, LevelRead, true},
		{LevelAdmin, LevelPayroll, true},
		{LevelAdmin, LevelSupport, true},
		{LevelAdmin, LevelAdmin, true},
		{LevelPayroll, LevelPayroll, true},
		{LevelSupport, LevelSupport, true},
		{LevelRead, LevelAdmin, false},
		{LevelRead, LevelPayroll, false},
		{LevelRead, LevelSupport, false},
		{LevelPayroll, LevelRead, false},
		{LevelSupport, LevelRead, false},
		{LevelPayroll, LevelSupport, false},
	}

	for _, tc := range cases {
		if got := tc.have.Satisfies(tc.want); got != tc.expect {
			t.Errorf("%s.Satisfies(%s) = %v, want %v", tc.have, tc.want, got, tc.expect)
		}
	}
}

func TestDefaultAPIKeys_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for _, k := range DefaultAPIKeys() {
		if _, dup := seen[k.Key]; dup {
			t.Errorf("duplicate key string %q", k.Key)
		}
		seen[k.Key] = struct{}{}

		if k.Service == "" || k.Level == "" {
			t.Errorf("key %q missing service or level", k.Key)
		}
	}
	if len(seen) != 8 {
		t.Fatalf("expected 8 demo keys, got %d", len(seen))
	}
}
