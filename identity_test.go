package launchpad

import "testing"

func TestSessionIdentity(t *testing.T) {
	// The identity pair is words 1 and 2 of the key's SHA-256 digest,
	// little-endian. Pinned vectors guard the derivation against
	// accidental byte-order or offset changes.
	testCases := []struct {
		key  string
		want Identity
	}{
		{key: AnonymousKey, want: Identity{4890384255673036997, 1843816783476514803}},
		{key: "alice-session-key", want: Identity{11528540749201032853, 90551743557660620}},
	}
	for _, tc := range testCases {
		s := Session{key: tc.key}
		if got := s.Identity(); got != tc.want {
			t.Errorf("Identity(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestSessionModes(t *testing.T) {
	if !AnonymousSession().IsAnonymous() {
		t.Error("AnonymousSession is not anonymous")
	}

	s, err := NewSession("alice-session-key")
	if err != nil {
		t.Fatal(err)
	}
	if s.IsAnonymous() {
		t.Error("wallet session reported anonymous")
	}

	if _, err := NewSession(""); err == nil {
		t.Error("empty session key accepted")
	}
}

func TestIdentityStrings(t *testing.T) {
	id := Identity{42, 18446744073709551615}
	p1, p2 := id.Strings()
	if p1 != "42" || p2 != "18446744073709551615" {
		t.Errorf("Strings() = %q, %q", p1, p2)
	}
	if id.IsZero() {
		t.Error("non-zero identity reported zero")
	}
	if !(Identity{}).IsZero() {
		t.Error("zero identity not reported zero")
	}
}
