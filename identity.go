package launchpad

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strconv"
)

// AnonymousKey is the fixed, publicly known placeholder credential used
// for read-only sessions. It exercises the same query interface as a
// wallet-bound session but identifies nobody.
const AnonymousKey = "000000"

// Session is a processing credential for the rollup: either a wallet's
// session key or the anonymous placeholder.
type Session struct {
	key string
}

// NewSession wraps a wallet session key.
func NewSession(key string) (Session, error) {
	if key == "" {
		return Session{}, fmt.Errorf("empty session key")
	}
	return Session{key: key}, nil
}

// AnonymousSession returns the shared read-only session.
func AnonymousSession() Session { return Session{key: AnonymousKey} }

// Key returns the raw processing key.
func (s Session) Key() string { return s.key }

// IsAnonymous reports whether this is the shared read-only session.
func (s Session) IsAnonymous() bool { return s.key == AnonymousKey }

// PublicKey returns the session's public key material. The wallet layer
// is an external collaborator; at this boundary the key material is the
// canonical 32-byte digest of the session key.
func (s Session) PublicKey() [32]byte {
	return sha256.Sum256([]byte(s.key))
}

// Identity is the two-part participant identifier the rollup keys all
// positions and history by. Both halves are u64 words of the session's
// public key material.
type Identity [2]uint64

// DeriveIdentity extracts the identity pair from public key material:
// little-endian words 1 and 2 of the 32-byte key.
func DeriveIdentity(pub [32]byte) Identity {
	return Identity{
		binary.LittleEndian.Uint64(pub[8:16]),
		binary.LittleEndian.Uint64(pub[16:24]),
	}
}

// Identity derives the participant identity pair for this session.
func (s Session) Identity() Identity {
	return DeriveIdentity(s.PublicKey())
}

// Strings returns the decimal form of both halves, the way the query
// endpoints address a participant.
func (id Identity) Strings() (string, string) {
	return strconv.FormatUint(id[0], 10), strconv.FormatUint(id[1], 10)
}

// IsZero reports whether the identity is unset.
func (id Identity) IsZero() bool { return id[0] == 0 && id[1] == 0 }

func (id Identity) String() string {
	a, b := id.Strings()
	return a + "/" + b
}
