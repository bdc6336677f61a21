package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID returns a fresh opaque record identifier: 16 bytes of
// cryptographically secure randomness, hex encoded. Collisions are
// not checked for; at this keyspace they do not occur in practice.
func NewID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken,
		// at which point the process cannot do anything useful anyway.
		panic(err)
	}
	return hex.EncodeToString(buf)
}
