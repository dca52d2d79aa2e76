package kdf

import (
	"encoding/binary"
	"hash"
)

// DeriveBlock computes one PBKDF2 output block using mac, an HMAC instance
// already keyed with the normalized password. blockIndex is 1-based; the
// first round hashes salt followed by the 4-byte big-endian index, and each
// later round hashes the previous round's output, XORing every round into
// the accumulator over the full digest width.
//
// mac holds mutable state, so a block derivation owns it for the duration of
// the call. The returned buffer is freshly allocated; salt is never written.
func DeriveBlock(mac hash.Hash, salt []byte, blockIndex uint32, iterations int) []byte {
	var ctr [4]byte
	binary.BigEndian.PutUint32(ctr[:], blockIndex)

	mac.Reset()
	mac.Write(salt)
	mac.Write(ctr[:])
	u := mac.Sum(nil)

	block := make([]byte, len(u))
	copy(block, u)

	for i := 2; i <= iterations; i++ {
		mac.Reset()
		mac.Write(u)
		u = mac.Sum(nil)
		for j := range block {
			block[j] ^= u[j]
		}
	}

	return block
}
