package kdf

import "simplepbkdf2/internal/prf"

// Normalize reduces an over-long password to the family's digest size using
// the unkeyed hash, applied exactly once before the password is used as an
// HMAC key. Passwords no longer than the digest size pass through unchanged.
//
// The threshold is the digest size, not the HMAC block size. For passwords
// between the two this differs from handing the raw password to HMAC, which
// only pre-hashes keys longer than the block size.
func Normalize(password []byte, alg *prf.Algorithm) []byte {
	if len(password) <= alg.DigestSize() {
		return password
	}
	return alg.Hash(password)
}
