// Package pbkdf2 derives fixed-length keys from a password, a salt and an
// iteration count using the PBKDF2 construction over a selectable keyed-hash
// pseudorandom function.
//
// The implementation is a straightforward, auditable rendition of the
// construction rather than a tuned one. One behavior is worth calling out:
// passwords longer than the selected family's digest size are replaced by
// their unkeyed digest before keying. This matches plain HMAC keying for
// passwords longer than the hash block size, but differs from RFC 2898 for
// passwords between the digest size and the block size.
package pbkdf2

import (
	"simplepbkdf2/internal/kdf"
	"simplepbkdf2/internal/prf"
)

// Sentinel errors surfaced by DeriveBytes; match with errors.Is.
var (
	// ErrInvalidArgument covers an empty algorithm name, a nil salt or
	// password, iterations < 1 and outputLength < 1.
	ErrInvalidArgument = kdf.ErrInvalidArgument

	// ErrUnsupportedAlgorithm is returned for identifiers with no
	// registered hash family.
	ErrUnsupportedAlgorithm = prf.ErrUnsupportedAlgorithm
)

// DeriveBytes derives exactly outputLength bytes from password and salt.
//
// algorithm names a hash family (e.g. "SHA1", "SHA256", "SHA512",
// "RIPEMD160"); matching ignores case and "-"/"_" separators. The salt is
// caller-generated and caller-persisted. String passwords must be encoded by
// the caller before the call. iterations is the work factor; there is no
// internal default.
//
// The same inputs always produce the same output. Each call keys its own
// HMAC state, so concurrent calls need no coordination.
func DeriveBytes(algorithm string, salt, password []byte, iterations, outputLength int) ([]byte, error) {
	return kdf.DeriveBytes(algorithm, salt, password, iterations, outputLength)
}

// SupportedAlgorithms returns the names of all registered hash families in
// sorted order.
func SupportedAlgorithms() []string {
	return prf.Supported()
}
