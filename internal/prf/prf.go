package prf

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// ErrUnsupportedAlgorithm is returned when no hash family is registered
// under the requested identifier.
var ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

// Algorithm is one registered hash family. It provides both forms PBKDF2
// needs: the keyed (HMAC) pseudorandom function and the plain unkeyed digest
// used for password normalization.
type Algorithm struct {
	name    string
	newHash func() hash.Hash
}

// Name returns the canonical display name of the family (e.g. "SHA3-256").
func (a *Algorithm) Name() string {
	return a.name
}

// DigestSize returns the native output size of the family in bytes. It is
// fixed per algorithm and determines the PBKDF2 block size.
func (a *Algorithm) DigestSize() int {
	return a.newHash().Size()
}

// Hash computes the unkeyed digest of data.
func (a *Algorithm) Hash(data []byte) []byte {
	h := a.newHash()
	h.Write(data)
	return h.Sum(nil)
}

// NewKeyed returns a fresh HMAC instance keyed with key. The returned hash
// holds keyed state and must not be shared across concurrent derivations.
func (a *Algorithm) NewKeyed(key []byte) hash.Hash {
	return hmac.New(a.newHash, key)
}

// registry maps canonicalized identifiers to hash families. Lookup is the
// only dispatch mechanism; there is no fallback to provider name matching.
var registry = map[string]*Algorithm{}

func register(name string, newHash func() hash.Hash) {
	registry[canonicalName(name)] = &Algorithm{name: name, newHash: newHash}
}

func init() {
	register("SHA1", sha1.New)
	register("SHA224", sha256.New224)
	register("SHA256", sha256.New)
	register("SHA384", sha512.New384)
	register("SHA512", sha512.New)
	register("RIPEMD160", ripemd160.New)
	register("SHA3-256", sha3.New256)
	register("SHA3-512", sha3.New512)
	register("BLAKE2b-512", func() hash.Hash {
		// New512 only fails for oversized keys; the nil key is the
		// unkeyed form.
		h, _ := blake2b.New512(nil)
		return h
	})
}

// canonicalName uppercases the identifier and strips "-" and "_" separators,
// so "sha-256", "SHA_256" and "sha256" all select the same family.
func canonicalName(name string) string {
	name = strings.ToUpper(name)
	name = strings.ReplaceAll(name, "-", "")
	return strings.ReplaceAll(name, "_", "")
}

// Lookup resolves an algorithm identifier to its registered hash family.
func Lookup(name string) (*Algorithm, error) {
	alg, exists := registry[canonicalName(name)]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
	return alg, nil
}

// Supported returns the display names of all registered families, sorted.
func Supported() []string {
	names := make([]string, 0, len(registry))
	for _, alg := range registry {
		names = append(names, alg.name)
	}
	sort.Strings(names)
	return names
}
