package kdf

import (
	"errors"
	"fmt"

	"simplepbkdf2/internal/prf"
)

// ErrInvalidArgument is returned for any missing or out-of-range derivation
// input. The caller must fix the call; nothing is retried internally.
var ErrInvalidArgument = errors.New("invalid argument")

// DeriveBytes derives outputLength bytes from password and salt using PBKDF2
// over the named hash family. All validation happens before any hashing; on
// error nothing is returned, there is no partial output.
//
// A nil salt or password is rejected, but zero-length non-nil slices are
// permitted. The computation is deterministic and keys a fresh HMAC instance
// per call, so independent calls may run concurrently.
func DeriveBytes(algorithm string, salt, password []byte, iterations, outputLength int) ([]byte, error) {
	if algorithm == "" {
		return nil, fmt.Errorf("%w: algorithm name is empty", ErrInvalidArgument)
	}
	if salt == nil {
		return nil, fmt.Errorf("%w: salt is required", ErrInvalidArgument)
	}
	if password == nil {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidArgument)
	}
	if iterations < 1 {
		return nil, fmt.Errorf("%w: iterations must be >= 1, got %d", ErrInvalidArgument, iterations)
	}
	if outputLength < 1 {
		return nil, fmt.Errorf("%w: output length must be >= 1, got %d", ErrInvalidArgument, outputLength)
	}

	alg, err := prf.Lookup(algorithm)
	if err != nil {
		return nil, err
	}

	digestSize := alg.DigestSize()
	mac := alg.NewKeyed(Normalize(password, alg))

	blockCount := (outputLength + digestSize - 1) / digestSize
	dk := make([]byte, 0, blockCount*digestSize)

	for block := 1; block <= blockCount; block++ {
		dk = append(dk, DeriveBlock(mac, salt, uint32(block), iterations)...)
	}

	return dk[:outputLength], nil
}
