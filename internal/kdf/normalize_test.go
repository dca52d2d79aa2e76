package kdf

import (
	"bytes"
	"crypto/sha1"
	"testing"

	"simplepbkdf2/internal/prf"
)

func TestNormalizeShortPasswordUnchanged(t *testing.T) {
	alg, err := prf.Lookup("SHA1")
	if err != nil {
		t.Fatal(err)
	}

	for _, password := range [][]byte{
		[]byte(""),
		[]byte("short"),
		bytes.Repeat([]byte("x"), 20), // exactly the digest size
	} {
		got := Normalize(password, alg)
		if !bytes.Equal(got, password) {
			t.Errorf("Normalize(%d bytes) changed the password", len(password))
		}
	}
}

func TestNormalizeLongPasswordHashedOnce(t *testing.T) {
	alg, err := prf.Lookup("SHA1")
	if err != nil {
		t.Fatal(err)
	}

	password := bytes.Repeat([]byte("y"), 21)
	want := sha1.Sum(password)

	got := Normalize(password, alg)
	if !bytes.Equal(got, want[:]) {
		t.Errorf("Normalize = %x, want SHA1(password) = %x", got, want)
	}

	// Re-normalizing the digest is a no-op: the reduction never recurses.
	again := Normalize(got, alg)
	if !bytes.Equal(again, got) {
		t.Error("normalized password changed on second pass")
	}
}

func TestNormalizeThresholdIsDigestSize(t *testing.T) {
	alg, err := prf.Lookup("SHA512")
	if err != nil {
		t.Fatal(err)
	}

	// 64 bytes is exactly SHA-512's digest size, so no reduction.
	password := bytes.Repeat([]byte("z"), 64)
	if got := Normalize(password, alg); !bytes.Equal(got, password) {
		t.Error("password at the digest size boundary was reduced")
	}

	if got := Normalize(append(password, 'z'), alg); len(got) != 64 {
		t.Errorf("reduced password has %d bytes, want 64", len(got))
	}
}
