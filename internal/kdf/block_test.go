package kdf

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha1"
	"testing"
)

func hmacSHA1(key, msg []byte) []byte {
	mac := hmac.New(sha1.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}

func TestDeriveBlockSingleIteration(t *testing.T) {
	key := []byte("password")
	salt := []byte("salt")

	// One iteration returns U1 = PRF(salt || 00 00 00 01) unmodified.
	want := hmacSHA1(key, append([]byte("salt"), 0, 0, 0, 1))

	mac := hmac.New(sha1.New, key)
	got := DeriveBlock(mac, salt, 1, 1)

	if !bytes.Equal(got, want) {
		t.Errorf("DeriveBlock = %x, want %x", got, want)
	}
}

func TestDeriveBlockCounterEncoding(t *testing.T) {
	key := []byte("password")
	salt := []byte("salt")
	mac := hmac.New(sha1.New, key)

	// Big endian, high byte first.
	cases := map[uint32][]byte{
		1:        {0x00, 0x00, 0x00, 0x01},
		2:        {0x00, 0x00, 0x00, 0x02},
		256:      {0x00, 0x00, 0x01, 0x00},
		0xABCDEF: {0x00, 0xAB, 0xCD, 0xEF},
	}

	for index, encoded := range cases {
		want := hmacSHA1(key, append([]byte("salt"), encoded...))
		got := DeriveBlock(mac, salt, index, 1)
		if !bytes.Equal(got, want) {
			t.Errorf("block %d: got %x, want %x", index, got, want)
		}
	}
}

func TestDeriveBlockTwoIterations(t *testing.T) {
	key := []byte("password")
	salt := []byte("salt")

	u1 := hmacSHA1(key, append([]byte("salt"), 0, 0, 0, 1))
	u2 := hmacSHA1(key, u1)
	want := make([]byte, len(u1))
	for i := range want {
		want[i] = u1[i] ^ u2[i]
	}

	mac := hmac.New(sha1.New, key)
	got := DeriveBlock(mac, salt, 1, 2)

	if !bytes.Equal(got, want) {
		t.Errorf("DeriveBlock = %x, want U1 xor U2 = %x", got, want)
	}
}

func TestDeriveBlockDoesNotMutateSalt(t *testing.T) {
	salt := []byte{0xA0, 0x09, 0xC1, 0xA4}
	original := append([]byte(nil), salt...)

	mac := hmac.New(sha1.New, []byte("password"))
	DeriveBlock(mac, salt, 1, 100)

	if !bytes.Equal(salt, original) {
		t.Errorf("salt mutated: %x, want %x", salt, original)
	}
}

func TestDeriveBlockResultNotAliased(t *testing.T) {
	mac := hmac.New(sha1.New, []byte("password"))
	b1 := DeriveBlock(mac, []byte("salt"), 1, 3)
	snapshot := append([]byte(nil), b1...)

	// A second derivation from the same mac must not write into b1.
	DeriveBlock(mac, []byte("salt"), 2, 3)

	if !bytes.Equal(b1, snapshot) {
		t.Error("block buffer shared between derivations")
	}
}
