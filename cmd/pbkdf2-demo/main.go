package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"log"

	"simplepbkdf2/pkg/pbkdf2"
)

// Demonstrates the derivation engine against a fixed test vector, including
// a crafted pair of passwords that produce the same 16-byte key: the second
// password is exactly the SHA-1 digest of the first, so both key the
// pseudorandom function identically after normalization.
func main() {
	fmt.Println("=== PBKDF2 Demo ===")

	salt, _ := hex.DecodeString("A009C1A485912C6AE630D3E744240B04")
	expected, _ := hex.DecodeString("17EB4014C8C461C300E9B61518B9A18B")

	password1 := []byte("plnlrtfpijpuhqylxbgqiiyipieyxvfsavzgxbbcfusqkozwpngsyejqlmjsytrmd")
	password2 := []byte("eBkXQTfuBqp'cTcar&g*")

	fmt.Printf("Salt:       %X\n", salt)
	fmt.Printf("Password 1: %s (%d bytes)\n", password1, len(password1))
	fmt.Printf("Password 2: %s (%d bytes)\n", password2, len(password2))

	key1, err := pbkdf2.DeriveBytes("SHA1", salt, password1, 1000, 16)
	if err != nil {
		log.Fatalf("Derivation of password 1 failed: %v", err)
	}

	key2, err := pbkdf2.DeriveBytes("SHA1", salt, password2, 1000, 16)
	if err != nil {
		log.Fatalf("Derivation of password 2 failed: %v", err)
	}

	fmt.Printf("Key 1:      %X\n", key1)
	fmt.Printf("Key 2:      %X\n", key2)
	fmt.Printf("Expected:   %X\n", expected)

	if !bytes.Equal(key1, key2) {
		log.Fatal("FAIL: the two passwords should derive the same key")
	}
	if !bytes.Equal(key1, expected) {
		log.Fatal("FAIL: derived key does not match the expected vector")
	}

	fmt.Println("OK: both passwords derive the expected key")
}
