package util

import (
	"strings"
	"testing"
)

// ============ password digest ============

func TestHashPassword(t *testing.T) {
	digest := HashPassword("MyPassword123")

	if len(digest) != 64 {
		t.Errorf("digest length: want 64 hex chars, got %d", len(digest))
	}
	if digest != strings.ToLower(digest) {
		t.Error("digest must be lowercase hex")
	}

	// the digest format is a compatibility contract: stored digests from
	// earlier deployments must keep verifying
	if got := HashPassword("admin123"); got != "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9" {
		t.Errorf("digest of known input changed: %s", got)
	}

	// deterministic
	if HashPassword("same") != HashPassword("same") {
		t.Error("same password must produce the same digest")
	}
}

func TestCheckPassword(t *testing.T) {
	digest := HashPassword("TestPass456")

	if !CheckPassword("TestPass456", digest) {
		t.Error("correct password rejected")
	}
	if CheckPassword("WrongPass", digest) {
		t.Error("wrong password accepted")
	}
	if CheckPassword("", digest) {
		t.Error("empty password accepted")
	}
	if CheckPassword("TestPass456", "") {
		t.Error("empty digest accepted")
	}
}

// ============ random string ============

func TestRandomString(t *testing.T) {
	str, err := RandomString(32)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(str) != 32 {
		t.Errorf("length: want 32, got %d", len(str))
	}

	str2, _ := RandomString(32)
	if str == str2 {
		t.Error("two random strings must differ")
	}

	if _, err := RandomString(0); err == nil {
		t.Error("length 0 must fail")
	}
	if _, err := RandomString(-5); err == nil {
		t.Error("negative length must fail")
	}
}

// ============ AES encryption ============

func TestEncryptDecryptAES(t *testing.T) {
	key := "test-encryption-key"

	testCases := []string{
		"Hello World",
		"",
		"Special!@#$%^&*()",
		strings.Repeat("A", 1000),
	}

	for _, plaintext := range testCases {
		encrypted, err := EncryptAES(key, []byte(plaintext))
		if err != nil {
			t.Fatalf("encrypt %q: %v", plaintext, err)
		}

		decrypted, err := DecryptAES(key, encrypted)
		if err != nil {
			t.Fatalf("decrypt %q: %v", plaintext, err)
		}

		if string(decrypted) != plaintext {
			t.Errorf("round trip mismatch\nwant: %s\ngot:  %s", plaintext, string(decrypted))
		}
	}
}

func TestDecryptAES_WrongKey(t *testing.T) {
	encrypted, _ := EncryptAES("correct-key", []byte("Data"))

	if _, err := DecryptAES("wrong-key", encrypted); err == nil {
		t.Error("wrong key must fail decryption")
	}
}

func TestDecryptAES_InvalidData(t *testing.T) {
	if _, err := DecryptAES("test-key", []byte{1, 2, 3}); err == nil {
		t.Error("truncated ciphertext must fail")
	}
}
