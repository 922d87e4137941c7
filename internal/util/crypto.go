package util

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// HashPassword returns the password digest as fixed-length lowercase hex.
// The digest format is stable: existing stored digests must keep verifying
// across releases.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CheckPassword reports whether the plaintext password matches the stored
// digest, in constant time.
func CheckPassword(password, storedDigest string) bool {
	if password == "" || storedDigest == "" {
		return false
	}
	digest := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(storedDigest)) == 1
}

// RandomString generates a URL-safe random string of length n (for keys,
// tokens and file name suffixes).
func RandomString(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("length must be positive")
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf)[:n], nil
}

// ----------------- AES-256-GCM encrypt/decrypt (for backups) -----------------

var backupKeySalt = []byte("society-manager.backup.v1")

// deriveKey always produces a 32 byte key, so the configured key string can
// be any length.
func deriveKey(keyStr string) []byte {
	return pbkdf2.Key([]byte(keyStr), backupKeySalt, 100_000, 32, sha256.New)
}

// EncryptAES encrypts data with AES-256-GCM and returns nonce+ciphertext.
func EncryptAES(keyStr string, plaintext []byte) ([]byte, error) {
	key := deriveKey(keyStr)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("nonce: %w", err)
	}

	ciphertext := aesgcm.Seal(nil, nonce, plaintext, nil)
	// nonce is prepended so decryption can split it back off
	return append(nonce, ciphertext...), nil
}

// DecryptAES decrypts nonce+ciphertext produced by EncryptAES.
func DecryptAES(keyStr string, data []byte) ([]byte, error) {
	key := deriveKey(keyStr)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}

	ns := aesgcm.NonceSize()
	if len(data) < ns {
		return nil, fmt.Errorf("cipher too short")
	}
	nonce, ciphertext := data[:ns], data[ns:]

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}
	return plaintext, nil
}
