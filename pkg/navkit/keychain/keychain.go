// Package keychain is a file-backed stand-in for the device keychain. It
// stores the session token sealed with a key derived from a device secret.
// This is mock-grade protection for a client skeleton, not a security
// boundary.
package keychain

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// ErrNoToken is returned by Load when no token has been stored.
var ErrNoToken = errors.New("keychain: no token stored")

const tokenFile = "session.token"

// Store seals and unseals the session token under dir.
type Store struct {
	dir  string
	aead cipher.AEAD
}

// Open prepares a token store in dir, deriving the sealing key from
// deviceSecret via HKDF-SHA256.
func Open(dir string, deviceSecret []byte) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("keychain: create %s: %w", dir, err)
	}

	h := hkdf.New(sha256.New, deviceSecret, nil, []byte("bankapp-session-token"))
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(h, key); err != nil {
		return nil, fmt.Errorf("keychain: derive key: %w", err)
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("keychain: init cipher: %w", err)
	}
	return &Store{dir: dir, aead: aead}, nil
}

// Save seals token and writes it to disk, replacing any prior token.
func (s *Store) Save(token string) error {
	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("keychain: nonce: %w", err)
	}
	sealed := s.aead.Seal(nonce, nonce, []byte(token), nil)
	if err := os.WriteFile(s.path(), sealed, 0o600); err != nil {
		return fmt.Errorf("keychain: write token: %w", err)
	}
	return nil
}

// Load returns the stored session token, or ErrNoToken.
func (s *Store) Load() (string, error) {
	sealed, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("keychain: read token: %w", err)
	}
	if len(sealed) < chacha20poly1305.NonceSize {
		return "", fmt.Errorf("keychain: token file truncated")
	}
	nonce, ciphertext := sealed[:chacha20poly1305.NonceSize], sealed[chacha20poly1305.NonceSize:]
	plain, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("keychain: unseal token: %w", err)
	}
	return string(plain), nil
}

// Delete removes the stored token. Deleting an absent token is not an error.
func (s *Store) Delete() error {
	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("keychain: delete token: %w", err)
	}
	return nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, tokenFile)
}
