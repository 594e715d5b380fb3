// Package cryptox encrypts biometric templates at rest with AES-256-GCM.
//
// The wire format of an encrypted template is the 12-byte random nonce
// followed by the ciphertext with its 16-byte authentication tag appended,
// concatenated with no separators. A fresh nonce is drawn for every call,
// so encrypting the same template twice never yields the same bytes.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"github.com/dmitrijs2005/biovault/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// NonceSize is the GCM nonce length in bytes (96 bits).
	NonceSize = 12
	// TagSize is the GCM authentication tag length in bytes (128 bits).
	TagSize = 16
)

// DeriveKey stretches an operator passphrase into an AES-256 key.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, KeySize)
}

// TemplateCipher encrypts and decrypts templates with a key held for the
// process lifetime. The key is never logged or exposed.
type TemplateCipher struct {
	aead cipher.AEAD
}

// NewTemplateCipher builds a cipher around the given 32-byte key.
func NewTemplateCipher(key []byte) (*TemplateCipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes", common.ErrCrypto, KeySize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCrypto, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCrypto, err)
	}
	return &TemplateCipher{aead: aead}, nil
}

// NewRandomTemplateCipher builds a cipher with a freshly generated key.
// The key lives only inside the returned cipher.
func NewRandomTemplateCipher() (*TemplateCipher, error) {
	return NewTemplateCipher(common.GenerateRandByteArray(KeySize))
}

// Encrypt seals a plaintext template into the nonce-prefixed envelope.
func (c *TemplateCipher) Encrypt(template []byte) ([]byte, error) {
	if len(template) == 0 {
		return nil, fmt.Errorf("%w: template is empty", common.ErrCrypto)
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCrypto, err)
	}

	// Seal appends ciphertext||tag to the nonce, producing the envelope
	// [nonce][ciphertext||tag] in one allocation.
	return c.aead.Seal(nonce, nonce, template, nil), nil
}

// Decrypt opens an envelope produced by Encrypt. It fails if the envelope
// is shorter than nonce+tag or if the integrity check does not pass
// (tampered bytes or a different key).
func (c *TemplateCipher) Decrypt(encrypted []byte) ([]byte, error) {
	if len(encrypted) <= NonceSize+TagSize {
		return nil, fmt.Errorf("%w: encrypted template is too short", common.ErrCrypto)
	}

	nonce, ciphertext := encrypted[:NonceSize], encrypted[NonceSize:]
	plain, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: integrity check failed", common.ErrCrypto)
	}
	return plain, nil
}
