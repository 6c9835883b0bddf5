package cryptography

import (
	"crypto/cipher"
	"fmt"

	cryptoDomain "github.com/MGTheTrain/crypto-provider/internal/domain/crypto"

	"golang.org/x/crypto/chacha20poly1305"
)

// chachaCipher implements cryptoDomain.Cipher for ChaCha20-Poly1305 and its extended-nonce variant.
type chachaCipher struct {
	provider  string
	algorithm string
	newAEAD   func(key []byte) (cipher.AEAD, error)
}

func newChaChaCipherBuilder(algorithm string, newAEAD func(key []byte) (cipher.AEAD, error)) cipherBuilder {
	return func(provider string) cryptoDomain.Cipher {
		return &chachaCipher{
			provider:  provider,
			algorithm: algorithm,
			newAEAD:   newAEAD,
		}
	}
}

func (c *chachaCipher) Algorithm() string { return c.algorithm }
func (c *chachaCipher) Provider() string  { return c.provider }
func (c *chachaCipher) BlockSize() int    { return 0 }

// Encrypt seals plaintext with a 32 byte key; the random nonce is prepended.
func (c *chachaCipher) Encrypt(key any, plainText []byte) ([]byte, error) {
	aead, err := c.aead(key)
	if err != nil {
		return nil, err
	}
	return sealWithNonce(aead, plainText)
}

// Decrypt opens ciphertext produced by Encrypt.
func (c *chachaCipher) Decrypt(key any, cipherText []byte) ([]byte, error) {
	aead, err := c.aead(key)
	if err != nil {
		return nil, err
	}
	return openWithNonce(aead, cipherText)
}

func (c *chachaCipher) aead(key any) (cipher.AEAD, error) {
	raw, ok := key.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: %s requires a []byte key, got %T", cryptoDomain.ErrInvalidKey, c.algorithm, key)
	}

	aead, err := c.newAEAD(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrInvalidKey, err)
	}
	return aead, nil
}

func registerChaChaCiphers(table *serviceTable) {
	table.addCipher(cryptoDomain.AlgorithmChaCha20Poly1305, newChaChaCipherBuilder(cryptoDomain.AlgorithmChaCha20Poly1305, chacha20poly1305.New))
	table.addCipher(cryptoDomain.AlgorithmXChaCha20Poly1305, newChaChaCipherBuilder(cryptoDomain.AlgorithmXChaCha20Poly1305, chacha20poly1305.NewX))
}
