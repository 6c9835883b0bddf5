package cryptography

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	cryptoDomain "github.com/MGTheTrain/crypto-provider/internal/domain/crypto"
)

// aesCipher implements cryptoDomain.Cipher for AES. Modes needing an IV or nonce
// generate a random one and prepend it to the ciphertext.
type aesCipher struct {
	provider  string
	algorithm string
	mode      string
}

func newAESCipherBuilder(mode, padding string) cipherBuilder {
	algorithm := cryptoDomain.AlgorithmAES + "/" + mode + "/" + padding
	return func(provider string) cryptoDomain.Cipher {
		return &aesCipher{
			provider:  provider,
			algorithm: algorithm,
			mode:      mode,
		}
	}
}

func (c *aesCipher) Algorithm() string { return c.algorithm }
func (c *aesCipher) Provider() string  { return c.provider }
func (c *aesCipher) BlockSize() int    { return aes.BlockSize }

// Encrypt encrypts plaintext with a 16, 24 or 32 byte key.
func (c *aesCipher) Encrypt(key any, plainText []byte) ([]byte, error) {
	block, err := c.block(key)
	if err != nil {
		return nil, err
	}

	switch c.mode {
	case cryptoDomain.ModeECB:
		padded := pkcs5Pad(plainText, aes.BlockSize)
		out := make([]byte, len(padded))
		for i := 0; i < len(padded); i += aes.BlockSize {
			block.Encrypt(out[i:i+aes.BlockSize], padded[i:i+aes.BlockSize])
		}
		return out, nil

	case cryptoDomain.ModeCBC:
		padded := pkcs5Pad(plainText, aes.BlockSize)
		out := make([]byte, aes.BlockSize+len(padded))
		iv := out[:aes.BlockSize]
		if _, err := io.ReadFull(rand.Reader, iv); err != nil {
			return nil, fmt.Errorf("failed to generate IV: %w", err)
		}
		cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[aes.BlockSize:], padded)
		return out, nil

	case cryptoDomain.ModeCTR:
		out := make([]byte, aes.BlockSize+len(plainText))
		iv := out[:aes.BlockSize]
		if _, err := io.ReadFull(rand.Reader, iv); err != nil {
			return nil, fmt.Errorf("failed to generate IV: %w", err)
		}
		cipher.NewCTR(block, iv).XORKeyStream(out[aes.BlockSize:], plainText)
		return out, nil

	case cryptoDomain.ModeGCM:
		gcm, err := cipher.NewGCM(block)
		if err != nil {
			return nil, fmt.Errorf("failed to create GCM: %w", err)
		}
		return sealWithNonce(gcm, plainText)

	default:
		return nil, fmt.Errorf("%w: AES mode %s", cryptoDomain.ErrAlgorithmUnavailable, c.mode)
	}
}

// Decrypt reverses Encrypt with the same key.
func (c *aesCipher) Decrypt(key any, cipherText []byte) ([]byte, error) {
	block, err := c.block(key)
	if err != nil {
		return nil, err
	}

	switch c.mode {
	case cryptoDomain.ModeECB:
		if len(cipherText) == 0 || len(cipherText)%aes.BlockSize != 0 {
			return nil, errors.New("ciphertext is not a multiple of the block size")
		}
		out := make([]byte, len(cipherText))
		for i := 0; i < len(cipherText); i += aes.BlockSize {
			block.Decrypt(out[i:i+aes.BlockSize], cipherText[i:i+aes.BlockSize])
		}
		return pkcs5Unpad(out, aes.BlockSize)

	case cryptoDomain.ModeCBC:
		if len(cipherText) < 2*aes.BlockSize || len(cipherText)%aes.BlockSize != 0 {
			return nil, errors.New("ciphertext is not a multiple of the block size")
		}
		iv, body := cipherText[:aes.BlockSize], cipherText[aes.BlockSize:]
		out := make([]byte, len(body))
		cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, body)
		return pkcs5Unpad(out, aes.BlockSize)

	case cryptoDomain.ModeCTR:
		if len(cipherText) < aes.BlockSize {
			return nil, errors.New("ciphertext too short")
		}
		iv, body := cipherText[:aes.BlockSize], cipherText[aes.BlockSize:]
		out := make([]byte, len(body))
		cipher.NewCTR(block, iv).XORKeyStream(out, body)
		return out, nil

	case cryptoDomain.ModeGCM:
		gcm, err := cipher.NewGCM(block)
		if err != nil {
			return nil, fmt.Errorf("failed to create GCM: %w", err)
		}
		return openWithNonce(gcm, cipherText)

	default:
		return nil, fmt.Errorf("%w: AES mode %s", cryptoDomain.ErrAlgorithmUnavailable, c.mode)
	}
}

func (c *aesCipher) block(key any) (cipher.Block, error) {
	raw, ok := key.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: %s requires a []byte key, got %T", cryptoDomain.ErrInvalidKey, c.algorithm, key)
	}

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrInvalidKey, err)
	}
	return block, nil
}

func pkcs5Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

func pkcs5Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.New("invalid padding: empty input")
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, errors.New("invalid padding")
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, errors.New("invalid padding")
		}
	}
	return data[:len(data)-padLen], nil
}

func sealWithNonce(aead cipher.AEAD, plainText []byte) ([]byte, error) {
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plainText)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return aead.Seal(nonce, nonce, plainText, nil), nil
}

func openWithNonce(aead cipher.AEAD, cipherText []byte) ([]byte, error) {
	nonceSize := aead.NonceSize()
	if len(cipherText) < nonceSize+aead.Overhead() {
		return nil, errors.New("ciphertext too short")
	}

	nonce, body := cipherText[:nonceSize], cipherText[nonceSize:]
	plainText, err := aead.Open(nil, nonce, body, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}
	return plainText, nil
}

// registerAESCiphers adds the AES transformations shared by all providers.
func registerAESCiphers(table *serviceTable) {
	table.addCipher(cryptoDomain.AESDefaultTransformation, newAESCipherBuilder(cryptoDomain.ModeECB, cryptoDomain.PaddingPKCS5))
	table.addCipher("AES/CBC/PKCS5Padding", newAESCipherBuilder(cryptoDomain.ModeCBC, cryptoDomain.PaddingPKCS5))
	table.addCipher("AES/CTR/NoPadding", newAESCipherBuilder(cryptoDomain.ModeCTR, cryptoDomain.PaddingNone))
	table.addCipher("AES/GCM/NoPadding", newAESCipherBuilder(cryptoDomain.ModeGCM, cryptoDomain.PaddingNone))
	table.addAlias(cryptoDomain.AlgorithmAES, cryptoDomain.AESDefaultTransformation)
}
