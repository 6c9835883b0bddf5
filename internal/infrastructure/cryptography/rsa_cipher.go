package cryptography

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"math/big"

	cryptoDomain "github.com/MGTheTrain/crypto-provider/internal/domain/crypto"
)

type rsaPadding int

const (
	rsaPaddingNone rsaPadding = iota
	rsaPaddingPKCS1
	rsaPaddingOAEP
)

// pkcs1Overhead is the PKCS#1 v1.5 padding size in bytes
const pkcs1Overhead = 11

// rsaCipher implements cryptoDomain.Cipher for the RSA transformations
type rsaCipher struct {
	provider  string
	algorithm string
	padding   rsaPadding
	oaepHash  crypto.Hash
}

func newRSACipherBuilder(algorithm string, padding rsaPadding, oaepHash crypto.Hash) cipherBuilder {
	return func(provider string) cryptoDomain.Cipher {
		return &rsaCipher{
			provider:  provider,
			algorithm: algorithm,
			padding:   padding,
			oaepHash:  oaepHash,
		}
	}
}

func (c *rsaCipher) Algorithm() string { return c.algorithm }
func (c *rsaCipher) Provider() string  { return c.provider }
func (c *rsaCipher) BlockSize() int    { return 0 }

// Encrypt encrypts plaintext with the public key. Padded modes split plaintext larger than
// one block into chunks; raw RSA accepts a single block only.
func (c *rsaCipher) Encrypt(key any, plainText []byte) ([]byte, error) {
	publicKey, err := rsaPublicKey(key)
	if err != nil {
		return nil, err
	}

	if c.padding == rsaPaddingNone {
		return encryptRaw(publicKey, plainText)
	}

	maxSize := c.maxChunkSize(publicKey)
	if maxSize <= 0 {
		return nil, fmt.Errorf("%w: RSA key too small for %s", cryptoDomain.ErrInvalidKey, c.algorithm)
	}

	var encryptedData []byte
	for first := true; first || len(plainText) > 0; first = false {
		chunkSize := min(maxSize, len(plainText))

		encryptedChunk, err := c.encryptChunk(publicKey, plainText[:chunkSize])
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt data: %w", err)
		}
		encryptedData = append(encryptedData, encryptedChunk...)
		plainText = plainText[chunkSize:]
	}

	return encryptedData, nil
}

// Decrypt decrypts ciphertext with the private key, one key-sized block at a time.
func (c *rsaCipher) Decrypt(key any, cipherText []byte) ([]byte, error) {
	privateKey, ok := key.(*rsa.PrivateKey)
	if !ok || privateKey == nil {
		return nil, fmt.Errorf("%w: %s decryption requires *rsa.PrivateKey, got %T", cryptoDomain.ErrInvalidKey, c.algorithm, key)
	}

	blockSize := privateKey.Size()
	if len(cipherText) == 0 || len(cipherText)%blockSize != 0 {
		return nil, fmt.Errorf("failed to decrypt data: ciphertext length %d is not a multiple of %d", len(cipherText), blockSize)
	}

	if c.padding == rsaPaddingNone {
		if len(cipherText) != blockSize {
			return nil, fmt.Errorf("failed to decrypt data: raw RSA accepts a single %d byte block", blockSize)
		}
		return decryptRaw(privateKey, cipherText)
	}

	var decryptedData []byte
	for len(cipherText) > 0 {
		decryptedChunk, err := c.decryptChunk(privateKey, cipherText[:blockSize])
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt data: %w", err)
		}
		decryptedData = append(decryptedData, decryptedChunk...)
		cipherText = cipherText[blockSize:]
	}

	return decryptedData, nil
}

func (c *rsaCipher) maxChunkSize(publicKey *rsa.PublicKey) int {
	if c.padding == rsaPaddingOAEP {
		return publicKey.Size() - 2*c.oaepHash.Size() - 2
	}
	return publicKey.Size() - pkcs1Overhead
}

func (c *rsaCipher) encryptChunk(publicKey *rsa.PublicKey, chunk []byte) ([]byte, error) {
	if c.padding == rsaPaddingOAEP {
		return rsa.EncryptOAEP(c.oaepHash.New(), rand.Reader, publicKey, chunk, nil)
	}
	return rsa.EncryptPKCS1v15(rand.Reader, publicKey, chunk)
}

func (c *rsaCipher) decryptChunk(privateKey *rsa.PrivateKey, chunk []byte) ([]byte, error) {
	if c.padding == rsaPaddingOAEP {
		return rsa.DecryptOAEP(c.oaepHash.New(), rand.Reader, privateKey, chunk, nil)
	}
	return rsa.DecryptPKCS1v15(rand.Reader, privateKey, chunk)
}

// encryptRaw computes m^e mod n, left-padded to the key size.
func encryptRaw(publicKey *rsa.PublicKey, plainText []byte) ([]byte, error) {
	m := new(big.Int).SetBytes(plainText)
	if m.Cmp(publicKey.N) >= 0 {
		return nil, errors.New("failed to encrypt data: input too large for RSA block")
	}

	e := big.NewInt(int64(publicKey.E))
	c := new(big.Int).Exp(m, e, publicKey.N)

	return c.FillBytes(make([]byte, publicKey.Size())), nil
}

// decryptRaw computes c^d mod n. Leading zero bytes of the message are not restored.
func decryptRaw(privateKey *rsa.PrivateKey, cipherText []byte) ([]byte, error) {
	c := new(big.Int).SetBytes(cipherText)
	if c.Cmp(privateKey.N) >= 0 {
		return nil, errors.New("failed to decrypt data: input too large for RSA block")
	}

	m := new(big.Int).Exp(c, privateKey.D, privateKey.N)
	return m.Bytes(), nil
}

func rsaPublicKey(key any) (*rsa.PublicKey, error) {
	switch k := key.(type) {
	case *rsa.PublicKey:
		if k != nil {
			return k, nil
		}
	case *rsa.PrivateKey:
		if k != nil {
			return &k.PublicKey, nil
		}
	}
	return nil, fmt.Errorf("%w: RSA encryption requires *rsa.PublicKey, got %T", cryptoDomain.ErrInvalidKey, key)
}

// registerRSACiphers adds the padded and raw RSA transformations for the given modes.
func registerRSACiphers(table *serviceTable, modes ...string) {
	for _, mode := range modes {
		prefix := cryptoDomain.AlgorithmRSA + "/" + mode + "/"

		none := prefix + cryptoDomain.PaddingNone
		table.addCipher(none, newRSACipherBuilder(none, rsaPaddingNone, 0))

		pkcs1 := prefix + cryptoDomain.PaddingPKCS1
		table.addCipher(pkcs1, newRSACipherBuilder(pkcs1, rsaPaddingPKCS1, 0))

		oaepSHA1 := prefix + cryptoDomain.PaddingOAEPSHA1
		table.addCipher(oaepSHA1, newRSACipherBuilder(oaepSHA1, rsaPaddingOAEP, crypto.SHA1))

		oaepSHA256 := prefix + cryptoDomain.PaddingOAEPSHA256
		table.addCipher(oaepSHA256, newRSACipherBuilder(oaepSHA256, rsaPaddingOAEP, crypto.SHA256))
	}
}
