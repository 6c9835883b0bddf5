//go:build unit
// +build unit

package cryptography

import (
	"crypto/rand"
	"testing"

	cryptoDomain "github.com/MGTheTrain/crypto-provider/internal/domain/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	TestAESKey128 = 16
	TestAESKey256 = 32
)

var aesTransformations = []string{
	"AES/ECB/PKCS5Padding",
	"AES/CBC/PKCS5Padding",
	"AES/CTR/NoPadding",
	"AES/GCM/NoPadding",
}

func generateTestKey(t *testing.T, size int) []byte {
	t.Helper()
	key := make([]byte, size)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func newTestCipher(t *testing.T, provider cryptoDomain.Provider, algorithm string) cryptoDomain.Cipher {
	t.Helper()
	transformation, err := cryptoDomain.ParseTransformation(algorithm)
	require.NoError(t, err)
	cipher, err := provider.NewCipher(transformation)
	require.NoError(t, err)
	return cipher
}

func TestAESCipher(t *testing.T) {
	provider := NewXCryptoProvider()
	plainText := []byte("This is a test message.")

	t.Run("EncryptDecrypt", func(t *testing.T) {
		for _, algorithm := range aesTransformations {
			for _, size := range []int{TestAESKey128, TestAESKey256} {
				cipher := newTestCipher(t, provider, algorithm)
				key := generateTestKey(t, size)

				cipherText, err := cipher.Encrypt(key, plainText)
				require.NoError(t, err, algorithm)
				assert.NotEqual(t, plainText, cipherText, algorithm)

				decrypted, err := cipher.Decrypt(key, cipherText)
				require.NoError(t, err, algorithm)
				assert.Equal(t, plainText, decrypted, algorithm)
			}
		}
	})

	t.Run("BlockAlignedPlaintextGetsFullPaddingBlock", func(t *testing.T) {
		cipher := newTestCipher(t, provider, "AES/ECB/PKCS5Padding")
		key := generateTestKey(t, TestAESKey128)
		aligned := make([]byte, 32)

		cipherText, err := cipher.Encrypt(key, aligned)
		require.NoError(t, err)
		assert.Len(t, cipherText, 48)

		decrypted, err := cipher.Decrypt(key, cipherText)
		require.NoError(t, err)
		assert.Equal(t, aligned, decrypted)
	})

	t.Run("RandomIVPerEncryption", func(t *testing.T) {
		cipher := newTestCipher(t, provider, "AES/CBC/PKCS5Padding")
		key := generateTestKey(t, TestAESKey128)

		first, err := cipher.Encrypt(key, plainText)
		require.NoError(t, err)
		second, err := cipher.Encrypt(key, plainText)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("BareAESDefaultsToECB", func(t *testing.T) {
		cipher := newTestCipher(t, provider, cryptoDomain.AlgorithmAES)
		assert.Equal(t, cryptoDomain.AESDefaultTransformation, cipher.Algorithm())
		assert.Equal(t, 16, cipher.BlockSize())
	})

	t.Run("EncryptionWithInvalidKey", func(t *testing.T) {
		cipher := newTestCipher(t, provider, "AES/GCM/NoPadding")

		_, err := cipher.Encrypt([]byte("shortkey"), plainText)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKey)

		_, err = cipher.Encrypt("not bytes", plainText)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKey)
	})

	t.Run("DecryptWithWrongKey", func(t *testing.T) {
		cipher := newTestCipher(t, provider, "AES/CBC/PKCS5Padding")
		key := generateTestKey(t, TestAESKey128)

		cipherText, err := cipher.Encrypt(key, []byte("Test decryption with wrong key."))
		require.NoError(t, err)

		decrypted, err := cipher.Decrypt(generateTestKey(t, TestAESKey128), cipherText)
		if err == nil {
			assert.NotEqual(t, []byte("Test decryption with wrong key."), decrypted)
		}
	})

	t.Run("DecryptTamperedGCM", func(t *testing.T) {
		cipher := newTestCipher(t, provider, "AES/GCM/NoPadding")
		key := generateTestKey(t, TestAESKey256)

		cipherText, err := cipher.Encrypt(key, plainText)
		require.NoError(t, err)
		cipherText[len(cipherText)-1] ^= 0xff

		_, err = cipher.Decrypt(key, cipherText)
		assert.Error(t, err)
	})

	t.Run("DecryptTruncatedCiphertext", func(t *testing.T) {
		key := generateTestKey(t, TestAESKey128)
		for _, algorithm := range aesTransformations {
			cipher := newTestCipher(t, provider, algorithm)
			_, err := cipher.Decrypt(key, []byte("short"))
			assert.Error(t, err, algorithm)
		}
	})
}

func TestPKCS5Unpad(t *testing.T) {
	_, err := pkcs5Unpad(nil, 16)
	assert.Error(t, err)

	invalid := make([]byte, 16)
	invalid[15] = 17
	_, err = pkcs5Unpad(invalid, 16)
	assert.Error(t, err)

	inconsistent := make([]byte, 16)
	inconsistent[15] = 2
	inconsistent[14] = 3
	_, err = pkcs5Unpad(inconsistent, 16)
	assert.Error(t, err)

	unpadded, err := pkcs5Unpad(pkcs5Pad([]byte("abc"), 16), 16)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), unpadded)
}

func TestChaChaCipher(t *testing.T) {
	provider := NewXCryptoProvider()
	plainText := []byte("This is a test message.")

	for _, algorithm := range []string{cryptoDomain.AlgorithmChaCha20Poly1305, cryptoDomain.AlgorithmXChaCha20Poly1305} {
		t.Run(algorithm, func(t *testing.T) {
			cipher := newTestCipher(t, provider, algorithm)
			assert.Equal(t, algorithm, cipher.Algorithm())
			assert.Equal(t, XCryptoProviderName, cipher.Provider())

			key := generateTestKey(t, 32)
			cipherText, err := cipher.Encrypt(key, plainText)
			require.NoError(t, err)

			decrypted, err := cipher.Decrypt(key, cipherText)
			require.NoError(t, err)
			assert.Equal(t, plainText, decrypted)

			_, err = cipher.Decrypt(generateTestKey(t, 32), cipherText)
			assert.Error(t, err)

			_, err = cipher.Encrypt(generateTestKey(t, 16), plainText)
			assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKey)
		})
	}

	t.Run("UnavailableInStdlibProvider", func(t *testing.T) {
		transformation, err := cryptoDomain.ParseTransformation(cryptoDomain.AlgorithmChaCha20Poly1305)
		require.NoError(t, err)

		_, err = NewStdlibProvider().NewCipher(transformation)
		assert.ErrorIs(t, err, cryptoDomain.ErrAlgorithmUnavailable)
	})
}
