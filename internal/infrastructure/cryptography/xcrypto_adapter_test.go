//go:build unit
// +build unit

package cryptography

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
	"sync"
	"testing"

	cryptoDomain "github.com/MGTheTrain/crypto-provider/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-provider/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupXCryptoAdapter(t *testing.T, registry cryptoDomain.Registry, opts ...ResolverOption) (*XCryptoAdapter, *ProviderResolver) {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	resolver := NewProviderResolver(registry, append([]ResolverOption{WithLogger(logger)}, opts...)...)
	adapter, err := NewXCryptoAdapter(resolver, logger)
	require.NoError(t, err)
	return adapter, resolver
}

func TestXCryptoAdapter_Initialize(t *testing.T) {
	t.Run("EmptyRegistry", func(t *testing.T) {
		registry := NewRegistry()
		adapter, resolver := setupXCryptoAdapter(t, registry)

		assert.Equal(t, XCryptoProviderName, adapter.Provider().Name())
		assert.Same(t, adapter.XCryptoProvider(), adapter.Provider())
		assert.False(t, resolver.Reused())
		assert.Empty(t, registry.Providers())
	})

	t.Run("EmptyRegistryWithInstall", func(t *testing.T) {
		registry := NewRegistry()
		adapter, _ := setupXCryptoAdapter(t, registry, WithInstall(true))

		installed, ok := registry.Provider(XCryptoProviderName)
		require.True(t, ok)
		assert.Same(t, adapter.XCryptoProvider(), installed)
	})

	t.Run("ReusesRegisteredSameKind", func(t *testing.T) {
		registry := NewRegistry()
		existing := NewXCryptoProvider()
		require.NoError(t, registry.Register(existing))

		adapter, resolver := setupXCryptoAdapter(t, registry)
		assert.Same(t, existing, adapter.XCryptoProvider())
		assert.True(t, resolver.Reused())
	})

	t.Run("IgnoresOtherKindUnderSameName", func(t *testing.T) {
		registry := NewRegistry()
		impostor := newImpostorProvider()
		require.NoError(t, registry.Register(impostor))

		adapter, resolver := setupXCryptoAdapter(t, registry, WithInstall(true))
		assert.NotSame(t, impostor, adapter.Provider())
		assert.IsType(t, &XCryptoProvider{}, adapter.Provider())
		assert.False(t, resolver.Reused())

		registered, ok := registry.Provider(XCryptoProviderName)
		require.True(t, ok)
		assert.Same(t, impostor, registered)
	})

	t.Run("AdaptersShareResolvedProvider", func(t *testing.T) {
		logger := testutil.SetupTestLogger(t)
		resolver := NewProviderResolver(NewRegistry())

		first, err := NewXCryptoAdapter(resolver, logger)
		require.NoError(t, err)
		second, err := NewXCryptoAdapter(resolver, logger)
		require.NoError(t, err)

		assert.Same(t, first.XCryptoProvider(), second.XCryptoProvider())
	})

	t.Run("ConcurrentFirstUse", func(t *testing.T) {
		logger := testutil.SetupTestLogger(t)
		resolver := NewProviderResolver(NewRegistry(), WithInstall(true))

		adapters := make([]*XCryptoAdapter, 16)
		var wg sync.WaitGroup
		for i := range adapters {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				adapter, err := NewXCryptoAdapter(resolver, logger)
				assert.NoError(t, err)
				adapters[i] = adapter
			}(i)
		}
		wg.Wait()

		for _, adapter := range adapters {
			require.NotNil(t, adapter)
			assert.Same(t, adapters[0].XCryptoProvider(), adapter.XCryptoProvider())
		}
	})

	t.Run("NilResolver", func(t *testing.T) {
		_, err := NewXCryptoAdapter(nil, testutil.SetupTestLogger(t))
		assert.Error(t, err)
	})

	t.Run("ResolverErrorReturned", func(t *testing.T) {
		registry := &mockRegistry{}
		registry.On("ResolveOrInstall", mock.Anything, mock.Anything, false).
			Return(nil, false, cryptoDomain.ErrProviderNotFound)

		_, err := NewXCryptoAdapter(NewProviderResolver(registry), testutil.SetupTestLogger(t))
		assert.ErrorIs(t, err, cryptoDomain.ErrProviderNotFound)
	})

	t.Run("DefaultAdapter", func(t *testing.T) {
		logger := testutil.SetupTestLogger(t)

		first, err := NewDefaultXCryptoAdapter(logger)
		require.NoError(t, err)
		second, err := NewDefaultXCryptoAdapter(logger)
		require.NoError(t, err)

		resolved, err := ResolveXCryptoProvider()
		require.NoError(t, err)
		assert.Same(t, resolved, first.XCryptoProvider())
		assert.Same(t, resolved, second.XCryptoProvider())
	})
}

func TestXCryptoAdapter_Cipher(t *testing.T) {
	adapter, _ := setupXCryptoAdapter(t, NewRegistry())
	privateKey := testutil.RSAKey(t)
	plainText := []byte("This is a test message.")

	t.Run("BareRSAIsPKCS1", func(t *testing.T) {
		bare, err := adapter.Cipher(cryptoDomain.AlgorithmRSA)
		require.NoError(t, err)
		explicit, err := adapter.Cipher(cryptoDomain.RSAPKCS1Transformation)
		require.NoError(t, err)

		assert.Equal(t, cryptoDomain.RSAPKCS1Transformation, bare.Algorithm())
		assert.Equal(t, explicit.Algorithm(), bare.Algorithm())
		assert.Equal(t, XCryptoProviderName, bare.Provider())
	})

	t.Run("InteroperatesWithStandardPKCS1", func(t *testing.T) {
		cipherText, err := rsa.EncryptPKCS1v15(rand.Reader, &privateKey.PublicKey, plainText)
		require.NoError(t, err)

		for _, algorithm := range []string{cryptoDomain.AlgorithmRSA, cryptoDomain.RSAPKCS1Transformation} {
			cipher, err := adapter.Cipher(algorithm)
			require.NoError(t, err)

			decrypted, err := cipher.Decrypt(privateKey, cipherText)
			require.NoError(t, err, algorithm)
			assert.Equal(t, plainText, decrypted, algorithm)
		}

		cipher, err := adapter.Cipher(cryptoDomain.AlgorithmRSA)
		require.NoError(t, err)
		ownCipherText, err := cipher.Encrypt(&privateKey.PublicKey, plainText)
		require.NoError(t, err)

		decrypted, err := rsa.DecryptPKCS1v15(rand.Reader, privateKey, ownCipherText)
		require.NoError(t, err)
		assert.Equal(t, plainText, decrypted)
	})

	t.Run("UnwrappedFacadeBareRSAIsRaw", func(t *testing.T) {
		cipherText, err := rsa.EncryptPKCS1v15(rand.Reader, &privateKey.PublicKey, plainText)
		require.NoError(t, err)

		raw, err := adapter.Crypto.Cipher(cryptoDomain.AlgorithmRSA)
		require.NoError(t, err)
		assert.Equal(t, cryptoDomain.RSANoPaddingTransformation, raw.Algorithm())

		decrypted, err := raw.Decrypt(privateKey, cipherText)
		require.NoError(t, err)
		assert.NotEqual(t, plainText, decrypted)
		assert.Equal(t, plainText, decrypted[len(decrypted)-len(plainText):])
	})

	t.Run("OtherNamesUnchanged", func(t *testing.T) {
		cipher, err := adapter.Cipher(cryptoDomain.RSANoPaddingTransformation)
		require.NoError(t, err)
		assert.Equal(t, cryptoDomain.RSANoPaddingTransformation, cipher.Algorithm())

		cipher, err = adapter.Cipher(cryptoDomain.AlgorithmAES)
		require.NoError(t, err)
		assert.Equal(t, cryptoDomain.AESDefaultTransformation, cipher.Algorithm())

		_, err = adapter.Cipher("RSA/NONE/OAEPWithSHA-512AndMGF1Padding")
		assert.ErrorIs(t, err, cryptoDomain.ErrPaddingUnavailable)
	})
}

func TestXCryptoAdapter_Delegation(t *testing.T) {
	newMockedAdapter := func() (*XCryptoAdapter, *mockCrypto) {
		facade := &mockCrypto{}
		return &XCryptoAdapter{Crypto: facade, provider: NewXCryptoProvider()}, facade
	}

	t.Run("SubstitutesOnlyExactRSA", func(t *testing.T) {
		adapter, facade := newMockedAdapter()
		pkcs1 := &stubCipher{algorithm: cryptoDomain.RSAPKCS1Transformation}
		lower := &stubCipher{algorithm: "rsa"}
		padded := &stubCipher{algorithm: "RSA "}

		facade.On("Cipher", cryptoDomain.RSAPKCS1Transformation).Return(pkcs1, nil)
		facade.On("Cipher", "rsa").Return(lower, nil)
		facade.On("Cipher", "RSA ").Return(padded, nil)

		cipher, err := adapter.Cipher("RSA")
		require.NoError(t, err)
		assert.Same(t, pkcs1, cipher)

		cipher, err = adapter.Cipher("rsa")
		require.NoError(t, err)
		assert.Same(t, lower, cipher)

		cipher, err = adapter.Cipher("RSA ")
		require.NoError(t, err)
		assert.Same(t, padded, cipher)

		facade.AssertNotCalled(t, "Cipher", "RSA")
		facade.AssertExpectations(t)
	})

	t.Run("PassThroughUnchanged", func(t *testing.T) {
		adapter, facade := newMockedAdapter()
		aesCipher := &stubCipher{algorithm: "AES/GCM/NoPadding"}
		key := []byte("secret")
		digest := sha256.New()
		mac := hmac.New(sha256.New, key)
		factory := stubCertificateFactory{}
		provider := NewXCryptoProvider()

		facade.On("Cipher", "AES/GCM/NoPadding").Return(aesCipher, nil)
		facade.On("Digest", cryptoDomain.DigestSHA256).Return(digest, nil)
		facade.On("Mac", cryptoDomain.MacHmacSHA256, key).Return(mac, nil)
		facade.On("CertFactory").Return(factory)
		facade.On("Provider").Return(provider)

		cipher, err := adapter.Cipher("AES/GCM/NoPadding")
		require.NoError(t, err)
		assert.Same(t, aesCipher, cipher)

		h, err := adapter.SHA256()
		require.NoError(t, err)
		assert.Same(t, digest, h)

		m, err := adapter.HmacSHA256(key)
		require.NoError(t, err)
		assert.Same(t, mac, m)

		assert.Equal(t, factory, adapter.CertFactory())
		assert.Same(t, provider, adapter.Provider())
		facade.AssertExpectations(t)
	})

	t.Run("ErrorsUnchanged", func(t *testing.T) {
		adapter, facade := newMockedAdapter()
		unavailable := fmt.Errorf("%w: padding PKCS1Padding", cryptoDomain.ErrPaddingUnavailable)

		facade.On("Cipher", cryptoDomain.RSAPKCS1Transformation).Return(nil, unavailable)
		facade.On("Digest", "WHIRLPOOL").Return(nil, cryptoDomain.ErrAlgorithmUnavailable)

		cipher, err := adapter.Cipher(cryptoDomain.AlgorithmRSA)
		assert.Nil(t, cipher)
		assert.Equal(t, unavailable, err)

		_, err = adapter.Digest("WHIRLPOOL")
		assert.Equal(t, cryptoDomain.ErrAlgorithmUnavailable, err)
	})
}
