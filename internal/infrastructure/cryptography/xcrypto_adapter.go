package cryptography

import (
	"fmt"

	cryptoDomain "github.com/MGTheTrain/crypto-provider/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-provider/internal/pkg/logger"
)

// XCryptoAdapter exposes the XCrypto provider through the generic cryptography facade.
// Every operation is delegated to the facade; Cipher rewrites a bare "RSA" request to
// "RSA/NONE/PKCS1Padding" since the provider's own bare RSA is unpadded and yields
// ciphertext other PKCS#1 implementations cannot read.
type XCryptoAdapter struct {
	cryptoDomain.Crypto
	provider *XCryptoProvider
}

// NewXCryptoAdapter resolves the provider through resolver and builds the facade over it.
// Facade errors are returned unmodified.
func NewXCryptoAdapter(resolver *ProviderResolver, logger logger.Logger) (*XCryptoAdapter, error) {
	if resolver == nil {
		return nil, fmt.Errorf("provider resolver cannot be nil")
	}

	provider, err := resolver.Resolve()
	if err != nil {
		return nil, err
	}

	facade, err := NewProviderCrypto(provider, logger)
	if err != nil {
		return nil, err
	}

	return &XCryptoAdapter{
		Crypto:   facade,
		provider: provider,
	}, nil
}

// NewDefaultXCryptoAdapter builds an adapter over the process-wide provider handle.
func NewDefaultXCryptoAdapter(logger logger.Logger) (*XCryptoAdapter, error) {
	return NewXCryptoAdapter(DefaultProviderResolver(), logger)
}

// XCryptoProvider returns the resolved provider handle.
func (a *XCryptoAdapter) XCryptoProvider() *XCryptoProvider {
	return a.provider
}

// Cipher returns a cipher handle, requesting RSA/NONE/PKCS1Padding for a bare "RSA".
func (a *XCryptoAdapter) Cipher(algorithm string) (cryptoDomain.Cipher, error) {
	if algorithm == cryptoDomain.AlgorithmRSA {
		algorithm = cryptoDomain.RSAPKCS1Transformation
	}
	return a.Crypto.Cipher(algorithm)
}

var _ cryptoDomain.Crypto = (*XCryptoAdapter)(nil)
