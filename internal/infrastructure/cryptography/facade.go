package cryptography

import (
	"hash"

	cryptoDomain "github.com/MGTheTrain/crypto-provider/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-provider/internal/pkg/logger"
)

// requiredDigests must be offered by any provider backing the facade
var requiredDigests = []string{
	cryptoDomain.DigestMD5,
	cryptoDomain.DigestSHA1,
	cryptoDomain.DigestSHA256,
	cryptoDomain.DigestSHA512,
}

// providerCrypto implements cryptoDomain.Crypto by delegating to a single provider
type providerCrypto struct {
	provider    cryptoDomain.Provider
	certFactory cryptoDomain.CertificateFactory
	logger      logger.Logger
}

// NewProviderCrypto creates the generic cryptography facade over provider. A nil provider
// selects the standard library provider. Provider errors are returned unmodified: missing
// required digests yield ErrAlgorithmUnavailable, a missing X.509 factory ErrCertificateUnsupported.
func NewProviderCrypto(provider cryptoDomain.Provider, logger logger.Logger) (cryptoDomain.Crypto, error) {
	if provider == nil {
		provider = NewStdlibProvider()
	}

	for _, algorithm := range requiredDigests {
		if _, err := provider.NewDigest(algorithm); err != nil {
			return nil, err
		}
	}

	certFactory, err := provider.NewCertificateFactory(cryptoDomain.CertificateTypeX509)
	if err != nil {
		return nil, err
	}

	logger.Info("Cryptography facade initialized with provider ", provider.Name(), " ", provider.Version())
	return &providerCrypto{
		provider:    provider,
		certFactory: certFactory,
		logger:      logger,
	}, nil
}

func (c *providerCrypto) Provider() cryptoDomain.Provider {
	return c.provider
}

// Cipher parses the transformation and asks the provider for a handle.
func (c *providerCrypto) Cipher(algorithm string) (cryptoDomain.Cipher, error) {
	transformation, err := cryptoDomain.ParseTransformation(algorithm)
	if err != nil {
		return nil, err
	}

	cipher, err := c.provider.NewCipher(transformation)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Cipher ", algorithm, " resolved to ", cipher.Algorithm(), " by provider ", cipher.Provider())
	return cipher, nil
}

func (c *providerCrypto) Digest(algorithm string) (hash.Hash, error) {
	return c.provider.NewDigest(algorithm)
}

func (c *providerCrypto) MD5() (hash.Hash, error) {
	return c.Digest(cryptoDomain.DigestMD5)
}

func (c *providerCrypto) SHA1() (hash.Hash, error) {
	return c.Digest(cryptoDomain.DigestSHA1)
}

func (c *providerCrypto) SHA256() (hash.Hash, error) {
	return c.Digest(cryptoDomain.DigestSHA256)
}

func (c *providerCrypto) SHA512() (hash.Hash, error) {
	return c.Digest(cryptoDomain.DigestSHA512)
}

func (c *providerCrypto) Mac(algorithm string, key []byte) (hash.Hash, error) {
	return c.provider.NewMac(algorithm, key)
}

func (c *providerCrypto) HmacSHA1(key []byte) (hash.Hash, error) {
	return c.Mac(cryptoDomain.MacHmacSHA1, key)
}

func (c *providerCrypto) HmacSHA256(key []byte) (hash.Hash, error) {
	return c.Mac(cryptoDomain.MacHmacSHA256, key)
}

func (c *providerCrypto) HmacSHA512(key []byte) (hash.Hash, error) {
	return c.Mac(cryptoDomain.MacHmacSHA512, key)
}

func (c *providerCrypto) CertFactory() cryptoDomain.CertificateFactory {
	return c.certFactory
}
