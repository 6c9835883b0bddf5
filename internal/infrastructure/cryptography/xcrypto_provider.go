package cryptography

import (
	cryptoDomain "github.com/MGTheTrain/crypto-provider/internal/domain/crypto"
)

// XCryptoProviderName is the registry name of the XCrypto provider
const XCryptoProviderName = "XCrypto"

// XCryptoProviderVersion is the version reported by the XCrypto provider
const XCryptoProviderVersion = "1.0"

// XCryptoProvider is backed by the standard library plus golang.org/x/crypto.
//
// A bare "RSA" cipher request means raw RSA (RSA/NONE/NoPadding) with this provider, which is
// not what facade callers expect; see XCryptoAdapter.
type XCryptoProvider struct {
	baseProvider
}

// NewXCryptoProvider creates a new, unregistered XCrypto provider instance
func NewXCryptoProvider() *XCryptoProvider {
	table := newServiceTable()

	registerRSACiphers(table, cryptoDomain.ModeNone, cryptoDomain.ModeECB)
	table.addAlias(cryptoDomain.AlgorithmRSA, cryptoDomain.RSANoPaddingTransformation)
	registerAESCiphers(table)
	registerChaChaCiphers(table)

	registerStdDigests(table)
	registerExtendedDigests(table)

	table.addCertificateType(cryptoDomain.CertificateTypeX509)

	return &XCryptoProvider{
		baseProvider: baseProvider{
			name:    XCryptoProviderName,
			version: XCryptoProviderVersion,
			info:    "XCrypto provider (Go standard library, golang.org/x/crypto; RSA, AES, ChaCha20-Poly1305, SHA-2, SHA-3, BLAKE2b, HMAC, X.509)",
			table:   table,
		},
	}
}

// isXCryptoProvider reports whether p is exactly an *XCryptoProvider.
func isXCryptoProvider(p cryptoDomain.Provider) bool {
	_, ok := p.(*XCryptoProvider)
	return ok
}
