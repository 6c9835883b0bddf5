package cryptography

import (
	cryptoDomain "github.com/MGTheTrain/crypto-provider/internal/domain/crypto"
)

// StdlibProviderName is the registry name of the standard library provider
const StdlibProviderName = "GoStd"

// StdlibProvider only uses the Go standard library. A bare "RSA" request maps to
// RSA/ECB/PKCS1Padding, the default the facade expects.
type StdlibProvider struct {
	baseProvider
}

// NewStdlibProvider creates a new standard library provider instance
func NewStdlibProvider() *StdlibProvider {
	table := newServiceTable()

	registerRSACiphers(table, cryptoDomain.ModeECB)
	table.addAlias(cryptoDomain.AlgorithmRSA, cryptoDomain.RSAECBPKCS1Transformation)
	registerAESCiphers(table)

	registerStdDigests(table)

	table.addCertificateType(cryptoDomain.CertificateTypeX509)

	return &StdlibProvider{
		baseProvider: baseProvider{
			name:    StdlibProviderName,
			version: "1.0",
			info:    "Go standard library provider (RSA, AES, SHA-2, HMAC, X.509)",
			table:   table,
		},
	}
}
