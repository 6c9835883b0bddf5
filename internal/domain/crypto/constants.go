package crypto

// Cipher algorithm names
const (
	AlgorithmRSA               = "RSA"
	AlgorithmAES               = "AES"
	AlgorithmChaCha20Poly1305  = "ChaCha20-Poly1305"
	AlgorithmXChaCha20Poly1305 = "XChaCha20-Poly1305"
)

// Fully qualified transformations referenced outside of provider tables
const (
	RSAPKCS1Transformation     = "RSA/NONE/PKCS1Padding"
	RSANoPaddingTransformation = "RSA/NONE/NoPadding"
	RSAECBPKCS1Transformation  = "RSA/ECB/PKCS1Padding"
	AESDefaultTransformation   = "AES/ECB/PKCS5Padding"
)

// CertificateTypeX509 is the only certificate type providers are expected to support
const CertificateTypeX509 = "X.509"

// Cipher mode names
const (
	ModeNone = "NONE"
	ModeECB  = "ECB"
	ModeCBC  = "CBC"
	ModeCTR  = "CTR"
	ModeGCM  = "GCM"
)

// Cipher padding names
const (
	PaddingNone       = "NoPadding"
	PaddingPKCS1      = "PKCS1Padding"
	PaddingPKCS5      = "PKCS5Padding"
	PaddingOAEPSHA1   = "OAEPWithSHA-1AndMGF1Padding"
	PaddingOAEPSHA256 = "OAEPWithSHA-256AndMGF1Padding"
)

// Message digest names
const (
	DigestMD5        = "MD5"
	DigestSHA1       = "SHA-1"
	DigestSHA224     = "SHA-224"
	DigestSHA256     = "SHA-256"
	DigestSHA384     = "SHA-384"
	DigestSHA512     = "SHA-512"
	DigestSHA3256    = "SHA3-256"
	DigestSHA3384    = "SHA3-384"
	DigestSHA3512    = "SHA3-512"
	DigestBLAKE2b256 = "BLAKE2B-256"
	DigestBLAKE2b512 = "BLAKE2B-512"
)

// MAC algorithm names
const (
	MacHmacMD5     = "HmacMD5"
	MacHmacSHA1    = "HmacSHA1"
	MacHmacSHA256  = "HmacSHA256"
	MacHmacSHA384  = "HmacSHA384"
	MacHmacSHA512  = "HmacSHA512"
	MacHmacSHA3256 = "HmacSHA3-256"
)

// ServiceType identifies a kind of service offered by a provider.
type ServiceType string

// Service types a provider can advertise
const (
	ServiceCipher             ServiceType = "Cipher"
	ServiceMessageDigest      ServiceType = "MessageDigest"
	ServiceMac                ServiceType = "Mac"
	ServiceCertificateFactory ServiceType = "CertificateFactory"
)

// ServiceTypes lists every service type in display order
var ServiceTypes = []ServiceType{ServiceCipher, ServiceMessageDigest, ServiceMac, ServiceCertificateFactory}
