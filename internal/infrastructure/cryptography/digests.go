package cryptography

import (
	"crypto/md5"  // #nosec G501 -- MD5 is part of the facade contract (content checksums)
	"crypto/sha1" // #nosec G505 -- SHA-1 is part of the facade contract (legacy signatures)
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	cryptoDomain "github.com/MGTheTrain/crypto-provider/internal/domain/crypto"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// registerStdDigests adds the digests and HMACs available in the standard library.
func registerStdDigests(table *serviceTable) {
	table.addDigest(cryptoDomain.DigestMD5, md5.New)
	table.addDigest(cryptoDomain.DigestSHA1, sha1.New)
	table.addDigest(cryptoDomain.DigestSHA224, sha256.New224)
	table.addDigest(cryptoDomain.DigestSHA256, sha256.New)
	table.addDigest(cryptoDomain.DigestSHA384, sha512.New384)
	table.addDigest(cryptoDomain.DigestSHA512, sha512.New)

	table.addMac(cryptoDomain.MacHmacMD5, md5.New)
	table.addMac(cryptoDomain.MacHmacSHA1, sha1.New)
	table.addMac(cryptoDomain.MacHmacSHA256, sha256.New)
	table.addMac(cryptoDomain.MacHmacSHA384, sha512.New384)
	table.addMac(cryptoDomain.MacHmacSHA512, sha512.New)
}

// registerExtendedDigests adds the SHA-3 and BLAKE2b families from golang.org/x/crypto.
func registerExtendedDigests(table *serviceTable) {
	table.addDigest(cryptoDomain.DigestSHA3256, sha3.New256)
	table.addDigest(cryptoDomain.DigestSHA3384, sha3.New384)
	table.addDigest(cryptoDomain.DigestSHA3512, sha3.New512)
	table.addDigest(cryptoDomain.DigestBLAKE2b256, newBLAKE2b256)
	table.addDigest(cryptoDomain.DigestBLAKE2b512, newBLAKE2b512)

	table.addMac(cryptoDomain.MacHmacSHA3256, sha3.New256)
}

// blake2b only fails for keys longer than 64 bytes; these are unkeyed.
func newBLAKE2b256() hash.Hash {
	h, _ := blake2b.New256(nil)
	return h
}

func newBLAKE2b512() hash.Hash {
	h, _ := blake2b.New512(nil)
	return h
}
