package validators

import (
	cryptoDomain "github.com/MGTheTrain/crypto-provider/internal/domain/crypto"

	"github.com/go-playground/validator/v10"
)

// KeySizeValidation validates the key size in bits based on the sibling Algorithm field (AES, RSA or ChaCha20).
func KeySizeValidation(fl validator.FieldLevel) bool {
	algorithm := fl.Parent().FieldByName("Algorithm").String()
	keySize := fl.Field().Uint()

	switch algorithm {
	case cryptoDomain.AlgorithmAES:
		return keySize == 128 || keySize == 192 || keySize == 256
	case cryptoDomain.AlgorithmRSA:
		return keySize == 2048 || keySize == 3072 || keySize == 4096
	case cryptoDomain.AlgorithmChaCha20Poly1305, cryptoDomain.AlgorithmXChaCha20Poly1305:
		return keySize == 256
	default:
		return false
	}
}
