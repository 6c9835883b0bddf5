package validators

import (
	cryptoDomain "github.com/MGTheTrain/crypto-provider/internal/domain/crypto"

	"github.com/go-playground/validator/v10"
)

// TransformationValidation accepts "ALGORITHM" and "ALGORITHM/MODE/PADDING" cipher names.
func TransformationValidation(fl validator.FieldLevel) bool {
	_, err := cryptoDomain.ParseTransformation(fl.Field().String())
	return err == nil
}
