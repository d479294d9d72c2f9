package hostname

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// ValidationTag is the struct tag registered by RegisterValidation.
const ValidationTag = "valid_hostname"

// RegisterValidation registers ValidationTag with the given validator, so struct
// fields tagged with `validate:"valid_hostname"` are checked by IsValid.
func RegisterValidation(validate *validator.Validate) error {
	return validate.RegisterValidation(ValidationTag, validateHostname)
}

func validateHostname(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		return IsValid(field.String())
	case reflect.Slice:
		if field.Type().Elem().Kind() == reflect.Uint8 {
			return IsValidBytes(field.Bytes())
		}
	}
	return false
}
