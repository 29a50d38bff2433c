package validator

import (
	"github.com/go-playground/validator/v10"
)

// FieldError describe un campo que no pasó la validación estructural.
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

var validate = validator.New()

// ValidateStruct valida las etiquetas `validate` de un DTO y devuelve la lista
// de campos inválidos (vacía si todo está bien).
func ValidateStruct(data interface{}) []*FieldError {
	var errs []*FieldError
	if err := validate.Struct(data); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			errs = append(errs, &FieldError{
				Field: fe.StructNamespace(),
				Tag:   fe.Tag(),
				Param: fe.Param(),
			})
		}
	}
	return errs
}
