package customvalidator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"contract-studio/internal/entities"
)

// RegisterCustomValidations регистрирует правила проекта в переданном валидаторе.
func RegisterCustomValidations(v *validator.Validate) error {
	registerNullTypes(v)

	if err := v.RegisterValidation("record_field", isRecordField); err != nil {
		return err
	}
	if err := v.RegisterValidation("not_blank", isNotBlank); err != nil {
		return err
	}
	return nil
}

// isRecordField - имя известного поля анкеты.
func isRecordField(fl validator.FieldLevel) bool {
	_, ok := entities.LookupField(fl.Field().String())
	return ok
}

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
