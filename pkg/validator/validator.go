package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()

	// question_category validates mock-test question category values
	_ = v.RegisterValidation("question_category", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "quant", "logical", "verbal", "programming":
			return true
		}
		return false
	})

	// proctor_event validates proctoring tab/visibility event names
	_ = v.RegisterValidation("proctor_event", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "blur", "hidden", "visible":
			return true
		}
		return false
	})

	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
