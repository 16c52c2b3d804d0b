package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ISODateLayout is the calendar date format events are stored with.
const ISODateLayout = "2006-01-02"

// NotBlankTag is the binding tag that rejects empty or whitespace-only strings.
const NotBlankTag = "notblank"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := RegisterRules(v); err != nil {
		panic(err)
	}
	return v
}

// RegisterRules adds the custom rules to v. Call it on gin's binding engine
// so request DTOs can use them.
func RegisterRules(v *validator.Validate) error {
	return v.RegisterValidation(NotBlankTag, func(fl validator.FieldLevel) bool {
		return NotBlank(fl.Field().String())
	})
}

// NotBlank reports whether value has any non-whitespace character.
func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// ISODate reports whether value is a YYYY-MM-DD calendar date.
func ISODate(value string) bool {
	return validate.Var(value, "required,datetime="+ISODateLayout) == nil
}
