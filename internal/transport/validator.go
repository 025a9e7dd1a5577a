package transport

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, f := range fe {
		parts = append(parts, f.Message)
	}
	return strings.Join(parts, "; ")
}

// Validator implements echo.Validator on top of go-playground/validator,
// reporting fields by their JSON names.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterCustomTypeFunc(optionalString, Optional[string]{})
	return &Validator{v: v}
}

// optionalString lets string tags apply to Optional[string]; absent and null
// values validate as nil, which omitempty skips.
func optionalString(f reflect.Value) any {
	o, ok := f.Interface().(Optional[string])
	if !ok || o.Value == nil {
		return nil
	}
	return *o.Value
}

func (cv *Validator) Validate(i any) error {
	err := cv.v.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(FieldErrors, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, FieldError{
			Field:   e.Field(),
			Tag:     e.Tag(),
			Message: message(e),
		})
	}
	return out
}

func message(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "notblank":
		return field + " must not be blank"
	case "max":
		return field + " must be at most " + e.Param() + " characters"
	case "min":
		return field + " must be at least " + e.Param()
	case "dive":
		return field + " contains an invalid item"
	default:
		return field + " is invalid"
	}
}
