package http

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// report fields by their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// max 2 decimal places
	_ = v.RegisterValidation("dec2", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Abs(f-(math.Round(f*100)/100)) < 1e-9
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// ToFieldErrors maps validator.ValidationErrors to []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "dec2":
			out = append(out, FieldError{Field: field, Message: "must have at most 2 decimal places"})
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param() + " characters"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
