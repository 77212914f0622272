// Package validate checks request schemas and turns binding failures into
// field-level domain.ValidationError values.
package validate

import (
	"encoding/json" // Decoder error types returned by gin's JSON binding
	"errors"        // Error inspection
	"io"            // io.EOF for empty bodies
	"reflect"       // Struct field reflection
	"strings"       // Tag parsing

	"notes_system/internal/domain" // Domain error types

	"github.com/go-playground/validator/v10"                         // Struct validation
	"github.com/go-playground/validator/v10/non-standard/validators" // notblank rule
)

// NonFieldErrors is the key used for messages not tied to a single field
const NonFieldErrors = "non_field_errors"

var engine = newEngine()

// newEngine builds a validator that reports JSON field names
func newEngine() *validator.Validate {
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
	_ = v.RegisterValidation("notblank", validators.NotBlank) // Whitespace-only strings count as blank
	return v
}

// Struct validates s against its `validate` tags
func Struct(s any) error {
	err := engine.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	verr := domain.NewValidationError()
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), message(fe))
	}
	return verr
}

// message maps a failed tag to a client-facing message
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return "Ensure this field has no more than " + fe.Param() + " characters."
	case "min":
		return "Ensure this field has at least " + fe.Param() + " characters."
	case "notblank":
		return "This field may not be blank."
	default:
		return "Invalid value."
	}
}

// FromBindError converts a request body decoding error into a ValidationError
func FromBindError(err error) error {
	if err == nil {
		return nil
	}
	verr := domain.NewValidationError()
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = NonFieldErrors
		}
		verr.Add(field, "Not a valid "+typeName(typeErr.Type)+".")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		verr.Add(NonFieldErrors, "Malformed JSON body.")
	case errors.Is(err, io.EOF):
		verr.Add(NonFieldErrors, "No data provided.")
	default:
		verr.Add(NonFieldErrors, "Invalid request body.")
	}
	return verr
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Bool:
		return "boolean"
	case reflect.Struct, reflect.Map:
		return "object"
	default:
		return t.Kind().String()
	}
}
