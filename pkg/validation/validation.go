// Package validation checks request models with struct tags and reports the
// first failure as a validation_failed domain error.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	dErrors "cobalt/pkg/domain-errors"
	s "cobalt/pkg/string"
)

var defaultValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON name so messages match what the client sent.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	for tag, fn := range customRules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %q validation: %v", tag, err))
		}
	}
	return v
}

var customRules = map[string]validator.Func{
	"notblank": func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	},
	"locale": func(fl validator.FieldLevel) bool {
		_, err := language.Parse(fl.Field().String())
		return err == nil
	},
	"mimetype": func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		major, minor, ok := strings.Cut(v, "/")
		return ok && major != "" && minor != "" && !strings.ContainsAny(v, " \t\r\n")
	},
}

// messages maps a failed tag to its message. %[1]s is the field, %[2]s the tag parameter.
var messages = map[string]string{
	"required": "%[1]s is required",
	"email":    "%[1]s must be a valid email",
	"url":      "%[1]s must be a valid url",
	"uuid":     "%[1]s must be a valid uuid",
	"min":      "%[1]s must be at least %[2]s",
	"max":      "%[1]s must be at most %[2]s",
	"gte":      "%[1]s must be at least %[2]s",
	"oneof":    "%[1]s must be one of [%[2]s]",
	"notblank": "%[1]s must not be blank",
	"locale":   "%[1]s must be a BCP 47 language tag",
	"timezone": "%[1]s must be an IANA time zone",
	"mimetype": "%[1]s must be a media type",
}

// Validate runs the struct tags on req.
func Validate(req any) error {
	if err := defaultValidator.Struct(req); err != nil {
		return dErrors.New(dErrors.CodeValidation, ErrorMessage(err))
	}
	return nil
}

// ErrorMessage describes the first field failure in err.
func ErrorMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid request body"
	}
	fe := fieldErrs[0]
	name := fe.Field()
	if name == "" {
		name = fe.StructField()
	}
	field := s.ToSnakeCase(name)
	if field == "" {
		return "invalid request body"
	}
	if format, ok := messages[fe.ActualTag()]; ok {
		return fmt.Sprintf(format, field, fe.Param())
	}
	return field + " is invalid"
}
