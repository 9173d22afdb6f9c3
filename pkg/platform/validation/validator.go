// Package validation wraps a shared go-playground/validator instance.
//
// The validator caches struct metadata, so a single instance is built lazily
// and reused. Failures are translated into domain validation errors with a
// message naming the first offending field.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	dErrors "caseboard/pkg/domain-errors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator instance.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return translate(Validator().Struct(s), "")
}

// Var validates a single value against tag; field names the value in messages.
func Var(field string, value any, tag string) error {
	return translate(Validator().Var(value, tag), field)
}

func translate(err error, field string) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return dErrors.Wrap(err, dErrors.CodeValidation, "validation failed")
	}
	fe := verrs[0]
	name := fe.Namespace()
	if field != "" {
		// Var reports an empty namespace for the root and "[i]" for dive elements.
		name = field + name
	}
	return dErrors.New(dErrors.CodeValidation, message(name, fe))
}

func message(name string, fe validator.FieldError) string {
	name = strings.TrimPrefix(name, ".")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "max":
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", name, fe.Param())
	default:
		return fmt.Sprintf("%s failed %q validation", name, fe.Tag())
	}
}
