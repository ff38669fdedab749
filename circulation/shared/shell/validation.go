package shell

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError lists the invalid fields of a command or query, keyed by field name.
// It unwraps to core.ErrInvalidInput.
type ValidationError struct {
	Fields map[string]string
}

func (e ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}

	return fmt.Sprintf("%s: %s", core.ErrInvalidInput.Error(), strings.Join(parts, ", "))
}

func (e ValidationError) Unwrap() error {
	return core.ErrInvalidInput
}

// Validate checks the `validate` struct tags of a command or query.
func Validate(subject any) error {
	err := validate.Struct(subject)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return errors.Join(core.ErrInvalidInput, err)
	}

	validationErr := ValidationError{Fields: make(map[string]string, len(fieldErrors))}
	for _, fieldErr := range fieldErrors {
		validationErr.Fields[fieldErr.Field()] = friendlyMessage(fieldErr)
	}

	return validationErr
}

func friendlyMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be at least " + fieldErr.Param()
	case "lte":
		return "must be at most " + fieldErr.Param()
	case "oneof":
		return "must be one of " + fieldErr.Param()
	default:
		return "is invalid (" + fieldErr.Tag() + ")"
	}
}
