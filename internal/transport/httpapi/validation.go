package transport_http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var errValidationFailed = errors.New("request validation failed")

type fieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// validationError carries every violated rule of one request body.
type validationError struct {
	violations []fieldViolation
}

func (e *validationError) Error() string {
	parts := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		parts = append(parts, fmt.Sprintf("'%s' failed '%s'", v.Field, v.Rule))
	}
	return errValidationFailed.Error() + ": " + strings.Join(parts, ", ")
}

func (e *validationError) Unwrap() error { return errValidationFailed }

func newValidator() (*validator.Validate, error) {
	vld := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	vld.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := vld.RegisterValidation("positive_decimal", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(decimal.Decimal)
		if !ok {
			return false
		}
		return value.IsPositive()
	}); err != nil {
		return nil, fmt.Errorf("register positive_decimal: %w", err)
	}

	return vld, nil
}

func validateStruct(vld *validator.Validate, payload any) error {
	err := vld.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %w", errValidationFailed, err)
	}

	out := &validationError{violations: make([]fieldViolation, 0, len(fieldErrors))}
	for _, fe := range fieldErrors {
		out.violations = append(out.violations, fieldViolation{
			Field: trimRootNamespace(fe.Namespace()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// trimRootNamespace drops the Go type name validator puts in front of every
// namespace, leaving a JSON path such as "from.payer.idType".
func trimRootNamespace(ns string) string {
	_, rest, found := strings.Cut(ns, ".")
	if !found {
		return ns
	}
	return rest
}
