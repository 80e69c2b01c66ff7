// Package validators turns go-playground/validator failures into the
// ValidationError messages returned to API clients.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/dto"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/httperr"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their JSON name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})

	// optional fields validate as their string, or as empty when unset/null
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		o := f.Interface().(dto.OptionalString)
		if o.Value == nil {
			return ""
		}
		return *o.Value
	}, dto.OptionalString{})

	return v
}

// Struct validates in. Missing required fields are reported together in a
// single message, in declaration order.
func Struct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	var missing, others []string
	for _, fe := range ve {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
			continue
		}
		others = append(others, fieldError(fe))
	}

	if len(missing) > 0 {
		return MissingFields(missing...)
	}
	return httperr.Validation(strings.Join(others, "; "))
}

func MissingFields(fields ...string) error {
	return httperr.Validation("Faltan campos requeridos: " + strings.Join(fields, ", "))
}

func fieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "max":
		return fmt.Sprintf("%s: máximo %s caracteres", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s: valor inválido (%s)", fe.Field(), fe.Tag())
	}
}
